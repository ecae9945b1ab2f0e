package devlib

import (
	"github.com/prismhw/prismsim"
)

type probe struct {
	fn func(out, in uint8)
}

func (p *probe) Mount(b *prismsim.Bus) prismsim.Task {
	return func(b *prismsim.Bus) {
		p.fn(b.Out(), b.In())
	}
}

// Probe creates an observation device. fn is called with the packed port
// snapshots on every tick.
//
func Probe(fn func(out, in uint8)) prismsim.Device {
	return &probe{fn: fn}
}

type outDriver struct {
	fn func() uint8
}

func (o *outDriver) Mount(b *prismsim.Bus) prismsim.Task {
	return func(b *prismsim.Bus) {
		v := o.fn()
		for n := 0; n < prismsim.PortWidth; n++ {
			b.DriveOut(n, v&(1<<uint(n)) != 0)
		}
	}
}

// OutDriver creates a device that drives the whole peripheral output port
// from fn on every tick. It stands in for the peripheral when exercising
// devices against scripted waveforms.
//
func OutDriver(fn func() uint8) prismsim.Device {
	return &outDriver{fn: fn}
}
