package devlib

import (
	"github.com/prismhw/prismsim"
)

// ShiftOutPins assigns bus lines to an OutShifter.
type ShiftOutPins struct {
	Store int // peripheral output line; high latches the register
	Clk   int // peripheral output line; shift on rising edge
	Data  int // peripheral output line sampled into the register
}

// DefaultShiftOutPins is the pin assignment of the reference board.
var DefaultShiftOutPins = ShiftOutPins{Store: 7, Clk: 2, Data: 3}

// An OutShifter emulates a serial-in, parallel-out shift register with an
// output store (595 style). While the store line reads high the shift
// register is latched into the externally observable value; store is
// evaluated before the shift edge, so on a tick where both conditions hold
// the store wins and no shift occurs. Otherwise a rising edge of the shift
// clock shifts the register left and samples the data line into bit 0,
// within the register width.
//
type OutShifter struct {
	Pins  ShiftOutPins
	Width uint // register width in bits

	sr      uint32
	latched uint32
	prev    uint8
}

// NewOutShifter returns a 24-bit OutShifter on the default pins. The pin
// assignment and width may be changed before the device is mounted.
//
func NewOutShifter() *OutShifter {
	return &OutShifter{Pins: DefaultShiftOutPins, Width: 24}
}

// Latched returns the last stored output value. Call only between ticks.
//
func (d *OutShifter) Latched() uint32 {
	return d.latched
}

// Mount implements prismsim.Device.
func (d *OutShifter) Mount(b *prismsim.Bus) prismsim.Task {
	d.prev = b.Out()
	mask := uint32(1)<<d.Width - 1
	return func(b *prismsim.Bus) {
		out := b.Out()
		if out&line(d.Pins.Store) != 0 {
			d.latched = d.sr
		} else if rising(d.prev, out, d.Pins.Clk) {
			d.sr <<= 1
			if out&line(d.Pins.Data) != 0 {
				d.sr |= 1
			}
			d.sr &= mask
		}
		d.prev = out
	}
}
