package devlib

import (
	"github.com/prismhw/prismsim"
)

// ShiftInPins assigns bus lines to an InShifter.
type ShiftInPins struct {
	LoadN int // peripheral output line; while low the register reloads
	Clk   int // peripheral output line; shift on rising edge
	Data  int // device-driven input line carrying the register's MSB
}

// DefaultShiftInPins is the pin assignment of the reference board.
var DefaultShiftInPins = ShiftInPins{LoadN: 1, Clk: 2, Data: 0}

// An InShifter emulates a parallel-load, serial-out shift register
// (74165 style). While the load line reads low the register tracks the
// harness-injected source value; this is level sensitive. Otherwise a rising
// edge of the shift clock shifts the register left by one within its width,
// bringing in zero at the bottom. The current MSB is driven onto the data
// line on every tick for the peripheral to sample.
//
type InShifter struct {
	Pins  ShiftInPins
	Width uint // register width in bits

	value uint32
	sr    uint32
	prev  uint8
}

// NewInShifter returns a 24-bit InShifter on the default pins. The pin
// assignment and width may be changed before the device is mounted.
//
func NewInShifter() *InShifter {
	return &InShifter{Pins: DefaultShiftInPins, Width: 24}
}

// SetValue sets the device-side source value picked up by the next reload.
// Call only between ticks.
//
func (d *InShifter) SetValue(v uint32) {
	d.value = v
}

// Mount implements prismsim.Device.
func (d *InShifter) Mount(b *prismsim.Bus) prismsim.Task {
	d.prev = b.Out()
	mask := uint32(1)<<d.Width - 1
	top := uint32(1) << (d.Width - 1)
	return func(b *prismsim.Bus) {
		out := b.Out()
		if out&line(d.Pins.LoadN) == 0 {
			d.sr = d.value & mask
		} else if rising(d.prev, out, d.Pins.Clk) {
			d.sr = d.sr << 1 & mask
		}
		b.DriveIn(d.Pins.Data, d.sr&top != 0)
		d.prev = out
	}
}
