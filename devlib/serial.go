package devlib

import (
	"github.com/prismhw/prismsim"
)

// SerialPins assigns bus lines to a SerialLink.
type SerialPins struct {
	Data int // device-driven input line carrying the serialized bits
	CSN  int // device-driven input line, low while a buffer is walked
}

// DefaultSerialPins is the pin assignment of the reference board.
var DefaultSerialPins = SerialPins{Data: 0, CSN: 3}

// A SerialLink emulates the master side of a byte-serial link. It walks a
// queued buffer of bytes, driving each byte MSB first onto the data line and
// holding every bit for Divisor ticks, with the chip select line driven low
// for the duration of the buffer. With an empty buffer the link idles: data
// low, chip select high.
//
type SerialLink struct {
	Pins    SerialPins
	Divisor uint // ticks per bit

	buf    []byte
	cursor int
	bit    int
	phase  uint
}

// NewSerialLink returns a SerialLink on the default pins holding each bit
// for divisor ticks.
//
func NewSerialLink(divisor uint) *SerialLink {
	if divisor == 0 {
		divisor = 1
	}
	return &SerialLink{Pins: DefaultSerialPins, Divisor: divisor, bit: 7}
}

// Queue appends bytes to the transmit buffer. Call only between ticks.
//
func (d *SerialLink) Queue(p []byte) {
	d.buf = append(d.buf, p...)
}

// Done reports whether the transmit buffer has been fully walked.
//
func (d *SerialLink) Done() bool {
	return d.cursor >= len(d.buf)
}

// Mount implements prismsim.Device.
func (d *SerialLink) Mount(b *prismsim.Bus) prismsim.Task {
	return func(b *prismsim.Bus) {
		if d.cursor >= len(d.buf) {
			b.DriveIn(d.Pins.Data, false)
			b.DriveIn(d.Pins.CSN, true)
			return
		}
		b.DriveIn(d.Pins.Data, d.buf[d.cursor]&(1<<uint(d.bit)) != 0)
		b.DriveIn(d.Pins.CSN, false)
		d.phase++
		if d.phase < d.Divisor {
			return
		}
		d.phase = 0
		if d.bit == 0 {
			d.bit = 7
			d.cursor++
		} else {
			d.bit--
		}
	}
}
