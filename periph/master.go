package periph

import (
	"github.com/pkg/errors"

	"github.com/prismhw/prismsim"
)

// A Master owns the bus reset line and hands out register connections. No
// register traffic is possible before Reset completes: the Conn it returns
// is the capability required for every operation.
//
type Master struct {
	sess *prismsim.Session
	p    *Peripheral
}

// NewMaster returns a master for a peripheral mounted in the given session.
//
func NewMaster(sess *prismsim.Session, p *Peripheral) *Master {
	return &Master{sess: sess, p: p}
}

// Reset drives the bus reset line low for ResetHoldTicks, releases it and
// lets the bus settle, then returns the register connection.
//
func (m *Master) Reset() *Conn {
	b := m.sess.Bus()
	b.DriveRstN(false)
	m.sess.Run(ResetHoldTicks)
	b.DriveRstN(true)
	m.sess.Run(ResetSettleTicks)
	return &Conn{sess: m.sess, p: m.p}
}

// A Conn issues register transactions against the peripheral. Every
// operation consumes whole clock ticks and completes before the next one
// starts; two operations are never reordered.
//
type Conn struct {
	sess *prismsim.Session
	p    *Peripheral
}

func checkWordAddr(addr uint32) error {
	if addr&3 != 0 {
		return errors.Errorf("misaligned word address %#02x", addr)
	}
	return nil
}

// WriteWord performs one word write transaction. The write takes effect at
// the end of the transaction.
//
func (c *Conn) WriteWord(addr, v uint32) error {
	if err := checkWordAddr(addr); err != nil {
		return err
	}
	c.sess.Run(WordOpTicks)
	return c.p.write(addr, v)
}

// ReadWord performs one word read transaction.
//
func (c *Conn) ReadWord(addr uint32) (uint32, error) {
	if err := checkWordAddr(addr); err != nil {
		return 0, err
	}
	c.sess.Run(WordOpTicks)
	return c.p.read(addr)
}

// WriteByte performs one byte write transaction on a byte lane of a word
// register. Not part of the core protocol: the write is read-modify-write
// on the stored word.
//
func (c *Conn) WriteByte(addr uint32, v uint8) error {
	c.sess.Run(ByteOpTicks)
	w, err := c.p.read(addr &^ 3)
	if err != nil {
		return err
	}
	sh := 8 * (addr & 3)
	w = w&^(0xff<<sh) | uint32(v)<<sh
	return c.p.write(addr&^3, w)
}

// ReadByte performs one byte read transaction.
//
func (c *Conn) ReadByte(addr uint32) (uint8, error) {
	c.sess.Run(ByteOpTicks)
	w, err := c.p.read(addr &^ 3)
	if err != nil {
		return 0, err
	}
	return uint8(w >> (8 * (addr & 3))), nil
}

// Run advances the session by n clock ticks without register traffic.
//
func (c *Conn) Run(n uint64) {
	c.sess.Run(n)
}

// Ticks returns the bus tick counter.
//
func (c *Conn) Ticks() uint64 {
	return c.sess.Bus().Ticks()
}
