package periph

import (
	"github.com/pkg/errors"

	"github.com/prismhw/prismsim/chroma"
)

// State of the configuration protocol.
type State int

// Protocol states, in handshake order.
const (
	Unconfigured State = iota
	ResetAsserted
	TableLoading
	TableLoaded
	Released
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case ResetAsserted:
		return "reset-asserted"
	case TableLoading:
		return "table-loading"
	case TableLoaded:
		return "table-loaded"
	case Released:
		return "released"
	}
	return "invalid"
}

// A Controller sequences the configuration and transfer protocols over a
// register connection. A failed configuration leaves the controller
// unconfigured; nothing is retried.
//
type Controller struct {
	conn  *Conn
	state State

	busyUntil uint64 // tick at which the pending transfer's window elapses
}

// NewController returns an unconfigured controller on conn.
//
func NewController(conn *Conn) *Controller {
	return &Controller{conn: conn, state: Unconfigured}
}

// State returns the current protocol state.
//
func (ct *Controller) State() State {
	return ct.state
}

// wordIO is the word-granularity register access the checked write needs.
// Satisfied by *Conn.
type wordIO interface {
	WriteWord(addr, v uint32) error
	ReadWord(addr uint32) (uint32, error)
}

// writeChecked writes a register and validates the readback. A mismatch is
// a hard configuration error.
func writeChecked(c wordIO, addr, v uint32) error {
	if err := c.WriteWord(addr, v); err != nil {
		return err
	}
	r, err := c.ReadWord(addr)
	if err != nil {
		return err
	}
	if r != v {
		return errors.Wrapf(ErrReadback, "register %#02x: wrote %#08x, read %#08x", addr, v, r)
	}
	return nil
}

// RunConfiguration loads a state information table and releases the
// peripheral. control is the released control word; the reset-assert write
// is the same word with CtrlReset set, so the configuration payload is
// preserved across the handshake.
//
// The sequence is re-entrant: calling it again asserts reset and loads the
// new table from entry 0.
//
func (ct *Controller) RunConfiguration(table chroma.Table, control uint32) error {
	ct.state = Unconfigured
	if err := writeChecked(ct.conn, RegCtrl, control|CtrlReset); err != nil {
		return errors.Wrap(err, "assert reset")
	}
	ct.state = ResetAsserted

	ct.state = TableLoading
	for i, e := range table {
		if err := ct.conn.WriteWord(RegTabSel, e.Select); err != nil {
			return errors.Wrapf(err, "entry %d select", i)
		}
		if err := ct.conn.WriteWord(RegTabData, e.Data); err != nil {
			return errors.Wrapf(err, "entry %d data", i)
		}
	}
	ct.state = TableLoaded

	// the table is valid only if entry 0 round-trips on the window
	sel, err := ct.conn.ReadWord(RegTabSel)
	if err != nil {
		return err
	}
	data, err := ct.conn.ReadWord(RegTabData)
	if err != nil {
		return err
	}
	if sel != table[0].Select || data != table[0].Data {
		ct.state = Unconfigured
		return errors.Wrapf(ErrReadback, "table entry 0: wrote (%#x, %#x), read (%#x, %#x)",
			table[0].Select, table[0].Data, sel, data)
	}

	if err := writeChecked(ct.conn, RegCtrl, control&^CtrlReset); err != nil {
		ct.state = Unconfigured
		return errors.Wrap(err, "release")
	}
	ct.state = Released
	return nil
}

// Trigger preloads the transmit value and pulses the transfer control
// register. The peripheral triggers on the nonzero-then-zero write pair,
// not on a held level. The result is valid once the settling window
// (SettleTicks from the trigger) has elapsed.
//
func (ct *Controller) Trigger(tx uint32) error {
	if ct.state != Released {
		return errors.Wrapf(ErrSequence, "transfer in state %s", ct.state)
	}
	if t := ct.conn.Ticks(); t < ct.busyUntil {
		return errors.Wrapf(ErrBusy, "re-trigger %d ticks early", ct.busyUntil-t)
	}
	if err := ct.conn.WriteWord(RegTxData, tx); err != nil {
		return err
	}
	if err := ct.conn.WriteWord(RegXfer, XferStart); err != nil {
		return err
	}
	ct.busyUntil = ct.conn.Ticks() + SettleTicks
	return ct.conn.WriteWord(RegXfer, 0)
}

// Result reads the received word of the last transfer. Calling it before
// the settling window elapses is a caller error, reported as ErrBusy; the
// wait is never performed silently.
//
func (ct *Controller) Result() (uint32, error) {
	if ct.state != Released {
		return 0, errors.Wrapf(ErrSequence, "transfer in state %s", ct.state)
	}
	if t := ct.conn.Ticks(); t < ct.busyUntil {
		return 0, errors.Wrapf(ErrBusy, "result read %d ticks early", ct.busyUntil-t)
	}
	return ct.conn.ReadWord(RegRxData)
}

// RunTransfer performs one complete transfer: trigger, wait out the
// settling window, read the received word.
//
func (ct *Controller) RunTransfer(tx uint32) (uint32, error) {
	if err := ct.Trigger(tx); err != nil {
		return 0, err
	}
	if t := ct.conn.Ticks(); t < ct.busyUntil {
		ct.conn.Run(ct.busyUntil - t)
	}
	return ct.Result()
}
