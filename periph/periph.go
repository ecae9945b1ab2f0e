// Package periph models the PRISM programmable shift/condition peripheral:
// its memory-mapped register file, the reset/configure/release handshake,
// and the serial transfer engine driving the pin bus.
package periph

import (
	"github.com/pkg/errors"

	"github.com/prismhw/prismsim"
	"github.com/prismhw/prismsim/chroma"
)

// EnginePins assigns bus lines to the transfer engine.
type EnginePins struct {
	LoadN  int // output line; held low outside transfers to keep the input device loaded
	Clk    int // output line; shift clock
	Data   int // output line; serialized transmit data
	Store  int // output line; pulsed high after the last bit
	DataIn int // input line sampled on each shift clock cycle
}

// DefaultEnginePins is the pin assignment of the reference board.
var DefaultEnginePins = EnginePins{LoadN: 1, Clk: 2, Data: 3, Store: 7, DataIn: 0}

// Transfer engine phases.
const (
	phIdle = iota
	phSetup
	phHigh
	phLow
	phStore
	phDone
)

const xferMask = uint32(1)<<XferWidth - 1

// A Peripheral is the register file and transfer engine of the PRISM unit.
// Register access goes through a Conn obtained from Master.Reset; the
// transfer engine runs as a bus task and is the only part that touches pins.
//
// The peripheral powers up held in reset; it runs only after the control
// register has been written with CtrlReset clear.
//
type Peripheral struct {
	Pins EnginePins

	// register file
	ctrl  uint32
	xfer  uint32
	tx    uint32
	rx    uint32
	sel   uint32 // pending select word for the next table commit
	table [TableLen]chroma.Entry
	idx   int // table write pointer; also the readback window

	inReset bool
	armed   bool
	start   bool

	// transfer engine
	phase int
	bit   int
	sr    uint32
	capt  uint32
}

// NewPeripheral returns a peripheral on the default engine pins, held in
// power-on reset.
//
func NewPeripheral() *Peripheral {
	return &Peripheral{Pins: DefaultEnginePins, inReset: true, armed: true}
}

// write applies one register write. Called by the register access layer
// between ticks.
func (p *Peripheral) write(addr, v uint32) error {
	switch addr {
	case RegCtrl:
		p.ctrl = v
		p.inReset = v&CtrlReset != 0
		if p.inReset {
			// asserting reset rewinds the table window and aborts
			// any transfer in flight
			p.idx = 0
			p.phase = phIdle
			p.start = false
			p.armed = true
		}
	case RegTabSel:
		p.sel = v
	case RegTabData:
		p.table[p.idx] = chroma.Entry{Select: p.sel, Data: v}
		p.idx = (p.idx + 1) % TableLen
	case RegXfer:
		p.xfer = v
		if v == 0 {
			p.armed = true
		} else if p.armed {
			p.armed = false
			if !p.inReset {
				p.start = true
			}
		}
	case RegTxData:
		p.tx = v
	case RegRxData:
		p.rx = v
	default:
		return errors.Errorf("write: unknown register %#02x", addr)
	}
	return nil
}

// read returns the value of one register. Called by the register access
// layer between ticks.
func (p *Peripheral) read(addr uint32) (uint32, error) {
	switch addr {
	case RegCtrl:
		return p.ctrl, nil
	case RegTabSel:
		return p.table[p.idx].Select, nil
	case RegTabData:
		return p.table[p.idx].Data, nil
	case RegXfer:
		return p.xfer, nil
	case RegTxData:
		return p.tx, nil
	case RegRxData:
		return p.rx, nil
	}
	return 0, errors.Errorf("read: unknown register %#02x", addr)
}

// Mount implements prismsim.Device.
func (p *Peripheral) Mount(b *prismsim.Bus) prismsim.Task {
	return p.tick
}

func (p *Peripheral) drive(b *prismsim.Bus, loadN, clk, data, store bool) {
	b.DriveOut(p.Pins.LoadN, loadN)
	b.DriveOut(p.Pins.Clk, clk)
	b.DriveOut(p.Pins.Data, data)
	b.DriveOut(p.Pins.Store, store)
}

func (p *Peripheral) srbit() bool {
	return p.sr&(1<<uint(p.bit)) != 0
}

// tick runs one cycle of the transfer engine. One serialized bit takes two
// ticks: the clock is driven high, then driven back low while the input
// line is sampled. The sample lands on the same snapshot in which the
// external devices observe the rising edge.
func (p *Peripheral) tick(b *prismsim.Bus) {
	if p.inReset && p.phase != phIdle {
		p.phase = phIdle
	}
	switch p.phase {
	case phIdle:
		p.drive(b, false, false, false, false)
		if p.start && !p.inReset {
			p.start = false
			p.bit = XferWidth - 1
			p.capt = 0
			p.sr = p.tx & xferMask
			p.phase = phSetup
		}
	case phSetup:
		p.drive(b, true, false, p.srbit(), false)
		p.phase = phHigh
	case phHigh:
		p.drive(b, true, true, p.srbit(), false)
		p.phase = phLow
	case phLow:
		p.capt <<= 1
		if b.GetIn(p.Pins.DataIn) {
			p.capt |= 1
		}
		p.bit--
		if p.bit < 0 {
			p.drive(b, true, false, false, false)
			p.phase = phStore
		} else {
			p.drive(b, true, false, p.srbit(), false)
			p.phase = phHigh
		}
	case phStore:
		p.drive(b, true, false, false, true)
		p.phase = phDone
	case phDone:
		p.rx = p.capt & xferMask
		p.drive(b, false, false, false, false)
		p.phase = phIdle
	}
}
