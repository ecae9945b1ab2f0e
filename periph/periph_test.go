package periph_test

import (
	"testing"

	"github.com/prismhw/prismsim"
	"github.com/prismhw/prismsim/periph"
)

func newRig(t *testing.T, devs ...prismsim.Device) (*prismsim.Session, *periph.Peripheral, *periph.Conn) {
	t.Helper()
	p := periph.NewPeripheral()
	sess, err := prismsim.New(0, append([]prismsim.Device{p}, devs...)...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sess.Dispose)
	return sess, p, periph.NewMaster(sess, p).Reset()
}

func Test_register_round_trip(t *testing.T) {
	_, _, c := newRig(t)

	data := []struct {
		addr, v uint32
	}{
		{periph.RegCtrl, 0x65980000},
		{periph.RegXfer, 0x03000000},
		{periph.RegTxData, 0x00f05077},
		{periph.RegRxData, 0x00beef12},
	}
	for _, d := range data {
		if err := c.WriteWord(d.addr, d.v); err != nil {
			t.Fatal(err)
		}
		v, err := c.ReadWord(d.addr)
		if err != nil {
			t.Fatal(err)
		}
		if v != d.v {
			t.Fatalf("register %#02x: wrote %#08x, read %#08x", d.addr, d.v, v)
		}
	}
}

func Test_register_bad_address(t *testing.T) {
	_, _, c := newRig(t)

	if err := c.WriteWord(0x08, 1); err == nil {
		t.Fatal("expected error writing unknown register")
	}
	if _, err := c.ReadWord(0x30); err == nil {
		t.Fatal("expected error reading unknown register")
	}
	if _, err := c.ReadWord(periph.RegRxData + 1); err == nil {
		t.Fatal("expected error for misaligned word read")
	}
}

func Test_register_byte_lanes(t *testing.T) {
	_, _, c := newRig(t)

	if err := c.WriteWord(periph.RegTxData, 0x11223344); err != nil {
		t.Fatal(err)
	}
	b, err := c.ReadByte(periph.RegTxData + 1)
	if err != nil {
		t.Fatal(err)
	}
	if b != 0x33 {
		t.Fatalf("byte lane 1 reads %#02x, want 0x33", b)
	}
	if err := c.WriteByte(periph.RegTxData+3, 0xaa); err != nil {
		t.Fatal(err)
	}
	v, err := c.ReadWord(periph.RegTxData)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xaa223344 {
		t.Fatalf("word reads %#08x after byte write, want 0xaa223344", v)
	}
}

func Test_register_op_tick_cost(t *testing.T) {
	_, _, c := newRig(t)

	t0 := c.Ticks()
	if t0 != periph.ResetHoldTicks+periph.ResetSettleTicks {
		t.Fatalf("reset consumed %d ticks, want %d", t0, periph.ResetHoldTicks+periph.ResetSettleTicks)
	}
	if err := c.WriteWord(periph.RegTxData, 1); err != nil {
		t.Fatal(err)
	}
	if n := c.Ticks() - t0; n != periph.WordOpTicks {
		t.Fatalf("word write consumed %d ticks, want %d", n, periph.WordOpTicks)
	}
}

func Test_trigger_gated_by_reset(t *testing.T) {
	sess, _, c := newRig(t)

	// peripheral held in reset: a trigger pulse must not start a transfer
	if err := c.WriteWord(periph.RegCtrl, periph.CtrlReset); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteWord(periph.RegRxData, 0x00aaaaaa); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteWord(periph.RegXfer, periph.XferStart); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteWord(periph.RegXfer, 0); err != nil {
		t.Fatal(err)
	}
	sess.Run(periph.SettleTicks)
	v, err := c.ReadWord(periph.RegRxData)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x00aaaaaa {
		t.Fatalf("rx register changed to %#08x while in reset", v)
	}
}
