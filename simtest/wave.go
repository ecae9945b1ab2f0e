// Package simtest provides utility functions for exercising devices against
// scripted pin waveforms.
//
package simtest

import (
	"testing"

	"github.com/prismhw/prismsim"
	"github.com/prismhw/prismsim/devlib"
)

// Wave mounts dev in a fresh session together with a driver holding the
// peripheral output port at outs[i] during tick i, and returns the
// device-driven port snapshot published after each tick.
//
// Drives propagate through the double-buffered bus: the value driven during
// tick i is sampled by the device during tick i+1, and the device's reaction
// appears in the snapshot returned for tick i+1. Waveforms should hold
// levels long enough to absorb that latency.
//
func Wave(t *testing.T, dev prismsim.Device, outs []uint8) []uint8 {
	t.Helper()

	var cur uint8
	sess, err := prismsim.New(1, devlib.OutDriver(func() uint8 { return cur }), dev)
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Dispose()

	got := make([]uint8, 0, len(outs))
	for _, o := range outs {
		cur = o
		sess.Tick()
		got = append(got, sess.Bus().In())
	}
	return got
}

// Hold returns n copies of level, for building waveforms.
//
func Hold(level uint8, n int) []uint8 {
	w := make([]uint8, n)
	for i := range w {
		w[i] = level
	}
	return w
}

// Concat joins waveform fragments.
//
func Concat(ws ...[]uint8) []uint8 {
	var out []uint8
	for _, w := range ws {
		out = append(out, w...)
	}
	return out
}
