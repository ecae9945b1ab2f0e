package simtest_test

import (
	"testing"

	"github.com/prismhw/prismsim"
	"github.com/prismhw/prismsim/simtest"
)

// echo mirrors out line 0 onto in line 0.
type echo struct{}

func (echo) Mount(b *prismsim.Bus) prismsim.Task {
	return func(b *prismsim.Bus) {
		b.DriveIn(0, b.GetOut(0))
	}
}

func Test_wave_latency(t *testing.T) {
	outs := simtest.Concat(simtest.Hold(0x01, 2), simtest.Hold(0x00, 2))
	got := simtest.Wave(t, echo{}, outs)

	// the device sees each level one tick after it is driven
	want := []uint8{0x00, 0x01, 0x01, 0x00}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: in port %#02x, want %#02x", i, got[i], want[i])
		}
	}
}
