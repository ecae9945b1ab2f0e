package devlib_test

import (
	"testing"

	"github.com/prismhw/prismsim"
	"github.com/prismhw/prismsim/devlib"
)

// Default link pins: data on in line 0 (0x01), cs_n on in line 3 (0x08).

func Test_serial_link_waveform(t *testing.T) {
	link := devlib.NewSerialLink(2)
	link.Queue([]byte{0xc5}) // 11000101

	sess, err := prismsim.New(1, link)
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Dispose()

	if link.Done() {
		t.Fatal("link done with a queued byte")
	}

	// each bit held for two ticks, MSB first, cs_n low throughout
	bits := []uint8{1, 1, 0, 0, 0, 1, 0, 1}
	for i, bit := range bits {
		for phase := 0; phase < 2; phase++ {
			sess.Tick()
			// the drive of this tick is published with the tick
			want := bit // cs_n low
			if got := sess.Bus().In(); got != want {
				t.Fatalf("bit %d phase %d: in port %#02x, want %#02x", i, phase, got, want)
			}
		}
	}
	if !link.Done() {
		t.Fatal("link not done after walking the buffer")
	}

	// idle: data low, cs_n deasserted high
	sess.Run(2)
	if got := sess.Bus().In(); got != 0x08 {
		t.Fatalf("idle in port %#02x, want 0x08", got)
	}
}

func Test_serial_link_idles_until_queued(t *testing.T) {
	link := devlib.NewSerialLink(1)
	sess, err := prismsim.New(1, link)
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Dispose()

	sess.Run(3)
	if got := sess.Bus().In(); got != 0x08 {
		t.Fatalf("idle in port %#02x, want 0x08", got)
	}

	link.Queue([]byte{0x80}) // single high MSB
	sess.Tick()
	if got := sess.Bus().In(); got != 0x01 {
		t.Fatalf("first bit in port %#02x, want 0x01 (data high, cs_n low)", got)
	}
	sess.Run(7)
	if !link.Done() {
		t.Fatal("link not done after eight bit times")
	}
}
