package prismsim_test

import (
	"testing"

	hw "github.com/prismhw/prismsim"
)

// mountFn adapts a function to the Device interface for test parts.
type mountFn func(b *hw.Bus) hw.Task

func (f mountFn) Mount(b *hw.Bus) hw.Task { return f(b) }

func Test_session_empty(t *testing.T) {
	if _, err := hw.New(1); err == nil {
		t.Fatal("expected error for empty device list")
	}
}

func Test_session_double_buffer(t *testing.T) {
	driver := mountFn(func(b *hw.Bus) hw.Task {
		return func(b *hw.Bus) { b.DriveOut(0, true) }
	})
	var seen []bool
	observer := mountFn(func(b *hw.Bus) hw.Task {
		return func(b *hw.Bus) { seen = append(seen, b.GetOut(0)) }
	})

	s, err := hw.New(2, driver, observer)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	s.Run(3)
	// the drive of tick 0 is published for tick 1
	want := []bool{false, true, true}
	if len(seen) != len(want) {
		t.Fatalf("observed %d samples, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("tick %d: observed %v, want %v", i, seen[i], want[i])
		}
	}
}

func Test_session_same_snapshot(t *testing.T) {
	// a toggling driver plus two observers: within any tick both observers
	// must sample the same pre-tick snapshot.
	level := false
	driver := mountFn(func(b *hw.Bus) hw.Task {
		return func(b *hw.Bus) {
			level = !level
			b.DriveOut(3, level)
		}
	})
	var seenA, seenB []uint8
	obs := func(dst *[]uint8) mountFn {
		return func(b *hw.Bus) hw.Task {
			return func(b *hw.Bus) { *dst = append(*dst, b.Out()) }
		}
	}

	s, err := hw.New(3, driver, obs(&seenA), obs(&seenB))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	s.Run(16)
	if len(seenA) != 16 || len(seenB) != 16 {
		t.Fatalf("observed %d/%d samples, want 16", len(seenA), len(seenB))
	}
	for i := range seenA {
		if seenA[i] != seenB[i] {
			t.Fatalf("tick %d: observers disagree: %#02x != %#02x", i, seenA[i], seenB[i])
		}
	}
}

func Test_session_undriven_lines_read_zero(t *testing.T) {
	observer := mountFn(func(b *hw.Bus) hw.Task {
		return func(b *hw.Bus) {
			if b.Out() != 0 || b.In() != 0 {
				t.Errorf("undriven ports read %#02x/%#02x, want zero", b.Out(), b.In())
			}
		}
	})
	s, err := hw.New(1, observer)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()
	s.Run(8)
}

func Test_session_ticks(t *testing.T) {
	s, err := hw.New(1, mountFn(func(b *hw.Bus) hw.Task {
		return func(b *hw.Bus) {}
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	if n := s.Bus().Ticks(); n != 0 {
		t.Fatalf("fresh session at tick %d", n)
	}
	s.Run(5)
	s.RunUntil(9)
	if n := s.Bus().Ticks(); n != 9 {
		t.Fatalf("at tick %d, want 9", n)
	}
}

func Test_session_reset_line(t *testing.T) {
	var seen []bool
	observer := mountFn(func(b *hw.Bus) hw.Task {
		return func(b *hw.Bus) { seen = append(seen, b.RstN()) }
	})
	s, err := hw.New(1, observer)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	s.Tick()
	s.Bus().DriveRstN(true)
	s.Tick()
	if seen[0] != false || seen[1] != true {
		t.Fatalf("reset line sequence %v, want [false true]", seen)
	}
}
