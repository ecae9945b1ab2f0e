// Package devlib implements emulators of the external serial devices wired
// to the PRISM peripheral: a parallel-load serial-out shift register, a
// serial-in parallel-out shift register with store, and a byte-serial link.
//
// All devices share the same skeleton: on every clock tick they sample the
// peripheral-driven port, apply edge-triggered transitions against the
// snapshot stored on the previous tick, then remember the new snapshot. The
// snapshot is seeded when the device is mounted, so the first tick never
// sees a spurious edge. An undriven line samples as logical zero.
//
package devlib

import (
	"github.com/pkg/errors"
)

// Kind selects which device protocol is live for a session. The shift pair
// and the serial link drive overlapping input lines, so only one kind is
// mounted per session.
type Kind int

// Device kinds.
const (
	KindShift  Kind = iota // input/output shift register pair
	KindSerial             // byte-serial link
)

func (k Kind) String() string {
	switch k {
	case KindShift:
		return "shift"
	case KindSerial:
		return "serial"
	}
	return "unknown"
}

// ParseKind parses a device kind name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "shift":
		return KindShift, nil
	case "serial":
		return KindSerial, nil
	}
	return 0, errors.Errorf("unknown device kind %q", s)
}

// rising reports a low-to-high transition of line n between two port
// snapshots. A line high in both samples is not an edge.
func rising(prev, cur uint8, n int) bool {
	m := uint8(1) << uint(n)
	return prev&m == 0 && cur&m != 0
}

func line(n int) uint8 {
	return 1 << uint(n)
}
