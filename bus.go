package prismsim

// PortWidth is the number of lines on each of the two ports of the pin bus.
const PortWidth = 8

// lineState holds the state of every line of the pin bus at one tick
// boundary. out carries the lines driven by the peripheral, in the lines
// driven by the external devices.
type lineState struct {
	out [PortWidth]bool
	in  [PortWidth]bool
}

// A Bus is the shared clocked pin state of a session. It is double buffered:
// during a tick every task reads the same pre-tick snapshot and drives its
// own lines into the next one, so effects computed in tick N are observed by
// the other side in tick N+1.
//
// Each driver owns a disjoint subset of lines and must drive them on every
// tick; a line nobody drives reads as logical zero. The reset line is owned
// by the bus master and changes only between ticks, so it is not buffered.
//
type Bus struct {
	s0, s1 lineState
	rstN   bool
	tick   uint64
}

func checkLine(n int) {
	if n < 0 || n >= PortWidth {
		panic("line number out of range")
	}
}

// Out returns the peripheral-driven port as a packed byte, line 0 in bit 0.
//
func (b *Bus) Out() uint8 {
	return pack(&b.s0.out)
}

// In returns the device-driven port as a packed byte, line 0 in bit 0.
//
func (b *Bus) In() uint8 {
	return pack(&b.s0.in)
}

func pack(lines *[PortWidth]bool) uint8 {
	var v uint8
	for i, s := range lines {
		if s {
			v |= 1 << uint(i)
		}
	}
	return v
}

// GetOut returns the state of line n of the peripheral-driven port.
//
func (b *Bus) GetOut(n int) bool {
	checkLine(n)
	return b.s0.out[n]
}

// GetIn returns the state of line n of the device-driven port.
//
func (b *Bus) GetIn(n int) bool {
	checkLine(n)
	return b.s0.in[n]
}

// DriveOut drives line n of the peripheral-driven port for the next tick.
//
func (b *Bus) DriveOut(n int, s bool) {
	checkLine(n)
	b.s1.out[n] = s
}

// DriveIn drives line n of the device-driven port for the next tick.
//
func (b *Bus) DriveIn(n int, s bool) {
	checkLine(n)
	b.s1.in[n] = s
}

// RstN returns the state of the active-low reset line.
//
func (b *Bus) RstN() bool {
	return b.rstN
}

// DriveRstN sets the reset line. Only the bus master may call this, and only
// between ticks.
//
func (b *Bus) DriveRstN(s bool) {
	b.rstN = s
}

// Ticks returns the number of completed clock ticks.
//
func (b *Bus) Ticks() uint64 {
	return b.tick
}

// step publishes the driven state as the next snapshot.
func (b *Bus) step() {
	b.tick++
	b.s0, b.s1 = b.s1, b.s0
}
