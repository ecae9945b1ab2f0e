package prismsim

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// A Task is a reactive component of a session. It is called once per clock
// tick with the shared bus; it must read only the current snapshot and drive
// only its own lines.
//
type Task func(b *Bus)

// A Device is anything that can be mounted into a session. Mount is called
// once, before the first tick, with the session's bus; implementations
// should capture their initial pin snapshot there so that the first tick
// does not see a spurious edge.
//
type Device interface {
	Mount(b *Bus) Task
}

// A Session owns a bus and a set of long-lived reactive tasks, and advances
// them in lockstep, one call per task per clock tick. Tasks run for the
// lifetime of the session and are torn down in bulk by Dispose.
//
type Session struct {
	bus   *Bus
	tasks []Task

	wc []chan struct{}
	wg sync.WaitGroup
}

// New builds a session from the given devices.
//
// workers is the number of goroutines used to run tasks each tick. If less
// than or equal to 0, the value of GOMAXPROCS is used. Since every task
// observes the same pre-tick snapshot and drives a disjoint set of lines,
// the task execution order within a tick is unobservable.
//
// Callers must call Dispose once the session is no longer needed.
//
func New(workers int, devs ...Device) (*Session, error) {
	if len(devs) == 0 {
		return nil, errors.New("empty device list")
	}

	s := &Session{bus: &Bus{}}
	for _, d := range devs {
		s.tasks = append(s.tasks, d.Mount(s.bus))
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	ts := s.tasks
	for len(ts) > 0 {
		size := len(ts) / workers
		if size*workers < len(ts) {
			size++
		}
		wc := make(chan struct{}, 1)
		s.wc = append(s.wc, wc)
		go work(s, ts[:size], wc)
		ts = ts[size:]
	}
	return s, nil
}

func work(s *Session, ts []Task, wc <-chan struct{}) {
	for {
		if _, ok := <-wc; !ok {
			s.wg.Done()
			return
		}
		for _, t := range ts {
			t(s.bus)
		}
		s.wg.Done()
	}
}

// Bus returns the session's pin bus.
//
func (s *Session) Bus() *Bus {
	return s.bus
}

// Tick advances the session by one clock tick: every task samples the
// current snapshot and drives the next one, which is then published.
//
func (s *Session) Tick() {
	s.wg.Add(len(s.wc))
	for _, wc := range s.wc {
		wc <- struct{}{}
	}
	s.wg.Wait()
	s.bus.step()
}

// Run advances the session by n clock ticks.
//
func (s *Session) Run(n uint64) {
	for ; n > 0; n-- {
		s.Tick()
	}
}

// RunUntil advances the session until the bus tick counter reaches t.
//
func (s *Session) RunUntil(t uint64) {
	for s.bus.Ticks() < t {
		s.Tick()
	}
}

// Dispose stops the session's worker goroutines.
//
func (s *Session) Dispose() {
	s.wg.Add(len(s.wc))
	for _, wc := range s.wc {
		close(wc)
	}
	s.wg.Wait()
}
