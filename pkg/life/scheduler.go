package life

import "time"

// DefaultInterval is the generation period used when none is configured.
const DefaultInterval = 200 * time.Millisecond

// Scheduler advances a Store one generation at a time. While running it is
// gated by a repeating interval timer fed with wall-clock deltas; while
// paused it computes a generation only on an explicit one-shot request.
type Scheduler struct {
	store *Store

	interval time.Duration // configured period
	applied  time.Duration // period the timer currently runs at
	elapsed  time.Duration

	running    bool
	stepOnce   bool
	generation uint64
}

// NewScheduler returns a running scheduler ticking at the given interval.
func NewScheduler(store *Store, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{store: store, interval: interval, applied: interval, running: true}
}

// Running reports whether the scheduler advances on its timer.
func (s *Scheduler) Running() bool { return s.running }

// SetRunning starts or pauses automatic generation computation.
func (s *Scheduler) SetRunning(running bool) { s.running = running }

// Interval returns the configured generation period.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// SetInterval changes the generation period. The change is picked up at the
// start of the next Advance call.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.interval = d
}

// RequestStep asks for exactly one generation while paused. The request is
// consumed by the next Advance; repeated requests before then collapse into
// one.
func (s *Scheduler) RequestStep() { s.stepOnce = true }

// Generation returns how many generations have been computed since the last
// Reset.
func (s *Scheduler) Generation() uint64 { return s.generation }

// Reset zeroes the generation counter, timer progress, and any pending step
// request. The configured interval and running state are kept.
func (s *Scheduler) Reset() {
	s.generation = 0
	s.elapsed = 0
	s.stepOnce = false
}

// Advance accounts for delta elapsed wall-clock time and computes at most
// one generation, reporting whether it did. Interval changes reset the
// timer's accumulated progress; speed changes take effect on the next tick
// boundary rather than retroactively.
func (s *Scheduler) Advance(delta time.Duration) bool {
	if s.interval != s.applied {
		s.applied = s.interval
		s.elapsed = 0
	}
	if s.running {
		s.elapsed += delta
		if s.elapsed < s.applied {
			return false
		}
		s.elapsed -= s.applied
		s.Step()
		return true
	}
	if !s.stepOnce {
		return false
	}
	s.stepOnce = false
	s.Step()
	return true
}

// Step computes and applies one generation immediately, bypassing the timer.
func (s *Scheduler) Step() {
	kills, spawns := nextGeneration(s.store)
	s.store.Kill(kills)
	s.store.Spawn(spawns)
	s.generation++
}

// nextGeneration classifies every relevant cell under B3/S23 against a
// snapshot of the live set taken before any mutation. The returned lists are
// disjoint: a live cell with three neighbors is classified as surviving, so
// it can never also appear as a birth.
func nextGeneration(store *Store) (kills, spawns []Point) {
	alive := store.Points()
	counts := NeighborCounts(alive)

	kills = make([]Point, 0, len(alive)/2)
	for _, p := range alive {
		if !Survives(counts[p]) {
			kills = append(kills, p)
		}
	}
	for p, n := range counts {
		if Born(n) && !store.Contains(p) {
			spawns = append(spawns, p)
		}
	}
	return kills, spawns
}
