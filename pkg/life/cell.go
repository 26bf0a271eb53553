package life

// Point identifies one cell on the unbounded grid. Coordinates are signed so
// the grid can grow in every direction; Y increases downward to match the
// row-major order of decoded patterns.
type Point struct {
	X int
	Y int
}

// Handle names the slot backing a live cell. A handle outlives the cell's
// death and is handed to a later birth, so collaborators that key per-cell
// state (sprites, labels) off a handle can hide it instead of rebuilding it.
type Handle uint32

// Store is the authoritative set of live cells. Each live coordinate maps to
// exactly one handle; a coordinate absent from the map is dead. Handles of
// killed cells are parked on a LIFO free list and reused before new ones are
// allocated.
type Store struct {
	alive map[Point]Handle
	pool  []Handle
	next  Handle
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{alive: make(map[Point]Handle), next: 1}
}

// Len returns the number of live cells.
func (s *Store) Len() int { return len(s.alive) }

// PoolLen returns the number of dead handles waiting for reuse.
func (s *Store) PoolLen() int { return len(s.pool) }

// Contains reports whether the cell at p is alive.
func (s *Store) Contains(p Point) bool {
	_, ok := s.alive[p]
	return ok
}

// HandleAt returns the handle occupying p, if any.
func (s *Store) HandleAt(p Point) (Handle, bool) {
	h, ok := s.alive[p]
	return h, ok
}

// Each calls fn for every live cell. The store must not be mutated during
// the walk.
func (s *Store) Each(fn func(Point, Handle)) {
	for p, h := range s.alive {
		fn(p, h)
	}
}

// Points returns a snapshot of the live coordinates. The slice is owned by
// the caller and stays valid across later mutations.
func (s *Store) Points() []Point {
	pts := make([]Point, 0, len(s.alive))
	for p := range s.alive {
		pts = append(pts, p)
	}
	return pts
}

// Spawn brings every given coordinate to life, preferring pooled handles
// over fresh ones. Coordinates that are already alive are left untouched.
func (s *Store) Spawn(points []Point) {
	for _, p := range points {
		if _, ok := s.alive[p]; ok {
			continue
		}
		s.alive[p] = s.take()
	}
}

// Kill removes every given coordinate from the live set and parks its handle
// on the free list. Coordinates that are not alive are ignored.
func (s *Store) Kill(points []Point) {
	for _, p := range points {
		h, ok := s.alive[p]
		if !ok {
			continue
		}
		delete(s.alive, p)
		s.pool = append(s.pool, h)
	}
}

// Toggle flips the cell at p and reports whether it is alive afterwards.
// Hand painting and the scheduler go through the same spawn/kill path so the
// handle invariants hold for both.
func (s *Store) Toggle(p Point) bool {
	if s.Contains(p) {
		s.Kill([]Point{p})
		return false
	}
	s.Spawn([]Point{p})
	return true
}

// Place stamps a pattern at origin: each offset is translated by origin and
// spawned unless that cell is already alive.
func (s *Store) Place(origin Point, offsets []Point) {
	for _, d := range offsets {
		p := Point{origin.X + d.X, origin.Y + d.Y}
		if s.Contains(p) {
			continue
		}
		s.alive[p] = s.take()
	}
}

// Clear kills every live cell, recycling all handles.
func (s *Store) Clear() {
	for p, h := range s.alive {
		delete(s.alive, p)
		s.pool = append(s.pool, h)
	}
}

func (s *Store) take() Handle {
	if n := len(s.pool); n > 0 {
		h := s.pool[n-1]
		s.pool = s.pool[:n-1]
		return h
	}
	h := s.next
	s.next++
	return h
}
