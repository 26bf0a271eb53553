package life

import "math/rand/v2"

// NewRand returns a deterministic PCG-backed generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Soup returns a random cluster of live cells covering a w by h region
// centred on the origin, with roughly one cell in three alive.
func Soup(r *rand.Rand, w, h int) []Point {
	pts := make([]Point, 0, w*h/3)
	for y := -h / 2; y < (h+1)/2; y++ {
		for x := -w / 2; x < (w+1)/2; x++ {
			if r.IntN(3) == 0 {
				pts = append(pts, Point{x, y})
			}
		}
	}
	return pts
}
