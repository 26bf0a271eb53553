package life

// The Moore neighborhood: the eight cells surrounding a given cell.
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighborCounts returns how many live neighbors every relevant cell has.
// The map holds an entry for each cell adjacent to at least one live cell,
// dead or alive; a cell never contributes to its own count. The map is
// pre-sized for the nine cells each live cell touches.
func NeighborCounts(alive []Point) map[Point]int {
	counts := make(map[Point]int, len(alive)*9)
	for _, p := range alive {
		for _, d := range neighborOffsets {
			counts[Point{p.X + d.X, p.Y + d.Y}]++
		}
	}
	return counts
}

// Survives reports whether a live cell with n live neighbors stays alive.
// Live cells survive with 2 or 3 neighbors (the S23 half of B3/S23).
func Survives(n int) bool { return n == 2 || n == 3 }

// Born reports whether a dead cell with n live neighbors comes alive.
// Birth requires exactly 3 neighbors (the B3 half of B3/S23).
func Born(n int) bool { return n == 3 }
