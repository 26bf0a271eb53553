package life

import "testing"

func TestRuleDomain(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantSurvive := n == 2 || n == 3
		wantBorn := n == 3
		if got := Survives(n); got != wantSurvive {
			t.Fatalf("Survives(%d) = %v, expected %v", n, got, wantSurvive)
		}
		if got := Born(n); got != wantBorn {
			t.Fatalf("Born(%d) = %v, expected %v", n, got, wantBorn)
		}
	}
}

func TestNeighborCountsSingleCell(t *testing.T) {
	counts := NeighborCounts([]Point{{0, 0}})

	if len(counts) != 8 {
		t.Fatalf("expected 8 counted cells, got %d", len(counts))
	}
	if _, ok := counts[Point{0, 0}]; ok {
		t.Fatalf("a cell must not contribute to its own count")
	}
	for p, n := range counts {
		if n != 1 {
			t.Fatalf("cell %v counted %d neighbors, expected 1", p, n)
		}
	}
}

func TestNeighborCountsPair(t *testing.T) {
	counts := NeighborCounts([]Point{{0, 0}, {1, 0}})

	if len(counts) != 12 {
		t.Fatalf("expected 12 counted cells, got %d", len(counts))
	}

	expects := map[Point]int{
		{0, 0}:  1, // sees only its partner
		{1, 0}:  1,
		{0, -1}: 2, // above the pair, sees both
		{1, -1}: 2,
		{0, 1}:  2,
		{1, 1}:  2,
		{-1, 0}: 1,
		{2, 0}:  1,
	}
	for p, want := range expects {
		if got := counts[p]; got != want {
			t.Fatalf("cell %v counted %d neighbors, expected %d", p, got, want)
		}
	}
}
