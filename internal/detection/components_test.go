package detection

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// mustParse builds a mask from ASCII rows or fails the test.
func mustParse(t *testing.T, rows ...string) *thinning.Bitmap {
	t.Helper()
	m, err := thinning.ParseBitmap(rows...)
	if err != nil {
		t.Fatalf("ParseBitmap failed: %v", err)
	}
	return m
}

func TestComponents(t *testing.T) {
	m := mustParse(t,
		"#.....",
		"......",
		"..##..",
		"..#..#",
		".#...#",
	)

	want := []Component{
		{Seed: Point{2, 2}, Bounds: Bounds{X1: 1, Y1: 2, X2: 4, Y2: 5}, Pixels: 4},
		{Seed: Point{5, 3}, Bounds: Bounds{X1: 5, Y1: 3, X2: 6, Y2: 5}, Pixels: 2},
		{Seed: Point{0, 0}, Bounds: Bounds{X1: 0, Y1: 0, X2: 1, Y2: 1}, Pixels: 1},
	}
	if diff := cmp.Diff(want, Components(m)); diff != "" {
		t.Errorf("Components mismatch (-want +got):\n%s", diff)
	}
}

func TestComponents_DiagonalConnects(t *testing.T) {
	m := mustParse(t,
		"#...",
		".#..",
		"..#.",
		"...#",
	)
	got := Components(m)
	if len(got) != 1 {
		t.Fatalf("components: got %d, want 1", len(got))
	}
	if got[0].Pixels != 4 {
		t.Errorf("Pixels: got %d, want 4", got[0].Pixels)
	}
}

func TestComponents_EqualSizesKeepScanOrder(t *testing.T) {
	m := mustParse(t,
		"...#",
		"#...",
		"..#.",
	)
	got := Components(m)

	var seeds []Point
	for _, c := range got {
		seeds = append(seeds, c.Seed)
	}
	want := []Point{{3, 0}, {0, 1}, {2, 2}}
	if diff := cmp.Diff(want, seeds); diff != "" {
		t.Errorf("seed order mismatch (-want +got):\n%s", diff)
	}
}

func TestComponents_Empty(t *testing.T) {
	if got := Components(mustParse(t, "...", "...")); len(got) != 0 {
		t.Errorf("components: got %d, want 0", len(got))
	}
	if got := Components(thinning.NewBitmap(0, 0)); len(got) != 0 {
		t.Errorf("components of empty mask: got %d, want 0", len(got))
	}
}

func TestComponents_Large(t *testing.T) {
	// A component far larger than any recursion-friendly size.
	m := thinning.NewBitmap(400, 400)
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			m.Set(x, y, true)
		}
	}
	got := Components(m)
	if len(got) != 1 || got[0].Pixels != 160000 {
		t.Errorf("got %+v, want one component of 160000 pixels", got)
	}
}

func TestFloodFill(t *testing.T) {
	m := mustParse(t,
		"......",
		".##...",
		".##..#",
		"......",
	)
	visited := make([]bool, m.Width()*m.Height())

	c := floodFill(m, visited, 1, 1)
	if c.Pixels != 4 {
		t.Errorf("Pixels: got %d, want 4", c.Pixels)
	}
	if c.Bounds != (Bounds{X1: 1, Y1: 1, X2: 3, Y2: 3}) {
		t.Errorf("Bounds: got %+v", c.Bounds)
	}

	// Check visited was marked for the fill and nothing else.
	for _, p := range []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if !visited[p.Y*m.Width()+p.X] {
			t.Errorf("(%d,%d) should be visited", p.X, p.Y)
		}
	}
	if visited[2*m.Width()+5] {
		t.Error("flood fill should not reach a separate component")
	}
}
