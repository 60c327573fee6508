package thinning

import "testing"

// neighborhoodOf classifies the center of a 3×3 ASCII pattern.
func neighborhoodOf(t *testing.T, top, middle, bottom string) Neighborhood {
	t.Helper()
	return Classify(mustParse(t, top, middle, bottom), 1, 1)
}

func TestClassify(t *testing.T) {
	n := neighborhoodOf(t,
		"#..",
		".##",
		"..#",
	)

	want := map[[2]int]bool{
		{-1, -1}: true, {0, -1}: false, {1, -1}: false,
		{-1, 0}: false, {0, 0}: true, {1, 0}: true,
		{-1, 1}: false, {0, 1}: false, {1, 1}: true,
	}
	for off, opaque := range want {
		if got := n.Opaque(off[0], off[1]); got != opaque {
			t.Errorf("Opaque(%d,%d): got %v, want %v", off[0], off[1], got, opaque)
		}
	}

	if n.String() != "#../.##/..#" {
		t.Errorf("String: got %q", n.String())
	}
}

func TestClassify_ImageBorder(t *testing.T) {
	b := mustParse(t,
		"##",
		"##",
	)
	n := Classify(b, 0, 0)

	if n.String() != ".../.##/.##" {
		t.Errorf("border neighborhood: got %q, want .../.##/.##", n.String())
	}
	if n.TransparentAround() != 5 {
		t.Errorf("TransparentAround: got %d, want 5", n.TransparentAround())
	}
}

func TestClassify_RecomputedAfterMutation(t *testing.T) {
	b := mustParse(t,
		"###",
		"###",
		"###",
	)
	before := Classify(b, 1, 1)
	b.Set(0, 0, false)
	after := Classify(b, 1, 1)

	if before == after {
		t.Error("Classify should reflect the mutated mask")
	}
	if !before.Opaque(-1, -1) || after.Opaque(-1, -1) {
		t.Error("snapshot taken before mutation should not change")
	}
}

func TestNeighborhood_Counts(t *testing.T) {
	tests := []struct {
		name              string
		rows              [3]string
		opaqueOrthogonal  int
		exposure          int
		transparentAround int
	}{
		{"isolated", [3]string{"...", ".#.", "..."}, 0, 4, 8},
		{"solid", [3]string{"###", "###", "###"}, 4, 0, 0},
		{"vertical line", [3]string{".#.", ".#.", ".#."}, 2, 2, 6},
		{"diagonals only", [3]string{"#.#", ".#.", "#.#"}, 0, 4, 4},
		{"top edge", [3]string{"...", "###", "###"}, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := neighborhoodOf(t, tt.rows[0], tt.rows[1], tt.rows[2])
			if got := n.OpaqueOrthogonal(); got != tt.opaqueOrthogonal {
				t.Errorf("OpaqueOrthogonal: got %d, want %d", got, tt.opaqueOrthogonal)
			}
			if got := n.Exposure(); got != tt.exposure {
				t.Errorf("Exposure: got %d, want %d", got, tt.exposure)
			}
			if got := n.TransparentAround(); got != tt.transparentAround {
				t.Errorf("TransparentAround: got %d, want %d", got, tt.transparentAround)
			}
		})
	}
}

func TestNeighborhood_OffsetOutOfRange(t *testing.T) {
	n := neighborhoodOf(t, "###", "###", "###")
	if n.Opaque(2, 0) || n.Opaque(0, -2) {
		t.Error("offsets beyond the 3x3 window should read transparent")
	}
}
