package thinning

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustParse builds a Bitmap from ASCII rows or fails the test.
func mustParse(t *testing.T, rows ...string) *Bitmap {
	t.Helper()
	b, err := ParseBitmap(rows...)
	if err != nil {
		t.Fatalf("ParseBitmap failed: %v", err)
	}
	return b
}

func TestNewBitmap(t *testing.T) {
	b := NewBitmap(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", b.Width(), b.Height())
	}
	if b.Count() != 0 {
		t.Errorf("new bitmap should be transparent, got %d opaque cells", b.Count())
	}
}

func TestNewBitmap_NegativeSize(t *testing.T) {
	b := NewBitmap(-2, 5)
	if b.Width() != 0 || b.Height() != 5 {
		t.Errorf("dimensions: got %dx%d, want 0x5", b.Width(), b.Height())
	}
}

func TestBitmap_SetAndOpaque(t *testing.T) {
	b := NewBitmap(3, 3)
	b.Set(1, 2, true)

	if !b.Opaque(1, 2) {
		t.Error("(1,2) should be opaque after Set")
	}
	if b.Transparent(1, 2) {
		t.Error("Transparent should negate Opaque")
	}
	if Transparent(b, 1, 2) {
		t.Error("package Transparent should negate Opaque")
	}

	b.Set(1, 2, false)
	if b.Opaque(1, 2) {
		t.Error("(1,2) should be transparent after clearing")
	}
}

func TestBitmap_OutOfBounds(t *testing.T) {
	b := mustParse(t,
		"###",
		"###",
	)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 3, 0},
		{"above", 0, -1},
		{"below", 0, 2},
		{"far away", 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if b.Opaque(tt.x, tt.y) {
				t.Errorf("(%d,%d) should be transparent", tt.x, tt.y)
			}
			if !b.Transparent(tt.x, tt.y) {
				t.Errorf("(%d,%d) Transparent should be true", tt.x, tt.y)
			}
			// Writes outside the grid are dropped.
			b.Set(tt.x, tt.y, true)
			if b.Opaque(tt.x, tt.y) {
				t.Errorf("(%d,%d) should stay transparent after Set", tt.x, tt.y)
			}
		})
	}

	if b.Count() != 6 {
		t.Errorf("Count: got %d, want 6", b.Count())
	}
}

func TestParseBitmap_RowsRoundTrip(t *testing.T) {
	rows := []string{
		"#..#",
		".##.",
		"....",
	}
	b := mustParse(t, rows...)
	if diff := cmp.Diff(rows, b.Rows()); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if b.String() != "#..#\n.##.\n...." {
		t.Errorf("String: got %q", b.String())
	}
}

func TestParseBitmap_RaggedRows(t *testing.T) {
	_, err := ParseBitmap("###", "##")
	if err == nil {
		t.Error("ParseBitmap should reject rows of different length")
	}
}

func TestParseBitmap_Empty(t *testing.T) {
	b, err := ParseBitmap()
	if err != nil {
		t.Fatalf("ParseBitmap failed: %v", err)
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("dimensions: got %dx%d, want 0x0", b.Width(), b.Height())
	}
}

func TestBitmap_Clone(t *testing.T) {
	b := mustParse(t, "#.", ".#")
	c := b.Clone()
	c.Set(0, 0, false)

	if !b.Opaque(0, 0) {
		t.Error("modifying the clone changed the original")
	}
	if c.Count() != 1 {
		t.Errorf("clone Count: got %d, want 1", c.Count())
	}
}

func TestBitmap_ZeroValue(t *testing.T) {
	var b Bitmap
	if b.Opaque(0, 0) {
		t.Error("zero Bitmap should be transparent everywhere")
	}
	b.Set(0, 0, true)
	if b.Count() != 0 {
		t.Error("zero Bitmap should ignore writes")
	}
}
