package thinning

import (
	"fmt"
	"strings"
)

// Mask is a binary opacity view over a rectangular pixel grid.
//
// Implementations must treat every coordinate outside [0,Width)×[0,Height) as
// transparent and must ignore Set calls for such coordinates. The thinning
// code relies on this: it reads neighbors of border pixels without bounds
// checks.
type Mask interface {
	// Width is the number of columns.
	Width() int

	// Height is the number of rows.
	Height() int

	// Opaque reports whether the cell at (x, y) is opaque.
	Opaque(x, y int) bool

	// Set marks the cell at (x, y) opaque or transparent.
	Set(x, y int, opaque bool)
}

// Transparent reports whether the cell at (x, y) of m is transparent. It is
// always the negation of m.Opaque(x, y).
func Transparent(m Mask, x, y int) bool {
	return !m.Opaque(x, y)
}

// Bitmap is the in-memory Mask used by the rest of the module.
//
// The zero value is an empty 0×0 mask.
type Bitmap struct {
	width  int
	height int
	pix    []bool
}

// NewBitmap returns a fully transparent width×height mask. Negative sizes are
// treated as zero.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// ParseBitmap builds a mask from rows of text, '#' marking an opaque cell and
// any other byte a transparent one. All rows must have the same length.
//
//	m, err := thinning.ParseBitmap(
//	    "..##..",
//	    "..##..",
//	)
func ParseBitmap(rows ...string) (*Bitmap, error) {
	if len(rows) == 0 {
		return NewBitmap(0, 0), nil
	}
	b := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), b.width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				b.pix[y*b.width+x] = true
			}
		}
	}
	return b, nil
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Opaque reports whether (x, y) is opaque. Out-of-bounds cells are transparent.
func (b *Bitmap) Opaque(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.pix[y*b.width+x]
}

// Transparent is the negation of Opaque.
func (b *Bitmap) Transparent(x, y int) bool {
	return !b.Opaque(x, y)
}

// Set changes the cell at (x, y). Out-of-bounds writes are dropped.
func (b *Bitmap) Set(x, y int, opaque bool) {
	if !b.inBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = opaque
}

// Count returns the number of opaque cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.pix {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of b.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{width: b.width, height: b.height, pix: make([]bool, len(b.pix))}
	copy(c.pix, b.pix)
	return c
}

// Rows renders the mask in the ParseBitmap format, one string per row.
func (b *Bitmap) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			if b.pix[y*b.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the mask as newline-separated rows.
func (b *Bitmap) String() string {
	return strings.Join(b.Rows(), "\n")
}
