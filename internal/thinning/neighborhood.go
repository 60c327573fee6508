package thinning

import "image"

// Neighborhood is the 3×3 opacity pattern centered on a pixel, one bit per
// cell. Bit (dy+1)*3 + (dx+1) holds the cell at offset (dx, dy).
//
// A Neighborhood is a snapshot. It must be recomputed with Classify after the
// mask changes.
type Neighborhood uint16

// orthogonal lists the 4-neighbor offsets: up, right, down, left.
var orthogonal = [4]image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// surrounding lists the 8-neighbor offsets in row-major order.
var surrounding = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func cellBit(dx, dy int) Neighborhood {
	return 1 << uint((dy+1)*3+(dx+1))
}

// Classify reads the 3×3 neighborhood of (x, y) from m.
func Classify(m Mask, x, y int) Neighborhood {
	var n Neighborhood
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.Opaque(x+dx, y+dy) {
				n |= cellBit(dx, dy)
			}
		}
	}
	return n
}

// Opaque reports whether the cell at offset (dx, dy) is opaque. Offsets
// outside {-1,0,1}² are reported transparent.
func (n Neighborhood) Opaque(dx, dy int) bool {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return false
	}
	return n&cellBit(dx, dy) != 0
}

func (n Neighborhood) opaqueAt(p image.Point) bool {
	return n.Opaque(p.X, p.Y)
}

// Center reports whether the center pixel is opaque.
func (n Neighborhood) Center() bool {
	return n.Opaque(0, 0)
}

// OpaqueOrthogonal counts the opaque 4-neighbors of the center.
func (n Neighborhood) OpaqueOrthogonal() int {
	count := 0
	for _, o := range orthogonal {
		if n.opaqueAt(o) {
			count++
		}
	}
	return count
}

// Exposure counts the transparent 4-neighbors of the center.
func (n Neighborhood) Exposure() int {
	return 4 - n.OpaqueOrthogonal()
}

// TransparentAround counts the transparent 8-neighbors of the center.
func (n Neighborhood) TransparentAround() int {
	count := 0
	for _, o := range surrounding {
		if !n.opaqueAt(o) {
			count++
		}
	}
	return count
}

// String renders the neighborhood as three rows of '#' and '.' separated by
// '/'.
func (n Neighborhood) String() string {
	buf := make([]byte, 0, 11)
	for dy := -1; dy <= 1; dy++ {
		if dy > -1 {
			buf = append(buf, '/')
		}
		for dx := -1; dx <= 1; dx++ {
			if n.Opaque(dx, dy) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
