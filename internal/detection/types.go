package detection

import "image"

// Bounds represents a bounding box with corner coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// Add returns b shifted by p.
func (b Bounds) Add(p image.Point) Bounds {
	return Bounds{X1: b.X1 + p.X, Y1: b.Y1 + p.Y, X2: b.X2 + p.X, Y2: b.Y2 + p.Y}
}

// extend grows b to cover the pixel at (x, y).
func (b *Bounds) extend(x, y int) {
	if x < b.X1 {
		b.X1 = x
	}
	if y < b.Y1 {
		b.Y1 = y
	}
	if x+1 > b.X2 {
		b.X2 = x + 1
	}
	if y+1 > b.Y2 {
		b.Y2 = y + 1
	}
}

// pixelBounds returns the bounds of the single pixel (x, y).
func pixelBounds(x, y int) Bounds {
	return Bounds{X1: x, Y1: y, X2: x + 1, Y2: y + 1}
}

// Point represents a 2D coordinate in image space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}
