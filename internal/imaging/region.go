package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns r as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// RegionOf converts a rectangle back into a Region.
func RegionOf(rect image.Rectangle) Region {
	return Region{X1: rect.Min.X, Y1: rect.Min.Y, X2: rect.Max.X, Y2: rect.Max.Y}
}

// ResolveRegion returns the rectangle of bounds that r selects.
//
// A nil region selects all of bounds. An inverted region (x1 >= x2 or
// y1 >= y2) is an error. Otherwise the region is clipped to bounds, and a
// region lying entirely outside the image yields ErrEmptyRegion.
func ResolveRegion(bounds image.Rectangle, r *Region) (image.Rectangle, error) {
	if r == nil {
		return bounds, nil
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("%w: x1 must be < x2, y1 must be < y2", ErrEmptyRegion)
	}

	// image.Rect would canonicalize an inverted rectangle, so build it by hand.
	rect := image.Rectangle{Min: image.Pt(r.X1, r.Y1), Max: image.Pt(r.X2, r.Y2)}.Intersect(bounds)
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			ErrEmptyRegion, r.X1, r.Y1, r.X2, r.Y2,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return rect, nil
}

// CropToRegion returns a copy of the part of img inside rect. The result's
// bounds start at (0,0).
func CropToRegion(img image.Image, rect image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, rect)
}
