package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/outline-tools-mcp/internal/detection"
	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult describes one sampled pixel: its color and how the thinning
// engine sees it.
type ColorResult struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Hex  string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`

	// PaletteIndex is set for paletted images.
	PaletteIndex *int `json:"palette_index,omitempty"`

	// Opaque reports the pixel's opacity under Rule.
	Opaque bool   `json:"opaque"`
	Rule   string `json:"opacity_rule"`

	// Role is the pixel's part in the outline; Removable reports whether the
	// next thinning sweep would consider erasing it.
	Role      detection.PixelRole `json:"role"`
	Removable bool                `json:"removable"`
}

// sampleRadius is how far around a pixel the outline checks look. Removal
// tests read the neighbors of neighbors, so two rings are enough.
const sampleRadius = 2

// SampleColor extracts the color at (x, y) and classifies the pixel under
// rule.
//
// Coordinates are 0-based with origin at the top-left of the image. The
// color is converted to 8-bit components; for 16-bit images values are
// scaled down by right-shifting 8 bits.
func SampleColor(img image.Image, x, y int, rule OpacityRule) (*ColorResult, error) {
	bounds := img.Bounds()
	pt := image.Pt(x, y).Add(bounds.Min)
	if !pt.In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(pt.X, pt.Y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	h, s, l := colorful.Color{
		R: float64(r8) / 255,
		G: float64(g8) / 255,
		B: float64(b8) / 255,
	}.Hsl()

	window := image.Rect(pt.X-sampleRadius, pt.Y-sampleRadius, pt.X+sampleRadius+1, pt.Y+sampleRadius+1)
	mask := MaskFromImage(img, window, rule)

	result := &ColorResult{
		X:         x,
		Y:         y,
		Hex:       fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGBA:      RGBAColor{R: r8, G: g8, B: b8, A: a8},
		HSL:       HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Opaque:    rule.OpaqueAt(img, pt.X, pt.Y),
		Rule:      rule.String(),
		Role:      detection.Role(mask, sampleRadius, sampleRadius),
		Removable: thinning.IsRemovable(mask, sampleRadius, sampleRadius),
	}
	if p, ok := img.(*image.Paletted); ok {
		idx := int(p.ColorIndexAt(pt.X, pt.Y))
		result.PaletteIndex = &idx
	}
	return result, nil
}
