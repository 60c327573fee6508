package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// OpacityRule decides which host pixels count as opaque and how an opaque
// pixel is erased. A rule is resolved once per call and then applied to every
// pixel, so all pixels of one run are judged the same way.
type OpacityRule interface {
	// OpaqueAt reports whether the pixel at (x, y) of img is opaque.
	OpaqueAt(img image.Image, x, y int) bool

	// Erase makes the pixel at (x, y) of dst transparent.
	Erase(dst draw.Image, x, y int)

	// String names the rule for reports, e.g. "alpha" or "index:0".
	String() string
}

// AlphaRule treats any pixel with a non-zero alpha as opaque.
type AlphaRule struct{}

func (AlphaRule) OpaqueAt(img image.Image, x, y int) bool {
	_, _, _, a := img.At(x, y).RGBA()
	return a != 0
}

func (AlphaRule) Erase(dst draw.Image, x, y int) {
	dst.Set(x, y, color.NRGBA{})
}

func (AlphaRule) String() string { return "alpha" }

// IndexRule treats a paletted pixel as transparent exactly when it holds the
// palette index Index. Images without a palette fall back to AlphaRule.
type IndexRule struct {
	Index uint8
}

func (r IndexRule) OpaqueAt(img image.Image, x, y int) bool {
	if p, ok := img.(*image.Paletted); ok {
		return p.ColorIndexAt(x, y) != r.Index
	}
	return AlphaRule{}.OpaqueAt(img, x, y)
}

func (r IndexRule) Erase(dst draw.Image, x, y int) {
	if p, ok := dst.(*image.Paletted); ok {
		p.SetColorIndex(x, y, r.Index)
		return
	}
	AlphaRule{}.Erase(dst, x, y)
}

func (r IndexRule) String() string { return fmt.Sprintf("index:%d", r.Index) }

// OpaqueRule treats every pixel inside the image as opaque. It is used for
// paletted images with no transparent entry. Erasing writes transparent
// NRGBA, so images thinned under it must be copied with EditableCopy, which
// converts them.
type OpaqueRule struct{}

func (OpaqueRule) OpaqueAt(img image.Image, x, y int) bool {
	return image.Pt(x, y).In(img.Bounds())
}

func (OpaqueRule) Erase(dst draw.Image, x, y int) {
	AlphaRule{}.Erase(dst, x, y)
}

func (OpaqueRule) String() string { return "opaque" }

// TransparentIndex returns the first palette entry with zero alpha, or -1 if
// the palette has none.
func TransparentIndex(p color.Palette) int {
	for i, c := range p {
		if _, _, _, a := c.RGBA(); a == 0 {
			return i
		}
	}
	return -1
}

// NoTransparentIndex is the transparent_index value that declares no palette
// entry transparent.
const NoTransparentIndex = -1

// ResolveRule picks the opacity rule for img.
//
// Paletted images use an IndexRule: the explicit index when one is given,
// otherwise the palette's first fully transparent entry. A palette without
// one, or an explicit NoTransparentIndex, gives OpaqueRule. All other images
// use AlphaRule, and an explicit index for them is rejected with
// ErrInvalidTransparentIndex.
func ResolveRule(img image.Image, transparentIndex *int) (OpacityRule, error) {
	p, paletted := img.(*image.Paletted)
	if !paletted {
		if transparentIndex != nil {
			return nil, fmt.Errorf("%w: image has no palette", ErrInvalidTransparentIndex)
		}
		return AlphaRule{}, nil
	}

	if transparentIndex != nil {
		idx := *transparentIndex
		if idx == NoTransparentIndex {
			return OpaqueRule{}, nil
		}
		if idx < 0 || idx >= len(p.Palette) || idx > 255 {
			return nil, fmt.Errorf("%w: %d not in 0..%d", ErrInvalidTransparentIndex, idx, len(p.Palette)-1)
		}
		return IndexRule{Index: uint8(idx)}, nil
	}

	idx := TransparentIndex(p.Palette)
	if idx < 0 {
		return OpaqueRule{}, nil
	}
	return IndexRule{Index: uint8(idx)}, nil
}

// MaskFromImage builds a mask of rect, in image coordinates, using rule.
// Mask cell (0,0) corresponds to rect.Min. Parts of rect that fall outside
// the image are transparent.
func MaskFromImage(img image.Image, rect image.Rectangle, rule OpacityRule) *thinning.Bitmap {
	bounds := img.Bounds()
	mask := thinning.NewBitmap(rect.Dx(), rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if !image.Pt(x, y).In(bounds) {
				continue
			}
			if rule.OpaqueAt(img, x, y) {
				mask.Set(x-rect.Min.X, y-rect.Min.Y, true)
			}
		}
	}
	return mask
}

// EditableCopy returns a mutable copy of img whose bounds start at (0,0),
// suitable for erasing pixels with rule.
//
// Paletted images under an IndexRule stay paletted so that erasing can write
// the transparent index and the saved file keeps its palette. Everything
// else is converted to NRGBA.
func EditableCopy(img image.Image, rule OpacityRule) draw.Image {
	if _, ok := rule.(IndexRule); !ok {
		return imaging.Clone(img)
	}
	if p, ok := img.(*image.Paletted); ok {
		b := p.Bounds()
		palette := make(color.Palette, len(p.Palette))
		copy(palette, p.Palette)
		out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette)
		for y := 0; y < b.Dy(); y++ {
			src := p.Pix[p.PixOffset(b.Min.X, b.Min.Y+y):][:b.Dx()]
			copy(out.Pix[out.PixOffset(0, y):], src)
		}
		return out
	}
	return imaging.Clone(img)
}

// ApplyMask erases every pixel of dst inside rect that rule classifies as
// opaque but mask reports transparent. It returns the number of pixels
// erased. Pixels the mask keeps are never touched.
func ApplyMask(dst draw.Image, rect image.Rectangle, mask thinning.Mask, rule OpacityRule) int {
	origin := rect.Min
	rect = rect.Intersect(dst.Bounds())
	erased := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if !rule.OpaqueAt(dst, x, y) {
				continue
			}
			if mask.Opaque(x-origin.X, y-origin.Y) {
				continue
			}
			rule.Erase(dst, x, y)
			erased++
		}
	}
	return erased
}
