package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Preview limits.
const (
	DefaultPreviewScale = 8
	MaxPreviewScale     = 32

	// DefaultHighlight marks removed pixels when no valid color is given.
	DefaultHighlight = "#FF00FF"

	// maxPreviewPixels bounds the size of the encoded preview.
	maxPreviewPixels = 16 << 20
)

var (
	previewBackground = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	previewSeparator  = color.NRGBA{A: 255}
	previewGrid       = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
)

// PreviewOptions configures RenderPreview.
type PreviewOptions struct {
	// Scale is the integer upscale factor. Values below 1 mean 1.
	Scale int

	// Highlight is the "#RRGGBB" color painted over removed pixels.
	Highlight string

	// Grid draws pixel boundaries when Scale is at least 4.
	Grid bool

	// Region limits the preview to part of the image. Nil shows all of it.
	Region *Region
}

// PreviewResult contains the rendered preview.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Scale       int    `json:"scale"`
	Highlight   string `json:"highlight"`
}

// RenderPreview draws before and after side by side, separated by a one pixel
// column, with the removed pixels painted in the highlight color on the
// "after" panel. Transparent pixels show the gray background. The result is
// upscaled with nearest-neighbor sampling so single pixels stay crisp.
//
// removed holds image coordinates, as reported by ThinImage. before and after
// must have the same bounds.
func RenderPreview(before, after image.Image, removed []image.Point, opts PreviewOptions) (*PreviewResult, error) {
	if before.Bounds() != after.Bounds() {
		return nil, fmt.Errorf("before and after images differ in size: %v vs %v", before.Bounds(), after.Bounds())
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	if scale > MaxPreviewScale {
		return nil, fmt.Errorf("scale %d exceeds maximum of %d", scale, MaxPreviewScale)
	}

	hl, err := colorful.Hex(opts.Highlight)
	if err != nil {
		hl, _ = colorful.Hex(DefaultHighlight)
	}
	r, g, b := hl.RGB255()
	highlight := color.NRGBA{R: r, G: g, B: b, A: 255}

	rect, err := ResolveRegion(before.Bounds(), opts.Region)
	if err != nil {
		return nil, err
	}
	w, h := rect.Dx(), rect.Dy()
	cw, ch := 2*w+1, h
	if cw*scale*ch*scale > maxPreviewPixels {
		return nil, fmt.Errorf("preview of %dx%d at scale %d is too large; select a region or lower the scale", cw, ch, scale)
	}

	canvas := imaging.New(cw, ch, previewBackground)
	canvas = imaging.Overlay(canvas, CropToRegion(before, rect), image.Pt(0, 0), 1.0)
	canvas = imaging.Overlay(canvas, CropToRegion(after, rect), image.Pt(w+1, 0), 1.0)
	for y := 0; y < ch; y++ {
		canvas.Set(w, y, previewSeparator)
	}
	for _, p := range removed {
		if !p.In(rect) {
			continue
		}
		canvas.Set(w+1+p.X-rect.Min.X, p.Y-rect.Min.Y, highlight)
	}

	if scale > 1 {
		canvas = imaging.Resize(canvas, cw*scale, ch*scale, imaging.NearestNeighbor)
	}
	if opts.Grid && scale >= 4 {
		drawPixelGrid(canvas, scale)
	}

	encoded, err := EncodePNG(canvas)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
		Scale:       scale,
		Highlight:   hl.Hex(),
	}, nil
}

// drawPixelGrid draws a line along the top and left edge of every scaled
// source pixel.
func drawPixelGrid(img *image.NRGBA, spacing int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// Vertical lines
	for x := spacing; x < width; x += spacing {
		for y := 0; y < height; y++ {
			img.Set(x, y, previewGrid)
		}
	}

	// Horizontal lines
	for y := spacing; y < height; y += spacing {
		for x := 0; x < width; x++ {
			img.Set(x, y, previewGrid)
		}
	}
}
