package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// ink is the color of opaque sprite pixels.
var ink = color.NRGBA{R: 255, A: 255}

// spritePalette is used by palettedSprite: index 0 transparent, 1 black,
// 2 red.
var spritePalette = color.Palette{
	color.NRGBA{},
	color.NRGBA{A: 255},
	color.NRGBA{R: 255, A: 255},
}

// spriteImage draws ASCII rows into an NRGBA image: '#' is ink, anything
// else fully transparent.
func spriteImage(rows ...string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				img.SetNRGBA(x, y, ink)
			}
		}
	}
	return img
}

// palettedSprite draws ASCII rows into a paletted image using spritePalette:
// '#' is index 1, 'r' index 2, anything else index 0.
func palettedSprite(rows ...string) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, len(rows[0]), len(rows)), spritePalette)
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				img.SetColorIndex(x, y, 1)
			case 'r':
				img.SetColorIndex(x, y, 2)
			}
		}
	}
	return img
}

// maskRows renders the opacity of img under rule as ASCII rows.
func maskRows(img image.Image, rule OpacityRule) []string {
	return MaskFromImage(img, img.Bounds(), rule).Rows()
}

// writePNG saves img into the test's temp dir and returns the path.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// nrgbaAt reads a pixel as non-premultiplied 8-bit color.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func intPtr(v int) *int { return &v }
