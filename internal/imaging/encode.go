package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/imgio"
)

// EncodePNG encodes img as PNG and returns it base64 encoded, ready to embed
// in a JSON result.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// SavePNG writes img to path as a PNG file, replacing any existing file.
// Paletted images are written with their palette.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
