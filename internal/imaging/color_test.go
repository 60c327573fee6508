package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/outline-tools-mcp/internal/detection"
)

func TestSampleColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	tests := []struct {
		name string
		c    color.NRGBA
		hex  string
		hsl  HSLColor
	}{
		{"red", color.NRGBA{255, 0, 0, 255}, "#FF0000", HSLColor{0, 100, 50}},
		{"green", color.NRGBA{0, 255, 0, 255}, "#00FF00", HSLColor{120, 100, 50}},
		{"blue", color.NRGBA{0, 0, 255, 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", color.NRGBA{255, 255, 255, 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", color.NRGBA{0, 0, 0, 255}, "#000000", HSLColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img.SetNRGBA(5, 5, tt.c)

			result, err := SampleColor(img, 5, 5, AlphaRule{})
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.hex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.hex)
			}
			if result.RGBA != (RGBAColor{tt.c.R, tt.c.G, tt.c.B, tt.c.A}) {
				t.Errorf("RGBA: got %+v, want %+v", result.RGBA, tt.c)
			}
			if result.HSL != tt.hsl {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.hsl)
			}
			if !result.Opaque {
				t.Error("Opaque should be true")
			}
		})
	}
}

func TestSampleColor_Roles(t *testing.T) {
	block := spriteImage(
		".......",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".......",
	)
	line := spriteImage(
		"..#..",
		"..#..",
		"..#..",
	)

	tests := []struct {
		name      string
		img       image.Image
		x, y      int
		role      detection.PixelRole
		removable bool
	}{
		{"transparent", block, 0, 0, detection.RoleTransparent, false},
		{"interior", block, 3, 3, detection.RoleInterior, false},
		{"top edge of a block", block, 3, 1, detection.RoleRedundant, true},
		{"thin line", line, 2, 1, detection.RoleOutline, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(tt.img, tt.x, tt.y, AlphaRule{})
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Role != tt.role {
				t.Errorf("Role: got %s, want %s", result.Role, tt.role)
			}
			if result.Removable != tt.removable {
				t.Errorf("Removable: got %v, want %v", result.Removable, tt.removable)
			}
			if result.Opaque != (tt.role != detection.RoleTransparent) {
				t.Errorf("Opaque: got %v", result.Opaque)
			}
		})
	}
}

func TestSampleColor_Paletted(t *testing.T) {
	img := palettedSprite("r.")

	result, err := SampleColor(img, 0, 0, IndexRule{Index: 0})
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.PaletteIndex == nil || *result.PaletteIndex != 2 {
		t.Errorf("PaletteIndex: got %v, want 2", result.PaletteIndex)
	}
	if result.Hex != "#FF0000" {
		t.Errorf("Hex: got %s, want #FF0000", result.Hex)
	}
	if result.Rule != "index:0" {
		t.Errorf("Rule: got %s, want index:0", result.Rule)
	}

	// Under a rule that declares red transparent the same pixel is clear.
	result, err = SampleColor(img, 0, 0, IndexRule{Index: 2})
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Opaque || result.Role != detection.RoleTransparent {
		t.Errorf("red under index:2: got opaque=%v role=%s", result.Opaque, result.Role)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := spriteImage("##", "##")

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 2, 0},
		{"y too large", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y, AlphaRule{}); err == nil {
				t.Errorf("SampleColor(%d,%d) should fail", tt.x, tt.y)
			}
		})
	}
}
