package detection

import (
	"image"

	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// PixelRole describes what part a pixel plays in an outline.
type PixelRole string

const (
	// RoleTransparent is a pixel that is not opaque.
	RoleTransparent PixelRole = "transparent"

	// RoleInterior is an opaque pixel with no transparent 4-neighbor.
	RoleInterior PixelRole = "interior"

	// RoleOutline is an opaque pixel bordering transparency that thinning
	// keeps.
	RoleOutline PixelRole = "outline"

	// RoleRedundant is an opaque pixel the next thinning sweep would
	// consider erasing.
	RoleRedundant PixelRole = "redundant"
)

// maxReportedComponents caps the component list in an OutlineCensus. The
// count is always exact.
const maxReportedComponents = 100

// Role classifies the pixel at (x, y) of m.
func Role(m thinning.Mask, x, y int) PixelRole {
	switch {
	case !m.Opaque(x, y):
		return RoleTransparent
	case thinning.IsRemovable(m, x, y):
		return RoleRedundant
	case thinning.IsOutline(m, x, y):
		return RoleOutline
	default:
		return RoleInterior
	}
}

// OutlineCensus summarizes the outline structure of a mask.
type OutlineCensus struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Opaque counts every opaque pixel. Outline counts the opaque pixels
	// bordering transparency, including redundant ones; Redundant counts the
	// pixels the next thinning sweep would consider erasing.
	Opaque    int `json:"opaque_pixels"`
	Outline   int `json:"outline_pixels"`
	Interior  int `json:"interior_pixels"`
	Redundant int `json:"redundant_pixels"`

	// Bounds covers all opaque pixels; nil when there are none.
	Bounds *Bounds `json:"bounds,omitempty"`

	ComponentCount int         `json:"component_count"`
	Components     []Component `json:"components"`
	Truncated      bool        `json:"components_truncated,omitempty"`
}

// Census counts pixel roles and components in m. Coordinates in the result
// are mask coordinates; use Translate to move them into image space.
func Census(m thinning.Mask) *OutlineCensus {
	c := &OutlineCensus{Width: m.Width(), Height: m.Height()}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			role := Role(m, x, y)
			if role == RoleTransparent {
				continue
			}

			c.Opaque++
			if c.Bounds == nil {
				b := pixelBounds(x, y)
				c.Bounds = &b
			} else {
				c.Bounds.extend(x, y)
			}

			if role == RoleRedundant {
				c.Redundant++
			}
			if thinning.IsOutline(m, x, y) {
				c.Outline++
			} else {
				c.Interior++
			}
		}
	}

	components := Components(m)
	c.ComponentCount = len(components)
	if len(components) > maxReportedComponents {
		components = components[:maxReportedComponents]
		c.Truncated = true
	}
	c.Components = components
	return c
}

// Translate shifts every coordinate in c by p.
func (c *OutlineCensus) Translate(p image.Point) {
	if c.Bounds != nil {
		b := c.Bounds.Add(p)
		c.Bounds = &b
	}
	for i := range c.Components {
		c.Components[i].Seed.X += p.X
		c.Components[i].Seed.Y += p.Y
		c.Components[i].Bounds = c.Components[i].Bounds.Add(p)
	}
}
