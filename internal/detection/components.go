package detection

import (
	"image"
	"sort"

	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// Component is one 8-connected group of opaque pixels.
type Component struct {
	// Seed is the first pixel of the component in row-major scan order.
	Seed Point `json:"seed"`

	// Bounds is the smallest box holding every pixel of the component.
	Bounds Bounds `json:"bounds"`

	// Pixels is the number of opaque pixels in the component.
	Pixels int `json:"pixels"`
}

// Components finds the 8-connected components of opaque pixels in m.
//
// Components are sorted by pixel count, largest first. Components of equal
// size keep the order of their seeds in a row-major scan.
func Components(m thinning.Mask) []Component {
	width, height := m.Width(), m.Height()
	visited := make([]bool, width*height)

	components := make([]Component, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !m.Opaque(x, y) || visited[y*width+x] {
				continue
			}
			components = append(components, floodFill(m, visited, x, y))
		}
	}

	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Pixels > components[j].Pixels
	})
	return components
}

// floodFill collects the component containing (startX, startY) and marks its
// pixels visited.
//
// Uses a stack instead of recursion so large components cannot overflow the
// goroutine stack. Connectivity is 8-connected (includes diagonals).
func floodFill(m thinning.Mask, visited []bool, startX, startY int) Component {
	width, height := m.Width(), m.Height()
	c := Component{
		Seed:   Point{X: startX, Y: startY},
		Bounds: pixelBounds(startX, startY),
	}

	stack := []image.Point{{X: startX, Y: startY}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y*width+p.X] || !m.Opaque(p.X, p.Y) {
			continue
		}

		visited[p.Y*width+p.X] = true
		c.Pixels++
		c.Bounds.extend(p.X, p.Y)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return c
}
