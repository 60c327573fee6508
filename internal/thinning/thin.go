package thinning

import (
	"image"
	"sort"
)

// Iteration limits for a thinning run. Callers that take the iteration count
// from user input validate against these; Thin itself accepts any value.
const (
	MinIterations     = 1
	MaxIterations     = 20
	DefaultIterations = 8
)

// Report describes a completed thinning run.
type Report struct {
	// Removed is the total number of pixels erased.
	Removed int `json:"removed"`

	// Sweeps holds the number of pixels erased by each sweep, in order. A
	// converged run ends with a zero entry.
	Sweeps []int `json:"sweeps"`

	// Converged is true when the last sweep erased nothing, meaning the mask
	// reached a fixed point before the iteration cap.
	Converged bool `json:"converged"`

	// Points lists the erased coordinates in removal order.
	Points []image.Point `json:"-"`
}

// Thin erases redundant outline pixels from m in place and returns how many
// were erased. It runs at most maxIterations sweeps and stops early once a
// sweep erases nothing. maxIterations below 1 runs no sweeps.
func Thin(m Mask, maxIterations int) int {
	return ThinWithReport(m, maxIterations).Removed
}

// ThinWithReport is Thin with per-sweep detail.
func ThinWithReport(m Mask, maxIterations int) *Report {
	r := &Report{Sweeps: []int{}}
	for i := 0; i < maxIterations; i++ {
		removed := sweep(m, r)
		r.Sweeps = append(r.Sweeps, removed)
		r.Removed += removed
		if removed == 0 {
			r.Converged = true
			break
		}
	}
	return r
}

type candidate struct {
	pos      image.Point
	exposure int
	order    int
}

// sweep performs one scan-and-erase pass and returns the number of pixels it
// erased. Erased coordinates are appended to r.Points.
func sweep(m Mask, r *Report) int {
	width, height := m.Width(), m.Height()

	var candidates []candidate
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !IsRemovable(m, x, y) {
				continue
			}
			candidates = append(candidates, candidate{
				pos:      image.Pt(x, y),
				exposure: Exposure(m, x, y),
				order:    len(candidates),
			})
		}
	}

	// Most exposed first; scan order decides ties.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].exposure != candidates[j].exposure {
			return candidates[i].exposure > candidates[j].exposure
		}
		return candidates[i].order < candidates[j].order
	})

	removed := 0
	for _, c := range candidates {
		// Earlier erasures in this sweep may have made c unsafe.
		if !IsRemovable(m, c.pos.X, c.pos.Y) {
			continue
		}
		m.Set(c.pos.X, c.pos.Y, false)
		r.Points = append(r.Points, c.pos)
		removed++
	}
	return removed
}
