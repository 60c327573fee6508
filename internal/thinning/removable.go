package thinning

import "image"

// IsRemovable reports whether the pixel at (x, y) can be erased from m.
//
// The pixel must be opaque. It is removable when any of the diagonal-pair,
// stair-step or outline-interior tests approves it; see the package
// documentation. IsRemovable reads m and never modifies it.
func IsRemovable(m Mask, x, y int) bool {
	n := Classify(m, x, y)
	if !n.Center() {
		return false
	}
	return diagonalPair(m, x, y, n) || stairStep(n) || outlineInterior(m, x, y, n)
}

// blockCorners holds the four orientations of a 2×2 block around a pixel,
// as the direction of the diagonally opposite block cell.
var blockCorners = [4]image.Point{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// diagonalPair approves a pixel that is a corner of a filled 2×2 block and
// has strictly more transparent 8-neighbors than the block cell diagonally
// opposite it. Of the two diagonal alternatives the more exposed one goes.
func diagonalPair(m Mask, x, y int, n Neighborhood) bool {
	for _, d := range blockCorners {
		if !n.Opaque(d.X, 0) || !n.Opaque(0, d.Y) || !n.Opaque(d.X, d.Y) {
			continue
		}
		opposite := Classify(m, x+d.X, y+d.Y)
		if n.TransparentAround() > opposite.TransparentAround() {
			return true
		}
	}
	return false
}

// stepPattern is one orientation of a stair step. The pixel sits on the
// outer corner of an L formed with its tread and riser neighbors.
type stepPattern struct {
	tread, riser image.Point // opaque 4-neighbors forming the L
	inner        image.Point // cell between tread and riser; transparent on a step
	outer        [3]image.Point
}

// stepPatterns lists the step orientations, each a quarter turn of the one
// before. outer[0] is the diagonal opposite the inner corner; outer[1] and
// outer[2] are the 4-neighbors facing away from the step.
var stepPatterns = [4]stepPattern{
	{tread: image.Pt(-1, 0), riser: image.Pt(0, 1), inner: image.Pt(-1, 1),
		outer: [3]image.Point{{1, -1}, {0, -1}, {1, 0}}},
	{tread: image.Pt(0, -1), riser: image.Pt(-1, 0), inner: image.Pt(-1, -1),
		outer: [3]image.Point{{1, 1}, {1, 0}, {0, 1}}},
	{tread: image.Pt(1, 0), riser: image.Pt(0, -1), inner: image.Pt(1, -1),
		outer: [3]image.Point{{-1, 1}, {0, 1}, {-1, 0}}},
	{tread: image.Pt(0, 1), riser: image.Pt(1, 0), inner: image.Pt(1, 1),
		outer: [3]image.Point{{-1, -1}, {-1, 0}, {0, -1}}},
}

// stairStep approves the outer corner of a staircase step when any of the
// three outer checkpoints is clear. Like diagonalPair it does not consult
// WouldDisconnect.
func stairStep(n Neighborhood) bool {
	for _, p := range stepPatterns {
		if !n.opaqueAt(p.tread) || !n.opaqueAt(p.riser) || n.opaqueAt(p.inner) {
			continue
		}
		for _, o := range p.outer {
			if !n.opaqueAt(o) {
				return true
			}
		}
	}
	return false
}

// outlineInterior approves an outline pixel that lies in a band at least two
// pixels thick, provided erasing it keeps its neighbors connected.
func outlineInterior(m Mask, x, y int, n Neighborhood) bool {
	if n.OpaqueOrthogonal() < 2 || n.Exposure() < 1 {
		return false
	}

	thick := false
	for _, o := range orthogonal {
		if IsOutline(m, x+o.X, y+o.Y) {
			thick = true
			break
		}
	}
	if !thick {
		return false
	}

	return !WouldDisconnect(n)
}

// IsOutline reports whether (x, y) is an outline pixel of m: opaque, with at
// least one transparent 4-neighbor.
func IsOutline(m Mask, x, y int) bool {
	return m.Opaque(x, y) && Exposure(m, x, y) > 0
}

// Exposure returns the number of transparent 4-neighbors of (x, y).
func Exposure(m Mask, x, y int) int {
	count := 0
	for _, o := range orthogonal {
		if !m.Opaque(x+o.X, y+o.Y) {
			count++
		}
	}
	return count
}
