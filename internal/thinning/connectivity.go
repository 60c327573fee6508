package thinning

import "image"

// WouldDisconnect reports whether erasing the center of n would split its
// opaque neighbors into more than one 8-connected group.
//
// Only the eight surrounding cells are considered. A center with at most one
// opaque 4-neighbor, or with at most one opaque cell around it, can always be
// erased.
func WouldDisconnect(n Neighborhood) bool {
	if n.OpaqueOrthogonal() <= 1 {
		return false
	}

	cells := make([]image.Point, 0, len(surrounding))
	for _, o := range surrounding {
		if n.opaqueAt(o) {
			cells = append(cells, o)
		}
	}
	if len(cells) <= 1 {
		return false
	}

	// Breadth-first search from the first opaque cell. The center is not a
	// node, so paths through it do not count.
	visited := make([]bool, len(cells))
	visited[0] = true
	queue := []int{0}
	reached := 1
	for len(queue) > 0 {
		cur := cells[queue[0]]
		queue = queue[1:]
		for i, c := range cells {
			if visited[i] || !adjacent8(cur, c) {
				continue
			}
			visited[i] = true
			reached++
			queue = append(queue, i)
		}
	}

	return reached != len(cells)
}

// adjacent8 reports whether two distinct offsets touch under 8-adjacency.
func adjacent8(a, b image.Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
