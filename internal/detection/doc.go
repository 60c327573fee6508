// Package detection describes the topology of opaque pixels in a mask.
//
// It answers the questions a caller asks before and after thinning: how
// many separate shapes are there, where are they, and how much of each
// outline is redundant. Everything here reads a thinning.Mask and never
// modifies it.
//
// # Components
//
// Components groups opaque pixels into 8-connected components with an
// iterative flood fill. Two pixels belong to the same component when a
// chain of opaque pixels links them, each step moving to one of the eight
// surrounding cells. This is the same connectivity the thinning engine
// preserves, so comparing component counts before and after a run is a
// direct check that no shape was split or dropped.
//
// # Pixel Roles
//
// Role and Census classify each opaque pixel as interior (no transparent
// 4-neighbor), outline (bordering transparency and kept by thinning) or
// redundant (the next thinning sweep would consider erasing it).
//
// # Coordinate System
//
// Results use mask coordinates: (0,0) is the mask's top-left cell, X
// increases rightward and Y downward. Bounding boxes use inclusive top-left
// and exclusive bottom-right. OutlineCensus.Translate shifts a census into
// image space when the mask covers a region.
package detection
