// Package thinning reduces 2-pixel-thick outlines in a binary raster to
// 1-pixel-thick outlines.
//
// The package works on a Mask: a width×height grid of opacity bits. Anything
// outside the grid is transparent, so pixels on the image border behave
// exactly like pixels bordering a transparent area inside the image.
//
// # Algorithm
//
// Thin repeatedly sweeps the whole mask. Each sweep:
//
//  1. Scans every coordinate in row-major order and collects the pixels for
//     which IsRemovable currently holds.
//  2. Orders the candidates by exposure (number of transparent 4-neighbors),
//     most exposed first. Equal exposure keeps scan order.
//  3. Re-checks each candidate against the live mask and erases it if it is
//     still removable. Earlier removals in the same sweep can make a later
//     candidate unsafe, so the check is never batched.
//
// Sweeping stops when a sweep removes nothing or the iteration cap is hit.
//
// # Removability
//
// A pixel is removable when any of three tests approves it:
//
//   - Diagonal pair: the pixel is a corner of a filled 2×2 block and is more
//     exposed (more transparent 8-neighbors) than the diagonally opposite
//     block cell.
//   - Stair step: the pixel is the outer corner of a step in a staircase and
//     at least one of the three cells beyond that corner is transparent.
//   - Outline interior: the pixel is an outline pixel of a band at least two
//     pixels thick and WouldDisconnect reports that its opaque neighbors stay
//     8-connected without it.
//
// The first two tests are pattern matches and do not consult WouldDisconnect.
// Only removals approved by the outline-interior test alone are guaranteed to
// keep the pixel's neighbors connected; a closed band can open where a stair
// step meets a corner.
//
// # Determinism
//
// There is no shared state. Two runs over identical masks with the same
// iteration cap produce identical masks.
package thinning
