// Package imaging connects decoded raster images to the thinning engine.
//
// It loads and caches images, decides which pixels are opaque, turns an
// image region into a thinning.Mask, writes thinned masks back into a copy
// of the image, and renders before/after previews. All coordinates use the
// image convention: (0,0) at the top-left, X rightward, Y downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Masks built from a region are region-relative: mask cell (0,0) is the
// region's top-left pixel. Pixels outside the region read as transparent to
// the engine, so a region boundary behaves like the image edge.
//
// # Opacity
//
// An OpacityRule is resolved once per call with ResolveRule:
//   - Paletted images: a pixel is transparent when it holds the transparent
//     palette index (given explicitly, or the first palette entry with zero
//     alpha).
//   - Paletted images with no transparent entry, or called with
//     NoTransparentIndex: every pixel is opaque, exactly like a PNG whose
//     alpha is 255 everywhere. The image edge is still transparent to the
//     engine.
//   - All other images: a pixel is transparent when its alpha is zero.
//
// Erasing follows the same rule: paletted pixels are set to the transparent
// index, other pixels to fully transparent black. A paletted image without a
// transparent index is converted to NRGBA before erasing. Surviving pixels
// keep their exact color.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. ThinImage never modifies
// its input; it works on a copy made by EditableCopy.
//
// # Error Handling
//
// Validation failures wrap the sentinel errors in errors.go (ErrEmptyRegion,
// ErrInvalidIterations, ...) so callers can use errors.Is. I/O and encoding
// failures are wrapped with context.
package imaging
