package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines. All methods use
// appropriate locking to prevent data races.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// Cached images are never modified: thinning works on a copy, so a cached
// image always matches the file as it was when loaded.
//
// # Stale Entries
//
// Writing a thinned image back to disk does not update the cache. The server
// evicts the output path after every write so that the next Load() reads the
// new pixels.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	img, err := cache.Load("/path/to/sprite.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use img...
//	cache.Evict("/path/to/sprite.png") // After overwriting the file
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
//
// The returned cache is ready for immediate use and is safe for concurrent access.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image format
//     and color model. Indexed PNGs and GIFs decode to *image.Paletted, which keeps
//     the palette available to ResolveRule.
//   - error: Non-nil if the path is empty or the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
//
// # Errors
//
//   - Returns ErrNoImage if path is empty
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a valid PNG, JPEG, or GIF image
func (c *ImageCache) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrNoImage
	}

	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
//
// After Clear(), all images must be reloaded from disk on subsequent Load() calls.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// Parameters:
//   - path: The exact path string used when the image was loaded.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
//
// Besides the basic file facts it reports how the thinning tools will judge
// opacity, so a client can spot a palette without a transparent entry before
// thinning.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif" or "unknown", taken from the file
	// extension.
	Format string `json:"format"`

	// ColorModel names the decoded pixel layout: "rgba", "nrgba", "rgba64",
	// "nrgba64", "paletted", "gray", "gray16", "ycbcr" or "other".
	ColorModel string `json:"color_model"`

	// ColorDepth is "8-bit" or "16-bit" per channel.
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image can hold transparent pixels: an
	// alpha channel, or a palette with a fully transparent entry.
	HasAlpha bool `json:"has_alpha"`

	// PaletteSize is the number of palette entries of a paletted image.
	PaletteSize int `json:"palette_size,omitempty"`

	// TransparentIndex is the first fully transparent palette entry, or -1
	// when there is none or the image has no palette.
	TransparentIndex int `json:"transparent_index"`

	// OpacityRule names the rule the thinning tools use by default: "alpha",
	// "index:N" or "opaque". See ResolveRule.
	OpacityRule string `json:"opacity_rule"`

	// OpaquePixels is the number of pixels OpacityRule classifies as opaque.
	OpaquePixels int `json:"opaque_pixels"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns comprehensive metadata about it.
//
// This function loads the image into the cache (if not already cached) and
// extracts dimensions, format, color model, palette transparency, the default
// opacity rule with its opaque pixel count, and file size.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Format Detection
//
// The format is determined by file extension, ignoring case:
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - Other extensions -> "unknown"
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	bounds := img.Bounds()
	info := &ImageInfo{
		Width:            bounds.Dx(),
		Height:           bounds.Dy(),
		Format:           format,
		ColorDepth:       "8-bit",
		TransparentIndex: -1,
		FileSizeBytes:    stat.Size(),
	}

	switch im := img.(type) {
	case *image.RGBA:
		info.ColorModel, info.HasAlpha = "rgba", true
	case *image.NRGBA:
		info.ColorModel, info.HasAlpha = "nrgba", true
	case *image.RGBA64:
		info.ColorModel, info.HasAlpha, info.ColorDepth = "rgba64", true, "16-bit"
	case *image.NRGBA64:
		info.ColorModel, info.HasAlpha, info.ColorDepth = "nrgba64", true, "16-bit"
	case *image.Paletted:
		info.ColorModel = "paletted"
		info.PaletteSize = len(im.Palette)
		info.TransparentIndex = TransparentIndex(im.Palette)
		info.HasAlpha = info.TransparentIndex >= 0
	case *image.Gray:
		info.ColorModel = "gray"
	case *image.Gray16:
		info.ColorModel, info.ColorDepth = "gray16", "16-bit"
	case *image.YCbCr:
		info.ColorModel = "ycbcr"
	default:
		info.ColorModel = "other"
	}

	rule, err := ResolveRule(img, nil)
	if err != nil {
		return nil, err
	}
	info.OpacityRule = rule.String()
	info.OpaquePixels = MaskFromImage(img, bounds, rule).Count()

	return info, nil
}

// DimensionsResult contains the width and height of an image.
//
// This is a lightweight result type for when only dimensions are needed,
// without the additional metadata provided by ImageInfo.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
//
// This is a lightweight alternative to LoadImageInfo when only the width and
// height are needed. The image is loaded into the cache if not already present.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *DimensionsResult: The image dimensions.
//   - error: Non-nil if the image cannot be loaded.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
