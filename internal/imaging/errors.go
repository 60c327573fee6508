package imaging

import "errors"

// Validation errors returned by this package. Callers can test for them with
// errors.Is; the server reports their text to the client unchanged.
var (
	// ErrNoImage is returned when a call names no image path.
	ErrNoImage = errors.New("no image path given")

	// ErrInvalidIterations is returned when an iteration cap falls outside
	// thinning.MinIterations..thinning.MaxIterations.
	ErrInvalidIterations = errors.New("max_iterations must be between 1 and 20")

	// ErrEmptyRegion is returned when a region has no area after clipping to
	// the image.
	ErrEmptyRegion = errors.New("region is empty")

	// ErrInvalidTransparentIndex is returned when transparent_index does not
	// name a palette entry, or is given for an image without a palette.
	ErrInvalidTransparentIndex = errors.New("transparent_index does not name a palette entry")
)
