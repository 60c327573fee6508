package imaging

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/ironsheep/outline-tools-mcp/internal/thinning"
)

// ThinOptions configures ThinImage.
type ThinOptions struct {
	// MaxIterations caps the number of sweeps. It must lie within
	// thinning.MinIterations..thinning.MaxIterations.
	MaxIterations int

	// Region limits thinning to part of the image. Nil means the whole image.
	// Pixels outside the region are left untouched and read as transparent by
	// the engine.
	Region *Region

	// TransparentIndex overrides palette transparency detection for paletted
	// images. See ResolveRule.
	TransparentIndex *int
}

// ThinResult is the outcome of ThinImage.
type ThinResult struct {
	// Image is the thinned copy. The source image is never modified.
	Image draw.Image `json:"-"`

	// Before and After are the region masks around the run.
	Before *thinning.Bitmap `json:"-"`
	After  *thinning.Bitmap `json:"-"`

	Region    Region `json:"region"`
	Rule      string `json:"opacity_rule"`
	Removed   int    `json:"removed"`
	Sweeps    []int  `json:"sweeps"`
	Converged bool   `json:"converged"`

	// RemovedPoints lists erased pixels in image coordinates, in removal order.
	RemovedPoints []image.Point `json:"-"`
}

// ThinImage thins the outlines of a copy of img.
//
// The opacity rule is resolved once from img (see ResolveRule), the selected
// region is converted to a mask, the mask is thinned, and the pixels the
// engine erased are made transparent in the copy. Pixel colors that survive
// are carried over unchanged.
func ThinImage(img image.Image, opts ThinOptions) (*ThinResult, error) {
	if opts.MaxIterations < thinning.MinIterations || opts.MaxIterations > thinning.MaxIterations {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidIterations, opts.MaxIterations)
	}

	rule, err := ResolveRule(img, opts.TransparentIndex)
	if err != nil {
		return nil, err
	}

	out := EditableCopy(img, rule)
	rect, err := ResolveRegion(out.Bounds(), opts.Region)
	if err != nil {
		return nil, err
	}

	mask := MaskFromImage(out, rect, rule)
	before := mask.Clone()
	report := thinning.ThinWithReport(mask, opts.MaxIterations)

	if erased := ApplyMask(out, rect, mask, rule); erased != report.Removed {
		return nil, fmt.Errorf("failed to apply thinned mask: erased %d pixels, engine removed %d", erased, report.Removed)
	}

	points := make([]image.Point, len(report.Points))
	for i, p := range report.Points {
		points[i] = p.Add(rect.Min)
	}

	return &ThinResult{
		Image:         out,
		Before:        before,
		After:         mask,
		Region:        RegionOf(rect),
		Rule:          rule.String(),
		Removed:       report.Removed,
		Sweeps:        report.Sweeps,
		Converged:     report.Converged,
		RemovedPoints: points,
	}, nil
}
