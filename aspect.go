package printgrid

import (
	"fmt"
	"image"

	"github.com/bodgit/printgrid/imagefile"
)

// AspectRatioError reports an image whose aspect ratio differs from the
// first image checked.
type AspectRatioError struct {
	File string
	Size image.Point
	Want image.Point
}

func (e *AspectRatioError) Error() string {
	return fmt.Sprintf("printgrid: image %s has a different aspect ratio (%dx%d, expected %dx%d)", e.File, e.Size.X, e.Size.Y, e.Want.X, e.Want.Y)
}

// SameAspectRatio reports whether a and b have exactly the same ratio of
// width to height.
func SameAspectRatio(a, b image.Point) bool {
	return a.X*b.Y == b.X*a.Y
}

// CheckAspectRatios checks every image from src has the same aspect ratio
// as the first. Only the image headers are read. The first mismatch is
// returned as an *AspectRatioError and ErrNoInput is returned if src has no
// files.
func (p *PrintGrid) CheckAspectRatios(src Source) error {
	files, err := src.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoInput
	}

	var want image.Point
	for i, file := range files {
		c, err := imagefile.DecodeConfig(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		size := image.Pt(c.Width, c.Height)
		if size.X <= 0 || size.Y <= 0 {
			return fmt.Errorf("printgrid: image %s has no area", file)
		}

		if i == 0 {
			want = size
			continue
		}

		if !SameAspectRatio(want, size) {
			return &AspectRatioError{
				File: file,
				Size: size,
				Want: want,
			}
		}
		p.logger.WithField("file", file).Debug("Aspect ratio matches")
	}

	return nil
}
