package printgrid

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrInvalidAxis is returned when parsing an unknown sizing axis
var ErrInvalidAxis = errors.New("printgrid: invalid size type, choose 'height' or 'width'")

// Axis selects which side of an image the target size applies to, the other
// side follows from the aspect ratio.
type Axis int

const (
	// ByHeight sizes images by their height
	ByHeight Axis = iota
	// ByWidth sizes images by their width
	ByWidth
)

// ParseAxis parses "height" or "width", ignoring case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "height":
		return ByHeight, nil
	case "width":
		return ByWidth, nil
	default:
		return ByHeight, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

func (a Axis) String() string {
	switch a {
	case ByHeight:
		return "height"
	case ByWidth:
		return "width"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// Scale returns the size of an image of size src scaled so the side chosen
// by a is length pixels. The other side is truncated to whole pixels.
func (a Axis) Scale(src image.Point, length int) image.Point {
	if src.X <= 0 || src.Y <= 0 {
		return image.Point{}
	}
	ratio := float64(src.X) / float64(src.Y)
	if a == ByWidth {
		return image.Pt(length, int(float64(length)/ratio))
	}
	return image.Pt(int(float64(length)*ratio), length)
}
