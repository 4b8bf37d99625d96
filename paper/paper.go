/*
Package paper defines the named paper sizes that printable pages can be laid
out on and converts their dimensions from millimetres to pixels at a given
density.
*/
package paper

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
)

const (
	// MillimetresPerInch is used to convert lengths using a density
	MillimetresPerInch = 25.4

	// DefaultDPI is the rendering density used unless told otherwise
	DefaultDPI = 300
)

// ErrUnknownSize is returned when looking up a paper size that isn't defined
var ErrUnknownSize = errors.New("paper: unknown size")

// Size is a paper size with dimensions in millimetres.
type Size struct {
	Name   string
	Width  float64
	Height float64
}

var sizes = map[string]Size{
	"a0":     {"a0", 841, 1189},
	"a1":     {"a1", 594, 841},
	"a2":     {"a2", 420, 594},
	"a3":     {"a3", 297, 420},
	"a4":     {"a4", 210, 297},
	"a5":     {"a5", 148, 210},
	"a6":     {"a6", 105, 148},
	"letter": {"letter", 215.9, 279.4},
	"legal":  {"legal", 215.9, 355.6},
}

// A4 is the default paper size
var A4 = sizes["a4"]

// Names returns the defined paper size names, sorted.
func Names() []string {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the paper size with the given name, ignoring case.
func Lookup(name string) (Size, error) {
	if s, ok := sizes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return Size{}, fmt.Errorf("%w %q, choose from %s", ErrUnknownSize, name, strings.Join(Names(), ", "))
}

// Landscape returns the size with the longer side horizontal.
func (s Size) Landscape() Size {
	if s.Width < s.Height {
		s.Width, s.Height = s.Height, s.Width
	}
	return s
}

// Pixels returns the size in pixels at dpi dots per inch.
func (s Size) Pixels(dpi int) image.Point {
	return image.Pt(ToPixels(s.Width, dpi), ToPixels(s.Height, dpi))
}

func (s Size) String() string {
	return fmt.Sprintf("%s (%gx%g mm)", s.Name, s.Width, s.Height)
}

// ToPixels converts mm millimetres to whole pixels at dpi dots per inch,
// truncating any fraction.
func ToPixels(mm float64, dpi int) int {
	return int(mm * float64(dpi) / MillimetresPerInch)
}
