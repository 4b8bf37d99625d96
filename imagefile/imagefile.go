/*
Package imagefile reads and writes the image files handled by printgrid.

The output format is chosen from the file extension. GIF output, or any output
when a color limit is set, is first reduced to a palette using a median cut
quantizer.
*/
package imagefile

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

const (
	// DefaultQuality is the JPEG quality used when none is set
	DefaultQuality = 95

	maxColors = 256
)

var (
	// ErrInvalidColors is returned for a color limit outside 0 to 256
	ErrInvalidColors = errors.New("imagefile: colors must be between 0 and 256")
	// ErrInvalidQuality is returned for a JPEG quality outside 0 to 100
	ErrInvalidQuality = errors.New("imagefile: quality must be between 0 and 100")
)

// Options control how images are encoded.
type Options struct {
	// Quality is the JPEG quality, zero means DefaultQuality
	Quality int
	// Colors limits the output to a palette of this many colors, zero
	// means no limit except for GIF which is always limited to 256
	Colors int
}

// Validate checks the options are in range.
func (o Options) Validate() error {
	if o.Colors < 0 || o.Colors > maxColors {
		return ErrInvalidColors
	}
	if o.Quality < 0 || o.Quality > 100 {
		return ErrInvalidQuality
	}
	return nil
}

func (o Options) quality() int {
	if o.Quality == 0 {
		return DefaultQuality
	}
	return o.Quality
}

// Open decodes the image in file.
func Open(file string) (image.Image, error) {
	return imaging.Open(file)
}

// DecodeConfig returns the color model and dimensions of the image in file
// without decoding the entire image.
func DecodeConfig(file string) (image.Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	c, _, err := image.DecodeConfig(f)
	return c, err
}

// Paletted returns a copy of m reduced to at most colors colors.
func Paletted(m image.Image, colors int) *image.Paletted {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

// Encode writes the Image m to w in the given format.
func Encode(w io.Writer, m image.Image, format imaging.Format, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	switch {
	case format == imaging.GIF:
		colors := opts.Colors
		if colors == 0 {
			colors = maxColors
		}
		return gif.Encode(w, m, &gif.Options{
			NumColors: colors,
			Quantizer: quantize.MedianCutQuantizer{},
		})
	case opts.Colors > 0:
		m = Paletted(m, opts.Colors)
	}

	return imaging.Encode(w, m, format, imaging.JPEGQuality(opts.quality()))
}

// Save writes the Image m to file, the format is chosen from the extension.
func Save(m image.Image, file string, opts Options) error {
	format, err := imaging.FormatFromFilename(file)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := Encode(f, m, format, opts); err != nil {
		f.Close()
		os.Remove(file)
		return err
	}

	return f.Close()
}
