package printgrid

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/bodgit/printgrid/imagefile"
	"github.com/bodgit/printgrid/layout"
	"github.com/bodgit/printgrid/paper"
	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// PageFilename is the format of each printable page file name, it takes the
// page number and the file extension.
const PageFilename = "printable_page_%d.%s"

// PrintOptions control how images are laid out on printable pages.
type PrintOptions struct {
	// Paper is the page size
	Paper paper.Size
	// ImageSize is the size in millimetres of the side chosen by Axis
	ImageSize float64
	// Axis chooses whether ImageSize is the height or width
	Axis Axis
	// Spacing in millimetres between images and along the top and left
	// page edges
	Spacing float64
	// DPI converts millimetres to pixels
	DPI int
	// Output is the directory pages are written to, created if missing
	Output string
	// Format is the file extension of each page, such as "jpg" or "png"
	Format string
	// Background fills the page behind the images
	Background color.Color
	// Image sets the encoding options for each page
	Image imagefile.Options
}

// DefaultPrintOptions returns A4 pages at 300 DPI with 5 mm spacing written
// as JPEG files to ./print_ready/. ImageSize has no default.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Paper:      paper.A4,
		Axis:       ByHeight,
		Spacing:    5,
		DPI:        paper.DefaultDPI,
		Output:     "./print_ready/",
		Format:     "jpg",
		Background: color.White,
	}
}

// Validate checks the options are usable.
func (o PrintOptions) Validate() error {
	switch {
	case o.Paper.Width <= 0 || o.Paper.Height <= 0:
		return fmt.Errorf("%w: paper size %s", ErrInvalidOptions, o.Paper)
	case o.ImageSize <= 0:
		return fmt.Errorf("%w: image size must be positive, got %g", ErrInvalidOptions, o.ImageSize)
	case o.Axis != ByHeight && o.Axis != ByWidth:
		return fmt.Errorf("%w: %s", ErrInvalidAxis, o.Axis)
	case o.Spacing < 0:
		return fmt.Errorf("%w: spacing must not be negative, got %g", ErrInvalidOptions, o.Spacing)
	case o.DPI <= 0:
		return fmt.Errorf("%w: DPI must be positive, got %d", ErrInvalidOptions, o.DPI)
	case o.Output == "":
		return fmt.Errorf("%w: no output directory", ErrInvalidOptions)
	case o.Background == nil:
		return fmt.Errorf("%w: no background color", ErrInvalidOptions)
	}
	if _, err := imaging.FormatFromExtension(o.Format); err != nil {
		return fmt.Errorf("%w: format %q: %v", ErrInvalidOptions, o.Format, err)
	}
	return o.Image.Validate()
}

// Render draws the images placed on page onto a new canvas of the given
// size filled with bg. Transparent parts of an image show bg through.
func Render(page layout.Page, images []image.Image, size image.Point, bg color.Color) *image.NRGBA {
	canvas := imaging.New(size.X, size.Y, bg)
	for _, pl := range page.Placements {
		m := images[pl.Index]
		draw.Draw(canvas, pl.Rect, m, m.Bounds().Min, draw.Over)
	}
	return canvas
}

// Printable resizes the images from src and lays them out onto as many
// printable pages as needed, writing each page to the output directory. The
// written files are returned in page order. If src has no files ErrNoInput
// is returned. Nothing is written if the options are invalid or the images
// are too big for the page.
func (p *PrintGrid) Printable(src Source, opts PrintOptions) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pageSize := opts.Paper.Pixels(opts.DPI)
	length := paper.ToPixels(opts.ImageSize, opts.DPI)

	packer, err := layout.New(pageSize.X, pageSize.Y, paper.ToPixels(opts.Spacing, opts.DPI))
	if err != nil {
		return nil, err
	}

	files, err := src.Files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	images := make([]image.Image, 0, len(files))
	sizes := make([]image.Point, 0, len(files))
	for _, file := range files {
		m, err := imagefile.Open(file)
		if err != nil {
			return nil, err
		}

		size := opts.Axis.Scale(m.Bounds().Size(), length)
		if size.X <= 0 || size.Y <= 0 {
			return nil, fmt.Errorf("%w: %s would be resized to %dx%d", ErrInvalidOptions, file, size.X, size.Y)
		}

		p.logger.WithFields(logrus.Fields{
			"file": file,
			"from": m.Bounds().Size(),
			"to":   size,
		}).Debug("Resized image")

		images = append(images, imaging.Resize(m, size.X, size.Y, imaging.Lanczos))
		sizes = append(sizes, size)
	}

	pages, err := packer.Pack(sizes)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(pages))
	for _, page := range pages {
		out := filepath.Join(opts.Output, fmt.Sprintf(PageFilename, page.Number, opts.Format))
		if err := imagefile.Save(Render(page, images, pageSize, opts.Background), out, opts.Image); err != nil {
			return written, err
		}
		p.logger.WithFields(logrus.Fields{
			"page":   page.Number,
			"file":   out,
			"images": len(page.Placements),
		}).Info("Page saved")
		written = append(written, out)
	}

	p.logger.Infof("All %d pages created", len(written))

	return written, nil
}
