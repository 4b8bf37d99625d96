package printgrid

import (
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/printgrid/imagefile"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Compose arranges images into a grid of nx columns and ny rows separated
// by spacing pixels of bg. Every cell is the size of the first image and
// images are placed row by row in order; any beyond nx*ny are ignored and
// unused cells are left as bg. Images are blended over bg.
func Compose(images []image.Image, nx, ny, spacing int, bg color.Color) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrNoInput
	}
	if nx < 1 || ny < 1 || spacing < 0 {
		return nil, fmt.Errorf("%w: %dx%d with %d spacing", ErrInvalidGrid, nx, ny, spacing)
	}

	cell := images[0].Bounds().Size()
	canvas := imaging.New(nx*cell.X+(nx-1)*spacing, ny*cell.Y+(ny-1)*spacing, bg)

	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			idx := i*nx + j
			if idx >= len(images) {
				return canvas, nil
			}
			m := images[idx]
			at := image.Pt(j*(cell.X+spacing), i*(cell.Y+spacing))
			draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(m.Bounds().Size())}, m, m.Bounds().Min, draw.Over)
		}
	}

	return canvas, nil
}

// Grid composes the images from src into an nx by ny grid with spacing
// pixels of white between them and saves the result to output.
func (p *PrintGrid) Grid(src Source, nx, ny, spacing int, output string, opts imagefile.Options) error {
	if nx < 1 || ny < 1 || spacing < 0 {
		return fmt.Errorf("%w: %dx%d with %d spacing", ErrInvalidGrid, nx, ny, spacing)
	}

	files, err := src.Files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoInput
	}

	if len(files) > nx*ny {
		p.logger.Warnf("Only using the first %d of %d images", nx*ny, len(files))
		files = files[:nx*ny]
	}

	images := make([]image.Image, 0, len(files))
	for _, file := range files {
		m, err := imagefile.Open(file)
		if err != nil {
			return err
		}
		p.logger.WithField("file", file).Debug("Loaded image")
		images = append(images, m)
	}

	canvas, err := Compose(images, nx, ny, spacing, color.White)
	if err != nil {
		return err
	}

	if err := imagefile.Save(canvas, output, opts); err != nil {
		return err
	}

	p.logger.WithField("file", output).Info("Grid image saved")

	return nil
}
