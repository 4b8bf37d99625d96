package printgrid

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/printgrid/imagefile"
	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

// CutRects divides bounds into nx columns and ny rows of equally sized
// rectangles, returned as rects[row][col]. Any pixels left over after
// dividing the width and height are discarded.
func CutRects(bounds image.Rectangle, nx, ny int) ([][]image.Rectangle, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, nx, ny)
	}

	width, height := bounds.Dx()/nx, bounds.Dy()/ny
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d is too many tiles for a %dx%d image", ErrInvalidGrid, nx, ny, bounds.Dx(), bounds.Dy())
	}

	rects := make([][]image.Rectangle, ny)
	for i := range rects {
		rects[i] = make([]image.Rectangle, nx)
		for j := range rects[i] {
			x0 := bounds.Min.X + j*width
			y0 := bounds.Min.Y + i*height
			rects[i][j] = image.Rect(x0, y0, x0+width, y0+height)
		}
	}

	return rects, nil
}

// Cut slices the image in file into nx by ny tiles and writes each one to
// dir as "<name>_<row>_<col>.png", creating dir if necessary. The written
// files are returned in row-major order.
func (p *PrintGrid) Cut(file string, nx, ny int, dir string, opts imagefile.Options) ([]string, error) {
	m, err := imagefile.Open(file)
	if err != nil {
		return nil, err
	}

	rects, err := CutRects(m.Bounds(), nx, ny)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	base := filepath.Base(file)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	files := make([]string, 0, nx*ny)
	for i, row := range rects {
		for j, r := range row {
			out := filepath.Join(dir, fmt.Sprintf("%s_%d_%d.png", name, i, j))
			if err := imagefile.Save(imaging.Crop(m, r), out, opts); err != nil {
				return files, err
			}
			p.logger.WithFields(logrus.Fields{
				"file": out,
				"rect": r,
			}).Debug("Saved tile")
			files = append(files, out)
		}
	}

	p.logger.WithField("dir", dir).Infof("Saved %d tiles", len(files))

	return files, nil
}
