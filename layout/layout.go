/*
Package layout implements the paginated grid packer used to arrange images
onto fixed size printable pages.

Images are placed left to right, top to bottom, starting at a margin equal to
the spacing and keeping the same spacing between neighbouring images. The
number of images per page is sized from the first image, so input is expected
to be uniformly sized; mixed sizes are still placed without overlap, any image
that no longer fits on the current page moves to the next one.

The packer only deals with sizes, it never touches pixels or the filesystem.
*/
package layout

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidPage is returned when the page has no area
	ErrInvalidPage = errors.New("layout: invalid page size")
	// ErrInvalidSpacing is returned when the spacing is negative
	ErrInvalidSpacing = errors.New("layout: invalid spacing")
	// ErrInvalidImage is returned when an image has no area
	ErrInvalidImage = errors.New("layout: invalid image size")
	// ErrDoesNotFit is returned when an image cannot fit on an empty page
	ErrDoesNotFit = errors.New("layout: image does not fit on a page")
)

// Placement records where an input image is drawn on a page.
type Placement struct {
	// Index is the position of the image in the input
	Index int
	// Rect is the destination rectangle on the page canvas
	Rect image.Rectangle
}

// Page is one page of placements. Pages are numbered from 1.
type Page struct {
	Number     int
	Placements []Placement
}

// Packer arranges images onto pages of a fixed size.
type Packer struct {
	width, height int
	spacing       int
}

// New returns a Packer for pages of width by height pixels with spacing
// pixels between images and along the top and left edges.
func New(width, height, spacing int) (*Packer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidPage, width, height)
	}
	if spacing < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpacing, spacing)
	}
	return &Packer{
		width:   width,
		height:  height,
		spacing: spacing,
	}, nil
}

// Size returns the page size.
func (p *Packer) Size() image.Point {
	return image.Pt(p.width, p.height)
}

// Capacity returns how many columns and rows of cell sized images fit on
// a page.
func (p *Packer) Capacity(cell image.Point) (int, int) {
	if cell.X <= 0 || cell.Y <= 0 {
		return 0, 0
	}
	return p.width / (cell.X + p.spacing), p.height / (cell.Y + p.spacing)
}

// PageCount returns the number of pages needed for n images of the given
// cell size, or zero if they don't fit at all.
func (p *Packer) PageCount(n int, cell image.Point) int {
	cols, rows := p.Capacity(cell)
	perPage := cols * rows
	if n <= 0 || perPage == 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

func (p *Packer) fits(size image.Point) bool {
	return size.X+p.spacing <= p.width && size.Y+p.spacing <= p.height
}

type state int

const (
	filling state = iota
	pageComplete
)

// Pack places the images, given as sizes in input order, onto as many pages
// as needed. An empty input returns no pages and no error. If any image is
// too big for a page then an error wrapping ErrDoesNotFit is returned and no
// pages are produced.
func (p *Packer) Pack(sizes []image.Point) ([]Page, error) {
	if len(sizes) == 0 {
		return nil, nil
	}

	for i, size := range sizes {
		if size.X <= 0 || size.Y <= 0 {
			return nil, fmt.Errorf("%w: image %d is %dx%d", ErrInvalidImage, i, size.X, size.Y)
		}
		if !p.fits(size) {
			return nil, fmt.Errorf("%w: image %d is %dx%d, page is %dx%d with %d spacing", ErrDoesNotFit, i, size.X, size.Y, p.width, p.height, p.spacing)
		}
	}

	cols, rows := p.Capacity(sizes[0])
	capacity := cols * rows

	perPage := capacity
	if perPage > len(sizes) {
		perPage = len(sizes)
	}

	var (
		pages     []Page
		st        = filling
		page      = Page{Number: 1, Placements: make([]Placement, 0, perPage)}
		cursor    = image.Pt(p.spacing, p.spacing)
		rowHeight int
	)

	for i := 0; i < len(sizes); {
		switch st {
		case filling:
			size := sizes[i]

			if len(page.Placements) == capacity {
				st = pageComplete
				continue
			}

			// Wrap unless this would leave the row empty
			if cursor.X > p.spacing && cursor.X+size.X > p.width {
				cursor.X = p.spacing
				cursor.Y += rowHeight + p.spacing
				rowHeight = 0
			}

			if cursor.Y+size.Y > p.height {
				st = pageComplete
				continue
			}

			page.Placements = append(page.Placements, Placement{
				Index: i,
				Rect:  image.Rectangle{Min: cursor, Max: cursor.Add(size)},
			})
			cursor.X += size.X + p.spacing
			if size.Y > rowHeight {
				rowHeight = size.Y
			}
			i++
		case pageComplete:
			pages = append(pages, page)
			page = Page{Number: page.Number + 1, Placements: make([]Placement, 0, perPage)}
			cursor = image.Pt(p.spacing, p.spacing)
			rowHeight = 0
			st = filling
		}
	}

	return append(pages, page), nil
}
