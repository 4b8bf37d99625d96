package layout

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(n int, size image.Point) []image.Point {
	sizes := make([]image.Point, n)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}

func indices(page Page) []int {
	var idx []int
	for _, pl := range page.Placements {
		idx = append(idx, pl.Index)
	}
	return idx
}

// checkPages asserts every image is placed once, in order, inside the page
// and without overlapping any other image on the same page.
func checkPages(t *testing.T, p *Packer, sizes []image.Point, pages []Page) {
	t.Helper()

	bounds := image.Rectangle{Max: p.Size()}
	next := 0
	for n, page := range pages {
		assert.Equal(t, n+1, page.Number)
		assert.NotEmpty(t, page.Placements)
		for i, pl := range page.Placements {
			assert.Equal(t, next, pl.Index)
			assert.Equal(t, sizes[pl.Index], pl.Rect.Size())
			assert.True(t, pl.Rect.In(bounds), "%v not within %v", pl.Rect, bounds)
			for _, other := range page.Placements[:i] {
				assert.False(t, pl.Rect.Overlaps(other.Rect), "%v overlaps %v", pl.Rect, other.Rect)
			}
			next++
		}
	}
	assert.Equal(t, len(sizes), next)
}

func TestNew(t *testing.T) {
	tables := []struct {
		width, height, spacing int
		err                    error
	}{
		{100, 100, 0, nil},
		{100, 100, 10, nil},
		{0, 100, 0, ErrInvalidPage},
		{100, -1, 0, ErrInvalidPage},
		{100, 100, -1, ErrInvalidSpacing},
	}

	for _, table := range tables {
		t.Run(fmt.Sprintf("%dx%d+%d", table.width, table.height, table.spacing), func(t *testing.T) {
			p, err := New(table.width, table.height, table.spacing)
			if table.err != nil {
				assert.ErrorIs(t, err, table.err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, image.Pt(table.width, table.height), p.Size())
		})
	}
}

func TestPackExample(t *testing.T) {
	p, err := New(350, 250, 10)
	require.NoError(t, err)

	cell := image.Pt(100, 100)
	cols, rows := p.Capacity(cell)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, p.PageCount(10, cell))

	sizes := uniform(10, cell)
	pages, err := p.Pack(sizes)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indices(pages[0]))
	assert.Equal(t, []int{6, 7, 8, 9}, indices(pages[1]))

	expected := []image.Point{
		{10, 10}, {120, 10}, {230, 10},
		{10, 120}, {120, 120}, {230, 120},
	}
	for i, pl := range pages[0].Placements {
		assert.Equal(t, expected[i], pl.Rect.Min)
	}
	for i, pl := range pages[1].Placements {
		assert.Equal(t, expected[i], pl.Rect.Min)
	}

	checkPages(t, p, sizes, pages)
}

func TestPackEmpty(t *testing.T) {
	p, err := New(300, 300, 5)
	require.NoError(t, err)

	pages, err := p.Pack(nil)
	assert.NoError(t, err)
	assert.Empty(t, pages)
	assert.Equal(t, 0, p.PageCount(0, image.Pt(10, 10)))
}

func TestPackTooLarge(t *testing.T) {
	p, err := New(300, 300, 0)
	require.NoError(t, err)

	pages, err := p.Pack([]image.Point{{500, 500}})
	assert.ErrorIs(t, err, ErrDoesNotFit)
	assert.Empty(t, pages)

	cols, rows := p.Capacity(image.Pt(500, 500))
	assert.Equal(t, 0, cols*rows)
	assert.Equal(t, 0, p.PageCount(1, image.Pt(500, 500)))
}

func TestPackSpacingDoesNotFit(t *testing.T) {
	// Image fits exactly but not once the leading margin is added
	p, err := New(300, 300, 1)
	require.NoError(t, err)

	_, err = p.Pack([]image.Point{{300, 300}})
	assert.ErrorIs(t, err, ErrDoesNotFit)
}

func TestPackLaterImageTooLarge(t *testing.T) {
	p, err := New(300, 300, 0)
	require.NoError(t, err)

	pages, err := p.Pack([]image.Point{{100, 100}, {100, 100}, {400, 100}})
	assert.ErrorIs(t, err, ErrDoesNotFit)
	assert.Empty(t, pages)
}

func TestPackInvalidImage(t *testing.T) {
	p, err := New(300, 300, 0)
	require.NoError(t, err)

	_, err = p.Pack([]image.Point{{100, 100}, {0, 100}})
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestPackPageCount(t *testing.T) {
	tables := []struct {
		page    image.Point
		cell    image.Point
		spacing int
		n       int
	}{
		{image.Pt(350, 250), image.Pt(100, 100), 10, 1},
		{image.Pt(350, 250), image.Pt(100, 100), 10, 6},
		{image.Pt(350, 250), image.Pt(100, 100), 10, 7},
		{image.Pt(330, 220), image.Pt(100, 100), 10, 12},
		{image.Pt(100, 100), image.Pt(100, 100), 0, 3},
		{image.Pt(2480, 3507), image.Pt(472, 590), 59, 25},
		{image.Pt(1000, 50), image.Pt(7, 3), 2, 500},
	}

	for _, table := range tables {
		t.Run(fmt.Sprintf("%v/%v+%d/%d", table.page, table.cell, table.spacing, table.n), func(t *testing.T) {
			p, err := New(table.page.X, table.page.Y, table.spacing)
			require.NoError(t, err)

			cols, rows := p.Capacity(table.cell)
			perPage := cols * rows
			require.NotZero(t, perPage)

			sizes := uniform(table.n, table.cell)
			pages, err := p.Pack(sizes)
			require.NoError(t, err)

			assert.Len(t, pages, (table.n+perPage-1)/perPage)
			assert.Equal(t, len(pages), p.PageCount(table.n, table.cell))
			for i, page := range pages {
				if i < len(pages)-1 {
					assert.Len(t, page.Placements, perPage)
				}
			}
			checkPages(t, p, sizes, pages)
		})
	}
}

func TestPackNonUniform(t *testing.T) {
	p, err := New(350, 250, 10)
	require.NoError(t, err)

	sizes := []image.Point{
		{100, 100},
		{150, 100},
		{100, 120},
		{200, 50},
		{100, 100},
		{60, 200},
		{100, 100},
	}

	pages, err := p.Pack(sizes)
	require.NoError(t, err)
	require.NotEmpty(t, pages)

	checkPages(t, p, sizes, pages)
}

func TestPackNonUniformTallRow(t *testing.T) {
	p, err := New(300, 300, 0)
	require.NoError(t, err)

	// The second image makes the first row taller than the first image,
	// the next row must start below it
	sizes := []image.Point{{100, 50}, {100, 150}, {100, 50}, {100, 50}}
	pages, err := p.Pack(sizes)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	pl := pages[0].Placements
	require.Len(t, pl, 4)
	assert.Equal(t, image.Pt(0, 0), pl[0].Rect.Min)
	assert.Equal(t, image.Pt(100, 0), pl[1].Rect.Min)
	assert.Equal(t, image.Pt(200, 0), pl[2].Rect.Min)
	assert.Equal(t, image.Pt(0, 150), pl[3].Rect.Min)

	checkPages(t, p, sizes, pages)
}

func TestPackNonUniformCarriesOver(t *testing.T) {
	p, err := New(100, 100, 0)
	require.NoError(t, err)

	// Capacity is four from the first image but the wide image pushes
	// itself and the remainder onto following pages
	sizes := []image.Point{{50, 50}, {50, 50}, {100, 60}, {50, 50}}
	pages, err := p.Pack(sizes)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, []int{0, 1}, indices(pages[0]))
	assert.Equal(t, []int{2}, indices(pages[1]))
	assert.Equal(t, []int{3}, indices(pages[2]))

	checkPages(t, p, sizes, pages)
}
