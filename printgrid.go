/*
Package printgrid is a library for slicing images into grids of tiles,
reassembling tiles into a single grid image and laying out equally sized
images onto printable pages of a fixed paper size.
*/
package printgrid

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoInput is returned when there are no images to work on. It is
	// informational rather than a failure
	ErrNoInput = errors.New("printgrid: no files found matching the pattern")
	// ErrInvalidGrid is returned for a grid with no rows or columns
	ErrInvalidGrid = errors.New("printgrid: invalid grid")
	// ErrInvalidOptions is returned when printable page options are out
	// of range
	ErrInvalidOptions = errors.New("printgrid: invalid options")
)

// PrintGrid carries the logger and HTTP client shared by all operations.
type PrintGrid struct {
	logger logrus.FieldLogger
	client *http.Client
}

// New returns a PrintGrid logging to logger and downloading with
// http.DefaultClient.
func New(logger logrus.FieldLogger) *PrintGrid {
	return &PrintGrid{
		logger: logger,
		client: http.DefaultClient,
	}
}

// WithClient returns a copy of p that downloads using client.
func (p *PrintGrid) WithClient(client *http.Client) *PrintGrid {
	return &PrintGrid{
		logger: p.logger,
		client: client,
	}
}
