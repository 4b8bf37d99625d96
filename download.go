package printgrid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context/ctxhttp"
)

// UserAgent is sent with every download, some image hosts such as Wikipedia
// refuse requests without a browser-like agent.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// StatusError is returned when a download gets a response other than
// 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("printgrid: failed to download %s: status code %d", e.URL, e.StatusCode)
}

// Download fetches url and saves the response body to output. The body is
// written to a temporary file alongside output which is only renamed into
// place once complete, so a failed download never leaves a partial file.
// There are no retries.
func (p *PrintGrid) Download(ctx context.Context, url, output string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := ctxhttp.Do(ctx, p.client, req)
	if err != nil {
		return fmt.Errorf("printgrid: failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
		}
	}

	f, err := os.CreateTemp(filepath.Dir(output), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		f.Close()
		return fmt.Errorf("printgrid: failed to download %s: %w", url, err)
	}

	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Rename(f.Name(), output); err != nil {
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"url":   url,
		"file":  output,
		"bytes": n,
	}).Info("Image downloaded")

	return nil
}
