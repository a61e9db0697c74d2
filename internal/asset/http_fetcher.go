package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG artwork support
	_ "image/png"  // PNG artwork support
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const _maxImageSize = 10 * 1024 * 1024 // 10 MB

// HTTPFetcher downloads artwork, fits it to the panel and writes it to a
// fixed path.
type HTTPFetcher struct {
	logger *zap.Logger
	client *http.Client
	fs     afero.Fs
	path   string
	width  int
	height int
}

// NewHTTPFetcher creates a fetcher writing JPEG files to path on fs. A zero
// width or height keeps the downloaded size.
func NewHTTPFetcher(logger *zap.Logger, fs afero.Fs, path string, width, height int, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
		fs:     fs,
		path:   path,
		width:  width,
		height: height,
	}
}

// Path returns the slot the fetcher writes to.
func (f *HTTPFetcher) Path() string {
	return f.path
}

// Fetch downloads url and replaces the slot content.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) error {
	data, err := f.download(ctx, url)
	if err != nil {
		return err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	if f.width > 0 && f.height > 0 && (bounds.Dx() != f.width || bounds.Dy() != f.height) {
		f.logger.Debug("Fitting artwork to panel",
			zap.Int("from_w", bounds.Dx()), zap.Int("from_h", bounds.Dy()),
			zap.Int("w", f.width), zap.Int("h", f.height))
		img = imaging.Fill(img, f.width, f.height, imaging.Center, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if err := f.fs.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, buf.Bytes(), 0o600); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("failed to write artwork: %w", err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("failed to publish artwork: %w", err)
	}
	return nil
}

func (f *HTTPFetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "coverclock/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warn("failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return nil, fmt.Errorf("url is not an image: %s", resp.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	f.logger.Debug("Image fetched successfully", zap.Int("bytes", len(data)), zap.String("url", url))
	return data, nil
}
