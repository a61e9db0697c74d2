package asset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name          string
		contentType   string
		body          []byte
		statusCode    int
		expectedError string
	}{
		{
			name:        "Success - resized to panel",
			contentType: "image/png",
			body:        pngBytes(t, 300, 300),
			statusCode:  http.StatusOK,
		},
		{
			name:          "Error - 404 Not Found",
			contentType:   "image/jpeg",
			statusCode:    http.StatusNotFound,
			expectedError: "unexpected status code: 404",
		},
		{
			name:          "Error - Invalid Content Type",
			contentType:   "text/plain",
			body:          []byte("not-an-image"),
			statusCode:    http.StatusOK,
			expectedError: "url is not an image",
		},
		{
			name:          "Error - Undecodable",
			contentType:   "image/jpeg",
			body:          []byte("garbage"),
			statusCode:    http.StatusOK,
			expectedError: "failed to decode image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.body)
			}))
			defer server.Close()

			fs := afero.NewMemMapFs()
			fetcher := NewHTTPFetcher(zap.NewNop(), fs, "/cache/cover.jpg", 64, 64, 2*time.Second)

			err := fetcher.Fetch(context.Background(), server.URL)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				exists, _ := afero.Exists(fs, "/cache/cover.jpg")
				assert.False(t, exists, "slot must not be written on failure")
				return
			}

			require.NoError(t, err)
			f, err := fs.Open("/cache/cover.jpg")
			require.NoError(t, err)
			defer f.Close()

			cfg, format, err := image.DecodeConfig(f)
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, 64, cfg.Width)
			assert.Equal(t, 64, cfg.Height)
		})
	}
}

func TestHTTPFetcherKeepsPreviousFileOnFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cover.jpg", []byte("old"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(zap.NewNop(), fs, "/cover.jpg", 64, 64, time.Second)
	assert.Error(t, fetcher.Fetch(context.Background(), server.URL))

	data, err := afero.ReadFile(fs, "/cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestHTTPFetcherContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewHTTPFetcher(zap.NewNop(), afero.NewMemMapFs(), "/cover.jpg", 64, 64, time.Second)
	err := fetcher.Fetch(ctx, "http://127.0.0.1:1/art.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(string, string) error {
	return errors.New("device busy")
}

func TestHTTPFetcherPublishesSlotWhole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes(t, 64, 64))
	}))
	defer server.Close()

	t.Run("success leaves no temp file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		fetcher := NewHTTPFetcher(zap.NewNop(), fs, "/cover.jpg", 64, 64, time.Second)
		require.NoError(t, fetcher.Fetch(context.Background(), server.URL))

		exists, _ := afero.Exists(fs, "/cover.jpg.tmp")
		assert.False(t, exists)
		exists, _ = afero.Exists(fs, "/cover.jpg")
		assert.True(t, exists)
	})

	t.Run("failed publish keeps previous slot", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/cover.jpg", []byte("old"), 0o600))

		fetcher := NewHTTPFetcher(zap.NewNop(), renameFailFs{mem}, "/cover.jpg", 64, 64, time.Second)
		err := fetcher.Fetch(context.Background(), server.URL)
		assert.ErrorContains(t, err, "failed to publish artwork")

		data, err := afero.ReadFile(mem, "/cover.jpg")
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
		exists, _ := afero.Exists(mem, "/cover.jpg.tmp")
		assert.False(t, exists)
	})
}
