package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveTick("clock", 150*time.Millisecond)
	pr.IncPlaybackStatus("playing")
	pr.IncPlaybackStatus("playing")
	pr.IncAssetFetch(true)
	pr.IncAssetFetch(false)
	pr.SetAuthenticated(true)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.playbackStatus.WithLabelValues("playing")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.assetFetches.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.authenticated), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 4)
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncPlaybackStatus("inactive")

	server := httptest.NewServer(HTTPHandler(reg))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `coverclock_playback_status_total{status="inactive"} 1`)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveTick("asset", time.Second)
	r.IncPlaybackStatus("forbidden")
	r.IncAssetFetch(false)
	r.SetAuthenticated(false)
}
