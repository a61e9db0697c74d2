package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coverclock"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	tickDuration   *prom.HistogramVec
	playbackStatus *prom.CounterVec
	assetFetches   *prom.CounterVec
	authenticated  prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		tickDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Duration of a full decide and render cycle",
			Buckets:   prom.DefBuckets,
		}, []string{"mode"}),
		playbackStatus: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "playback_status_total",
			Help:      "Playback query outcomes by status",
		}, []string{"status"}),
		assetFetches: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "asset_fetches_total",
			Help:      "Artwork downloads by result",
		}, []string{"result"}),
		authenticated: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "session_authenticated",
			Help:      "1 once the playback session is authenticated",
		}),
	}
	reg.MustRegister(pr.tickDuration, pr.playbackStatus, pr.assetFetches, pr.authenticated)
	return pr
}

func (p *PrometheusRecorder) ObserveTick(mode string, d time.Duration) {
	p.tickDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPlaybackStatus(status string) {
	p.playbackStatus.WithLabelValues(status).Inc()
}

func (p *PrometheusRecorder) IncAssetFetch(success bool) {
	res := "failed"
	if success {
		res = "success"
	}
	p.assetFetches.WithLabelValues(res).Inc()
}

func (p *PrometheusRecorder) SetAuthenticated(ok bool) {
	v := 0.0
	if ok {
		v = 1
	}
	p.authenticated.Set(v)
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
