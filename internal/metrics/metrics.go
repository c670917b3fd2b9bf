package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors live on a dedicated registry so the /metrics endpoint exposes
// only this service's series plus the standard Go and process collectors.
var (
	registry = prometheus.NewRegistry()

	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fo_weather_feed_fetch_duration_seconds",
		Help:    "Duration of lv.fo feed fetches.",
		Buckets: prometheus.DefBuckets,
	}, []string{"station", "outcome"})

	fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fo_weather_feed_fetch_total",
		Help: "Total number of lv.fo feed fetches by outcome.",
	}, []string{"station", "outcome"})

	cacheServeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fo_weather_cache_serve_total",
		Help: "Record cache activity: cached serves, refreshes and failures.",
	}, []string{"station", "source"})
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(fetchDuration, fetchTotal, cacheServeTotal)
}

// ObserveFetch records one feed round trip.
func ObserveFetch(station string, d time.Duration, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	fetchDuration.WithLabelValues(station, outcome).Observe(d.Seconds())
	fetchTotal.WithLabelValues(station, outcome).Inc()
}

// CountServe records record-cache activity for a station.
// source is one of "cached", "refreshed", "error".
func CountServe(station, source string) {
	cacheServeTotal.WithLabelValues(station, source).Inc()
}

// Handler serves the dedicated registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
