// Package metrics exposes prometheus instrumentation and the health
// endpoint. Every recording method tolerates a nil receiver so that
// components can be wired without instrumentation, typically in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// Metrics holds all prometheus instruments.
type Metrics struct {
	FetchDuration     *prometheus.HistogramVec
	RelayFallbacks    *prometheus.CounterVec
	FetchFailures     *prometheus.CounterVec
	StreamCandles     *prometheus.CounterVec
	StreamErrors      *prometheus.CounterVec
	LiveSubscriptions prometheus.Gauge
	Searches          prometheus.Counter
	SearchFailures    prometheus.Counter
	Probes            *prometheus.CounterVec
	SessionSwitches   *prometheus.CounterVec
	IndicatorDuration prometheus.Histogram
	FeedSubscribers   prometheus.Gauge
}

// New registers and returns all instruments. A nil registerer selects
// the default prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cryptosearch_fetch_duration_seconds",
			Help:    "Snapshot request latency, including relay fallback when taken",
			Buckets: prometheus.DefBuckets,
		}, []string{"exchange"}),
		RelayFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptosearch_relay_fallbacks_total",
			Help: "Direct requests that failed over to the relay",
		}, []string{"exchange"}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptosearch_fetch_failures_total",
			Help: "Requests where both the direct and relay attempts failed",
		}, []string{"exchange"}),
		StreamCandles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptosearch_stream_candles_total",
			Help: "Candles received over the live stream",
		}, []string{"exchange"}),
		StreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptosearch_stream_errors_total",
			Help: "Socket-level stream errors (the subscription is left in place)",
		}, []string{"exchange"}),
		LiveSubscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cryptosearch_live_subscriptions",
			Help: "Live stream subscriptions (0 or 1)",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cryptosearch_searches_total",
			Help: "Symbol searches started",
		}),
		SearchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cryptosearch_search_failures_total",
			Help: "Symbol searches that failed on every exchange",
		}),
		Probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptosearch_probes_total",
			Help: "Availability probe outcomes per exchange",
		}, []string{"exchange", "outcome"}),
		SessionSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cryptosearch_session_switches_total",
			Help: "Interval and exchange switches on the active session",
		}, []string{"kind"}),
		IndicatorDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cryptosearch_indicator_compute_duration_seconds",
			Help:    "Full indicator recomputation latency per series change",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		FeedSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cryptosearch_feed_subscribers",
			Help: "Connected feed stream subscribers",
		}),
	}

	reg.MustRegister(
		m.FetchDuration,
		m.RelayFallbacks,
		m.FetchFailures,
		m.StreamCandles,
		m.StreamErrors,
		m.LiveSubscriptions,
		m.Searches,
		m.SearchFailures,
		m.Probes,
		m.SessionSwitches,
		m.IndicatorDuration,
		m.FeedSubscribers,
	)
	return m
}

func (m *Metrics) ObserveFetch(exchange market.Exchange, d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.WithLabelValues(string(exchange)).Observe(d.Seconds())
}

func (m *Metrics) RelayFallback(exchange market.Exchange) {
	if m == nil {
		return
	}
	m.RelayFallbacks.WithLabelValues(string(exchange)).Inc()
}

func (m *Metrics) FetchFailed(exchange market.Exchange) {
	if m == nil {
		return
	}
	m.FetchFailures.WithLabelValues(string(exchange)).Inc()
}

func (m *Metrics) CandleStreamed(exchange market.Exchange) {
	if m == nil {
		return
	}
	m.StreamCandles.WithLabelValues(string(exchange)).Inc()
}

func (m *Metrics) StreamErrored(exchange market.Exchange) {
	if m == nil {
		return
	}
	m.StreamErrors.WithLabelValues(string(exchange)).Inc()
}

func (m *Metrics) SetLiveSubscriptions(n int) {
	if m == nil {
		return
	}
	m.LiveSubscriptions.Set(float64(n))
}

func (m *Metrics) SearchStarted() {
	if m == nil {
		return
	}
	m.Searches.Inc()
}

func (m *Metrics) SearchFailed() {
	if m == nil {
		return
	}
	m.SearchFailures.Inc()
}

func (m *Metrics) ProbeResult(exchange market.Exchange, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "fail"
	}
	m.Probes.WithLabelValues(string(exchange), outcome).Inc()
}

func (m *Metrics) SessionSwitched(kind string) {
	if m == nil {
		return
	}
	m.SessionSwitches.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveIndicatorCompute(d time.Duration) {
	if m == nil {
		return
	}
	m.IndicatorDuration.Observe(d.Seconds())
}

func (m *Metrics) SubscriberConnected() {
	if m == nil {
		return
	}
	m.FeedSubscribers.Inc()
}

func (m *Metrics) SubscriberDisconnected() {
	if m == nil {
		return
	}
	m.FeedSubscribers.Dec()
}
