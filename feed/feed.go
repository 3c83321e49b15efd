// Package feed fans session state out to consumers. The session is the
// single producer; gRPC streams and other consumers attach handlers and
// receive every published update plus a cached latest view for late
// joiners.
package feed

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mortalmad92/cryptosearch/indicator"
	"github.com/mortalmad92/cryptosearch/metrics"
	"github.com/mortalmad92/cryptosearch/model/market"
)

// Update is one state delta. Nil or empty fields mean "unchanged";
// Reset marks the start of a new viewing session, telling consumers to
// drop everything they have rendered so far.
type Update struct {
	Reset      bool
	Symbol     string
	Exchange   market.Exchange
	Interval   string
	Ticker     *market.TickerSnapshot
	Candles    []market.Candle
	Indicators *indicator.Bundle
	Available  []market.Exchange
}

// Handler receives published updates. Handlers run on the publisher's
// goroutine and must not block.
type Handler func(Update)

// Hub is the fan-out point between one producing session and any number
// of consumers.
type Hub struct {
	log     *logrus.Entry
	metrics *metrics.Metrics

	mu       sync.Mutex
	handlers map[uint64]Handler
	nextID   uint64
	latest   Update
}

// Subscription identifies one attached handler.
type Subscription struct {
	id  uint64
	hub *Hub
}

func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	delete(s.hub.handlers, s.id)
	s.hub.mu.Unlock()
}

// NewHub builds a Hub. Logger and metrics may be nil.
func NewHub(log *logrus.Logger, m *metrics.Metrics) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		log:      log.WithField("component", "feed"),
		metrics:  m,
		handlers: make(map[uint64]Handler),
	}
}

// Attach registers a handler for all future updates. To replay current
// state, attach first and then apply Latest: an update landing between
// the two calls is then delivered twice rather than lost, and applying
// an update is idempotent.
func (h *Hub) Attach(fn Handler) *Subscription {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = fn
	h.mu.Unlock()
	return &Subscription{id: id, hub: h}
}

// Latest returns the merged state of everything published so far.
func (h *Hub) Latest() Update {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Publish folds the update into the latest view and delivers it to every
// attached handler. Candle updates missing an indicator bundle get one
// computed here, so all consumers share a single recomputation.
func (h *Hub) Publish(u Update) {
	if u.Candles != nil && u.Indicators == nil {
		start := time.Now()
		u.Indicators = indicator.Compute(u.Candles)
		h.metrics.ObserveIndicatorCompute(time.Since(start))
	}

	h.mu.Lock()
	if u.Reset {
		h.latest = Update{}
	}
	if u.Symbol != "" {
		h.latest.Symbol = u.Symbol
	}
	if u.Exchange != "" {
		h.latest.Exchange = u.Exchange
	}
	if u.Interval != "" {
		h.latest.Interval = u.Interval
	}
	if u.Ticker != nil {
		h.latest.Ticker = u.Ticker
	}
	if u.Candles != nil {
		h.latest.Candles = u.Candles
		h.latest.Indicators = u.Indicators
	}
	if u.Available != nil {
		h.latest.Available = u.Available
	}

	// Snapshot handlers before releasing the lock so user code never
	// runs under it.
	hs := make([]Handler, 0, len(h.handlers))
	for _, fn := range h.handlers {
		hs = append(hs, fn)
	}
	h.mu.Unlock()

	for _, fn := range hs {
		fn(u)
	}
}
