// Package session drives one logical viewing session: a base symbol, a
// canonical interval and an active exchange. It owns the fast-path /
// probe-fallback search flow, the candle series for the active view and
// the lifecycle of the single live stream subscription.
//
// Every session-mutating entry point mints a fresh token from a
// monotonically increasing counter, invalidating all work still in
// flight under older tokens. Every write to shared state (coordinator
// fields, hub publishes, series replacement) re-checks its captured
// token first, so a slow, stale fetch can never overwrite state that a
// newer operation has already established.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/feed"
	"github.com/mortalmad92/cryptosearch/fetch"
	"github.com/mortalmad92/cryptosearch/metrics"
	"github.com/mortalmad92/cryptosearch/model/market"
	"github.com/mortalmad92/cryptosearch/series"
	"github.com/mortalmad92/cryptosearch/stream"
)

const (
	// DefaultInterval is the canonical interval a fresh session starts on.
	DefaultInterval = "15m"

	// DefaultCandleLimit is how many historical candles a batch fetch requests.
	DefaultCandleLimit = 500

	// probeTimeout bounds the background availability probe, which is
	// detached from the caller's context so it survives the request.
	probeTimeout = 15 * time.Second
)

// Config assembles a Coordinator. Adapters must be in priority order;
// the first entry is the fast-path exchange.
type Config struct {
	Adapters    []adapter.Adapter
	Fetch       *fetch.Client
	Stream      *stream.Manager
	Hub         *feed.Hub
	SeriesCap   int
	CandleLimit int
	Logger      *logrus.Logger
	Metrics     *metrics.Metrics
	Health      *metrics.Health
}

// Coordinator serializes session switches through cancellation tokens.
// Methods are safe for concurrent use; when calls race, the one that
// minted the newest token wins and the others return ErrStaleToken.
type Coordinator struct {
	adapters    []adapter.Adapter
	byName      map[market.Exchange]adapter.Adapter
	fetch       *fetch.Client
	stream      *stream.Manager
	hub         *feed.Hub
	seriesCap   int
	candleLimit int
	log         *logrus.Entry
	metrics     *metrics.Metrics
	health      *metrics.Health

	token atomic.Uint64

	// subMu serializes stream subscribe/teardown so a stale operation
	// can never install its socket after a newer one installed its own.
	subMu sync.Mutex

	mu       sync.Mutex
	symbol   string
	exchange market.Exchange
	interval string
	series   *series.Series
}

// New validates the configuration and builds a Coordinator.
func New(cfg Config) (*Coordinator, error) {
	if len(cfg.Adapters) == 0 {
		return nil, errors.New("session: at least one adapter required")
	}
	if cfg.Fetch == nil {
		return nil, errors.New("session: fetch client required")
	}
	if cfg.Stream == nil {
		return nil, errors.New("session: stream manager required")
	}
	if cfg.Hub == nil {
		return nil, errors.New("session: feed hub required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.SeriesCap <= 0 {
		cfg.SeriesCap = series.DefaultCap
	}
	if cfg.CandleLimit <= 0 {
		cfg.CandleLimit = DefaultCandleLimit
	}

	byName := make(map[market.Exchange]adapter.Adapter, len(cfg.Adapters))
	for _, a := range cfg.Adapters {
		if _, dup := byName[a.Name()]; dup {
			return nil, fmt.Errorf("session: duplicate adapter %q", a.Name())
		}
		byName[a.Name()] = a
	}

	return &Coordinator{
		adapters:    cfg.Adapters,
		byName:      byName,
		fetch:       cfg.Fetch,
		stream:      cfg.Stream,
		hub:         cfg.Hub,
		seriesCap:   cfg.SeriesCap,
		candleLimit: cfg.CandleLimit,
		log:         cfg.Logger.WithField("component", "session"),
		metrics:     cfg.Metrics,
		health:      cfg.Health,
	}, nil
}

// Search resolves a base asset ("BTC") to an exchange and starts a new
// session on it: ticker first, then the historical candle batch, then
// the live stream. With no forced exchange it tries the priority-first
// exchange and falls back to probing all of them, returning
// market.ErrSymbolNotFound only when every probe fails. With a forced
// exchange a failure is surfaced directly, no fallback.
//
// The previous session's stream is torn down before any network I/O.
func (c *Coordinator) Search(ctx context.Context, base string, forced ...market.Exchange) error {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return errors.New("session: empty symbol")
	}

	token := c.token.Add(1)
	c.metrics.SearchStarted()
	c.teardownStream()

	interval := c.intervalOrDefault()
	log := c.log.WithFields(logrus.Fields{"symbol": base, "interval": interval})

	if !c.tryCommit(token, func() {
		c.symbol, c.exchange, c.series = "", "", nil
		c.hub.Publish(feed.Update{Reset: true, Symbol: base, Interval: interval})
	}) {
		return market.ErrStaleToken
	}

	var (
		chosen adapter.Adapter
		ticker *market.TickerSnapshot
	)
	switch {
	case len(forced) > 0 && forced[0] != "":
		a, ok := c.byName[forced[0]]
		if !ok {
			return fmt.Errorf("session: unknown exchange %q", forced[0])
		}
		ts, err := c.fetchTicker(ctx, a, base)
		if err != nil {
			return fmt.Errorf("ticker on %s: %w", a.Name(), err)
		}
		chosen, ticker = a, ts
		go c.probeInBackground(token, base)

	default:
		preferred := c.adapters[0]
		ts, err := c.fetchTicker(ctx, preferred, base)
		if err == nil {
			chosen, ticker = preferred, ts
			go c.probeInBackground(token, base)
			break
		}
		log.WithField("exchange", preferred.Name()).WithError(err).
			Info("fast path failed, probing all exchanges")

		results := c.probeAll(ctx, base)
		if len(results) == 0 {
			c.metrics.SearchFailed()
			return fmt.Errorf("%w: %s", market.ErrSymbolNotFound, base)
		}
		chosen, ticker = results[0].adapter, results[0].ticker
		c.publishAvailability(token, results)
	}

	// The ticker is displayed ahead of history: consumers get the
	// snapshot as soon as an exchange is locked in.
	s := series.New(c.seriesCap)
	if !c.tryCommit(token, func() {
		c.symbol, c.exchange, c.interval, c.series = base, chosen.Name(), interval, s
		c.health.SetSession(base, chosen.Name())
		c.hub.Publish(feed.Update{
			Symbol:   base,
			Exchange: chosen.Name(),
			Interval: interval,
			Ticker:   ticker,
		})
	}) {
		return market.ErrStaleToken
	}

	log.WithField("exchange", chosen.Name()).Info("session established")
	return c.loadAndStream(ctx, token, chosen, base, interval, s)
}

// SetInterval switches the active session to another canonical interval,
// repeating the flow from the candle-batch fetch onward. The ticker and
// exchange availability are not re-resolved.
func (c *Coordinator) SetInterval(ctx context.Context, interval string) error {
	c.mu.Lock()
	base, ex := c.symbol, c.exchange
	c.mu.Unlock()
	if base == "" {
		return errors.New("session: no active session")
	}

	a := c.byName[ex]
	if _, ok := a.Interval(interval); !ok {
		return fmt.Errorf("session: interval %q not supported on %s", interval, ex)
	}

	token := c.token.Add(1)
	c.metrics.SessionSwitched("interval")

	s := series.New(c.seriesCap)
	if !c.tryCommit(token, func() {
		c.interval = interval
		c.series = s
		c.hub.Publish(feed.Update{Interval: interval})
	}) {
		return market.ErrStaleToken
	}
	return c.loadAndStream(ctx, token, a, base, interval, s)
}

// SetExchange moves the active session to another exchange at the same
// interval, repeating the flow from the candle-batch fetch onward.
func (c *Coordinator) SetExchange(ctx context.Context, exchange market.Exchange) error {
	a, ok := c.byName[exchange]
	if !ok {
		return fmt.Errorf("session: unknown exchange %q", exchange)
	}

	c.mu.Lock()
	base, interval := c.symbol, c.interval
	c.mu.Unlock()
	if base == "" {
		return errors.New("session: no active session")
	}
	if _, ok := a.Interval(interval); !ok {
		return fmt.Errorf("session: interval %q not supported on %s", interval, exchange)
	}

	token := c.token.Add(1)
	c.metrics.SessionSwitched("exchange")

	s := series.New(c.seriesCap)
	if !c.tryCommit(token, func() {
		c.exchange = exchange
		c.series = s
		c.health.SetSession(base, exchange)
		c.hub.Publish(feed.Update{Exchange: exchange})
	}) {
		return market.ErrStaleToken
	}
	return c.loadAndStream(ctx, token, a, base, interval, s)
}

// Close invalidates in-flight work, tears down the live stream and
// clears the session.
func (c *Coordinator) Close() {
	token := c.token.Add(1)
	c.teardownStream()
	c.tryCommit(token, func() {
		c.symbol, c.exchange, c.interval, c.series = "", "", "", nil
		c.health.ClearSession()
	})
}

// View reports the active session, all empty when none is established.
func (c *Coordinator) View() (symbol string, exchange market.Exchange, interval string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbol, c.exchange, c.interval
}

// loadAndStream fetches the historical batch into s, publishes it and
// opens the live subscription. Batch failures deliberately yield an
// empty series instead of failing the operation.
func (c *Coordinator) loadAndStream(ctx context.Context, token uint64, a adapter.Adapter, base, interval string, s *series.Series) error {
	symbol := a.FormatSymbol(base)
	native, ok := a.Interval(interval)
	if !ok {
		return fmt.Errorf("session: interval %q not supported on %s", interval, a.Name())
	}

	batch := c.fetchCandles(ctx, a, symbol, native)
	if !c.tryCommit(token, func() {
		s.ReplaceAll(batch)
		c.hub.Publish(feed.Update{Candles: s.Snapshot()})
	}) {
		return market.ErrStaleToken
	}

	c.subMu.Lock()
	defer c.subMu.Unlock()
	if c.stale(token) {
		return market.ErrStaleToken
	}
	onCandle := func(cd market.Candle) {
		if c.stale(token) {
			return
		}
		s.MergeOne(cd)
		c.hub.Publish(feed.Update{Candles: s.Snapshot()})
	}
	if err := c.stream.Subscribe(ctx, a, symbol, native, onCandle); err != nil {
		// Live updates are an enhancement on top of the fetched
		// history; the session stays up without them.
		c.log.WithFields(logrus.Fields{
			"exchange": a.Name(),
			"symbol":   symbol,
		}).WithError(err).Warn("stream subscribe failed, continuing with history only")
	}
	return nil
}

type probeResult struct {
	adapter adapter.Adapter
	ticker  *market.TickerSnapshot
}

// probeAll asks every adapter for the symbol's ticker concurrently and
// waits for all of them. One probe failing never aborts the others; the
// result keeps priority order and contains only successes.
func (c *Coordinator) probeAll(ctx context.Context, base string) []probeResult {
	type slot struct {
		ticker *market.TickerSnapshot
		err    error
	}
	slots := make([]slot, len(c.adapters))

	var wg sync.WaitGroup
	for i, a := range c.adapters {
		wg.Add(1)
		go func(i int, a adapter.Adapter) {
			defer wg.Done()
			ts, err := c.fetchTicker(ctx, a, base)
			slots[i] = slot{ticker: ts, err: err}
		}(i, a)
	}
	wg.Wait()

	var out []probeResult
	for i, a := range c.adapters {
		ok := slots[i].err == nil
		c.metrics.ProbeResult(a.Name(), ok)
		if !ok {
			c.log.WithFields(logrus.Fields{
				"exchange": a.Name(),
				"symbol":   base,
			}).WithError(slots[i].err).Debug("probe failed")
			continue
		}
		out = append(out, probeResult{adapter: a, ticker: slots[i].ticker})
	}
	return out
}

// probeInBackground runs the availability probe after a fast-path or
// forced-exchange hit, detached from the request context so it outlives
// the call that spawned it.
func (c *Coordinator) probeInBackground(token uint64, base string) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	c.publishAvailability(token, c.probeAll(ctx, base))
}

// publishAvailability is best-effort: the write is dropped when the
// token has been invalidated since the probe started.
func (c *Coordinator) publishAvailability(token uint64, results []probeResult) {
	available := make([]market.Exchange, 0, len(results))
	for _, r := range results {
		available = append(available, r.adapter.Name())
	}
	c.tryCommit(token, func() {
		c.hub.Publish(feed.Update{Available: available})
	})
}

func (c *Coordinator) fetchTicker(ctx context.Context, a adapter.Adapter, base string) (*market.TickerSnapshot, error) {
	raw, err := c.fetch.Get(ctx, a.Name(), a.TickerURL(a.FormatSymbol(base)))
	if err != nil {
		return nil, err
	}
	return a.ParseTicker(raw)
}

// fetchCandles swallows failures: history that cannot be fetched shows
// up as an empty series, which consumers render as still loading.
func (c *Coordinator) fetchCandles(ctx context.Context, a adapter.Adapter, symbol, native string) []market.Candle {
	raw, err := c.fetch.Get(ctx, a.Name(), a.CandlesURL(symbol, native, c.candleLimit))
	if err == nil {
		var batch []market.Candle
		if batch, err = a.ParseCandles(raw); err == nil {
			return batch
		}
	}
	c.log.WithFields(logrus.Fields{
		"exchange": a.Name(),
		"symbol":   symbol,
		"interval": native,
	}).WithError(err).Warn("candle batch fetch failed, starting with empty series")
	return nil
}

func (c *Coordinator) teardownStream() {
	c.subMu.Lock()
	c.stream.Teardown()
	c.subMu.Unlock()
}

func (c *Coordinator) intervalOrDefault() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.interval == "" {
		return DefaultInterval
	}
	return c.interval
}

func (c *Coordinator) stale(token uint64) bool {
	return c.token.Load() != token
}

// tryCommit runs fn under the coordinator lock only if token is still
// the newest one, reporting whether the write happened. Publishing to
// the hub inside fn is safe: handlers are contractually non-blocking
// and never call back into the coordinator.
func (c *Coordinator) tryCommit(token uint64, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(token) {
		return false
	}
	fn()
	return true
}
