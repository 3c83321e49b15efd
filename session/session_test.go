package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/feed"
	"github.com/mortalmad92/cryptosearch/fetch"
	"github.com/mortalmad92/cryptosearch/model/market"
	"github.com/mortalmad92/cryptosearch/stream"
)

// fakeExchange serves the adapter contract against a local HTTP server.
// Bodies are plain JSON of the canonical types, so parsing is trivial
// and the orchestrator logic stays the thing under test.
type fakeExchange struct {
	name      market.Exchange
	baseURL   string
	streamURL string
}

func (f *fakeExchange) Name() market.Exchange           { return f.name }
func (f *fakeExchange) FormatSymbol(base string) string { return base + adapter.Quote }

func (f *fakeExchange) Interval(canonical string) (string, bool) { return canonical, true }

func (f *fakeExchange) TickerURL(symbol string) string {
	return fmt.Sprintf("%s/ticker/%s?symbol=%s", f.baseURL, f.name, symbol)
}

func (f *fakeExchange) CandlesURL(symbol, native string, limit int) string {
	return fmt.Sprintf("%s/candles/%s?symbol=%s&interval=%s&limit=%d", f.baseURL, f.name, symbol, native, limit)
}

func (f *fakeExchange) ParseTicker(raw []byte) (*market.TickerSnapshot, error) {
	var ts market.TickerSnapshot
	if err := json.Unmarshal(raw, &ts); err != nil {
		return nil, fmt.Errorf("fake ticker: %w: %v", market.ErrMalformedResponse, err)
	}
	return &ts, nil
}

func (f *fakeExchange) ParseCandles(raw []byte) ([]market.Candle, error) {
	var batch []market.Candle
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("fake candles: %w: %v", market.ErrMalformedResponse, err)
	}
	return batch, nil
}

func (f *fakeExchange) StreamURL(symbol, native string) string  { return f.streamURL }
func (f *fakeExchange) SubscribeFrame(_, _ string) []byte       { return nil }
func (f *fakeExchange) KeepAliveInterval() time.Duration        { return 0 }
func (f *fakeExchange) KeepAliveFrame() []byte                  { return nil }

func (f *fakeExchange) ParseStreamMessage(raw []byte) (*market.Candle, error) {
	var cd market.Candle
	if err := json.Unmarshal(raw, &cd); err != nil {
		return nil, err
	}
	if cd.Time == 0 {
		return nil, nil
	}
	return &cd, nil
}

// deadStream is a stream endpoint nothing listens on; subscribing fails
// fast and the session carries on with history only.
const deadStream = "ws://127.0.0.1:1"

// recorder captures every hub update in arrival order.
type recorder struct {
	mu      sync.Mutex
	updates []feed.Update
}

func (r *recorder) handle(u feed.Update) {
	r.mu.Lock()
	r.updates = append(r.updates, u)
	r.mu.Unlock()
}

func (r *recorder) all() []feed.Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]feed.Update(nil), r.updates...)
}

func (r *recorder) lastAvailable() []market.Exchange {
	for _, u := range r.all() {
		if u.Available != nil {
			return u.Available
		}
	}
	return nil
}

func (r *recorder) lastCandles() []market.Candle {
	var out []market.Candle
	for _, u := range r.all() {
		if u.Candles != nil {
			out = u.Candles
		}
	}
	return out
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// deadRelay gives fetch.Client a relay that always fails, keeping
// failure tests off the real default relay.
func deadRelay(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func newCoordinator(t *testing.T, relayURL string, adapters ...adapter.Adapter) (*Coordinator, *recorder) {
	t.Helper()
	hub := feed.NewHub(quietLogger(), nil)
	rec := &recorder{}
	hub.Attach(rec.handle)
	c, err := New(Config{
		Adapters: adapters,
		Fetch:    fetch.New(relayURL, quietLogger(), nil),
		Stream:   stream.New(quietLogger(), nil, nil),
		Hub:      hub,
		Logger:   quietLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, rec
}

func tickerJSON(ex market.Exchange, last string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(market.TickerSnapshot{
			Symbol:    r.URL.Query().Get("symbol"),
			LastPrice: last,
			Exchange:  ex,
		})
	}
}

func candlesJSON(closes ...float64) http.HandlerFunc {
	batch := make([]market.Candle, len(closes))
	for i, cl := range closes {
		batch[i] = market.Candle{Time: int64(60000 * (i + 1)), Open: cl, High: cl, Low: cl, Close: cl, Volume: 1}
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(batch)
	}
}

func failWith(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
}

func TestSearchFastPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", tickerJSON("alpha", "100"))
	mux.HandleFunc("/ticker/beta", tickerJSON("beta", "101"))
	mux.HandleFunc("/candles/alpha", candlesJSON(1, 2, 3))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	beta := &fakeExchange{name: "beta", baseURL: srv.URL, streamURL: deadStream}
	c, rec := newCoordinator(t, deadRelay(t), alpha, beta)

	require.NoError(t, c.Search(context.Background(), "btc"))

	symbol, exchange, interval := c.View()
	assert.Equal(t, "BTC", symbol)
	assert.Equal(t, market.Exchange("alpha"), exchange)
	assert.Equal(t, DefaultInterval, interval)

	updates := rec.all()
	require.NotEmpty(t, updates)
	assert.True(t, updates[0].Reset, "new search must reset consumers first")
	assert.Equal(t, "BTC", updates[0].Symbol)

	var ticker *market.TickerSnapshot
	for _, u := range updates {
		if u.Ticker != nil {
			ticker = u.Ticker
		}
	}
	require.NotNil(t, ticker)
	assert.Equal(t, market.Exchange("alpha"), ticker.Exchange)
	assert.Equal(t, "100", ticker.LastPrice)

	require.Len(t, rec.lastCandles(), 3)

	// The availability probe runs in the background after a fast-path hit.
	require.Eventually(t, func() bool {
		return len(rec.lastAvailable()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []market.Exchange{"alpha", "beta"}, rec.lastAvailable())
}

func TestSearchFallbackSelectsByPriority(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", failWith(http.StatusInternalServerError))
	mux.HandleFunc("/ticker/beta", tickerJSON("beta", "7"))
	mux.HandleFunc("/ticker/gamma", tickerJSON("gamma", "8"))
	mux.HandleFunc("/candles/beta", candlesJSON(5, 6))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	beta := &fakeExchange{name: "beta", baseURL: srv.URL, streamURL: deadStream}
	gamma := &fakeExchange{name: "gamma", baseURL: srv.URL, streamURL: deadStream}
	c, rec := newCoordinator(t, deadRelay(t), alpha, beta, gamma)

	require.NoError(t, c.Search(context.Background(), "btc"))

	_, exchange, _ := c.View()
	assert.Equal(t, market.Exchange("beta"), exchange, "first success in priority order")

	// The availability set contains exactly the exchanges whose probe
	// succeeded, still in priority order.
	assert.Equal(t, []market.Exchange{"beta", "gamma"}, rec.lastAvailable())

	var ticker *market.TickerSnapshot
	for _, u := range rec.all() {
		if u.Ticker != nil {
			ticker = u.Ticker
		}
	}
	require.NotNil(t, ticker)
	assert.Equal(t, market.Exchange("beta"), ticker.Exchange)
	assert.Len(t, rec.lastCandles(), 2)
}

func TestSearchAllProbesFail(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux) // no routes: every fetch 404s
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	beta := &fakeExchange{name: "beta", baseURL: srv.URL, streamURL: deadStream}
	c, _ := newCoordinator(t, deadRelay(t), alpha, beta)

	err := c.Search(context.Background(), "nosuch")
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrSymbolNotFound)

	symbol, _, _ := c.View()
	assert.Empty(t, symbol, "failed search must not establish a session")
}

func TestSearchForcedExchangeFailureSurfaces(t *testing.T) {
	var alphaTickers atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", func(w http.ResponseWriter, r *http.Request) {
		alphaTickers.Add(1)
		tickerJSON("alpha", "1")(w, r)
	})
	mux.HandleFunc("/ticker/beta", failWith(http.StatusInternalServerError))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	beta := &fakeExchange{name: "beta", baseURL: srv.URL, streamURL: deadStream}
	c, _ := newCoordinator(t, deadRelay(t), alpha, beta)

	err := c.Search(context.Background(), "btc", "beta")
	require.Error(t, err)
	assert.ErrorIs(t, err, market.ErrFetchUnavailable)
	assert.NotErrorIs(t, err, market.ErrSymbolNotFound)
	assert.Zero(t, alphaTickers.Load(), "forced exchange must not fall back")
}

func TestSearchCandleFailureYieldsEmptySeries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", tickerJSON("alpha", "9"))
	mux.HandleFunc("/candles/alpha", failWith(http.StatusInternalServerError))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	c, rec := newCoordinator(t, deadRelay(t), alpha)

	require.NoError(t, c.Search(context.Background(), "btc"), "candle batch failures are swallowed")

	symbol, exchange, _ := c.View()
	assert.Equal(t, "BTC", symbol)
	assert.Equal(t, market.Exchange("alpha"), exchange)
	assert.Empty(t, rec.lastCandles())
}

func TestRapidIntervalSwitchDropsStaleWrite(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", tickerJSON("alpha", "50"))
	mux.HandleFunc("/candles/alpha", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("interval") {
		case "1h":
			<-release // hold the first switch's batch until the second won
			candlesJSON(111)(w, r)
		case "4h":
			candlesJSON(444)(w, r)
		default:
			candlesJSON(1, 2)(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	c, rec := newCoordinator(t, deadRelay(t), alpha)
	require.NoError(t, c.Search(context.Background(), "btc"))

	slow := make(chan error, 1)
	go func() { slow <- c.SetInterval(context.Background(), "1h") }()

	// Let the 1h switch commit its interval and block in the batch
	// fetch, then run the 4h switch to completion.
	require.Eventually(t, func() bool {
		_, _, interval := c.View()
		return interval == "1h"
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, c.SetInterval(context.Background(), "4h"))
	close(release)

	select {
	case err := <-slow:
		assert.ErrorIs(t, err, market.ErrStaleToken)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the stale switch to return")
	}

	_, _, interval := c.View()
	assert.Equal(t, "4h", interval)

	last := rec.lastCandles()
	require.Len(t, last, 1)
	assert.Equal(t, 444.0, last[0].Close, "stale batch must not overwrite the newer one")
	for _, u := range rec.all() {
		for _, cd := range u.Candles {
			assert.NotEqual(t, 111.0, cd.Close, "stale batch must never be published")
		}
	}
}

func TestSetExchangeSkipsTickerResolve(t *testing.T) {
	var alphaTickers, betaTickers atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", func(w http.ResponseWriter, r *http.Request) {
		alphaTickers.Add(1)
		tickerJSON("alpha", "3")(w, r)
	})
	mux.HandleFunc("/ticker/beta", func(w http.ResponseWriter, r *http.Request) {
		betaTickers.Add(1)
		tickerJSON("beta", "4")(w, r)
	})
	mux.HandleFunc("/candles/alpha", candlesJSON(1))
	mux.HandleFunc("/candles/beta", candlesJSON(2))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	beta := &fakeExchange{name: "beta", baseURL: srv.URL, streamURL: deadStream}
	c, rec := newCoordinator(t, deadRelay(t), alpha, beta)

	require.NoError(t, c.Search(context.Background(), "btc"))
	require.Eventually(t, func() bool {
		return rec.lastAvailable() != nil
	}, time.Second, 10*time.Millisecond)

	tickersBefore := alphaTickers.Load() + betaTickers.Load()

	require.NoError(t, c.SetExchange(context.Background(), "beta"))

	_, exchange, _ := c.View()
	assert.Equal(t, market.Exchange("beta"), exchange)
	assert.Equal(t, tickersBefore, alphaTickers.Load()+betaTickers.Load(),
		"exchange switch repeats from the candle fetch, no ticker re-resolve")

	last := rec.lastCandles()
	require.Len(t, last, 1)
	assert.Equal(t, 2.0, last[0].Close)
}

func TestSearchStreamsLiveCandles(t *testing.T) {
	live := market.Candle{Time: 180000, Open: 9, High: 10, Low: 8, Close: 9.5, Volume: 3}
	upgrader := websocket.Upgrader{}
	ws := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		payload, _ := json.Marshal(live)
		_ = conn.WriteMessage(websocket.TextMessage, payload)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer ws.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/ticker/alpha", tickerJSON("alpha", "10"))
	mux.HandleFunc("/candles/alpha", candlesJSON(1, 2))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	alpha := &fakeExchange{
		name:      "alpha",
		baseURL:   srv.URL,
		streamURL: "ws" + strings.TrimPrefix(ws.URL, "http"),
	}
	c, rec := newCoordinator(t, deadRelay(t), alpha)

	require.NoError(t, c.Search(context.Background(), "btc"))

	require.Eventually(t, func() bool {
		return len(rec.lastCandles()) == 3
	}, time.Second, 10*time.Millisecond)
	got := rec.lastCandles()
	assert.Equal(t, int64(180000), got[2].Time)
	assert.Equal(t, 9.5, got[2].Close)

	c.Close()
	symbol, exchange, interval := c.View()
	assert.Empty(t, symbol)
	assert.Empty(t, string(exchange))
	assert.Empty(t, interval)
}

func TestOperationsRequireActiveSession(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	defer srv.Close()

	alpha := &fakeExchange{name: "alpha", baseURL: srv.URL, streamURL: deadStream}
	c, _ := newCoordinator(t, deadRelay(t), alpha)

	require.Error(t, c.SetInterval(context.Background(), "1h"))
	require.Error(t, c.SetExchange(context.Background(), "alpha"))

	err := c.Search(context.Background(), "   ")
	require.Error(t, err)
	assert.False(t, errors.Is(err, market.ErrSymbolNotFound))

	err = c.Search(context.Background(), "btc", "nosuch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exchange")
}
