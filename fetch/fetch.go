// Package fetch performs the REST snapshot requests against exchange
// APIs. Every request goes direct first; on any failure it is retried
// exactly once through a pass-through relay. The relay adds noticeable
// latency, so it is strictly a last resort and never tried first.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/mortalmad92/cryptosearch/metrics"
	"github.com/mortalmad92/cryptosearch/model/market"
)

// DefaultRelayURL is the pass-through relay endpoint. It accepts a
// URL-encoded target in the "url" query parameter and wraps the raw
// response body in a JSON envelope.
const DefaultRelayURL = "https://api.allorigins.win/get"

const defaultTimeout = 10 * time.Second

// Per-exchange request pacing for the direct path. Public spot endpoints
// on all five exchanges allow well above this.
const (
	requestRate  rate.Limit = 10
	requestBurst            = 10
)

// Client performs direct-then-relay GET requests with per-exchange
// pacing. The zero value is not usable; construct with New.
type Client struct {
	http     *http.Client
	relayURL string
	log      *logrus.Entry
	metrics  *metrics.Metrics

	mu       sync.Mutex
	limiters map[market.Exchange]*rate.Limiter
}

// New builds a Client. An empty relayURL selects DefaultRelayURL; a nil
// logger selects the logrus standard logger; metrics may be nil.
func New(relayURL string, log *logrus.Logger, m *metrics.Metrics) *Client {
	if relayURL == "" {
		relayURL = DefaultRelayURL
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		relayURL: relayURL,
		log:      log.WithField("component", "fetch"),
		metrics:  m,
		limiters: make(map[market.Exchange]*rate.Limiter),
	}
}

// Get fetches rawURL, pacing against the exchange's limiter first. On a
// direct failure the relay is tried once; if that also fails, the error
// is ErrFetchUnavailable carrying the relay failure as cause.
func (c *Client) Get(ctx context.Context, exchange market.Exchange, rawURL string) ([]byte, error) {
	if err := c.limiter(exchange).Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { c.metrics.ObserveFetch(exchange, time.Since(start)) }()

	body, directErr := c.get(ctx, rawURL)
	if directErr == nil {
		return body, nil
	}

	c.log.WithFields(logrus.Fields{
		"exchange": exchange,
		"url":      rawURL,
	}).WithError(directErr).Warn("direct request failed, trying relay")
	c.metrics.RelayFallback(exchange)

	body, relayErr := c.relay(ctx, rawURL)
	if relayErr != nil {
		c.metrics.FetchFailed(exchange)
		return nil, fmt.Errorf("%w: relay: %v (direct: %v)",
			market.ErrFetchUnavailable, relayErr, directErr)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// relay fetches the target through the pass-through relay and unwraps
// its envelope. The contents field carries the origin body verbatim as a
// string, JSON or not; unwrapping does not depend on what is inside.
func (c *Client) relay(ctx context.Context, target string) ([]byte, error) {
	body, err := c.get(ctx, c.relayURL+"?url="+url.QueryEscape(target))
	if err != nil {
		return nil, err
	}

	var env struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("relay envelope: %v", err)
	}
	if env.Contents == "" {
		return nil, errors.New("relay envelope: empty contents")
	}
	return []byte(env.Contents), nil
}

func (c *Client) limiter(exchange market.Exchange) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[exchange]
	if !ok {
		l = rate.NewLimiter(requestRate, requestBurst)
		c.limiters[exchange] = l
	}
	return l
}
