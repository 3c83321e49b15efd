package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// Health tracks liveness of the active viewing session for the /healthz
// endpoint. Setters tolerate a nil receiver.
type Health struct {
	mu              sync.RWMutex
	streamConnected bool
	activeSymbol    string
	activeExchange  market.Exchange
	lastCandle      time.Time
	startedAt       time.Time
}

func NewHealth() *Health {
	return &Health{startedAt: time.Now()}
}

func (h *Health) SetStreamConnected(v bool) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.streamConnected = v
	h.mu.Unlock()
}

func (h *Health) SetSession(symbol string, exchange market.Exchange) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.activeSymbol = symbol
	h.activeExchange = exchange
	h.mu.Unlock()
}

func (h *Health) ClearSession() {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.activeSymbol = ""
	h.activeExchange = ""
	h.streamConnected = false
	h.mu.Unlock()
}

// CandleSeen stamps the arrival of a live candle.
func (h *Health) CandleSeen() {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.lastCandle = time.Now()
	h.mu.Unlock()
}

// ServeHTTP handles /healthz. A session whose stream is down reports
// degraded with a 503 so orchestration can flag it; no active session is
// simply healthy, since streams only exist while a symbol is viewed.
func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	code := http.StatusOK
	if h.activeSymbol != "" && !h.streamConnected {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	candleAge := ""
	if !h.lastCandle.IsZero() {
		candleAge = time.Since(h.lastCandle).Round(time.Millisecond).String()
	}

	body := struct {
		Status          string `json:"status"`
		Uptime          string `json:"uptime"`
		StreamConnected bool   `json:"stream_connected"`
		ActiveSymbol    string `json:"active_symbol,omitempty"`
		ActiveExchange  string `json:"active_exchange,omitempty"`
		CandleAge       string `json:"candle_age,omitempty"`
	}{
		Status:          status,
		Uptime:          time.Since(h.startedAt).Round(time.Second).String(),
		StreamConnected: h.streamConnected,
		ActiveSymbol:    h.activeSymbol,
		ActiveExchange:  string(h.activeExchange),
		CandleAge:       candleAge,
	}

	w.Header().Set("Content-Type", "application/json")
	if code != http.StatusOK {
		w.WriteHeader(code)
	}
	json.NewEncoder(w).Encode(body)
}
