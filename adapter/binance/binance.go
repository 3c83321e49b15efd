package binance

import (
	"fmt"
	"strings"
	"time"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	baseURL    = "https://api.binance.com"
	tickerPath = "/api/v3/ticker/24hr"
	klinePath  = "/api/v3/klines"
	wsBaseURL  = "wss://stream.binance.com:9443/ws"
)

// Adapter is the Binance spot adapter. Binance is the reference format:
// canonical interval tokens pass through unchanged and the stream
// subscription is encoded entirely in the socket URL, so there is no
// subscribe handshake and no application-level heartbeat.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Name() market.Exchange { return market.Binance }

func (*Adapter) FormatSymbol(base string) string {
	return strings.ToUpper(base) + adapter.Quote
}

var intervals = map[string]string{
	"1m": "1m", "5m": "5m", "15m": "15m", "30m": "30m",
	"1h": "1h", "4h": "4h", "1d": "1d", "1w": "1w",
}

func (*Adapter) Interval(canonical string) (string, bool) {
	native, ok := intervals[canonical]
	return native, ok
}

func (*Adapter) TickerURL(symbol string) string {
	return baseURL + tickerPath + "?symbol=" + symbol
}

func (*Adapter) CandlesURL(symbol, native string, limit int) string {
	return fmt.Sprintf("%s%s?symbol=%s&interval=%s&limit=%d",
		baseURL, klinePath, symbol, native, limit)
}

func (*Adapter) StreamURL(symbol, native string) string {
	return wsBaseURL + "/" + strings.ToLower(symbol) + "@kline_" + native
}

func (*Adapter) SubscribeFrame(symbol, native string) []byte { return nil }

func (*Adapter) KeepAliveInterval() time.Duration { return 0 }

func (*Adapter) KeepAliveFrame() []byte { return nil }
