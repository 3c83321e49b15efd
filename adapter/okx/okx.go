package okx

import (
	"fmt"
	"strings"
	"time"

	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	baseURL    = "https://www.okx.com"
	tickerPath = "/api/v5/market/ticker"
	klinePath  = "/api/v5/market/candles"
	wsURL      = "wss://ws.okx.com:8443/ws/v5/public"
)

const pingInterval = 20 * time.Second

// Adapter is the OKX spot adapter. Instrument IDs are dash-separated
// (BTC-USDT) and bar tokens use uppercase suffixes for hours and above
// (1H, 4H, 1D, 1W) but lowercase m for minutes.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Name() market.Exchange { return market.OKX }

func (*Adapter) FormatSymbol(base string) string {
	return strings.ToUpper(base) + "-USDT"
}

var intervals = map[string]string{
	"1m": "1m", "5m": "5m", "15m": "15m", "30m": "30m",
	"1h": "1H", "4h": "4H", "1d": "1D", "1w": "1W",
}

func (*Adapter) Interval(canonical string) (string, bool) {
	native, ok := intervals[canonical]
	return native, ok
}

func (*Adapter) TickerURL(symbol string) string {
	return baseURL + tickerPath + "?instId=" + symbol
}

func (*Adapter) CandlesURL(symbol, native string, limit int) string {
	return fmt.Sprintf("%s%s?instId=%s&bar=%s&limit=%d",
		baseURL, klinePath, symbol, native, limit)
}

func (*Adapter) StreamURL(symbol, native string) string { return wsURL }

// SubscribeFrame targets the candle channel, whose name appends the bar
// token directly ("candle1m", "candle4H").
func (*Adapter) SubscribeFrame(symbol, native string) []byte {
	return []byte(fmt.Sprintf(
		`{"op":"subscribe","args":[{"channel":"candle%s","instId":"%s"}]}`,
		native, symbol))
}

func (*Adapter) KeepAliveInterval() time.Duration { return pingInterval }

// KeepAliveFrame is the raw text "ping"; OKX answers with raw "pong"
// rather than a JSON frame.
func (*Adapter) KeepAliveFrame() []byte { return []byte("ping") }
