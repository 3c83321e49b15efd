package mexc

import (
	"fmt"
	"strings"
	"time"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	baseURL    = "https://api.mexc.com"
	tickerPath = "/api/v3/ticker/24hr"
	klinePath  = "/api/v3/klines"
	wsURL      = "wss://wbs.mexc.com/ws"
)

// pingInterval is the heartbeat cadence for the MEXC stream socket.
const pingInterval = 30 * time.Second

// Adapter is the MEXC spot adapter. The REST surface mirrors Binance's v3
// API, including interval tokens, but the stream protocol is MEXC's own:
// channel-string subscriptions with capitalized interval names (Min15,
// Hour4) and kline open times in seconds.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Name() market.Exchange { return market.MEXC }

func (*Adapter) FormatSymbol(base string) string {
	return strings.ToUpper(base) + adapter.Quote
}

var intervals = map[string]string{
	"1m": "1m", "5m": "5m", "15m": "15m", "30m": "30m",
	"1h": "1h", "4h": "4h", "1d": "1d", "1w": "1w",
}

// streamIntervals maps canonical tokens onto the stream channel's
// capitalized naming, which differs from the REST tokens.
var streamIntervals = map[string]string{
	"1m": "Min1", "5m": "Min5", "15m": "Min15", "30m": "Min30",
	"1h": "Min60", "4h": "Hour4", "1d": "Day1", "1w": "Week1",
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

func (*Adapter) StreamURL(symbol, native string) string { return wsURL }

func (*Adapter) SubscribeFrame(symbol, native string) []byte {
	topic := streamIntervals[native]
	if topic == "" {
		topic = native
	}
	return []byte(fmt.Sprintf(
		`{"method":"SUBSCRIPTION","params":["spot@public.kline.v3.api@%s@%s"]}`,
		symbol, topic))
}

func (*Adapter) KeepAliveInterval() time.Duration { return pingInterval }

func (*Adapter) KeepAliveFrame() []byte {
	return []byte(`{"method":"PING"}`)
}
