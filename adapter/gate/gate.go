// Package gate implements the Gate.io spot adapter.
//
// Gate is the odd one out on two counts: symbols carry an underscore
// (BTC_USDT) and every timestamp on the wire is in seconds, so both the
// REST and stream parsers multiply by 1000 on ingestion.
package gate

import (
	"fmt"
	"strings"
	"time"

	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	baseURL     = "https://api.gateio.ws"
	tickerPath  = "/api/v4/spot/tickers"
	candlesPath = "/api/v4/spot/candlesticks"
	wsURL       = "wss://api.gateio.ws/ws/v4/"
)

const pingInterval = 30 * time.Second

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Name() market.Exchange { return market.Gate }

func (*Adapter) FormatSymbol(base string) string {
	return strings.ToUpper(base) + "_USDT"
}

// Gate accepts the canonical tokens directly except for the weekly
// bucket, which it spells "7d".
var intervals = map[string]string{
	"1m": "1m", "5m": "5m", "15m": "15m", "30m": "30m",
	"1h": "1h", "4h": "4h", "1d": "1d", "1w": "7d",
}

func (*Adapter) Interval(canonical string) (string, bool) {
	native, ok := intervals[canonical]
	return native, ok
}

func (*Adapter) TickerURL(symbol string) string {
	return baseURL + tickerPath + "?currency_pair=" + symbol
}

func (*Adapter) CandlesURL(symbol, native string, limit int) string {
	return fmt.Sprintf("%s%s?currency_pair=%s&interval=%s&limit=%d",
		baseURL, candlesPath, symbol, native, limit)
}

func (*Adapter) StreamURL(symbol, native string) string { return wsURL }

func (*Adapter) SubscribeFrame(symbol, native string) []byte {
	return []byte(fmt.Sprintf(
		`{"time":%d,"channel":"spot.candlesticks","event":"subscribe","payload":["%s","%s"]}`,
		time.Now().Unix(), native, symbol))
}

func (*Adapter) KeepAliveInterval() time.Duration { return pingInterval }

// KeepAliveFrame builds a fresh application-level pong each tick; Gate
// expects the current unix time in the frame.
func (*Adapter) KeepAliveFrame() []byte {
	return []byte(fmt.Sprintf(`{"time":%d,"channel":"spot.pong"}`, time.Now().Unix()))
}
