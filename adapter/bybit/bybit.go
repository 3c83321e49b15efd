package bybit

import (
	"fmt"
	"strings"
	"time"

	"github.com/mortalmad92/cryptosearch/adapter"
	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	baseURL    = "https://api.bybit.com"
	tickerPath = "/v5/market/tickers"
	klinePath  = "/v5/market/kline"
	wsURL      = "wss://stream.bybit.com/v5/public/spot"

	// category pins every V5 request to the spot market.
	category = "spot"
)

// pingInterval is the heartbeat cadence; Bybit closes sockets that stay
// silent much longer than this.
const pingInterval = 20 * time.Second

// Adapter is the Bybit V5 spot adapter. Bybit wraps every REST body in a
// retCode/result envelope, uses bare minute numbers as interval tokens and
// returns kline history newest-first.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Name() market.Exchange { return market.Bybit }

func (*Adapter) FormatSymbol(base string) string {
	return strings.ToUpper(base) + adapter.Quote
}

// intervals maps canonical tokens onto Bybit's minute-number scheme
// ("1", "60", "240") with single letters for day and week.
var intervals = map[string]string{
	"1m": "1", "5m": "5", "15m": "15", "30m": "30",
	"1h": "60", "4h": "240", "1d": "D", "1w": "W",
}

func (*Adapter) Interval(canonical string) (string, bool) {
	native, ok := intervals[canonical]
	return native, ok
}

func (*Adapter) TickerURL(symbol string) string {
	return fmt.Sprintf("%s%s?category=%s&symbol=%s", baseURL, tickerPath, category, symbol)
}

func (*Adapter) CandlesURL(symbol, native string, limit int) string {
	return fmt.Sprintf("%s%s?category=%s&symbol=%s&interval=%s&limit=%d",
		baseURL, klinePath, category, symbol, native, limit)
}

func (*Adapter) StreamURL(symbol, native string) string { return wsURL }

func (*Adapter) SubscribeFrame(symbol, native string) []byte {
	return []byte(fmt.Sprintf(`{"op":"subscribe","args":["kline.%s.%s"]}`, native, symbol))
}

func (*Adapter) KeepAliveInterval() time.Duration { return pingInterval }

func (*Adapter) KeepAliveFrame() []byte {
	return []byte(`{"op":"ping"}`)
}
