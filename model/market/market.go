package market

// Exchange identifies one of the supported spot exchanges.
type Exchange string

const (
	Binance Exchange = "binance"
	Bybit   Exchange = "bybit"
	MEXC    Exchange = "mexc"
	Gate    Exchange = "gate"
	OKX     Exchange = "okx"
)

// DefaultPriority is the probe and fallback order used when no explicit
// priority is configured. Binance first: it has the widest listing coverage
// and the most permissive public rate limits.
func DefaultPriority() []Exchange {
	return []Exchange{Binance, Bybit, MEXC, Gate, OKX}
}

// ParseExchange maps a config or request string onto an Exchange.
func ParseExchange(s string) (Exchange, bool) {
	switch Exchange(s) {
	case Binance, Bybit, MEXC, Gate, OKX:
		return Exchange(s), true
	}
	return "", false
}

// Candle is one OHLCV record for a fixed time bucket. Time is the bucket
// open in Unix milliseconds regardless of what the exchange reports on the
// wire; adapters normalize second-resolution feeds on ingestion.
//
// Within a series, Time values are strictly increasing and unique.
type Candle struct {
	Time   int64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// TickerSnapshot is a point-in-time 24h ticker for one symbol on one
// exchange. Price fields stay as the exchange's decimal text so display
// paths never round-trip through floats. Immutable once returned.
type TickerSnapshot struct {
	Symbol             string
	PriceChange        string
	PriceChangePercent string
	LastPrice          string
	HighPrice          string
	LowPrice           string
	Volume             string
	Exchange           Exchange
}
