package adapter

import (
	"time"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// Quote is the settlement currency every tracked symbol is quoted against.
const Quote = "USDT"

// Adapter is the per-exchange policy object: symbol and interval
// normalization, REST endpoint templates, response parsing, and the
// streaming wire protocol. Implementations are stateless and safe for
// concurrent use; one value per exchange exists for the process lifetime.
type Adapter interface {
	Name() market.Exchange

	// FormatSymbol converts a base asset ("BTC") into the exchange's
	// native pair notation ("BTCUSDT", "BTC_USDT", "BTC-USDT").
	FormatSymbol(base string) string

	// Interval converts a canonical interval ("1h") into the exchange's
	// native token ("60", "1H", ...). ok is false for intervals the
	// exchange cannot serve.
	Interval(canonical string) (native string, ok bool)

	// TickerURL returns the 24h ticker endpoint for a formatted symbol.
	TickerURL(symbol string) string

	// CandlesURL returns the kline endpoint for a formatted symbol at
	// the native interval, requesting at most limit candles.
	CandlesURL(symbol, native string, limit int) string

	// ParseTicker extracts a canonical snapshot from a raw ticker body.
	// Fails with market.ErrMalformedResponse when the shape is wrong or
	// required fields are absent.
	ParseTicker(raw []byte) (*market.TickerSnapshot, error)

	// ParseCandles extracts a chronological candle batch from a raw
	// kline body. Exchanges that deliver newest-first are reversed here.
	ParseCandles(raw []byte) ([]market.Candle, error)

	// StreamURL returns the WebSocket endpoint for a symbol/interval
	// subscription. Binance encodes the subscription in the URL; the
	// rest use a shared endpoint plus SubscribeFrame.
	StreamURL(symbol, native string) string

	// SubscribeFrame returns the payload to send right after the socket
	// opens, or nil when the URL already carries the subscription.
	SubscribeFrame(symbol, native string) []byte

	// KeepAliveInterval returns the application-level heartbeat cadence,
	// or 0 when the exchange needs none beyond protocol-level pings.
	KeepAliveInterval() time.Duration

	// KeepAliveFrame builds one heartbeat payload. Called per tick
	// because some exchanges timestamp their pings.
	KeepAliveFrame() []byte

	// ParseStreamMessage converts one inbound frame into a candle.
	// Control frames, subscription acks and pong replies yield
	// (nil, nil) and must never reach the consumer callback.
	ParseStreamMessage(raw []byte) (*market.Candle, error)
}
