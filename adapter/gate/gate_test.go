package gate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortalmad92/cryptosearch/model/market"
)

func TestFormatSymbol(t *testing.T) {
	assert.Equal(t, "BTC_USDT", New().FormatSymbol("btc"))
}

func TestInterval(t *testing.T) {
	a := New()

	native, ok := a.Interval("1h")
	require.True(t, ok)
	assert.Equal(t, "1h", native)

	native, ok = a.Interval("1w")
	require.True(t, ok)
	assert.Equal(t, "7d", native)

	_, ok = a.Interval("3m")
	assert.False(t, ok)
}

func TestURLs(t *testing.T) {
	a := New()
	assert.Equal(t,
		"https://api.gateio.ws/api/v4/spot/tickers?currency_pair=BTC_USDT",
		a.TickerURL("BTC_USDT"))
	assert.Equal(t,
		"https://api.gateio.ws/api/v4/spot/candlesticks?currency_pair=BTC_USDT&interval=15m&limit=500",
		a.CandlesURL("BTC_USDT", "15m", 500))
	assert.Equal(t, "wss://api.gateio.ws/ws/v4/", a.StreamURL("BTC_USDT", "15m"))
}

func TestSubscribeFrame(t *testing.T) {
	frame := New().SubscribeFrame("BTC_USDT", "15m")

	var m struct {
		Time    int64    `json:"time"`
		Channel string   `json:"channel"`
		Event   string   `json:"event"`
		Payload []string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(frame, &m))
	assert.NotZero(t, m.Time)
	assert.Equal(t, "spot.candlesticks", m.Channel)
	assert.Equal(t, "subscribe", m.Event)
	assert.Equal(t, []string{"15m", "BTC_USDT"}, m.Payload)
}

func TestKeepAliveFrameIsFresh(t *testing.T) {
	frame := New().KeepAliveFrame()

	var m struct {
		Time    int64  `json:"time"`
		Channel string `json:"channel"`
	}
	require.NoError(t, json.Unmarshal(frame, &m))
	assert.Equal(t, "spot.pong", m.Channel)
	assert.NotZero(t, m.Time)
}

func TestParseTickerDerivesAbsoluteChange(t *testing.T) {
	// last 105, +5%: open was 100, so the absolute change is 5.
	raw := []byte(`[{
		"currency_pair": "BTC_USDT",
		"last": "105",
		"change_percentage": "5",
		"high_24h": "106",
		"low_24h": "99",
		"quote_volume": "123456.7",
		"base_volume": "1.18"
	}]`)

	ts, err := New().ParseTicker(raw)
	require.NoError(t, err)
	assert.Equal(t, "BTC_USDT", ts.Symbol)
	assert.Equal(t, "5", ts.PriceChange)
	assert.Equal(t, "5", ts.PriceChangePercent)
	assert.Equal(t, "123456.7", ts.Volume)
	assert.Equal(t, market.Gate, ts.Exchange)
}

func TestParseTickerMalformed(t *testing.T) {
	a := New()

	// Unknown pairs come back as an object, not an array.
	_, err := a.ParseTicker([]byte(`{"label":"INVALID_CURRENCY_PAIR","message":"Invalid currency pair"}`))
	assert.ErrorIs(t, err, market.ErrMalformedResponse)

	_, err = a.ParseTicker([]byte(`[]`))
	assert.ErrorIs(t, err, market.ErrMalformedResponse)
}

func TestParseCandles(t *testing.T) {
	// Field order is [ts, volume, close, high, low, open], ts in seconds.
	raw := []byte(`[
		["1690000000","123.45","29050.2","29100.5","28900.0","29000.1"],
		["1690000060","98.76","29150.7","29200.0","29000.0","29050.2"]
	]`)

	candles, err := New().ParseCandles(raw)
	require.NoError(t, err)
	require.Len(t, candles, 2)

	assert.Equal(t, int64(1690000000000), candles[0].Time)
	assert.Equal(t, 29000.1, candles[0].Open)
	assert.Equal(t, 29100.5, candles[0].High)
	assert.Equal(t, 28900.0, candles[0].Low)
	assert.Equal(t, 29050.2, candles[0].Close)
	assert.Equal(t, 123.45, candles[0].Volume)
	assert.Equal(t, int64(1690000060000), candles[1].Time)
}

func TestParseCandlesMalformed(t *testing.T) {
	a := New()

	_, err := a.ParseCandles([]byte(`{"label":"INVALID_PARAM_VALUE"}`))
	assert.ErrorIs(t, err, market.ErrMalformedResponse)

	_, err = a.ParseCandles([]byte(`[["1690000000","123.45","29050.2"]]`))
	assert.ErrorIs(t, err, market.ErrMalformedResponse)
}

func TestParseStreamMessage(t *testing.T) {
	raw := []byte(`{
		"time": 1690000065,
		"channel": "spot.candlesticks",
		"event": "update",
		"result": {
			"t": "1690000060", "v": "2362.32", "c": "29150.7",
			"h": "29200.0", "l": "29000.0", "o": "29050.2",
			"n": "1m_BTC_USDT", "a": "0.081"
		}
	}`)

	c, err := New().ParseStreamMessage(raw)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(1690000060000), c.Time)
	assert.Equal(t, 29050.2, c.Open)
	assert.Equal(t, 29150.7, c.Close)
	assert.Equal(t, 2362.32, c.Volume)
}

func TestParseStreamMessageControlFrames(t *testing.T) {
	a := New()

	c, err := a.ParseStreamMessage([]byte(`{
		"time": 1690000000,
		"channel": "spot.candlesticks",
		"event": "subscribe",
		"result": {"status": "success"}
	}`))
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = a.ParseStreamMessage([]byte(`{"time":1690000030,"channel":"spot.pong","event":"","result":null}`))
	require.NoError(t, err)
	assert.Nil(t, c)
}
