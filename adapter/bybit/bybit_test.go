package bybit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortalmad92/cryptosearch/model/market"
)

func TestFormatSymbol(t *testing.T) {
	assert.Equal(t, "ETHUSDT", New().FormatSymbol("eth"))
}

func TestInterval(t *testing.T) {
	a := New()
	for canonical, want := range map[string]string{
		"1m": "1", "15m": "15", "1h": "60", "4h": "240", "1d": "D", "1w": "W",
	} {
		native, ok := a.Interval(canonical)
		require.True(t, ok, canonical)
		assert.Equal(t, want, native, canonical)
	}
	_, ok := a.Interval("2h")
	assert.False(t, ok)
}

func TestURLs(t *testing.T) {
	a := New()
	assert.Equal(t,
		"https://api.bybit.com/v5/market/tickers?category=spot&symbol=BTCUSDT",
		a.TickerURL("BTCUSDT"))
	assert.Equal(t,
		"https://api.bybit.com/v5/market/kline?category=spot&symbol=BTCUSDT&interval=60&limit=500",
		a.CandlesURL("BTCUSDT", "60", 500))
}

func TestSubscribeFrame(t *testing.T) {
	frame := New().SubscribeFrame("BTCUSDT", "60")
	assert.JSONEq(t, `{"op":"subscribe","args":["kline.60.BTCUSDT"]}`, string(frame))
}

func TestParseTicker(t *testing.T) {
	raw := []byte(`{
		"retCode": 0, "retMsg": "OK",
		"result": {
			"category": "spot",
			"list": [{
				"symbol": "BTCUSDT",
				"lastPrice": "29100.00",
				"highPrice24h": "29500.00",
				"lowPrice24h": "28500.00",
				"prevPrice24h": "29000.00",
				"price24hPcnt": "0.0034",
				"volume24h": "1000.5",
				"turnover24h": "29150000.25"
			}]
		}
	}`)

	ts, err := New().ParseTicker(raw)
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", ts.Symbol)
	// derived: last - prev and pcnt*100
	assert.Equal(t, "100", ts.PriceChange)
	assert.Equal(t, "0.34", ts.PriceChangePercent)
	assert.Equal(t, "29100.00", ts.LastPrice)
	// turnover (quote volume), not base volume
	assert.Equal(t, "29150000.25", ts.Volume)
	assert.Equal(t, market.Bybit, ts.Exchange)
}

func TestParseTickerAPIError(t *testing.T) {
	raw := []byte(`{"retCode":10001,"retMsg":"params error: Symbol Invalid","result":{}}`)
	_, err := New().ParseTicker(raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, market.ErrMalformedResponse)
}

func TestParseTickerEmptyList(t *testing.T) {
	raw := []byte(`{"retCode":0,"retMsg":"OK","result":{"list":[]}}`)
	_, err := New().ParseTicker(raw)
	assert.ErrorIs(t, err, market.ErrMalformedResponse)
}

func TestParseCandlesReversesToChronological(t *testing.T) {
	// rows newest-first, as served
	raw := []byte(`{
		"retCode": 0, "retMsg": "OK",
		"result": {
			"category": "spot", "symbol": "BTCUSDT",
			"list": [
				["1690000120000","29150.7","29300.0","29100.0","29250.3","50.1","1463000.9"],
				["1690000060000","29050.2","29200.0","29000.0","29150.7","98.76","2876000.5"],
				["1690000000000","29000.1","29100.5","28900.0","29050.2","123.45","3581000.2"]
			]
		}
	}`)

	candles, err := New().ParseCandles(raw)
	require.NoError(t, err)
	require.Len(t, candles, 3)
	assert.Equal(t, int64(1690000000000), candles[0].Time)
	assert.Equal(t, int64(1690000060000), candles[1].Time)
	assert.Equal(t, int64(1690000120000), candles[2].Time)
	assert.Equal(t, 29000.1, candles[0].Open)
	assert.Equal(t, 123.45, candles[0].Volume)
}

func TestParseStreamMessage(t *testing.T) {
	raw := []byte(`{
		"topic": "kline.60.BTCUSDT",
		"type": "snapshot",
		"ts": 1690000012345,
		"data": [{
			"start": 1690000000000, "end": 1690003599999, "interval": "60",
			"open": "29000.1", "close": "29050.2", "high": "29100.5", "low": "28900.0",
			"volume": "123.45", "turnover": "3581000.2", "confirm": false
		}]
	}`)

	c, err := New().ParseStreamMessage(raw)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(1690000000000), c.Time)
	assert.Equal(t, 29050.2, c.Close)
}

func TestParseStreamMessageControlFrames(t *testing.T) {
	a := New()

	c, err := a.ParseStreamMessage([]byte(`{"op":"pong","success":true,"conn_id":"abc"}`))
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = a.ParseStreamMessage([]byte(`{"success":true,"op":"subscribe","conn_id":"abc"}`))
	require.NoError(t, err)
	assert.Nil(t, c)
}
