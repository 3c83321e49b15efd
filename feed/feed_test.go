package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortalmad92/cryptosearch/model/market"
)

func TestPublishFansOutToAllHandlers(t *testing.T) {
	h := NewHub(nil, nil)

	var a, b []Update
	h.Attach(func(u Update) { a = append(a, u) })
	h.Attach(func(u Update) { b = append(b, u) })

	h.Publish(Update{Symbol: "BTCUSDT"})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "BTCUSDT", a[0].Symbol)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub(nil, nil)

	var got []Update
	sub := h.Attach(func(u Update) { got = append(got, u) })

	h.Publish(Update{Symbol: "BTCUSDT"})
	sub.Unsubscribe()
	h.Publish(Update{Symbol: "ETHUSDT"})

	require.Len(t, got, 1)
	assert.Equal(t, "BTCUSDT", got[0].Symbol)
}

func TestLatestMergesAcrossPublishes(t *testing.T) {
	h := NewHub(nil, nil)

	h.Publish(Update{
		Symbol:   "BTCUSDT",
		Exchange: market.Binance,
		Ticker:   &market.TickerSnapshot{Symbol: "BTCUSDT", LastPrice: "29000"},
	})
	h.Publish(Update{
		Candles: []market.Candle{{Time: 1000, Close: 29000}},
	})
	h.Publish(Update{
		Available: []market.Exchange{market.Binance, market.Gate},
	})

	latest := h.Latest()
	assert.Equal(t, "BTCUSDT", latest.Symbol)
	assert.Equal(t, market.Binance, latest.Exchange)
	require.NotNil(t, latest.Ticker)
	assert.Equal(t, "29000", latest.Ticker.LastPrice)
	require.Len(t, latest.Candles, 1)
	assert.Equal(t, []market.Exchange{market.Binance, market.Gate}, latest.Available)
}

func TestResetClearsLatest(t *testing.T) {
	h := NewHub(nil, nil)

	h.Publish(Update{
		Symbol:  "BTCUSDT",
		Ticker:  &market.TickerSnapshot{Symbol: "BTCUSDT"},
		Candles: []market.Candle{{Time: 1000}},
	})
	h.Publish(Update{Reset: true, Symbol: "ETHUSDT"})

	latest := h.Latest()
	assert.Equal(t, "ETHUSDT", latest.Symbol)
	assert.Nil(t, latest.Ticker)
	assert.Nil(t, latest.Candles)
	assert.Nil(t, latest.Indicators)
}

func TestPublishComputesIndicatorsForCandleUpdates(t *testing.T) {
	h := NewHub(nil, nil)

	var got Update
	h.Attach(func(u Update) { got = u })

	candles := make([]market.Candle, 30)
	for i := range candles {
		v := float64(100 + i)
		candles[i] = market.Candle{Time: int64(i) * 60_000, Open: v, High: v + 1, Low: v - 1, Close: v}
	}
	h.Publish(Update{Candles: candles})

	require.NotNil(t, got.Indicators)
	assert.Len(t, got.Indicators.EMA, 30)
	assert.Len(t, got.Indicators.SAR, 30)
	require.NotNil(t, h.Latest().Indicators)
}
