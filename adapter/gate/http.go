package gate

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// tickerEntry is one element of the Gate ticker response. The endpoint
// always answers with an array, even when filtered to a single pair;
// unknown pairs come back as a JSON object carrying a "label" field and
// therefore fail the array decode.
type tickerEntry struct {
	CurrencyPair     string `json:"currency_pair"`
	Last             string `json:"last"`
	ChangePercentage string `json:"change_percentage"`
	High24h          string `json:"high_24h"`
	Low24h           string `json:"low_24h"`
	QuoteVolume      string `json:"quote_volume"`
}

func (*Adapter) ParseTicker(raw []byte) (*market.TickerSnapshot, error) {
	var entries []tickerEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("gate: ticker: %w: %v", market.ErrMalformedResponse, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("gate: ticker: %w: empty result", market.ErrMalformedResponse)
	}
	t := entries[0]
	if t.CurrencyPair == "" || t.Last == "" {
		return nil, fmt.Errorf("gate: ticker: %w: missing pair or last price", market.ErrMalformedResponse)
	}
	return &market.TickerSnapshot{
		Symbol:             t.CurrencyPair,
		PriceChange:        deriveChange(t.Last, t.ChangePercentage),
		PriceChangePercent: t.ChangePercentage,
		LastPrice:          t.Last,
		HighPrice:          t.High24h,
		LowPrice:           t.Low24h,
		Volume:             t.QuoteVolume,
		Exchange:           market.Gate,
	}, nil
}

// deriveChange recovers the absolute 24h change from the last price and
// the percentage, which is all Gate reports. With open = last/(1+p/100),
// the change collapses to last*p/(100+p).
func deriveChange(last, pcnt string) string {
	l, err := decimal.NewFromString(last)
	if err != nil {
		return "0"
	}
	p, err := decimal.NewFromString(pcnt)
	if err != nil {
		return "0"
	}
	denom := decimal.NewFromInt(100).Add(p)
	if denom.IsZero() {
		return "0"
	}
	return l.Mul(p).Div(denom).String()
}

// ParseCandles converts the Gate candlestick wire format. Rows arrive
// oldest-first, but the field order inside a row is Gate's own:
//
//	[0] timestamp (string, Unix SECONDS)
//	[1] volume    (string, base asset)
//	[2] close     (string)
//	[3] high      (string)
//	[4] low       (string)
//	[5] open      (string)
func (*Adapter) ParseCandles(raw []byte) ([]market.Candle, error) {
	var rows [][]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("gate: candlesticks: %w: %v", market.ErrMalformedResponse, err)
	}

	out := make([]market.Candle, 0, len(rows))
	for i, r := range rows {
		if len(r) < 6 {
			return nil, fmt.Errorf("gate: candlestick[%d]: %w: %d fields, want >=6", i, market.ErrMalformedResponse, len(r))
		}
		ts, err := strconv.ParseInt(r[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("gate: candlestick[%d] timestamp: %w: %v", i, market.ErrMalformedResponse, err)
		}
		c, err := rowCandle(ts*1000, r[5], r[3], r[4], r[2], r[1])
		if err != nil {
			return nil, fmt.Errorf("gate: candlestick[%d]: %w: %v", i, market.ErrMalformedResponse, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func rowCandle(ts int64, o, h, l, c, v string) (market.Candle, error) {
	candle := market.Candle{Time: ts}
	for _, f := range []struct {
		src string
		dst *float64
	}{
		{o, &candle.Open}, {h, &candle.High}, {l, &candle.Low},
		{c, &candle.Close}, {v, &candle.Volume},
	} {
		val, err := strconv.ParseFloat(f.src, 64)
		if err != nil {
			return market.Candle{}, err
		}
		*f.dst = val
	}
	return candle, nil
}
