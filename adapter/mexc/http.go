package mexc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// tickerMsg is the MEXC 24hr ticker body, field-compatible with Binance's.
type tickerMsg struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	LastPrice          string `json:"lastPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	QuoteVolume        string `json:"quoteVolume"`
}

func (*Adapter) ParseTicker(raw []byte) (*market.TickerSnapshot, error) {
	var t tickerMsg
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("mexc: ticker: %w: %v", market.ErrMalformedResponse, err)
	}
	if t.Symbol == "" || t.LastPrice == "" {
		return nil, fmt.Errorf("mexc: ticker: %w: missing symbol or last price", market.ErrMalformedResponse)
	}
	return &market.TickerSnapshot{
		Symbol:             t.Symbol,
		PriceChange:        t.PriceChange,
		PriceChangePercent: t.PriceChangePercent,
		LastPrice:          t.LastPrice,
		HighPrice:          t.HighPrice,
		LowPrice:           t.LowPrice,
		Volume:             t.QuoteVolume,
		Exchange:           market.MEXC,
	}, nil
}

// ParseCandles converts the MEXC kline wire format.
//
// MEXC kline array layout (Binance-compatible):
//
//	[0] Open time   (int64, Unix ms)
//	[1] Open        (string)
//	[2] High        (string)
//	[3] Low         (string)
//	[4] Close       (string)
//	[5] Volume      (string, base asset)
//	[6] Close time  (int64) — unused
//	[7] Quote volume — unused
func (*Adapter) ParseCandles(raw []byte) ([]market.Candle, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("mexc: klines: %w: %v", market.ErrMalformedResponse, err)
	}

	out := make([]market.Candle, 0, len(rows))
	for i, r := range rows {
		if len(r) < 6 {
			return nil, fmt.Errorf("mexc: kline[%d]: %w: %d fields, want >=6", i, market.ErrMalformedResponse, len(r))
		}

		c := market.Candle{}
		if err := json.Unmarshal(r[0], &c.Time); err != nil {
			return nil, fmt.Errorf("mexc: kline[%d] open time: %w: %v", i, market.ErrMalformedResponse, err)
		}
		for j, dst := range []*float64{&c.Open, &c.High, &c.Low, &c.Close, &c.Volume} {
			v, err := floatToken(r[j+1])
			if err != nil {
				return nil, fmt.Errorf("mexc: kline[%d][%d]: %w: %v", i, j+1, market.ErrMalformedResponse, err)
			}
			*dst = v
		}
		out = append(out, c)
	}
	return out, nil
}

// floatToken reads a float carried either as a quoted string or a bare
// number; MEXC has shipped both over time.
func floatToken(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseFloat(s, 64)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, err
	}
	return f, nil
}
