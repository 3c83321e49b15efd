package binance

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// tickerMsg is the Binance 24hr ticker response body.
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
		return nil, fmt.Errorf("binance: ticker: %w: %v", market.ErrMalformedResponse, err)
	}
	if t.Symbol == "" || t.LastPrice == "" {
		return nil, fmt.Errorf("binance: ticker: %w: missing symbol or last price", market.ErrMalformedResponse)
	}
	return &market.TickerSnapshot{
		Symbol:             t.Symbol,
		PriceChange:        t.PriceChange,
		PriceChangePercent: t.PriceChangePercent,
		LastPrice:          t.LastPrice,
		HighPrice:          t.HighPrice,
		LowPrice:           t.LowPrice,
		Volume:             t.QuoteVolume,
		Exchange:           market.Binance,
	}, nil
}

// ParseCandles converts the Binance kline wire format.
//
// Binance kline array layout:
//
//	[0] Open time   (int64, Unix ms)
//	[1] Open        (string)
//	[2] High        (string)
//	[3] Low         (string)
//	[4] Close       (string)
//	[5] Volume      (string, base asset)
//	[6+] Close time, quote volume, trade count, ... — unused
func (*Adapter) ParseCandles(raw []byte) ([]market.Candle, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("binance: klines: %w: %v", market.ErrMalformedResponse, err)
	}

	out := make([]market.Candle, 0, len(rows))
	for i, r := range rows {
		if len(r) < 6 {
			return nil, fmt.Errorf("binance: kline[%d]: %w: %d fields, want >=6", i, market.ErrMalformedResponse, len(r))
		}
		c, err := rowCandle(r)
		if err != nil {
			return nil, fmt.Errorf("binance: kline[%d]: %w: %v", i, market.ErrMalformedResponse, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// rowCandle maps one raw kline row onto the canonical candle.
func rowCandle(r []json.RawMessage) (market.Candle, error) {
	var c market.Candle
	var err error
	if c.Time, err = parseInt64(r[0]); err != nil {
		return c, fmt.Errorf("open time: %w", err)
	}
	if c.Open, err = parseFloatToken(r[1]); err != nil {
		return c, fmt.Errorf("open: %w", err)
	}
	if c.High, err = parseFloatToken(r[2]); err != nil {
		return c, fmt.Errorf("high: %w", err)
	}
	if c.Low, err = parseFloatToken(r[3]); err != nil {
		return c, fmt.Errorf("low: %w", err)
	}
	if c.Close, err = parseFloatToken(r[4]); err != nil {
		return c, fmt.Errorf("close: %w", err)
	}
	if c.Volume, err = parseFloatToken(r[5]); err != nil {
		return c, fmt.Errorf("volume: %w", err)
	}
	return c, nil
}

// parseInt64 unmarshals a JSON number into an int64.
func parseInt64(raw json.RawMessage) (int64, error) {
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// parseFloatToken reads a float carried as a quoted JSON string.
func parseFloatToken(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
