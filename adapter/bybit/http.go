package bybit

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// envelope is the Bybit V5 response wrapper shared by every REST endpoint.
type envelope struct {
	RetCode int             `json:"retCode"`
	RetMsg  string          `json:"retMsg"`
	Result  json.RawMessage `json:"result"`
}

func unwrap(raw []byte, kind string) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("bybit: %s: %w: %v", kind, market.ErrMalformedResponse, err)
	}
	if env.RetCode != 0 {
		return nil, fmt.Errorf("bybit: %s: api error %d: %s", kind, env.RetCode, env.RetMsg)
	}
	return env.Result, nil
}

// tickerEntry is one row of the V5 tickers list.
type tickerEntry struct {
	Symbol       string `json:"symbol"`
	LastPrice    string `json:"lastPrice"`
	HighPrice24H string `json:"highPrice24h"`
	LowPrice24H  string `json:"lowPrice24h"`
	PrevPrice24H string `json:"prevPrice24h"`
	Price24HPcnt string `json:"price24hPcnt"`
	Turnover24H  string `json:"turnover24h"`
}

// ParseTicker extracts the canonical snapshot from a V5 tickers response.
// Bybit reports no absolute 24h change and carries the relative change as a
// fraction, so both display fields are derived with decimal arithmetic:
// change = lastPrice - prevPrice24h, percent = price24hPcnt * 100.
func (*Adapter) ParseTicker(raw []byte) (*market.TickerSnapshot, error) {
	result, err := unwrap(raw, "ticker")
	if err != nil {
		return nil, err
	}
	var list struct {
		List []tickerEntry `json:"list"`
	}
	if err := json.Unmarshal(result, &list); err != nil {
		return nil, fmt.Errorf("bybit: ticker: %w: %v", market.ErrMalformedResponse, err)
	}
	if len(list.List) == 0 {
		return nil, fmt.Errorf("bybit: ticker: %w: empty list", market.ErrMalformedResponse)
	}

	t := list.List[0]
	if t.Symbol == "" || t.LastPrice == "" {
		return nil, fmt.Errorf("bybit: ticker: %w: missing symbol or last price", market.ErrMalformedResponse)
	}

	change := "0"
	last, lastErr := decimal.NewFromString(t.LastPrice)
	if prev, err := decimal.NewFromString(t.PrevPrice24H); err == nil && lastErr == nil {
		change = last.Sub(prev).String()
	}
	percent := "0"
	if pcnt, err := decimal.NewFromString(t.Price24HPcnt); err == nil {
		percent = pcnt.Mul(decimal.NewFromInt(100)).String()
	}

	return &market.TickerSnapshot{
		Symbol:             t.Symbol,
		PriceChange:        change,
		PriceChangePercent: percent,
		LastPrice:          t.LastPrice,
		HighPrice:          t.HighPrice24H,
		LowPrice:           t.LowPrice24H,
		Volume:             t.Turnover24H,
		Exchange:           market.Bybit,
	}, nil
}

// ParseCandles converts the V5 kline wire format.
//
// Bybit kline array layout (rows newest-first, reversed here):
//
//	[0] startTime  (ms, string)
//	[1] openPrice
//	[2] highPrice
//	[3] lowPrice
//	[4] closePrice
//	[5] volume     (base coin)
//	[6] turnover   (quote coin) — unused
func (*Adapter) ParseCandles(raw []byte) ([]market.Candle, error) {
	result, err := unwrap(raw, "klines")
	if err != nil {
		return nil, err
	}
	var list struct {
		List [][]string `json:"list"`
	}
	if err := json.Unmarshal(result, &list); err != nil {
		return nil, fmt.Errorf("bybit: klines: %w: %v", market.ErrMalformedResponse, err)
	}

	out := make([]market.Candle, 0, len(list.List))
	for i, r := range list.List {
		if len(r) < 6 {
			return nil, fmt.Errorf("bybit: kline[%d]: %w: %d fields, want >=6", i, market.ErrMalformedResponse, len(r))
		}
		ts, err := strconv.ParseInt(r[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bybit: kline[%d] open time: %w: %v", i, market.ErrMalformedResponse, err)
		}
		c, err := rowCandle(ts, r[1], r[2], r[3], r[4], r[5])
		if err != nil {
			return nil, fmt.Errorf("bybit: kline[%d]: %w: %v", i, market.ErrMalformedResponse, err)
		}
		out = append(out, c)
	}

	// Newest-first on the wire; reverse to chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// rowCandle parses one candle from its price and volume strings.
func rowCandle(ts int64, o, h, l, c, v string) (market.Candle, error) {
	out := market.Candle{Time: ts}
	var err error
	if out.Open, err = strconv.ParseFloat(o, 64); err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	if out.High, err = strconv.ParseFloat(h, 64); err != nil {
		return out, fmt.Errorf("high: %w", err)
	}
	if out.Low, err = strconv.ParseFloat(l, 64); err != nil {
		return out, fmt.Errorf("low: %w", err)
	}
	if out.Close, err = strconv.ParseFloat(c, 64); err != nil {
		return out, fmt.Errorf("close: %w", err)
	}
	if out.Volume, err = strconv.ParseFloat(v, 64); err != nil {
		return out, fmt.Errorf("volume: %w", err)
	}
	return out, nil
}
