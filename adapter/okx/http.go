package okx

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// envelope is the OKX v5 response wrapper shared by every REST endpoint.
type envelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// unwrap decodes the envelope and surfaces API-level failures, which OKX
// reports with a non-zero code and HTTP 200.
func unwrap(raw []byte, kind string) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("okx: %s: %w: %v", kind, market.ErrMalformedResponse, err)
	}
	if env.Code != "0" {
		return nil, fmt.Errorf("okx: %s: api error %s: %s", kind, env.Code, env.Msg)
	}
	return env.Data, nil
}

// tickerEntry is one element of the market/ticker data array. OKX has no
// precomputed 24h change; it reports the open price 24 hours ago instead.
type tickerEntry struct {
	InstID    string `json:"instId"`
	Last      string `json:"last"`
	Open24h   string `json:"open24h"`
	High24h   string `json:"high24h"`
	Low24h    string `json:"low24h"`
	VolCcy24h string `json:"volCcy24h"`
}

func (*Adapter) ParseTicker(raw []byte) (*market.TickerSnapshot, error) {
	data, err := unwrap(raw, "ticker")
	if err != nil {
		return nil, err
	}

	var entries []tickerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("okx: ticker: %w: %v", market.ErrMalformedResponse, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("okx: ticker: %w: empty data", market.ErrMalformedResponse)
	}
	t := entries[0]
	if t.InstID == "" || t.Last == "" {
		return nil, fmt.Errorf("okx: ticker: %w: missing instId or last price", market.ErrMalformedResponse)
	}

	change, pcnt := deriveChange(t.Last, t.Open24h)
	return &market.TickerSnapshot{
		Symbol:             t.InstID,
		PriceChange:        change,
		PriceChangePercent: pcnt,
		LastPrice:          t.Last,
		HighPrice:          t.High24h,
		LowPrice:           t.Low24h,
		Volume:             t.VolCcy24h,
		Exchange:           market.OKX,
	}, nil
}

// deriveChange computes the absolute and percentage 24h change from the
// last price and the 24h-ago open.
func deriveChange(last, open string) (string, string) {
	l, err := decimal.NewFromString(last)
	if err != nil {
		return "0", "0"
	}
	o, err := decimal.NewFromString(open)
	if err != nil || o.IsZero() {
		return "0", "0"
	}
	change := l.Sub(o)
	pcnt := change.Div(o).Mul(decimal.NewFromInt(100))
	return change.String(), pcnt.String()
}

// ParseCandles converts the OKX kline wire format. Rows arrive
// newest-first and are reversed to chronological order.
//
// OKX kline array layout:
//
//	[0] ts        (open time, ms)
//	[1] o         (open)
//	[2] h         (high)
//	[3] l         (low)
//	[4] c         (close)
//	[5] vol       (base currency) — unused
//	[6] volCcy    (quote currency volume)
//	[7] volCcyQuote — unused
//	[8] confirm   ("1"=closed, "0"=current) — unused
func (*Adapter) ParseCandles(raw []byte) ([]market.Candle, error) {
	data, err := unwrap(raw, "candles")
	if err != nil {
		return nil, err
	}

	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("okx: candles: %w: %v", market.ErrMalformedResponse, err)
	}

	out := make([]market.Candle, 0, len(rows))
	for i, r := range rows {
		c, err := rowCandle(r)
		if err != nil {
			return nil, fmt.Errorf("okx: candle[%d]: %w: %v", i, market.ErrMalformedResponse, err)
		}
		out = append(out, c)
	}

	// Reverse to chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// rowCandle parses a single kline row, shared by the REST and stream
// payloads (same layout on both). Volume is the quote currency column.
func rowCandle(r []string) (market.Candle, error) {
	if len(r) < 7 {
		return market.Candle{}, fmt.Errorf("%d fields, want >=7", len(r))
	}

	ts, err := strconv.ParseInt(r[0], 10, 64)
	if err != nil {
		return market.Candle{}, fmt.Errorf("open time: %v", err)
	}

	c := market.Candle{Time: ts}
	for _, f := range []struct {
		src string
		dst *float64
	}{
		{r[1], &c.Open}, {r[2], &c.High}, {r[3], &c.Low},
		{r[4], &c.Close}, {r[6], &c.Volume},
	} {
		val, err := strconv.ParseFloat(f.src, 64)
		if err != nil {
			return market.Candle{}, err
		}
		*f.dst = val
	}
	return c, nil
}
