package binance

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// wsKlineMsg is the Binance kline stream message envelope.
type wsKlineMsg struct {
	EventType string `json:"e"`
	Kline     struct {
		OpenTime int64  `json:"t"`
		Open     string `json:"o"`
		High     string `json:"h"`
		Low      string `json:"l"`
		Close    string `json:"c"`
		Volume   string `json:"v"`
	} `json:"k"`
}

// ParseStreamMessage converts one stream frame into a candle. Frames that
// are not kline events (subscription results, errors) yield (nil, nil).
func (*Adapter) ParseStreamMessage(raw []byte) (*market.Candle, error) {
	var m wsKlineMsg
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("binance: stream: %w: %v", market.ErrMalformedResponse, err)
	}
	if m.EventType != "kline" {
		return nil, nil
	}

	k := m.Kline
	c := market.Candle{Time: k.OpenTime}
	for _, f := range []struct {
		dst  *float64
		s    string
		name string
	}{
		{&c.Open, k.Open, "open"},
		{&c.High, k.High, "high"},
		{&c.Low, k.Low, "low"},
		{&c.Close, k.Close, "close"},
		{&c.Volume, k.Volume, "volume"},
	} {
		v, err := strconv.ParseFloat(f.s, 64)
		if err != nil {
			return nil, fmt.Errorf("binance: stream %s: %w: %v", f.name, market.ErrMalformedResponse, err)
		}
		*f.dst = v
	}
	return &c, nil
}
