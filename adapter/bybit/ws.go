package bybit

import (
	"encoding/json"
	"fmt"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// wsMsg is the generic Bybit V5 WebSocket message envelope.
type wsMsg struct {
	Op      string          `json:"op"`      // "pong", "subscribe"
	Success bool            `json:"success"` // subscription ack
	Topic   string          `json:"topic"`   // "kline.60.BTCUSDT"
	Data    json.RawMessage `json:"data"`
}

// wsKlineEntry is one kline object inside the data array.
type wsKlineEntry struct {
	Start  int64  `json:"start"` // open time (ms)
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

// ParseStreamMessage converts one stream frame into a candle. Pong and
// subscription-ack frames carry no topic and yield (nil, nil). Bybit may
// batch several kline entries per push; the newest entry wins.
func (*Adapter) ParseStreamMessage(raw []byte) (*market.Candle, error) {
	var m wsMsg
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("bybit: stream: %w: %v", market.ErrMalformedResponse, err)
	}
	if m.Topic == "" {
		return nil, nil
	}

	var entries []wsKlineEntry
	if err := json.Unmarshal(m.Data, &entries); err != nil {
		return nil, fmt.Errorf("bybit: stream data: %w: %v", market.ErrMalformedResponse, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	e := entries[len(entries)-1]
	c, err := rowCandle(e.Start, e.Open, e.High, e.Low, e.Close, e.Volume)
	if err != nil {
		return nil, fmt.Errorf("bybit: stream kline: %w: %v", market.ErrMalformedResponse, err)
	}
	return &c, nil
}
