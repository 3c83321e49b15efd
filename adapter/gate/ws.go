package gate

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// wsMsg is the Gate v4 stream envelope. Every frame, including pong
// replies on the spot.pong channel, uses the same shape.
type wsMsg struct {
	Time    int64           `json:"time"`
	Channel string          `json:"channel"`
	Event   string          `json:"event"`
	Result  json.RawMessage `json:"result"`
}

// wsKline is the spot.candlesticks update payload. The "n" field packs
// interval and pair ("1m_BTC_USDT"); all numerics are strings and the
// open time is in seconds.
type wsKline struct {
	Start  string `json:"t"`
	Volume string `json:"v"`
	Close  string `json:"c"`
	High   string `json:"h"`
	Low    string `json:"l"`
	Open   string `json:"o"`
	Name   string `json:"n"`
}

// ParseStreamMessage converts one stream frame into a candle. Frames on
// other channels (spot.pong) and non-update events (subscription acks)
// yield (nil, nil).
func (*Adapter) ParseStreamMessage(raw []byte) (*market.Candle, error) {
	var m wsMsg
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("gate: stream: %w: %v", market.ErrMalformedResponse, err)
	}
	if m.Channel != "spot.candlesticks" || m.Event != "update" {
		return nil, nil
	}

	var k wsKline
	if err := json.Unmarshal(m.Result, &k); err != nil {
		return nil, fmt.Errorf("gate: stream kline: %w: %v", market.ErrMalformedResponse, err)
	}
	if k.Start == "" {
		return nil, nil
	}
	ts, err := strconv.ParseInt(k.Start, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("gate: stream kline time: %w: %v", market.ErrMalformedResponse, err)
	}
	c, err := rowCandle(ts*1000, k.Open, k.High, k.Low, k.Close, k.Volume)
	if err != nil {
		return nil, fmt.Errorf("gate: stream kline: %w: %v", market.ErrMalformedResponse, err)
	}
	return &c, nil
}
