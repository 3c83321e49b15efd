package okx

import (
	"encoding/json"
	"fmt"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// wsMsg is the OKX v5 stream envelope. Acks and errors carry an "event"
// field; data pushes carry "arg" and "data" instead.
type wsMsg struct {
	Event string `json:"event"` // "subscribe", "error"
	Code  string `json:"code"`
	Msg   string `json:"msg"`
	Arg   struct {
		Channel string `json:"channel"`
		InstID  string `json:"instId"`
	} `json:"arg"`
	Data [][]string `json:"data"`
}

// ParseStreamMessage converts one stream frame into a candle. The raw
// text "pong" (OKX's reply to the application-level ping) and
// subscription acks yield (nil, nil); error events are surfaced. A push
// may batch several rows; only the newest is returned.
func (*Adapter) ParseStreamMessage(raw []byte) (*market.Candle, error) {
	if string(raw) == "pong" {
		return nil, nil
	}

	var m wsMsg
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("okx: stream: %w: %v", market.ErrMalformedResponse, err)
	}

	if m.Event != "" {
		if m.Event == "error" {
			return nil, fmt.Errorf("okx: stream: %w: api error %s: %s", market.ErrStream, m.Code, m.Msg)
		}
		return nil, nil
	}
	if len(m.Data) == 0 {
		return nil, nil
	}

	c, err := rowCandle(m.Data[len(m.Data)-1])
	if err != nil {
		return nil, fmt.Errorf("okx: stream kline: %w: %v", market.ErrMalformedResponse, err)
	}
	return &c, nil
}
