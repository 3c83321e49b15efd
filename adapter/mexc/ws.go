package mexc

import (
	"encoding/json"
	"fmt"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// wsMsg is the MEXC v3 stream envelope. Data pushes carry the channel in
// "c"; acks and PONG replies carry "id"/"code"/"msg" instead.
type wsMsg struct {
	Channel string `json:"c"`
	Symbol  string `json:"s"`
	Data    struct {
		Kline struct {
			Start  int64   `json:"t"` // open time, SECONDS
			Open   float64 `json:"o"`
			High   float64 `json:"h"`
			Low    float64 `json:"l"`
			Close  float64 `json:"c"`
			Volume float64 `json:"v"` // base asset
		} `json:"k"`
	} `json:"d"`
}

// ParseStreamMessage converts one stream frame into a candle. Frames
// without a channel (subscription acks, PONG replies) yield (nil, nil).
// MEXC stamps stream klines in seconds, unlike its REST API; the open time
// is normalized to milliseconds here.
func (*Adapter) ParseStreamMessage(raw []byte) (*market.Candle, error) {
	var m wsMsg
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("mexc: stream: %w: %v", market.ErrMalformedResponse, err)
	}
	if m.Channel == "" {
		return nil, nil
	}
	k := m.Data.Kline
	if k.Start == 0 {
		return nil, nil
	}
	return &market.Candle{
		Time:   k.Start * 1000,
		Open:   k.Open,
		High:   k.High,
		Low:    k.Low,
		Close:  k.Close,
		Volume: k.Volume,
	}, nil
}
