// Package series holds the bounded candle window a viewing session
// renders from. Exchanges stream the currently forming candle repeatedly
// until it closes, so merging has to distinguish "update in place" from
// "new bucket".
package series

import (
	"sync"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// DefaultCap is the window size used when no cap is configured. It also
// matches the batch size requested from the history endpoints.
const DefaultCap = 500

// Series is a bounded, chronologically ordered candle window. All
// methods are safe for concurrent use; stream callbacks arrive on the
// socket read goroutine while consumers snapshot from their own.
type Series struct {
	mu      sync.Mutex
	cap     int
	candles []market.Candle
}

// New builds a Series with the given cap. Non-positive caps select
// DefaultCap.
func New(cap int) *Series {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Series{cap: cap}
}

// ReplaceAll resets the window to the given batch, keeping the newest
// cap entries if the batch is longer.
func (s *Series) ReplaceAll(candles []market.Candle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(candles) > s.cap {
		candles = candles[len(candles)-s.cap:]
	}
	s.candles = append(s.candles[:0:0], candles...)
}

// MergeOne folds one streamed candle into the window. A candle sharing
// the last element's open time replaces it in place; a later open time
// appends, evicting the oldest entry once the window is full.
func (s *Series) MergeOne(c market.Candle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.candles); n > 0 && s.candles[n-1].Time == c.Time {
		s.candles[n-1] = c
		return
	}
	s.candles = append(s.candles, c)
	if len(s.candles) > s.cap {
		s.candles = s.candles[1:]
	}
}

// Snapshot returns an independent copy of the window in chronological
// order.
func (s *Series) Snapshot() []market.Candle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]market.Candle(nil), s.candles...)
}

func (s *Series) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.candles)
}
