// Package indicator computes technical indicators over a candle window.
// All functions are pure and recompute from the full input; undefined
// warm-up indices are math.NaN so output slices always align 1:1 with
// the input candles.
package indicator

import (
	"math"

	"github.com/mortalmad92/cryptosearch/model/market"
)

const (
	DefaultEMAPeriod = 20
	DefaultRSIPeriod = 14
	DefaultKDJPeriod = 9
	DefaultSARStart  = 0.02
	DefaultSARMax    = 0.2
)

// Bundle carries one full recomputation of every indicator, aligned
// index-for-index with the candle window it was computed from.
type Bundle struct {
	EMA []float64
	RSI []float64
	K   []float64
	D   []float64
	J   []float64
	SAR []float64
}

// Compute runs all indicators with their default parameters.
func Compute(candles []market.Candle) *Bundle {
	b := &Bundle{
		EMA: EMA(candles, DefaultEMAPeriod),
		RSI: RSI(candles, DefaultRSIPeriod),
		SAR: SAR(candles, DefaultSARStart, DefaultSARMax),
	}
	b.K, b.D, b.J = KDJ(candles, DefaultKDJPeriod)
	return b
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
