package indicator

import (
	"math"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// KDJ computes the stochastic K, D and J lines over a trailing
// high/low window of the given period. RSV is pinned to 50 when the
// window is flat (high == low). The K and D recurrences are seeded at
// 50 before the first defined index; indices below period-1 are NaN.
func KDJ(candles []market.Candle, period int) (k, d, j []float64) {
	n := len(candles)
	k, d, j = nanSlice(n), nanSlice(n), nanSlice(n)
	if period < 1 || n < period {
		return
	}

	kPrev, dPrev := 50.0, 50.0
	for i := period - 1; i < n; i++ {
		lo, hi := candles[i].Low, candles[i].High
		for w := i - period + 1; w < i; w++ {
			lo = math.Min(lo, candles[w].Low)
			hi = math.Max(hi, candles[w].High)
		}

		rsv := 50.0
		if hi != lo {
			rsv = (candles[i].Close - lo) / (hi - lo) * 100
		}

		kv := (2.0/3.0)*kPrev + (1.0/3.0)*rsv
		dv := (2.0/3.0)*dPrev + (1.0/3.0)*kv
		k[i], d[i], j[i] = kv, dv, 3*kv-2*dv
		kPrev, dPrev = kv, dv
	}
	return
}
