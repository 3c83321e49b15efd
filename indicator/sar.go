package indicator

import (
	"math"

	"github.com/mortalmad92/cryptosearch/model/market"
)

// SAR computes the Parabolic SAR. Fewer than five candles yield all NaN.
// The initial trend is read off candle 0's body (up when close > open),
// the initial extreme point is that candle's high (uptrend) or low, and
// the initial SAR is the opposite extreme.
//
// Each step advances SAR toward the extreme point by the acceleration
// factor, clamped so it never crosses into the prior two candles' range.
// A price breach of the advanced SAR flips the trend: SAR restarts from
// the old extreme point and the factor resets. Without a breach, a new
// extreme steps the factor by startAF up to maxAF.
func SAR(candles []market.Candle, startAF, maxAF float64) []float64 {
	out := nanSlice(len(candles))
	if len(candles) < 5 {
		return out
	}

	up := candles[0].Close > candles[0].Open
	var ep, sar float64
	if up {
		ep, sar = candles[0].High, candles[0].Low
	} else {
		ep, sar = candles[0].Low, candles[0].High
	}
	af := startAF
	out[0] = sar

	for i := 1; i < len(candles); i++ {
		next := sar + af*(ep-sar)

		w := i - 2
		if w < 0 {
			w = 0
		}
		if up {
			next = math.Min(next, math.Min(candles[i-1].Low, candles[w].Low))
		} else {
			next = math.Max(next, math.Max(candles[i-1].High, candles[w].High))
		}

		switch {
		case up && candles[i].Low < next:
			next = ep
			up = false
			ep = candles[i].Low
			af = startAF
		case !up && candles[i].High > next:
			next = ep
			up = true
			ep = candles[i].High
			af = startAF
		case up && candles[i].High > ep:
			ep = candles[i].High
			af = math.Min(af+startAF, maxAF)
		case !up && candles[i].Low < ep:
			ep = candles[i].Low
			af = math.Min(af+startAF, maxAF)
		}

		out[i] = next
		sar = next
	}
	return out
}
