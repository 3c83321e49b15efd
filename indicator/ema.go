package indicator

import "github.com/mortalmad92/cryptosearch/model/market"

// EMA computes the exponential moving average of closes with smoothing
// factor 2/(period+1). Indices below period-1 are NaN; index period-1 is
// seeded with the simple average of the first period closes and the
// recurrence takes over from there.
func EMA(candles []market.Candle, period int) []float64 {
	out := nanSlice(len(candles))
	if period < 1 || len(candles) < period {
		return out
	}

	k := 2.0 / float64(period+1)
	var sum float64
	for i, c := range candles {
		switch {
		case i < period-1:
			sum += c.Close
		case i == period-1:
			sum += c.Close
			out[i] = sum / float64(period)
		default:
			out[i] = c.Close*k + out[i-1]*(1-k)
		}
	}
	return out
}
