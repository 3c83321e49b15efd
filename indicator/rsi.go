package indicator

import "github.com/mortalmad92/cryptosearch/model/market"

// RSI computes the Relative Strength Index using Wilder smoothing.
// Indices below period are NaN; index period averages the first period
// gains and losses, after which each side is smoothed with weight
// 1/period.
func RSI(candles []market.Candle, period int) []float64 {
	out := nanSlice(len(candles))
	if period < 1 || len(candles) <= period {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		diff := candles[i].Close - candles[i-1].Close
		if diff > 0 {
			avgGain += diff
		} else {
			avgLoss -= diff
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(candles); i++ {
		var gain, loss float64
		if diff := candles[i].Close - candles[i-1].Close; diff > 0 {
			gain = diff
		} else {
			loss = -diff
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

// rsiValue applies the Wilder formula. A zero average loss pins the
// output at exactly 100; the plain division would yield NaN or +Inf.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}
