package indicator

import (
	"fmt"
	"log"
	"math"

	"StockScope/internal/model"
)

// Default indicator parameters. These mirror the conventional A-share
// charting setup and are not tunable per call.
const (
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
	KDJPeriod  = 9
	RSIPeriod  = 14
	BollPeriod = 20
	BollWidth  = 2.0
)

// minReliableBars is the length below which several indicators are largely
// undefined; shorter input is computed anyway, with a warning.
const minReliableBars = 30

// Compute derives the full indicator set from a bar series. A nil or empty
// series is an explicit failure; a short series is not.
func Compute(s *model.Series) (*model.IndicatorSet, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("indicator input: %w", err)
	}
	if s.Len() < minReliableBars {
		log.Printf("[WARN] %s: only %d bars, several indicators will be mostly undefined", s.Symbol, s.Len())
	}

	closes := s.Closes()
	highs := s.Highs()
	lows := s.Lows()
	volumes := s.Volumes()

	set := &model.IndicatorSet{Length: len(closes)}

	set.MA5 = MA(closes, 5)
	set.MA10 = MA(closes, 10)
	set.MA20 = MA(closes, 20)
	set.MA60 = MA(closes, 60)

	set.DIF, set.DEA, set.MACD = MACD(closes, MACDFast, MACDSlow, MACDSignal)
	set.K, set.D, set.J = KDJ(closes, highs, lows, KDJPeriod)
	set.RSI = RSI(closes, RSIPeriod)
	set.BollUpper, set.BollMid, set.BollLower = Boll(closes, BollPeriod, BollWidth)

	set.VolMA5 = MA(volumes, 5)
	set.VolMA10 = MA(volumes, 10)

	return set, nil
}

func undefinedSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = model.Undefined
	}
	return out
}

// MA computes the simple moving average; values before index period-1 are
// undefined.
func MA(data []float64, period int) []float64 {
	result := undefinedSlice(len(data))
	if period <= 0 || len(data) < period {
		return result
	}
	sum := 0.0
	for i, v := range data {
		sum += v
		if i >= period {
			sum -= data[i-period]
		}
		if i >= period-1 {
			result[i] = sum / float64(period)
		}
	}
	return result
}

// EMA computes the exponential moving average with multiplier 2/(period+1).
// The seed value is the simple mean of the first `period` defined inputs;
// leading undefined positions (as in a MACD DIF series) shift the seed index
// forward instead of poisoning the recurrence.
func EMA(data []float64, period int) []float64 {
	result := undefinedSlice(len(data))
	if period <= 0 {
		return result
	}
	start := 0
	for start < len(data) && !model.Defined(data[start]) {
		start++
	}
	if len(data)-start < period {
		return result
	}

	seedIdx := start + period - 1
	sum := 0.0
	for i := start; i <= seedIdx; i++ {
		sum += data[i]
	}
	result[seedIdx] = sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := seedIdx + 1; i < len(data); i++ {
		result[i] = (data[i]-result[i-1])*multiplier + result[i-1]
	}
	return result
}

// MACD returns the DIF, DEA and MACD histogram lines.
func MACD(closes []float64, fast, slow, signal int) (dif, dea, macd []float64) {
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	n := len(closes)
	dif = make([]float64, n)
	for i := 0; i < n; i++ {
		dif[i] = emaFast[i] - emaSlow[i] // NaN until both are defined
	}

	dea = EMA(dif, signal)

	macd = make([]float64, n)
	for i := 0; i < n; i++ {
		macd[i] = (dif[i] - dea[i]) * 2
	}
	return dif, dea, macd
}

// KDJ computes the K, D and J stochastic lines. K and D carry a 50.0
// baseline at every index, including before the n-bar window is full; this
// seeding is deliberate and J = 3K - 2D is derived for every index from it.
func KDJ(closes, highs, lows []float64, n int) (k, d, j []float64) {
	length := len(closes)
	k = make([]float64, length)
	d = make([]float64, length)
	j = make([]float64, length)
	for i := range k {
		k[i] = 50.0
		d[i] = 50.0
	}

	for i := n - 1; i < length; i++ {
		highN := highs[i]
		lowN := lows[i]
		for w := i - n + 1; w < i; w++ {
			highN = math.Max(highN, highs[w])
			lowN = math.Min(lowN, lows[w])
		}

		rsv := 50.0
		if highN != lowN {
			rsv = (closes[i] - lowN) / (highN - lowN) * 100
		}

		prevK, prevD := 50.0, 50.0
		if i > 0 {
			prevK, prevD = k[i-1], d[i-1]
		}
		k[i] = 2.0/3.0*prevK + 1.0/3.0*rsv
		d[i] = 2.0/3.0*prevD + 1.0/3.0*k[i]
	}

	for i := range j {
		j[i] = 3*k[i] - 2*d[i]
	}
	return k, d, j
}

// RSI computes the Wilder-smoothed relative strength index. The first
// defined value is at index `period`; avgLoss == 0 yields 100.
func RSI(closes []float64, period int) []float64 {
	result := undefinedSlice(len(closes))
	if period <= 0 || len(closes) < period+1 {
		return result
	}

	gains := make([]float64, len(closes)-1)
	losses := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	var avgGain, avgLoss float64
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	result[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(closes); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i-1]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i-1]) / float64(period)
		result[i] = rsiValue(avgGain, avgLoss)
	}
	return result
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// Boll computes Bollinger Bands: a middle simple moving average plus bands
// at +-width population standard deviations over the same trailing window.
func Boll(closes []float64, period int, width float64) (upper, mid, lower []float64) {
	mid = MA(closes, period)
	upper = undefinedSlice(len(closes))
	lower = undefinedSlice(len(closes))

	for i := period - 1; i < len(closes); i++ {
		mean := mid[i]
		var variance float64
		for w := i - period + 1; w <= i; w++ {
			diff := closes[w] - mean
			variance += diff * diff
		}
		std := math.Sqrt(variance / float64(period))
		upper[i] = mean + width*std
		lower[i] = mean - width*std
	}
	return upper, mid, lower
}
