package model

import "math"

// Undefined marks indicator positions inside the warm-up period. Arrays in
// an IndicatorSet carry this marker instead of fabricated numbers; the one
// deliberate exception is KDJ, whose K/D lines are seeded at 50.0 for every
// index including pre-warm-up ones.
var Undefined = math.NaN()

// Defined reports whether an indicator value is outside its warm-up gap.
func Defined(v float64) bool { return !math.IsNaN(v) }

// IndicatorSet holds all computed indicator series, index-aligned with the
// source bar series.
type IndicatorSet struct {
	Length int

	MA5  []float64
	MA10 []float64
	MA20 []float64
	MA60 []float64

	DIF  []float64
	DEA  []float64
	MACD []float64

	K []float64
	D []float64
	J []float64

	RSI []float64

	BollUpper []float64
	BollMid   []float64
	BollLower []float64

	VolMA5  []float64
	VolMA10 []float64
}
