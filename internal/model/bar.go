package model

import (
	"fmt"
	"time"
)

// Bar represents a single OHLCV candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Amount float64
}

// IsYang reports whether the bar closed above its open.
func (b Bar) IsYang() bool { return b.Close > b.Open }

// ChangePct returns the intrabar change percentage (close vs open).
func (b Bar) ChangePct() (float64, error) {
	if b.Open <= 0 {
		return 0, fmt.Errorf("bar at %s: open price %.4f: %w", b.Time.Format("2006-01-02"), b.Open, ErrInvalidInput)
	}
	return (b.Close - b.Open) / b.Open * 100, nil
}

// Series holds an ordered bar sequence for one symbol and timeframe,
// chronological ascending. It is treated as immutable once constructed.
type Series struct {
	Symbol    string
	Timeframe string
	Bars      []Bar
}

// Validate checks the series input contract: non-empty and strictly
// increasing timestamps. Violations are reported, never silently corrected.
func (s *Series) Validate() error {
	if s == nil || len(s.Bars) == 0 {
		return ErrEmptySeries
	}
	for i := 1; i < len(s.Bars); i++ {
		if !s.Bars[i].Time.After(s.Bars[i-1].Time) {
			return fmt.Errorf("bar %d (%s) not after bar %d (%s): %w",
				i, s.Bars[i].Time.Format("2006-01-02"),
				i-1, s.Bars[i-1].Time.Format("2006-01-02"), ErrNonMonotonic)
		}
	}
	return nil
}

// Closes returns the closing prices as a fresh slice.
func (s *Series) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high prices as a fresh slice.
func (s *Series) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Lows returns the low prices as a fresh slice.
func (s *Series) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the volumes as a fresh slice.
func (s *Series) Volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}

// Len returns the number of bars.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}
