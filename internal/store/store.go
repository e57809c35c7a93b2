package store

import (
	"time"

	"StockScope/internal/model"
)

// ReviewSnapshot is one symbol's analysis result persisted after a review
// run. Pattern statistics stay nil when the pattern data was insufficient.
type ReviewSnapshot struct {
	Symbol       string
	Price        float64
	Score        int
	Trend        string
	BuyCount     int
	SellCount    int
	PatternDays  int
	SimilarCount int
	WinRate      *float64
	AvgReturn    *float64
}

// Store persists bar history and review snapshots. Bar queries always return
// chronologically ascending slices.
type Store interface {
	SaveBars(symbol, timeframe string, bars []model.Bar) error
	Bars(symbol, timeframe string, limit int) ([]model.Bar, error)
	BarsRange(symbol, timeframe string, from, to time.Time) ([]model.Bar, error)
	Closes(symbol, timeframe string, limit int) ([]float64, error)
	RecordReview(snap *ReviewSnapshot) error
	Close() error
}
