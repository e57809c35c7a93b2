package pattern

import (
	"fmt"

	"StockScope/internal/model"
)

// HistoryProvider supplies chronological closing prices for one instrument.
// The matcher owns no data access of its own; history arrives through this
// boundary.
type HistoryProvider interface {
	Closes(symbol string, limit int) ([]float64, error)
}

// batchLimit caps the instruments processed per batch request to bound
// total latency.
const batchLimit = 10

// Result is the per-instrument outcome of a batch analysis: either an
// analysis or the error that prevented it. Failures are recorded, not
// silently dropped, so callers can tell 10 succeeded from 10 attempted.
type Result struct {
	Ticker   string
	Analysis *model.PatternAnalysis
	Err      error
}

// AnalyzeBatch runs the outcome analysis for up to 10 tickers, isolating
// per-instrument failures. The returned slice has one entry per attempted
// ticker, in request order.
func AnalyzeBatch(provider HistoryProvider, tickers []string, patternDays int) []Result {
	if len(tickers) > batchLimit {
		tickers = tickers[:batchLimit]
	}

	results := make([]Result, 0, len(tickers))
	for _, ticker := range tickers {
		analysis, err := analyzeOne(provider, ticker, patternDays)
		results = append(results, Result{Ticker: ticker, Analysis: analysis, Err: err})
	}
	return results
}

func analyzeOne(provider HistoryProvider, ticker string, patternDays int) (*model.PatternAnalysis, error) {
	closes, err := provider.Closes(ticker, DefaultLookback+patternDays+50)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", ticker, err)
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("no history for %s: %w", ticker, model.ErrInsufficientData)
	}
	return AnalyzeOutcome(ticker, closes, patternDays)
}
