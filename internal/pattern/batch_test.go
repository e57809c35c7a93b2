package pattern

import (
	"errors"
	"fmt"
	"testing"

	"StockScope/internal/model"
)

type fakeHistory struct {
	data map[string][]float64
}

func (f fakeHistory) Closes(symbol string, limit int) ([]float64, error) {
	closes, ok := f.data[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %s", symbol)
	}
	if len(closes) > limit {
		closes = closes[len(closes)-limit:]
	}
	return closes, nil
}

func TestAnalyzeBatch_CapsAtTen(t *testing.T) {
	provider := fakeHistory{data: map[string][]float64{}}
	var tickers []string
	for i := 0; i < 12; i++ {
		code := fmt.Sprintf("SH%06d", i)
		tickers = append(tickers, code)
		provider.data[code] = sineCloses(300, 20)
	}

	results := AnalyzeBatch(provider, tickers, 20)
	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}
	for i, r := range results {
		if r.Ticker != tickers[i] {
			t.Errorf("result %d ticker = %s, want %s (request order)", i, r.Ticker, tickers[i])
		}
		if r.Err != nil {
			t.Errorf("result %d unexpected error: %v", i, r.Err)
		}
	}
}

func TestAnalyzeBatch_IsolatesFailures(t *testing.T) {
	provider := fakeHistory{data: map[string][]float64{
		"SH600000": sineCloses(300, 20),
		"SZ000001": sineCloses(300, 20),
	}}
	results := AnalyzeBatch(provider, []string{"SH600000", "MISSING", "SZ000001"}, 20)

	if len(results) != 3 {
		t.Fatalf("got %d results, want one per attempted ticker", len(results))
	}
	if results[0].Err != nil || results[0].Analysis == nil {
		t.Errorf("first ticker should succeed, got err=%v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("missing ticker should carry its error")
	}
	if results[1].Analysis != nil {
		t.Error("failed ticker should not carry an analysis")
	}
	if results[2].Err != nil || results[2].Analysis == nil {
		t.Errorf("failure must not abort later tickers, got err=%v", results[2].Err)
	}
}

func TestAnalyzeBatch_EmptyHistoryIsError(t *testing.T) {
	provider := fakeHistory{data: map[string][]float64{
		"SH600000": {},
	}}
	results := AnalyzeBatch(provider, []string{"SH600000"}, 20)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !errors.Is(results[0].Err, model.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for empty history, got %v", results[0].Err)
	}
}

func TestAnalyzeBatch_ShortHistoryIsMessageNotError(t *testing.T) {
	provider := fakeHistory{data: map[string][]float64{
		"SH600000": sineCloses(40, 20),
	}}
	results := AnalyzeBatch(provider, []string{"SH600000"}, 20)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("short history should not be an error, got %+v", results)
	}
	if results[0].Analysis.Message == "" {
		t.Error("short history should produce the insufficient-data message")
	}
}
