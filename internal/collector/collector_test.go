package collector

import (
	"errors"
	"testing"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/store"
)

func TestGenerateMockBars(t *testing.T) {
	bars := GenerateMockBars(10, 50)
	if len(bars) != 50 {
		t.Fatalf("got %d bars, want 50", len(bars))
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			t.Fatalf("bar %d not after bar %d", i, i-1)
		}
	}
	for i, b := range bars {
		if b.High < b.Close || b.Low > b.Close {
			t.Errorf("bar %d: high/low do not bracket close", i)
		}
	}
}

func TestCollector_SyncValidatesAndPersists(t *testing.T) {
	fetcher := &MockFetcher{Base: 10}
	rec := &recordingStore{}
	c := NewCollector(fetcher, rec)

	series, err := c.Sync("SH600519", "daily", 60)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if series.Len() != 60 || series.Symbol != "SH600519" {
		t.Errorf("series = %s/%d bars, want SH600519/60", series.Symbol, series.Len())
	}
	if rec.saved != 60 {
		t.Errorf("persisted %d bars, want 60", rec.saved)
	}
}

func TestCollector_SyncRejectsDisorderedBars(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &MockFetcher{Bars: map[string][]model.Bar{
		"BAD": {
			{Time: base.AddDate(0, 0, 1), Close: 10},
			{Time: base, Close: 11},
		},
	}}
	c := NewCollector(fetcher, store.NewNoopStore())

	if _, err := c.Sync("BAD", "daily", 10); !errors.Is(err, model.ErrNonMonotonic) {
		t.Errorf("expected ErrNonMonotonic, got %v", err)
	}
}

// recordingStore counts persisted bars on top of the no-op behavior.
type recordingStore struct {
	store.NoopStore
	saved int
}

func (r *recordingStore) SaveBars(_, _ string, bars []model.Bar) error {
	r.saved += len(bars)
	return nil
}
