package collector

import (
	"fmt"
	"time"

	"StockScope/internal/model"
	"StockScope/internal/store"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.Bar
	Base float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchKlines(symbol, _ string, limit int) ([]model.Bar, error) {
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	base := m.Base
	if base == 0 {
		base = 10.0
	}
	return GenerateMockBars(base, limit), nil
}

// GenerateMockBars builds a gently drifting bar sequence around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
			Amount: p * 1000000,
		}
	}
	return bars
}

// Collector pulls klines through a Fetcher, persists them, and serves
// validated series snapshots to the analysis engines.
type Collector struct {
	Fetcher Fetcher
	Store   store.Store
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, st store.Store) *Collector {
	return &Collector{Fetcher: fetcher, Store: st}
}

// Sync fetches the latest bars for a symbol, validates the sequence, and
// persists it. The returned series is a fresh snapshot for analysis.
func (c *Collector) Sync(symbol, timeframe string, limit int) (*model.Series, error) {
	bars, err := c.Fetcher.FetchKlines(symbol, timeframe, limit)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", symbol, err)
	}

	series := &model.Series{Symbol: symbol, Timeframe: timeframe, Bars: bars}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("sync %s: %w", symbol, err)
	}

	if err := c.Store.SaveBars(symbol, timeframe, bars); err != nil {
		return nil, fmt.Errorf("persist %s: %w", symbol, err)
	}
	return series, nil
}

// Load reads a series snapshot from the store without fetching.
func (c *Collector) Load(symbol, timeframe string, limit int) (*model.Series, error) {
	bars, err := c.Store.Bars(symbol, timeframe, limit)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", symbol, err)
	}
	series := &model.Series{Symbol: symbol, Timeframe: timeframe, Bars: bars}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", symbol, err)
	}
	return series, nil
}
