package collector

import "StockScope/internal/model"

// Fetcher defines the boundary for pulling kline data from a provider.
type Fetcher interface {
	FetchKlines(symbol, timeframe string, limit int) ([]model.Bar, error)
	Name() string
}
