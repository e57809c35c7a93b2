package store

import (
	"time"

	"StockScope/internal/model"
)

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) SaveBars(_, _ string, _ []model.Bar) error { return nil }
func (n *NoopStore) Bars(_, _ string, _ int) ([]model.Bar, error) {
	return nil, nil
}
func (n *NoopStore) BarsRange(_, _ string, _, _ time.Time) ([]model.Bar, error) {
	return nil, nil
}
func (n *NoopStore) Closes(_, _ string, _ int) ([]float64, error) { return nil, nil }
func (n *NoopStore) RecordReview(_ *ReviewSnapshot) error         { return nil }
func (n *NoopStore) Close() error                                 { return nil }
