// Package store provides persistence for pricing results.
package store

import (
	"context"
	"time"
)

// PricingRecord is one persisted pricing result.
type PricingRecord struct {
	ID               int64
	TradeID          string
	Pair             string
	BarrierType      string
	NPV              float64
	NPVCurrency      string
	Notional         float64
	NotionalCurrency string
	Maturity         time.Time
	PricedAt         time.Time
}

// ResultFilter filters queries over persisted results.
type ResultFilter struct {
	TradeID string
	Pair    string
	Since   time.Time
	Limit   int
}

// ResultStore defines the interface for pricing result persistence.
type ResultStore interface {
	SaveResult(ctx context.Context, record *PricingRecord) error
	GetResults(ctx context.Context, filter ResultFilter) ([]PricingRecord, error)
	Close() error
}
