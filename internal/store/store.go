// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"option-strategist/internal/scan"
)

// Evaluation is a persisted snapshot of a strategy P&L analysis.
type Evaluation struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Ticker     string    `json:"ticker,omitempty"`
	Strategy   string    `json:"strategy"`
	Spot       float64   `json:"spot"`
	NetPremium float64   `json:"net_premium"`
	MaxProfit  float64   `json:"max_profit"`
	MaxLoss    float64   `json:"max_loss"`
	Breakevens []float64 `json:"breakevens"`
}

// ScanFilter narrows scan record queries.
type ScanFilter struct {
	Ticker string
	Since  time.Time
	Limit  int
}

// DataStore defines the interface for data persistence.
type DataStore interface {
	// Scan results from the external screener
	SaveScanRecords(ctx context.Context, records []scan.Record) error
	GetScanRecords(ctx context.Context, filter ScanFilter) ([]scan.Record, error)

	// Strategy evaluations
	SaveEvaluation(ctx context.Context, eval *Evaluation) error
	GetEvaluations(ctx context.Context, limit int) ([]Evaluation, error)

	Close() error
}
