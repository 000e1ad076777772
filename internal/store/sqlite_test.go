package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"option-strategist/internal/scan"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestScanRecordRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	records := []scan.Record{
		{
			Ticker:        "AAPL",
			CompanyName:   "Apple Inc.",
			Price:         189.5,
			Strike:        190,
			DaysToExp:     25,
			IVRank:        35,
			TotalOptVol:   1234567,
			ProbMaxProfit: 68,
			ReturnPercent: 32.5,
			ExpDate:       "2026-09-18",
			ScrapedAt:     time.Now().UTC(),
		},
		{Ticker: "MSFT", Price: 410, Strike: 420, DaysToExp: 32, ScrapedAt: time.Now().UTC()},
	}

	if err := s.SaveScanRecords(ctx, records); err != nil {
		t.Fatalf("saving: %v", err)
	}

	got, err := s.GetScanRecords(ctx, ScanFilter{})
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	byTicker, err := s.GetScanRecords(ctx, ScanFilter{Ticker: "AAPL"})
	if err != nil {
		t.Fatalf("querying by ticker: %v", err)
	}
	if len(byTicker) != 1 {
		t.Fatalf("got %d AAPL records, want 1", len(byTicker))
	}

	r := byTicker[0]
	if float64(r.Price) != 189.5 || float64(r.Strike) != 190 {
		t.Errorf("record = %+v, want price 189.5 strike 190", r)
	}
	if r.ExpDate != "2026-09-18" {
		t.Errorf("exp date = %q", r.ExpDate)
	}
}

func TestScanRecordLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var records []scan.Record
	for i := 0; i < 5; i++ {
		records = append(records, scan.Record{
			Ticker:    "SPY",
			Price:     500,
			ScrapedAt: time.Now().UTC().Add(time.Duration(i) * time.Minute),
		})
	}
	if err := s.SaveScanRecords(ctx, records); err != nil {
		t.Fatalf("saving: %v", err)
	}

	got, err := s.GetScanRecords(ctx, ScanFilter{Limit: 3})
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
}

func TestSaveScanRecordsEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveScanRecords(context.Background(), nil); err != nil {
		t.Fatalf("saving empty slice: %v", err)
	}
}

func TestEvaluationRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	eval := &Evaluation{
		Ticker:     "AAPL",
		Strategy:   "Long Straddle",
		Spot:       189.5,
		NetPremium: 10.4,
		MaxProfit:  27.5,
		MaxLoss:    -10.4,
		Breakevens: []float64{179.1, 199.9},
	}

	if err := s.SaveEvaluation(ctx, eval); err != nil {
		t.Fatalf("saving: %v", err)
	}
	if eval.ID == 0 {
		t.Error("expected assigned ID after save")
	}

	got, err := s.GetEvaluations(ctx, 10)
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d evaluations, want 1", len(got))
	}

	e := got[0]
	if e.Strategy != "Long Straddle" || e.MaxProfit != 27.5 || e.MaxLoss != -10.4 {
		t.Errorf("evaluation = %+v", e)
	}
	if len(e.Breakevens) != 2 || e.Breakevens[0] != 179.1 || e.Breakevens[1] != 199.9 {
		t.Errorf("breakevens = %v, want [179.1, 199.9]", e.Breakevens)
	}
}
