package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(tradeID string, pricedAt time.Time) *PricingRecord {
	return &PricingRecord{
		TradeID:          tradeID,
		Pair:             "EUR/USD",
		BarrierType:      "UP_OUT",
		NPV:              4821.55,
		NPVCurrency:      "USD",
		Notional:         110000,
		NotionalCurrency: "USD",
		Maturity:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PricedAt:         pricedAt,
	}
}

func TestSaveAndGetResults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord("FX-1001", time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	if err := s.SaveResult(ctx, record); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if record.ID == 0 {
		t.Error("SaveResult did not set the record ID")
	}

	results, err := s.GetResults(ctx, ResultFilter{TradeID: "FX-1001"})
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	got := results[0]
	if got.TradeID != "FX-1001" || got.Pair != "EUR/USD" || got.BarrierType != "UP_OUT" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.NPV != 4821.55 || got.NPVCurrency != "USD" {
		t.Errorf("NPV fields: %+v", got)
	}
	if !got.Maturity.Equal(record.Maturity) {
		t.Errorf("Maturity = %v, want %v", got.Maturity, record.Maturity)
	}
}

func TestGetResults_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"FX-1", "FX-2", "FX-3"} {
		r := sampleRecord(id, base.Add(time.Duration(i)*time.Hour))
		if id == "FX-3" {
			r.Pair = "GBP/USD"
		}
		if err := s.SaveResult(ctx, r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	t.Run("by trade id", func(t *testing.T) {
		results, err := s.GetResults(ctx, ResultFilter{TradeID: "FX-2"})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 || results[0].TradeID != "FX-2" {
			t.Errorf("got %+v", results)
		}
	})

	t.Run("by pair", func(t *testing.T) {
		results, err := s.GetResults(ctx, ResultFilter{Pair: "EUR/USD"})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 2 {
			t.Errorf("got %d results, want 2", len(results))
		}
	})

	t.Run("since", func(t *testing.T) {
		results, err := s.GetResults(ctx, ResultFilter{Since: base.Add(90 * time.Minute)})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 1 || results[0].TradeID != "FX-3" {
			t.Errorf("got %+v", results)
		}
	})

	t.Run("limit and ordering", func(t *testing.T) {
		results, err := s.GetResults(ctx, ResultFilter{Limit: 2})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		// Newest first.
		if results[0].TradeID != "FX-3" || results[1].TradeID != "FX-2" {
			t.Errorf("ordering: %s, %s", results[0].TradeID, results[1].TradeID)
		}
	})
}

func TestGetResults_Empty(t *testing.T) {
	s := newTestStore(t)
	results, err := s.GetResults(context.Background(), ResultFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results from empty store", len(results))
	}
}
