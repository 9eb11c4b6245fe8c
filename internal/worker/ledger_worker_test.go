package worker

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"spendtrack/internal/core"
	"spendtrack/internal/events"
	"spendtrack/internal/store/memory"
)

func TestHandleSpendingRecorded(t *testing.T) {
	store := memory.New(nil)
	ctx := context.Background()

	id, err := store.Record(ctx, core.Spending{
		Amount:   decimal.RequireFromString("42.5"),
		Category: "Food",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	ledgerPath := filepath.Join(t.TempDir(), "out", "ledger.csv")
	w := NewLedgerWorker(store, nil, ledgerPath)

	msg := events.NewSpendingRecordedMessage(id)
	if err := w.HandleSpendingRecorded(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	rows := readLedger(t, ledgerPath)
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 record, got %d rows", len(rows))
	}
	if rows[0][0] != "recorded_at" || rows[0][3] != "category" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "42.5" || rows[1][3] != "Food" {
		t.Fatalf("unexpected record: %v", rows[1])
	}
}

func TestHandleSpendingRecordedAppendsWithoutSecondHeader(t *testing.T) {
	store := memory.New(nil)
	ctx := context.Background()

	ledgerPath := filepath.Join(t.TempDir(), "ledger.csv")
	w := NewLedgerWorker(store, nil, ledgerPath)

	for _, amt := range []string{"1.25", "3"} {
		id, err := store.Record(ctx, core.Spending{
			Amount:   decimal.RequireFromString(amt),
			Category: "Bills",
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
		if err := w.HandleSpendingRecorded(ctx, events.NewSpendingRecordedMessage(id)); err != nil {
			t.Fatalf("handle: %v", err)
		}
	}

	rows := readLedger(t, ledgerPath)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 records, got %d rows", len(rows))
	}
	if rows[1][2] != "1.25" || rows[2][2] != "3" {
		t.Fatalf("unexpected amounts: %v / %v", rows[1], rows[2])
	}
}

func TestHandleSpendingRecordedUnknownID(t *testing.T) {
	store := memory.New(nil)
	ledgerPath := filepath.Join(t.TempDir(), "ledger.csv")
	w := NewLedgerWorker(store, nil, ledgerPath)

	err := w.HandleSpendingRecorded(context.Background(), events.NewSpendingRecordedMessage(99))
	if err == nil {
		t.Fatal("expected error for unknown spending id")
	}
	if _, statErr := os.Stat(ledgerPath); !os.IsNotExist(statErr) {
		t.Fatal("ledger should not be created when the fetch fails")
	}
}

func readLedger(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read ledger: %v", err)
	}
	return rows
}
