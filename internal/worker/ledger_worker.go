// Package worker appends spending-recorded events to an append-only CSV
// ledger.
package worker

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spendtrack/internal/events"
	"spendtrack/internal/store"
)

var ledgerHeader = []string{"recorded_at", "id", "amount", "category"}

// LedgerWorker consumes spending-recorded events, loads the committed row
// from storage, and appends it to the ledger file. The ledger reflects only
// what storage actually holds; the message carries just the ID.
type LedgerWorker struct {
	spendings  store.SpendingReader
	events     *events.Client
	ledgerPath string
}

func NewLedgerWorker(spendings store.SpendingReader, eventsClient *events.Client, ledgerPath string) *LedgerWorker {
	return &LedgerWorker{
		spendings:  spendings,
		events:     eventsClient,
		ledgerPath: ledgerPath,
	}
}

// Run consumes events until ctx is done. Handler errors requeue the
// message; see events.Client.ConsumeSpendingRecorded.
func (w *LedgerWorker) Run(ctx context.Context) error {
	return w.events.ConsumeSpendingRecorded(ctx, func(msg *events.SpendingRecordedMessage) error {
		return w.HandleSpendingRecorded(ctx, msg)
	})
}

// HandleSpendingRecorded processes a single spending-recorded message.
func (w *LedgerWorker) HandleSpendingRecorded(ctx context.Context, msg *events.SpendingRecordedMessage) error {
	slog.InfoContext(ctx, "Processing spending event",
		"spending_id", msg.SpendingID,
		"published_at", msg.Timestamp.Format(time.RFC3339))

	sp, err := w.spendings.Get(ctx, msg.SpendingID)
	if err != nil {
		return fmt.Errorf("get spending from storage: %w", err)
	}

	if err := w.appendToLedger(sp.RecordedAt, sp.ID, sp.Amount.String(), sp.Category); err != nil {
		return fmt.Errorf("append to ledger: %w", err)
	}

	slog.InfoContext(ctx, "Spending appended to ledger",
		"spending_id", sp.ID,
		"amount", sp.Amount.String(),
		"category", sp.Category,
		"ledger", w.ledgerPath)

	return nil
}

func (w *LedgerWorker) appendToLedger(recordedAt time.Time, id int64, amount, category string) error {
	if err := os.MkdirAll(filepath.Dir(w.ledgerPath), 0755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	f, err := os.OpenFile(w.ledgerPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat ledger: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(ledgerHeader); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	}

	record := []string{
		recordedAt.UTC().Format(time.RFC3339),
		fmt.Sprintf("%d", id),
		amount,
		category,
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("write ledger record: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}

	return f.Sync()
}
