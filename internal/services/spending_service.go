package services

import (
	"context"
	"fmt"
	"log/slog"

	"spendtrack/internal/core"
	"spendtrack/internal/events"
	"spendtrack/internal/storage"
)

// SpendingService orchestrates spending writes across SQLite and AMQP.
type SpendingService struct {
	storage *storage.SQLiteRepository
	events  *events.Client
}

func NewSpendingService(storage *storage.SQLiteRepository, eventsClient *events.Client) *SpendingService {
	return &SpendingService{
		storage: storage,
		events:  eventsClient,
	}
}

// Record saves a spending record locally and publishes a spending-recorded
// event. The event is best effort; a publish failure never fails the write.
func (s *SpendingService) Record(ctx context.Context, sp core.Spending) (int64, error) {
	// Save to SQLite first (fast, reliable)
	id, err := s.storage.Record(ctx, sp)
	if err != nil {
		return 0, fmt.Errorf("save spending: %w", err)
	}

	if err := s.publishRecorded(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish spending event",
			"id", id, "error", err)
		// Don't fail the request - the spending is saved locally
	}

	return id, nil
}

func (s *SpendingService) publishRecorded(ctx context.Context, id int64) error {
	if s.events == nil {
		slog.DebugContext(ctx, "Events client not configured, skipping publish")
		return nil
	}
	return s.events.PublishSpendingRecorded(ctx, id)
}

// Close closes both storage and AMQP connections.
func (s *SpendingService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.events != nil {
		if err := s.events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close spending service: %v", errs)
	}

	return nil
}
