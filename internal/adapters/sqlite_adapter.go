package adapters

import (
	"context"

	"spendtrack/internal/core"
	"spendtrack/internal/services"
	"spendtrack/internal/storage"
)

// SQLiteAdapter adapts SQLiteRepository and SpendingService to the store
// ports so HTTP handlers stay backend-agnostic. Writes go through the
// service so spending-recorded events fire; reads hit the repository.
type SQLiteAdapter struct {
	storage *storage.SQLiteRepository
	service *services.SpendingService
}

func NewSQLiteAdapter(storage *storage.SQLiteRepository, service *services.SpendingService) *SQLiteAdapter {
	return &SQLiteAdapter{
		storage: storage,
		service: service,
	}
}

// Record implements store.SpendingWriter.
func (a *SQLiteAdapter) Record(ctx context.Context, s core.Spending) (int64, error) {
	return a.service.Record(ctx, s)
}

// Get implements store.SpendingReader.
func (a *SQLiteAdapter) Get(ctx context.Context, id int64) (core.Spending, error) {
	return a.storage.Get(ctx, id)
}

// List implements store.CategoryReader.
func (a *SQLiteAdapter) List(ctx context.Context) ([]string, error) {
	return a.storage.List(ctx)
}

// Create implements store.CategoryWriter.
func (a *SQLiteAdapter) Create(ctx context.Context, name string) error {
	return a.storage.Create(ctx, name)
}

// Ping implements store.Pinger.
func (a *SQLiteAdapter) Ping(ctx context.Context) error {
	return a.storage.Ping(ctx)
}
