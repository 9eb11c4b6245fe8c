// Package backend selects and constructs the storage backend the server
// runs against.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"spendtrack/internal/adapters"
	"spendtrack/internal/events"
	"spendtrack/internal/services"
	"spendtrack/internal/storage"
	"spendtrack/internal/store/memory"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLite:
		return f.createSQLiteBackend(config)
	case Memory:
		return f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	sqliteRepo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	// AMQP is optional; the form works with no broker configured.
	var eventsClient *events.Client
	if config.AMQPURL != "" {
		eventsClient, err = events.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize events client, continuing without events", "error", err)
		} else {
			f.logger.Info("Initialized events client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	spendingService := services.NewSpendingService(sqliteRepo, eventsClient)
	adapter := adapters.NewSQLiteAdapter(sqliteRepo, spendingService)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"events_enabled", eventsClient != nil)

	return &BackendResult{
		Backend: adapter,
		Cleanup: spendingService.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend() (*BackendResult, error) {
	store := memory.NewWithDefaults()

	f.logger.Info("Initialized memory backend")

	return &BackendResult{
		Backend: store,
		Cleanup: nil,
	}, nil
}
