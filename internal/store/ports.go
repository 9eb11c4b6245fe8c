package store

import (
	"context"

	"spendtrack/internal/core"
)

// Ports for outbound storage adapters.
type (
	SpendingWriter interface {
		Record(ctx context.Context, s core.Spending) (id int64, err error)
	}

	// SpendingReader loads a persisted record by its ID.
	SpendingReader interface {
		Get(ctx context.Context, id int64) (core.Spending, error)
	}

	CategoryReader interface {
		List(ctx context.Context) (names []string, err error)
	}

	CategoryWriter interface {
		Create(ctx context.Context, name string) error
	}

	// Pinger reports whether the underlying store is reachable.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
