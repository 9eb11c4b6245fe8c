package backend

import (
	"context"
	"path/filepath"
	"testing"

	"spendtrack/internal/config"
)

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(&config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "data/test.db",
		AMQPURL:      "amqp://localhost:5672/",
		AMQPExchange: "spendtrack",
		AMQPQueue:    "spending-recorded",
	})
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if cfg.Type != SQLite {
		t.Errorf("Type = %q, want sqlite", cfg.Type)
	}
	if cfg.SQLiteDBPath != "data/test.db" {
		t.Errorf("SQLiteDBPath = %q", cfg.SQLiteDBPath)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "sheets"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Type: Memory}).Validate(); err != nil {
		t.Errorf("memory config should validate: %v", err)
	}
	if err := (Config{Type: SQLite, SQLiteDBPath: "x.db"}).Validate(); err != nil {
		t.Errorf("sqlite config should validate: %v", err)
	}
	if err := (Config{Type: SQLite}).Validate(); err == nil {
		t.Error("sqlite config without path should fail")
	}
	if err := (Config{Type: "bolt"}).Validate(); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestCreateMemoryBackend(t *testing.T) {
	factory := NewFactory(nil)

	result, err := factory.CreateBackend(context.Background(), Config{Type: Memory})
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}
	if result.Backend == nil {
		t.Fatal("expected backend")
	}
	if result.Cleanup != nil {
		t.Error("memory backend should need no cleanup")
	}

	names, err := result.Backend.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) == 0 {
		t.Error("memory backend should come seeded with categories")
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	factory := NewFactory(nil)

	result, err := factory.CreateBackend(context.Background(), Config{
		Type:         SQLite,
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("CreateBackend: %v", err)
	}
	defer func() {
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
	}()

	if result.Cleanup == nil {
		t.Fatal("sqlite backend should return a cleanup func")
	}
	if err := result.Backend.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
