package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"spendtrack/internal/core"
)

func TestStoreCreateAndList(t *testing.T) {
	s := New([]string{"Food", "Transport"})

	names, err := s.List(context.Background())
	if err != nil || len(names) != 2 {
		t.Fatalf("unexpected list: names=%v err=%v", names, err)
	}

	if err := s.Create(context.Background(), "Books"); err != nil {
		t.Fatalf("create: %v", err)
	}
	names, _ = s.List(context.Background())
	if len(names) != 3 || names[2] != "Books" {
		t.Fatalf("unexpected list after create: %v", names)
	}
}

func TestStoreKeepsDuplicateCategories(t *testing.T) {
	s := New(nil)
	for i := 0; i < 2; i++ {
		if err := s.Create(context.Background(), "Food"); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	names, _ := s.List(context.Background())
	if len(names) != 2 {
		t.Fatalf("expected duplicates to be kept, got %v", names)
	}
}

func TestStoreRecordAndGet(t *testing.T) {
	s := New(nil)

	id, err := s.Record(context.Background(), core.Spending{
		Amount:   decimal.RequireFromString("42.5"),
		Category: "Food",
	})
	if err != nil || id != 1 {
		t.Fatalf("unexpected record: id=%d err=%v", id, err)
	}

	got, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("42.5")) || got.Category != "Food" {
		t.Fatalf("unexpected spending: %+v", got)
	}
	if got.RecordedAt.IsZero() {
		t.Fatalf("expected RecordedAt to be set")
	}

	if _, err := s.Get(context.Background(), 99); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}
