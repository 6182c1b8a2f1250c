package repository

import (
	"context"
	"testing"

	"os_pro/internal/domain/entities"
)

func TestServiceOrderRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("first order gets number 1001", func(t *testing.T) {
		repo := NewServiceOrderRepository(NewMemoryBlobStore())

		saved, err := repo.Upsert(ctx, entities.ServiceOrder{ID: "os-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.OrderNumber != 1001 {
			t.Fatalf("expected order number 1001, got %d", saved.OrderNumber)
		}
	})

	t.Run("numbers are monotonic", func(t *testing.T) {
		repo := NewServiceOrderRepository(NewMemoryBlobStore())

		first, err := repo.Upsert(ctx, entities.ServiceOrder{ID: "os-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := repo.Upsert(ctx, entities.ServiceOrder{ID: "os-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.OrderNumber != 1001 || second.OrderNumber != 1002 {
			t.Fatalf("expected 1001 then 1002, got %d then %d", first.OrderNumber, second.OrderNumber)
		}
	})

	t.Run("resave preserves the number", func(t *testing.T) {
		repo := NewServiceOrderRepository(NewMemoryBlobStore())

		saved, err := repo.Upsert(ctx, entities.ServiceOrder{ID: "os-1", Description: "v1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		saved.Description = "v2"
		saved.OrderNumber = 9999 // caller-supplied numbers are ignored
		again, err := repo.Upsert(ctx, saved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.OrderNumber != 1001 {
			t.Fatalf("expected number preserved as 1001, got %d", again.OrderNumber)
		}
		if again.Description != "v2" {
			t.Fatalf("expected record overwritten, got %q", again.Description)
		}

		all, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("expected one stored order, got %d", len(all))
		}
	})

	t.Run("numbering continues past imported gaps", func(t *testing.T) {
		repo := NewServiceOrderRepository(NewMemoryBlobStore())

		if err := repo.ReplaceAll(ctx, []entities.ServiceOrder{
			{ID: "os-1", OrderNumber: 1001},
			{ID: "os-7", OrderNumber: 1044},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		saved, err := repo.Upsert(ctx, entities.ServiceOrder{ID: "os-new"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.OrderNumber != 1045 {
			t.Fatalf("expected max+1 = 1045, got %d", saved.OrderNumber)
		}
	})
}

func TestServiceOrderRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderRepository(NewMemoryBlobStore())

	if _, err := repo.Upsert(ctx, entities.ServiceOrder{ID: "os-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.GetByID(ctx, "os-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "os-1" {
		t.Fatalf("expected os-1, got %q", found.ID)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value for unknown id, got %+v", missing)
	}
}
