package repository

import (
	"context"
	"testing"

	"os_pro/internal/domain/entities"
)

func TestCatalogItemRepository_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("absent collection reads as the seed", func(t *testing.T) {
		store := NewMemoryBlobStore()
		repo := NewCatalogItemRepository(store)

		items, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 seed items, got %d", len(items))
		}
		if items[0].ID != "1" || items[0].Name != "Mão de Obra Básica" || items[0].Price != entities.Cents(15000) {
			t.Fatalf("unexpected first seed item: %+v", items[0])
		}
		if items[1].ID != "2" || items[1].Price != entities.Cents(8000) {
			t.Fatalf("unexpected second seed item: %+v", items[1])
		}

		// The seed is virtual until the first write.
		if _, found, _ := store.Get(ctx, CollectionItems); found {
			t.Fatalf("expected seed to not be persisted by a read")
		}
	})

	t.Run("seed materializes on first write", func(t *testing.T) {
		store := NewMemoryBlobStore()
		repo := NewCatalogItemRepository(store)

		if _, err := repo.Upsert(ctx, entities.CatalogItem{ID: "3", Name: "Troca de Óleo", Price: entities.Cents(12000), Type: entities.CatalogItemTypeService}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected seed plus new item, got %d", len(items))
		}
	})

	t.Run("empty stored collection does not resurrect the seed", func(t *testing.T) {
		store := NewMemoryBlobStore()
		repo := NewCatalogItemRepository(store)

		if err := repo.Delete(ctx, "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx, "2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty catalog to stay empty, got %+v", items)
		}
	})
}

func TestCatalogItemRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogItemRepository(NewMemoryBlobStore())

	if _, err := repo.Upsert(ctx, entities.CatalogItem{ID: "1", Name: "Renomeado", Price: entities.Cents(20000), Type: entities.CatalogItemTypeService}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Renomeado" || item.Price != entities.Cents(20000) {
		t.Fatalf("expected seed item replaced, got %+v", item)
	}
}
