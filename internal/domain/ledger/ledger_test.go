package ledger

import (
	"testing"

	"os_pro/internal/domain/entities"
)

func testCatalog() []entities.CatalogItem {
	return []entities.CatalogItem{
		{ID: "1", Name: "Mão de Obra Básica", Price: entities.Cents(15000), Type: entities.CatalogItemTypeService},
		{ID: "2", Name: "Limpeza de Sistema", Price: entities.Cents(8000), Type: entities.CatalogItemTypeService},
	}
}

func TestResolve(t *testing.T) {
	t.Run("known item", func(t *testing.T) {
		li, ok := Resolve(testCatalog(), "1")
		if !ok {
			t.Fatalf("expected item to resolve")
		}
		if li.Name != "Mão de Obra Básica" || li.Quantity != 1 || li.UnitPrice != entities.Cents(15000) || li.Total != entities.Cents(15000) {
			t.Fatalf("unexpected snapshot: %+v", li)
		}
	})

	t.Run("unknown item is a soft miss", func(t *testing.T) {
		if _, ok := Resolve(testCatalog(), "missing"); ok {
			t.Fatalf("expected unknown id to not resolve")
		}
	})
}

func TestAddOrIncrement(t *testing.T) {
	catalog := testCatalog()

	items := AddOrIncrement(nil, catalog[0])
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected one line with qty 1, got %+v", items)
	}

	items = AddOrIncrement(items, catalog[0])
	if len(items) != 1 {
		t.Fatalf("expected same line to be bumped, got %d lines", len(items))
	}
	if items[0].Quantity != 2 || items[0].Total != entities.Cents(30000) {
		t.Fatalf("expected qty 2 total 30000, got %+v", items[0])
	}

	items = AddOrIncrement(items, catalog[1])
	if len(items) != 2 {
		t.Fatalf("expected second line appended, got %d lines", len(items))
	}
}

func TestSetQuantity(t *testing.T) {
	items := AddOrIncrement(nil, testCatalog()[0])

	items = SetQuantity(items, "1", 3)
	if items[0].Quantity != 3 || items[0].Total != entities.Cents(45000) {
		t.Fatalf("expected qty 3 total 45000, got %+v", items[0])
	}

	t.Run("quantity below one is rejected", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			out := SetQuantity(items, "1", qty)
			if out[0].Quantity != 3 {
				t.Fatalf("expected qty to stay 3 for qty=%d, got %d", qty, out[0].Quantity)
			}
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		out := SetQuantity(items, "missing", 5)
		if len(out) != 1 || out[0].Quantity != 3 {
			t.Fatalf("unexpected mutation: %+v", out)
		}
	})
}

func TestRemove(t *testing.T) {
	catalog := testCatalog()
	items := AddOrIncrement(AddOrIncrement(nil, catalog[0]), catalog[1])

	items = Remove(items, "1")
	if len(items) != 1 || items[0].ItemID != "2" {
		t.Fatalf("expected only item 2 left, got %+v", items)
	}

	items = Remove(items, "missing")
	if len(items) != 1 {
		t.Fatalf("expected no-op for unknown id, got %+v", items)
	}
}

func TestNormalizeAndComputeTotal(t *testing.T) {
	items := []entities.OrderLineItem{
		{ItemID: "1", Quantity: 2, UnitPrice: entities.Cents(15000), Total: entities.Cents(1)},
		{ItemID: "2", Quantity: 1, UnitPrice: entities.Cents(8000)},
	}

	items = Normalize(items)
	if items[0].Total != entities.Cents(30000) {
		t.Fatalf("expected drifted total repaired to 30000, got %d", items[0].Total)
	}
	if items[1].Total != entities.Cents(8000) {
		t.Fatalf("expected total 8000, got %d", items[1].Total)
	}

	if total := ComputeTotal(items); total != entities.Cents(38000) {
		t.Fatalf("expected order total 38000, got %d", total)
	}

	if total := ComputeTotal(nil); total != 0 {
		t.Fatalf("expected empty total 0, got %d", total)
	}
}
