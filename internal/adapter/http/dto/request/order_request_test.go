package request

import (
	"testing"

	"os_pro/internal/domain/entities"
)

func TestOrderRequest_ToEntity(t *testing.T) {
	t.Run("maps fields", func(t *testing.T) {
		r := OrderRequest{
			ID:          "os-1",
			CustomerID:  "c-1",
			Status:      "EM ANDAMENTO",
			Description: "Barulho no motor",
			Items: []OrderLineItemRequest{
				{ItemID: "1", Name: "Mão de Obra Básica", Quantity: 2, UnitPrice: entities.Cents(15000)},
			},
		}

		os := r.ToEntity()
		if os.ID != "os-1" || os.CustomerID != "c-1" {
			t.Fatalf("unexpected entity: %+v", os)
		}
		if os.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected status: %q", os.Status)
		}
		if len(os.Items) != 1 || os.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %+v", os.Items)
		}
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		r := OrderRequest{
			CustomerID: "c-1",
			Items:      []OrderLineItemRequest{{ItemID: "1", UnitPrice: entities.Cents(15000)}},
		}

		os := r.ToEntity()
		if os.Items[0].Quantity != 1 {
			t.Fatalf("expected default qty 1, got %d", os.Items[0].Quantity)
		}
	})

	t.Run("line totals are left for the lifecycle", func(t *testing.T) {
		r := OrderRequest{
			CustomerID: "c-1",
			Items:      []OrderLineItemRequest{{ItemID: "1", Quantity: 3, UnitPrice: entities.Cents(15000)}},
		}

		os := r.ToEntity()
		if os.Items[0].Total != 0 || os.TotalAmount != 0 {
			t.Fatalf("expected totals untouched, got %+v", os)
		}
	})
}
