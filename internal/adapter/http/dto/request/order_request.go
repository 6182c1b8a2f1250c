package request

import "os_pro/internal/domain/entities"

type OrderLineItemRequest struct {
	ItemID    string         `json:"itemId" binding:"required"`
	Name      string         `json:"name"`
	Quantity  int            `json:"quantity"`
	UnitPrice entities.Money `json:"unitPrice"`
}

// OrderRequest is the draft order submitted by the client. Totals are
// intentionally absent and line names/prices are advisory only: the
// lifecycle resolves snapshots from the catalog and recomputes totals
// server-side.
type OrderRequest struct {
	ID             string                 `json:"id"`
	CustomerID     string                 `json:"customerId" binding:"required"`
	Status         string                 `json:"status"`
	Description    string                 `json:"description"`
	TechnicalNotes string                 `json:"technicalNotes"`
	Items          []OrderLineItemRequest `json:"items"`
}

func (r OrderRequest) ToEntity() entities.ServiceOrder {
	items := make([]entities.OrderLineItem, 0, len(r.Items))
	for _, li := range r.Items {
		qty := li.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, entities.OrderLineItem{
			ItemID:    li.ItemID,
			Name:      li.Name,
			Quantity:  qty,
			UnitPrice: li.UnitPrice,
		})
	}
	return entities.ServiceOrder{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		Status:         entities.OrderStatus(r.Status),
		Description:    r.Description,
		TechnicalNotes: r.TechnicalNotes,
		Items:          items,
	}
}
