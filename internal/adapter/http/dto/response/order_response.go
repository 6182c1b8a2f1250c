package response

import (
	"time"

	"os_pro/internal/domain/entities"
)

type OrderLineItemResponse struct {
	ItemID    string         `json:"itemId"`
	Name      string         `json:"name"`
	Quantity  int            `json:"quantity"`
	UnitPrice entities.Money `json:"unitPrice"`
	Total     entities.Money `json:"total"`
}

type OrderResponse struct {
	ID             string                  `json:"id"`
	OrderNumber    int                     `json:"orderNumber"`
	CustomerID     string                  `json:"customerId"`
	CustomerName   string                  `json:"customerName"`
	Status         string                  `json:"status"`
	Items          []OrderLineItemResponse `json:"items"`
	Description    string                  `json:"description"`
	TotalAmount    entities.Money          `json:"totalAmount"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	TechnicalNotes string                  `json:"technicalNotes,omitempty"`
}

func FromOrder(os entities.ServiceOrder) OrderResponse {
	items := make([]OrderLineItemResponse, 0, len(os.Items))
	for _, li := range os.Items {
		items = append(items, OrderLineItemResponse{
			ItemID:    li.ItemID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     li.Total,
		})
	}
	return OrderResponse{
		ID:             os.ID,
		OrderNumber:    os.OrderNumber,
		CustomerID:     os.CustomerID,
		CustomerName:   os.CustomerName,
		Status:         string(os.Status),
		Items:          items,
		Description:    os.Description,
		TotalAmount:    os.TotalAmount,
		CreatedAt:      os.CreatedAt,
		UpdatedAt:      os.UpdatedAt,
		TechnicalNotes: os.TechnicalNotes,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, os := range orders {
		out = append(out, FromOrder(os))
	}
	return out
}

// ShareResponse carries the WhatsApp hand-off payload.
type ShareResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type AdvisoryResponse struct {
	Text string `json:"text"`
}
