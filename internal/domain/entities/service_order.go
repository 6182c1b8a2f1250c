package entities

import "time"

// OrderStatus is the lifecycle state of a service order.
//
// The values are the Portuguese labels shown to operators and stored in
// the dataset. Any status can follow any other: the shop does not run a
// strict workflow, and re-opening a concluded or cancelled OS by saving
// it with another status is intentional behavior.
type OrderStatus string

const (
	OrderStatusOpen         OrderStatus = "ABERTA"
	OrderStatusInProgress   OrderStatus = "EM ANDAMENTO"
	OrderStatusPendingParts OrderStatus = "AGUARDANDO PEÇAS"
	OrderStatusCompleted    OrderStatus = "CONCLUÍDA"
	OrderStatusCancelled    OrderStatus = "CANCELADA"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusInProgress, OrderStatusPendingParts,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderLineItem is a quantity of a catalog item attached to an order.
//
// Name and UnitPrice are snapshots taken when the item was added; later
// catalog edits never touch them. Total must always equal
// Quantity × UnitPrice.
type OrderLineItem struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
	Total     Money  `json:"total"`
}

// ServiceOrder is the OS: a unit of billable work for a customer.
//
// OrderNumber is the human-facing sequence (1001, 1002, ...) assigned
// exactly once by the order repository on first save. CustomerName is a
// deliberate denormalized snapshot so historical orders keep displaying
// the name as it was even after the customer record changes or is
// deleted.
type ServiceOrder struct {
	ID             string          `json:"id"`
	OrderNumber    int             `json:"orderNumber"`
	CustomerID     string          `json:"customerId"`
	CustomerName   string          `json:"customerName"`
	Status         OrderStatus     `json:"status"`
	Items          []OrderLineItem `json:"items"`
	Description    string          `json:"description"`
	TotalAmount    Money           `json:"totalAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	TechnicalNotes string          `json:"technicalNotes,omitempty"`
}
