// Package ledger holds the pure line-item operations used while an order
// is being composed or edited. Everything here works on copies: nothing
// in this package touches the store.
package ledger

import "os_pro/internal/domain/entities"

// Resolve materializes a line-item snapshot for a catalog id. The
// returned ok is false when the id is not in the catalog; callers treat
// that as a no-op, since catalog entries may have been deleted after
// being referenced elsewhere.
func Resolve(catalog []entities.CatalogItem, itemID string) (entities.OrderLineItem, bool) {
	for _, item := range catalog {
		if item.ID == itemID {
			return entities.OrderLineItem{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  1,
				UnitPrice: item.Price,
				Total:     item.Price,
			}, true
		}
	}
	return entities.OrderLineItem{}, false
}

// AddOrIncrement adds a snapshot of item to the working set, or bumps
// the quantity by one when the item is already present. The unit price
// of an existing line is kept as captured at add time.
func AddOrIncrement(items []entities.OrderLineItem, item entities.CatalogItem) []entities.OrderLineItem {
	for i := range items {
		if items[i].ItemID == item.ID {
			items[i].Quantity++
			items[i].Total = items[i].UnitPrice.Mul(items[i].Quantity)
			return items
		}
	}
	return append(items, entities.OrderLineItem{
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  1,
		UnitPrice: item.Price,
		Total:     item.Price,
	})
}

// SetQuantity updates a line's quantity and recomputes its total.
// Quantities below one are rejected as a no-op: removal is an explicit
// operation, never expressible through qty=0.
func SetQuantity(items []entities.OrderLineItem, itemID string, qty int) []entities.OrderLineItem {
	if qty < 1 {
		return items
	}
	for i := range items {
		if items[i].ItemID == itemID {
			items[i].Quantity = qty
			items[i].Total = items[i].UnitPrice.Mul(qty)
			return items
		}
	}
	return items
}

// Remove deletes the line with the matching item id, if present.
func Remove(items []entities.OrderLineItem, itemID string) []entities.OrderLineItem {
	out := items[:0]
	for _, li := range items {
		if li.ItemID != itemID {
			out = append(out, li)
		}
	}
	return out
}

// Normalize recomputes every line total from quantity × unit price,
// repairing any drift a caller may have introduced.
func Normalize(items []entities.OrderLineItem) []entities.OrderLineItem {
	for i := range items {
		items[i].Total = items[i].UnitPrice.Mul(items[i].Quantity)
	}
	return items
}

// ComputeTotal sums every line total. The order lifecycle recomputes
// this at save time instead of trusting a caller-supplied amount.
func ComputeTotal(items []entities.OrderLineItem) entities.Money {
	var total entities.Money
	for _, li := range items {
		total += li.Total
	}
	return total
}
