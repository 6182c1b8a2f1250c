package entities

// CatalogItemType distinguishes billable services from parts/products.
type CatalogItemType string

const (
	CatalogItemTypeService CatalogItemType = "SERVICE"
	CatalogItemTypeProduct CatalogItemType = "PRODUCT"
)

func (t CatalogItemType) Valid() bool {
	return t == CatalogItemTypeService || t == CatalogItemTypeProduct
}

// CatalogItem is a reusable product/service definition.
//
// Price is the current price only: order line items snapshot it at the
// moment they are added and are never re-priced afterwards.
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       Money           `json:"price"`
	Type        CatalogItemType `json:"type"`
}
