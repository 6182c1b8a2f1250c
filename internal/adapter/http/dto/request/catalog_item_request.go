package request

import "os_pro/internal/domain/entities"

type CatalogItemRequest struct {
	ID          string         `json:"id"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       entities.Money `json:"price"`
	Type        string         `json:"type"`
}

func (r CatalogItemRequest) ToEntity() entities.CatalogItem {
	return entities.CatalogItem{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Type:        entities.CatalogItemType(r.Type),
	}
}
