package response

import "os_pro/internal/domain/entities"

type CatalogItemResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       entities.Money `json:"price"`
	Type        string         `json:"type"`
}

func FromCatalogItem(item entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Type:        string(item.Type),
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromCatalogItem(item))
	}
	return out
}
