package repository

import (
	"context"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

// CatalogItemRepository persists the product/service catalog.
//
// An absent collection reads as the two seed services shipped with the
// legacy app, without persisting them: the seed only materializes in
// the store once the first catalog write happens.
type CatalogItemRepository struct {
	store BlobStore
}

var _ interfaces.ICatalogItemRepository = (*CatalogItemRepository)(nil)

func NewCatalogItemRepository(store BlobStore) *CatalogItemRepository {
	return &CatalogItemRepository{store: store}
}

func seedCatalogItems() []entities.CatalogItem {
	return []entities.CatalogItem{
		{ID: "1", Name: "Mão de Obra Básica", Description: "Serviço padrão", Price: entities.Cents(15000), Type: entities.CatalogItemTypeService},
		{ID: "2", Name: "Limpeza de Sistema", Description: "Limpeza geral", Price: entities.Cents(8000), Type: entities.CatalogItemTypeService},
	}
}

func (r *CatalogItemRepository) GetAll(ctx context.Context) ([]entities.CatalogItem, error) {
	items, found, err := readCollection[entities.CatalogItem](ctx, r.store, CollectionItems)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedCatalogItems(), nil
	}
	return items, nil
}

func (r *CatalogItemRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return entities.CatalogItem{}, nil
}

func (r *CatalogItemRepository) Upsert(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return entities.CatalogItem{}, err
	}

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := writeCollection(ctx, r.store, CollectionItems, items); err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogItemRepository) Delete(ctx context.Context, id string) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return writeCollection(ctx, r.store, CollectionItems, kept)
}

func (r *CatalogItemRepository) ReplaceAll(ctx context.Context, items []entities.CatalogItem) error {
	return writeCollection(ctx, r.store, CollectionItems, items)
}
