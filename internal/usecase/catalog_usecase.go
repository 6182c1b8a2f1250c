package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrInvalidItemID       = errors.New("invalid catalog item id")
	ErrInvalidItemName     = errors.New("catalog item name is required")
	ErrNegativeItemPrice   = errors.New("catalog item price cannot be negative")
	ErrInvalidItemType     = errors.New("invalid catalog item type")
)

type ICatalogUseCase interface {
	Save(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context) ([]entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	items    interfaces.ICatalogItemRepository
	listener interfaces.IChangeListener
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(items interfaces.ICatalogItemRepository, listener interfaces.IChangeListener) *CatalogUseCase {
	if listener == nil {
		listener = interfaces.NoopChangeListener{}
	}
	return &CatalogUseCase{items: items, listener: listener}
}

// Save stores a catalog item. Price changes never retroactively touch
// existing order line items, which snapshot prices at add time.
func (u *CatalogUseCase) Save(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return entities.CatalogItem{}, ErrInvalidItemName
	}
	if item.Price < 0 {
		return entities.CatalogItem{}, ErrNegativeItemPrice
	}
	if item.Type == "" {
		item.Type = entities.CatalogItemTypeService
	}
	if !item.Type.Valid() {
		return entities.CatalogItem{}, ErrInvalidItemType
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	saved, err := u.items.Upsert(ctx, item)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	u.listener.DataChanged(ChangedItems)
	return saved, nil
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidItemID
	}

	item, err := u.items.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return item, nil
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogItem, error) {
	return u.items.GetAll(ctx)
}

func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}

	if err := u.items.Delete(ctx, id); err != nil {
		return err
	}
	u.listener.DataChanged(ChangedItems)
	return nil
}
