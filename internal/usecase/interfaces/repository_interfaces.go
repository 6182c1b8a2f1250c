package interfaces

import (
	"context"

	"os_pro/internal/domain/entities"
)

// The repositories abstract the record store. Lookups return the zero
// value (empty ID) when no record matches; storage failures, including
// corrupt persisted JSON, surface as errors.

type ICustomerRepository interface {
	GetAll(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Upsert(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, customers []entities.Customer) error
}

type ICatalogItemRepository interface {
	GetAll(ctx context.Context) ([]entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	Upsert(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []entities.CatalogItem) error
}

// IServiceOrderRepository persists service orders. Upsert on an unknown
// id assigns the next order number (1001 when the collection is empty);
// it is the only producer of order numbers. Orders are never deleted.
type IServiceOrderRepository interface {
	GetAll(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Upsert(ctx context.Context, os entities.ServiceOrder) (entities.ServiceOrder, error)
	ReplaceAll(ctx context.Context, orders []entities.ServiceOrder) error
}

// ICompanyRepository persists the singleton company profile. Get falls
// back to the default profile when nothing was saved yet.
type ICompanyRepository interface {
	Get(ctx context.Context) (entities.CompanyProfile, error)
	Save(ctx context.Context, p entities.CompanyProfile) error
}
