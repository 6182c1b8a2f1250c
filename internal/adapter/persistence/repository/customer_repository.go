package repository

import (
	"context"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

// CustomerRepository persists the customer collection as one blob.
type CustomerRepository struct {
	store BlobStore
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(store BlobStore) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]entities.Customer, error) {
	customers, _, err := readCollection[entities.Customer](ctx, r.store, CollectionCustomers)
	return customers, err
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return entities.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Customer{}, nil
}

func (r *CustomerRepository) Upsert(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return entities.Customer{}, err
	}

	replaced := false
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		customers = append(customers, c)
	}

	if err := writeCollection(ctx, r.store, CollectionCustomers, customers); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := customers[:0]
	for _, c := range customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return writeCollection(ctx, r.store, CollectionCustomers, kept)
}

func (r *CustomerRepository) ReplaceAll(ctx context.Context, customers []entities.Customer) error {
	return writeCollection(ctx, r.store, CollectionCustomers, customers)
}
