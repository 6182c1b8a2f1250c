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
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomerName = errors.New("customer name is required")
)

type ICustomerUseCase interface {
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
	listener  interfaces.IChangeListener
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(customers interfaces.ICustomerRepository, listener interfaces.IChangeListener) *CustomerUseCase {
	if listener == nil {
		listener = interfaces.NoopChangeListener{}
	}
	return &CustomerUseCase{customers: customers, listener: listener}
}

func (u *CustomerUseCase) Save(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	saved, err := u.customers.Upsert(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.listener.DataChanged(ChangedCustomers)
	return saved, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.customers.GetAll(ctx)
}

// Delete removes a customer. Orders referencing it are untouched: they
// keep the denormalized customer name captured when they were saved.
func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	if err := u.customers.Delete(ctx, id); err != nil {
		return err
	}
	u.listener.DataChanged(ChangedCustomers)
	return nil
}
