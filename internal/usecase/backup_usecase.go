package usecase

import (
	"context"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

type IBackupUseCase interface {
	Export(ctx context.Context) (entities.Backup, error)
	Import(ctx context.Context, b entities.Backup) error
}

// BackupUseCase serializes the full dataset to one document and
// restores from it. Export then import reconstructs every collection
// losslessly; import replaces collections wholesale.
type BackupUseCase struct {
	customers interfaces.ICustomerRepository
	orders    interfaces.IServiceOrderRepository
	items     interfaces.ICatalogItemRepository
	company   interfaces.ICompanyRepository
	listener  interfaces.IChangeListener
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(
	customers interfaces.ICustomerRepository,
	orders interfaces.IServiceOrderRepository,
	items interfaces.ICatalogItemRepository,
	company interfaces.ICompanyRepository,
	listener interfaces.IChangeListener,
) *BackupUseCase {
	if listener == nil {
		listener = interfaces.NoopChangeListener{}
	}
	return &BackupUseCase{
		customers: customers,
		orders:    orders,
		items:     items,
		company:   company,
		listener:  listener,
	}
}

func (u *BackupUseCase) Export(ctx context.Context) (entities.Backup, error) {
	customers, err := u.customers.GetAll(ctx)
	if err != nil {
		return entities.Backup{}, err
	}
	orders, err := u.orders.GetAll(ctx)
	if err != nil {
		return entities.Backup{}, err
	}
	items, err := u.items.GetAll(ctx)
	if err != nil {
		return entities.Backup{}, err
	}
	company, err := u.company.Get(ctx)
	if err != nil {
		return entities.Backup{}, err
	}

	if customers == nil {
		customers = []entities.Customer{}
	}
	if orders == nil {
		orders = []entities.ServiceOrder{}
	}
	if items == nil {
		items = []entities.CatalogItem{}
	}

	return entities.Backup{
		Customers:   customers,
		Orders:      orders,
		Items:       items,
		CompanyInfo: company,
	}, nil
}

func (u *BackupUseCase) Import(ctx context.Context, b entities.Backup) error {
	if err := u.customers.ReplaceAll(ctx, b.Customers); err != nil {
		return err
	}
	if err := u.orders.ReplaceAll(ctx, b.Orders); err != nil {
		return err
	}
	if err := u.items.ReplaceAll(ctx, b.Items); err != nil {
		return err
	}

	company := b.CompanyInfo
	if company.Name == "" {
		company = entities.DefaultCompanyProfile()
	}
	if err := u.company.Save(ctx, company); err != nil {
		return err
	}

	u.listener.DataChanged(ChangedCustomers)
	u.listener.DataChanged(ChangedOrders)
	u.listener.DataChanged(ChangedItems)
	u.listener.DataChanged(ChangedCompany)
	return nil
}
