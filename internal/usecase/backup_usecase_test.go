package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"os_pro/internal/adapter/persistence/repository"
	"os_pro/internal/domain/entities"
	mock_interfaces "os_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func backupFixture(ctrl *gomock.Controller) (*BackupUseCase, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockICatalogItemRepository, *mock_interfaces.MockICompanyRepository, *mock_interfaces.MockIChangeListener) {
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	items := mock_interfaces.NewMockICatalogItemRepository(ctrl)
	company := mock_interfaces.NewMockICompanyRepository(ctrl)
	listener := mock_interfaces.NewMockIChangeListener(ctrl)
	uc := NewBackupUseCase(customers, orders, items, company, listener)
	return uc, customers, orders, items, company, listener
}

func TestBackupUseCase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("empty dataset exports empty slices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, items, company, _ := backupFixture(ctrl)

		customers.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		orders.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		items.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		company.EXPECT().Get(gomock.Any()).Return(entities.DefaultCompanyProfile(), nil)

		backup, err := uc.Export(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backup.Customers == nil || backup.Orders == nil || backup.Items == nil {
			t.Fatalf("expected empty slices, not nil: %+v", backup)
		}
		if backup.CompanyInfo.Name != entities.DefaultCompanyName {
			t.Fatalf("unexpected company: %+v", backup.CompanyInfo)
		}
	})

	t.Run("full dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, items, company, _ := backupFixture(ctrl)

		customers.EXPECT().GetAll(gomock.Any()).Return([]entities.Customer{{ID: "c-1", Name: "Ana"}}, nil)
		orders.EXPECT().GetAll(gomock.Any()).Return([]entities.ServiceOrder{{ID: "os-1", OrderNumber: 1001}}, nil)
		items.EXPECT().GetAll(gomock.Any()).Return([]entities.CatalogItem{{ID: "1", Name: "Mão de Obra Básica"}}, nil)
		company.EXPECT().Get(gomock.Any()).Return(entities.CompanyProfile{Name: "Oficina X"}, nil)

		backup, err := uc.Export(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(backup.Customers) != 1 || len(backup.Orders) != 1 || len(backup.Items) != 1 {
			t.Fatalf("unexpected backup: %+v", backup)
		}
	})

	t.Run("storage failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, _, _, _, _ := backupFixture(ctrl)

		customers.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("dynamo down"))

		if _, err := uc.Export(ctx); err == nil {
			t.Fatalf("expected error to surface")
		}
	})
}

func TestBackupUseCase_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, items, company, listener := backupFixture(ctrl)

		backup := entities.Backup{
			Customers:   []entities.Customer{{ID: "c-1", Name: "Ana"}},
			Orders:      []entities.ServiceOrder{{ID: "os-1", OrderNumber: 1001}},
			Items:       []entities.CatalogItem{{ID: "1", Name: "Mão de Obra Básica"}},
			CompanyInfo: entities.CompanyProfile{Name: "Oficina X"},
		}

		customers.EXPECT().ReplaceAll(gomock.Any(), backup.Customers).Return(nil)
		orders.EXPECT().ReplaceAll(gomock.Any(), backup.Orders).Return(nil)
		items.EXPECT().ReplaceAll(gomock.Any(), backup.Items).Return(nil)
		company.EXPECT().Save(gomock.Any(), backup.CompanyInfo).Return(nil)
		listener.EXPECT().DataChanged(ChangedCustomers)
		listener.EXPECT().DataChanged(ChangedOrders)
		listener.EXPECT().DataChanged(ChangedItems)
		listener.EXPECT().DataChanged(ChangedCompany)

		if err := uc.Import(ctx, backup); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing company falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, orders, items, company, listener := backupFixture(ctrl)

		customers.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
		orders.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
		items.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)
		company.EXPECT().Save(gomock.Any(), entities.DefaultCompanyProfile()).Return(nil)
		listener.EXPECT().DataChanged(gomock.Any()).Times(4)

		if err := uc.Import(ctx, entities.Backup{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage failure aborts before later writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, customers, _, _, _, _ := backupFixture(ctrl)

		customers.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		if err := uc.Import(ctx, entities.Backup{}); err == nil {
			t.Fatalf("expected error to surface")
		}
	})
}

type backupRepos struct {
	customers *repository.CustomerRepository
	orders    *repository.ServiceOrderRepository
	items     *repository.CatalogItemRepository
	company   *repository.CompanyRepository
}

func newBackupRepos() backupRepos {
	store := repository.NewMemoryBlobStore()
	return backupRepos{
		customers: repository.NewCustomerRepository(store),
		orders:    repository.NewServiceOrderRepository(store),
		items:     repository.NewCatalogItemRepository(store),
		company:   repository.NewCompanyRepository(store),
	}
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newBackupRepos()

	if _, err := source.customers.Upsert(ctx, entities.Customer{ID: "c-1", Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := source.items.Upsert(ctx, entities.CatalogItem{ID: "i-9", Name: "Troca de Óleo", Price: entities.Cents(12000), Type: entities.CatalogItemTypeService}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if _, err := source.orders.Upsert(ctx, entities.ServiceOrder{
		ID:           "os-1",
		CustomerID:   "c-1",
		CustomerName: "Ana",
		Status:       entities.OrderStatusOpen,
		Items: []entities.OrderLineItem{
			{ItemID: "i-9", Name: "Troca de Óleo", Quantity: 1, UnitPrice: entities.Cents(12000), Total: entities.Cents(12000)},
		},
		TotalAmount: entities.Cents(12000),
		CreatedAt:   saved,
		UpdatedAt:   saved,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := source.company.Save(ctx, entities.CompanyProfile{Name: "Oficina X"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exported, err := NewBackupUseCase(source.customers, source.orders, source.items, source.company, nil).Export(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target := newBackupRepos()
	if err := NewBackupUseCase(target.customers, target.orders, target.items, target.company, nil).Import(ctx, exported); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srcCustomers, _ := source.customers.GetAll(ctx)
	tgtCustomers, _ := target.customers.GetAll(ctx)
	if !reflect.DeepEqual(srcCustomers, tgtCustomers) {
		t.Fatalf("customers differ after round trip:\n%+v\n%+v", srcCustomers, tgtCustomers)
	}

	srcOrders, _ := source.orders.GetAll(ctx)
	tgtOrders, _ := target.orders.GetAll(ctx)
	if !reflect.DeepEqual(srcOrders, tgtOrders) {
		t.Fatalf("orders differ after round trip:\n%+v\n%+v", srcOrders, tgtOrders)
	}

	srcItems, _ := source.items.GetAll(ctx)
	tgtItems, _ := target.items.GetAll(ctx)
	if !reflect.DeepEqual(srcItems, tgtItems) {
		t.Fatalf("items differ after round trip:\n%+v\n%+v", srcItems, tgtItems)
	}

	srcCompany, _ := source.company.Get(ctx)
	tgtCompany, _ := target.company.Get(ctx)
	if !reflect.DeepEqual(srcCompany, tgtCompany) {
		t.Fatalf("company differs after round trip:\n%+v\n%+v", srcCompany, tgtCompany)
	}
}
