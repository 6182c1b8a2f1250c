package usecase

import (
	"context"
	"errors"
	"testing"

	"os_pro/internal/domain/entities"
	mock_interfaces "os_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		if _, err := uc.Save(ctx, entities.Customer{Name: "   "}); !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("new customer gets an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		listener := mock_interfaces.NewMockIChangeListener(ctrl)
		uc := NewCustomerUseCase(repo, listener)

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected id assigned before upsert")
				}
				return c, nil
			})
		listener.EXPECT().DataChanged(ChangedCustomers)

		saved, err := uc.Save(ctx, entities.Customer{Name: "  Ana  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Name != "Ana" {
			t.Fatalf("expected trimmed name, got %q", saved.Name)
		}
	})

	t.Run("existing id is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		listener := mock_interfaces.NewMockIChangeListener(ctrl)
		uc := NewCustomerUseCase(repo, listener)

		repo.EXPECT().Upsert(gomock.Any(), entities.Customer{ID: "c-1", Name: "Ana"}).Return(entities.Customer{ID: "c-1", Name: "Ana"}, nil)
		listener.EXPECT().DataChanged(ChangedCustomers)

		saved, err := uc.Save(ctx, entities.Customer{ID: "c-1", Name: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != "c-1" {
			t.Fatalf("expected id preserved, got %q", saved.ID)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		if _, err := uc.GetByID(ctx, " "); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Customer{}, nil)

		if _, err := uc.GetByID(ctx, "c-404"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	listener := mock_interfaces.NewMockIChangeListener(ctrl)
	uc := NewCustomerUseCase(repo, listener)

	repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
	listener.EXPECT().DataChanged(ChangedCustomers)

	if err := uc.Delete(ctx, "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
