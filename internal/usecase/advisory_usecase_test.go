package usecase

import (
	"context"
	"errors"
	"testing"

	"os_pro/internal/domain/entities"
	mock_interfaces "os_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func advisoryFixture(ctrl *gomock.Controller) (*AdvisoryUseCase, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIAdvisoryGateway) {
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	items := mock_interfaces.NewMockICatalogItemRepository(ctrl)
	gateway := mock_interfaces.NewMockIAdvisoryGateway(ctrl)
	uc := NewAdvisoryUseCase(NewOrderUseCase(orders, customers, items, nil), gateway)
	return uc, orders, gateway
}

func TestAdvisoryUseCase_SummarizeOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown order still errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _ := advisoryFixture(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "os-404").Return(entities.ServiceOrder{}, nil)

		if _, err := uc.SummarizeOrder(ctx, "os-404"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("gateway success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, gateway := advisoryFixture(ctrl)

		os := entities.ServiceOrder{ID: "os-1", OrderNumber: 1001}
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(os, nil)
		gateway.EXPECT().SummarizeOrder(gomock.Any(), os).Return("Resumo do serviço.", nil)

		summary, err := uc.SummarizeOrder(ctx, "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary != "Resumo do serviço." {
			t.Fatalf("unexpected summary: %q", summary)
		}
	})

	t.Run("gateway failure degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, gateway := advisoryFixture(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		gateway.EXPECT().SummarizeOrder(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		summary, err := uc.SummarizeOrder(ctx, "os-1")
		if err != nil {
			t.Fatalf("expected fallback, got error %v", err)
		}
		if summary != FallbackSummary {
			t.Fatalf("expected fallback summary, got %q", summary)
		}
	})

	t.Run("blank gateway output degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, gateway := advisoryFixture(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		gateway.EXPECT().SummarizeOrder(gomock.Any(), gomock.Any()).Return("   ", nil)

		summary, err := uc.SummarizeOrder(ctx, "os-1")
		if err != nil {
			t.Fatalf("expected fallback, got error %v", err)
		}
		if summary != FallbackSummary {
			t.Fatalf("expected fallback summary, got %q", summary)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		items := mock_interfaces.NewMockICatalogItemRepository(ctrl)
		uc := NewAdvisoryUseCase(NewOrderUseCase(orders, customers, items, nil), nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)

		summary, err := uc.SummarizeOrder(ctx, "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary != FallbackSummary {
			t.Fatalf("expected fallback summary, got %q", summary)
		}
	})
}

func TestAdvisoryUseCase_SuggestFix(t *testing.T) {
	ctx := context.Background()

	t.Run("empty problem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := advisoryFixture(ctrl)

		if _, err := uc.SuggestFix(ctx, "   "); !errors.Is(err, ErrEmptyProblem) {
			t.Fatalf("expected ErrEmptyProblem, got %v", err)
		}
	})

	t.Run("gateway success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, gateway := advisoryFixture(ctrl)

		gateway.EXPECT().SuggestFix(gomock.Any(), "Barulho no motor").Return("Verificar correia.", nil)

		suggestion, err := uc.SuggestFix(ctx, "Barulho no motor")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if suggestion != "Verificar correia." {
			t.Fatalf("unexpected suggestion: %q", suggestion)
		}
	})

	t.Run("gateway failure degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, gateway := advisoryFixture(ctrl)

		gateway.EXPECT().SuggestFix(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

		suggestion, err := uc.SuggestFix(ctx, "Barulho no motor")
		if err != nil {
			t.Fatalf("expected fallback, got error %v", err)
		}
		if suggestion != FallbackSuggestion {
			t.Fatalf("expected fallback suggestion, got %q", suggestion)
		}
	})
}
