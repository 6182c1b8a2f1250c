package usecase

import (
	"context"
	"testing"

	"os_pro/internal/domain/entities"
	mock_interfaces "os_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCompanyUseCase_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		listener := mock_interfaces.NewMockIChangeListener(ctrl)
		uc := NewCompanyUseCase(repo, listener)

		repo.EXPECT().Save(gomock.Any(), entities.CompanyProfile{Name: entities.DefaultCompanyName, Phone: "1133334444"}).Return(nil)
		listener.EXPECT().DataChanged(ChangedCompany)

		saved, err := uc.Save(ctx, entities.CompanyProfile{Name: "   ", Phone: "1133334444"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Name != entities.DefaultCompanyName {
			t.Fatalf("expected default name, got %q", saved.Name)
		}
	})

	t.Run("save and notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		listener := mock_interfaces.NewMockIChangeListener(ctrl)
		uc := NewCompanyUseCase(repo, listener)

		repo.EXPECT().Save(gomock.Any(), entities.CompanyProfile{Name: "Oficina X"}).Return(nil)
		listener.EXPECT().DataChanged(ChangedCompany)

		saved, err := uc.Save(ctx, entities.CompanyProfile{Name: "Oficina X"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Name != "Oficina X" {
			t.Fatalf("unexpected profile: %+v", saved)
		}
	})
}
