package usecase

import (
	"context"
	"strings"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

type ICompanyUseCase interface {
	Get(ctx context.Context) (entities.CompanyProfile, error)
	Save(ctx context.Context, p entities.CompanyProfile) (entities.CompanyProfile, error)
}

type CompanyUseCase struct {
	company  interfaces.ICompanyRepository
	listener interfaces.IChangeListener
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(company interfaces.ICompanyRepository, listener interfaces.IChangeListener) *CompanyUseCase {
	if listener == nil {
		listener = interfaces.NoopChangeListener{}
	}
	return &CompanyUseCase{company: company, listener: listener}
}

func (u *CompanyUseCase) Get(ctx context.Context) (entities.CompanyProfile, error) {
	return u.company.Get(ctx)
}

func (u *CompanyUseCase) Save(ctx context.Context, p entities.CompanyProfile) (entities.CompanyProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = entities.DefaultCompanyName
	}

	if err := u.company.Save(ctx, p); err != nil {
		return entities.CompanyProfile{}, err
	}
	u.listener.DataChanged(ChangedCompany)
	return p, nil
}
