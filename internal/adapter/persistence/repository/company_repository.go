package repository

import (
	"context"

	"os_pro/internal/domain/entities"
	"os_pro/internal/usecase/interfaces"
)

// CompanyRepository persists the singleton company profile.
type CompanyRepository struct {
	store BlobStore
}

var _ interfaces.ICompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(store BlobStore) *CompanyRepository {
	return &CompanyRepository{store: store}
}

func (r *CompanyRepository) Get(ctx context.Context) (entities.CompanyProfile, error) {
	profile, found, err := readSingleton[entities.CompanyProfile](ctx, r.store, CollectionCompany)
	if err != nil {
		return entities.CompanyProfile{}, err
	}
	if !found {
		return entities.DefaultCompanyProfile(), nil
	}
	return profile, nil
}

func (r *CompanyRepository) Save(ctx context.Context, p entities.CompanyProfile) error {
	return writeSingleton(ctx, r.store, CollectionCompany, p)
}
