package memory

import (
	"context"

	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"
)

type companyKeyRepository struct {
	acc accessor
}

func (r *companyKeyRepository) FindByKey(_ context.Context, key string) (*entity.CompanyKey, error) {
	var found *entity.CompanyKey
	err := r.acc.read(func(st *state) error {
		k, ok := st.companyKeys[key]
		if !ok {
			return repository.ErrCompanyKeyNotFound
		}
		found = &k

		return nil
	})

	return found, err
}
