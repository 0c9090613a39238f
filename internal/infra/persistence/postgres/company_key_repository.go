package postgres

import (
	"context"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/errors"
	"recruit/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type companyKeyRepository struct {
	db *gorm.DB
}

// NewCompanyKeyRepository returns a CompanyKeyRepository bound to db.
func NewCompanyKeyRepository(db *gorm.DB) repository.CompanyKeyRepository {
	return &companyKeyRepository{db: db}
}

func (repo *companyKeyRepository) FindByKey(ctx context.Context, key string) (*entity.CompanyKey, error) {
	var keyM model.CompanyKeyModel
	if err := repo.db.WithContext(ctx).Where(`"key" = ?`, key).First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyKeyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find company key")
	}

	return keyM.ToDomain(), nil
}
