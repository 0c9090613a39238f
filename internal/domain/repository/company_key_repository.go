package repository

import (
	"context"

	"recruit/internal/domain/entity"
	"recruit/internal/errors"
)

// ErrCompanyKeyNotFound is returned when no registry entry has the given key.
var ErrCompanyKeyNotFound = errors.New("company key not found")

// CompanyKeyRepository is the read-only view of the company key registry.
type CompanyKeyRepository interface {
	// FindByKey returns the entry whose key matches exactly.
	FindByKey(ctx context.Context, key string) (*entity.CompanyKey, error)
}
