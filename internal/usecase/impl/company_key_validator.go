package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/errors"
	"recruit/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/text/cases"
)

type companyKeyValidator struct {
	keyRepo repository.CompanyKeyRepository
	logger  *slog.Logger
}

// CompanyKeyValidatorParams holds dependencies for the validator, injected by Fx.
type CompanyKeyValidatorParams struct {
	fx.In

	KeyRepo repository.CompanyKeyRepository
	Logger  *slog.Logger
}

// NewCompanyKeyValidator returns a read-only validator over the key registry.
func NewCompanyKeyValidator(params CompanyKeyValidatorParams) usecase.CompanyKeyValidator {
	return &companyKeyValidator{
		keyRepo: params.KeyRepo,
		logger:  params.Logger,
	}
}

// Validate checks the key length before any lookup, then the registry
// entry, then the company name using Unicode case folding.
func (v *companyKeyValidator) Validate(ctx context.Context, key, claimedCompany string) error {
	if len(key) != entity.CompanyKeyLength {
		return domainerrors.ErrCompanyKeyLength
	}

	entry, err := v.keyRepo.FindByKey(ctx, key)
	if errors.Is(err, repository.ErrCompanyKeyNotFound) {
		deliverycontext.GetLoggerOrDefault(ctx, v.logger).Warn("Unknown company key presented")

		return domainerrors.ErrInvalidCompanyKey
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up company key")
	}

	if !sameCompany(entry.Company, claimedCompany) {
		return domainerrors.ErrCompanyMismatch
	}

	return nil
}

// sameCompany compares names ignoring case and surrounding blanks.
// A Caser is stateful, so each call gets its own.
func sameCompany(registered, claimed string) bool {
	fold := cases.Fold()
	a := fold.String(strings.TrimSpace(registered))
	b := fold.String(strings.TrimSpace(claimed))

	return a == b
}
