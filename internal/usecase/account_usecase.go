// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"recruit/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput is a registration request. Students must give a school,
// recruiters a company and its company key.
type SignUpInput struct {
	Role       entity.Role `validate:"required,oneof=student recruiter"`
	Email      string      `validate:"required,email,max=255"`
	Password   string      `validate:"required,max=72"`
	Name       string      `validate:"required,max=100"`
	School     string      `validate:"required_if=Role student,max=255"`
	Company    string      `validate:"required_if=Role recruiter,max=255"`
	CompanyKey string      `validate:"required_if=Role recruiter"`
	UserAgent  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email     string `validate:"required"`
	Password  string `validate:"required"`
	UserAgent string
}

// --- Output DTOs ---

// AuthOutput is returned by sign-up and login: the account plus a fresh session token.
type AuthOutput struct {
	Account   entity.Account
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase covers registration, login and session verification.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (entity.Account, error)
}

// CompanyKeyValidator checks a recruiter's company key against the registry.
type CompanyKeyValidator interface {
	Validate(ctx context.Context, key, claimedCompany string) error
}
