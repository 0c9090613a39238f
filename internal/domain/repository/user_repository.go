// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"recruit/internal/domain/entity"
	"recruit/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Users are always loaded together with the profile matching their role.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account is registered for email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the user row only. ID and timestamps are filled in on success.
	Create(ctx context.Context, user *entity.User) error

	// CreateStudentProfile inserts the profile row bound to profile.UserID.
	CreateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error

	// CreateRecruiterProfile inserts the profile row bound to profile.UserID.
	CreateRecruiterProfile(ctx context.Context, profile *entity.RecruiterProfile) error

	// UpdateStudentProfile overwrites the mutable fields of an existing student profile.
	UpdateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error

	// ListStudents returns every student user with its profile, oldest account first.
	ListStudents(ctx context.Context) ([]*entity.User, error)
}
