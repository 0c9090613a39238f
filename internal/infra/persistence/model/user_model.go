// Package model holds the GORM row types and their mapping to domain entities.
package model

import (
	"time"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates ids via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	StudentProfile   *StudentProfileModel   `gorm:"foreignKey:UserID"`
	RecruiterProfile *RecruiterProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FromUser builds the row for a user, without its profile.
func FromUser(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		Name:         u.Name,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToDomain converts the row, and any preloaded profile, into an entity.
func (m *UserModel) ToDomain() *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.StudentProfile != nil {
		user.StudentProfile = m.StudentProfile.ToDomain()
	}
	if m.RecruiterProfile != nil {
		user.RecruiterProfile = m.RecruiterProfile.ToDomain()
	}

	return user
}
