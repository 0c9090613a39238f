package usecase

import (
	"context"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateStudentProfileInput is a partial profile update; nil fields are left unchanged.
type UpdateStudentProfileInput struct {
	School            *string  `json:"school,omitempty" validate:"omitempty,max=255"`
	Major             *string  `json:"major,omitempty"`
	SecondaryMajor    *string  `json:"secondary_major,omitempty"`
	GPA               *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	// ClearGPA removes a stored GPA. It cannot be combined with GPA.
	ClearGPA bool `json:"clear_gpa,omitempty" validate:"excluded_with=GPA"`
	GraduationYear    *string  `json:"graduation_year,omitempty"`
	YearEntered       *string  `json:"year_entered,omitempty" validate:"omitempty,max=16"`
	VisaStatus        []string `json:"visa_status,omitempty"`
	Phone             *string  `json:"phone,omitempty" validate:"omitempty,max=32"`
	Location          *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Skills            *string  `json:"skills,omitempty"`
	Experience        *string  `json:"experience,omitempty"`
	Projects          *string  `json:"projects,omitempty"`
	CyclesAvailable   []string `json:"cycles_available,omitempty" validate:"omitempty,dive,max=64"`
	ConsecutiveCycles *int     `json:"consecutive_cycles,omitempty" validate:"omitempty,gte=0"`
	FullTimeEligible  *bool    `json:"full_time_eligible,omitempty"`
}

// ProfileUsecase manages the student's own profile and resume.
type ProfileUsecase interface {
	GetStudentProfile(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, userID uuid.UUID, input *UpdateStudentProfileInput) (*entity.StudentProfile, error)
	UploadResume(ctx context.Context, userID uuid.UUID, fileName string, size int64) (*entity.StudentProfile, error)
	ResumeQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
