// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// Exactly one of StudentProfile or RecruiterProfile is set, matching Role.
type User struct {
	ID               uuid.UUID         `json:"id"`
	Email            string            `json:"email"`
	PasswordHash     string            `json:"-"`
	Role             Role              `json:"role"`
	Name             string            `json:"name"`
	StudentProfile   *StudentProfile   `json:"student_profile,omitempty"`
	RecruiterProfile *RecruiterProfile `json:"recruiter_profile,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// StudentProfile holds data specific to the student role. It is only ever
// mutated by the owning student.
type StudentProfile struct {
	UserID            uuid.UUID `json:"user_id"`
	School            string    `json:"school"`
	Major             string    `json:"major"`
	SecondaryMajor    string    `json:"secondary_major"`
	GPA               *float64  `json:"gpa"`
	GraduationYear    string    `json:"graduation_year"`
	YearEntered       string    `json:"year_entered"`
	VisaStatus        []string  `json:"visa_status"`
	Phone             string    `json:"phone"`
	Location          string    `json:"location"`
	Skills            string    `json:"skills"`
	Experience        string    `json:"experience"`
	Projects          string    `json:"projects"`
	CyclesAvailable   []string  `json:"cycles_available"`
	ConsecutiveCycles *int      `json:"consecutive_cycles"`
	FullTimeEligible  bool      `json:"full_time_eligible"`
	ResumeURL         string    `json:"resume_url"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RecruiterProfile holds data specific to the recruiter role. It is fixed at signup.
type RecruiterProfile struct {
	UserID     uuid.UUID `json:"user_id"`
	Company    string    `json:"company"`
	CompanyKey string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasProfileFor reports whether the user carries the profile that its role requires.
func (u *User) HasProfileFor(role Role) bool {
	switch role {
	case RoleStudent:
		return u.StudentProfile != nil
	case RoleRecruiter:
		return u.RecruiterProfile != nil
	default:
		return false
	}
}
