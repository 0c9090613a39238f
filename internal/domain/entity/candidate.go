package entity

import "github.com/google/uuid"

// Candidate is a student as seen in the recruiter directory: identity fields
// merged with the student profile.
type Candidate struct {
	UserID  uuid.UUID      `json:"user_id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Profile StudentProfile `json:"profile"`
}

// NewCandidate merges a student user with its profile. Users without a
// student profile yield a candidate with an empty profile.
func NewCandidate(user *User) Candidate {
	candidate := Candidate{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
	if user.StudentProfile != nil {
		candidate.Profile = *user.StudentProfile
	}

	return candidate
}

// GPAOrZero returns the candidate's GPA, treating a missing value as 0.
func (c Candidate) GPAOrZero() float64 {
	if c.Profile.GPA == nil {
		return 0
	}

	return *c.Profile.GPA
}
