package entity

import (
	"time"

	"github.com/google/uuid"
)

// HiringStatus is the state of a hiring record.
type HiringStatus string

const (
	HiringStatusHired         HiringStatus = "hired"
	HiringStatusOfferExtended HiringStatus = "offer_extended"
	HiringStatusDeclined      HiringStatus = "declined"
	HiringStatusWithdrawn     HiringStatus = "withdrawn"
)

// IsValid checks if the status is one of the known values.
func (s HiringStatus) IsValid() bool {
	switch s {
	case HiringStatusHired, HiringStatusOfferExtended, HiringStatusDeclined, HiringStatusWithdrawn:
		return true
	default:
		return false
	}
}

// HiringRecord is one hire event. StudentEmail and StudentName are a snapshot
// taken when the record is written, not a reference to the student's user row,
// so later profile edits do not rewrite history.
type HiringRecord struct {
	ID            uuid.UUID    `json:"id"`
	StudentEmail  string       `json:"student_email"`
	StudentName   string       `json:"student_name"`
	RecruiterID   uuid.UUID    `json:"recruiter_id"`
	Company       string       `json:"company"`
	PositionTitle string       `json:"position_title,omitempty"`
	Cycle         string       `json:"cycle"`
	HireDate      time.Time    `json:"hire_date"`
	Status        HiringStatus `json:"status"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
