package model

import (
	"time"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// HiringRecordModel mirrors the 'hiring_records' table.
type HiringRecordModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentEmail  string    `gorm:"type:varchar(255);not null;index"`
	StudentName   string    `gorm:"type:varchar(100);not null"`
	RecruiterID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Company       string    `gorm:"type:varchar(255);not null"`
	PositionTitle string    `gorm:"type:varchar(255);not null"`
	Cycle         string    `gorm:"type:varchar(64)"`
	HireDate      time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(32);not null"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (HiringRecordModel) TableName() string {
	return "hiring_records"
}

// FromHiringRecord builds the row for a hiring record.
func FromHiringRecord(r *entity.HiringRecord) *HiringRecordModel {
	return &HiringRecordModel{
		ID:            r.ID,
		StudentEmail:  r.StudentEmail,
		StudentName:   r.StudentName,
		RecruiterID:   r.RecruiterID,
		Company:       r.Company,
		PositionTitle: r.PositionTitle,
		Cycle:         r.Cycle,
		HireDate:      r.HireDate,
		Status:        string(r.Status),
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToDomain converts the row into an entity.
func (m *HiringRecordModel) ToDomain() *entity.HiringRecord {
	return &entity.HiringRecord{
		ID:            m.ID,
		StudentEmail:  m.StudentEmail,
		StudentName:   m.StudentName,
		RecruiterID:   m.RecruiterID,
		Company:       m.Company,
		PositionTitle: m.PositionTitle,
		Cycle:         m.Cycle,
		HireDate:      m.HireDate,
		Status:        entity.HiringStatus(m.Status),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
