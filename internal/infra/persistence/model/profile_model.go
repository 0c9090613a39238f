package model

import (
	"strings"
	"time"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// listSeparator joins token lists (visa statuses, cycles) into one text column.
// Visa tokens come from a fixed vocabulary and cycles are rejected on update
// when they contain the separator.
const listSeparator = ","

// StudentProfileModel mirrors the 'student_profiles' table. UserID references users.id.
type StudentProfileModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	School            string    `gorm:"type:varchar(255)"`
	Major             string    `gorm:"type:varchar(100)"`
	SecondaryMajor    string    `gorm:"type:varchar(100)"`
	GPA               *float64  `gorm:"type:numeric(3,2)"`
	GraduationYear    string    `gorm:"type:varchar(32)"`
	YearEntered       string    `gorm:"type:varchar(16)"`
	VisaStatus        string    `gorm:"type:text"`
	Phone             string    `gorm:"type:varchar(32)"`
	Location          string    `gorm:"type:varchar(255)"`
	Skills            string    `gorm:"type:text"`
	Experience        string    `gorm:"type:text"`
	Projects          string    `gorm:"type:text"`
	CyclesAvailable   string    `gorm:"type:text"`
	ConsecutiveCycles *int
	FullTimeEligible  bool `gorm:"not null;default:false"`
	ResumeURL         string `gorm:"type:text"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

// FromStudentProfile builds the row for a student profile.
func FromStudentProfile(p *entity.StudentProfile) *StudentProfileModel {
	return &StudentProfileModel{
		UserID:            p.UserID,
		School:            p.School,
		Major:             p.Major,
		SecondaryMajor:    p.SecondaryMajor,
		GPA:               p.GPA,
		GraduationYear:    p.GraduationYear,
		YearEntered:       p.YearEntered,
		VisaStatus:        joinList(p.VisaStatus),
		Phone:             p.Phone,
		Location:          p.Location,
		Skills:            p.Skills,
		Experience:        p.Experience,
		Projects:          p.Projects,
		CyclesAvailable:   joinList(p.CyclesAvailable),
		ConsecutiveCycles: p.ConsecutiveCycles,
		FullTimeEligible:  p.FullTimeEligible,
		ResumeURL:         p.ResumeURL,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToDomain converts the row into an entity.
func (m *StudentProfileModel) ToDomain() *entity.StudentProfile {
	return &entity.StudentProfile{
		UserID:            m.UserID,
		School:            m.School,
		Major:             m.Major,
		SecondaryMajor:    m.SecondaryMajor,
		GPA:               m.GPA,
		GraduationYear:    m.GraduationYear,
		YearEntered:       m.YearEntered,
		VisaStatus:        splitList(m.VisaStatus),
		Phone:             m.Phone,
		Location:          m.Location,
		Skills:            m.Skills,
		Experience:        m.Experience,
		Projects:          m.Projects,
		CyclesAvailable:   splitList(m.CyclesAvailable),
		ConsecutiveCycles: m.ConsecutiveCycles,
		FullTimeEligible:  m.FullTimeEligible,
		ResumeURL:         m.ResumeURL,
		UpdatedAt:         m.UpdatedAt,
	}
}

// RecruiterProfileModel mirrors the 'recruiter_profiles' table. UserID references users.id.
type RecruiterProfileModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Company    string    `gorm:"type:varchar(255);not null"`
	CompanyKey string    `gorm:"type:varchar(9);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecruiterProfileModel) TableName() string {
	return "recruiter_profiles"
}

// FromRecruiterProfile builds the row for a recruiter profile.
func FromRecruiterProfile(p *entity.RecruiterProfile) *RecruiterProfileModel {
	return &RecruiterProfileModel{
		UserID:     p.UserID,
		Company:    p.Company,
		CompanyKey: p.CompanyKey,
		CreatedAt:  p.CreatedAt,
	}
}

// ToDomain converts the row into an entity.
func (m *RecruiterProfileModel) ToDomain() *entity.RecruiterProfile {
	return &entity.RecruiterProfile{
		UserID:     m.UserID,
		Company:    m.Company,
		CompanyKey: m.CompanyKey,
		CreatedAt:  m.CreatedAt,
	}
}

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	return strings.Split(value, listSeparator)
}
