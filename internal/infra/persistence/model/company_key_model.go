package model

import "recruit/internal/domain/entity"

// CompanyKeyModel mirrors the 'company_keys' table. Rows are provisioned out of band.
type CompanyKeyModel struct {
	Key     string `gorm:"column:key;type:varchar(9);primaryKey"`
	Company string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyKeyModel) TableName() string {
	return "company_keys"
}

// ToDomain converts the row into an entity.
func (m *CompanyKeyModel) ToDomain() *entity.CompanyKey {
	return &entity.CompanyKey{Key: m.Key, Company: m.Company}
}
