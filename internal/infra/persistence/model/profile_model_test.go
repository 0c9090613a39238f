package model

import (
	"testing"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStudentProfileModel_ListsSurviveStorage(t *testing.T) {
	profile := &entity.StudentProfile{
		UserID:          uuid.New(),
		VisaStatus:      []string{entity.VisaOPTStem, entity.VisaCPTOnly},
		CyclesAvailable: []string{"Summer 2025", "Fall 2025"},
	}

	row := FromStudentProfile(profile)
	assert.Equal(t, "opt_stem,cpt_only", row.VisaStatus)
	assert.Equal(t, "Summer 2025,Fall 2025", row.CyclesAvailable)

	back := row.ToDomain()
	assert.Equal(t, profile.VisaStatus, back.VisaStatus)
	assert.Equal(t, profile.CyclesAvailable, back.CyclesAvailable)
}

func TestStudentProfileModel_EmptyListsStayEmpty(t *testing.T) {
	back := FromStudentProfile(&entity.StudentProfile{UserID: uuid.New()}).ToDomain()

	assert.Nil(t, back.VisaStatus)
	assert.Nil(t, back.CyclesAvailable)
}
