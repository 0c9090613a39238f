package memory

import (
	"slices"

	"recruit/internal/domain/entity"
)

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	c.StudentProfile = cloneStudentProfile(u.StudentProfile)
	if u.RecruiterProfile != nil {
		p := *u.RecruiterProfile
		c.RecruiterProfile = &p
	}

	return &c
}

func cloneStudentProfile(p *entity.StudentProfile) *entity.StudentProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.VisaStatus = slices.Clone(p.VisaStatus)
	c.CyclesAvailable = slices.Clone(p.CyclesAvailable)
	if p.GPA != nil {
		gpa := *p.GPA
		c.GPA = &gpa
	}
	if p.ConsecutiveCycles != nil {
		n := *p.ConsecutiveCycles
		c.ConsecutiveCycles = &n
	}

	return &c
}

func cloneHiringRecord(r *entity.HiringRecord) *entity.HiringRecord {
	c := *r

	return &c
}

func cloneSession(s *entity.Session) *entity.Session {
	c := *s

	return &c
}
