package entity

import (
	"slices"
	"strconv"
)

// Visa status tokens a student may select. A profile may hold several.
const (
	VisaCitizen      = "citizen"
	VisaOPTStem      = "opt_stem"
	VisaOPTNonStem   = "opt_non_stem"
	VisaCPTOnly      = "cpt_only"
	VisaJ1           = "j1"
	VisaNotDisclosed = "not_disclosed"
)

// VisaStatuses lists every accepted visa token.
var VisaStatuses = []string{VisaCitizen, VisaOPTStem, VisaOPTNonStem, VisaCPTOnly, VisaJ1, VisaNotDisclosed}

// Majors lists the majors offered on the student profile form.
var Majors = []string{
	"Computer Science",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Chemical Engineering",
	"Aerospace Engineering",
	"Bioengineering",
	"Materials Science",
	"Civil Engineering",
	"Applied Mathematics",
	"Data Science",
	"Physics",
	"Chemistry",
	"Other",
}

const (
	firstGraduationYear = 2025
	lastGraduationYear  = 2029
)

var graduationMonths = []string{"march", "june", "september", "december"}

// GraduationYears lists graduation tokens: bare years first ("2025"), then
// year-qualified months ("march_2025" ... "december_2029").
var GraduationYears = buildGraduationYears()

func buildGraduationYears() []string {
	tokens := make([]string, 0, (lastGraduationYear-firstGraduationYear+1)*(len(graduationMonths)+1))
	for year := firstGraduationYear; year <= lastGraduationYear; year++ {
		tokens = append(tokens, strconv.Itoa(year))
	}
	for year := firstGraduationYear; year <= lastGraduationYear; year++ {
		for _, month := range graduationMonths {
			tokens = append(tokens, month+"_"+strconv.Itoa(year))
		}
	}

	return tokens
}

// IsValidVisaStatus reports whether token is a known visa status.
func IsValidVisaStatus(token string) bool {
	return slices.Contains(VisaStatuses, token)
}

// IsValidMajor reports whether major is one of the offered majors.
func IsValidMajor(major string) bool {
	return slices.Contains(Majors, major)
}

// IsValidGraduationYear reports whether token is a known graduation token.
func IsValidGraduationYear(token string) bool {
	return slices.Contains(GraduationYears, token)
}
