package directory

import (
	"cmp"
	"strings"

	"recruit/internal/domain/entity"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
)

// SortField names a sortable candidate attribute.
type SortField string

const (
	SortByName           SortField = "name"
	SortByEmail          SortField = "email"
	SortByMajor          SortField = "major"
	SortByGPA            SortField = "gpa"
	SortByGraduationYear SortField = "graduation_year"
)

// IsValid reports whether f is a known field.
func (f SortField) IsValid() bool {
	switch f {
	case SortByName, SortByEmail, SortByMajor, SortByGPA, SortByGraduationYear:
		return true
	default:
		return false
	}
}

// SortDirection is ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Sort orders query results. Equal keys keep their relative input order.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

// ParseSort builds a Sort from request values. An empty field means no
// sorting and yields nil; an empty direction defaults to ascending.
func ParseSort(field, direction string) (*Sort, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return nil, nil
	}
	if field == "graduationyear" || field == "graduation-year" {
		field = string(SortByGraduationYear)
	}

	sortField := SortField(field)
	if !sortField.IsValid() {
		return nil, errors.Errorf("unknown sort field %q", field)
	}

	var sortDirection SortDirection
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc", "ascending":
		sortDirection = SortAscending
	case "desc", "descending":
		sortDirection = SortDescending
	default:
		return nil, errors.Errorf("unknown sort direction %q", direction)
	}

	return &Sort{Field: sortField, Direction: sortDirection}, nil
}

type compareFunc func(a, b entity.Candidate) int

func comparator(field SortField, collator *collate.Collator) compareFunc {
	byString := func(key func(entity.Candidate) string) compareFunc {
		return func(a, b entity.Candidate) int {
			return collator.CompareString(key(a), key(b))
		}
	}

	switch field {
	case SortByEmail:
		return byString(func(c entity.Candidate) string { return c.Email })
	case SortByMajor:
		return byString(func(c entity.Candidate) string { return c.Profile.Major })
	case SortByGraduationYear:
		return byString(func(c entity.Candidate) string { return c.Profile.GraduationYear })
	case SortByGPA:
		return func(a, b entity.Candidate) int {
			return cmp.Compare(a.GPAOrZero(), b.GPAOrZero())
		}
	default:
		return byString(func(c entity.Candidate) string { return c.Name })
	}
}
