// Package directory implements the recruiter candidate directory: a pure
// function from (candidates, filter, sort) to an ordered subset. It holds no
// state between calls and never modifies its input.
package directory

import (
	"slices"
	"sort"
	"strings"

	"recruit/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter selects candidates. Every non-empty field must match (AND).
type Filter struct {
	// Name matches a case-insensitive substring of the candidate name.
	Name string
	// Search matches a case-insensitive substring of name, email, major or skills.
	Search string
	// Major, GraduationYear and School must match exactly.
	Major          string
	GraduationYear string
	School         string
	// VisaStatuses matches candidates holding at least one of the tokens.
	VisaStatuses []string
}

// IsEmpty reports whether the filter selects every candidate.
func (f Filter) IsEmpty() bool {
	return f.Name == "" && f.Search == "" && f.Major == "" &&
		f.GraduationYear == "" && f.School == "" && len(f.VisaStatuses) == 0
}

// Result is the ordered subset plus the counts shown alongside it.
type Result struct {
	Candidates   []entity.Candidate
	MatchedCount int
	TotalCount   int
}

// Engine runs directory queries. String fields are ordered with the
// collation rules of its language. An Engine is safe for concurrent use.
type Engine struct {
	lang language.Tag
}

// NewEngine creates an engine collating in lang.
func NewEngine(lang language.Tag) *Engine {
	return &Engine{lang: lang}
}

var defaultEngine = NewEngine(language.English)

// Query runs a query with English collation.
func Query(candidates []entity.Candidate, filter Filter, order *Sort) Result {
	return defaultEngine.Query(candidates, filter, order)
}

// Query filters candidates and, when order is non-nil, sorts the matches.
// The returned slice is always new; with an empty filter and no order it
// holds every candidate in input order.
func (e *Engine) Query(candidates []entity.Candidate, filter Filter, order *Sort) Result {
	m := newMatcher(filter)

	matched := make([]entity.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if m.matches(candidate) {
			matched = append(matched, candidate)
		}
	}

	if order != nil && order.Field.IsValid() {
		e.sort(matched, *order)
	}

	return Result{
		Candidates:   matched,
		MatchedCount: len(matched),
		TotalCount:   len(candidates),
	}
}

func (e *Engine) sort(candidates []entity.Candidate, order Sort) {
	collator := collate.New(e.lang)
	compare := comparator(order.Field, collator)

	sort.SliceStable(candidates, func(i, j int) bool {
		if order.Direction == SortDescending {
			return compare(candidates[j], candidates[i]) < 0
		}

		return compare(candidates[i], candidates[j]) < 0
	})
}

// matcher holds the folded filter values so each candidate is folded once per field.
type matcher struct {
	filter Filter
	fold   cases.Caser
	name   string
	search string
}

func newMatcher(filter Filter) *matcher {
	fold := cases.Fold()

	return &matcher{
		filter: filter,
		fold:   fold,
		name:   fold.String(filter.Name),
		search: fold.String(filter.Search),
	}
}

func (m *matcher) matches(c entity.Candidate) bool {
	if m.name != "" && !strings.Contains(m.fold.String(c.Name), m.name) {
		return false
	}
	if m.search != "" && !m.matchesSearch(c) {
		return false
	}
	if m.filter.Major != "" && c.Profile.Major != m.filter.Major {
		return false
	}
	if m.filter.GraduationYear != "" && c.Profile.GraduationYear != m.filter.GraduationYear {
		return false
	}
	if m.filter.School != "" && c.Profile.School != m.filter.School {
		return false
	}
	if len(m.filter.VisaStatuses) > 0 && !intersects(c.Profile.VisaStatus, m.filter.VisaStatuses) {
		return false
	}

	return true
}

func (m *matcher) matchesSearch(c entity.Candidate) bool {
	for _, field := range []string{c.Name, c.Email, c.Profile.Major, c.Profile.Skills} {
		if strings.Contains(m.fold.String(field), m.search) {
			return true
		}
	}

	return false
}

func intersects(have, want []string) bool {
	for _, token := range have {
		if slices.Contains(want, token) {
			return true
		}
	}

	return false
}
