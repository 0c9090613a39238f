package impl

import (
	"context"
	"math"
	"testing"

	"recruit/internal/domain/directory"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStudentProfile(t *testing.T, a *app, out *usecase.AuthOutput, major string, gpa float64) {
	t.Helper()

	profiles := NewProfileService(ProfileServiceParams{
		TxManager: memoryTx(a),
		UserRepo:  memoryUsers(a),
		Logger:    newDiscardLogger(),
	})
	_, err := profiles.UpdateStudentProfile(context.Background(), out.Account.Identity().ID, &usecase.UpdateStudentProfileInput{
		Major: &major,
		GPA:   &gpa,
	})
	require.NoError(t, err)
}

func candidateNames(candidates []entity.Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}

	return names
}

func TestDirectoryService_FilterAndSort(t *testing.T) {
	a := newApp(t, 0)
	ctx := context.Background()
	setStudentProfile(t, a, a.signUpStudent(t, "ann@x.edu", "Ann"), "Computer Science", 3.9)
	setStudentProfile(t, a, a.signUpStudent(t, "ben@x.edu", "Ben"), "Computer Science", 3.5)
	setStudentProfile(t, a, a.signUpStudent(t, "cat@x.edu", "Cat"), "Physics", 4.0)

	out, err := a.directory.Search(ctx, &usecase.SearchCandidatesInput{
		Filter:    directory.Filter{Major: "Computer Science"},
		SortBy:    "gpa",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Ben"}, candidateNames(out.Candidates))
	assert.Equal(t, 2, out.MatchedCount)
	assert.Equal(t, 3, out.TotalCount)
}

func TestDirectoryService_Pagination(t *testing.T) {
	a := newApp(t, 0)
	ctx := context.Background()
	for _, name := range []string{"Ann", "Ben", "Cat", "Dan", "Eve"} {
		a.signUpStudent(t, name+"@x.edu", name)
	}

	out, err := a.directory.Search(ctx, &usecase.SearchCandidatesInput{SortBy: "name", Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Dan"}, candidateNames(out.Candidates))
	assert.Equal(t, 5, out.MatchedCount)

	out, err = a.directory.Search(ctx, &usecase.SearchCandidatesInput{SortBy: "name", Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)
	assert.NotNil(t, out.Candidates)

	out, err = a.directory.Search(ctx, &usecase.SearchCandidatesInput{PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, out.PageSize)
	assert.Len(t, out.Candidates, 5)
}

func TestDirectoryService_HugePageIsEmpty(t *testing.T) {
	a := newApp(t, 0)
	a.signUpStudent(t, "ann@x.edu", "Ann")
	a.signUpStudent(t, "ben@x.edu", "Ben")

	for _, page := range []int{math.MaxInt, math.MaxInt / 2, math.MaxInt/100 + 1} {
		out, err := a.directory.Search(context.Background(), &usecase.SearchCandidatesInput{Page: page, PageSize: 100})
		require.NoError(t, err)
		assert.Empty(t, out.Candidates)
		assert.Equal(t, 2, out.MatchedCount)
		assert.Equal(t, page, out.Page)
	}
}

func TestDirectoryService_RejectsUnknownSort(t *testing.T) {
	a := newApp(t, 0)

	_, err := a.directory.Search(context.Background(), &usecase.SearchCandidatesInput{SortBy: "salary"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDirectoryService_RecruitersAreNotCandidates(t *testing.T) {
	a := newApp(t, 0)
	a.signUpStudent(t, "ann@x.edu", "Ann")
	a.signUpRecruiter(t, "rita@tesla.com")

	out, err := a.directory.Search(context.Background(), &usecase.SearchCandidatesInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, candidateNames(out.Candidates))
}
