package cli

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recruit/internal/client"
	"recruit/internal/client/session"
	"recruit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers like the server for one student and one recruiter.
type fakeAPI struct {
	accounts map[string]entity.Account // by token
	logouts  []string
	hires    []*client.HireRequest
	fields   map[string]any
}

func newFakeAPI() *fakeAPI {
	studentID, recruiterID := uuid.New(), uuid.New()

	return &fakeAPI{accounts: map[string]entity.Account{
		"student-token": &entity.StudentAccount{
			User:    &entity.User{ID: studentID, Email: "ada@example.com", Name: "Ada", Role: entity.RoleStudent},
			Profile: &entity.StudentProfile{UserID: studentID, School: "State University"},
		},
		"recruiter-token": &entity.RecruiterAccount{
			User:    &entity.User{ID: recruiterID, Email: "rita@tesla.com", Name: "Rita", Role: entity.RoleRecruiter},
			Profile: &entity.RecruiterProfile{UserID: recruiterID, Company: "Tesla"},
		},
	}}
}

func (f *fakeAPI) session(token string) *client.Session {
	return &client.Session{Account: f.accounts[token], Token: token, ExpiresAt: time.Now().Add(time.Hour)}
}

func (f *fakeAPI) SignUp(ctx context.Context, req *client.SignUpRequest) (*client.Session, error) {
	if req.Role == entity.RoleRecruiter {
		return f.session("recruiter-token"), nil
	}

	return f.session("student-token"), nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*client.Session, error) {
	if password != "secret" {
		return nil, &client.APIError{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	}
	if strings.HasSuffix(email, "@tesla.com") {
		return f.session("recruiter-token"), nil
	}

	return f.session("student-token"), nil
}

func (f *fakeAPI) Logout(ctx context.Context, token string) error {
	f.logouts = append(f.logouts, token)

	return nil
}

func (f *fakeAPI) Me(ctx context.Context, token string) (entity.Account, error) {
	account, ok := f.accounts[token]
	if !ok {
		return nil, &client.APIError{Status: http.StatusUnauthorized, Code: "SESSION_INVALID"}
	}

	return account, nil
}

func (f *fakeAPI) GetProfile(ctx context.Context, token string) (*entity.StudentProfile, error) {
	return &entity.StudentProfile{School: "State University"}, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, token string, fields map[string]any) (*entity.StudentProfile, error) {
	f.fields = fields

	return &entity.StudentProfile{School: "State University", Major: "Physics"}, nil
}

func (f *fakeAPI) SearchCandidates(ctx context.Context, token string, q *client.CandidateQuery) (*client.CandidatePage, error) {
	gpa := 3.9

	return &client.CandidatePage{
		Candidates:   []entity.Candidate{{Name: "Ada", Email: "ada@example.com", Profile: entity.StudentProfile{GPA: &gpa}}},
		MatchedCount: 1,
		TotalCount:   2,
		Page:         1,
		PageSize:     20,
	}, nil
}

func (f *fakeAPI) RecordHire(ctx context.Context, token string, req *client.HireRequest) (*entity.HiringRecord, error) {
	f.hires = append(f.hires, req)

	return &entity.HiringRecord{ID: uuid.New(), StudentEmail: req.StudentEmail, StudentName: "Ada", Cycle: req.Cycle}, nil
}

func (f *fakeAPI) ListHires(ctx context.Context, token string) ([]*entity.HiringRecord, error) {
	return nil, nil
}

func (f *fakeAPI) IsHired(ctx context.Context, token, email string) (bool, error) {
	return len(f.hires) > 0, nil
}

func (f *fakeAPI) Stats(ctx context.Context, token string) (*client.Stats, error) {
	return &client.Stats{
		TotalStudents: 4,
		StudentsHired: 1,
		HiringRate:    25,
		Majors: []client.MajorCount{
			{Major: "Computer Science", Count: 3, Percentage: 75},
			{Major: "Physics", Count: 0, Percentage: 0},
		},
		Undeclared: 1,
	}, nil
}

func newTestApp(t *testing.T) (*App, *fakeAPI, *bytes.Buffer) {
	t.Helper()

	api := newFakeAPI()
	out := &bytes.Buffer{}
	app := NewApp(api, session.NewFileStore(filepath.Join(t.TempDir(), "session.json")), strings.NewReader(""), out)
	app.readPassword = func() (string, error) { return "secret", nil }

	return app, api, out
}

func TestCommandsNeedASession(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, cmd := range []string{"whoami", "profile", "candidates", "hires", "stats"} {
		err := app.Run(context.Background(), []string{cmd})
		assert.ErrorIs(t, err, ErrNotSignedIn, cmd)
	}
}

func TestLoginPersistsOnlyTheSession(t *testing.T) {
	app, _, out := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"login", "-email", "ada@example.com"}))
	assert.Contains(t, out.String(), "Signed in as ada@example.com (student)")

	token, err := app.sessions.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "student-token", token)

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"whoami"}))
	assert.Contains(t, out.String(), "school: State University")
}

func TestLoginFailure(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.readPassword = func() (string, error) { return "wrong", nil }

	err := app.Run(context.Background(), []string{"login", "-email", "ada@example.com"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	_, _, ok := app.sessions.Get()
	assert.False(t, ok)
}

func TestRoleGuardOnClient(t *testing.T) {
	app, api, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"login", "-email", "ada@example.com"}))

	err := app.Run(ctx, []string{"hire", "-email", "x@example.com", "-cycle", "Fall 2026"})

	assert.ErrorIs(t, err, entity.ErrRoleMismatch)
	assert.Empty(t, api.hires)
}

func TestRecruiterCommands(t *testing.T) {
	app, api, out := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"signup", "-role", "recruiter", "-email", "rita@tesla.com", "-name", "Rita", "-company", "Tesla", "-key", "d74hf8e09"}))

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"candidates", "-major", "Physics", "-sort", "gpa"}))
	assert.Contains(t, out.String(), "ada@example.com")
	assert.Contains(t, out.String(), "3.90")
	assert.Contains(t, out.String(), "1 of 2 students match")

	require.NoError(t, app.Run(ctx, []string{"hire", "-email", "ada@example.com", "-cycle", "Summer 2026"}))
	require.Len(t, api.hires, 1)

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"hired", "-email", "ada@example.com"}))
	assert.Equal(t, "ada@example.com is hired\n", out.String())

	out.Reset()
	require.NoError(t, app.Run(ctx, []string{"stats"}))
	assert.Contains(t, out.String(), "Hired: 1 (25.0% of registered students)")
	assert.Contains(t, out.String(), "Computer Science")
	assert.Contains(t, out.String(), "75.0%")
	assert.Contains(t, out.String(), "(undeclared)")
	assert.NotContains(t, out.String(), "Physics")
}

func TestProfileUpdateSendsOnlyGivenFields(t *testing.T) {
	app, api, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"login", "-email", "ada@example.com"}))

	require.NoError(t, app.Run(ctx, []string{"profile", "-major", "Physics", "-visa", "opt_stem, h1b", "-gpa", "3.5"}))

	assert.Equal(t, map[string]any{
		"major":       "Physics",
		"visa_status": []string{"opt_stem", "h1b"},
		"gpa":         3.5,
	}, api.fields)

	require.NoError(t, app.Run(ctx, []string{"profile", "-clear-gpa"}))
	assert.Equal(t, map[string]any{"clear_gpa": true}, api.fields)
}

func TestLogoutForgetsSession(t *testing.T) {
	app, api, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"login", "-email", "ada@example.com"}))

	require.NoError(t, app.Run(ctx, []string{"logout"}))

	assert.Equal(t, []string{"student-token"}, api.logouts)
	token, err := app.sessions.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestExpiredSessionIsForgotten(t *testing.T) {
	app, api, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"login", "-email", "ada@example.com"}))
	delete(api.accounts, "student-token")

	err := app.Run(ctx, []string{"whoami"})

	assert.ErrorIs(t, err, ErrNotSignedIn)
	token, err := app.sessions.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestUnknownCommand(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"fly"})

	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "Usage: recruitctl")
}
