package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]string{"request_id": "r1"}}))
}

func writeError(t *testing.T, w http.ResponseWriter, status int, code, message string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
		"meta":  map[string]string{"request_id": "r1"},
	}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/", time.Second)
	require.NoError(t, err)

	return c
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8080", 0)
	assert.Error(t, err)
}

func TestLoginBuildsAccount(t *testing.T) {
	userID := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rita@tesla.com", body["email"])

		writeData(t, w, http.StatusOK, map[string]any{
			"token":      "tok",
			"expires_at": time.Now().Add(time.Hour),
			"user": entity.User{
				ID:               userID,
				Email:            "rita@tesla.com",
				Role:             entity.RoleRecruiter,
				RecruiterProfile: &entity.RecruiterProfile{UserID: userID, Company: "Tesla"},
			},
		})
	})

	sess, err := c.Login(context.Background(), "rita@tesla.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "tok", sess.Token)
	recruiter, ok := entity.AsRecruiter(sess.Account)
	require.True(t, ok)
	assert.Equal(t, "Tesla", recruiter.Profile.Company)
}

func TestErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(t, w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	})

	_, err := c.Login(context.Background(), "x@example.com", "pw")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.True(t, IsUnauthorized(err))
}

func TestErrorWithoutEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.Logout(context.Background(), "tok")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.False(t, IsUnauthorized(err))
}

func TestSearchCandidatesSendsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		query := r.URL.Query()
		assert.Equal(t, "Physics", query.Get("major"))
		assert.Equal(t, []string{"opt_stem", "h1b"}, query["visa"])
		assert.Equal(t, "gpa", query.Get("sortBy"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Empty(t, query.Get("name"))

		writeData(t, w, http.StatusOK, CandidatePage{
			Candidates:   []entity.Candidate{{Name: "Ada"}},
			MatchedCount: 1,
			TotalCount:   3,
			Page:         2,
			PageSize:     1,
		})
	})

	page, err := c.SearchCandidates(context.Background(), "tok", &CandidateQuery{
		Major:        "Physics",
		VisaStatuses: []string{"opt_stem", "h1b"},
		SortBy:       "gpa",
		Page:         2,
	})
	require.NoError(t, err)

	require.Len(t, page.Candidates, 1)
	assert.Equal(t, "Ada", page.Candidates[0].Name)
	assert.Equal(t, 3, page.TotalCount)
}

func TestMeRejectsAccountWithoutProfile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(t, w, http.StatusOK, entity.User{ID: uuid.New(), Role: entity.RoleStudent})
	})

	_, err := c.Me(context.Background(), "tok")

	assert.ErrorIs(t, err, entity.ErrProfileMissing)
}

func TestStatsDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/recruiter/stats", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeData(t, w, http.StatusOK, map[string]any{
			"total_students": 3,
			"students_hired": 1,
			"hiring_rate":    33.3,
			"majors":         []map[string]any{{"major": "Physics", "count": 2, "percentage": 66.7}},
			"undeclared":     1,
		})
	})

	stats, err := c.Stats(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.StudentsHired)
	assert.InDelta(t, 33.3, stats.HiringRate, 0.001)
	assert.Equal(t, []MajorCount{{Major: "Physics", Count: 2, Percentage: 66.7}}, stats.Majors)
	assert.Equal(t, 1, stats.Undeclared)
}
