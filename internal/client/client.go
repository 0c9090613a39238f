// Package client is the HTTP client for the recruitment API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recruit/internal/domain/entity"
	"recruit/internal/errors"
)

const defaultTimeout = 10 * time.Second

// APIError is an error envelope returned by the server.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// Client calls the recruitment API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server url %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("server url %q needs a scheme and host", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// SignUpRequest registers a student or a recruiter.
type SignUpRequest struct {
	Role       entity.Role `json:"role"`
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	Name       string      `json:"name"`
	School     string      `json:"school,omitempty"`
	Company    string      `json:"company,omitempty"`
	CompanyKey string      `json:"company_key,omitempty"`
}

// Session is a signed-in account with its token.
type Session struct {
	Account   entity.Account
	Token     string
	ExpiresAt time.Time
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *entity.User `json:"user"`
}

// CandidateQuery selects and orders directory results.
type CandidateQuery struct {
	Name           string
	Search         string
	Major          string
	GraduationYear string
	School         string
	VisaStatuses   []string
	SortBy         string
	SortOrder      string
	Page           int
	PageSize       int
}

// CandidatePage is one page of the directory.
type CandidatePage struct {
	Candidates   []entity.Candidate `json:"candidates"`
	MatchedCount int                `json:"matched_count"`
	TotalCount   int                `json:"total_count"`
	Page         int                `json:"page"`
	PageSize     int                `json:"page_size"`
}

// MajorCount is one row of the major breakdown in Stats.
type MajorCount struct {
	Major      string  `json:"major"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Stats is the recruiter's analytics view.
type Stats struct {
	TotalStudents int          `json:"total_students"`
	StudentsHired int          `json:"students_hired"`
	HiringRate    float64      `json:"hiring_rate"`
	Majors        []MajorCount `json:"majors"`
	Undeclared    int          `json:"undeclared"`
}

// HireRequest records a hire.
type HireRequest struct {
	StudentEmail  string `json:"student_email"`
	StudentName   string `json:"student_name,omitempty"`
	PositionTitle string `json:"position_title,omitempty"`
	Cycle         string `json:"cycle"`
	Notes         string `json:"notes,omitempty"`
}

// SignUp registers and returns the new session.
func (c *Client) SignUp(ctx context.Context, req *SignUpRequest) (*Session, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", "", nil, req, &out); err != nil {
		return nil, err
	}

	return newSession(&out)
}

// Login opens a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", nil, body, &out); err != nil {
		return nil, err
	}

	return newSession(&out)
}

// Logout revokes the session on the server.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout", token, nil, nil, nil)
}

// Me fetches the account behind token.
func (c *Client) Me(ctx context.Context, token string) (entity.Account, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}

	return entity.NewAccount(&user)
}

// GetProfile returns the student's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*entity.StudentProfile, error) {
	var profile entity.StudentProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/student/profile", token, nil, nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile sends a partial profile update; only the given keys change.
func (c *Client) UpdateProfile(ctx context.Context, token string, fields map[string]any) (*entity.StudentProfile, error) {
	var profile entity.StudentProfile
	if err := c.do(ctx, http.MethodPut, "/api/v1/student/profile", token, nil, fields, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// SearchCandidates queries the recruiter directory.
func (c *Client) SearchCandidates(ctx context.Context, token string, q *CandidateQuery) (*CandidatePage, error) {
	params := url.Values{}
	setParam(params, "name", q.Name)
	setParam(params, "search", q.Search)
	setParam(params, "major", q.Major)
	setParam(params, "graduationYear", q.GraduationYear)
	setParam(params, "school", q.School)
	setParam(params, "sortBy", q.SortBy)
	setParam(params, "sortOrder", q.SortOrder)
	for _, visa := range q.VisaStatuses {
		params.Add("visa", visa)
	}
	if q.Page > 0 {
		params.Set("page", fmt.Sprint(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", fmt.Sprint(q.PageSize))
	}

	var page CandidatePage
	if err := c.do(ctx, http.MethodGet, "/api/v1/recruiter/candidates", token, params, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// RecordHire appends a hire to the recruiter's ledger.
func (c *Client) RecordHire(ctx context.Context, token string, req *HireRequest) (*entity.HiringRecord, error) {
	var record entity.HiringRecord
	if err := c.do(ctx, http.MethodPost, "/api/v1/recruiter/hires", token, nil, req, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListHires returns the recruiter's hiring records, newest first.
func (c *Client) ListHires(ctx context.Context, token string) ([]*entity.HiringRecord, error) {
	var records []*entity.HiringRecord
	if err := c.do(ctx, http.MethodGet, "/api/v1/recruiter/hires", token, nil, nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// IsHired asks whether the recruiter has hired email.
func (c *Client) IsHired(ctx context.Context, token, email string) (bool, error) {
	var out struct {
		Hired bool `json:"hired"`
	}
	params := url.Values{"email": []string{email}}
	if err := c.do(ctx, http.MethodGet, "/api/v1/recruiter/hires/status", token, params, nil, &out); err != nil {
		return false, err
	}

	return out.Hired, nil
}

// Stats fetches the recruiter's directory and hiring totals.
func (c *Client) Stats(ctx context.Context, token string) (*Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/api/v1/recruiter/stats", token, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "decode response of %s %s (status %d)", method, path, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrapf(json.Unmarshal(env.Data, out), "decode data of %s %s", method, path)
}

func newSession(out *authResponse) (*Session, error) {
	account, err := entity.NewAccount(out.User)
	if err != nil {
		return nil, errors.Wrap(err, "server returned an incomplete account")
	}

	return &Session{Account: account, Token: out.Token, ExpiresAt: out.ExpiresAt}, nil
}

func setParam(params url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}
