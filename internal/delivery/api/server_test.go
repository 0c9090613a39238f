package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recruit/config"
	"recruit/internal/delivery/api"
	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/router"
	"recruit/internal/delivery/api/router/handler"
	"recruit/internal/infra/auth"
	"recruit/internal/infra/persistence/memory"
	"recruit/internal/infra/pubsub"
	"recruit/internal/infra/qrcode"
	"recruit/internal/infra/storage"
	"recruit/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const teslaKey = "d74hf8e09"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Auth:      &config.AuthConfig{BcryptCost: bcrypt.MinCost, SessionTTL: time.Hour},
		Directory: &config.DirectoryConfig{Collation: "en", DefaultPageSize: 20, MaxPageSize: 100},
		Resume:    &config.ResumeConfig{BaseURL: "https://resumes.example.com", MaxSize: "5MB"},
	}
	cfg.SecretKey.Session = "api-test-secret"
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Storage.SeedCompanyKeys = map[string]string{teslaKey: "Tesla"}

	store := memory.NewStore(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	resumes, err := storage.NewMockResumeStorage(cfg, logger)
	require.NoError(t, err)

	txManager := memory.NewTransactionManager(store)
	userRepo := memory.NewUserRepository(store)
	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		SessionRepo: memory.NewSessionRepository(store),
		KeyValidator: impl.NewCompanyKeyValidator(impl.CompanyKeyValidatorParams{
			KeyRepo: memory.NewCompanyKeyRepository(store),
			Logger:  logger,
		}),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	hiringUC := impl.NewHiringService(impl.HiringServiceParams{
		HiringRepo: memory.NewHiringRecordRepository(store),
		UserRepo:   userRepo,
		Publisher:  pubsub.NewNoopPublisher(logger),
		Logger:     logger,
	})
	profileUC := impl.NewProfileService(impl.ProfileServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		ResumeStorage: resumes,
		QRCodeService: qrcode.NewQRCodeService(cfg),
		Logger:        logger,
	})
	directoryUC := impl.NewDirectoryService(impl.DirectoryServiceParams{
		UserRepo: userRepo,
		Config:   cfg,
		Logger:   logger,
	})

	e := api.NewEcho(cfg, logger, router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: logger}),
		StudentHandler: handler.NewStudentHandler(handler.StudentHandlerParams{
			ProfileUC: profileUC,
			HiringUC:  hiringUC,
			Logger:    logger,
		}),
		RecruiterHandler: handler.NewRecruiterHandler(handler.RecruiterHandlerParams{
			DirectoryUC: directoryUC,
			HiringUC:    hiringUC,
			Logger:      logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AccountUC: accountUC, Logger: logger}),
	})

	return &testServer{t: t, echo: e}
}

func (s *testServer) do(method, target, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (s *testServer) signUp(body map[string]any) handler.AuthResponse {
	s.t.Helper()

	rec, env := s.do(http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var auth handler.AuthResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(s.t, auth.Token)

	return auth
}

func (s *testServer) signUpStudent(email, name string) handler.AuthResponse {
	return s.signUp(map[string]any{
		"role": "student", "email": email, "password": "student-pw", "name": name, "school": "State University",
	})
}

func (s *testServer) signUpRecruiter(email string) handler.AuthResponse {
	return s.signUp(map[string]any{
		"role": "recruiter", "email": email, "password": "recruiter-pw", "name": "Rita",
		"company": "Tesla", "company_key": teslaKey,
	})
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestSignUpAndMe(t *testing.T) {
	srv := newTestServer(t)

	auth := srv.signUpStudent("  Ada@Example.com ", "Ada")
	assert.Equal(t, "ada@example.com", auth.User.Email)
	require.NotNil(t, auth.User.StudentProfile)
	assert.Equal(t, "State University", auth.User.StudentProfile.School)

	rec, env := srv.do(http.MethodGet, "/api/v1/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"email":"ada@example.com"`)
	assert.NotContains(t, string(env.Data), "password")
}

func TestSignUpErrors(t *testing.T) {
	srv := newTestServer(t)
	srv.signUpStudent("ada@example.com", "Ada")

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown role",
			body:     map[string]any{"role": "admin", "email": "x@example.com", "password": "pw", "name": "X"},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "duplicate email in another case",
			body:     map[string]any{"role": "student", "email": "ADA@example.com", "password": "pw", "name": "Ada", "school": "MIT"},
			wantCode: http.StatusConflict,
			wantErr:  "DUPLICATE_EMAIL",
		},
		{
			name: "unknown company key",
			body: map[string]any{
				"role": "recruiter", "email": "r@example.com", "password": "pw", "name": "R",
				"company": "Tesla", "company_key": "zzzzzzzzz",
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_COMPANY_KEY",
		},
		{
			name: "key of another company",
			body: map[string]any{
				"role": "recruiter", "email": "r@example.com", "password": "pw", "name": "R",
				"company": "SpaceX", "company_key": teslaKey,
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "COMPANY_MISMATCH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := srv.do(http.MethodPost, "/api/v1/auth/signup", "", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestLoginIsGeneric(t *testing.T) {
	srv := newTestServer(t)
	srv.signUpStudent("ada@example.com", "Ada")

	rec, env := srv.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "ADA@example.com", "password": "student-pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"token"`)

	_, wrongPassword := srv.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "ada@example.com", "password": "nope"})
	_, unknownEmail := srv.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"email": "who@example.com", "password": "nope"})

	require.NotNil(t, wrongPassword.Error)
	require.NotNil(t, unknownEmail.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", wrongPassword.Error.Code)
	assert.Equal(t, wrongPassword.Error, unknownEmail.Error)
}

func TestRoleGuards(t *testing.T) {
	srv := newTestServer(t)
	student := srv.signUpStudent("ada@example.com", "Ada")
	recruiter := srv.signUpRecruiter("rita@tesla.com")

	rec, env := srv.do(http.MethodGet, "/api/v1/recruiter/candidates", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, env = srv.do(http.MethodGet, "/api/v1/recruiter/candidates", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", env.Error.Code)

	rec, env = srv.do(http.MethodGet, "/api/v1/recruiter/candidates", student.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, _ = srv.do(http.MethodGet, "/api/v1/student/profile", recruiter.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	srv := newTestServer(t)
	student := srv.signUpStudent("ada@example.com", "Ada")

	rec, _ := srv.do(http.MethodPost, "/api/v1/auth/logout", student.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := srv.do(http.MethodGet, "/api/v1/auth/me", student.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_INVALID", env.Error.Code)
}

func TestStudentProfileAndResume(t *testing.T) {
	srv := newTestServer(t)
	student := srv.signUpStudent("ada@example.com", "Ada")

	rec, env := srv.do(http.MethodPut, "/api/v1/student/profile", student.Token, map[string]any{
		"major": "Physics", "gpa": 3.7, "visa_status": []string{"opt_stem"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"major":"Physics"`)

	rec, env = srv.do(http.MethodPut, "/api/v1/student/profile", student.Token, map[string]any{"gpa": 4.5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec, env = srv.do(http.MethodPut, "/api/v1/student/profile", student.Token, map[string]any{"clear_gpa": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), `"gpa":null`)

	rec, env = srv.do(http.MethodPut, "/api/v1/student/profile", student.Token, map[string]any{"cycles_available": []string{"Summer 2025, Fall"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = srv.do(http.MethodGet, "/api/v1/student/resume/qrcode", student.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = srv.do(http.MethodPost, "/api/v1/student/resume", student.Token, map[string]any{"file_name": "ada.pdf", "size": 2048})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(env.Data), "https://resumes.example.com/")

	rec, _ = srv.do(http.MethodGet, "/api/v1/student/resume/qrcode", student.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestRecruiterDirectoryAndHiring(t *testing.T) {
	srv := newTestServer(t)
	ada := srv.signUpStudent("ada@example.com", "Ada")
	srv.signUpStudent("grace@example.com", "Grace")
	recruiter := srv.signUpRecruiter("rita@tesla.com")

	rec, env := srv.do(http.MethodGet, "/api/v1/recruiter/candidates?sortBy=name&sortOrder=desc", recruiter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page handler.CandidatesResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Candidates, 2)
	assert.Equal(t, "Grace", page.Candidates[0].Name)
	assert.Equal(t, 2, page.TotalCount)

	rec, env = srv.do(http.MethodGet, "/api/v1/recruiter/candidates?name=ADA", recruiter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Candidates, 1)
	assert.Equal(t, 1, page.MatchedCount)

	rec, env = srv.do(http.MethodGet, "/api/v1/recruiter/candidates?sortBy=shoe_size", recruiter.Token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = srv.do(http.MethodPost, "/api/v1/recruiter/hires", recruiter.Token, map[string]any{
		"student_email": "Ada@Example.com", "cycle": "Summer 2026", "position_title": "Intern",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var record struct {
		ID           string `json:"id"`
		StudentName  string `json:"student_name"`
		StudentEmail string `json:"student_email"`
		Company      string `json:"company"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))
	assert.Equal(t, "Ada", record.StudentName)
	assert.Equal(t, "ada@example.com", record.StudentEmail)
	assert.Equal(t, "Tesla", record.Company)

	var status handler.HireStatusResponse
	_, env = srv.do(http.MethodGet, "/api/v1/recruiter/hires/status?email=ada@example.com", recruiter.Token, nil)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.Hired)

	var studentView handler.HiringStatusResponse
	_, env = srv.do(http.MethodGet, "/api/v1/student/hiring-status", ada.Token, nil)
	require.NoError(t, json.Unmarshal(env.Data, &studentView))
	assert.True(t, studentView.Hired)
	assert.Len(t, studentView.Records, 1)

	rec, _ = srv.do(http.MethodPatch, "/api/v1/recruiter/hires/"+record.ID, recruiter.Token, map[string]any{"status": "declined"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, env = srv.do(http.MethodGet, "/api/v1/recruiter/hires/status?email=ada@example.com", recruiter.Token, nil)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.False(t, status.Hired)

	rec, env = srv.do(http.MethodPatch, "/api/v1/recruiter/hires/"+record.ID, recruiter.Token, map[string]any{"status": "fired"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec, _ = srv.do(http.MethodPatch, "/api/v1/recruiter/hires/not-a-uuid", recruiter.Token, map[string]any{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecruiterStats(t *testing.T) {
	srv := newTestServer(t)
	ada := srv.signUpStudent("ada@example.com", "Ada")
	srv.signUpStudent("grace@example.com", "Grace")
	recruiter := srv.signUpRecruiter("rita@tesla.com")

	rec, _ := srv.do(http.MethodGet, "/api/v1/recruiter/stats", ada.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = srv.do(http.MethodPut, "/api/v1/student/profile", ada.Token, map[string]any{"major": "Physics"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, _ = srv.do(http.MethodPost, "/api/v1/recruiter/hires", recruiter.Token, map[string]any{
		"student_email": "ada@example.com", "cycle": "Summer 2026",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := srv.do(http.MethodGet, "/api/v1/recruiter/stats", recruiter.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stats handler.StatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.StudentsHired)
	assert.InDelta(t, 50.0, stats.HiringRate, 0.001)
	assert.Equal(t, 1, stats.Undeclared)
	assert.Contains(t, stats.Majors, handler.MajorCountResponse{Major: "Physics", Count: 1, Percentage: 50})
}
