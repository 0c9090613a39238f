package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruit/config"
	"recruit/internal/domain/constants"
	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	mockRepo "recruit/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockRepo.MockHiringRecordRepository) {
	t.Helper()

	repo := mockRepo.NewMockHiringRecordRepository(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		HiringRepo: repo,
	})

	return h, repo
}

func pushBody(t *testing.T, event service.HiringEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	recordID := uuid.New()
	stored := &entity.HiringRecord{
		ID:           recordID,
		StudentEmail: "ada@example.com",
		Company:      "Tesla",
		Cycle:        "Summer 2026",
		Status:       entity.HiringStatusHired,
	}
	event := service.HiringEvent{
		Type:       constants.EventHireRecorded,
		RecordID:   recordID.String(),
		Status:     string(entity.HiringStatusHired),
		OccurredAt: time.Now(),
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) []byte
		setupMock  func(repo *mockRepo.MockHiringRecordRepository)
		wantStatus int
	}{
		{
			name: "audits a known record",
			body: func(t *testing.T) []byte { return pushBody(t, event) },
			setupMock: func(repo *mockRepo.MockHiringRecordRepository) {
				repo.EXPECT().FindByID(mock.Anything, recordID).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "superseded event is acknowledged",
			body: func(t *testing.T) []byte {
				older := event
				older.Status = string(entity.HiringStatusOfferExtended)

				return pushBody(t, older)
			},
			setupMock: func(repo *mockRepo.MockHiringRecordRepository) {
				repo.EXPECT().FindByID(mock.Anything, recordID).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown record is acknowledged",
			body: func(t *testing.T) []byte { return pushBody(t, event) },
			setupMock: func(repo *mockRepo.MockHiringRecordRepository) {
				repo.EXPECT().FindByID(mock.Anything, recordID).Return(nil, repository.ErrHiringRecordNotFound)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "store failure asks for redelivery",
			body: func(t *testing.T) []byte { return pushBody(t, event) },
			setupMock: func(repo *mockRepo.MockHiringRecordRepository) {
				repo.EXPECT().FindByID(mock.Anything, recordID).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "unknown event type is dropped",
			body: func(t *testing.T) []byte {
				other := event
				other.Type = "hire.deleted"

				return pushBody(t, other)
			},
			setupMock:  func(repo *mockRepo.MockHiringRecordRepository) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "undecodable data is rejected",
			body:       func(t *testing.T) []byte { return []byte(`{"message":{"data":"%%%"}}`) },
			setupMock:  func(repo *mockRepo.MockHiringRecordRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newTestHandler(t, &config.Config{})
			tt.setupMock(repo)

			rec := servePush(h, tt.body(t), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePushVerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	body := pushBody(t, service.HiringEvent{Type: "hire.deleted"})

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)

		rec := servePush(h, body, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		h.validateToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, body, "Bearer token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		var gotAudience string
		h.validateToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}

		rec := servePush(h, body, "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/pubsub/push", gotAudience)
	})

	t.Run("not verified outside production", func(t *testing.T) {
		local := &config.Config{PubSub: cfg.PubSub}
		local.Env.Env = constants.EnvLocal
		h, _ := newTestHandler(t, local)

		rec := servePush(h, body, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
