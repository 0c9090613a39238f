package pubsub

import (
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
	"recruit/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.HiringEvent {
	return &service.HiringEvent{
		RequestID:    "req-1",
		Type:         "hire.recorded",
		RecordID:     "rec-1",
		RecruiterID:  "recruiter-1",
		Company:      "Tesla",
		StudentEmail: "x@ucla.edu",
		StudentName:  "X",
		Cycle:        "Summer 2025",
		Status:       "hired",
		OccurredAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()
	logger := newDiscardLogger()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		want    any
		wantErr bool
	}{
		{name: "nil config", cfg: nil, want: &noopPublisher{}},
		{name: "explicit noop", cfg: &config.PubSubConfig{Provider: "noop"}, want: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: "a:9092, b:9092", TopicID: "hires"}, want: &kafkaPublisher{}},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: "kafka", TopicID: "hires"}, wantErr: true},
		{name: "kafka without topic", cfg: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: "a:9092"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(ctx, tt.cfg, logger)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := testEvent()

	require.NoError(t, publisher.PublishHiringEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "rec-1", received.Message.MessageID)
	assert.Equal(t, "hire.recorded", received.Message.Attributes["type"])
	assert.Equal(t, "2025-06-01T12:00:00Z", received.Message.PublishTime)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.HiringEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.StudentEmail, decoded.StudentEmail)
	assert.Equal(t, event.Cycle, decoded.Cycle)
}

func TestLocalHTTPPublisher_FailsOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	assert.Error(t, publisher.PublishHiringEvent(context.Background(), testEvent()))
}

func TestEventAttributes(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.Equal(t, map[string]string{
		"type":         "hire.recorded",
		"record_id":    "rec-1",
		"recruiter_id": "recruiter-1",
	}, attributes)
}

func TestKafkaPublisher_ParsesBrokers(t *testing.T) {
	publisher, ok := NewKafkaPublisher(" a:9092 ,,b:9093", "hires", newDiscardLogger()).(*kafkaPublisher)
	require.True(t, ok)

	assert.Equal(t, "hires", publisher.writer.Topic)
	assert.Equal(t, "a:9092,b:9093", publisher.writer.Addr.String())
}
