package service

import (
	"context"
	"time"
)

// HiringEvent is published whenever the hiring ledger changes.
type HiringEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	RecordID      string    `json:"record_id"`
	RecruiterID   string    `json:"recruiter_id"`
	Company       string    `json:"company"`
	StudentEmail  string    `json:"student_email"`
	StudentName   string    `json:"student_name"`
	PositionTitle string    `json:"position_title,omitempty"`
	Cycle         string    `json:"cycle"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishHiringEvent publishes a hiring ledger event
	PublishHiringEvent(ctx context.Context, event *HiringEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
