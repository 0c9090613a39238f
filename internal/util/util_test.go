package util

import (
	"testing"
	"time"

	"github.com/labstack/gommon/bytes"
	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "empty upload", size: 0, expected: "0 B"},
		{name: "small text resume", size: 900, expected: "900 B"},
		{name: "limit from config 1KB", size: bytes.KB, expected: "1 KB"},
		{name: "one and a half kilobytes", size: 1500, expected: "1.5 KB"},
		{name: "default resume limit", size: 5 * bytes.MB, expected: "5 MB"},
		{name: "just over the default limit", size: 5*bytes.MB + 1, expected: "5 MB"},
		{name: "scanned portfolio", size: 12*bytes.MB + 300*bytes.KB, expected: "12.3 MB"},
		{name: "request body cap", size: bytes.GB, expected: "1 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatSize(tt.size))
		})
	}
}

func TestFormatTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ttl      time.Duration
		expected string
	}{
		{name: "expired session", ttl: -time.Minute, expected: "0s"},
		{name: "about to expire", ttl: 45 * time.Second, expected: "45s"},
		{name: "rounds up to a minute", ttl: 59*time.Second + 500*time.Millisecond, expected: "1m"},
		{name: "test session ttl", ttl: time.Hour, expected: "1h"},
		{name: "hours and minutes", ttl: 2*time.Hour + 30*time.Minute, expected: "2h30m"},
		{name: "default session ttl", ttl: 24 * time.Hour, expected: "1d"},
		{name: "week-long session", ttl: 7 * 24 * time.Hour, expected: "7d"},
		{name: "day and a half", ttl: 36 * time.Hour, expected: "1d12h"},
		{name: "every unit", ttl: 24*time.Hour + time.Hour + time.Minute + time.Second, expected: "1d1h1m1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatTTL(tt.ttl))
		})
	}
}
