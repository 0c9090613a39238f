// Package storage holds the resume storage used by the student profile.
// Files are not persisted anywhere; only a deterministic reference URL is produced.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/service"
	"recruit/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://example.com/resumes"
	defaultMaxSize = 5 * bytes.MB
)

type mockResumeStorage struct {
	baseURL *url.URL
	maxSize int64
	logger  *slog.Logger
}

// NewMockResumeStorage builds the storage from the resume config section.
func NewMockResumeStorage(cfg *config.Config, logger *slog.Logger) (service.ResumeStorage, error) {
	rawBaseURL := defaultBaseURL
	maxSize := int64(defaultMaxSize)

	if cfg != nil && cfg.Resume != nil {
		if cfg.Resume.BaseURL != "" {
			rawBaseURL = cfg.Resume.BaseURL
		}
		if cfg.Resume.MaxSize != "" {
			parsed, err := bytes.Parse(cfg.Resume.MaxSize)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid resume.maxSize %q", cfg.Resume.MaxSize)
			}
			maxSize = parsed
		}
	}

	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid resume.baseUrl %q", rawBaseURL)
	}

	return &mockResumeStorage{baseURL: baseURL, maxSize: maxSize, logger: logger}, nil
}

// Store returns <baseUrl>/<userID>/<fileName>. Directory components of
// fileName are dropped so a student can only address their own folder.
func (s *mockResumeStorage) Store(ctx context.Context, userID uuid.UUID, fileName string, size int64) (string, error) {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "", errors.Wrap(service.ErrInvalidResume, "file name is empty")
	}
	if size > s.maxSize {
		return "", errors.Wrapf(service.ErrInvalidResume, "file is %s, limit is %s",
			util.FormatSize(size), util.FormatSize(s.maxSize))
	}

	ref := s.baseURL.JoinPath(userID.String(), name).String()

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Resume stored",
		slog.String("userID", userID.String()),
		slog.String("size", util.FormatSize(size)),
	)

	return ref, nil
}
