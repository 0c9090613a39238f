package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/constants"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type hiringService struct {
	hiringRepo repository.HiringRecordRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
	now        func() time.Time
	logger     *slog.Logger
}

// HiringServiceParams holds dependencies for HiringService, injected by Fx.
type HiringServiceParams struct {
	fx.In

	HiringRepo repository.HiringRecordRepository
	UserRepo   repository.UserRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewHiringService is the constructor for hiringService.
func NewHiringService(params HiringServiceParams) usecase.HiringUsecase {
	return &hiringService{
		hiringRepo: params.HiringRepo,
		userRepo:   params.UserRepo,
		publisher:  params.Publisher,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *hiringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordHire appends a hired record. Name and email are copied into the
// record and never follow later profile edits. Hiring the same student
// again adds another record.
func (srv *hiringService) RecordHire(ctx context.Context, input *usecase.RecordHireInput) (*entity.HiringRecord, error) {
	input.StudentEmail = normalizeEmail(input.StudentEmail)
	input.StudentName = strings.TrimSpace(input.StudentName)
	input.Cycle = strings.TrimSpace(input.Cycle)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	name, err := srv.snapshotName(ctx, input.StudentEmail, input.StudentName)
	if err != nil {
		return nil, err
	}

	record := &entity.HiringRecord{
		StudentEmail:  input.StudentEmail,
		StudentName:   name,
		RecruiterID:   input.RecruiterID,
		Company:       input.Company,
		PositionTitle: strings.TrimSpace(input.PositionTitle),
		Cycle:         input.Cycle,
		HireDate:      srv.now().UTC(),
		Status:        entity.HiringStatusHired,
		Notes:         input.Notes,
	}
	if err := srv.hiringRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record hire")
	}
	srv.log(ctx).Info("Hire recorded",
		slog.Any("recordID", record.ID),
		slog.Any("recruiterID", record.RecruiterID),
		slog.String("cycle", record.Cycle),
	)

	srv.publish(ctx, constants.EventHireRecorded, record)

	return record, nil
}

// snapshotName prefers the name given by the recruiter and otherwise copies
// the registered student's name.
func (srv *hiringService) snapshotName(ctx context.Context, email, given string) (string, error) {
	if given != "" {
		return given, nil
	}

	student, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrValidationFailed.WrapMessage("student name is required for unregistered students")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up student")
	}

	return student.Name, nil
}

// publish emits a ledger event. The ledger write has already succeeded, so
// a broker failure is only logged.
func (srv *hiringService) publish(ctx context.Context, eventType string, record *entity.HiringRecord) {
	event := &service.HiringEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		RecordID:      record.ID.String(),
		RecruiterID:   record.RecruiterID.String(),
		Company:       record.Company,
		StudentEmail:  record.StudentEmail,
		StudentName:   record.StudentName,
		PositionTitle: record.PositionTitle,
		Cycle:         record.Cycle,
		Status:        string(record.Status),
		OccurredAt:    srv.now().UTC(),
	}
	if err := srv.publisher.PublishHiringEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish hiring event",
			slog.String("type", eventType),
			slog.Any("recordID", record.ID),
			slog.Any("error", err),
		)
	}
}

// ListByRecruiter returns the recruiter's own records, newest hire first.
func (srv *hiringService) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.HiringRecord, error) {
	records, err := srv.hiringRepo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hiring records")
	}

	return records, nil
}

// IsHired reports whether any of the recruiter's records for email has
// status hired. Records of other recruiters are not visible here.
func (srv *hiringService) IsHired(ctx context.Context, recruiterID uuid.UUID, email string) (bool, error) {
	records, err := srv.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return false, err
	}

	email = normalizeEmail(email)
	for _, record := range records {
		if record.StudentEmail == email && record.Status == entity.HiringStatusHired {
			return true, nil
		}
	}

	return false, nil
}

// UpdateStatus changes status, position or notes of a record owned by the recruiter.
func (srv *hiringService) UpdateStatus(ctx context.Context, recruiterID, recordID uuid.UUID, input *usecase.UpdateHiringInput) (*entity.HiringRecord, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown hiring status")
	}

	record, err := srv.hiringRepo.FindByID(ctx, recordID)
	if errors.Is(err, repository.ErrHiringRecordNotFound) {
		return nil, domainerrors.ErrHiringRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load hiring record")
	}
	if record.RecruiterID != recruiterID {
		srv.log(ctx).Warn("Recruiter tried to change another recruiter's record",
			slog.Any("recruiterID", recruiterID), slog.Any("recordID", recordID))

		return nil, domainerrors.ErrForbidden
	}

	statusChanged := false
	if input.Status != nil && *input.Status != record.Status {
		record.Status = *input.Status
		statusChanged = true
	}
	if input.PositionTitle != nil {
		record.PositionTitle = strings.TrimSpace(*input.PositionTitle)
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}
	record.UpdatedAt = srv.now().UTC()

	if err := srv.hiringRepo.Update(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to update hiring record")
	}
	if statusChanged {
		srv.publish(ctx, constants.EventHireStatusChanged, record)
	}

	return record, nil
}

// ListByStudent returns every record for the student's email, newest first.
func (srv *hiringService) ListByStudent(ctx context.Context, email string) ([]*entity.HiringRecord, error) {
	records, err := srv.hiringRepo.ListByStudentEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hiring records")
	}

	return records, nil
}

// Stats counts the recruiter's hires against the registered students and
// breaks the students down by primary major.
func (srv *hiringService) Stats(ctx context.Context, recruiterID uuid.UUID) (*usecase.HiringStats, error) {
	students, err := srv.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}
	records, err := srv.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, err
	}

	hired := make(map[string]struct{})
	for _, record := range records {
		if record.Status == entity.HiringStatusHired {
			hired[record.StudentEmail] = struct{}{}
		}
	}

	stats := &usecase.HiringStats{
		TotalStudents: len(students),
		StudentsHired: len(hired),
		Majors:        make([]usecase.MajorCount, 0, len(entity.Majors)),
	}

	perMajor := make(map[string]int, len(entity.Majors))
	registeredHired := 0
	for _, student := range students {
		if _, ok := hired[student.Email]; ok {
			registeredHired++
		}
		major := ""
		if student.StudentProfile != nil {
			major = student.StudentProfile.Major
		}
		if major == "" {
			stats.Undeclared++

			continue
		}
		perMajor[major]++
	}

	stats.HiringRate = percentage(registeredHired, len(students))
	for _, major := range entity.Majors {
		stats.Majors = append(stats.Majors, usecase.MajorCount{
			Major:      major,
			Count:      perMajor[major],
			Percentage: percentage(perMajor[major], len(students)),
		})
	}

	return stats, nil
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(part)*1000/float64(total)) / 10
}
