package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type profileService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	resumeStorage service.ResumeStorage
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	ResumeStorage service.ResumeStorage
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		resumeStorage: params.ResumeStorage,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, srv.mapUserError(err)
	}
	if user.StudentProfile == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("student profile not found")
	}

	return user.StudentProfile, nil
}

// UpdateStudentProfile applies a partial update. Vocabulary fields (major,
// graduation year, visa status) only accept the known tokens; an empty
// string clears them.
func (srv *profileService) UpdateStudentProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateStudentProfileInput) (*entity.StudentProfile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := validateVocabulary(input); err != nil {
		return nil, err
	}

	var updated *entity.StudentProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return srv.mapUserError(err)
		}
		if user.StudentProfile == nil {
			return domainerrors.ErrNotFound.WrapMessage("student profile not found")
		}

		profile := *user.StudentProfile
		applyProfileUpdate(&profile, input)
		if err := userRepo.UpdateStudentProfile(ctx, &profile); err != nil {
			return errors.Wrap(err, "failed to update student profile")
		}
		updated = &profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}
	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// UploadResume stores the resume and records its URL on the profile.
func (srv *profileService) UploadResume(ctx context.Context, userID uuid.UUID, fileName string, size int64) (*entity.StudentProfile, error) {
	url, err := srv.resumeStorage.Store(ctx, userID, fileName, size)
	if errors.Is(err, service.ErrInvalidResume) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store resume")
	}

	var updated *entity.StudentProfile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return srv.mapUserError(err)
		}
		if user.StudentProfile == nil {
			return domainerrors.ErrNotFound.WrapMessage("student profile not found")
		}

		profile := *user.StudentProfile
		profile.ResumeURL = url
		if err := userRepo.UpdateStudentProfile(ctx, &profile); err != nil {
			return errors.Wrap(err, "failed to save resume url")
		}
		updated = &profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute resume upload transaction")
	}
	srv.log(ctx).Info("Resume uploaded", slog.Any("userID", userID))

	return updated, nil
}

// ResumeQRCode renders a PNG QR code that links to the student's resume.
func (srv *profileService) ResumeQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetStudentProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.ResumeURL == "" {
		return nil, domainerrors.ErrNotFound.WrapMessage("no resume uploaded")
	}

	png, err := srv.qrCodeService.GenerateLinkQR(profile.ResumeURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate resume QR code")
	}

	return png, nil
}

func (srv *profileService) mapUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to load user")
}

func validateVocabulary(input *usecase.UpdateStudentProfileInput) error {
	if input.Major != nil && *input.Major != "" && !entity.IsValidMajor(*input.Major) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown major: " + *input.Major)
	}
	if input.SecondaryMajor != nil && *input.SecondaryMajor != "" && !entity.IsValidMajor(*input.SecondaryMajor) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown secondary major: " + *input.SecondaryMajor)
	}
	if input.GraduationYear != nil && *input.GraduationYear != "" && !entity.IsValidGraduationYear(*input.GraduationYear) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown graduation year: " + *input.GraduationYear)
	}
	for _, visa := range input.VisaStatus {
		if !entity.IsValidVisaStatus(visa) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown visa status: " + visa)
		}
	}
	// Cycles are stored as one comma-joined column
	for _, cycle := range input.CyclesAvailable {
		if strings.TrimSpace(cycle) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("cycle must not be blank")
		}
		if strings.Contains(cycle, ",") {
			return domainerrors.ErrValidationFailed.WrapMessage("cycle must not contain a comma: " + cycle)
		}
	}

	return nil
}

func applyProfileUpdate(profile *entity.StudentProfile, input *usecase.UpdateStudentProfileInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&profile.School, input.School)
	setString(&profile.Major, input.Major)
	setString(&profile.SecondaryMajor, input.SecondaryMajor)
	setString(&profile.GraduationYear, input.GraduationYear)
	setString(&profile.YearEntered, input.YearEntered)
	setString(&profile.Phone, input.Phone)
	setString(&profile.Location, input.Location)
	setString(&profile.Skills, input.Skills)
	setString(&profile.Experience, input.Experience)
	setString(&profile.Projects, input.Projects)

	if input.GPA != nil {
		gpa := *input.GPA
		profile.GPA = &gpa
	}
	if input.ClearGPA {
		profile.GPA = nil
	}
	if input.VisaStatus != nil {
		profile.VisaStatus = slices.Compact(slices.Clone(input.VisaStatus))
	}
	if input.CyclesAvailable != nil {
		cycles := make([]string, 0, len(input.CyclesAvailable))
		for _, cycle := range input.CyclesAvailable {
			cycles = append(cycles, strings.TrimSpace(cycle))
		}
		profile.CyclesAvailable = cycles
	}
	if input.ConsecutiveCycles != nil {
		n := *input.ConsecutiveCycles
		profile.ConsecutiveCycles = &n
	}
	if input.FullTimeEligible != nil {
		profile.FullTimeEligible = *input.FullTimeEligible
	}
}
