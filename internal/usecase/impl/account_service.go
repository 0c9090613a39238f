package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/errors"
	"recruit/internal/usecase"
	"recruit/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	keyValidator      usecase.CompanyKeyValidator
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	dummyHash         func() string
	now               func() time.Time
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	KeyValidator usecase.CompanyKeyValidator
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	// Compared against on unknown emails so login timing does not reveal
	// which accounts exist
	dummyHash := sync.OnceValue(func() string {
		hash, err := params.Hasher.Hash("recruit-unknown-account")
		if err != nil {
			params.Logger.Error("Failed to prepare dummy password hash", slog.Any("error", err))

			return ""
		}

		return hash
	})

	return &accountService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		sessionRepo:       params.SessionRepo,
		keyValidator:      params.KeyValidator,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		dummyHash:         dummyHash,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers a student or recruiter and logs the new account in.
// The user row and its profile are written in one transaction.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	// The validator counts runes, bcrypt counts bytes
	if len(input.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password must be at most 72 bytes")
	}

	if input.Role == entity.RoleRecruiter {
		if err := srv.keyValidator.Validate(ctx, input.CompanyKey, input.Company); err != nil {
			srv.log(ctx).Warn("Company key rejected", slog.String("email", input.Email), slog.Any("error", err))

			return nil, err
		}
	}

	var account entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: hash,
			Role:         input.Role,
			Name:         input.Name,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if err := srv.createProfile(ctx, userRepo, user, input); err != nil {
			return err
		}

		account, err = entity.NewAccount(user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", input.Email), slog.Any("role", input.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}
	srv.log(ctx).Info("Account registered", slog.Any("userID", account.Identity().ID), slog.Any("role", account.Role()))

	return srv.issueSession(ctx, account, input.UserAgent)
}

func (srv *accountService) createProfile(ctx context.Context, userRepo repository.UserRepository, user *entity.User, input *usecase.SignUpInput) error {
	switch input.Role {
	case entity.RoleStudent:
		profile := &entity.StudentProfile{
			UserID: user.ID,
			School: strings.TrimSpace(input.School),
		}
		if err := userRepo.CreateStudentProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create student profile")
		}
		user.StudentProfile = profile
	case entity.RoleRecruiter:
		profile := &entity.RecruiterProfile{
			UserID:     user.ID,
			Company:    strings.TrimSpace(input.Company),
			CompanyKey: input.CompanyKey,
		}
		if err := userRepo.CreateRecruiterProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create recruiter profile")
		}
		user.RecruiterProfile = profile
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	return nil
}

// Login verifies credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash())
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	account, err := entity.NewAccount(user)
	if err != nil {
		srv.log(ctx).Error("Account has no usable profile", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return srv.issueSession(ctx, account, input.UserAgent)
}

// issueSession signs a token and stores its digest. When a session cap is
// configured, expired sessions are pruned and the cap checked in the same
// transaction as the insert.
func (srv *accountService) issueSession(ctx context.Context, account entity.Account, userAgent string) (*usecase.AuthOutput, error) {
	user := account.Identity()
	sessionID := uuid.New()

	token, expiresAt, err := srv.tokenService.GenerateSessionToken(user.ID, sessionID, account.Role().String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(token),
		UserAgent: truncate(userAgent, 255),
		ExpiresAt: expiresAt,
	}

	if srv.maxActiveSessions > 0 {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			sessionRepo := repoFactory.SessionRepo()
			if err := sessionRepo.DeleteExpired(ctx); err != nil {
				return errors.Wrap(err, "failed to prune expired sessions")
			}
			count, err := sessionRepo.CountActiveByUserID(ctx, user.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count sessions")
			}
			if count >= srv.maxActiveSessions {
				return domainerrors.ErrSessionLimitExceeded
			}

			return sessionRepo.Create(ctx, session)
		})
	} else {
		err = srv.sessionRepo.Create(ctx, session)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to store session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	srv.log(ctx).Debug("Session issued",
		slog.Any("userID", user.ID),
		slog.String("ttl", util.FormatTTL(expiresAt.Sub(srv.now()))),
	)

	return &usecase.AuthOutput{Account: account, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout ends the session behind token. Unknown tokens are ignored.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(token)); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Debug("Session ended")

	return nil
}

// Authenticate resolves a session token to the account it belongs to.
// Any failure other than a store error is reported as ErrSessionInvalid.
func (srv *accountService) Authenticate(ctx context.Context, token string) (entity.Account, error) {
	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(token))
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.IsExpired(srv.now()) || session.UserID != claims.UserID || session.ID != claims.SessionID {
		return nil, domainerrors.ErrSessionInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	account, err := entity.NewAccount(user)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	return account, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit]
}
