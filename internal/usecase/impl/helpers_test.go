package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"recruit/config"
	"recruit/internal/domain/entity"
	"recruit/internal/infra/auth"
	"recruit/internal/infra/persistence/memory"
	"recruit/internal/infra/pubsub"
	"recruit/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const teslaKey = "d74hf8e09"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        bcrypt.MinCost,
			SessionTTL:        time.Hour,
			MaxActiveSessions: maxActiveSessions,
		},
		Directory: &config.DirectoryConfig{Collation: "en", DefaultPageSize: 20, MaxPageSize: 100},
	}
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Storage.SeedCompanyKeys = map[string]string{teslaKey: "Tesla"}

	return cfg
}

// app wires the real services over the memory store.
type app struct {
	store     *memory.Store
	accounts  usecase.AccountUsecase
	hiring    usecase.HiringUsecase
	directory usecase.DirectoryUsecase
}

func newApp(t *testing.T, maxActiveSessions int) *app {
	t.Helper()

	cfg := newTestConfig(maxActiveSessions)
	logger := newDiscardLogger()
	store := memory.NewStore(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository(store)
	accounts := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		UserRepo:    userRepo,
		SessionRepo: memory.NewSessionRepository(store),
		KeyValidator: NewCompanyKeyValidator(CompanyKeyValidatorParams{
			KeyRepo: memory.NewCompanyKeyRepository(store),
			Logger:  logger,
		}),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	hiring := NewHiringService(HiringServiceParams{
		HiringRepo: memory.NewHiringRecordRepository(store),
		UserRepo:   userRepo,
		Publisher:  pubsub.NewNoopPublisher(logger),
		Logger:     logger,
	})
	directory := NewDirectoryService(DirectoryServiceParams{
		UserRepo: userRepo,
		Config:   cfg,
		Logger:   logger,
	})

	return &app{store: store, accounts: accounts, hiring: hiring, directory: directory}
}

func (a *app) signUpStudent(t *testing.T, email, name string) *usecase.AuthOutput {
	t.Helper()

	out, err := a.accounts.SignUp(context.Background(), &usecase.SignUpInput{
		Role:     entity.RoleStudent,
		Email:    email,
		Password: "pw-" + name,
		Name:     name,
		School:   "State University",
	})
	require.NoError(t, err)

	return out
}

func (a *app) signUpRecruiter(t *testing.T, email string) *entity.RecruiterAccount {
	t.Helper()

	out, err := a.accounts.SignUp(context.Background(), &usecase.SignUpInput{
		Role:       entity.RoleRecruiter,
		Email:      email,
		Password:   "recruiter-pw",
		Name:       "Rita",
		Company:    "Tesla",
		CompanyKey: teslaKey,
	})
	require.NoError(t, err)
	recruiter, ok := entity.AsRecruiter(out.Account)
	require.True(t, ok)

	return recruiter
}
