package memory

import (
	"context"
	"testing"
	"time"

	"recruit/config"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	cfg := &config.Config{}
	cfg.Storage.SeedCompanyKeys = map[string]string{"d74hf8e09": "Tesla"}

	return NewStore(cfg)
}

func newStudent(email string) *entity.User {
	return &entity.User{Email: email, Role: entity.RoleStudent, Name: "Ann", PasswordHash: "hash"}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	repo := NewUserRepository(store)

	user := newStudent("ann@x.edu")
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)
	require.NoError(t, repo.CreateStudentProfile(ctx, &entity.StudentProfile{UserID: user.ID, School: "MIT"}))

	found, err := repo.FindByEmail(ctx, "ann@x.edu")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.NotNil(t, found.StudentProfile)
	assert.Equal(t, "MIT", found.StudentProfile.School)

	exists, err := repo.ExistsByEmail(ctx, "ann@x.edu")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ReturnedUsersAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore())

	user := newStudent("ann@x.edu")
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.CreateStudentProfile(ctx, &entity.StudentProfile{UserID: user.ID, VisaStatus: []string{"f1"}}))

	first, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	first.Name = "changed"
	first.StudentProfile.VisaStatus[0] = "changed"

	second, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", second.Name)
	assert.Equal(t, []string{"f1"}, second.StudentProfile.VisaStatus)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore())

	require.NoError(t, repo.Create(ctx, newStudent("ann@x.edu")))
	err := repo.Create(ctx, newStudent("ann@x.edu"))
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	tm := NewTransactionManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := newStudent("ann@x.edu")
		if err := f.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		// The owner id does not exist, so the second insert fails.
		return f.UserRepo().CreateStudentProfile(ctx, &entity.StudentProfile{UserID: uuid.New()})
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	exists, err := NewUserRepository(store).ExistsByEmail(ctx, "ann@x.edu")
	require.NoError(t, err)
	assert.False(t, exists, "user row must not survive a failed transaction")
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	tm := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.UserRepo().Create(ctx, newStudent("ann@x.edu"))
			panic("boom")
		})
	})

	exists, err := NewUserRepository(store).ExistsByEmail(ctx, "ann@x.edu")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_Commits(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	tm := NewTransactionManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := &entity.User{Email: "rita@tesla.com", Role: entity.RoleRecruiter, Name: "Rita"}
		if err := f.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return f.UserRepo().CreateRecruiterProfile(ctx, &entity.RecruiterProfile{
			UserID: user.ID, Company: "Tesla", CompanyKey: "d74hf8e09",
		})
	})
	require.NoError(t, err)

	found, err := NewUserRepository(store).FindByEmail(ctx, "rita@tesla.com")
	require.NoError(t, err)
	require.NotNil(t, found.RecruiterProfile)
	assert.Equal(t, "Tesla", found.RecruiterProfile.Company)
}

func TestCompanyKeyRepository_FindByKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	store.AddCompanyKey("g00gle123", "Google")
	repo := NewCompanyKeyRepository(store)

	key, err := repo.FindByKey(ctx, "d74hf8e09")
	require.NoError(t, err)
	assert.Equal(t, "Tesla", key.Company)

	key, err = repo.FindByKey(ctx, "g00gle123")
	require.NoError(t, err)
	assert.Equal(t, "Google", key.Company)

	_, err = repo.FindByKey(ctx, "D74HF8E09")
	assert.ErrorIs(t, err, repository.ErrCompanyKeyNotFound)
}

func TestHiringRecordRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	users := NewUserRepository(store)
	hires := NewHiringRecordRepository(store)

	recruiter := &entity.User{Email: "rita@tesla.com", Role: entity.RoleRecruiter, Name: "Rita"}
	require.NoError(t, users.Create(ctx, recruiter))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@x.edu", "b@x.edu", "c@x.edu"} {
		require.NoError(t, hires.Create(ctx, &entity.HiringRecord{
			StudentEmail: email,
			RecruiterID:  recruiter.ID,
			HireDate:     base.Add(time.Duration(i) * time.Hour),
			Status:       entity.HiringStatusHired,
		}))
	}

	records, err := hires.ListByRecruiter(ctx, recruiter.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c@x.edu", records[0].StudentEmail)
	assert.Equal(t, "a@x.edu", records[2].StudentEmail)

	other, err := hires.ListByRecruiter(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)

	byStudent, err := hires.ListByStudentEmail(ctx, "b@x.edu")
	require.NoError(t, err)
	require.Len(t, byStudent, 1)

	byStudent[0].Status = entity.HiringStatusDeclined
	require.NoError(t, hires.Update(ctx, byStudent[0]))
	updated, err := hires.FindByID(ctx, byStudent[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.HiringStatusDeclined, updated.Status)

	err = hires.Update(ctx, &entity.HiringRecord{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrHiringRecordNotFound)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }
	repo := NewSessionRepository(store)
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.Session{ID: uuid.New(), UserID: userID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Session{ID: uuid.New(), UserID: userID, TokenHash: "dead", ExpiresAt: now.Add(-time.Hour)}))

	count, err := repo.CountActiveByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.DeleteExpired(ctx))
	_, err = repo.FindByTokenHash(ctx, "dead")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, repo.DeleteByTokenHash(ctx, "live"))
	require.NoError(t, repo.DeleteByTokenHash(ctx, "live"))
	_, err = repo.FindByTokenHash(ctx, "live")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
