package postgres

import (
	"context"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/errors"
	"recruit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a UserRepository bound to db, which may be a transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("StudentProfile").
		Preload("RecruiterProfile")
}

// FindByID retrieves a single user with its profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.withProfiles(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return userM.ToDomain(), nil
}

// FindByEmail retrieves a single user with its profile. Emails are matched exactly.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.withProfiles(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return userM.ToDomain(), nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check email")
	}

	return count > 0, nil
}

// Create inserts the users row. Profiles are inserted separately so the
// caller controls both writes inside one transaction.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUser(user)
	if err := repo.db.WithContext(ctx).Omit("StudentProfile", "RecruiterProfile").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) CreateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error {
	profileM := model.FromStudentProfile(profile)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student profile")
	}
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *userRepository) CreateRecruiterProfile(ctx context.Context, profile *entity.RecruiterProfile) error {
	profileM := model.FromRecruiterProfile(profile)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidCompanyKey.WrapMessage("profile owner or company key does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recruiter profile")
	}
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// UpdateStudentProfile saves every column of the profile row.
func (repo *userRepository) UpdateStudentProfile(ctx context.Context, profile *entity.StudentProfile) error {
	profileM := model.FromStudentProfile(profile)
	result := repo.db.WithContext(ctx).
		Model(&model.StudentProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Select("*").
		Omit("user_id").
		Updates(profileM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update student profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *userRepository) ListStudents(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.UserModel
	err := repo.withProfiles(ctx).
		Where("role = ?", entity.RoleStudent.String()).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list students")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.ToDomain())
	}

	return users, nil
}
