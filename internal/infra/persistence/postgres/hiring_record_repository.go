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

type hiringRecordRepository struct {
	db *gorm.DB
}

// NewHiringRecordRepository returns a HiringRecordRepository bound to db.
func NewHiringRecordRepository(db *gorm.DB) repository.HiringRecordRepository {
	return &hiringRecordRepository{db: db}
}

func (repo *hiringRecordRepository) Create(ctx context.Context, record *entity.HiringRecord) error {
	recordM := model.FromHiringRecord(record)
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("recruiter does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hiring record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

func (repo *hiringRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HiringRecord, error) {
	var recordM model.HiringRecordModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHiringRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find hiring record")
	}

	return recordM.ToDomain(), nil
}

func (repo *hiringRecordRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*entity.HiringRecord, error) {
	return repo.list(ctx, "recruiter_id = ?", recruiterID)
}

func (repo *hiringRecordRepository) ListByStudentEmail(ctx context.Context, email string) ([]*entity.HiringRecord, error) {
	return repo.list(ctx, "student_email = ?", email)
}

// list orders by hire date, newest first. Ties fall back to insertion order,
// newest first as well.
func (repo *hiringRecordRepository) list(ctx context.Context, query string, arg any) ([]*entity.HiringRecord, error) {
	var rows []*model.HiringRecordModel
	err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("hire_date DESC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list hiring records")
	}

	records := make([]*entity.HiringRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToDomain())
	}

	return records, nil
}

func (repo *hiringRecordRepository) Update(ctx context.Context, record *entity.HiringRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HiringRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"status":         string(record.Status),
			"position_title": record.PositionTitle,
			"notes":          record.Notes,
			"updated_at":     record.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hiring record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHiringRecordNotFound
	}

	return nil
}
