package memory

import (
	"context"
	"slices"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"

	"github.com/google/uuid"
)

type hiringRecordRepository struct {
	acc accessor
}

func (r *hiringRecordRepository) Create(_ context.Context, record *entity.HiringRecord) error {
	return r.acc.write(func(st *state) error {
		if _, ok := st.users[record.RecruiterID]; !ok {
			return domainerrors.ErrUserNotFound.WrapMessage("recruiter does not exist")
		}
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		now := r.acc.now()
		record.CreatedAt = now
		record.UpdatedAt = now
		st.hires = append(st.hires, cloneHiringRecord(record))

		return nil
	})
}

func (r *hiringRecordRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.HiringRecord, error) {
	var found *entity.HiringRecord
	err := r.acc.read(func(st *state) error {
		for _, rec := range st.hires {
			if rec.ID == id {
				found = cloneHiringRecord(rec)

				return nil
			}
		}

		return repository.ErrHiringRecordNotFound
	})

	return found, err
}

func (r *hiringRecordRepository) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]*entity.HiringRecord, error) {
	return r.list(func(rec *entity.HiringRecord) bool { return rec.RecruiterID == recruiterID })
}

func (r *hiringRecordRepository) ListByStudentEmail(_ context.Context, email string) ([]*entity.HiringRecord, error) {
	return r.list(func(rec *entity.HiringRecord) bool { return rec.StudentEmail == email })
}

// list returns matches newest hire date first; equal dates keep the most
// recently inserted record first.
func (r *hiringRecordRepository) list(match func(*entity.HiringRecord) bool) ([]*entity.HiringRecord, error) {
	records := make([]*entity.HiringRecord, 0)
	err := r.acc.read(func(st *state) error {
		for i := len(st.hires) - 1; i >= 0; i-- {
			if match(st.hires[i]) {
				records = append(records, cloneHiringRecord(st.hires[i]))
			}
		}

		return nil
	})
	slices.SortStableFunc(records, func(a, b *entity.HiringRecord) int {
		return b.HireDate.Compare(a.HireDate)
	})

	return records, err
}

func (r *hiringRecordRepository) Update(_ context.Context, record *entity.HiringRecord) error {
	return r.acc.write(func(st *state) error {
		for i, rec := range st.hires {
			if rec.ID != record.ID {
				continue
			}
			next := cloneHiringRecord(rec)
			next.Status = record.Status
			next.PositionTitle = record.PositionTitle
			next.Notes = record.Notes
			next.UpdatedAt = record.UpdatedAt
			st.hires[i] = next

			return nil
		}

		return repository.ErrHiringRecordNotFound
	})
}
