package memory

import (
	"cmp"
	"context"
	"slices"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	acc accessor
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.acc.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(u)

		return nil
	})

	return found, err
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := r.acc.read(func(st *state) error {
		id, ok := st.emails[email]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(st.users[id])

		return nil
	})

	return found, err
}

func (r *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	var exists bool
	err := r.acc.read(func(st *state) error {
		_, exists = st.emails[email]

		return nil
	})

	return exists, err
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.acc.write(func(st *state) error {
		if _, ok := st.emails[user.Email]; ok {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		now := r.acc.now()
		user.CreatedAt = now
		user.UpdatedAt = now

		stored := cloneUser(user)
		stored.StudentProfile = nil
		stored.RecruiterProfile = nil
		st.users[stored.ID] = stored
		st.emails[stored.Email] = stored.ID

		return nil
	})
}

func (r *userRepository) CreateStudentProfile(_ context.Context, profile *entity.StudentProfile) error {
	return r.acc.write(func(st *state) error {
		u, ok := st.users[profile.UserID]
		if !ok {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}
		profile.UpdatedAt = r.acc.now()

		next := cloneUser(u)
		next.StudentProfile = cloneStudentProfile(profile)
		st.users[next.ID] = next

		return nil
	})
}

func (r *userRepository) CreateRecruiterProfile(_ context.Context, profile *entity.RecruiterProfile) error {
	return r.acc.write(func(st *state) error {
		u, ok := st.users[profile.UserID]
		if !ok {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}
		if _, ok := st.companyKeys[profile.CompanyKey]; !ok {
			return domainerrors.ErrInvalidCompanyKey.WrapMessage("company key does not exist")
		}
		profile.CreatedAt = r.acc.now()

		next := cloneUser(u)
		p := *profile
		next.RecruiterProfile = &p
		st.users[next.ID] = next

		return nil
	})
}

func (r *userRepository) UpdateStudentProfile(_ context.Context, profile *entity.StudentProfile) error {
	return r.acc.write(func(st *state) error {
		u, ok := st.users[profile.UserID]
		if !ok || u.StudentProfile == nil {
			return repository.ErrUserNotFound
		}
		now := r.acc.now()
		profile.UpdatedAt = now

		next := cloneUser(u)
		next.StudentProfile = cloneStudentProfile(profile)
		next.UpdatedAt = now
		st.users[next.ID] = next

		return nil
	})
}

func (r *userRepository) ListStudents(_ context.Context) ([]*entity.User, error) {
	var students []*entity.User
	err := r.acc.read(func(st *state) error {
		students = make([]*entity.User, 0, len(st.users))
		for _, u := range st.users {
			if u.Role == entity.RoleStudent {
				students = append(students, cloneUser(u))
			}
		}

		return nil
	})
	slices.SortStableFunc(students, func(a, b *entity.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return students, err
}
