package memory

import (
	"context"

	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	acc accessor
}

func (r *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	return r.acc.write(func(st *state) error {
		session.CreatedAt = r.acc.now()
		st.sessions[session.TokenHash] = cloneSession(session)

		return nil
	})
}

func (r *sessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	var found *entity.Session
	err := r.acc.read(func(st *state) error {
		s, ok := st.sessions[tokenHash]
		if !ok {
			return repository.ErrSessionNotFound
		}
		found = cloneSession(s)

		return nil
	})

	return found, err
}

func (r *sessionRepository) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	return r.acc.write(func(st *state) error {
		delete(st.sessions, tokenHash)

		return nil
	})
}

func (r *sessionRepository) CountActiveByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	now := r.acc.now()
	count := 0
	err := r.acc.read(func(st *state) error {
		for _, s := range st.sessions {
			if s.UserID == userID && !s.IsExpired(now) {
				count++
			}
		}

		return nil
	})

	return count, err
}

func (r *sessionRepository) DeleteExpired(_ context.Context) error {
	now := r.acc.now()

	return r.acc.write(func(st *state) error {
		for hash, s := range st.sessions {
			if s.IsExpired(now) {
				delete(st.sessions, hash)
			}
		}

		return nil
	})
}
