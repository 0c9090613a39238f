// Package memory is a process-local implementation of the repositories,
// used for development (storage.driver: memory) and in tests. Transactions
// run against a copy of the data and replace it only on success.
package memory

import (
	"maps"
	"sync"
	"time"

	"recruit/config"
	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"

	"github.com/google/uuid"
)

type state struct {
	users       map[uuid.UUID]*entity.User
	emails      map[string]uuid.UUID
	companyKeys map[string]entity.CompanyKey
	hires       []*entity.HiringRecord
	sessions    map[string]*entity.Session
}

func newState() *state {
	return &state{
		users:       make(map[uuid.UUID]*entity.User),
		emails:      make(map[string]uuid.UUID),
		companyKeys: make(map[string]entity.CompanyKey),
		sessions:    make(map[string]*entity.Session),
	}
}

// clone copies the containers. Stored values are never mutated in place,
// only replaced, so sharing the pointers between copies is safe.
func (s *state) clone() *state {
	return &state{
		users:       maps.Clone(s.users),
		emails:      maps.Clone(s.emails),
		companyKeys: maps.Clone(s.companyKeys),
		hires:       append([]*entity.HiringRecord(nil), s.hires...),
		sessions:    maps.Clone(s.sessions),
	}
}

// accessor runs a function against the data with the right locking.
type accessor interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
	now() time.Time
}

// Store holds all data of the memory driver.
type Store struct {
	mu    sync.RWMutex
	st    *state
	clock func() time.Time
}

// NewStore creates an empty store seeded with the configured company keys.
func NewStore(cfg *config.Config) *Store {
	s := &Store{st: newState(), clock: time.Now}
	for key, company := range cfg.Storage.SeedCompanyKeys {
		s.st.companyKeys[key] = entity.CompanyKey{Key: key, Company: company}
	}

	return s
}

// AddCompanyKey provisions a registry entry.
func (s *Store) AddCompanyKey(key, company string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.companyKeys[key] = entity.CompanyKey{Key: key, Company: company}
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.st)
}

func (s *Store) now() time.Time {
	return s.clock()
}

// txAccessor works on a private copy while the store's write lock is held.
type txAccessor struct {
	st    *state
	clock func() time.Time
}

func (a *txAccessor) read(fn func(st *state) error) error  { return fn(a.st) }
func (a *txAccessor) write(fn func(st *state) error) error { return fn(a.st) }
func (a *txAccessor) now() time.Time                       { return a.clock() }

type factory struct {
	acc accessor
}

func (f *factory) UserRepo() repository.UserRepository {
	return &userRepository{acc: f.acc}
}

func (f *factory) CompanyKeyRepo() repository.CompanyKeyRepository {
	return &companyKeyRepository{acc: f.acc}
}

func (f *factory) HiringRecordRepo() repository.HiringRecordRepository {
	return &hiringRecordRepository{acc: f.acc}
}

func (f *factory) SessionRepo() repository.SessionRepository {
	return &sessionRepository{acc: f.acc}
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
// Transactions are serialized.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// NewUserRepository returns a non-transactional UserRepository over the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return (&factory{acc: store}).UserRepo()
}

// NewCompanyKeyRepository returns a non-transactional CompanyKeyRepository over the store.
func NewCompanyKeyRepository(store *Store) repository.CompanyKeyRepository {
	return (&factory{acc: store}).CompanyKeyRepo()
}

// NewHiringRecordRepository returns a non-transactional HiringRecordRepository over the store.
func NewHiringRecordRepository(store *Store) repository.HiringRecordRepository {
	return (&factory{acc: store}).HiringRecordRepo()
}

// NewSessionRepository returns a non-transactional SessionRepository over the store.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return (&factory{acc: store}).SessionRepo()
}
