package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"recruit/internal/errors"
)

// FileStore persists the session token between CLI invocations. Only the
// token is written; the account is always fetched again from the server.
type FileStore struct {
	*Store

	path string
}

type persistedSession struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// NewFileStore wraps an empty Store with the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Store: NewStore(), path: path}
}

// Path is the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// LoadToken reads the saved token. A missing file yields an empty token.
func (f *FileStore) LoadToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "read session file %s", f.path)
	}

	var saved persistedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return "", errors.Wrapf(err, "parse session file %s", f.path)
	}

	return saved.Token, nil
}

// Save writes the token of the current session, readable by the owner only.
func (f *FileStore) Save() error {
	_, token, ok := f.Get()
	if !ok {
		return errors.New("no session to save")
	}

	data, err := json.Marshal(persistedSession{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrapf(err, "create session dir for %s", f.path)
	}

	return errors.Wrapf(os.WriteFile(f.path, data, 0o600), "write session file %s", f.path)
}

// Forget clears the session and removes the file.
func (f *FileStore) Forget() error {
	f.Clear()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "remove session file %s", f.path)
	}

	return nil
}
