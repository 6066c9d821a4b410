package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bgshelf/bgshelf/internal/model"
)

// Store persists the auth token and cached user between runs, the
// counterpart of the browser's authToken/user local-storage keys.
// All writes go through this type; nothing else touches the files.
type Store struct {
	tokenFile string
	userFile  string
}

// NewStore creates a Store rooted at the given directory
func NewStore(dir string) *Store {
	return &Store{
		tokenFile: filepath.Join(dir, "token"),
		userFile:  filepath.Join(dir, "user.json"),
	}
}

// LoadToken reads the persisted token. A missing file means no token.
func (s *Store) LoadToken() (string, error) {
	data, err := os.ReadFile(s.tokenFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// LoadUser reads the cached user. A missing or unreadable file means no
// user; a corrupt file is discarded rather than surfaced.
func (s *Store) LoadUser() (*model.User, error) {
	data, err := os.ReadFile(s.userFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		_ = os.Remove(s.userFile)
		return nil, nil
	}
	return &user, nil
}

// Save persists the token and user together
func (s *Store) Save(token string, user *model.User) error {
	dir := filepath.Dir(s.tokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenFile, []byte(token), 0600); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.userFile, data, 0600)
}

// Clear removes the persisted token and user
func (s *Store) Clear() error {
	if err := os.Remove(s.tokenFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.Remove(s.userFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
