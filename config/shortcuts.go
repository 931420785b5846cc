package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"ide-commands/cmd/interfaces"
	"ide-commands/keys"
	"ide-commands/log"
)

const (
	// DefaultLockTimeout is the default timeout for acquiring locks
	DefaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 100 * time.Millisecond
)

// UserShortcuts is the on-disk form of the user's overrides: a flat object
// from command id to shortcut string. An empty string removes a default.
type UserShortcuts map[interfaces.CommandID]string

// ShortcutStore persists user shortcut overrides. Reads take a shared lock and
// writes an exclusive one, so an IDE and the CLI can edit the same file.
type ShortcutStore struct {
	path        string
	lockFile    *flock.Flock
	lockTimeout time.Duration
}

// NewShortcutStore creates a store for the file at path.
func NewShortcutStore(path string) *ShortcutStore {
	return &ShortcutStore{
		path:        path,
		lockFile:    flock.New(path + ".lock"),
		lockTimeout: DefaultLockTimeout,
	}
}

// Path returns the shortcut file location.
func (s *ShortcutStore) Path() string {
	return s.path
}

// LoadUserShortcuts loads the overrides. If it cannot be done, it logs a
// warning and returns no overrides so the defaults apply.
func LoadUserShortcuts(store *ShortcutStore) UserShortcuts {
	user, err := store.Load()
	if err != nil {
		log.WarningLog.Printf("failed to load shortcuts, using defaults: %v", err)
		return UserShortcuts{}
	}
	return user
}

// Load reads the overrides with a shared lock. A missing file is empty.
func (s *ShortcutStore) Load() (UserShortcuts, error) {
	var user UserShortcuts
	err := s.withLock(false, func() error {
		var err error
		user, err = s.read()
		return err
	})
	return user, err
}

// Save replaces the file contents.
func (s *ShortcutStore) Save(user UserShortcuts) error {
	return s.withLock(true, func() error {
		return s.write(user)
	})
}

// Set stores one override. The shortcut must be valid and not reserved; the
// empty string unbinds the command.
func (s *ShortcutStore) Set(id interfaces.CommandID, shortcut string) error {
	if _, err := keys.ParseShortcut(shortcut); err != nil {
		return fmt.Errorf("invalid shortcut for %s: %w", id, err)
	}
	return s.update(func(user UserShortcuts) {
		user[id] = shortcut
	})
}

// Reset drops the override of id so its default applies again.
func (s *ShortcutStore) Reset(id interfaces.CommandID) error {
	return s.update(func(user UserShortcuts) {
		delete(user, id)
	})
}

// ResetAll drops every override.
func (s *ShortcutStore) ResetAll() error {
	return s.withLock(true, func() error {
		return s.write(UserShortcuts{})
	})
}

// update is a read-modify-write under one exclusive lock, so concurrent
// editors never lose each other's changes.
func (s *ShortcutStore) update(fn func(UserShortcuts)) error {
	return s.withLock(true, func() error {
		user, err := s.read()
		if err != nil {
			return err
		}
		fn(user)
		return s.write(user)
	})
}

func (s *ShortcutStore) withLock(exclusive bool, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if exclusive {
		locked, err = s.lockFile.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = s.lockFile.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", filepath.Base(s.path), err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock on %s within timeout", filepath.Base(s.path))
	}
	defer s.lockFile.Unlock()

	return fn()
}

func (s *ShortcutStore) read() (UserShortcuts, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return UserShortcuts{}, nil
		}
		return nil, fmt.Errorf("failed to read shortcut file: %w", err)
	}

	user := UserShortcuts{}
	if len(data) == 0 {
		return user, nil
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse shortcut file: %w", err)
	}
	return user, nil
}

func (s *ShortcutStore) write(user UserShortcuts) error {
	if user == nil {
		user = UserShortcuts{}
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shortcuts: %w", err)
	}
	return writeFileAtomic(s.path, append(data, '\n'))
}
