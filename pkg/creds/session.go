package creds

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/segmentio/ksuid"
	"gopkg.in/yaml.v3"
)

// Session identifies one authenticated interactive session. It is passed
// explicitly to operations that need authorization instead of living in
// process-wide state.
type Session struct {
	ID        string    `yaml:"id"`
	Username  string    `yaml:"username"`
	Role      Role      `yaml:"role"`
	StartedAt time.Time `yaml:"started_at"`
}

// ErrNoSession is returned when no session file exists for the caller.
var ErrNoSession = &CredError{"not logged in"}

// Login verifies the credentials and mints a session with a fresh ksuid.
func (s *CredentialStore) Login(username, password string) (*Session, error) {
	role, err := s.Check(username, password)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        ksuid.New().String(),
		Username:  username,
		Role:      role,
		StartedAt: time.Now(),
	}, nil
}

// SaveSession persists a session to the given path with owner-only
// permissions, so later command invocations can resume it.
func SaveSession(session *Session, path string) error {
	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// LoadSession reads a previously saved session. A missing file means the
// caller is not logged in.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if session.Username == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

// ClearSession removes the session file. Clearing an absent session is not
// an error.
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
