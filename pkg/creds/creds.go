// Package creds implements the username/password/role credential store and
// the login session passed to role-gated operations.
package creds

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Role is an access role, stored upper-case in the credential file.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleStaff     Role = "STAFF"
	RolePrincipal Role = "PRINCIPAL"
	RoleStudent   Role = "STUDENT"
	RoleGuest     Role = "GUEST"
)

// ParseRole case-normalizes a role token and rejects anything outside the
// known set.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleStaff, RolePrincipal, RoleStudent, RoleGuest:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CanManageRecords reports whether the role may add, update or delete
// student records.
func (r Role) CanManageRecords() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanAdminister reports whether the role may manage credentials, wipe the
// store or toggle obfuscation.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}

// Entry is one line of the credential file. Passwords are stored in clear
// text; this is a stated property of the format, not an oversight to harden.
type Entry struct {
	Username string
	Password string
	Role     Role
}

// Config holds configuration for a credential store.
type Config struct {
	Path string // Path to the credential file
}

// Errors
var (
	ErrInvalidCredentials = &CredError{"invalid username or password"}
	ErrUserNotFound       = &CredError{"username not found"}
)

// CredError represents a credential store error.
type CredError struct {
	Message string
}

func (e *CredError) Error() string {
	return e.Message
}

// CredentialStore provides whole-file operations over the credential file.
// Like the record store it keeps no cache and re-reads the file on every
// operation.
type CredentialStore struct {
	config Config
}

// NewCredentialStore creates a credential store over the configured path.
func NewCredentialStore(config Config) *CredentialStore {
	return &CredentialStore{config: config}
}

// Path returns the path of the backing credential file.
func (s *CredentialStore) Path() string {
	return s.config.Path
}

// EnsureDefaults seeds the credential file with the five default accounts on
// first run. An existing file is left untouched.
func (s *CredentialStore) EnsureDefaults() error {
	if _, err := os.Stat(s.config.Path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat credential file: %w", err)
	}

	defaults := []Entry{
		{"admin", "admin", RoleAdmin},
		{"staff", "staff", RoleStaff},
		{"guest", "guest", RoleGuest},
		{"principal", "principal", RolePrincipal},
		{"student", "student", RoleStudent},
	}
	return s.writeAll(defaults)
}

// Check scans the file for the first entry matching both username and
// password and returns its role. Later duplicate usernames are shadowed by
// whichever entry appears first.
func (s *CredentialStore) Check(username, password string) (Role, error) {
	entries, err := s.loadAll()
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Username == username && e.Password == password {
			return e.Role, nil
		}
	}
	return "", ErrInvalidCredentials
}

// Add appends a credential entry. Usernames are not deduplicated: a duplicate
// is silently shadowed by the earlier entry on lookup.
func (s *CredentialStore) Add(username, password string, role Role) error {
	if err := validateToken("username", username); err != nil {
		return err
	}
	if err := validateToken("password", password); err != nil {
		return err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}

	f, err := os.OpenFile(s.config.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open credential file for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %s %s\n", username, password, role); err != nil {
		return fmt.Errorf("failed to append credential: %w", err)
	}
	return nil
}

// ResetPassword rewrites the file replacing the password on every line whose
// username matches, not just the first. It fails with ErrUserNotFound when no
// line matched and leaves the file unchanged.
func (s *CredentialStore) ResetPassword(username, newPassword string) error {
	if err := validateToken("password", newPassword); err != nil {
		return err
	}

	entries, err := s.loadAll()
	if err != nil {
		return err
	}

	found := false
	for i := range entries {
		if entries[i].Username == username {
			entries[i].Password = newPassword
			found = true
		}
	}
	if !found {
		return ErrUserNotFound
	}
	return s.writeAll(entries)
}

// Remove rewrites the file omitting every line with the given username. It
// fails with ErrUserNotFound when none existed.
func (s *CredentialStore) Remove(username string) error {
	entries, err := s.loadAll()
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Username == username {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrUserNotFound
	}
	return s.writeAll(kept)
}

// loadAll reads every well-formed credential line. Lines without exactly
// three whitespace-separated tokens are skipped.
func (s *CredentialStore) loadAll() ([]Entry, error) {
	f, err := os.Open(s.config.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open credential file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			continue
		}
		entries = append(entries, Entry{
			Username: fields[0],
			Password: fields[1],
			Role:     Role(strings.ToUpper(fields[2])),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	return entries, nil
}

// writeAll replaces the file through a temp file and rename, same as the
// record store's overwrite path.
func (s *CredentialStore) writeAll(entries []Entry) error {
	dir := filepath.Dir(s.config.Path)
	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("failed to create temp credential file: %w", err)
	}
	tmpPath := tmp.Name()

	for _, e := range entries {
		if _, err := fmt.Fprintf(tmp, "%s %s %s\n", e.Username, e.Password, e.Role); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("failed to write credential: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp credential file: %w", err)
	}

	if err := os.Rename(tmpPath, s.config.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace credential file: %w", err)
	}
	return nil
}

// validateToken rejects empty tokens and tokens with embedded whitespace,
// which would corrupt the whitespace-separated line format.
func validateToken(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return fmt.Errorf("%s must not contain whitespace", field)
	}
	return nil
}
