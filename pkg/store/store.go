package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssharma/rollbook/pkg/codec"
	"github.com/ssharma/rollbook/pkg/student"
)

// RecordStore provides whole-file operations over the student record file.
//
// The store keeps no in-memory cache: every operation re-reads the backing
// file, so callers always observe the latest persisted state at O(n) cost per
// operation. There is no locking across processes; the system is defined for
// one interactive session at a time and the last writer wins.
type RecordStore struct {
	config Config
	codec  *codec.LineCodec
}

// NewRecordStore creates a record store over the configured file path.
func NewRecordStore(config Config) *RecordStore {
	return &RecordStore{
		config: config,
		codec:  codec.NewLineCodec(),
	}
}

// Path returns the path of the backing record file.
func (s *RecordStore) Path() string {
	return s.config.Path
}

// LoadAll reads the record file line by line and returns every record that
// decodes. Malformed lines are skipped silently; an absent file is an empty
// store, not an error.
func (s *RecordStore) LoadAll() ([]*student.Record, error) {
	f, err := os.Open(s.config.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	var records []*student.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		r, err := s.codec.Decode(scanner.Text())
		if err != nil {
			// Recovered by skipping; never surfaced per-line.
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	return records, nil
}

// Exists reports whether a record with the given roll is present. It scans a
// fresh load of the file.
func (s *RecordStore) Exists(roll int) (bool, error) {
	records, err := s.LoadAll()
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if r.Roll == roll {
			return true, nil
		}
	}
	return false, nil
}

// Append writes one encoded record to the end of the file. It recomputes the
// derived fields first and does not check roll uniqueness itself; callers
// must call Exists beforehand.
func (s *RecordStore) Append(r *student.Record) error {
	r.Recompute()

	f, err := os.OpenFile(s.config.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open record file for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, s.codec.Encode(r)); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// OverwriteAll replaces the entire file with the given records in the given
// order. This is the only mutation path for update, delete and sort-persist.
// The new content is written to a temp file in the same directory and renamed
// over the original, so a crash mid-write cannot truncate existing data; no
// guarantee beyond whole-file replace is made.
func (s *RecordStore) OverwriteAll(records []*student.Record) error {
	dir := filepath.Dir(s.config.Path)
	tmp, err := os.CreateTemp(dir, ".records-*")
	if err != nil {
		return fmt.Errorf("failed to create temp record file: %w", err)
	}
	tmpPath := tmp.Name()

	// CreateTemp defaults to 0600; match the permissions Append uses.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set temp file permissions: %w", err)
	}

	for _, r := range records {
		r.Recompute()
		if _, err := fmt.Fprintln(tmp, s.codec.Encode(r)); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp record file: %w", err)
	}

	if err := os.Rename(tmpPath, s.config.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace record file: %w", err)
	}
	return nil
}

// Clear removes every record by truncating the file.
func (s *RecordStore) Clear() error {
	return s.OverwriteAll(nil)
}
