// Package maint provides file maintenance over the record file: byte-for-byte
// backup and restore, export to CSV and a plain-text report, and a reversible
// byte-wise obfuscation transform.
package maint

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Config holds the file paths the maintenance utilities operate on.
type Config struct {
	RecordPath string // The live record file
	BackupPath string // Fixed backup destination
	CSVPath    string // CSV export destination
	ReportPath string // Plain-text report destination
}

// Errors
var (
	ErrNoRecordFile = &MaintError{"record file does not exist"}
	ErrNoBackupFile = &MaintError{"backup file does not exist"}
)

// MaintError represents a maintenance error.
type MaintError struct {
	Message string
}

func (e *MaintError) Error() string {
	return e.Message
}

// Manager runs the maintenance operations.
type Manager struct {
	config Config
}

// NewManager creates a maintenance manager.
func NewManager(config Config) *Manager {
	return &Manager{config: config}
}

// Backup copies the record file byte for byte to the backup path. An absent
// source is reported as a failure rather than producing an empty backup.
func (m *Manager) Backup() error {
	return copyFile(m.config.RecordPath, m.config.BackupPath, ErrNoRecordFile)
}

// Restore copies the backup byte for byte over the record file. It is
// destructive; callers are responsible for confirming before invoking.
func (m *Manager) Restore() error {
	return copyFile(m.config.BackupPath, m.config.RecordPath, ErrNoBackupFile)
}

func copyFile(srcPath, dstPath string, missing error) error {
	src, err := os.Open(srcPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return missing
		}
		return fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dstPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", srcPath, dstPath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dstPath, err)
	}
	return nil
}

// obfuscateChunkSize is the fixed read/write chunk for the XOR transform.
const obfuscateChunkSize = 4096

// Obfuscate applies a byte-wise XOR with a single-byte key to the record file
// in place, streamed in fixed-size chunks. The transform is involutive:
// running it twice with the same key restores the file exactly. No flag is
// kept; callers must remember whether the file is currently transformed.
func (m *Manager) Obfuscate(key byte) error {
	f, err := os.OpenFile(m.config.RecordPath, os.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoRecordFile
		}
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, obfuscateChunkSize)
	var offset int64
	for {
		n, err := f.ReadAt(buf, offset)
		if n > 0 {
			for i := 0; i < n; i++ {
				buf[i] ^= key
			}
			if _, werr := f.WriteAt(buf[:n], offset); werr != nil {
				return fmt.Errorf("failed to write transformed chunk: %w", werr)
			}
			offset += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record file: %w", err)
		}
	}
	return nil
}
