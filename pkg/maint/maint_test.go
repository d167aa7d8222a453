package maint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) (*Manager, Config) {
	t.Helper()
	tmpDir := t.TempDir()
	config := Config{
		RecordPath: filepath.Join(tmpDir, "students.txt"),
		BackupPath: filepath.Join(tmpDir, "students_backup.txt"),
		CSVPath:    filepath.Join(tmpDir, "students.csv"),
		ReportPath: filepath.Join(tmpDir, "report.txt"),
	}
	return NewManager(config), config
}

func TestBackupAndRestore(t *testing.T) {
	manager, config := newTestManager(t)

	content := []byte("1|Ada Lovelace|91.00|88.50|79.00\n2|Alan Turing|100.00|97.00|85.00\n")
	if err := os.WriteFile(config.RecordPath, content, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if err := manager.Backup(); err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	backed, err := os.ReadFile(config.BackupPath)
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if !bytes.Equal(backed, content) {
		t.Errorf("backup is not a byte-for-byte copy")
	}

	// Clobber the live file, then restore.
	if err := os.WriteFile(config.RecordPath, []byte("99|Clobbered|0.00|0.00|0.00\n"), 0644); err != nil {
		t.Fatalf("Failed to clobber record file: %v", err)
	}
	if err := manager.Restore(); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	restored, err := os.ReadFile(config.RecordPath)
	if err != nil {
		t.Fatalf("Failed to read restored file: %v", err)
	}
	if !bytes.Equal(restored, content) {
		t.Errorf("restore did not bring back the original content")
	}
}

func TestBackup_MissingSource(t *testing.T) {
	manager, _ := newTestManager(t)

	if err := manager.Backup(); err != ErrNoRecordFile {
		t.Errorf("expected ErrNoRecordFile, got %v", err)
	}
}

func TestRestore_MissingBackup(t *testing.T) {
	manager, _ := newTestManager(t)

	if err := manager.Restore(); err != ErrNoBackupFile {
		t.Errorf("expected ErrNoBackupFile, got %v", err)
	}
}

func TestObfuscate_Involution(t *testing.T) {
	manager, config := newTestManager(t)

	// Content longer than one chunk, with newlines and high bytes mixed in.
	original := bytes.Repeat([]byte("7|Chunky Record|12.00|34.00|56.00\n\xfe\x01"), 300)
	if err := os.WriteFile(config.RecordPath, original, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if err := manager.Obfuscate('k'); err != nil {
		t.Fatalf("Obfuscate failed: %v", err)
	}
	transformed, err := os.ReadFile(config.RecordPath)
	if err != nil {
		t.Fatalf("Failed to read transformed file: %v", err)
	}
	if bytes.Equal(transformed, original) {
		t.Fatalf("transform left the file unchanged")
	}
	if len(transformed) != len(original) {
		t.Fatalf("transform changed the file size: %d != %d", len(transformed), len(original))
	}

	if err := manager.Obfuscate('k'); err != nil {
		t.Fatalf("second Obfuscate failed: %v", err)
	}
	roundTripped, err := os.ReadFile(config.RecordPath)
	if err != nil {
		t.Fatalf("Failed to read round-tripped file: %v", err)
	}
	if !bytes.Equal(roundTripped, original) {
		t.Errorf("applying the transform twice did not restore the original")
	}
}

func TestObfuscate_MissingFile(t *testing.T) {
	manager, _ := newTestManager(t)

	if err := manager.Obfuscate('k'); err != ErrNoRecordFile {
		t.Errorf("expected ErrNoRecordFile, got %v", err)
	}
}
