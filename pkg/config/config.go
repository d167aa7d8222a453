package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the rollbook configuration
type Config struct {
	DataDir string `yaml:"data_dir"`
	Files   Files  `yaml:"files"`
}

// Files contains the names of the backing and artifact files, all resolved
// relative to DataDir.
type Files struct {
	Records     string `yaml:"records"`
	Credentials string `yaml:"credentials"`
	Backup      string `yaml:"backup"`
	CSV         string `yaml:"csv"`
	Report      string `yaml:"report"`
	Session     string `yaml:"session"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Files: Files{
			Records:     "students.txt",
			Credentials: "credentials.txt",
			Backup:      "students_backup.txt",
			CSV:         "students.csv",
			Report:      "report.txt",
			Session:     "session.yaml",
		},
	}
}

// RecordPath returns the resolved path of the student record file.
func (c *Config) RecordPath() string { return filepath.Join(c.DataDir, c.Files.Records) }

// CredentialPath returns the resolved path of the credential file.
func (c *Config) CredentialPath() string { return filepath.Join(c.DataDir, c.Files.Credentials) }

// BackupPath returns the resolved path of the backup file.
func (c *Config) BackupPath() string { return filepath.Join(c.DataDir, c.Files.Backup) }

// CSVPath returns the resolved path of the CSV export artifact.
func (c *Config) CSVPath() string { return filepath.Join(c.DataDir, c.Files.CSV) }

// ReportPath returns the resolved path of the report export artifact.
func (c *Config) ReportPath() string { return filepath.Join(c.DataDir, c.Files.Report) }

// SessionPath returns the resolved path of the saved session file.
func (c *Config) SessionPath() string { return filepath.Join(c.DataDir, c.Files.Session) }

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig creates and saves a new configuration if one doesn't exist
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	if ConfigExists(configPath) {
		return LoadConfig(configPath)
	}

	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./rollbook.yaml"
	}

	configDir := filepath.Join(homeDir, ".config", "rollbook")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
