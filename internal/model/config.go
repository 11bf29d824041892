package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppConfig is the top-level application configuration. It covers the
// machine-local concerns (file locations); display preferences live in
// the Settings row of the database so they travel with the data.
type AppConfig struct {
	// DatabasePath is where the SQLite database lives.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	// BackupDir is where exported backup documents are written.
	BackupDir string `mapstructure:"backup_dir" yaml:"backup_dir"`

	// BackupFileName is the default name for exported backups.
	BackupFileName string `mapstructure:"backup_file_name" yaml:"backup_file_name"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/enscribe/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "enscribe", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dataDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".local", "share", "enscribe")
	}
	return &AppConfig{
		DatabasePath:   filepath.Join(dataDir, "enscribe.db"),
		BackupDir:      dataDir,
		BackupFileName: "enscribe_backup.json",
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := defaultAppConfig()
	v.SetDefault("database_path", defaults.DatabasePath)
	v.SetDefault("backup_dir", defaults.BackupDir)
	v.SetDefault("backup_file_name", defaults.BackupFileName)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database_path", cfg.DatabasePath)
	v.Set("backup_dir", cfg.BackupDir)
	v.Set("backup_file_name", cfg.BackupFileName)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
