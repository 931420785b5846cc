package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"ide-commands/keys"
	"ide-commands/log"
)

const (
	ConfigFileName    = "config.toml"
	ShortcutsFileName = "shortcuts.json"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	return log.GetConfigDir()
}

// LogsConfig mirrors log.LogConfig in the config file.
type LogsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Dir      string `toml:"dir,omitempty"`
	MaxSize  int    `toml:"max_size"`
	MaxFiles int    `toml:"max_files"`
	MaxAge   int    `toml:"max_age"`
	Compress bool   `toml:"compress"`
}

// Config represents the application configuration
type Config struct {
	// Platform overrides the detected platform for shortcut labels
	// ("mac", "windows", "linux"). Empty means detect.
	Platform string `toml:"platform,omitempty"`
	// Desktop marks a build whose host window binds native accelerators, so
	// host-handled commands are not resolved in-app.
	Desktop bool `toml:"desktop"`
	// ShortcutsFile is the user shortcut file. Relative paths are resolved
	// against the config directory.
	ShortcutsFile string `toml:"shortcuts_file"`
	// WatchShortcuts reloads shortcuts when the file changes on disk.
	WatchShortcuts bool `toml:"watch_shortcuts"`
	// ShowStatusLine shows the shortcut hints at the bottom of the screen.
	ShowStatusLine bool `toml:"show_status_line"`

	Logs LogsConfig `toml:"logs"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	logs := log.DefaultLogConfig()
	return &Config{
		ShortcutsFile:  ShortcutsFileName,
		WatchShortcuts: true,
		ShowStatusLine: true,
		Logs: LogsConfig{
			Enabled:  logs.LogsEnabled,
			MaxSize:  logs.LogMaxSize,
			MaxFiles: logs.LogMaxFiles,
			MaxAge:   logs.LogMaxAge,
			Compress: logs.LogCompress,
		},
	}
}

// LoadConfig reads config.toml from dir. A missing file gives the defaults;
// an unreadable one gives the defaults and a warning.
func LoadConfig(dir string) *Config {
	cfg, err := ReadConfig(filepath.Join(dir, ConfigFileName))
	if err != nil {
		log.WarningLog.Printf("failed to load config, using defaults: %v", err)
		return DefaultConfig()
	}
	return cfg
}

// ReadConfig parses one config file over the defaults.
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to config.toml in dir.
func SaveConfig(dir string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, ConfigFileName), data)
}

// PlatformOrDetect returns the configured platform, or the running one.
func (c *Config) PlatformOrDetect() keys.Platform {
	if c.Platform == "" {
		return keys.CurrentPlatform()
	}
	return keys.ParsePlatform(c.Platform)
}

// ShortcutsPath resolves ShortcutsFile against dir.
func (c *Config) ShortcutsPath(dir string) string {
	file := c.ShortcutsFile
	if file == "" {
		file = ShortcutsFileName
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// LogConfig converts the logs section for log.Initialize.
func (c *Config) LogConfig() *log.LogConfig {
	return &log.LogConfig{
		LogsEnabled: c.Logs.Enabled,
		LogsDir:     c.Logs.Dir,
		LogMaxSize:  c.Logs.MaxSize,
		LogMaxFiles: c.Logs.MaxFiles,
		LogMaxAge:   c.Logs.MaxAge,
		LogCompress: c.Logs.Compress,
	}
}

// writeFileAtomic writes to a temporary file first and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Try to clean up the temporary file
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update %s: %w", filepath.Base(path), err)
	}
	return nil
}
