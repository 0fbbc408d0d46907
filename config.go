package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir = ".blog-admin"
	dataPathEnv      = "BLOG_ADMIN_DATA_PATH"
	minImportTimeout = 5 * time.Second
)

//go:embed config/settings.yaml
var defaultSettings string

// Settings represents the YAML configuration structure
type Settings struct {
	DataPath      string        `yaml:"data_path"`
	SiteRoot      string        `yaml:"site_root"`
	MarkdownFile  string        `yaml:"markdown_file"`
	ImportTimeout time.Duration `yaml:"import_timeout"`
}

// ConfigOverrides holds values given on the command line
type ConfigOverrides struct {
	DataPath     *string
	SettingsPath *string
}

// Config holds the resolved settings for one invocation
type Config struct {
	Settings *Settings
	DataPath string
}

// GetConfigPath returns the full path to a config file
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// NewConfig resolves settings and the store path.
// Precedence for the store path: flag, environment, settings file.
func NewConfig(overrides *ConfigOverrides) (*Config, error) {
	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Ignoring unreadable .env", zap.Error(err))
	}

	var (
		settings *Settings
		err      error
	)
	if overrides != nil && overrides.SettingsPath != nil {
		// Explicit settings file must exist
		settings, err = loadSettingsRequired(*overrides.SettingsPath)
	} else {
		settings, err = loadSettings(GetConfigPath("settings.yaml"))
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	dataPath := settings.DataPath
	if env := os.Getenv(dataPathEnv); env != "" {
		dataPath = env
	}
	if overrides != nil && overrides.DataPath != nil && *overrides.DataPath != "" {
		dataPath = *overrides.DataPath
	}

	logger.Debug("Resolved configuration",
		zap.String("data_path", dataPath),
		zap.String("site_root", settings.SiteRoot))

	return &Config{Settings: settings, DataPath: dataPath}, nil
}

// loadSettings reads path, falling back to the embedded defaults when it
// does not exist
func loadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return parseSettings([]byte(defaultSettings))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return parseSettings(data)
}

func loadSettingsRequired(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return parseSettings(data)
}

// parseSettings layers data over the embedded defaults
func parseSettings(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal([]byte(defaultSettings), &settings); err != nil {
		return nil, fmt.Errorf("failed to parse default settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.ImportTimeout < minImportTimeout {
		logger.Warn("import_timeout below minimum, using minimum",
			zap.Duration("import_timeout", settings.ImportTimeout),
			zap.Duration("minimum", minImportTimeout))
		settings.ImportTimeout = minImportTimeout
	}

	return &settings, nil
}
