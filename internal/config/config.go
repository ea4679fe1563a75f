// Package config loads task-cli settings from TOML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/taskcli/internal/paths"
	"github.com/joho/godotenv"
)

const (
	// ProjectFile is the per-directory config file name.
	ProjectFile = "task-cli.toml"

	// EnvFile is loaded from the working directory when present.
	EnvFile = ".env"

	// DefaultStoreFile is the backing file used when nothing else is configured.
	DefaultStoreFile = "tasks.json"

	DefaultLogLevel    = "warn"
	DefaultLogEncoding = "console"
)

// Environment variables that override file settings.
const (
	EnvStoreFile   = "TASK_CLI_FILE"
	EnvLogLevel    = "TASK_CLI_LOG_LEVEL"
	EnvLogEncoding = "TASK_CLI_LOG_ENCODING"
)

// Config represents the merged task-cli configuration.
type Config struct {
	Store Store `toml:"store"`
	Log   Log   `toml:"log"`
}

// Store contains backing file settings.
type Store struct {
	// File is the path of the JSON task document. Relative paths are
	// resolved against the working directory.
	File string `toml:"file"`
}

// Log contains logger settings.
type Log struct {
	// Level is a zap level name (debug, info, warn, error).
	Level string `toml:"level"`

	// Encoding is "console" or "json".
	Encoding string `toml:"encoding"`
}

// Default returns the configuration used when no files or variables are set.
func Default() *Config {
	return &Config{
		Store: Store{File: DefaultStoreFile},
		Log:   Log{Level: DefaultLogLevel, Encoding: DefaultLogEncoding},
	}
}

// Load merges defaults, the global config file, the project config file in
// workDir, and the environment (after loading workDir/.env).
func Load(workDir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(workDir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(Default(), globalCfg, projectCfg, globalMeta, projectMeta)

	if err := loadEnvFile(filepath.Join(workDir, EnvFile)); err != nil {
		return nil, err
	}
	applyEnv(merged)

	merged.Store.File = paths.Resolve(workDir, merged.Store.File)
	return merged, nil
}

func globalConfigPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(base, globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := *base
	merged.Store.File = mergeString(merged.Store.File,
		layer{globalMeta.IsDefined("store", "file"), globalCfg.Store.File},
		layer{projectMeta.IsDefined("store", "file"), projectCfg.Store.File})
	merged.Log.Level = mergeString(merged.Log.Level,
		layer{globalMeta.IsDefined("log", "level"), globalCfg.Log.Level},
		layer{projectMeta.IsDefined("log", "level"), projectCfg.Log.Level})
	merged.Log.Encoding = mergeString(merged.Log.Encoding,
		layer{globalMeta.IsDefined("log", "encoding"), globalCfg.Log.Encoding},
		layer{projectMeta.IsDefined("log", "encoding"), projectCfg.Log.Encoding})
	return &merged
}

type layer struct {
	defined bool
	value   string
}

// mergeString returns the last defined, non-blank layer value.
func mergeString(fallback string, layers ...layer) string {
	value := fallback
	for _, l := range layers {
		if !l.defined {
			continue
		}
		if trimmed := strings.TrimSpace(l.value); trimmed != "" {
			value = trimmed
		}
	}
	return value
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func applyEnv(cfg *Config) {
	if value := strings.TrimSpace(os.Getenv(EnvStoreFile)); value != "" {
		cfg.Store.File = value
	}
	if value := strings.TrimSpace(os.Getenv(EnvLogLevel)); value != "" {
		cfg.Log.Level = value
	}
	if value := strings.TrimSpace(os.Getenv(EnvLogEncoding)); value != "" {
		cfg.Log.Encoding = value
	}
}
