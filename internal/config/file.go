package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	Input     inputSchema     `toml:"input"`
	Aggregate aggregateSchema `toml:"aggregate"`
	Log       logSchema       `toml:"log"`
}

type inputSchema struct {
	Path        string   `toml:"path"`
	Format      string   `toml:"format"`
	DateFormats []string `toml:"date_formats"`
}

type aggregateSchema struct {
	Parallel bool `toml:"parallel"`
	Workers  int  `toml:"workers"`
}

type logSchema struct {
	Level string `toml:"level"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Input: inputSchema{
			Path:        cfg.Input.Path,
			Format:      cfg.Input.Format,
			DateFormats: cfg.Input.DateFormats,
		},
		Aggregate: aggregateSchema{
			Parallel: cfg.Aggregate.Parallel,
			Workers:  cfg.Aggregate.Workers,
		},
		Log: logSchema{Level: cfg.LogLevel},
	}
}

// Defaults is the configuration written by WriteDefault.
func Defaults() Config {
	return Config{
		Input: InputConfig{
			Path:        DefaultInputPath,
			DateFormats: append([]string(nil), dates.DefaultLayouts...),
		},
		Aggregate: AggregateConfig{Workers: 4},
		LogLevel:  DefaultLogLevel,
	}
}

// WriteDefault creates a config file at path holding Defaults. It refuses to
// replace an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	return Write(path, Defaults())
}

// Encode renders cfg in the config file format.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}

	return data, nil
}

// Write stores cfg atomically through a temp file in the target directory.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
