package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/ep"
	envPrefix  = "EP"

	KeyInputPath        = "input.path"
	KeyInputFormat      = "input.format"
	KeyInputDateFormats = "input.date_formats"
	KeyParallel         = "aggregate.parallel"
	KeyWorkers          = "aggregate.workers"
	KeyLogLevel         = "log.level"

	DefaultInputPath = "data/EmployeeProjects.csv"
	DefaultLogLevel  = "warn"
)

type Config struct {
	Input     InputConfig
	Aggregate AggregateConfig
	LogLevel  string
	// File is the config file that was read, empty when none was found.
	File string
}

type InputConfig struct {
	Path        string
	Format      string
	DateFormats []string
}

type AggregateConfig struct {
	Parallel bool
	Workers  int
}

// Load resolves configuration from flags already bound to v, EP_* environment
// variables, the config file, and defaults, in that order. An explicit
// configPath must exist; the default location is optional.
func Load(v *viper.Viper, configPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Input: InputConfig{
			Path:        v.GetString(KeyInputPath),
			Format:      v.GetString(KeyInputFormat),
			DateFormats: v.GetStringSlice(KeyInputDateFormats),
		},
		Aggregate: AggregateConfig{
			Parallel: v.GetBool(KeyParallel),
			Workers:  v.GetInt(KeyWorkers),
		},
		LogLevel: v.GetString(KeyLogLevel),
		File:     v.ConfigFileUsed(),
	}

	if strings.TrimSpace(cfg.Input.Path) == "" {
		return Config{}, errors.New("input path is empty")
	}
	if cfg.Aggregate.Workers < 1 {
		cfg.Aggregate.Workers = 1
	}

	return cfg, nil
}

// DefaultDir is where Load looks for config.toml when no path is given.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configName+"."+configType), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyInputPath, DefaultInputPath)
	v.SetDefault(KeyInputFormat, "")
	v.SetDefault(KeyInputDateFormats, []string{})
	v.SetDefault(KeyParallel, false)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}
