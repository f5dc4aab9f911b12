package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/scrub/internal/logger"
)

const appName = "scrub"

type Config struct {
	Icons     string    `koanf:"icons"`      // "nerd", "unicode", or "none"
	Volume    float64   `koanf:"volume"`     // initial output level, 0.0-1.0
	ScrubStep float64   `koanf:"scrub_step"` // seconds per keyboard nudge
	Log       LogConfig `koanf:"log"`
}

// LogConfig controls the diagnostic stream.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error"
	Output string `koanf:"output"` // "file" or "stderr"
	File   string `koanf:"file"`   // defaults to $XDG_STATE_HOME/scrub/scrub.log
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Icons:     "none",
		Volume:    1,
		ScrubStep: 1,
		Log: LogConfig{
			Level:  "info",
			Output: logger.OutputFile,
		},
	}
}

// Load reads the config files in priority order. On error the returned
// config still holds usable defaults.
func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return finalize(Default()), errors.Wrapf(err, "parse %s", path)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return finalize(Default()), errors.Wrap(err, "unmarshal config")
	}

	return finalize(cfg), nil
}

// finalize applies defaults for out-of-range values and expands paths.
func finalize(cfg *Config) *Config {
	if cfg.Volume < 0 || cfg.Volume > 1 {
		cfg.Volume = 1
	}
	if cfg.ScrubStep <= 0 {
		cfg.ScrubStep = 1
	}

	cfg.Log.Output = strings.ToLower(cfg.Log.Output)
	if cfg.Log.Output != logger.OutputStderr {
		cfg.Log.Output = logger.OutputFile
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile()
	}
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg
}

// LoggerConfig adapts the log section for logger.Init.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Output: c.Log.Output,
		Level:  c.Log.Level,
		File:   c.Log.File,
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/scrub/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func defaultLogFile() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
