package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds application defaults for the analyzer CLIs.
// Values can come from a YAML file or environment variables; the
// environment always overrides the file.
type Config struct {
	// Encoding is the default character set for input files.
	Encoding string `yaml:"encoding" env:"TSVINFO_ENCODING" env-default:"utf-8"`

	// PreviewLines is the default number of preview lines.
	PreviewLines int `yaml:"preview_lines" env:"TSVINFO_PREVIEW_LINES" env-default:"5"`

	// MaxFileSize rejects inputs larger than this many bytes.
	// Analysis is memory-resident, so this bounds memory use.
	MaxFileSize int64 `yaml:"max_file_size" env:"TSVINFO_MAX_FILE_SIZE" env-default:"100000000"`

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"TSVINFO_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the given YAML file, if any, with
// environment overrides applied. An empty path loads from the
// environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PreviewLines < 0 {
		return fmt.Errorf("preview_lines must be >= 0, got %d", c.PreviewLines)
	}

	if c.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0, got %d", c.MaxFileSize)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}
