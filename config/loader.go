package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/xmlrpc-serializer/serializer"
)

// DefaultPaths are tried in order when no explicit path is given
var DefaultPaths = []string{"xmlrpc.yml", "config.yml"}

// Default returns the configuration used when no file is found
func Default() AppConfig {
	return AppConfig{
		Log: LogConfig{Level: "info"},
	}
}

// LoadAppConfig loads and validates the configuration. An empty path
// searches DefaultPaths and falls back to Default when none exists; an
// explicit path must be readable.
func LoadAppConfig(path string) (AppConfig, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
	} else {
		for _, p := range DefaultPaths {
			data, err = os.ReadFile(p)
			if err == nil || !errors.Is(err, fs.ErrNotExist) {
				break
			}
		}
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		if err != nil {
			return AppConfig{}, err
		}
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration document
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

// Validate checks the struct tag rules. Call it again after applying
// command line overrides.
func (c AppConfig) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// indentation may only be spaces or tabs
	_ = v.RegisterValidation("xmlspace", func(fl validator.FieldLevel) bool {
		return strings.Trim(fl.Field().String(), " \t") == ""
	})
	return v
}

// SerializerOptions maps the output section onto encoder options
func (c AppConfig) SerializerOptions() serializer.Options {
	return serializer.Options{
		Indent:   c.Output.Indent,
		MaxDepth: c.Output.MaxDepth,
	}
}

// SlogLevel returns the configured log level
func (c AppConfig) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
