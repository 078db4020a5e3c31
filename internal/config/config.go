package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mikhailocampo/rift-rewind-hackathon/internal/errors"
	"github.com/mikhailocampo/rift-rewind-hackathon/internal/summary"
)

// Environment variables recognized by Load.
const (
	EnvMaxDepth      = "RIFTSCOPE_MAX_DEPTH"
	EnvMaxArrayItems = "RIFTSCOPE_MAX_ARRAY_ITEMS"
	EnvDebug         = "RIFTSCOPE_DEBUG"
)

// Config holds the runtime defaults for the summarizer bounds. CLI flags
// take precedence over these; these take precedence over the built-ins.
type Config struct {
	MaxDepth      int
	MaxArrayItems int
	Debug         bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	opts := summary.DefaultOptions()
	return &Config{
		MaxDepth:      opts.MaxDepth,
		MaxArrayItems: opts.MaxArrayItems,
	}
}

// Load builds a Config from defaults, a .env file when one exists in the
// working directory, and the process environment, in that order.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := NewConfig()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if raw, ok := os.LookupEnv(EnvMaxDepth); ok {
		n, err := parseBound(EnvMaxDepth, raw)
		if err != nil {
			return err
		}
		c.MaxDepth = n
	}
	if raw, ok := os.LookupEnv(EnvMaxArrayItems); ok {
		n, err := parseBound(EnvMaxArrayItems, raw)
		if err != nil {
			return err
		}
		c.MaxArrayItems = n
	}
	if raw, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.NewInputError(
				fmt.Sprintf("invalid %s value '%s'", EnvDebug, raw), err)
		}
		c.Debug = b
	}
	return nil
}

func parseBound(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewInputError(
			fmt.Sprintf("invalid %s value '%s'", name, raw), err)
	}
	if n < 0 {
		return 0, errors.NewInputError(
			fmt.Sprintf("%s must be non-negative, got %d", name, n),
			errors.ErrInvalidOptions)
	}
	return n, nil
}

// Options returns the summarizer bounds this config describes.
func (c *Config) Options() summary.Options {
	return summary.Options{
		MaxDepth:      c.MaxDepth,
		MaxArrayItems: c.MaxArrayItems,
	}
}
