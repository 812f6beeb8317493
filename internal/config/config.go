// Package config loads the shim's TOML configuration: pending-text buffer
// geometry and diagnostics verbosity. A missing file is not an error; the
// defaults match the behavior the shim ships with.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/iamgreaser/forceime/internal/diag"
	"github.com/iamgreaser/forceime/internal/segbuf"
)

// Config is the full shim configuration.
type Config struct {
	Buffer BufferConfig `toml:"buffer"`
	Log    LogConfig    `toml:"log"`
}

// BufferConfig configures the pending-text buffer.
type BufferConfig struct {
	// Capacity is the byte bound on pending text. Minimum 4.
	Capacity int `toml:"capacity"`

	// Placeholder is the single character substituted for an invalid
	// lead byte. Must be one ASCII character.
	Placeholder string `toml:"placeholder"`

	// Chunking is "codepoint" or "grapheme".
	Chunking string `toml:"chunking"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Buffer: BufferConfig{
			Capacity:    segbuf.DefaultCapacity,
			Placeholder: string(rune(segbuf.DefaultPlaceholder)),
			Chunking:    segbuf.ChunkCodepoint.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, merged over the defaults. A missing
// file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads configuration from r, merged over the defaults.
func LoadReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the shim cannot honor.
func (c Config) Validate() error {
	if c.Buffer.Capacity < 4 {
		return errors.New("buffer.capacity must be at least 4")
	}
	if len(c.Buffer.Placeholder) != 1 || c.Buffer.Placeholder[0] > 0x7F {
		return errors.New("buffer.placeholder must be one ASCII character")
	}
	switch c.Buffer.Chunking {
	case segbuf.ChunkCodepoint.String(), segbuf.ChunkGrapheme.String():
	default:
		return fmt.Errorf("buffer.chunking must be %q or %q",
			segbuf.ChunkCodepoint, segbuf.ChunkGrapheme)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not a known level", c.Log.Level)
	}
	return nil
}

// ChunkingMode returns the configured chunking as a segbuf mode.
func (c Config) ChunkingMode() segbuf.Chunking {
	if c.Buffer.Chunking == segbuf.ChunkGrapheme.String() {
		return segbuf.ChunkGrapheme
	}
	return segbuf.ChunkCodepoint
}

// LogLevel returns the configured diagnostics level.
func (c Config) LogLevel() diag.LogLevel {
	return diag.ParseLogLevel(c.Log.Level)
}

// BufferOptions maps the buffer section onto segbuf options.
func (c Config) BufferOptions(log *diag.Logger) []segbuf.Option {
	return []segbuf.Option{
		segbuf.WithCapacity(c.Buffer.Capacity),
		segbuf.WithPlaceholder(c.Buffer.Placeholder[0]),
		segbuf.WithChunking(c.ChunkingMode()),
		segbuf.WithLogger(log),
	}
}
