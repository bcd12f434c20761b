// Package config defines the runtime configuration for the game. The
// struct is built once at startup (defaults, then environment, then CLI
// flags) and passed by reference; nothing in the core reads ambient state.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls runtime behavior for one game process.
type Config struct {
	// Token is an optional GitHub personal access token, used only to
	// raise the gists API rate limit. Persisted after first use.
	Token string `env:"TOKEN"`

	// WaitMS is the delay before the first line is revealed.
	WaitMS int `env:"WAIT_MS"`

	// Shuffle reveals lines in a random order instead of top to bottom.
	Shuffle bool `env:"SHUFFLE"`

	// Theme selects the highlight style: "dark" or "light".
	Theme string `env:"THEME"`

	// Preload fetches and preprocesses the next round while the player
	// reads the current round's result.
	Preload bool `env:"PRELOAD"`

	// StatePath overrides the sqlite file location (mainly for tests).
	StatePath string `env:"STATE_PATH"`

	// LogPath enables file logging when non-empty; stdout belongs to the
	// game screen.
	LogPath string `env:"LOG_PATH"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		WaitMS:  1500,
		Theme:   "dark",
		Preload: true,
	}
}

// FromEnv layers GTL_-prefixed environment variables over the defaults.
func FromEnv() (Config, error) {
	c := Default()
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "GTL_"}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return c, nil
}

// Validate normalizes zero values and rejects unusable settings.
func (c *Config) Validate() error {
	switch c.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q (want dark or light)", c.Theme)
	}
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.WaitMS <= 0 {
		c.WaitMS = 1500
	}
	return nil
}

// InitialDelay is the reveal delay for the first non-blank line.
func (c *Config) InitialDelay() time.Duration {
	return time.Duration(c.WaitMS) * time.Millisecond
}

// HighlightStyle maps the theme to a chroma style name.
func (c *Config) HighlightStyle() string {
	if c.Theme == "light" {
		return "github"
	}
	return "monokai"
}
