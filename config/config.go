// Package config resolves the launch settings of the game
// Precedence, lowest first: defaults, TOML file, dotenv file, process environment, flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-snake/constant"
)

// Front ends
const (
	UIWindow   = "window"
	UITerminal = "terminal"
)

// Environment keys
const (
	EnvUI        = "SNAKE_UI"
	EnvMute      = "SNAKE_MUTE"
	EnvTick      = "SNAKE_TICK"
	EnvDebug     = "SNAKE_DEBUG"
	EnvAutostart = "SNAKE_AUTOSTART"
)

// DefaultEnvFile is read when present, a missing file is not an error
const DefaultEnvFile = ".env"

// Config holds the resolved launch settings
type Config struct {
	UI        string
	Mute      bool
	Tick      time.Duration
	Debug     bool
	Autostart bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		UI:        UIWindow,
		Tick:      constant.SnakeMoveInterval,
		Autostart: true,
	}
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.UI != UIWindow && c.UI != UITerminal {
		return fmt.Errorf("config: unknown ui %q, want %q or %q", c.UI, UIWindow, UITerminal)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("config: tick must be positive, got %v", c.Tick)
	}
	return nil
}

// Load parses args and resolves the full precedence chain
func Load(name string, args []string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fset.String("config", "", "TOML settings file")
	envPath := fset.String("env", DefaultEnvFile, "dotenv file")
	ui := fset.String("ui", "", "front end: window or terminal")
	mute := fset.Bool("mute", false, "start with sound muted")
	tick := fset.Duration("tick", 0, "snake movement interval")
	debug := fset.Bool("debug", false, "write logs to the logs directory")
	autostart := fset.Bool("autostart", true, "skip the menu and start a round")
	if err := fset.Parse(args); err != nil {
		return cfg, fmt.Errorf("config: parse flags: %w", err)
	}

	if *configPath != "" {
		if err := LoadFile(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := loadDotenv(*envPath); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	// Only flags set explicitly override lower layers
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI = *ui
		case "mute":
			cfg.Mute = *mute
		case "tick":
			cfg.Tick = *tick
		case "debug":
			cfg.Debug = *debug
		case "autostart":
			cfg.Autostart = *autostart
		}
	})

	return cfg, cfg.Validate()
}

// LoadFile decodes a TOML settings file over cfg
// Durations are written as strings, e.g. tick = "250ms"
func LoadFile(path string, cfg *Config) error {
	var raw struct {
		UI        *string `toml:"ui"`
		Mute      *bool   `toml:"mute"`
		Tick      *string `toml:"tick"`
		Debug     *bool   `toml:"debug"`
		Autostart *bool   `toml:"autostart"`
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if raw.UI != nil {
		cfg.UI = *raw.UI
	}
	if raw.Mute != nil {
		cfg.Mute = *raw.Mute
	}
	if raw.Tick != nil {
		d, err := time.ParseDuration(*raw.Tick)
		if err != nil {
			return fmt.Errorf("config: %s tick: %w", path, err)
		}
		cfg.Tick = d
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	if raw.Autostart != nil {
		cfg.Autostart = *raw.Autostart
	}
	return nil
}

// loadDotenv populates the environment from path without overriding variables already set
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the SNAKE_* variables that are set
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvUI); ok && v != "" {
		cfg.UI = v
	}
	if err := envBool(EnvMute, &cfg.Mute); err != nil {
		return err
	}
	if err := envBool(EnvDebug, &cfg.Debug); err != nil {
		return err
	}
	if err := envBool(EnvAutostart, &cfg.Autostart); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvTick); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTick, err)
		}
		cfg.Tick = d
	}
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = b
	return nil
}
