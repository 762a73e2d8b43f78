package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// config is the contents of a shunt config file.
type config struct {
	// Places is the number of decimal places to round results to.
	Places int `toml:"places"`
	// RPN prints the postfix form of each expression.
	RPN bool `toml:"rpn"`
	// Color is one of auto, on, or off.
	Color string `toml:"color"`
	// Vars maps variable names to expressions giving their values.
	Vars map[string]string `toml:"vars"`
}

func defaultConfig() config {
	return config{Places: 3, Color: "auto"}
}

// defaultConfigPath returns the config file used when none is named.
func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "shunt", "config.toml")
}

// loadConfig reads the config file at path, or at the default path if path
// is empty. A missing file is an error only if explicit is set.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) != 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("color") && cfg.Color == "" {
		return config{}, fmt.Errorf("%s: color must not be empty", path)
	}
	return cfg, nil
}

// check validates settings that may come from either the config file or
// flags.
func (cfg config) check() error {
	switch cfg.Color {
	case "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("color must be auto, on, or off, not %q", cfg.Color)
	}
}
