// Package config loads arrayctl settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrFormat = errors.New("config: format must be json or yaml")
	ErrType   = errors.New("config: type must be int, float or string")
)

// Config is what arrayctl runs with. Flags given on the command line win
// over file values, which win over Default.
type Config struct {
	Format   string
	Type     string
	In       string
	Out      string
	LogLevel string

	// Seed makes shuffle deterministic when HasSeed is set.
	Seed    uint64
	HasSeed bool
	Indent  bool
}

type fileConfig struct {
	Format   string `toml:"format"`
	Type     string `toml:"type"`
	In       string `toml:"in"`
	Out      string `toml:"out"`
	LogLevel string `toml:"log_level"`
	Seed     int64  `toml:"seed"`
	Indent   bool   `toml:"indent"`
}

func Default() Config {
	return Config{
		Format: "json",
		Type:   "int",
		In:     "-",
		Out:    "-",
	}
}

// Load overlays the keys defined in the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load arrayctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load arrayctl config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("type") {
		cfg.Type = strings.ToLower(strings.TrimSpace(raw.Type))
	}
	if meta.IsDefined("in") {
		cfg.In = strings.TrimSpace(raw.In)
	}
	if meta.IsDefined("out") {
		cfg.Out = strings.TrimSpace(raw.Out)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("seed") {
		cfg.Seed = uint64(raw.Seed)
		cfg.HasSeed = true
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("%w, got %q", ErrFormat, c.Format)
	}
	switch c.Type {
	case "int", "float", "string":
	default:
		return fmt.Errorf("%w, got %q", ErrType, c.Type)
	}
	return nil
}
