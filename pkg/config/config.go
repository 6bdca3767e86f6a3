// Package config loads htmlgen.yaml / htmlgen.json project settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-htmlgen/pkg/codegen"
	"github.com/goliatone/go-htmlgen/pkg/escape"
)

// FileNames are the config file names looked up in a project root, in order.
var FileNames = []string{"htmlgen.yaml", "htmlgen.yml", "htmlgen.json"}

// Config holds project settings. Zero fields fall back to Default.
type Config struct {
	// Extension of component files, ".htmlg" by default.
	Extension string `json:"extension" yaml:"extension"`
	// StrictQuotes escapes single quotes as well.
	StrictQuotes bool `json:"strict_quotes" yaml:"strict_quotes"`
	// SkipDirs are directory names never descended into.
	SkipDirs      []string `json:"skip_dirs" yaml:"skip_dirs"`
	RuntimeImport string   `json:"runtime_import" yaml:"runtime_import"`
	KnownImport   string   `json:"known_import" yaml:"known_import"`
	Preview       Preview  `json:"preview" yaml:"preview"`

	// Source is the file the config was read from, empty for defaults.
	Source string `json:"-" yaml:"-"`
}

// Preview configures the preview server.
type Preview struct {
	Addr     string `json:"addr" yaml:"addr"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Dir      string `json:"dir" yaml:"dir"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Extension: codegen.Extension,
		SkipDirs:  []string{".git", "node_modules", "vendor", "testdata"},
		Preview: Preview{
			Addr:     "127.0.0.1:8080",
			LogLevel: "info",
			Dir:      ".",
		},
	}
}

// Load reads the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS looks for the first of FileNames at the root of fsys. Defaults are
// returned when none exists.
func LoadFS(fsys fs.FS) (Config, error) {
	if fsys == nil {
		return Default(), nil
	}
	for _, name := range FileNames {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", name, err)
		}
		return Parse(data, name)
	}
	return Default(), nil
}

// LoadDir is LoadFS over a directory on disk.
func LoadDir(dir string) (Config, error) {
	cfg, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return Config{}, err
	}
	if cfg.Source != "" {
		cfg.Source = filepath.Join(dir, cfg.Source)
	}
	return cfg, nil
}

// Parse decodes JSON or YAML config data over the defaults.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}
	cfg.Source = source
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if c.Extension == ".go" {
		return errors.New("extension .go would overwrite generated files")
	}
	if _, err := ParseLevel(c.Preview.LogLevel); err != nil {
		return err
	}
	return nil
}

// Policy returns the escape policy selected by StrictQuotes.
func (c Config) Policy() escape.Policy {
	if c.StrictQuotes {
		return escape.Strict
	}
	return escape.Default
}

// CodegenOptions returns the emitter options the config selects.
func (c Config) CodegenOptions() []codegen.Option {
	return []codegen.Option{
		codegen.WithPolicy(c.Policy()),
		codegen.WithRuntimeImport(c.RuntimeImport),
		codegen.WithKnownImport(c.KnownImport),
	}
}

// Skip reports whether the directory called name is excluded.
func (c Config) Skip(name string) bool {
	for _, dir := range c.SkipDirs {
		if dir == name {
			return true
		}
	}
	return false
}

// ParseLevel maps debug, info, warn and error to slog levels. An empty
// string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
