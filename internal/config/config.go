package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	ini "github.com/go-ini/ini"

	"github.com/gg582/hanfe/internal/keys"
	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/types"
)

// DefaultFileNames are looked up in the working directory when no config
// path is given.
var DefaultFileNames = []string{"hanfe.ini", "hanfe.toml"}

type Config struct {
	Layout      LayoutConfig
	Toggle      ToggleConfig
	Convenience ConvenienceConfig
	Log         LogConfig
}

type LayoutConfig struct {
	Name string
	// PairsPath is a custom key-pair file, resolved against the directory of
	// the config file.
	PairsPath string
}

type ToggleConfig struct {
	Chords      []keys.Chord
	DefaultMode types.InputMode
}

type ConvenienceConfig struct {
	AutoCapitalize    bool
	DoubleSpacePeriod bool
}

type LogConfig struct {
	Level  slog.Level
	Format string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) ConfigError {
	return ConfigError{msg: fmt.Sprintf(format, args...)}
}

func Default() Config {
	return Config{
		Layout: LayoutConfig{Name: layout.DefaultID},
		Toggle: DefaultToggleConfig(),
		Convenience: ConvenienceConfig{
			AutoCapitalize:    true,
			DoubleSpacePeriod: true,
		},
		Log: LogConfig{Level: slog.LevelInfo, Format: "text"},
	}
}

func DefaultToggleConfig() ToggleConfig {
	return ToggleConfig{
		Chords: []keys.Chord{
			{Key: keys.KeyRightAlt},
			{Key: keys.KeyHangeul},
			{Key: keys.KeySpace, Modifiers: keys.ModControl},
		},
		DefaultMode: types.ModeKorean,
	}
}

// Load reads an INI or TOML file, chosen by extension. Missing keys keep
// their defaults.
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config: %s is a directory", path)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		raw, err = readTOML(path)
	default:
		raw, err = readINI(path)
	}
	if err != nil {
		return Config{}, err
	}

	cfg, err := raw.resolve(path)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveConfig loads cliPath when given, otherwise the first default file in
// the working directory, otherwise the defaults. It returns the path that
// was read, or "" for defaults.
func ResolveConfig(cliPath string) (Config, string, error) {
	if cliPath != "" {
		cfg, err := Load(cliPath)
		return cfg, cliPath, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), "", nil
	}
	for _, name := range DefaultFileNames {
		candidate := filepath.Join(cwd, name)
		if _, statErr := os.Stat(candidate); statErr == nil {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return Default(), "", fmt.Errorf("config: %w", statErr)
		}
	}
	return Default(), "", nil
}

// CustomPairs loads the configured key-pair file, if any.
func (c Config) CustomPairs() ([]layout.CustomPair, error) {
	if c.Layout.PairsPath == "" {
		return nil, nil
	}
	return layout.LoadCustomPairs(c.Layout.PairsPath)
}

// rawConfig is the file contents before validation. Nil pointers keep the
// default.
type rawConfig struct {
	Layout struct {
		Name  string `toml:"name"`
		Pairs string `toml:"pairs"`
	} `toml:"layout"`
	Toggle struct {
		Keys        []string `toml:"keys"`
		DefaultMode string   `toml:"default_mode"`
	} `toml:"toggle"`
	Convenience struct {
		AutoCapitalize    *bool `toml:"auto_capitalize"`
		DoubleSpacePeriod *bool `toml:"double_space_period"`
	} `toml:"convenience"`
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
}

func readTOML(path string) (rawConfig, error) {
	var raw rawConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return rawConfig{}, configErrorf("failed to parse %s: %v", path, err)
	}
	return raw, nil
}

func readINI(path string) (rawConfig, error) {
	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return rawConfig{}, configErrorf("failed to parse %s: %v", path, err)
	}

	var raw rawConfig
	layoutSection := file.Section("layout")
	raw.Layout.Name = layoutSection.Key("name").String()
	raw.Layout.Pairs = layoutSection.Key("pairs").String()

	toggle := file.Section("toggle")
	raw.Toggle.Keys = splitComma(toggle.Key("keys").String())
	raw.Toggle.DefaultMode = toggle.Key("default_mode").String()

	convenience := file.Section("convenience")
	for name, dst := range map[string]**bool{
		"auto_capitalize":     &raw.Convenience.AutoCapitalize,
		"double_space_period": &raw.Convenience.DoubleSpacePeriod,
	} {
		if !convenience.HasKey(name) {
			continue
		}
		value, err := convenience.Key(name).Bool()
		if err != nil {
			return rawConfig{}, configErrorf("invalid %s in %s: %v", name, path, err)
		}
		*dst = &value
	}

	logSection := file.Section("log")
	raw.Log.Level = logSection.Key("level").String()
	raw.Log.Format = logSection.Key("format").String()
	return raw, nil
}

func (raw rawConfig) resolve(path string) (Config, error) {
	cfg := Default()

	if name := strings.TrimSpace(raw.Layout.Name); name != "" {
		cfg.Layout.Name = name
	}
	if pairs := strings.TrimSpace(raw.Layout.Pairs); pairs != "" {
		if !filepath.IsAbs(pairs) {
			pairs = filepath.Join(filepath.Dir(path), pairs)
		}
		cfg.Layout.PairsPath = pairs
	}

	if len(raw.Toggle.Keys) > 0 {
		chords, err := ParseChords(raw.Toggle.Keys)
		if err != nil {
			return Config{}, err
		}
		cfg.Toggle.Chords = chords
	}
	if modeName := strings.TrimSpace(raw.Toggle.DefaultMode); modeName != "" {
		mode, ok := types.ParseInputMode(modeName)
		if !ok {
			return Config{}, configErrorf("invalid default_mode '%s' in %s", modeName, path)
		}
		cfg.Toggle.DefaultMode = mode
	}

	if v := raw.Convenience.AutoCapitalize; v != nil {
		cfg.Convenience.AutoCapitalize = *v
	}
	if v := raw.Convenience.DoubleSpacePeriod; v != nil {
		cfg.Convenience.DoubleSpacePeriod = *v
	}

	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(level)); err != nil {
			return Config{}, configErrorf("invalid log level '%s' in %s", level, path)
		}
	}
	if format := strings.ToLower(strings.TrimSpace(raw.Log.Format)); format != "" {
		if format != "text" && format != "json" {
			return Config{}, configErrorf("invalid log format '%s' in %s", format, path)
		}
		cfg.Log.Format = format
	}
	return cfg, nil
}

func splitComma(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
