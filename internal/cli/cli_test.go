package cli

import (
	"log/slog"
	"testing"

	"github.com/gg582/hanfe/internal/config"
	"github.com/gg582/hanfe/internal/keys"
	"github.com/gg582/hanfe/internal/types"
)

func TestParseOptions(t *testing.T) {
	opts, err := Parse([]string{"hanfe", "--layout=3", "--mode", "english", "--toggle", "hangul, ctrl+space", "--no-watch", "--log-level", "debug"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if opts.LayoutName != "3" || opts.ModeName != "english" {
		t.Fatalf("unexpected layout/mode %q/%q", opts.LayoutName, opts.ModeName)
	}
	if len(opts.ToggleKeys) != 2 || opts.ToggleKeys[1] != "ctrl+space" {
		t.Fatalf("unexpected toggle keys %v", opts.ToggleKeys)
	}
	if !opts.NoWatch || opts.LogLevel != "debug" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]string{"hanfe", "--layout"}); err == nil {
		t.Fatalf("expected missing value error")
	}
	if _, err := Parse([]string{"hanfe", "--layouts=2"}); err == nil {
		t.Fatalf("expected unknown option error")
	}
	if _, err := Parse([]string{"hanfe", "--bogus"}); err == nil {
		t.Fatalf("expected unknown option error")
	}
}

func TestApplyOverridesConfig(t *testing.T) {
	opts := Options{
		LayoutName: "390",
		ModeName:   "latin",
		PairsPath:  "pairs.yaml",
		ToggleKeys: []string{"alt_r"},
		LogLevel:   "warn",
		LogFormat:  "JSON",
	}
	cfg, err := opts.Apply(config.Default())
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.Layout.Name != "390" || cfg.Layout.PairsPath != "pairs.yaml" {
		t.Fatalf("unexpected layout config %+v", cfg.Layout)
	}
	if cfg.Toggle.DefaultMode != types.ModeEnglish {
		t.Fatalf("expected english mode, got %v", cfg.Toggle.DefaultMode)
	}
	if len(cfg.Toggle.Chords) != 1 || cfg.Toggle.Chords[0].Key != keys.KeyRightAlt {
		t.Fatalf("unexpected chords %+v", cfg.Toggle.Chords)
	}
	if cfg.Log.Level != slog.LevelWarn || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	cases := []Options{
		{LayoutName: "dvorak"},
		{ModeName: "kana"},
		{ToggleKeys: []string{"hyper"}},
		{LogLevel: "loud"},
		{LogFormat: "xml"},
	}
	for _, opts := range cases {
		if _, err := opts.Apply(config.Default()); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
	}
}

func TestApplyKeepsConfigWhenUnset(t *testing.T) {
	base := config.Default()
	cfg, err := Options{}.Apply(base)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.Layout != base.Layout || cfg.Toggle.DefaultMode != base.Toggle.DefaultMode {
		t.Fatalf("expected config to be unchanged")
	}
}
