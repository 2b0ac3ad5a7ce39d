package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gg582/hanfe/internal/config"
	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/types"
)

type Options struct {
	ShowHelp    bool
	ListLayouts bool
	ConfigPath  string
	LayoutName  string
	ModeName    string
	PairsPath   string
	ToggleKeys  []string
	LogLevel    string
	LogFormat   string
	NoWatch     bool
	Jamo        bool
}

func Parse(args []string) (Options, error) {
	var opts Options
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-layouts":
			opts.ListLayouts = true
		case arg == "--no-watch":
			opts.NoWatch = true
		case arg == "--jamo":
			opts.Jamo = true
		case optionName(arg) == "--config":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case optionName(arg) == "--layout":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LayoutName = value
			i = next
		case optionName(arg) == "--mode":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ModeName = value
			i = next
		case optionName(arg) == "--pairs":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.PairsPath = value
			i = next
		case optionName(arg) == "--toggle":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ToggleKeys = splitList(value)
			i = next
		case optionName(arg) == "--log-level":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LogLevel = value
			i = next
		case optionName(arg) == "--log-format":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.LogFormat = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

// Apply overrides cfg with the options given on the command line.
func (o Options) Apply(cfg config.Config) (config.Config, error) {
	if o.LayoutName != "" {
		if _, err := layout.Load(o.LayoutName); err != nil {
			return cfg, err
		}
		cfg.Layout.Name = o.LayoutName
	}
	if o.PairsPath != "" {
		cfg.Layout.PairsPath = o.PairsPath
	}
	if o.ModeName != "" {
		mode, ok := types.ParseInputMode(o.ModeName)
		if !ok {
			return cfg, fmt.Errorf("unknown input mode %q", o.ModeName)
		}
		cfg.Toggle.DefaultMode = mode
	}
	if len(o.ToggleKeys) > 0 {
		chords, err := config.ParseChords(o.ToggleKeys)
		if err != nil {
			return cfg, err
		}
		cfg.Toggle.Chords = chords
	}
	if o.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(o.LogLevel)); err != nil {
			return cfg, fmt.Errorf("invalid log level %q", o.LogLevel)
		}
		cfg.Log.Level = level
	}
	if o.LogFormat != "" {
		format := strings.ToLower(o.LogFormat)
		if format != "text" && format != "json" {
			return cfg, fmt.Errorf("invalid log format %q", o.LogFormat)
		}
		cfg.Log.Format = format
	}
	return cfg, nil
}

func optionName(arg string) string {
	if eq := strings.IndexRune(arg, '='); eq >= 0 {
		return arg[:eq]
	}
	return arg
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
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

func Usage() string {
	return `hanfe - Hangul input for the terminal
Usage: hanfe [options]

Options:
  --config PATH           Config file (default: ./hanfe.ini or ./hanfe.toml if present)
  --layout NAME           Keyboard layout (default: 2, see --list-layouts)
  --mode NAME             Starting input mode: korean or english
  --pairs PATH            YAML or JSON file of custom key pairs to merge into the layout
  --toggle LIST           Comma-separated toggle keys, e.g. hangul,ctrl+space
  --log-level LEVEL       debug, info, warn or error
  --log-format FORMAT     text or json
  --no-watch              Do not reload the config file when it changes
  --list-layouts          List available layouts
  -h, --help              Show this help message`
}

func TTYUsage() string {
	return `hanfe-tty - convert QWERTY keystrokes read from stdin to Hangul
Usage: hanfe-tty [options] < input

Options:
  --config PATH           Config file (default: ./hanfe.ini or ./hanfe.toml if present)
  --layout NAME           Keyboard layout (default: 2, see --list-layouts)
  --pairs PATH            YAML or JSON file of custom key pairs to merge into the layout
  --jamo                  Print decomposed compatibility jamo instead of syllables
  --log-level LEVEL       debug, info, warn or error
  --list-layouts          List available layouts
  -h, --help              Show this help message`
}
