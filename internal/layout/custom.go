package layout

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gg582/hanfe/internal/hangul"
	"github.com/gg582/hanfe/internal/keys"
)

// CustomPair overrides one key of a layout. Files may be YAML or JSON.
type CustomPair struct {
	Key     string `yaml:"key" json:"key"`
	Kind    string `yaml:"kind" json:"kind"`
	Normal  string `yaml:"normal" json:"normal"`
	Shifted string `yaml:"shifted" json:"shifted"`
	Role    string `yaml:"role" json:"role"`
}

func LoadCustomPairs(path string) ([]CustomPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open custom keypair file: %w", err)
	}
	return ParseCustomPairs(data)
}

// ParseCustomPairs decodes a list of pairs. JSON input is accepted because it
// is valid YAML.
func ParseCustomPairs(data []byte) ([]CustomPair, error) {
	var pairs []CustomPair
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parse custom keypair file: %w", err)
	}
	return pairs, nil
}

// ApplyCustomPairs returns a copy of l with the pairs applied. l itself is
// left untouched.
func ApplyCustomPairs(l *Layout, pairs []CustomPair) (*Layout, error) {
	out := l.clone()
	for _, pair := range pairs {
		code, err := resolveKeyCode(pair.Key)
		if err != nil {
			return nil, err
		}
		entry := out.mapping[code]

		switch strings.ToLower(strings.TrimSpace(pair.Kind)) {
		case "passthrough":
			entry.Normal = passthroughSymbol
			entry.Shifted = passthroughSymbol
		case "text":
			entry.Normal = NewTextSymbol(pair.Normal)
			if pair.Shifted != "" {
				entry.Shifted = NewTextSymbol(pair.Shifted)
			} else {
				entry.Shifted = nil
			}
		case "jamo", "":
			normal, shifted, err := makeJamoPair(pair.Normal, pair.Shifted, pair.Role)
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", pair.Key, err)
			}
			entry.Normal = normal
			entry.Shifted = shifted
		default:
			return nil, fmt.Errorf("unsupported custom keypair kind '%s'", pair.Kind)
		}

		out.mapping[code] = entry
	}
	return out, nil
}

func makeJamoPair(normal, shifted, role string) (*Symbol, *Symbol, error) {
	classify, err := parseRole(role)
	if err != nil {
		return nil, nil, err
	}
	makeSymbol := func(value string) (*Symbol, error) {
		if value == "" {
			return nil, nil
		}
		r := []rune(value)
		if len(r) != 1 {
			return nil, fmt.Errorf("jamo value must be a single rune, got %q", value)
		}
		j := classify(r[0])
		if j.Kind == hangul.KindOpaque {
			return nil, fmt.Errorf("%q is not a jamo usable as %s", value, roleName(role))
		}
		return NewJamoSymbol(j), nil
	}

	normalSymbol, err := makeSymbol(normal)
	if err != nil {
		return nil, nil, err
	}
	shiftedSymbol, err := makeSymbol(shifted)
	if err != nil {
		return nil, nil, err
	}
	return normalSymbol, shiftedSymbol, nil
}

func parseRole(role string) (func(rune) hangul.Jamo, error) {
	switch roleName(role) {
	case "auto":
		return hangul.Classify, nil
	case "leading":
		return hangul.LeadOnly, nil
	case "trailing":
		return hangul.TrailOnly, nil
	default:
		return nil, fmt.Errorf("unknown jamo role '%s'", role)
	}
}

func roleName(role string) string {
	name := strings.ToLower(strings.TrimSpace(role))
	if name == "" {
		return "auto"
	}
	return name
}

var keyAliases = map[string]keys.KeyCode{
	"KEY_A":          keys.KeyA,
	"KEY_B":          keys.KeyB,
	"KEY_C":          keys.KeyC,
	"KEY_D":          keys.KeyD,
	"KEY_E":          keys.KeyE,
	"KEY_F":          keys.KeyF,
	"KEY_G":          keys.KeyG,
	"KEY_H":          keys.KeyH,
	"KEY_I":          keys.KeyI,
	"KEY_J":          keys.KeyJ,
	"KEY_K":          keys.KeyK,
	"KEY_L":          keys.KeyL,
	"KEY_M":          keys.KeyM,
	"KEY_N":          keys.KeyN,
	"KEY_O":          keys.KeyO,
	"KEY_P":          keys.KeyP,
	"KEY_Q":          keys.KeyQ,
	"KEY_R":          keys.KeyR,
	"KEY_S":          keys.KeyS,
	"KEY_T":          keys.KeyT,
	"KEY_U":          keys.KeyU,
	"KEY_V":          keys.KeyV,
	"KEY_W":          keys.KeyW,
	"KEY_X":          keys.KeyX,
	"KEY_Y":          keys.KeyY,
	"KEY_Z":          keys.KeyZ,
	"KEY_1":          keys.Key1,
	"KEY_2":          keys.Key2,
	"KEY_3":          keys.Key3,
	"KEY_4":          keys.Key4,
	"KEY_5":          keys.Key5,
	"KEY_6":          keys.Key6,
	"KEY_7":          keys.Key7,
	"KEY_8":          keys.Key8,
	"KEY_9":          keys.Key9,
	"KEY_0":          keys.Key0,
	"KEY_MINUS":      keys.KeyMinus,
	"KEY_EQUAL":      keys.KeyEqual,
	"KEY_LEFTBRACE":  keys.KeyLeftBrace,
	"KEY_RIGHTBRACE": keys.KeyRightBrace,
	"KEY_BACKSLASH":  keys.KeyBackslash,
	"KEY_SEMICOLON":  keys.KeySemicolon,
	"KEY_APOSTROPHE": keys.KeyApostrophe,
	"KEY_GRAVE":      keys.KeyGrave,
	"KEY_COMMA":      keys.KeyComma,
	"KEY_DOT":        keys.KeyDot,
	"KEY_SLASH":      keys.KeySlash,
}

// resolveKeyCode accepts evdev-style names (KEY_Q) and single QWERTY
// characters (q, ;).
func resolveKeyCode(name string) (keys.KeyCode, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, fmt.Errorf("empty key name")
	}
	if code, ok := keyAliases[strings.ToUpper(trimmed)]; ok {
		return code, nil
	}
	if r := []rune(trimmed); len(r) == 1 {
		if ev, ok := keys.FromRune(r[0]); ok && ev.Code != keys.KeySpace {
			return ev.Code, nil
		}
	}
	return 0, fmt.Errorf("unknown key name '%s'", name)
}
