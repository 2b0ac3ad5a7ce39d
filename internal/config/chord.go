package config

import (
	"fmt"
	"strings"

	"github.com/gg582/hanfe/internal/keys"
)

// ParseChords parses toggle key names such as "hangul", "alt_r" or
// "ctrl+space".
func ParseChords(names []string) ([]keys.Chord, error) {
	if len(names) == 0 {
		return nil, ConfigError{msg: "no toggle keys defined"}
	}
	chords := make([]keys.Chord, 0, len(names))
	for _, name := range names {
		chord, err := ParseChord(name)
		if err != nil {
			return nil, err
		}
		chords = append(chords, chord)
	}
	return chords, nil
}

func ParseChord(name string) (keys.Chord, error) {
	tokens := strings.Split(name, "+")
	var chord keys.Chord
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if i < len(tokens)-1 {
			mod, ok := modifierNames[strings.ToLower(token)]
			if !ok {
				return keys.Chord{}, ConfigError{msg: fmt.Sprintf("unknown modifier '%s' in '%s'", token, name)}
			}
			chord.Modifiers |= mod
			continue
		}
		code, err := parseKeycode(token)
		if err != nil {
			return keys.Chord{}, err
		}
		chord.Key = code
	}
	return chord, nil
}

var modifierNames = map[string]keys.Modifiers{
	"ctrl":    keys.ModControl,
	"control": keys.ModControl,
	"alt":     keys.ModOption,
	"option":  keys.ModOption,
	"shift":   keys.ModShift,
	"meta":    keys.ModCommand,
	"super":   keys.ModCommand,
	"cmd":     keys.ModCommand,
	"command": keys.ModCommand,
}

func parseKeycode(name string) (keys.KeyCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "" {
		return 0, ConfigError{msg: "empty key name"}
	}

	aliases := map[string]string{
		"ALT_R":   "KEY_RIGHTALT",
		"ALT_L":   "KEY_LEFTALT",
		"CTRL_R":  "KEY_RIGHTCTRL",
		"CTRL_L":  "KEY_LEFTCTRL",
		"SHIFT_R": "KEY_RIGHTSHIFT",
		"SHIFT_L": "KEY_LEFTSHIFT",
		"HANGUL":  "KEY_HANGUL",
		"HANGEUL": "KEY_HANGEUL",
	}
	if alias, ok := aliases[normalized]; ok {
		normalized = alias
	}
	if !strings.HasPrefix(normalized, "KEY_") {
		normalized = "KEY_" + normalized
	}

	code, ok := keycodeTable[normalized]
	if !ok {
		return 0, ConfigError{msg: fmt.Sprintf("unknown key code '%s'", name)}
	}
	return code, nil
}

var keycodeTable = buildKeycodeTable()

func buildKeycodeTable() map[string]keys.KeyCode {
	table := map[string]keys.KeyCode{}
	for ch := 'a'; ch <= 'z'; ch++ {
		if ev, ok := keys.FromRune(ch); ok {
			table[fmt.Sprintf("KEY_%c", ch-'a'+'A')] = ev.Code
		}
	}
	for ch := '0'; ch <= '9'; ch++ {
		if ev, ok := keys.FromRune(ch); ok {
			table[fmt.Sprintf("KEY_%c", ch)] = ev.Code
		}
	}

	additional := map[string]keys.KeyCode{
		"KEY_SPACE":      keys.KeySpace,
		"KEY_TAB":        keys.KeyTab,
		"KEY_ENTER":      keys.KeyEnter,
		"KEY_ESC":        keys.KeyEsc,
		"KEY_BACKSPACE":  keys.KeyBackspace,
		"KEY_LEFTSHIFT":  keys.KeyLeftShift,
		"KEY_RIGHTSHIFT": keys.KeyRightShift,
		"KEY_LEFTCTRL":   keys.KeyLeftCtrl,
		"KEY_RIGHTCTRL":  keys.KeyRightCtrl,
		"KEY_LEFTALT":    keys.KeyLeftAlt,
		"KEY_RIGHTALT":   keys.KeyRightAlt,
		"KEY_LEFTMETA":   keys.KeyLeftMeta,
		"KEY_RIGHTMETA":  keys.KeyRightMeta,
		"KEY_HANGUL":     keys.KeyHangul,
		"KEY_HANGEUL":    keys.KeyHangeul,
		"KEY_HANJA":      keys.KeyHanja,
		"KEY_CAPSLOCK":   keys.KeyCapsLock,
		"KEY_F1":         keys.KeyF1,
		"KEY_F2":         keys.KeyF2,
		"KEY_F3":         keys.KeyF3,
		"KEY_F4":         keys.KeyF4,
		"KEY_F5":         keys.KeyF5,
		"KEY_F6":         keys.KeyF6,
		"KEY_F7":         keys.KeyF7,
		"KEY_F8":         keys.KeyF8,
		"KEY_F9":         keys.KeyF9,
		"KEY_F10":        keys.KeyF10,
		"KEY_F11":        keys.KeyF11,
		"KEY_F12":        keys.KeyF12,
	}
	for name, code := range additional {
		table[name] = code
	}
	return table
}
