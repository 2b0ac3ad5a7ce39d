package keys

import "strings"

// Modifiers is the set of modifier flags active for an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModOption
	ModCommand
	ModCapsLock
)

// Has reports whether every flag in m is set.
func (s Modifiers) Has(m Modifiers) bool { return s&m == m }

// Shortcut reports whether a shortcut modifier (Command, Control, Option) is
// held. Shift and Caps Lock are not shortcut modifiers.
func (s Modifiers) Shortcut() bool {
	return s&(ModCommand|ModControl|ModOption) != 0
}

func (s Modifiers) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, m := range []struct {
		flag Modifiers
		name string
	}{
		{ModControl, "ctrl"},
		{ModOption, "alt"},
		{ModCommand, "meta"},
		{ModShift, "shift"},
		{ModCapsLock, "capslock"},
	} {
		if s&m.flag != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, "+")
}

// Event is one key press as delivered by a host. Rune is the character the
// host's own keymap would produce and is zero for non-printing keys.
type Event struct {
	Code      KeyCode
	Rune      rune
	Modifiers Modifiers
}

// Shifted reports whether Shift is held.
func (e Event) Shifted() bool { return e.Modifiers.Has(ModShift) }

// Chord is a key plus the modifiers that must be held with it.
type Chord struct {
	Key       KeyCode
	Modifiers Modifiers
}

// Matches reports whether ev presses the chord. Extra modifiers are allowed.
func (c Chord) Matches(ev Event) bool {
	return ev.Code == c.Key && ev.Modifiers.Has(c.Modifiers)
}
