// Package terminal runs a session against the controlling terminal.
package terminal

import (
	"github.com/eiannone/keyboard"

	"github.com/gg582/hanfe/internal/keys"
)

type Action int

const (
	ActionKey Action = iota
	ActionIgnore
	ActionQuit
)

var specialKeys = map[keyboard.Key]keys.KeyCode{
	keyboard.KeyEnter:      keys.KeyEnter,
	keyboard.KeyTab:        keys.KeyTab,
	keyboard.KeyBackspace:  keys.KeyBackspace,
	keyboard.KeyBackspace2: keys.KeyBackspace,
	keyboard.KeyEsc:        keys.KeyEsc,
	keyboard.KeyArrowUp:    keys.KeyUp,
	keyboard.KeyArrowDown:  keys.KeyDown,
	keyboard.KeyArrowLeft:  keys.KeyLeft,
	keyboard.KeyArrowRight: keys.KeyRight,
	keyboard.KeyF1:         keys.KeyF1,
	keyboard.KeyF2:         keys.KeyF2,
	keyboard.KeyF3:         keys.KeyF3,
	keyboard.KeyF4:         keys.KeyF4,
	keyboard.KeyF5:         keys.KeyF5,
	keyboard.KeyF6:         keys.KeyF6,
	keyboard.KeyF7:         keys.KeyF7,
	keyboard.KeyF8:         keys.KeyF8,
	keyboard.KeyF9:         keys.KeyF9,
	keyboard.KeyF10:        keys.KeyF10,
	keyboard.KeyF11:        keys.KeyF11,
	keyboard.KeyF12:        keys.KeyF12,
}

// Translate maps a terminal key event onto a key press. Terminals report
// characters rather than physical keys, so QWERTY positions are recovered
// from the character.
func Translate(ev keyboard.KeyEvent) (keys.Event, Action) {
	if ev.Rune != 0 {
		if event, ok := keys.FromRune(ev.Rune); ok {
			return event, ActionKey
		}
		return keys.Event{Rune: ev.Rune}, ActionKey
	}

	switch ev.Key {
	case keyboard.KeyCtrlC, keyboard.KeyCtrlD:
		return keys.Event{}, ActionQuit
	case keyboard.KeySpace:
		return keys.Event{Code: keys.KeySpace, Rune: ' '}, ActionKey
	case keyboard.KeyCtrlSpace:
		return keys.Event{Code: keys.KeySpace, Modifiers: keys.ModControl}, ActionKey
	}

	if code, ok := specialKeys[ev.Key]; ok {
		return keys.Event{Code: code}, ActionKey
	}

	// Remaining control characters are ctrl+letter chords.
	if ev.Key >= keyboard.KeyCtrlA && ev.Key <= keyboard.KeyCtrlZ {
		letter := rune('a' + ev.Key - keyboard.KeyCtrlA)
		if event, ok := keys.FromRune(letter); ok {
			event.Modifiers |= keys.ModControl
			return event, ActionKey
		}
	}
	return keys.Event{}, ActionIgnore
}
