// Package convenience holds the typing helpers that sit in front of the
// composer: sentence-start capitalization and double-space-to-period.
package convenience

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	gohangul "github.com/suapapa/go_hangul"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ContextLength is how many characters before the cursor are inspected.
	ContextLength = 5
	// DoubleSpaceWindow is the longest gap between two spaces that still
	// turns them into a period.
	DoubleSpaceWindow = 450 * time.Millisecond
)

var upper = cases.Upper(language.Und)

// ShouldCapitalize reports whether the next letter starts a sentence. ok is
// false when the host cannot supply context, which is treated as the start
// of a document.
func ShouldCapitalize(context string, ok bool) bool {
	if !ok || context == "" {
		return true
	}
	if strings.HasSuffix(context, "\n") {
		return true
	}
	trimmed := strings.TrimRightFunc(context, unicode.IsSpace)
	if trimmed == context {
		return false
	}
	if trimmed == "" {
		// Only whitespace within the window; nothing to end a sentence.
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return last == '.' || last == '!' || last == '?'
}

// Capitalize returns the upper-case form of r, which may be longer than one
// rune (ß → SS).
func Capitalize(r rune) string {
	return upper.String(string(r))
}

// IsWordCharacter reports whether r may precede a space that is held for the
// period shortcut: an ASCII letter or digit, or Hangul.
func IsWordCharacter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return gohangul.IsHangul(r)
}

// Clock returns the current time.
type Clock func() time.Time

// State tracks the held space of the double-space shortcut. The zero value
// is ready to use and nothing is held.
type State struct {
	holding   bool
	heldSince time.Time
}

// Holding reports whether a space is currently shown as marked text.
func (s *State) Holding() bool { return s.holding }

// Hold records that a space was held at now.
func (s *State) Hold(now time.Time) {
	s.holding = true
	s.heldSince = now
}

// Release forgets the held space, returning whether one was held.
func (s *State) Release() bool {
	was := s.holding
	s.holding = false
	s.heldSince = time.Time{}
	return was
}

// WithinWindow reports whether a second space at now completes the shortcut.
func (s *State) WithinWindow(now time.Time) bool {
	if !s.holding {
		return false
	}
	elapsed := now.Sub(s.heldSince)
	return elapsed >= 0 && elapsed < DoubleSpaceWindow
}

// LastRune returns the final rune of context.
func LastRune(context string) (rune, bool) {
	if context == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(context)
	return r, r != utf8.RuneError
}
