// Package document is an in-memory text field used by the terminal hosts and
// the session tests. It implements the session delegate and the default
// key handling a host applies to keys the engine passes through.
package document

import (
	"strings"
	"unicode/utf8"

	"github.com/gg582/hanfe/internal/keys"
)

// DefaultLimit bounds committed text, in bytes.
const DefaultLimit = 4096 * 5

// Document holds committed text and the marked (in-progress) text at the
// cursor, which always sits at the end. Marked text counts as text before
// the cursor, the way text fields that render composition inline report it.
type Document struct {
	text        []byte
	marked      string
	limit       int
	unavailable bool
}

// New returns an empty document limited to limit bytes of committed text.
// A limit of zero or less means unlimited.
func New(limit int) *Document {
	return &Document{limit: limit}
}

// SetContextAvailable controls whether TextBeforeCursor answers; hosts that
// cannot read the text field report unavailable.
func (d *Document) SetContextAvailable(ok bool) { d.unavailable = !ok }

func (d *Document) InsertText(text string) {
	d.marked = ""
	d.append(text)
}

func (d *Document) SetMarkedText(text string) {
	d.marked = text
}

// TextBeforeCursor returns up to maxLength characters before the cursor.
func (d *Document) TextBeforeCursor(maxLength int) (string, bool) {
	if d.unavailable {
		return "", false
	}
	if maxLength <= 0 {
		return "", true
	}
	return lastRunes(string(d.text)+d.marked, maxLength), true
}

// ReplaceTextBeforeCursor removes length characters before the cursor,
// marked text first, and inserts text as committed text.
func (d *Document) ReplaceTextBeforeCursor(length int, text string) {
	if n := utf8.RuneCountInString(d.marked); n > 0 {
		d.marked = ""
		length -= n
	}
	for ; length > 0 && len(d.text) > 0; length-- {
		_, size := utf8.DecodeLastRune(d.text)
		d.text = d.text[:len(d.text)-size]
	}
	d.append(text)
}

// DeleteBackward removes the last committed character. It reports false on
// an empty document.
func (d *Document) DeleteBackward() bool {
	if len(d.text) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(d.text)
	d.text = d.text[:len(d.text)-size]
	return true
}

// Passthrough applies the default effect of a key the engine did not
// consume: printable characters are inserted, Backspace deletes, Return and
// Tab insert their control characters. Other keys have no effect on text.
func (d *Document) Passthrough(ev keys.Event) {
	switch ev.Code {
	case keys.KeyBackspace:
		d.DeleteBackward()
		return
	case keys.KeyEnter:
		d.InsertText("\n")
		return
	case keys.KeyTab:
		d.InsertText("\t")
		return
	}
	if ev.Modifiers.Shortcut() || ev.Rune == 0 {
		return
	}
	d.InsertText(string(ev.Rune))
}

// Text is the committed text.
func (d *Document) Text() string { return string(d.text) }

// Marked is the in-progress text shown at the cursor.
func (d *Document) Marked() string { return d.marked }

// String renders committed and marked text together.
func (d *Document) String() string { return string(d.text) + d.marked }

// Reset clears the document.
func (d *Document) Reset() {
	d.text = d.text[:0]
	d.marked = ""
}

func (d *Document) append(text string) {
	if d.limit > 0 {
		text = trimToBytes(text, d.limit-len(d.text))
	}
	d.text = append(d.text, text...)
}

func lastRunes(s string, n int) string {
	count := utf8.RuneCountInString(s)
	if count <= n {
		return s
	}
	idx := 0
	for skip := count - n; skip > 0; skip-- {
		_, size := utf8.DecodeRuneInString(s[idx:])
		idx += size
	}
	return s[idx:]
}

// trimToBytes cuts input to at most limit bytes without splitting a rune.
func trimToBytes(input string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(input) <= limit {
		return input
	}

	var b strings.Builder
	b.Grow(limit)
	for len(input) > 0 {
		r, size := utf8.DecodeRuneInString(input)
		if r == utf8.RuneError && size == 1 {
			break
		}
		if b.Len()+size > limit {
			break
		}
		b.WriteString(input[:size])
		input = input[size:]
	}
	return b.String()
}
