// Package tty converts lines of QWERTY keystrokes into Hangul text.
package tty

import (
	"bufio"
	"io"
	"strings"

	gohangul "github.com/suapapa/go_hangul"

	"github.com/gg582/hanfe/internal/document"
	"github.com/gg582/hanfe/internal/keys"
	"github.com/gg582/hanfe/internal/session"
)

// Translator replays text as key presses through a session. The typing
// conveniences are timing based, so they are always off here.
type Translator struct {
	doc  *document.Document
	sess *session.Session
	jamo bool
}

func NewTranslator(cfg session.Config, jamo bool) *Translator {
	cfg.AutoCapitalize = false
	cfg.DoubleSpacePeriod = false
	doc := document.New(document.DefaultLimit)
	return &Translator{
		doc:  doc,
		sess: session.New(doc, cfg),
		jamo: jamo,
	}
}

// Line converts one line. Composition never continues across lines.
func (t *Translator) Line(line string) string {
	t.doc.Reset()
	for _, r := range line {
		ev, ok := keys.FromRune(r)
		if !ok {
			ev = keys.Event{Rune: r}
		}
		if !t.sess.HandleKey(ev) {
			t.doc.Passthrough(ev)
		}
	}
	t.sess.Deactivate()

	out := t.doc.Text()
	if t.jamo {
		out = SplitSyllables(out)
	}
	return out
}

// Copy translates r line by line into w.
func (t *Translator) Copy(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	for scanner.Scan() {
		if _, err := writer.WriteString(t.Line(scanner.Text())); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return writer.Flush()
}

// SplitSyllables rewrites precomposed syllables as compatibility jamo.
func SplitSyllables(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < 0xAC00 || r > 0xD7A3 || !gohangul.IsHangul(r) {
			b.WriteRune(r)
			continue
		}
		lead, vowel, trail := gohangul.Split(r)
		for _, part := range []rune{lead, vowel, trail} {
			if part != 0 {
				b.WriteRune(part)
			}
		}
	}
	return b.String()
}
