package document

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gg582/hanfe/internal/keys"
)

func TestInsertReplacesMarkedText(t *testing.T) {
	doc := New(0)
	doc.SetMarkedText("가")
	if doc.String() != "가" || doc.Text() != "" {
		t.Fatalf("expected marked text only, got text=%q marked=%q", doc.Text(), doc.Marked())
	}
	doc.InsertText("각")
	if doc.Text() != "각" || doc.Marked() != "" {
		t.Fatalf("expected insert to replace marked text, got text=%q marked=%q", doc.Text(), doc.Marked())
	}
}

func TestTextBeforeCursorIncludesMarked(t *testing.T) {
	doc := New(0)
	doc.InsertText("Hello")
	doc.SetMarkedText(" ")

	ctx, ok := doc.TextBeforeCursor(5)
	if !ok || ctx != "ello " {
		t.Fatalf("expected 'ello ', got %q (ok=%v)", ctx, ok)
	}

	doc.SetContextAvailable(false)
	if _, ok := doc.TextBeforeCursor(5); ok {
		t.Fatalf("expected unavailable context")
	}
}

func TestReplaceTextBeforeCursor(t *testing.T) {
	doc := New(0)
	doc.InsertText("Hello")
	doc.SetMarkedText(" ")
	doc.ReplaceTextBeforeCursor(1, ". ")
	if doc.String() != "Hello. " || doc.Marked() != "" {
		t.Fatalf("expected 'Hello. ', got %q (marked %q)", doc.String(), doc.Marked())
	}

	doc.ReplaceTextBeforeCursor(2, "!")
	if doc.Text() != "Hello!" {
		t.Fatalf("expected committed text to be replaced, got %q", doc.Text())
	}
}

func TestDeleteBackwardRemovesWholeRune(t *testing.T) {
	doc := New(0)
	doc.InsertText("한글")
	if !doc.DeleteBackward() || doc.Text() != "한" {
		t.Fatalf("expected one syllable removed, got %q", doc.Text())
	}
	doc.Reset()
	if doc.DeleteBackward() {
		t.Fatalf("expected empty document to refuse deletion")
	}
}

func TestPassthrough(t *testing.T) {
	doc := New(0)
	doc.Passthrough(keys.Event{Code: keys.KeyA, Rune: 'a'})
	doc.Passthrough(keys.Event{Code: keys.KeyEnter})
	doc.Passthrough(keys.Event{Code: keys.KeyC, Rune: 'c', Modifiers: keys.ModControl})
	doc.Passthrough(keys.Event{Code: keys.KeyLeft})
	if doc.Text() != "a\n" {
		t.Fatalf("unexpected passthrough result %q", doc.Text())
	}
	doc.Passthrough(keys.Event{Code: keys.KeyBackspace})
	if doc.Text() != "a" {
		t.Fatalf("expected backspace to delete, got %q", doc.Text())
	}
}

func TestLimitPreservesRunes(t *testing.T) {
	doc := New(10)
	doc.InsertText(strings.Repeat("가", 5))

	if len(doc.Text()) > 10 {
		t.Fatalf("document exceeds limit: %d bytes", len(doc.Text()))
	}
	if !utf8.ValidString(doc.Text()) {
		t.Fatalf("document split a rune: %q", doc.Text())
	}
	if doc.Text() != "가가가" {
		t.Fatalf("expected three syllables to fit, got %q", doc.Text())
	}
	doc.InsertText("a")
	if doc.Text() != "가가가a" {
		t.Fatalf("expected remaining byte to be used, got %q", doc.Text())
	}
}
