package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"

	"github.com/gg582/hanfe/internal/document"
	"github.com/gg582/hanfe/internal/keys"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name   string
		in     keyboard.KeyEvent
		want   keys.Event
		action Action
	}{
		{"letter", keyboard.KeyEvent{Rune: 'r'}, keys.Event{Code: keys.KeyR, Rune: 'r'}, ActionKey},
		{"shifted letter", keyboard.KeyEvent{Rune: 'R'}, keys.Event{Code: keys.KeyR, Rune: 'R', Modifiers: keys.ModShift}, ActionKey},
		{"non qwerty", keyboard.KeyEvent{Rune: 'é'}, keys.Event{Rune: 'é'}, ActionKey},
		{"space", keyboard.KeyEvent{Key: keyboard.KeySpace}, keys.Event{Code: keys.KeySpace, Rune: ' '}, ActionKey},
		{"ctrl space", keyboard.KeyEvent{Key: keyboard.KeyCtrlSpace}, keys.Event{Code: keys.KeySpace, Modifiers: keys.ModControl}, ActionKey},
		{"enter", keyboard.KeyEvent{Key: keyboard.KeyEnter}, keys.Event{Code: keys.KeyEnter}, ActionKey},
		{"backspace", keyboard.KeyEvent{Key: keyboard.KeyBackspace2}, keys.Event{Code: keys.KeyBackspace}, ActionKey},
		{"arrow", keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, keys.Event{Code: keys.KeyLeft}, ActionKey},
		{"ctrl letter", keyboard.KeyEvent{Key: keyboard.KeyCtrlA}, keys.Event{Code: keys.KeyA, Rune: 'a', Modifiers: keys.ModControl}, ActionKey},
		{"quit", keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, keys.Event{}, ActionQuit},
		{"ignored", keyboard.KeyEvent{Key: keyboard.KeyPgup}, keys.Event{}, ActionIgnore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, action := Translate(tc.in)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScreenRender(t *testing.T) {
	var out bytes.Buffer
	screen := NewScreen(&out, func() int { return 0 })
	doc := document.New(document.DefaultLimit)

	doc.InsertText("첫 줄\n둘")
	doc.SetMarkedText("째")
	screen.Render(doc, "korean/2")

	rendered := out.String()
	assert.Contains(t, rendered, clearLine+"첫 줄\r\n")
	assert.True(t, strings.HasSuffix(rendered, clearLine+"[korean/2] 둘"+markedStart+"째"+markedEnd))

	out.Reset()
	screen.Render(doc, "")
	assert.NotContains(t, out.String(), "첫 줄")
}

func TestTailToWidth(t *testing.T) {
	assert.Equal(t, "abc", tailToWidth("abc", 10))
	assert.Equal(t, "녕", tailToWidth("안녕", 3))
	assert.Equal(t, "", tailToWidth("안녕", 0))
}
