package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/gg582/hanfe/internal/document"
	"github.com/gg582/hanfe/internal/session"
)

const (
	clearLine   = "\r\x1b[K"
	markedStart = "\x1b[4m"
	markedEnd   = "\x1b[24m"
)

// Screen draws a document on a terminal line by line. Finished lines are
// printed once; the line under the cursor is redrawn on every update.
type Screen struct {
	out     io.Writer
	width   func() int
	printed int
}

func NewScreen(out io.Writer, width func() int) *Screen {
	return &Screen{out: out, width: width}
}

func (s *Screen) Render(doc *document.Document, status string) {
	text := doc.Text()
	lines := strings.Split(text, "\n")
	current := lines[len(lines)-1]
	// Deleted or trimmed lines stay on screen.
	if s.printed > len(lines)-1 {
		s.printed = len(lines) - 1
	}
	for ; s.printed < len(lines)-1; s.printed++ {
		fmt.Fprint(s.out, clearLine, lines[s.printed], "\r\n")
	}

	prefix := ""
	if status != "" {
		prefix = "[" + status + "] "
	}
	marked := doc.Marked()
	if width := s.width(); width > 0 {
		room := width - 1 - runewidth.StringWidth(prefix) - runewidth.StringWidth(marked)
		current = tailToWidth(current, room)
	}
	fmt.Fprint(s.out, clearLine, prefix, current)
	if marked != "" {
		fmt.Fprint(s.out, markedStart, marked, markedEnd)
	}
}

// Finish moves past the line under the cursor.
func (s *Screen) Finish() {
	fmt.Fprint(s.out, "\r\n")
}

// tailToWidth keeps the end of line that fits into width columns.
func tailToWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(line) <= width {
		return line
	}
	runes := []rune(line)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}

// Run reads keys from the terminal until ctrl+c, ctrl+d or ctx is done.
// wake is signalled by other goroutines after they post session commands.
func Run(ctx context.Context, sess *session.Session, doc *document.Document, wake <-chan struct{}, logger *slog.Logger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	events, err := keyboard.GetKeys(16)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	screen := NewScreen(os.Stdout, func() int {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return 0
		}
		return width
	})
	status := func() string { return sess.Mode().String() + "/" + sess.Layout().ID() }

	screen.Render(doc, status())
	for {
		select {
		case <-ctx.Done():
			sess.Deactivate()
			screen.Render(doc, status())
			screen.Finish()
			return nil

		case <-wake:
			sess.Drain()
			screen.Render(doc, status())

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return fmt.Errorf("read key: %w", ev.Err)
			}
			key, action := Translate(ev)
			switch action {
			case ActionQuit:
				sess.Deactivate()
				screen.Render(doc, status())
				screen.Finish()
				return nil
			case ActionIgnore:
				logger.Debug("ignored key", "key", uint16(ev.Key))
				continue
			}
			if !sess.HandleKey(key) {
				doc.Passthrough(key)
			}
			screen.Render(doc, status())
		}
	}
}
