// Package session routes key events to the Hangul composer and the typing
// conveniences and reports the results to a host delegate.
package session

import (
	"log/slog"
	"sync"
	"time"
	"unicode"

	"github.com/gg582/hanfe/internal/convenience"
	"github.com/gg582/hanfe/internal/hangul"
	"github.com/gg582/hanfe/internal/keys"
	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/types"
)

// Delegate is the host text field.
type Delegate interface {
	// InsertText commits text, replacing any marked text.
	InsertText(text string)
	// SetMarkedText shows in-progress text; the empty string clears it.
	SetMarkedText(text string)
	// TextBeforeCursor returns up to maxLength characters before the cursor,
	// or false when the host cannot tell.
	TextBeforeCursor(maxLength int) (string, bool)
	// ReplaceTextBeforeCursor replaces length characters before the cursor.
	ReplaceTextBeforeCursor(length int, text string)
}

type Config struct {
	Layout            string
	CustomPairs       []layout.CustomPair
	Mode              types.InputMode
	ToggleChords      []keys.Chord
	AutoCapitalize    bool
	DoubleSpacePeriod bool

	// Clock defaults to time.Now.
	Clock convenience.Clock
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Layout: layout.DefaultID,
		Mode:   types.ModeKorean,
		ToggleChords: []keys.Chord{
			{Key: keys.KeyHangul},
			{Key: keys.KeyRightAlt},
			{Key: keys.KeySpace, Modifiers: keys.ModControl},
		},
		AutoCapitalize:    true,
		DoubleSpacePeriod: true,
	}
}

// State is a snapshot for hosts and tests.
type State struct {
	Mode         types.InputMode
	Layout       string
	Preedit      string
	HoldingSpace bool
}

// Session owns one composition buffer. Apart from Post, its methods must be
// called from a single goroutine.
type Session struct {
	delegate Delegate
	cfg      Config
	clock    convenience.Clock
	log      *slog.Logger

	composer *hangul.HangulComposer
	layout   *layout.Layout
	mode     types.InputMode
	space    convenience.State
	marked   string

	mu      sync.Mutex
	pending []Command
}

func New(delegate Delegate, cfg Config) *Session {
	s := &Session{
		delegate: delegate,
		cfg:      cfg,
		clock:    cfg.Clock,
		log:      cfg.Logger,
		composer: hangul.NewHangulComposer(),
		mode:     cfg.Mode,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "session")
	s.layout = s.loadLayout(cfg.Layout)
	return s
}

func (s *Session) Mode() types.InputMode { return s.mode }

func (s *Session) Layout() *layout.Layout { return s.layout }

func (s *Session) State() State {
	return State{
		Mode:         s.mode,
		Layout:       s.layout.ID(),
		Preedit:      s.composer.Preedit(),
		HoldingSpace: s.space.Holding(),
	}
}

// HandleKey processes one key press. It returns true when the key was
// consumed; otherwise the host should apply the key's default behavior.
func (s *Session) HandleKey(ev keys.Event) bool {
	s.Drain()

	toggle := s.isToggle(ev)
	if ev.Code != keys.KeySpace || toggle || ev.Modifiers.Shortcut() {
		s.resolveHeldSpace()
	}

	switch {
	case toggle:
		s.setMode(s.mode.Toggle())
		return true
	case ev.Modifiers.Shortcut():
		s.Commit()
		return false
	}

	switch {
	case ev.Code == keys.KeyEsc:
		return s.Cancel()
	case ev.Code == keys.KeyEnter, ev.Code == keys.KeyTab, ev.Code.IsArrow():
		s.Commit()
		return false
	case ev.Code == keys.KeySpace:
		s.Commit()
		return s.handleSpace()
	case ev.Code == keys.KeyBackspace:
		return s.handleBackspace()
	}

	if ev.Modifiers.Has(keys.ModCapsLock) && !ev.Shifted() {
		s.Commit()
		return false
	}

	if s.mode == types.ModeEnglish {
		return s.handleEnglish(ev)
	}
	return s.handleKorean(ev)
}

// Commit finalizes the buffer.
func (s *Session) Commit() {
	s.emit(s.composer.Flush())
}

// Cancel drops the buffer without committing it. It reports whether there
// was anything to drop.
func (s *Session) Cancel() bool {
	had := !s.composer.Empty()
	s.composer.Cancel()
	if had {
		s.setMarked("")
	}
	return had
}

// Deactivate finalizes everything in progress; hosts call it on focus loss.
func (s *Session) Deactivate() {
	s.Drain()
	s.resolveHeldSpace()
	s.Commit()
}

func (s *Session) isToggle(ev keys.Event) bool {
	for _, chord := range s.cfg.ToggleChords {
		if chord.Matches(ev) {
			return true
		}
	}
	return false
}

func (s *Session) handleBackspace() bool {
	preedit, ok := s.composer.Backspace()
	if !ok {
		return false
	}
	s.setMarked(preedit)
	return true
}

func (s *Session) handleEnglish(ev keys.Event) bool {
	if !s.cfg.AutoCapitalize || !unicode.IsLetter(ev.Rune) {
		return false
	}
	context, ok := s.delegate.TextBeforeCursor(convenience.ContextLength)
	if !convenience.ShouldCapitalize(context, ok) {
		return false
	}
	s.delegate.InsertText(convenience.Capitalize(ev.Rune))
	return true
}

func (s *Session) handleKorean(ev keys.Event) bool {
	symbol := s.layout.Translate(ev.Code, ev.Shifted())
	if symbol == nil || symbol.Kind == layout.SymbolPassthrough {
		if ev.Rune == 0 {
			s.Commit()
			return false
		}
		return s.process(hangul.Opaque(ev.Rune))
	}

	switch symbol.Kind {
	case layout.SymbolText:
		s.Commit()
		s.delegate.InsertText(symbol.Text)
		return true
	default:
		return s.process(symbol.Jamo)
	}
}

// process feeds j to the composer. A rejected jamo is retried once against
// an empty buffer; if it is still rejected, printable characters are
// inserted as they are and anything else goes back to the host.
func (s *Session) process(j hangul.Jamo) bool {
	res := s.composer.Feed(j)
	s.emit(res.Commit)
	if !res.Consumed {
		s.Commit()
		res = s.composer.Feed(j)
		s.emit(res.Commit)
	}
	if !res.Consumed {
		if j.Char == 0 || !unicode.IsPrint(j.Char) {
			return false
		}
		s.delegate.InsertText(string(j.Char))
		s.marked = ""
		return true
	}
	s.setMarked(res.Preedit)
	return true
}

// emit commits text, which also replaces the marked text.
func (s *Session) emit(text string) {
	if text == "" {
		return
	}
	s.delegate.InsertText(text)
	s.marked = ""
}

func (s *Session) setMarked(text string) {
	if text == s.marked {
		return
	}
	s.marked = text
	s.delegate.SetMarkedText(text)
}

// handleSpace runs after the buffer has been committed.
func (s *Session) handleSpace() bool {
	if !s.cfg.DoubleSpacePeriod {
		return false
	}
	now := s.clock()
	if s.space.Holding() {
		within := s.space.WithinWindow(now)
		s.space.Release()
		context, ok := s.delegate.TextBeforeCursor(2)
		if within && ok && heldSpaceQualifies(context) {
			s.marked = ""
			s.delegate.ReplaceTextBeforeCursor(1, ". ")
			return true
		}
		s.commitHeldSpace()
	}

	context, ok := s.delegate.TextBeforeCursor(1)
	if !ok {
		return false
	}
	last, ok := convenience.LastRune(context)
	if !ok || !convenience.IsWordCharacter(last) {
		return false
	}
	s.space.Hold(now)
	s.setMarked(" ")
	return true
}

func (s *Session) resolveHeldSpace() {
	if s.space.Release() {
		s.commitHeldSpace()
	}
}

func (s *Session) commitHeldSpace() {
	s.delegate.InsertText(" ")
	s.marked = ""
}

// heldSpaceQualifies checks the two characters before the cursor: a word
// character followed by the held space.
func heldSpaceQualifies(context string) bool {
	runes := []rune(context)
	if len(runes) != 2 || runes[1] != ' ' {
		return false
	}
	return convenience.IsWordCharacter(runes[0])
}

func (s *Session) setMode(mode types.InputMode) {
	s.resolveHeldSpace()
	s.Commit()
	if mode == s.mode {
		return
	}
	s.log.Debug("switch mode", "from", s.mode.String(), "to", mode.String())
	s.mode = mode
}

func (s *Session) setLayout(id string) {
	s.resolveHeldSpace()
	s.Commit()
	next := s.loadLayout(id)
	if next.ID() != s.layout.ID() {
		s.log.Debug("switch layout", "from", s.layout.ID(), "to", next.ID())
	}
	s.layout = next
}

func (s *Session) loadLayout(id string) *layout.Layout {
	l, err := layout.LoadOrDefault(id)
	if err != nil {
		s.log.Warn("unknown layout, using default", "layout", id, "default", l.ID())
	}
	if len(s.cfg.CustomPairs) == 0 {
		return l
	}
	custom, err := layout.ApplyCustomPairs(l, s.cfg.CustomPairs)
	if err != nil {
		s.log.Warn("ignoring custom key pairs", "layout", l.ID(), "error", err)
		return l
	}
	return custom
}
