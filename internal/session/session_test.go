package session

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gg582/hanfe/internal/document"
	"github.com/gg582/hanfe/internal/keys"
	"github.com/gg582/hanfe/internal/layout"
	"github.com/gg582/hanfe/internal/types"
)

type harness struct {
	t   *testing.T
	doc *document.Document
	s   *Session
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AutoCapitalize = false
	cfg.DoubleSpacePeriod = false
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func newHarness(t *testing.T, cfg Config) *harness {
	doc := document.New(0)
	return &harness{t: t, doc: doc, s: New(doc, cfg)}
}

func (h *harness) press(ev keys.Event) bool {
	handled := h.s.HandleKey(ev)
	if !handled {
		h.doc.Passthrough(ev)
	}
	return handled
}

func (h *harness) typeKeys(input string) {
	h.t.Helper()
	for _, r := range input {
		ev, ok := keys.FromRune(r)
		require.True(h.t, ok, "no key for %q", r)
		h.press(ev)
	}
}

func (h *harness) assertDoc(text, marked string) {
	h.t.Helper()
	assert.Equal(h.t, text, h.doc.Text(), "committed text")
	assert.Equal(h.t, marked, h.doc.Marked(), "marked text")
}

func TestSessionComposesWords(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("dkssud")
	h.assertDoc("안", "녕")

	h.s.Deactivate()
	h.assertDoc("안녕", "")
}

func TestSessionCompoundTrailResegmentation(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rkqt")
	h.assertDoc("", "값")

	h.typeKeys("k")
	h.assertDoc("갑", "사")
}

func TestSessionVowelBoundaryRetries(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rkj")
	h.assertDoc("가", "ㅓ")
}

func TestSessionDoubleMedial(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("qhk")
	h.assertDoc("", "봐")
}

func TestSessionBackspace(t *testing.T) {
	h := newHarness(t, testConfig())
	h.doc.InsertText("x")
	h.typeKeys("rk")

	backspace := keys.Event{Code: keys.KeyBackspace}
	require.True(t, h.press(backspace))
	h.assertDoc("x", "ㄱ")

	require.True(t, h.press(backspace))
	h.assertDoc("x", "")

	require.False(t, h.press(backspace), "empty buffer backspace passes through")
	h.assertDoc("", "")
}

func TestSessionEscapeCancels(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk")

	esc := keys.Event{Code: keys.KeyEsc}
	assert.True(t, h.press(esc))
	h.assertDoc("", "")
	assert.False(t, h.press(esc), "escape without a buffer passes through")
}

func TestSessionStructuralKeysCommit(t *testing.T) {
	for _, code := range []keys.KeyCode{keys.KeyEnter, keys.KeyTab, keys.KeyLeft, keys.KeyDown} {
		h := newHarness(t, testConfig())
		h.typeKeys("rk")
		assert.False(t, h.s.HandleKey(keys.Event{Code: code}), "key %d should pass through", code)
		h.assertDoc("가", "")
	}
}

func TestSessionSpaceCommitsAndPassesThrough(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk rk")
	h.assertDoc("가 ", "가")
}

func TestSessionShortcutModifiersPassThrough(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk")

	handled := h.press(keys.Event{Code: keys.KeyC, Rune: 'c', Modifiers: keys.ModControl})
	assert.False(t, handled)
	h.assertDoc("가", "")

	assert.False(t, h.s.HandleKey(keys.Event{Code: keys.KeyR, Rune: 'r', Modifiers: keys.ModCommand}))
	assert.Equal(t, "", h.s.State().Preedit)
}

func TestSessionCapsLockPassesThrough(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk")

	handled := h.press(keys.Event{Code: keys.KeyR, Rune: 'R', Modifiers: keys.ModCapsLock})
	assert.False(t, handled)
	h.assertDoc("가R", "")

	handled = h.press(keys.Event{Code: keys.KeyR, Rune: 'r', Modifiers: keys.ModCapsLock | keys.ModShift})
	assert.True(t, handled, "caps lock with shift composes")
	h.assertDoc("가R", "ㄲ")
}

func TestSessionPrintableFallback(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk1")
	h.assertDoc("가1", "")

	assert.False(t, h.s.HandleKey(keys.Event{Code: keys.KeyF1}))
}

func TestSessionToggleChord(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk")

	require.True(t, h.press(keys.Event{Code: keys.KeyHangul}))
	assert.Equal(t, types.ModeEnglish, h.s.Mode())
	h.assertDoc("가", "")

	h.typeKeys("rk")
	h.assertDoc("가rk", "")

	require.True(t, h.press(keys.Event{Code: keys.KeySpace, Rune: ' ', Modifiers: keys.ModControl}))
	assert.Equal(t, types.ModeKorean, h.s.Mode())
}

func TestSessionLayoutSwitchForcesCommit(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("rk")

	h.s.Post(SwitchLayout("3"))
	h.s.Drain()
	h.assertDoc("가", "")
	assert.Equal(t, "3", h.s.State().Layout)

	h.typeKeys("kfs")
	h.assertDoc("가", "간")
}

func TestSessionSebeolsikFinalKeepsSyllable(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "3"
	h := newHarness(t, cfg)

	h.typeKeys("kfs")
	h.assertDoc("", "간")
	h.typeKeys("f")
	h.assertDoc("간", "ㅏ")

	require.True(t, h.press(keys.Event{Code: keys.KeyBackspace}))
	h.assertDoc("간", "")
}

func TestSessionSebeolsikCompoundFinalBackspace(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "3"
	h := newHarness(t, cfg)

	h.typeKeys("kfV")
	h.assertDoc("", "갃")

	require.True(t, h.press(keys.Event{Code: keys.KeyBackspace}))
	h.assertDoc("", "가")
}

func TestSessionModeSwitchForcesCommit(t *testing.T) {
	h := newHarness(t, testConfig())
	h.typeKeys("dks")

	h.s.Post(SetMode(types.ModeEnglish))
	assert.Equal(t, "안", h.doc.Marked(), "posted commands wait for the owner")

	h.typeKeys("a")
	h.assertDoc("안a", "")
}

func TestSessionUnknownLayoutFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "does-not-exist"
	h := newHarness(t, cfg)
	assert.Equal(t, layout.DefaultID, h.s.State().Layout)

	h.s.Post(SwitchLayout("also-missing"))
	h.s.Drain()
	assert.Equal(t, layout.DefaultID, h.s.State().Layout)
}

func TestSessionPostFromOtherGoroutines(t *testing.T) {
	h := newHarness(t, testConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.s.Post(ToggleMode())
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.s.Post(SwitchLayout("3y"))
	}()
	wg.Wait()

	h.typeKeys("k")
	state := h.s.State()
	assert.Equal(t, types.ModeKorean, state.Mode, "an even number of toggles")
	assert.Equal(t, "3", state.Layout)
	assert.Equal(t, "ㄱ", state.Preedit)
}

func TestSessionCustomTextPair(t *testing.T) {
	cfg := testConfig()
	cfg.CustomPairs = []layout.CustomPair{{Key: ";", Kind: "text", Normal: "·"}}
	h := newHarness(t, cfg)

	h.typeKeys("rk;")
	h.assertDoc("가·", "")
}

func TestSessionReloadLayoutReplacesCustomPairs(t *testing.T) {
	cfg := testConfig()
	cfg.CustomPairs = []layout.CustomPair{{Key: ";", Kind: "text", Normal: "·"}}
	h := newHarness(t, cfg)

	h.s.Post(ReloadLayout("2", []layout.CustomPair{{Key: ";", Kind: "text", Normal: "※"}}))
	h.typeKeys("rk;")
	h.assertDoc("가※", "")

	h.s.Post(ReloadLayout("2", nil))
	h.typeKeys(";")
	h.assertDoc("가※;", "")
}

func TestSessionDoubleSpacePeriod(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	cfg := testConfig()
	cfg.Mode = types.ModeEnglish
	cfg.DoubleSpacePeriod = true
	cfg.Clock = func() time.Time { return now }
	h := newHarness(t, cfg)
	h.doc.InsertText("Hello")

	space := keys.Event{Code: keys.KeySpace, Rune: ' '}
	require.True(t, h.press(space))
	h.assertDoc("Hello", " ")
	assert.True(t, h.s.State().HoldingSpace)

	now = now.Add(200 * time.Millisecond)
	require.True(t, h.press(space))
	h.assertDoc("Hello. ", "")
	assert.False(t, h.s.State().HoldingSpace)
}

func TestSessionDoubleSpaceWindowExpires(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	cfg := testConfig()
	cfg.Mode = types.ModeEnglish
	cfg.DoubleSpacePeriod = true
	cfg.Clock = func() time.Time { return now }
	h := newHarness(t, cfg)
	h.doc.InsertText("Hello")

	space := keys.Event{Code: keys.KeySpace, Rune: ' '}
	h.press(space)
	now = now.Add(time.Second)
	assert.False(t, h.press(space))
	h.assertDoc("Hello  ", "")
}

func TestSessionHeldSpaceResolvedBeforeOtherKeys(t *testing.T) {
	cfg := testConfig()
	cfg.DoubleSpacePeriod = true
	h := newHarness(t, cfg)

	h.typeKeys("rk ")
	h.assertDoc("가", " ")

	h.typeKeys("sk")
	h.assertDoc("가 ", "나")
}

func TestSessionDoubleSpaceNeedsContext(t *testing.T) {
	cfg := testConfig()
	cfg.DoubleSpacePeriod = true
	h := newHarness(t, cfg)
	h.doc.InsertText("Hello")
	h.doc.SetContextAvailable(false)

	assert.False(t, h.press(keys.Event{Code: keys.KeySpace, Rune: ' '}))
	h.assertDoc("Hello ", "")
}

func TestSessionDoubleSpaceOnlyAfterAlphanumericOrHangul(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = types.ModeEnglish
	cfg.DoubleSpacePeriod = true
	h := newHarness(t, cfg)
	h.doc.InsertText("café")

	assert.False(t, h.press(keys.Event{Code: keys.KeySpace, Rune: ' '}))
	h.assertDoc("café ", "")
	assert.False(t, h.s.State().HoldingSpace)
}

func TestSessionAutoCapitalize(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = types.ModeEnglish
	cfg.AutoCapitalize = true
	h := newHarness(t, cfg)

	h.typeKeys("hi. ok")
	h.assertDoc("Hi. Ok", "")

	h.doc.Reset()
	h.doc.SetContextAvailable(false)
	h.typeKeys("x")
	h.assertDoc("X", "")
}

func TestSessionDeactivateCommitsHeldSpace(t *testing.T) {
	cfg := testConfig()
	cfg.DoubleSpacePeriod = true
	h := newHarness(t, cfg)
	h.typeKeys("rk ")
	h.s.Deactivate()
	h.assertDoc("가 ", "")
}
