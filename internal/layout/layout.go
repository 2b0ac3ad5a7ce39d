package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gg582/hanfe/internal/hangul"
	"github.com/gg582/hanfe/internal/keys"
)

// DefaultID is the layout used when none is configured or the configured one
// is unknown.
const DefaultID = "2"

// ErrUnknownLayout is returned by Load for an id with no table.
var ErrUnknownLayout = errors.New("unknown layout")

type SymbolKind int

const (
	// SymbolPassthrough leaves the key to the host's own keymap.
	SymbolPassthrough SymbolKind = iota
	// SymbolText inserts fixed text after committing the buffer.
	SymbolText
	SymbolJamo
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolText:
		return "text"
	case SymbolJamo:
		return "jamo"
	default:
		return "passthrough"
	}
}

type Symbol struct {
	Kind SymbolKind
	Text string
	Jamo hangul.Jamo
}

type Entry struct {
	Normal  *Symbol
	Shifted *Symbol
}

// Layout maps physical keys to symbols. Layouts returned by Load are shared
// and must not be modified; ApplyCustomPairs works on a copy.
type Layout struct {
	id      string
	name    string
	mapping map[keys.KeyCode]Entry
}

func newLayout(id, name string) *Layout {
	return &Layout{id: id, name: name, mapping: make(map[keys.KeyCode]Entry)}
}

// ID is the short identifier ("2", "3").
func (l *Layout) ID() string { return l.id }

// Name is the descriptive name ("dubeolsik").
func (l *Layout) Name() string { return l.name }

// Translate returns the symbol for a key, preferring the shifted entry when
// shift is held and falling back to the other one when only one is defined.
func (l *Layout) Translate(code keys.KeyCode, shift bool) *Symbol {
	if l == nil {
		return nil
	}
	entry, ok := l.mapping[code]
	if !ok {
		return nil
	}
	if shift && entry.Shifted != nil {
		return entry.Shifted
	}
	if entry.Normal != nil {
		return entry.Normal
	}
	return entry.Shifted
}

func (l *Layout) clone() *Layout {
	out := newLayout(l.id, l.name)
	for code, entry := range l.mapping {
		out.mapping[code] = entry
	}
	return out
}

func NewTextSymbol(value string) *Symbol {
	return &Symbol{Kind: SymbolText, Text: value}
}

func NewJamoSymbol(j hangul.Jamo) *Symbol {
	return &Symbol{Kind: SymbolJamo, Jamo: j}
}

var passthroughSymbol = &Symbol{Kind: SymbolPassthrough}

func NewPassthroughSymbol() *Symbol { return passthroughSymbol }

// jamo is a contextual consonant or a vowel.
func jamo(r rune) *Symbol { return NewJamoSymbol(hangul.Classify(r)) }

func initial(r rune) *Symbol { return NewJamoSymbol(hangul.LeadOnly(r)) }

func final(r rune) *Symbol { return NewJamoSymbol(hangul.TrailOnly(r)) }

func addEntry(mapping map[keys.KeyCode]Entry, code keys.KeyCode, normal, shifted *Symbol) {
	mapping[code] = Entry{Normal: normal, Shifted: shifted}
}

func addPassthrough(mapping map[keys.KeyCode]Entry, codes ...keys.KeyCode) {
	for _, code := range codes {
		addEntry(mapping, code, passthroughSymbol, passthroughSymbol)
	}
}

var punctuationKeys = []keys.KeyCode{
	keys.KeyGrave, keys.KeyMinus, keys.KeyEqual,
	keys.KeyLeftBrace, keys.KeyRightBrace, keys.KeyBackslash,
	keys.KeySemicolon, keys.KeyApostrophe,
	keys.KeyComma, keys.KeyDot, keys.KeySlash,
}

var digitKeys = []keys.KeyCode{
	keys.Key1, keys.Key2, keys.Key3, keys.Key4, keys.Key5,
	keys.Key6, keys.Key7, keys.Key8, keys.Key9, keys.Key0,
}

func buildDubeolsik() *Layout {
	layout := newLayout("2", "dubeolsik")
	mapping := layout.mapping
	addEntry(mapping, keys.KeyQ, jamo('ㅂ'), jamo('ㅃ'))
	addEntry(mapping, keys.KeyW, jamo('ㅈ'), jamo('ㅉ'))
	addEntry(mapping, keys.KeyE, jamo('ㄷ'), jamo('ㄸ'))
	addEntry(mapping, keys.KeyR, jamo('ㄱ'), jamo('ㄲ'))
	addEntry(mapping, keys.KeyT, jamo('ㅅ'), jamo('ㅆ'))
	addEntry(mapping, keys.KeyY, jamo('ㅛ'), nil)
	addEntry(mapping, keys.KeyU, jamo('ㅕ'), nil)
	addEntry(mapping, keys.KeyI, jamo('ㅑ'), nil)
	addEntry(mapping, keys.KeyO, jamo('ㅐ'), jamo('ㅒ'))
	addEntry(mapping, keys.KeyP, jamo('ㅔ'), jamo('ㅖ'))
	addEntry(mapping, keys.KeyA, jamo('ㅁ'), nil)
	addEntry(mapping, keys.KeyS, jamo('ㄴ'), nil)
	addEntry(mapping, keys.KeyD, jamo('ㅇ'), nil)
	addEntry(mapping, keys.KeyF, jamo('ㄹ'), nil)
	addEntry(mapping, keys.KeyG, jamo('ㅎ'), nil)
	addEntry(mapping, keys.KeyH, jamo('ㅗ'), nil)
	addEntry(mapping, keys.KeyJ, jamo('ㅓ'), nil)
	addEntry(mapping, keys.KeyK, jamo('ㅏ'), nil)
	addEntry(mapping, keys.KeyL, jamo('ㅣ'), nil)
	addEntry(mapping, keys.KeyZ, jamo('ㅋ'), nil)
	addEntry(mapping, keys.KeyX, jamo('ㅌ'), nil)
	addEntry(mapping, keys.KeyC, jamo('ㅊ'), nil)
	addEntry(mapping, keys.KeyV, jamo('ㅍ'), nil)
	addEntry(mapping, keys.KeyB, jamo('ㅠ'), nil)
	addEntry(mapping, keys.KeyN, jamo('ㅜ'), nil)
	addEntry(mapping, keys.KeyM, jamo('ㅡ'), nil)

	addPassthrough(mapping, digitKeys...)
	addPassthrough(mapping, punctuationKeys...)
	return layout
}

// buildSebeolsik390 is the 3-90 arrangement: initials on the right hand,
// vowels in the middle, finals on the left hand. Doubled initials, which the
// composer never forms from two presses, sit on the shifted initial keys.
func buildSebeolsik390() *Layout {
	layout := newLayout("3", "sebeolsik-390")
	mapping := layout.mapping
	passthrough := passthroughSymbol

	addEntry(mapping, keys.Key1, final('ㅎ'), passthrough)
	addEntry(mapping, keys.Key2, final('ㅆ'), passthrough)
	addEntry(mapping, keys.Key3, final('ㅂ'), passthrough)
	addEntry(mapping, keys.Key4, jamo('ㅛ'), passthrough)
	addEntry(mapping, keys.Key5, jamo('ㅠ'), passthrough)
	addEntry(mapping, keys.Key6, jamo('ㅑ'), passthrough)
	addEntry(mapping, keys.Key7, jamo('ㅖ'), passthrough)
	addEntry(mapping, keys.Key8, jamo('ㅢ'), passthrough)
	addEntry(mapping, keys.Key9, jamo('ㅜ'), passthrough)
	addEntry(mapping, keys.Key0, initial('ㅋ'), passthrough)

	addEntry(mapping, keys.KeyQ, final('ㅅ'), final('ㅍ'))
	addEntry(mapping, keys.KeyW, final('ㄹ'), final('ㅌ'))
	addEntry(mapping, keys.KeyE, jamo('ㅕ'), final('ㄵ'))
	addEntry(mapping, keys.KeyR, jamo('ㅐ'), jamo('ㅒ'))
	addEntry(mapping, keys.KeyT, jamo('ㅓ'), passthrough)
	addEntry(mapping, keys.KeyY, initial('ㄹ'), passthrough)
	addEntry(mapping, keys.KeyU, initial('ㄷ'), initial('ㄸ'))
	addEntry(mapping, keys.KeyI, initial('ㅁ'), passthrough)
	addEntry(mapping, keys.KeyO, initial('ㅊ'), passthrough)
	addEntry(mapping, keys.KeyP, initial('ㅍ'), passthrough)

	addEntry(mapping, keys.KeyA, final('ㅇ'), final('ㄷ'))
	addEntry(mapping, keys.KeyS, final('ㄴ'), final('ㄶ'))
	addEntry(mapping, keys.KeyD, jamo('ㅣ'), final('ㄺ'))
	addEntry(mapping, keys.KeyF, jamo('ㅏ'), final('ㄲ'))
	addEntry(mapping, keys.KeyG, jamo('ㅡ'), passthrough)
	addEntry(mapping, keys.KeyH, initial('ㄴ'), passthrough)
	addEntry(mapping, keys.KeyJ, initial('ㅇ'), passthrough)
	addEntry(mapping, keys.KeyK, initial('ㄱ'), initial('ㄲ'))
	addEntry(mapping, keys.KeyL, initial('ㅈ'), initial('ㅉ'))
	addEntry(mapping, keys.KeySemicolon, initial('ㅂ'), initial('ㅃ'))
	addEntry(mapping, keys.KeyApostrophe, initial('ㅌ'), passthrough)

	addEntry(mapping, keys.KeyZ, final('ㅁ'), final('ㅊ'))
	addEntry(mapping, keys.KeyX, final('ㄱ'), final('ㅄ'))
	addEntry(mapping, keys.KeyC, jamo('ㅔ'), final('ㅋ'))
	addEntry(mapping, keys.KeyV, jamo('ㅗ'), final('ㄳ'))
	addEntry(mapping, keys.KeyB, jamo('ㅜ'), passthrough)
	addEntry(mapping, keys.KeyN, initial('ㅅ'), initial('ㅆ'))
	addEntry(mapping, keys.KeyM, initial('ㅎ'), passthrough)
	addEntry(mapping, keys.KeySlash, jamo('ㅗ'), passthrough)

	addPassthrough(mapping,
		keys.KeyGrave, keys.KeyMinus, keys.KeyEqual,
		keys.KeyLeftBrace, keys.KeyRightBrace, keys.KeyBackslash,
		keys.KeyComma, keys.KeyDot,
	)
	return layout
}

type catalogueEntry struct {
	layout  *Layout
	aliases []string
}

// The "y" ids select the old-hangul variants on other platforms. Archaic
// jamo have no precomposed syllables, so they map to the modern tables.
var catalogue = []catalogueEntry{
	{buildDubeolsik(), []string{"2", "2y", "dubeolsik", "dubeol", "ko"}},
	{buildSebeolsik390(), []string{"3", "3y", "390", "sebeolsik-390", "sebeolsik", "sebeol"}},
}

var byAlias = buildAliasIndex()

func buildAliasIndex() map[string]*Layout {
	idx := make(map[string]*Layout)
	for _, entry := range catalogue {
		for _, alias := range entry.aliases {
			idx[alias] = entry.layout
		}
	}
	return idx
}

// AvailableLayouts lists every accepted layout id, sorted.
func AvailableLayouts() []string {
	names := make([]string, 0, len(byAlias))
	for alias := range byAlias {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Load returns the shared layout for id. Matching ignores case and
// surrounding space; the empty id selects DefaultID.
func Load(id string) (*Layout, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		key = DefaultID
	}
	if l, ok := byAlias[key]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, id)
}

// LoadOrDefault is Load with the fallback to DefaultID. The error, if any,
// reports the id that was replaced so the caller can log it.
func LoadOrDefault(id string) (*Layout, error) {
	l, err := Load(id)
	if err == nil {
		return l, nil
	}
	return byAlias[DefaultID], err
}
