package keys

type qwertyKey struct {
	code    KeyCode
	normal  rune
	shifted rune
}

var qwertyKeys = []qwertyKey{
	{KeyGrave, '`', '~'},
	{Key1, '1', '!'},
	{Key2, '2', '@'},
	{Key3, '3', '#'},
	{Key4, '4', '$'},
	{Key5, '5', '%'},
	{Key6, '6', '^'},
	{Key7, '7', '&'},
	{Key8, '8', '*'},
	{Key9, '9', '('},
	{Key0, '0', ')'},
	{KeyMinus, '-', '_'},
	{KeyEqual, '=', '+'},
	{KeyQ, 'q', 'Q'},
	{KeyW, 'w', 'W'},
	{KeyE, 'e', 'E'},
	{KeyR, 'r', 'R'},
	{KeyT, 't', 'T'},
	{KeyY, 'y', 'Y'},
	{KeyU, 'u', 'U'},
	{KeyI, 'i', 'I'},
	{KeyO, 'o', 'O'},
	{KeyP, 'p', 'P'},
	{KeyLeftBrace, '[', '{'},
	{KeyRightBrace, ']', '}'},
	{KeyBackslash, '\\', '|'},
	{KeyA, 'a', 'A'},
	{KeyS, 's', 'S'},
	{KeyD, 'd', 'D'},
	{KeyF, 'f', 'F'},
	{KeyG, 'g', 'G'},
	{KeyH, 'h', 'H'},
	{KeyJ, 'j', 'J'},
	{KeyK, 'k', 'K'},
	{KeyL, 'l', 'L'},
	{KeySemicolon, ';', ':'},
	{KeyApostrophe, '\'', '"'},
	{KeyZ, 'z', 'Z'},
	{KeyX, 'x', 'X'},
	{KeyC, 'c', 'C'},
	{KeyV, 'v', 'V'},
	{KeyB, 'b', 'B'},
	{KeyN, 'n', 'N'},
	{KeyM, 'm', 'M'},
	{KeyComma, ',', '<'},
	{KeyDot, '.', '>'},
	{KeySlash, '/', '?'},
	{KeySpace, ' ', ' '},
}

type qwertyPos struct {
	code  KeyCode
	shift bool
}

var (
	qwertyByRune = buildQwertyByRune()
	qwertyByCode = buildQwertyByCode()
)

func buildQwertyByRune() map[rune]qwertyPos {
	m := make(map[rune]qwertyPos, len(qwertyKeys)*2)
	for _, k := range qwertyKeys {
		m[k.normal] = qwertyPos{code: k.code}
		if k.shifted != k.normal {
			m[k.shifted] = qwertyPos{code: k.code, shift: true}
		}
	}
	return m
}

func buildQwertyByCode() map[KeyCode]qwertyKey {
	m := make(map[KeyCode]qwertyKey, len(qwertyKeys))
	for _, k := range qwertyKeys {
		m[k.code] = k
	}
	return m
}

// FromRune maps a character typed on a US QWERTY keyboard back to the key
// that produced it. Hosts that only see characters use this to recover
// physical key events.
func FromRune(r rune) (Event, bool) {
	pos, ok := qwertyByRune[r]
	if !ok {
		return Event{}, false
	}
	ev := Event{Code: pos.code, Rune: r}
	if pos.shift {
		ev.Modifiers = ModShift
	}
	return ev, true
}

// RuneFor returns the US QWERTY character for code.
func RuneFor(code KeyCode, shift bool) (rune, bool) {
	k, ok := qwertyByCode[code]
	if !ok {
		return 0, false
	}
	if shift {
		return k.shifted, true
	}
	return k.normal, true
}
