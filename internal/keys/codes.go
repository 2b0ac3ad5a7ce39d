package keys

// KeyCode is a physical key position. Values follow the Linux input event
// codes so that layouts written against evdev scancodes keep their numbers.
type KeyCode uint16

const (
	KeyEsc        KeyCode = 1
	Key1          KeyCode = 2
	Key2          KeyCode = 3
	Key3          KeyCode = 4
	Key4          KeyCode = 5
	Key5          KeyCode = 6
	Key6          KeyCode = 7
	Key7          KeyCode = 8
	Key8          KeyCode = 9
	Key9          KeyCode = 10
	Key0          KeyCode = 11
	KeyMinus      KeyCode = 12
	KeyEqual      KeyCode = 13
	KeyBackspace  KeyCode = 14
	KeyTab        KeyCode = 15
	KeyQ          KeyCode = 16
	KeyW          KeyCode = 17
	KeyE          KeyCode = 18
	KeyR          KeyCode = 19
	KeyT          KeyCode = 20
	KeyY          KeyCode = 21
	KeyU          KeyCode = 22
	KeyI          KeyCode = 23
	KeyO          KeyCode = 24
	KeyP          KeyCode = 25
	KeyLeftBrace  KeyCode = 26
	KeyRightBrace KeyCode = 27
	KeyEnter      KeyCode = 28
	KeyLeftCtrl   KeyCode = 29
	KeyA          KeyCode = 30
	KeyS          KeyCode = 31
	KeyD          KeyCode = 32
	KeyF          KeyCode = 33
	KeyG          KeyCode = 34
	KeyH          KeyCode = 35
	KeyJ          KeyCode = 36
	KeyK          KeyCode = 37
	KeyL          KeyCode = 38
	KeySemicolon  KeyCode = 39
	KeyApostrophe KeyCode = 40
	KeyGrave      KeyCode = 41
	KeyLeftShift  KeyCode = 42
	KeyBackslash  KeyCode = 43
	KeyZ          KeyCode = 44
	KeyX          KeyCode = 45
	KeyC          KeyCode = 46
	KeyV          KeyCode = 47
	KeyB          KeyCode = 48
	KeyN          KeyCode = 49
	KeyM          KeyCode = 50
	KeyComma      KeyCode = 51
	KeyDot        KeyCode = 52
	KeySlash      KeyCode = 53
	KeyRightShift KeyCode = 54
	KeyLeftAlt    KeyCode = 56
	KeySpace      KeyCode = 57
	KeyCapsLock   KeyCode = 58
	KeyF1         KeyCode = 59
	KeyF2         KeyCode = 60
	KeyF3         KeyCode = 61
	KeyF4         KeyCode = 62
	KeyF5         KeyCode = 63
	KeyF6         KeyCode = 64
	KeyF7         KeyCode = 65
	KeyF8         KeyCode = 66
	KeyF9         KeyCode = 67
	KeyF10        KeyCode = 68
	KeyF11        KeyCode = 87
	KeyF12        KeyCode = 88
	KeyRightCtrl  KeyCode = 97
	KeyRightAlt   KeyCode = 100
	KeyUp         KeyCode = 103
	KeyLeft       KeyCode = 105
	KeyRight      KeyCode = 106
	KeyDown       KeyCode = 108
	KeyHangeul    KeyCode = 122
	KeyHanja      KeyCode = 123
	KeyLeftMeta   KeyCode = 125
	KeyRightMeta  KeyCode = 126
)

const KeyHangul = KeyHangeul

// IsArrow reports whether code is one of the four cursor keys.
func (c KeyCode) IsArrow() bool {
	switch c {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// IsModifier reports whether code is a modifier key on its own.
func (c KeyCode) IsModifier() bool {
	switch c {
	case KeyLeftShift, KeyRightShift, KeyLeftCtrl, KeyRightCtrl,
		KeyLeftAlt, KeyRightAlt, KeyLeftMeta, KeyRightMeta, KeyCapsLock:
		return true
	}
	return false
}

// Modifier returns the flag a modifier key contributes, or zero.
func (c KeyCode) Modifier() Modifiers {
	switch c {
	case KeyLeftShift, KeyRightShift:
		return ModShift
	case KeyLeftCtrl, KeyRightCtrl:
		return ModControl
	case KeyLeftAlt, KeyRightAlt:
		return ModOption
	case KeyLeftMeta, KeyRightMeta:
		return ModCommand
	case KeyCapsLock:
		return ModCapsLock
	}
	return 0
}
