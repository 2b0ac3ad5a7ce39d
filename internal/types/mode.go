package types

import "strings"

// InputMode selects whether letter keys compose Hangul or pass through.
type InputMode int

const (
	ModeKorean InputMode = iota
	ModeEnglish
)

func (m InputMode) String() string {
	switch m {
	case ModeKorean:
		return "korean"
	case ModeEnglish:
		return "english"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m InputMode) Toggle() InputMode {
	if m == ModeKorean {
		return ModeEnglish
	}
	return ModeKorean
}

// ParseInputMode accepts the names used in config files and on the command
// line. Matching is case-insensitive.
func ParseInputMode(name string) (InputMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "korean", "hangul", "ko":
		return ModeKorean, true
	case "english", "latin", "en":
		return ModeEnglish, true
	default:
		return 0, false
	}
}
