package convenience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldCapitalize(t *testing.T) {
	cases := []struct {
		name    string
		context string
		ok      bool
		want    bool
	}{
		{"unavailable context", "", false, true},
		{"empty document", "", true, true},
		{"after newline", "abc\n", true, true},
		{"after period and space", "end. ", true, true},
		{"after question and spaces", "so?  ", true, true},
		{"after exclamation and newline", "wow!\n", true, true},
		{"mid sentence", "the ", true, false},
		{"period without space", "e.g.", true, false},
		{"comma", "one, ", true, false},
		{"whitespace only", "   ", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldCapitalize(tc.context, tc.ok))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "A", Capitalize('a'))
	assert.Equal(t, "Ä", Capitalize('ä'))
	assert.Equal(t, "1", Capitalize('1'))
}

func TestIsWordCharacter(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '7', '가', 'ㄱ', 'ㅏ'} {
		assert.True(t, IsWordCharacter(r), "%q", r)
	}
	for _, r := range []rune{' ', '.', ',', '\n', '!', 'é', 'ж', 'か', '٣'} {
		assert.False(t, IsWordCharacter(r), "%q", r)
	}
}

func TestStateWindow(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var s State
	require.False(t, s.Holding())
	require.False(t, s.WithinWindow(base))

	s.Hold(base)
	require.True(t, s.Holding())
	assert.True(t, s.WithinWindow(base.Add(449*time.Millisecond)))
	assert.False(t, s.WithinWindow(base.Add(DoubleSpaceWindow)))
	assert.False(t, s.WithinWindow(base.Add(-time.Millisecond)))

	assert.True(t, s.Release())
	assert.False(t, s.Release())
	assert.False(t, s.WithinWindow(base))
}

func TestLastRune(t *testing.T) {
	r, ok := LastRune("ab가")
	require.True(t, ok)
	assert.Equal(t, '가', r)

	_, ok = LastRune("")
	assert.False(t, ok)
}
