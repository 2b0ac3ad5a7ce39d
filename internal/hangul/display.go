package hangul

import "strings"

// compatTable covers U+1100..U+11FF; zero entries pass through.
var compatTable = buildCompatTable()

func buildCompatTable() [0x100]rune {
	var table [0x100]rune
	for i := 1; i <= leadCount; i++ {
		l := Lead(i)
		table[l.Rune()-leadBase] = l.Compat()
	}
	for i := 1; i <= vowelCount; i++ {
		v := Vowel(i)
		table[v.Rune()-leadBase] = v.Compat()
	}
	for i := 1; i < trailCount; i++ {
		t := Trail(i)
		table[t.Rune()-leadBase] = t.Compat()
	}
	return table
}

// ToCompat maps a positional jamo to its compatibility form.
func ToCompat(r rune) rune {
	if r < leadBase || r >= leadBase+0x100 {
		return r
	}
	if c := compatTable[r-leadBase]; c != 0 {
		return c
	}
	return r
}

// NormalizeDisplay rewrites every positional jamo in s to compatibility jamo,
// which is what preedit renderers expect.
func NormalizeDisplay(s string) string {
	return strings.Map(ToCompat, s)
}
