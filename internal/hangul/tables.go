package hangul

// Fusion tables are written with compatibility jamo and converted to slot
// values once at init. Every compound has exactly one source pair so the
// inverse tables are exact.
var (
	doubleMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	doubleFinal = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
)

var (
	vowelCompose = buildVowelTable(doubleMedial)
	trailCompose = buildTrailTable(doubleFinal)

	vowelSplit = invertDouble(vowelCompose)
	trailSplit = invertDouble(trailCompose)
)

func buildVowelTable(src map[[2]rune]rune) map[[2]Vowel]Vowel {
	dst := make(map[[2]Vowel]Vowel, len(src))
	for pair, value := range src {
		a, okA := VowelFromCompat(pair[0])
		b, okB := VowelFromCompat(pair[1])
		v, okV := VowelFromCompat(value)
		if !okA || !okB || !okV {
			panic("hangul: invalid vowel fusion entry " + string(pair[:]))
		}
		dst[[2]Vowel{a, b}] = v
	}
	return dst
}

func buildTrailTable(src map[[2]rune]rune) map[[2]Trail]Trail {
	dst := make(map[[2]Trail]Trail, len(src))
	for pair, value := range src {
		a, okA := TrailFromCompat(pair[0])
		b, okB := TrailFromCompat(pair[1])
		t, okT := TrailFromCompat(value)
		if !okA || !okB || !okT {
			panic("hangul: invalid trail fusion entry " + string(pair[:]))
		}
		dst[[2]Trail{a, b}] = t
	}
	return dst
}

func invertDouble[T comparable](src map[[2]T]T) map[T][2]T {
	dst := make(map[T][2]T, len(src))
	for pair, value := range src {
		dst[value] = pair
	}
	return dst
}

// FuseVowel returns the compound vowel formed by a followed by b.
func FuseVowel(a, b Vowel) (Vowel, bool) {
	v, ok := vowelCompose[[2]Vowel{a, b}]
	return v, ok
}

// FuseTrail returns the compound final formed by a followed by b.
func FuseTrail(a, b Trail) (Trail, bool) {
	t, ok := trailCompose[[2]Trail{a, b}]
	return t, ok
}

// SplitVowel is the inverse of FuseVowel.
func SplitVowel(v Vowel) (Vowel, Vowel, bool) {
	pair, ok := vowelSplit[v]
	return pair[0], pair[1], ok
}

// SplitTrail is the inverse of FuseTrail.
func SplitTrail(t Trail) (Trail, Trail, bool) {
	pair, ok := trailSplit[t]
	return pair[0], pair[1], ok
}
