package hangul

// Lead is a choseong index, 1-based. The zero value means "no lead".
type Lead uint8

// Vowel is a jungseong index, 1-based. The zero value means "no vowel".
type Vowel uint8

// Trail is a jongseong index as used by the syllable formula: 0 is "none",
// 1..27 are the final consonants.
type Trail uint8

const (
	leadCount  = 19
	vowelCount = 21
	trailCount = 28

	syllableBase = 0xAC00
	syllableLast = syllableBase + leadCount*vowelCount*trailCount - 1

	leadBase  = 0x1100
	vowelBase = 0x1161
	trailBase = 0x11A7
)

var (
	choList  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungList = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongList = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	choseongIndex  = buildIndex(choList, 1)
	jungseongIndex = buildIndex(jungList, 1)
	jongseongIndex = buildIndex(jongList, 0)
)

func buildIndex(list []rune, offset int) map[rune]uint8 {
	idx := make(map[rune]uint8, len(list))
	for i, ch := range list {
		if ch == 0 {
			continue
		}
		idx[ch] = uint8(i + offset)
	}
	return idx
}

// LeadFromCompat maps a compatibility consonant (ㄱ, ㄸ, ...) to its lead.
func LeadFromCompat(r rune) (Lead, bool) {
	i, ok := choseongIndex[r]
	return Lead(i), ok
}

// VowelFromCompat maps a compatibility vowel to its vowel slot value.
func VowelFromCompat(r rune) (Vowel, bool) {
	i, ok := jungseongIndex[r]
	return Vowel(i), ok
}

// TrailFromCompat maps a compatibility consonant to its trail, including the
// compound finals (ㄳ, ㄺ, ...).
func TrailFromCompat(r rune) (Trail, bool) {
	i, ok := jongseongIndex[r]
	return Trail(i), ok
}

func (l Lead) Valid() bool  { return l >= 1 && l <= leadCount }
func (v Vowel) Valid() bool { return v >= 1 && v <= vowelCount }
func (t Trail) Valid() bool { return t >= 1 && t < trailCount }

// Rune returns the positional (conjoining) jamo, U+1100..U+1112.
func (l Lead) Rune() rune { return leadBase + rune(l) - 1 }

// Rune returns the positional jamo, U+1161..U+1175.
func (v Vowel) Rune() rune { return vowelBase + rune(v) - 1 }

// Rune returns the positional jamo, U+11A8..U+11C2.
func (t Trail) Rune() rune { return trailBase + rune(t) }

func (l Lead) Compat() rune  { return choList[l-1] }
func (v Vowel) Compat() rune { return jungList[v-1] }
func (t Trail) Compat() rune { return jongList[t] }

// AsLead reports the lead a single final consonant becomes when it moves to
// the next syllable. Compound finals have no lead form.
func (t Trail) AsLead() (Lead, bool) {
	if !t.Valid() {
		return 0, false
	}
	return LeadFromCompat(t.Compat())
}

// Compose applies the Unicode syllable formula. trail may be zero.
func Compose(lead Lead, vowel Vowel, trail Trail) rune {
	return syllableBase + rune((int(lead-1)*vowelCount+int(vowel-1))*trailCount+int(trail))
}

// Decompose splits a precomposed syllable into its slots.
func Decompose(s rune) (Lead, Vowel, Trail, bool) {
	if s < syllableBase || s > syllableLast {
		return 0, 0, 0, false
	}
	code := int(s - syllableBase)
	trail := code % trailCount
	vowel := (code / trailCount) % vowelCount
	lead := code / (trailCount * vowelCount)
	return Lead(lead + 1), Vowel(vowel + 1), Trail(trail), true
}

// Kind classifies a translated key value.
type Kind uint8

const (
	KindOpaque Kind = iota
	KindLead
	KindVowel
	// KindConsonant acts as a lead or a trail depending on the buffer.
	KindConsonant
	// KindTrail is a final-only consonant (three-set layouts).
	KindTrail
)

func (k Kind) String() string {
	switch k {
	case KindLead:
		return "lead"
	case KindVowel:
		return "vowel"
	case KindConsonant:
		return "consonant"
	case KindTrail:
		return "trail"
	default:
		return "opaque"
	}
}

// Jamo is the value a layout produces for a key. For KindConsonant both Lead
// and Trail may be set; a zero field means the consonant cannot take that
// position (ㄸ has no trail form, ㄳ has no lead form).
type Jamo struct {
	Kind  Kind
	Lead  Lead
	Vowel Vowel
	Trail Trail
	Char  rune
}

// Classify turns a character into a Jamo. Compatibility consonants are
// contextual; positional jamo keep their fixed role; anything else is opaque.
func Classify(r rune) Jamo {
	switch {
	case r >= leadBase && r < leadBase+leadCount:
		return Jamo{Kind: KindLead, Lead: Lead(r - leadBase + 1), Char: r}
	case r >= vowelBase && r < vowelBase+vowelCount:
		return Jamo{Kind: KindVowel, Vowel: Vowel(r - vowelBase + 1), Char: r}
	case r > trailBase && r < trailBase+trailCount:
		return Jamo{Kind: KindTrail, Trail: Trail(r - trailBase), Char: r}
	}
	if v, ok := VowelFromCompat(r); ok {
		return Jamo{Kind: KindVowel, Vowel: v, Char: r}
	}
	lead, isLead := LeadFromCompat(r)
	trail, isTrail := TrailFromCompat(r)
	if isLead || isTrail {
		return Jamo{Kind: KindConsonant, Lead: lead, Trail: trail, Char: r}
	}
	return Opaque(r)
}

// LeadOnly classifies a compatibility consonant that may only start a syllable.
func LeadOnly(r rune) Jamo {
	lead, ok := LeadFromCompat(r)
	if !ok {
		return Opaque(r)
	}
	return Jamo{Kind: KindLead, Lead: lead, Char: r}
}

// TrailOnly classifies a compatibility consonant that may only end a syllable.
func TrailOnly(r rune) Jamo {
	trail, ok := TrailFromCompat(r)
	if !ok {
		return Opaque(r)
	}
	return Jamo{Kind: KindTrail, Trail: trail, Char: r}
}

func Opaque(r rune) Jamo {
	return Jamo{Kind: KindOpaque, Char: r}
}

func (j Jamo) canLead() bool {
	return (j.Kind == KindLead || j.Kind == KindConsonant) && j.Lead.Valid()
}

func (j Jamo) canTrail() bool {
	return (j.Kind == KindTrail || j.Kind == KindConsonant) && j.Trail.Valid()
}
