package hangul

// Buffer is the syllable under composition. The zero value is empty.
// A trail never exists without a vowel.
type Buffer struct {
	Lead  Lead
	Vowel Vowel
	Trail Trail
}

func (b Buffer) Empty() bool {
	return b.Lead == 0 && b.Vowel == 0 && b.Trail == 0
}

// String renders the buffer: a precomposed syllable when lead and vowel are
// present, otherwise the filled slots as compatibility jamo.
func (b Buffer) String() string {
	if b.Lead.Valid() && b.Vowel.Valid() {
		return string(Compose(b.Lead, b.Vowel, b.Trail))
	}
	out := make([]rune, 0, 3)
	if b.Lead.Valid() {
		out = append(out, b.Lead.Rune())
	}
	if b.Vowel.Valid() {
		out = append(out, b.Vowel.Rune())
	}
	if b.Trail.Valid() {
		out = append(out, b.Trail.Rune())
	}
	return NormalizeDisplay(string(out))
}

// CompositionResult reports the outcome of feeding one jamo. Commit holds text
// finalized by a boundary; it is set even when the jamo itself was rejected.
type CompositionResult struct {
	Consumed bool
	Commit   string
	Preedit  string
}

// HangulComposer is the composition automaton over a single Buffer. It is
// not safe for concurrent use.
type HangulComposer struct {
	buf Buffer
	// finalTrail is set when the trail came from a final-only key. Such a
	// trail stays in its syllable when a vowel follows.
	finalTrail bool
	// history holds the state before each jamo of the current syllable.
	history []composerState
}

type composerState struct {
	buf        Buffer
	finalTrail bool
}

func NewHangulComposer() *HangulComposer {
	return &HangulComposer{}
}

func (c *HangulComposer) Feed(j Jamo) CompositionResult {
	before := composerState{buf: c.buf, finalTrail: c.finalTrail}
	var consumed bool
	var commit string
	switch j.Kind {
	case KindVowel:
		consumed, commit = c.handleVowel(j.Vowel)
	case KindLead, KindConsonant, KindTrail:
		consumed, commit = c.handleConsonant(j)
	}
	if consumed {
		if commit == "" {
			c.history = append(c.history, before)
		} else {
			c.history = seedHistory(c.buf)
		}
	}
	return CompositionResult{
		Consumed: consumed,
		Commit:   commit,
		Preedit:  c.Preedit(),
	}
}

// Backspace undoes the most recent jamo fed into the buffer. It reports
// false when the buffer is already empty so the host can delete committed
// text.
func (c *HangulComposer) Backspace() (string, bool) {
	n := len(c.history)
	if n == 0 {
		return "", false
	}
	prev := c.history[n-1]
	c.history = c.history[:n-1]
	c.buf, c.finalTrail = prev.buf, prev.finalTrail
	return c.Preedit(), true
}

// Flush renders the buffer, clears it and returns the rendering.
func (c *HangulComposer) Flush() string {
	commit := c.buf.String()
	c.Cancel()
	return commit
}

// Cancel drops the buffer without emitting anything.
func (c *HangulComposer) Cancel() {
	c.buf = Buffer{}
	c.finalTrail = false
	c.history = c.history[:0]
}

// seedHistory rebuilds the steps of a syllable that was started by a
// boundary: lead first, then vowel.
func seedHistory(b Buffer) []composerState {
	var history []composerState
	var cur Buffer
	if b.Lead != 0 {
		history = append(history, composerState{buf: cur})
		cur.Lead = b.Lead
	}
	if b.Vowel != 0 {
		history = append(history, composerState{buf: cur})
	}
	return history
}

func (c *HangulComposer) Preedit() string { return c.buf.String() }

func (c *HangulComposer) Empty() bool { return c.buf.Empty() }

func (c *HangulComposer) Buffer() Buffer { return c.buf }

func (c *HangulComposer) handleVowel(v Vowel) (bool, string) {
	if !v.Valid() {
		return false, ""
	}
	if c.buf.Vowel == 0 {
		c.buf.Vowel = v
		return true, ""
	}

	if c.buf.Trail == 0 {
		if combined, ok := FuseVowel(c.buf.Vowel, v); ok {
			c.buf.Vowel = combined
			return true, ""
		}
		return false, c.Flush()
	}

	if c.finalTrail {
		return false, c.Flush()
	}

	// The final consonant belongs to the next syllable. Of a compound final
	// only the second consonant moves.
	keep, carry := Trail(0), c.buf.Trail
	if first, second, ok := SplitTrail(c.buf.Trail); ok {
		keep, carry = first, second
	}
	lead, ok := carry.AsLead()
	if !ok {
		return false, c.Flush()
	}
	c.buf.Trail = keep
	commit := c.Flush()
	c.buf = Buffer{Lead: lead, Vowel: v}
	return true, commit
}

func (c *HangulComposer) handleConsonant(j Jamo) (bool, string) {
	if c.buf.Empty() {
		return c.placeLead(j), ""
	}

	if c.buf.Lead == 0 || c.buf.Vowel == 0 {
		return false, ""
	}

	if c.buf.Trail == 0 {
		if j.Kind == KindLead || !j.canTrail() {
			return false, ""
		}
		c.buf.Trail = j.Trail
		c.finalTrail = j.Kind == KindTrail
		return true, ""
	}

	if j.Kind == KindLead {
		return false, ""
	}
	if j.canTrail() {
		if combined, ok := FuseTrail(c.buf.Trail, j.Trail); ok {
			c.buf.Trail = combined
			c.finalTrail = c.finalTrail || j.Kind == KindTrail
			return true, ""
		}
	}
	commit := c.Flush()
	return c.placeLead(j), commit
}

func (c *HangulComposer) placeLead(j Jamo) bool {
	if !j.canLead() {
		return false
	}
	c.buf = Buffer{Lead: j.Lead}
	return true
}
