package htmltext

// textBuffer accumulates the conversion output. It is append-only with one
// concession: break insertion may first trim trailing spaces and tabs so
// that structural breaks never float after horizontal whitespace. Nothing
// ever rewrites earlier output.
type textBuffer struct {
	b []byte
}

func (t *textBuffer) writeString(s string) {
	t.b = append(t.b, s...)
}

func (t *textBuffer) writeByte(c byte) {
	t.b = append(t.b, c)
}

func (t *textBuffer) len() int {
	return len(t.b)
}

func (t *textBuffer) string() string {
	return string(t.b)
}

// tail returns the output appended since mark. Trimming may have shrunk the
// buffer below mark, in which case the tail is empty.
func (t *textBuffer) tail(mark int) string {
	if mark > len(t.b) {
		mark = len(t.b)
	}
	return string(t.b[mark:])
}

// endsWith reports whether the output currently ends with s.
func (t *textBuffer) endsWith(s string) bool {
	return len(t.b) >= len(s) && string(t.b[len(t.b)-len(s):]) == s
}

// endsInSpace reports whether the last output character is whitespace. An
// empty buffer counts as a boundary, so a leading run is swallowed there
// too.
func (t *textBuffer) endsInSpace() bool {
	if len(t.b) == 0 {
		return true
	}
	switch t.b[len(t.b)-1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// trimTrailingSpace removes trailing spaces and tabs, leaving line breaks in
// place.
func (t *textBuffer) trimTrailingSpace() {
	n := len(t.b)
	for n > 0 && (t.b[n-1] == ' ' || t.b[n-1] == '\t') {
		n--
	}
	t.b = t.b[:n]
}

// paragraphBreak leaves the output ending in exactly one blank line: two
// line breaks, never more.
func (t *textBuffer) paragraphBreak() {
	t.trimTrailingSpace()
	if t.endsWith("\n\n") {
		return
	}
	if t.endsWith("\n") {
		t.writeByte('\n')
		return
	}
	t.writeString("\n\n")
}

// blockBreak leaves the output ending in at least one line break, without
// stacking a new one onto an existing break.
func (t *textBuffer) blockBreak() {
	t.trimTrailingSpace()
	if !t.endsWith("\n") {
		t.writeByte('\n')
	}
}

// lineBreak forces a line break regardless of what precedes it.
func (t *textBuffer) lineBreak() {
	t.trimTrailingSpace()
	t.writeByte('\n')
}
