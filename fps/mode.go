package fps

import "strings"

// OpenMode is a bitmask of the access flags spec.md §4.2 names ("an
// open-mode enum set (read, write, create, truncate, append)").
type OpenMode int

const (
	ModeRead OpenMode = 1 << iota
	ModeWrite
	ModeCreate
	ModeTruncate
	ModeAppend
)

// modeStrings gives the canonical open-mode-string tokens, matching the
// order spec.md §4.2 requires bidirectional translation for.
var modeStrings = []struct {
	flag OpenMode
	tok  string
}{
	{ModeRead, "r"},
	{ModeWrite, "w"},
	{ModeCreate, "c"},
	{ModeTruncate, "t"},
	{ModeAppend, "a"},
}

// ParseOpenMode translates a mode string such as "rw" or "wct" into an
// OpenMode bitmask.
func ParseOpenMode(s string) OpenMode {
	var m OpenMode

	for _, r := range s {
		for _, ms := range modeStrings {
			if strings.ContainsRune(ms.tok, r) {
				m |= ms.flag
			}
		}
	}

	return m
}

// String translates m back into its canonical mode string, tokens in
// modeStrings order.
func (m OpenMode) String() string {
	var b strings.Builder

	for _, ms := range modeStrings {
		if m&ms.flag != 0 {
			b.WriteString(ms.tok)
		}
	}

	return b.String()
}

// Has reports whether m includes every bit in flag.
func (m OpenMode) Has(flag OpenMode) bool { return m&flag == flag }
