package fps

import "github.com/medcore/med/section"

// Sentinel offsets a read/write request can name instead of a literal
// byte offset (spec.md §4.2).
type Sentinel int

const (
	FullFile Sentinel = iota
	UHOnly
	BodyOnly
	EndOfFile
)

// ResolveOffset turns a Sentinel into a concrete (offset, length) byte
// range given fileSize; a value that is not one of the named sentinels
// resolves like FullFile. It is a pure function over its inputs — no file
// handle required — so it can be unit-tested without a real file, per
// the "Ambient" note in SPEC_FULL.md §4.2.
func ResolveOffset(s Sentinel, fileSize int64) (offset, length int64) {
	switch s {
	case UHOnly:
		return 0, section.UniversalHeaderSize
	case BodyOnly:
		return section.UniversalHeaderSize, fileSize - section.UniversalHeaderSize
	case EndOfFile:
		return fileSize, 0
	default: // FullFile
		return 0, fileSize
	}
}
