package records

import "github.com/medcore/med/errs"

// Note is a free-text annotation tied to a specific moment (spec.md §5,
// "Note"). v1.0 carried only the text; v1.1 added an explicit EndTime so
// a Note can span a range. This package writes and reads v1.1.
type Note struct {
	EndTime int64
	Text    string
}

func (Note) TypeCode() [4]byte { return typeCode("Note") }

const noteV11Bytes = 8

func (n Note) Encode() []byte {
	buf := make([]byte, noteV11Bytes+len(n.Text)+1)
	le.PutUint64(buf[0:8], uint64(n.EndTime)) //nolint:gosec
	copy(buf[noteV11Bytes:], n.Text)

	return buf
}

func decodeNote(data []byte, versionMajor, _ uint8) (Body, error) {
	if versionMajor == 0 {
		return Note{Text: getText(data)}, nil
	}

	if !requireLen(data, noteV11Bytes) {
		return nil, errs.ErrShortRead
	}

	return Note{
		EndTime: int64(le.Uint64(data[0:8])), //nolint:gosec
		Text:    getText(data[noteV11Bytes:]),
	}, nil
}

func init() {
	MustRegister(typeCode("Note"), decodeNote)
}
