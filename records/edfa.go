package records

import "github.com/medcore/med/errs"

// EDFA carries an EDF+ "Annotation" discontinuity marker migrated
// verbatim into a segment (spec.md §5, "EDFA"): an si8 duration followed
// by the original annotation text.
type EDFA struct {
	Duration   int64
	Annotation string
}

func (EDFA) TypeCode() [4]byte { return typeCode("EDFA") }

const edfaV10Bytes = 8

func (e EDFA) Encode() []byte {
	buf := make([]byte, edfaV10Bytes+len(e.Annotation)+1)
	le.PutUint64(buf[0:8], uint64(e.Duration)) //nolint:gosec
	copy(buf[edfaV10Bytes:], e.Annotation)

	return buf
}

func decodeEDFA(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, edfaV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return EDFA{
		Duration:   int64(le.Uint64(data[0:8])), //nolint:gosec
		Annotation: getText(data[edfaV10Bytes:]),
	}, nil
}

func init() {
	MustRegister(typeCode("EDFA"), decodeEDFA)
}
