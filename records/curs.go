package records

import "github.com/medcore/med/errs"

// Curs is a named cursor placed at a specific latency from segment
// start (spec.md §5, "Curs"): an id, a latency, a value, and a 136-byte
// name field.
type Curs struct {
	IDNumber int64
	Latency  int64
	Value    float64
	Name     string
}

func (Curs) TypeCode() [4]byte { return typeCode("Curs") }

const (
	cursV10Bytes     = 160
	cursNameBytes    = 136
	cursNameOffset   = 24
)

func (c Curs) Encode() []byte {
	buf := make([]byte, cursV10Bytes)
	le.PutUint64(buf[0:8], uint64(c.IDNumber)) //nolint:gosec
	le.PutUint64(buf[8:16], uint64(c.Latency)) //nolint:gosec
	putFloat64(buf[16:24], c.Value)
	putText(buf[cursNameOffset:cursNameOffset+cursNameBytes], c.Name)

	return buf
}

func decodeCurs(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, cursV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return Curs{
		IDNumber: int64(le.Uint64(data[0:8])),  //nolint:gosec
		Latency:  int64(le.Uint64(data[8:16])), //nolint:gosec
		Value:    getFloat64(data[16:24]),
		Name:     getText(data[cursNameOffset : cursNameOffset+cursNameBytes]),
	}, nil
}

func init() {
	MustRegister(typeCode("Curs"), decodeCurs)
}
