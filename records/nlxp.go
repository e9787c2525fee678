package records

import "github.com/medcore/med/errs"

// NlxP trigger modes (spec.md §5, "NlxP").
const (
	NlxPNoTrigger        = 0
	NlxPAnyBitChange     = 1
	NlxPHighBitSet       = 2
	NlxPUnknownTrigger   = 0xFF
)

// NlxP records a Neuralynx digital/analog port event (spec.md §5,
// "NlxP"): a raw port reading, its decoded value, subport indexing, and
// the trigger mode that fired the capture.
type NlxP struct {
	RawPortValue    uint32
	Value           uint32
	Subport         uint8
	NumberOfSubport uint8
	TriggerMode     uint8
}

func (NlxP) TypeCode() [4]byte { return typeCode("NlxP") }

const nlxpV10Bytes = 16

func (n NlxP) Encode() []byte {
	buf := make([]byte, nlxpV10Bytes)
	le.PutUint32(buf[0:4], n.RawPortValue)
	le.PutUint32(buf[4:8], n.Value)
	buf[8] = n.Subport
	buf[9] = n.NumberOfSubport
	buf[10] = n.TriggerMode

	return buf
}

func decodeNlxP(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, nlxpV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return NlxP{
		RawPortValue:    le.Uint32(data[0:4]),
		Value:           le.Uint32(data[4:8]),
		Subport:         data[8],
		NumberOfSubport: data[9],
		TriggerMode:     data[10],
	}, nil
}

func init() {
	MustRegister(typeCode("NlxP"), decodeNlxP)
}
