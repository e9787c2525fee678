package records

// RawRecord preserves an unrecognized record type's body bytes verbatim
// (spec.md §4.5: unknown type codes are not discarded, just left
// undecoded) so a caller can still round-trip or re-serialize a .rdat
// file it doesn't fully understand.
type RawRecord struct {
	Code [4]byte
	Data []byte
}

func (r RawRecord) TypeCode() [4]byte { return r.Code }
func (r RawRecord) Encode() []byte    { return r.Data }
