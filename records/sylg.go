package records

// SyLg is a system log line captured by the acquisition software
// (spec.md §5, "SyLg"): pure text, no fixed part.
type SyLg struct {
	Text string
}

func (SyLg) TypeCode() [4]byte { return typeCode("SyLg") }

func (s SyLg) Encode() []byte {
	buf := make([]byte, len(s.Text)+1)
	copy(buf, s.Text)

	return buf
}

func decodeSyLg(data []byte, _, _ uint8) (Body, error) {
	return SyLg{Text: getText(data)}, nil
}

func init() {
	MustRegister(typeCode("SyLg"), decodeSyLg)
}
