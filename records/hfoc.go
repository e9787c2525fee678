package records

import "github.com/medcore/med/errs"

// HFOc marks a detected high-frequency oscillation in one frequency
// band (spec.md §5, "HFOc"). Later on-disk versions add per-band
// start/end times and quality scores across a fixed 4-band layout; this
// package implements the v1.1 single-band summary, the smallest layout
// that still round-trips through a compressed block's record region.
type HFOc struct {
	EndTime        int64
	StartFrequency float32
	EndFrequency   float32
}

func (HFOc) TypeCode() [4]byte { return typeCode("HFOc") }

const hfocV11Bytes = 16

func (h HFOc) Encode() []byte {
	buf := make([]byte, hfocV11Bytes)
	le.PutUint64(buf[0:8], uint64(h.EndTime)) //nolint:gosec
	putFloat32(buf[8:12], h.StartFrequency)
	putFloat32(buf[12:16], h.EndFrequency)

	return buf
}

func decodeHFOc(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, hfocV11Bytes) {
		return nil, errs.ErrShortRead
	}

	return HFOc{
		EndTime:        int64(le.Uint64(data[0:8])), //nolint:gosec
		StartFrequency: getFloat32(data[8:12]),
		EndFrequency:   getFloat32(data[12:16]),
	}, nil
}

func init() {
	MustRegister(typeCode("HFOc"), decodeHFOc)
}
