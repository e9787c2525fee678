package records

import "github.com/medcore/med/errs"

// Stat summarizes a segment's sample distribution (spec.md §5, "Stat"):
// five si4 order statistics followed by three sf4 higher moments.
type Stat struct {
	Minimum  int32
	Maximum  int32
	Mean     int32
	Median   int32
	Mode     int32
	Variance float32
	Skewness float32
	Kurtosis float32
}

func (Stat) TypeCode() [4]byte { return typeCode("Stat") }

const statV10Bytes = 32

func (s Stat) Encode() []byte {
	buf := make([]byte, statV10Bytes)
	le.PutUint32(buf[0:4], uint32(s.Minimum)) //nolint:gosec
	le.PutUint32(buf[4:8], uint32(s.Maximum)) //nolint:gosec
	le.PutUint32(buf[8:12], uint32(s.Mean))   //nolint:gosec
	le.PutUint32(buf[12:16], uint32(s.Median)) //nolint:gosec
	le.PutUint32(buf[16:20], uint32(s.Mode))   //nolint:gosec
	putFloat32(buf[20:24], s.Variance)
	putFloat32(buf[24:28], s.Skewness)
	putFloat32(buf[28:32], s.Kurtosis)

	return buf
}

func decodeStat(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, statV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return Stat{
		Minimum:  int32(le.Uint32(data[0:4])),  //nolint:gosec
		Maximum:  int32(le.Uint32(data[4:8])),  //nolint:gosec
		Mean:     int32(le.Uint32(data[8:12])), //nolint:gosec
		Median:   int32(le.Uint32(data[12:16])), //nolint:gosec
		Mode:     int32(le.Uint32(data[16:20])), //nolint:gosec
		Variance: getFloat32(data[20:24]),
		Skewness: getFloat32(data[24:28]),
		Kurtosis: getFloat32(data[28:32]),
	}, nil
}

func init() {
	MustRegister(typeCode("Stat"), decodeStat)
}
