package records

import "github.com/medcore/med/errs"

// Sgmt marks a contiguous acquisition segment within a channel (spec.md
// §5, "Sgmt"). v1.0 carries a 64-bit segment UID and acquisition channel
// number that v1.1 dropped once those became implicit in the surrounding
// hierarchy; this package writes v1.1 and reads both.
type Sgmt struct {
	EndTime        int64
	StartSampleIdx int64
	EndSampleIdx   int64
	SegmentUID     uint64 // v1.0 only; zero when absent
	SegmentNumber  int32
	AcqChannelNum  int32   // v1.0 only; zero when absent
	SampleRate     float64 // stored as sf4 on disk in v1.1, sf8 in v1.0
	Description    string
}

func (Sgmt) TypeCode() [4]byte { return typeCode("Sgmt") }

const sgmtV11Bytes = 32

// Encode writes the v1.1 layout: 32-byte fixed part followed by an
// 8-byte-aligned description.
func (s Sgmt) Encode() []byte {
	desc := alignedText(s.Description, 8)
	buf := make([]byte, sgmtV11Bytes+len(desc))

	le.PutUint64(buf[0:8], uint64(s.EndTime))        //nolint:gosec
	le.PutUint64(buf[8:16], uint64(s.StartSampleIdx)) //nolint:gosec
	le.PutUint64(buf[16:24], uint64(s.EndSampleIdx))  //nolint:gosec
	le.PutUint32(buf[24:28], uint32(s.SegmentNumber)) //nolint:gosec
	putFloat32(buf[28:32], float32(s.SampleRate))
	copy(buf[32:], desc)

	return buf
}

func decodeSgmt(data []byte, versionMajor, versionMinor uint8) (Body, error) {
	if versionMajor == 1 && versionMinor == 0 {
		return decodeSgmtV10(data)
	}

	return decodeSgmtV11(data)
}

const sgmtV10Bytes = 48

func decodeSgmtV10(data []byte) (Body, error) {
	if !requireLen(data, sgmtV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return Sgmt{
		EndTime:        int64(le.Uint64(data[0:8])),   //nolint:gosec
		StartSampleIdx: int64(le.Uint64(data[8:16])),  //nolint:gosec
		EndSampleIdx:   int64(le.Uint64(data[16:24])), //nolint:gosec
		SegmentUID:     le.Uint64(data[24:32]),
		SegmentNumber:  int32(le.Uint32(data[32:36])), //nolint:gosec
		AcqChannelNum:  int32(le.Uint32(data[36:40])), //nolint:gosec
		SampleRate:     getFloat64(data[40:48]),
		Description:    getText(data[sgmtV10Bytes:]),
	}, nil
}

func decodeSgmtV11(data []byte) (Body, error) {
	if !requireLen(data, sgmtV11Bytes) {
		return nil, errs.ErrShortRead
	}

	return Sgmt{
		EndTime:        int64(le.Uint64(data[0:8])),   //nolint:gosec
		StartSampleIdx: int64(le.Uint64(data[8:16])),  //nolint:gosec
		EndSampleIdx:   int64(le.Uint64(data[16:24])), //nolint:gosec
		SegmentNumber:  int32(le.Uint32(data[24:28])), //nolint:gosec
		SampleRate:     float64(getFloat32(data[28:32])),
		Description:    getText(data[sgmtV11Bytes:]),
	}, nil
}

// alignedText null-terminates s and pads the result to a multiple of
// align bytes, matching the on-disk description field's alignment rule.
func alignedText(s string, align int) []byte {
	n := len(s) + 1
	if rem := n % align; rem != 0 {
		n += align - rem
	}

	buf := make([]byte, n)
	copy(buf, s)

	return buf
}

func init() {
	MustRegister(typeCode("Sgmt"), decodeSgmt)
}
