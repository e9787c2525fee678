package records

import "github.com/medcore/med/errs"

// Seiz onset codes (spec.md §5, "Seiz").
const (
	SeizOnsetNoEntry    = -1
	SeizOnsetUnknown    = 0
	SeizOnsetFocal      = 1
	SeizOnsetGeneralized = 2
	SeizOnsetPropagated = 3
	SeizOnsetMixed      = 4
)

// SeizChannel is the per-channel involvement record following a Seiz
// body's fixed part: one per NumberOfChannels.
type SeizChannel struct {
	Name          string
	OnsetTime     int64
	OffsetTime    int64
	SegmentNumber int32
}

// Seiz marks a scored seizure event spanning one or more channels
// (spec.md §5, "Seiz"): a fixed header with two marker names and a
// free-text annotation, followed by one SeizChannel per involved
// channel.
type Seiz struct {
	LatestOffsetTime int64
	OnsetCode        int32
	MarkerName1      string
	MarkerName2      string
	Annotation       string
	Channels         []SeizChannel
}

func (Seiz) TypeCode() [4]byte { return typeCode("Seiz") }

const (
	seizFixedBytes      = 1296
	seizMarkerName1Off  = 16
	seizMarkerName2Off  = 144
	seizMarkerNameBytes = 128
	seizAnnotationOff   = 272
	seizAnnotationBytes = 1024

	seizChannelBytes         = 280
	seizChannelNameBytes     = 256
	seizChannelOnsetOff      = 256
	seizChannelOffsetOff     = 264
	seizChannelSegNumOff     = 272
)

func (s Seiz) Encode() []byte {
	buf := make([]byte, seizFixedBytes+len(s.Channels)*seizChannelBytes)
	le.PutUint64(buf[0:8], uint64(s.LatestOffsetTime)) //nolint:gosec
	le.PutUint32(buf[8:12], uint32(len(s.Channels)))   //nolint:gosec
	le.PutUint32(buf[12:16], uint32(s.OnsetCode))      //nolint:gosec
	putText(buf[seizMarkerName1Off:seizMarkerName1Off+seizMarkerNameBytes], s.MarkerName1)
	putText(buf[seizMarkerName2Off:seizMarkerName2Off+seizMarkerNameBytes], s.MarkerName2)
	putText(buf[seizAnnotationOff:seizAnnotationOff+seizAnnotationBytes], s.Annotation)

	for i, ch := range s.Channels {
		off := seizFixedBytes + i*seizChannelBytes
		putText(buf[off:off+seizChannelNameBytes], ch.Name)
		le.PutUint64(buf[off+seizChannelOnsetOff:off+seizChannelOnsetOff+8], uint64(ch.OnsetTime))   //nolint:gosec
		le.PutUint64(buf[off+seizChannelOffsetOff:off+seizChannelOffsetOff+8], uint64(ch.OffsetTime)) //nolint:gosec
		le.PutUint32(buf[off+seizChannelSegNumOff:off+seizChannelSegNumOff+4], uint32(ch.SegmentNumber)) //nolint:gosec
	}

	return buf
}

func decodeSeiz(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, seizFixedBytes) {
		return nil, errs.ErrShortRead
	}

	numChannels := int(le.Uint32(data[8:12]))
	s := Seiz{
		LatestOffsetTime: int64(le.Uint64(data[0:8])), //nolint:gosec
		OnsetCode:        int32(le.Uint32(data[12:16])), //nolint:gosec
		MarkerName1:      getText(data[seizMarkerName1Off : seizMarkerName1Off+seizMarkerNameBytes]),
		MarkerName2:      getText(data[seizMarkerName2Off : seizMarkerName2Off+seizMarkerNameBytes]),
		Annotation:       getText(data[seizAnnotationOff : seizAnnotationOff+seizAnnotationBytes]),
	}

	if !requireLen(data, seizFixedBytes+numChannels*seizChannelBytes) {
		return nil, errs.ErrShortRead
	}

	s.Channels = make([]SeizChannel, numChannels)
	for i := range s.Channels {
		off := seizFixedBytes + i*seizChannelBytes
		s.Channels[i] = SeizChannel{
			Name:          getText(data[off : off+seizChannelNameBytes]),
			OnsetTime:     int64(le.Uint64(data[off+seizChannelOnsetOff : off+seizChannelOnsetOff+8])),   //nolint:gosec
			OffsetTime:    int64(le.Uint64(data[off+seizChannelOffsetOff : off+seizChannelOffsetOff+8])), //nolint:gosec
			SegmentNumber: int32(le.Uint32(data[off+seizChannelSegNumOff : off+seizChannelSegNumOff+4])), //nolint:gosec
		}
	}

	return s, nil
}

func init() {
	MustRegister(typeCode("Seiz"), decodeSeiz)
}
