package records

import "github.com/medcore/med/errs"

// Epoc sleep stage codes (spec.md §5, "Epoc", v2.0 layout).
const (
	EpocStageAwake   = 0
	EpocStageNREM1   = 1
	EpocStageNREM2   = 2
	EpocStageNREM3   = 3
	EpocStageNREM4   = 4
	EpocStageREM     = 5
	EpocStageUnknown = 255
)

// Epoc marks a scored sleep epoch (spec.md §5, "Epoc"). v1.0's free-text
// epoch_type/text fields were replaced in v2.0 by a closed stage code
// plus a scorer identifier; this package writes v2.0 and reads both.
type Epoc struct {
	EndTime   int64
	IDNumber  int64 // v1.0 only
	StageCode uint8
	ScorerID  string // v2.0
	EpochType string // v1.0 only
	Text      string // v1.0 only
}

func (Epoc) TypeCode() [4]byte { return typeCode("Epoc") }

const (
	epocV10Bytes          = 176
	epocV10EpochTypeOff   = 16
	epocV10EpochTypeBytes = 32
	epocV10TextOff        = 48
	epocV10TextBytes      = 128

	epocV20Bytes         = 48
	epocV20ScorerIDOff   = 9
	epocV20ScorerIDBytes = 39
)

func (e Epoc) Encode() []byte {
	buf := make([]byte, epocV20Bytes)
	le.PutUint64(buf[0:8], uint64(e.EndTime)) //nolint:gosec
	buf[8] = e.StageCode
	putText(buf[epocV20ScorerIDOff:epocV20ScorerIDOff+epocV20ScorerIDBytes], e.ScorerID)

	return buf
}

func decodeEpoc(data []byte, versionMajor, _ uint8) (Body, error) {
	if versionMajor == 1 {
		if !requireLen(data, epocV10Bytes) {
			return nil, errs.ErrShortRead
		}

		return Epoc{
			IDNumber:  int64(le.Uint64(data[0:8])),  //nolint:gosec
			EndTime:   int64(le.Uint64(data[8:16])), //nolint:gosec
			EpochType: getText(data[epocV10EpochTypeOff : epocV10EpochTypeOff+epocV10EpochTypeBytes]),
			Text:      getText(data[epocV10TextOff : epocV10TextOff+epocV10TextBytes]),
		}, nil
	}

	if !requireLen(data, epocV20Bytes) {
		return nil, errs.ErrShortRead
	}

	return Epoc{
		EndTime:   int64(le.Uint64(data[0:8])), //nolint:gosec
		StageCode: data[8],
		ScorerID:  getText(data[epocV20ScorerIDOff : epocV20ScorerIDOff+epocV20ScorerIDBytes]),
	}, nil
}

func init() {
	MustRegister(typeCode("Epoc"), decodeEpoc)
}
