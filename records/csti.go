package records

import "github.com/medcore/med/errs"

// CSti describes one cognitive stimulation trial and the patient's
// response (spec.md §5, "CSti").
type CSti struct {
	StimulusDuration int64
	TaskType         string
	StimulusType     string
	PatientResponse  string
}

func (CSti) TypeCode() [4]byte { return typeCode("CSti") }

const (
	cstiV10Bytes         = 208
	cstiTaskTypeOff      = 8
	cstiStimulusTypeOff  = 72
	cstiPatientRespOff   = 136
	cstiFieldBytes       = 64
)

func (c CSti) Encode() []byte {
	buf := make([]byte, cstiV10Bytes)
	le.PutUint64(buf[0:8], uint64(c.StimulusDuration)) //nolint:gosec
	putText(buf[cstiTaskTypeOff:cstiTaskTypeOff+cstiFieldBytes], c.TaskType)
	putText(buf[cstiStimulusTypeOff:cstiStimulusTypeOff+cstiFieldBytes], c.StimulusType)
	putText(buf[cstiPatientRespOff:cstiPatientRespOff+cstiFieldBytes], c.PatientResponse)

	return buf
}

func decodeCSti(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, cstiV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return CSti{
		StimulusDuration: int64(le.Uint64(data[0:8])), //nolint:gosec
		TaskType:         getText(data[cstiTaskTypeOff : cstiTaskTypeOff+cstiFieldBytes]),
		StimulusType:     getText(data[cstiStimulusTypeOff : cstiStimulusTypeOff+cstiFieldBytes]),
		PatientResponse:  getText(data[cstiPatientRespOff : cstiPatientRespOff+cstiFieldBytes]),
	}, nil
}

func init() {
	MustRegister(typeCode("CSti"), decodeCSti)
}
