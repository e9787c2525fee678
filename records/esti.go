package records

import "github.com/medcore/med/errs"

// ESti unit/mode codes (spec.md §5, "ESti").
const (
	EStiAmpUnitNoEntry  = -1
	EStiAmpUnitUnknown  = 0
	EStiAmpUnitMA       = 1
	EStiAmpUnitVolts    = 2
	EStiModeNoEntry     = -1
	EStiModeUnknown     = 0
	EStiModeCurrent     = 1
	EStiModeVoltage     = 2
)

// ESti describes one electrical stimulation event (spec.md §5, "ESti").
type ESti struct {
	Amplitude   float64
	Frequency   float64
	PulseWidth  int64
	AmpUnitCode int32
	ModeCode    int32
	Waveform    string
	Anode       string
	Cathode     string
}

func (ESti) TypeCode() [4]byte { return typeCode("ESti") }

const (
	estiV10Bytes      = 416
	estiWaveformOff   = 32
	estiFieldBytes    = 128
	estiAnodeOff      = 160
	estiCathodeOff    = 288
)

func (e ESti) Encode() []byte {
	buf := make([]byte, estiV10Bytes)
	putFloat64(buf[0:8], e.Amplitude)
	putFloat64(buf[8:16], e.Frequency)
	le.PutUint64(buf[16:24], uint64(e.PulseWidth)) //nolint:gosec
	le.PutUint32(buf[24:28], uint32(e.AmpUnitCode)) //nolint:gosec
	le.PutUint32(buf[28:32], uint32(e.ModeCode))    //nolint:gosec
	putText(buf[estiWaveformOff:estiWaveformOff+estiFieldBytes], e.Waveform)
	putText(buf[estiAnodeOff:estiAnodeOff+estiFieldBytes], e.Anode)
	putText(buf[estiCathodeOff:estiCathodeOff+estiFieldBytes], e.Cathode)

	return buf
}

func decodeESti(data []byte, _, _ uint8) (Body, error) {
	if !requireLen(data, estiV10Bytes) {
		return nil, errs.ErrShortRead
	}

	return ESti{
		Amplitude:   getFloat64(data[0:8]),
		Frequency:   getFloat64(data[8:16]),
		PulseWidth:  int64(le.Uint64(data[16:24])),  //nolint:gosec
		AmpUnitCode: int32(le.Uint32(data[24:28])), //nolint:gosec
		ModeCode:    int32(le.Uint32(data[28:32])), //nolint:gosec
		Waveform:    getText(data[estiWaveformOff : estiWaveformOff+estiFieldBytes]),
		Anode:       getText(data[estiAnodeOff : estiAnodeOff+estiFieldBytes]),
		Cathode:     getText(data[estiCathodeOff : estiCathodeOff+estiFieldBytes]),
	}, nil
}

func init() {
	MustRegister(typeCode("ESti"), decodeESti)
}
