package encoding

// predModel is the PRED family's context-selected model: "three
// conditional statistics tables (previous symbol was zero / positive /
// negative) increase compressibility of biological signals" (spec.md
// §4.4 step 4). It picks among three adaptiveByteModel instances based
// on the sign of the previously coded derivative, and satisfies
// symbolModel so it can drive encodeRangeCoded/decodeRangeCoded the
// same way a plain RED adaptiveByteModel does.
type predModel struct {
	tables [3]*adaptiveByteModel // indexed by predContext
	ctx    int
}

const (
	predCtxZero = iota
	predCtxPositive
	predCtxNegative
)

func newPredModel() *predModel {
	return &predModel{
		tables: [3]*adaptiveByteModel{
			newAdaptiveByteModel(),
			newAdaptiveByteModel(),
			newAdaptiveByteModel(),
		},
	}
}

// predContext buckets a derivative value into one of the three table
// contexts by its sign.
func predContext(d int64) int {
	switch {
	case d > 0:
		return predCtxPositive
	case d < 0:
		return predCtxNegative
	default:
		return predCtxZero
	}
}

func (m *predModel) encode(rc *rangeEncoder, sym byte) {
	m.tables[m.ctx].encode(rc, sym)
	m.ctx = predContext(unzigzag(uint64(sym)))
}

func (m *predModel) decode(rc *rangeDecoder) byte {
	sym := m.tables[m.ctx].decode(rc)
	m.ctx = predContext(unzigzag(uint64(sym)))

	return sym
}

// EncodePRED1/EncodePRED2 implement Predictive RED (spec.md §4.4): the
// same order-1/order-2 derivative transform as RED1/RED2, but range
// coded against a context-selected statistics table instead of a
// single global one.
func EncodePRED1(samples []int32) []byte { return encodePRED(samples, 1) }
func EncodePRED2(samples []int32) []byte { return encodePRED(samples, 2) }

func encodePRED(samples []int32, order int) []byte {
	derivs := Differentiate(samples, order)

	return encodeRangeCoded(derivs, newPredModel())
}

// DecodePRED1/DecodePRED2 reverse EncodePRED1/EncodePRED2.
func DecodePRED1(data []byte, count int) []int32 { return decodePRED(data, count, 1) }
func DecodePRED2(data []byte, count int) []int32 { return decodePRED(data, count, 2) }

func decodePRED(data []byte, count int, order int) []int32 {
	derivs := decodeRangeCoded(data, count, newPredModel())

	return Integrate(derivs, order)
}
