// Package format defines the small shared enums and numeric sentinels used
// across every MED on-disk structure: the block codec identifiers, the
// auxiliary-payload compression identifiers, and the ubiquitous sentinel
// values from spec.md §6.2. Kept as its own leaf package, adapted from the
// teacher's format package, so every higher-level package (section, cps,
// fps, hierarchy) can depend on it without a cycle.
package format

// EncodingType identifies a compressed-block codec (spec.md §4.4).
type EncodingType uint8

const (
	TypeRED1  EncodingType = 0x1 // Range Encoded Derivatives, version 1
	TypeRED2  EncodingType = 0x2 // Range Encoded Derivatives, version 2 (2/3 overflow byte tuning)
	TypePRED1 EncodingType = 0x3 // Predictive RED, version 1 (conditional statistics tables)
	TypePRED2 EncodingType = 0x4 // Predictive RED, version 2
	TypeMBE   EncodingType = 0x5 // Minimal Bit Encoding
	TypeVDS   EncodingType = 0x6 // Vectorized Data Stream (lossy, critical-point + spline)
)

func (e EncodingType) String() string {
	switch e {
	case TypeRED1:
		return "RED1"
	case TypeRED2:
		return "RED2"
	case TypePRED1:
		return "PRED1"
	case TypePRED2:
		return "PRED2"
	case TypeMBE:
		return "MBE"
	case TypeVDS:
		return "VDS"
	default:
		return "Unknown"
	}
}

// CompressionType identifies an auxiliary-payload compressor (discretionary
// block region, optional record-body compression). This is distinct from
// EncodingType: EncodingType picks the sample codec, CompressionType picks
// a generic byte-stream compressor layered on top of an auxiliary payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZstd CompressionType = 0x2
	CompressionS2   CompressionType = 0x3
	CompressionLZ4  CompressionType = 0x4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
