package section

// Fixed on-disk sizes (spec.md §3.1, §6.1). Every size here is asserted
// against its struct's actual layout by an init() in the file that
// defines the struct (internal/layout.MustSize).
const (
	UniversalHeaderSize = 1024
	MetadataSize        = 15360

	TSIndexEntrySize     = 24
	VIndexEntrySize      = 24
	RIndexEntrySize      = 24
	RecordHeaderSize     = 24
	BlockHeaderSize      = 56
)

// BlockStartUID is the fixed sentinel value every CompressedBlockHeader
// begins with (spec.md §3.1), used to resynchronize a scan after a
// corrupted or truncated block.
const BlockStartUID uint64 = 0x0123456789ABCDEF

// Type-code strings for the file extensions spec.md §6.1 enumerates.
// Stored as 4 lowercase ASCII bytes, little-endian, in the universal
// header's TypeCode field.
const (
	TypeCodeTimeSeriesMetadata = "tmet"
	TypeCodeTimeSeriesData     = "tdat"
	TypeCodeTimeSeriesIndex    = "tidx"
	TypeCodeVideoMetadata      = "vmet"
	TypeCodeVideoData          = "vdat"
	TypeCodeVideoIndex         = "vidx"
	TypeCodeRecordData         = "rdat"
	TypeCodeRecordIndex        = "ridx"
)

// MEDVersionMajor is the major format version this library reads and
// writes (spec.md §4.1: "MED_version_major matches the library's
// supported major (currently 1)").
const MEDVersionMajor uint8 = 1
const MEDVersionMinor uint8 = 0
