package section

import (
	"github.com/medcore/med/crc"
	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/format"
	"github.com/medcore/med/internal/layout"
)

func init() {
	layout.MustSize("UniversalHeader", new(UniversalHeader).wireSize(), UniversalHeaderSize)
}

// UniversalHeader is the fixed 1024-byte block that leads every MED file
// (spec.md §3.1, §4.1). It plays the role the teacher's NumericHeader
// plays for a blob: a fixed-size, explicitly-parsed struct with
// Parse/Bytes/WriteToSlice methods, never a pointer-cast union.
type UniversalHeader struct {
	// HeaderCRC covers the header minus its own first 4 bytes
	// (spec.md §3.3). Offset 0, 4 bytes.
	HeaderCRC uint32
	// BodyCRC covers [UH_BYTES..EOF] of the file this header leads.
	// Offset 4, 4 bytes.
	BodyCRC uint32
	// TypeCode is one of the 4-character ASCII strings in §6.1
	// (e.g. "tdat"). Offset 8, 4 bytes.
	TypeCode [4]byte
	// MEDVersionMajor/Minor identify the format revision. Offset 12-13.
	MEDVersionMajor uint8
	MEDVersionMinor uint8
	// ByteOrderCode is ByteOrderLittle or ByteOrderBig. Offset 14.
	ByteOrderCode uint8
	// Flags packs live/ordered/expanded_passwords (uh_flags.go). Offset 15.
	Flags uint8

	// SessionUID/ChannelUID/SegmentUID/ProvenanceUID are ui8 identifiers,
	// identical across every file in the same session/channel/segment
	// (spec.md §3.3). Offsets 16, 24, 32, 40.
	SessionUID    uint64
	ChannelUID    uint64
	SegmentUID    uint64
	ProvenanceUID uint64

	// SegmentNumber is 1-based; format.SegmentNumberNoEntry (0) means unset.
	// Offset 48, 4 bytes.
	SegmentNumber int32

	// FileStartTime/FileEndTime bound this file's content in μUTC.
	// Offsets 56, 64.
	FileStartTime int64
	FileEndTime   int64

	// PasswordValidationL1/L2/L3 are the per-level validation fields
	// described in spec.md §4.3. Offsets 72, 88, 104; 16 bytes each.
	PasswordValidationL1 [16]byte
	PasswordValidationL2 [16]byte
	PasswordValidationL3 [16]byte

	// EncryptionRoundsData/Meta2/Meta3 record the AES round count used
	// for the data region and metadata sections 2 and 3 respectively;
	// 0 means unencrypted. Offsets 120, 124, 128.
	EncryptionRoundsData  uint32
	EncryptionRoundsMeta2 uint32
	EncryptionRoundsMeta3 uint32
}

// uhReservedSize is the trailing pad that brings the header to exactly
// UniversalHeaderSize bytes; it is unused on the wire today and reserved
// for future fields.
const uhReservedSize = 892

func (h *UniversalHeader) wireSize() int {
	return 4 + 4 + 4 + 1 + 1 + 1 + 1 +
		8 + 8 + 8 + 8 +
		4 +
		4 /* reserved1 pad */ +
		8 + 8 +
		16 + 16 + 16 +
		4 + 4 + 4 +
		uhReservedSize
}

// NewUniversalHeader implements the init_universal_header operation
// (spec.md §4.1): fixed defaults, version/byte-order set, encryption
// rounds = 1, expanded passwords = true, UIDs zeroed.
func NewUniversalHeader(typeCode string) *UniversalHeader {
	var tc [4]byte
	copy(tc[:], typeCode)

	h := &UniversalHeader{
		TypeCode:        tc,
		MEDVersionMajor: MEDVersionMajor,
		MEDVersionMinor: MEDVersionMinor,
		ByteOrderCode:   ByteOrderLittle,
		FileStartTime:   format.BeginningOfTime,
		FileEndTime:     format.EndOfTime,
	}
	h.SetExpandedPasswords(true)
	h.EncryptionRoundsData = 1
	h.EncryptionRoundsMeta2 = 1
	h.EncryptionRoundsMeta3 = 1

	return h
}

// Validate implements the header-acceptance checks of spec.md §4.1:
// byte order must match the host (this library is little-endian only),
// type code must be recognized, and the major version must match.
func (h *UniversalHeader) Validate() error {
	if h.ByteOrderCode != ByteOrderLittle {
		return errs.ErrByteOrderMismatch
	}
	if !isKnownTypeCode(string(h.TypeCode[:])) {
		return errs.ErrNotMedFile
	}
	if h.MEDVersionMajor != MEDVersionMajor {
		return errs.ErrUnsupportedVersion
	}

	return nil
}

func isKnownTypeCode(tc string) bool {
	switch tc {
	case TypeCodeTimeSeriesMetadata, TypeCodeTimeSeriesData, TypeCodeTimeSeriesIndex,
		TypeCodeVideoMetadata, TypeCodeVideoData, TypeCodeVideoIndex,
		TypeCodeRecordData, TypeCodeRecordIndex:
		return true
	default:
		return false
	}
}

// Parse decodes a 1024-byte universal header. It does not call Validate;
// callers (fps.Open) decide when type/version/byte-order acceptance
// happens so that, e.g., a CLI tool can still inspect a foreign file.
func (h *UniversalHeader) Parse(data []byte) error {
	if len(data) != UniversalHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.HeaderCRC = engine.Uint32(data[0:4])
	h.BodyCRC = engine.Uint32(data[4:8])
	copy(h.TypeCode[:], data[8:12])
	h.MEDVersionMajor = data[12]
	h.MEDVersionMinor = data[13]
	h.ByteOrderCode = data[14]
	h.Flags = data[15]
	h.SessionUID = engine.Uint64(data[16:24])
	h.ChannelUID = engine.Uint64(data[24:32])
	h.SegmentUID = engine.Uint64(data[32:40])
	h.ProvenanceUID = engine.Uint64(data[40:48])
	h.SegmentNumber = int32(engine.Uint32(data[48:52])) //nolint:gosec
	h.FileStartTime = int64(engine.Uint64(data[56:64])) //nolint:gosec
	h.FileEndTime = int64(engine.Uint64(data[64:72]))   //nolint:gosec
	copy(h.PasswordValidationL1[:], data[72:88])
	copy(h.PasswordValidationL2[:], data[88:104])
	copy(h.PasswordValidationL3[:], data[104:120])
	h.EncryptionRoundsData = engine.Uint32(data[120:124])
	h.EncryptionRoundsMeta2 = engine.Uint32(data[124:128])
	h.EncryptionRoundsMeta3 = engine.Uint32(data[128:132])

	return nil
}

// Bytes serializes the header into a fresh 1024-byte slice.
func (h *UniversalHeader) Bytes() []byte {
	b := make([]byte, UniversalHeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice writes the header into a pre-allocated 1024-byte slice.
func (h *UniversalHeader) WriteToSlice(data []byte) {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(data[0:4], h.HeaderCRC)
	engine.PutUint32(data[4:8], h.BodyCRC)
	copy(data[8:12], h.TypeCode[:])
	data[12] = h.MEDVersionMajor
	data[13] = h.MEDVersionMinor
	data[14] = h.ByteOrderCode
	data[15] = h.Flags
	engine.PutUint64(data[16:24], h.SessionUID)
	engine.PutUint64(data[24:32], h.ChannelUID)
	engine.PutUint64(data[32:40], h.SegmentUID)
	engine.PutUint64(data[40:48], h.ProvenanceUID)
	engine.PutUint32(data[48:52], uint32(h.SegmentNumber)) //nolint:gosec
	engine.PutUint64(data[56:64], uint64(h.FileStartTime)) //nolint:gosec
	engine.PutUint64(data[64:72], uint64(h.FileEndTime))   //nolint:gosec
	copy(data[72:88], h.PasswordValidationL1[:])
	copy(data[88:104], h.PasswordValidationL2[:])
	copy(data[104:120], h.PasswordValidationL3[:])
	engine.PutUint32(data[120:124], h.EncryptionRoundsData)
	engine.PutUint32(data[124:128], h.EncryptionRoundsMeta2)
	engine.PutUint32(data[128:132], h.EncryptionRoundsMeta3)
}

// headerCRCStart is the offset HeaderCRC's own coverage begins at: the
// header CRC protects every header byte except its own 4-byte field,
// which includes the BodyCRC field that precedes it in the wire layout.
const headerCRCStart = 4

// SetBodyCRC stores the CRC-32 of body, the bytes immediately following
// this header on disk. Callers finalize a header with this before
// SetHeaderCRC, since the header CRC's coverage includes the BodyCRC
// field itself (spec.md §3.3).
func (h *UniversalHeader) SetBodyCRC(body []byte) {
	h.BodyCRC = crc.Checksum(body)
}

// SetHeaderCRC recomputes and stores HeaderCRC over this header's own
// serialized bytes, excluding the HeaderCRC field itself.
func (h *UniversalHeader) SetHeaderCRC() {
	h.HeaderCRC = crc.Checksum(h.Bytes()[headerCRCStart:])
}

// VerifyHeaderCRC reports whether data — the raw UniversalHeaderSize
// bytes h was parsed from — still matches h.HeaderCRC.
func (h *UniversalHeader) VerifyHeaderCRC(data []byte) error {
	if crc.Checksum(data[headerCRCStart:]) != h.HeaderCRC {
		return errs.ErrHeaderCRCMismatch
	}

	return nil
}

// VerifyBodyCRC reports whether body matches h.BodyCRC.
func (h *UniversalHeader) VerifyBodyCRC(body []byte) error {
	if crc.Checksum(body) != h.BodyCRC {
		return errs.ErrBodyCRCMismatch
	}

	return nil
}

// MergeUniversalHeaders implements merge_universal_headers (spec.md
// §4.1): fields that agree between a and b are kept; fields that
// disagree are NO_ENTRY-marked in out. Used to build a channel's
// ephemeral prototype metadata view from its segments' headers.
func MergeUniversalHeaders(a, b *UniversalHeader) *UniversalHeader {
	out := &UniversalHeader{
		TypeCode:        a.TypeCode,
		MEDVersionMajor: a.MEDVersionMajor,
		MEDVersionMinor: a.MEDVersionMinor,
		ByteOrderCode:   a.ByteOrderCode,
		FileStartTime:   format.UUTCNoEntry,
		FileEndTime:     format.UUTCNoEntry,
		SegmentNumber:   format.SegmentNumberNoEntry,
	}

	if a.SessionUID == b.SessionUID {
		out.SessionUID = a.SessionUID
	}
	if a.ChannelUID == b.ChannelUID {
		out.ChannelUID = a.ChannelUID
	}
	if a.SegmentUID == b.SegmentUID {
		out.SegmentUID = a.SegmentUID
	}
	if a.FileStartTime == b.FileStartTime {
		out.FileStartTime = a.FileStartTime
	}
	if a.FileEndTime == b.FileEndTime {
		out.FileEndTime = a.FileEndTime
	}
	if a.SegmentNumber == b.SegmentNumber {
		out.SegmentNumber = a.SegmentNumber
	}

	return out
}
