package records

import (
	"github.com/medcore/med/compress"
	"github.com/medcore/med/format"
)

// Record bodies are optionally compressed (spec.md §4.5's auxiliary
// compression note), selected by packing a format.CompressionType into
// the high nibble of the record's on-disk VersionMinor byte. A nibble
// of 0 means "not compressed" — distinct from format.CompressionNone
// (0x1), which is an explicit opt-in to a no-op codec — so a record
// that never asked for compression round-trips through Writer/ReadAll
// without this package touching its bytes at all. This is additive: it
// doesn't change the fixed 24-byte RecordHeader/RIndexEntry layout,
// only how the low 4 bits vs. high 4 bits of VersionMinor are read.
type compressionNibble uint8

func packVersionMinor(minor uint8, codecType compressionNibble) uint8 {
	return (minor & 0x0F) | (uint8(codecType) << 4)
}

func unpackVersionMinor(versionMinor uint8) (minor uint8, codecType compressionNibble) {
	return versionMinor & 0x0F, compressionNibble(versionMinor >> 4)
}

// PackVersionMinor packs minor (the record type's real minor version
// number, 0-15) and codecType into the byte Writer.Append and ReadAll
// exchange as a record's VersionMinor.
func PackVersionMinor(minor uint8, codecType format.CompressionType) uint8 {
	return packVersionMinor(minor, compressionNibble(codecType))
}

func compressBody(data []byte, codecType compressionNibble) ([]byte, error) {
	if codecType == 0 {
		return data, nil
	}

	codec, err := compress.GetCodec(format.CompressionType(codecType))
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

func decompressBody(data []byte, codecType compressionNibble) ([]byte, error) {
	if codecType == 0 {
		return data, nil
	}

	codec, err := compress.GetCodec(format.CompressionType(codecType))
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}
