// Package section defines the low-level binary structures and constants
// for the MED file format: the universal header, the three-part
// metadata body, the three fixed-size index entry kinds (time-series,
// video, record), the record header, and the compressed block header.
//
// Every type here follows the teacher package's section idiom: a
// fixed-size Go struct with explicit parsing and serialization. The
// universal header, metadata and compressed block header have
// Parse([]byte) error and Bytes() []byte methods; the index entries and
// the record header have ParseXxx(data, engine) functions and
// Bytes(engine) methods (plus WriteTo/WriteToSlice for index entries
// written in bulk). Each of those structs (and MetadataSection1) has an
// init() that asserts its wire size against a named constant via
// internal/layout.MustSize. Nothing
// in this package performs unsafe pointer-cast aliasing of a byte
// buffer onto a Go struct (see Design Notes on union-of-structures on
// disk): every field is read and written explicitly.
//
// All multi-byte fields are little-endian; MED files that claim a
// different byte order fail validation in UniversalHeader.Validate.
package section

import "math"

func float64FromBits(bits uint64) float64 { return math.Float64frombits(bits) }
func bitsFromFloat64(v float64) uint64    { return math.Float64bits(v) }
