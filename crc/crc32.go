// Package crc implements the CRC-32 protection layer used by every MED
// file and every compressed block (spec.md §3.3, §4.4). It is one of the
// few stdlib-only packages in this module: no repository in the retrieval
// pack imports a CRC library (the one CRC mention in the teacher package is
// a doc-comment aside, never an import), and hash/crc32's IEEE table is
// exactly the CRC_POLYNOMIAL = 0xEDB88320 the spec fixes. CRC-combine
// (testable property 8: CRC32(A||B) == Combine(CRC32(A), CRC32(B), len(B)))
// has no ecosystem library either; it's straightforward GF(2) polynomial
// algebra implemented directly against the stdlib table.
package crc

import "hash/crc32"

// Table is the IEEE polynomial table MED uses everywhere (format.CRCPolynomial).
var Table = crc32.IEEETable

// Checksum computes the CRC-32 (IEEE) of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, Table)
}

// gf2MatrixTimes multiplies a GF(2) vector by a square matrix represented
// as a list of column vectors (classic zlib crc32_combine algorithm).
func gf2MatrixTimes(mat [32]uint32, vec uint32) uint32 {
	var sum uint32
	for i := 0; vec != 0; i++ {
		if vec&1 != 0 {
			sum ^= mat[i]
		}
		vec >>= 1
	}

	return sum
}

func gf2MatrixSquare(square, mat *[32]uint32) {
	for n := range 32 {
		square[n] = gf2MatrixTimes(*mat, mat[n])
	}
}

// Combine computes the CRC-32 of the concatenation of two byte sequences A
// and B given only crc1 = Checksum(A), crc2 = Checksum(B), and len(B), with
// no access to the bytes of A. This lets index/header rewrites recompute a
// whole-file CRC incrementally from section checksums.
func Combine(crc1, crc2 uint32, lenB int64) uint32 {
	if lenB == 0 {
		return crc1
	}

	var even, odd [32]uint32

	// Put the operator for one zero bit in odd.
	odd[0] = crc32.IEEE // CRC-32 polynomial, reflected
	row := uint32(1)
	for n := 1; n < 32; n++ {
		odd[n] = row
		row <<= 1
	}

	// Put the operator for two zero bits in even, then one zero bit again in odd.
	gf2MatrixSquare(&even, &odd)
	gf2MatrixSquare(&odd, &even)

	crc1n := crc1
	length := lenB
	for {
		// Apply zeros operator for this bit of length.
		gf2MatrixSquare(&even, &odd)
		if length&1 != 0 {
			crc1n = gf2MatrixTimes(even, crc1n)
		}
		length >>= 1
		if length == 0 {
			break
		}

		gf2MatrixSquare(&odd, &even)
		if length&1 != 0 {
			crc1n = gf2MatrixTimes(odd, crc1n)
		}
		length >>= 1
		if length == 0 {
			break
		}
	}

	return crc1n ^ crc2
}
