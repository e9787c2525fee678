package security

import "github.com/medcore/med/section"

// EncryptBlockPayload encrypts block[start:end) in place, where start
// and end come from (*section.CompressedBlockHeader).EncryptedRegion()
// (spec.md §4.3/§3.3: "the region [number_of_samples ..
// total_block_bytes] is AES-decrypted in 16-byte units" on the way
// back out). Callers must align the block to 16 bytes before calling,
// same as EncryptedRegion already guarantees.
func EncryptBlockPayload(block []byte, h *section.CompressedBlockHeader, key [KeySize]byte) error {
	start, end := h.EncryptedRegion()
	if start >= end || end > len(block) {
		return nil
	}

	return EncryptRegion(block[start:end], key)
}

// DecryptBlockPayload reverses EncryptBlockPayload.
func DecryptBlockPayload(block []byte, h *section.CompressedBlockHeader, key [KeySize]byte) error {
	start, end := h.EncryptedRegion()
	if start >= end || end > len(block) {
		return nil
	}

	return DecryptRegion(block[start:end], key)
}
