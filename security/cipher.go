package security

import (
	"crypto/aes"

	"github.com/medcore/med/errs"
)

// EncryptRegion AES-128-encrypts data in place, BlockSize bytes at a
// time, independently (ECB-equivalent, spec.md §2 item 2). len(data)
// must be a multiple of BlockSize; callers (block payloads, metadata
// sections) are responsible for 16-byte alignment before calling.
func EncryptRegion(data []byte, key [KeySize]byte) error {
	return cryptRegion(data, key, true)
}

// DecryptRegion reverses EncryptRegion.
func DecryptRegion(data []byte, key [KeySize]byte) error {
	return cryptRegion(data, key, false)
}

func cryptRegion(data []byte, key [KeySize]byte, encrypt bool) error {
	if len(data)%BlockSize != 0 {
		return errs.New(errs.CRYP, "region is not 16-byte aligned", nil)
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return errs.New(errs.CRYP, "AES key expansion failed", err)
	}

	for off := 0; off < len(data); off += BlockSize {
		chunk := data[off : off+BlockSize]
		if encrypt {
			block.Encrypt(chunk, chunk)
		} else {
			block.Decrypt(chunk, chunk)
		}
	}

	return nil
}

// EncryptedCopy returns an encrypted copy of data, padding the
// trailing partial block with zeros if data isn't already 16-byte
// aligned (used for encrypted record bodies).
func EncryptedCopy(data []byte, key [KeySize]byte) ([]byte, error) {
	padded := pad16(data)
	if err := EncryptRegion(padded, key); err != nil {
		return nil, err
	}

	return padded, nil
}

func pad16(data []byte) []byte {
	if len(data)%BlockSize == 0 {
		out := make([]byte, len(data))
		copy(out, data)

		return out
	}

	out := make([]byte, (len(data)/BlockSize+1)*BlockSize)
	copy(out, data)

	return out
}
