package records

import (
	"encoding/binary"

	"github.com/medcore/med/errs"
	"github.com/medcore/med/security"
)

// encryptRecordBody wraps payload in a self-describing envelope — its
// own length prefixed, the same way cps's discretionary region
// prefixes its noise-scores blob with a tag byte — so the zero padding
// security.EncryptedCopy adds for 16-byte alignment can be stripped
// back off after decryption.
func encryptRecordBody(payload []byte, key [security.KeySize]byte) ([]byte, error) {
	envelope := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(envelope[0:4], uint32(len(payload))) //nolint:gosec
	copy(envelope[4:], payload)

	return security.EncryptedCopy(envelope, key)
}

// decryptRecordBody reverses encryptRecordBody.
func decryptRecordBody(data []byte, key [security.KeySize]byte) ([]byte, error) {
	plain := append([]byte(nil), data...)

	if err := security.DecryptRegion(plain, key); err != nil {
		return nil, err
	}

	if len(plain) < 4 {
		return nil, errs.ErrShortRead
	}

	n := binary.LittleEndian.Uint32(plain[0:4])
	if int(n) > len(plain)-4 {
		return nil, errs.ErrShortRead
	}

	return plain[4 : 4+n], nil
}
