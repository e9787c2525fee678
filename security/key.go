package security

import "crypto/sha256"

// DeriveKey conditions a password into a 16-byte AES-128 key (spec.md
// §4.3): with expanded passwords (the default), the password is hashed
// with SHA-256 and the first 16 bytes of the digest become the key;
// otherwise the password's UTF-8 bytes, null-padded to 16, are used
// directly.
func DeriveKey(password string, expanded bool) [KeySize]byte {
	var key [KeySize]byte

	if expanded {
		sum := sha256.Sum256([]byte(password))
		copy(key[:], sum[:KeySize])

		return key
	}

	copy(key[:], password) // truncates at 16 bytes; remainder stays zero (null-padded)

	return key
}
