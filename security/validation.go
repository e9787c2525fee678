package security

import "github.com/medcore/med/errs"

// ValidationField computes the 16-byte value a UniversalHeader stores
// for a given access level (spec.md §4.3): the level's own derived key
// encrypted under itself. A reader recovers the key by decrypting the
// stored field with the candidate password's derived key and checking
// it equals the candidate key — "decrypting with the correct key
// produces a value matching the known structure, validating the
// password and yielding the derived key" (spec.md §4.3).
func ValidationField(key [KeySize]byte) ([KeySize]byte, error) {
	var field [KeySize]byte

	plaintext := key
	if err := EncryptRegion(plaintext[:], key); err != nil {
		return field, err
	}
	copy(field[:], plaintext[:])

	return field, nil
}

// ValidatePassword reports whether password derives the key that
// produced field at the given level, returning the derived key on
// success.
func ValidatePassword(field [KeySize]byte, password string, expanded bool) (key [KeySize]byte, ok bool, err error) {
	key = DeriveKey(password, expanded)

	candidate := field
	if derr := DecryptRegion(candidate[:], key); derr != nil {
		return key, false, derr
	}

	return key, candidate == key, nil
}

// L3JointField encrypts the concatenation of the L1 and L2 keys under
// the L3 key (spec.md §4.3: "the 16-byte L1 key and 16-byte L2 key are
// jointly encrypted under the L3 key"), returning the 32-byte result
// L3Recover reads back (two 16-byte AES-ECB-equivalent units,
// independently encrypted under l3Key). UniversalHeader has no field
// for it.
func L3JointField(l1Key, l2Key, l3Key [KeySize]byte) ([2 * KeySize]byte, error) {
	var out [2 * KeySize]byte
	copy(out[:KeySize], l1Key[:])
	copy(out[KeySize:], l2Key[:])

	if err := EncryptRegion(out[:], l3Key); err != nil {
		return out, err
	}

	return out, nil
}

// L3Recover reverses L3JointField, returning the L1 and L2 keys if
// l3Key is correct.
func L3Recover(field [2 * KeySize]byte, l3Key [KeySize]byte) (l1Key, l2Key [KeySize]byte, err error) {
	plain := field
	if derr := DecryptRegion(plain[:], l3Key); derr != nil {
		return l1Key, l2Key, derr
	}

	copy(l1Key[:], plain[:KeySize])
	copy(l2Key[:], plain[KeySize:])

	return l1Key, l2Key, nil
}

// RequireLevel returns errs.ErrPasswordIncorrect unless ok is true,
// for callers translating ValidatePassword's result into the package's
// standard FACC failure.
func RequireLevel(ok bool) error {
	if !ok {
		return errs.ErrPasswordIncorrect
	}

	return nil
}
