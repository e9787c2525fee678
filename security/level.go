package security

// Level is one of MED's three password access levels (spec.md §4.3).
// L3 is a master key that can recover the L1/L2 derived keys.
type Level uint8

const (
	L1 Level = iota + 1
	L2
	L3
)

// BlockSize is the AES-128 block size and the unit every ECB-equivalent
// operation in this package works over.
const BlockSize = 16

// KeySize is the AES-128 key size in bytes.
const KeySize = 16
