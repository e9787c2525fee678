package records

import (
	"fmt"
	"sync"

	"github.com/medcore/med/errs"
)

// Body is a decoded record body. TypeCode identifies which 4-byte code
// a registered Decoder produces this Body for; Encode serializes the
// body back to its wire bytes (excluding the RecordHeader).
type Body interface {
	TypeCode() [4]byte
	Encode() []byte
}

// Decoder parses a record body from raw bytes (the bytes following the
// record's section.RecordHeader), given the header's version fields so
// a type with multiple on-disk layouts (e.g. Sgmt v1.0 vs v1.1) can pick
// the right one.
type Decoder func(data []byte, versionMajor, versionMinor uint8) (Body, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[[4]byte]Decoder)
)

// Register installs dec as the decoder for typeCode. Calling Register
// twice for the same code without first Unregistering it is a
// programmer error and returns errs.ErrRecordTypeCollision rather than
// silently overwriting the previous decoder.
func Register(typeCode [4]byte, dec Decoder) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[typeCode]; exists {
		return errs.New(errs.REC, fmt.Sprintf("record type %q already registered", typeCode), errs.ErrRecordTypeCollision)
	}

	registry[typeCode] = dec

	return nil
}

// MustRegister panics on collision; used from package init() where a
// collision means a bug in this package, not bad input.
func MustRegister(typeCode [4]byte, dec Decoder) {
	if err := Register(typeCode, dec); err != nil {
		panic(err)
	}
}

// Lookup returns the decoder registered for typeCode, or
// errs.ErrUnknownRecordType if none was registered. Callers that want to
// skip unknown record types (spec.md's "skip past the body using
// TotalRecordBytes") check for this sentinel specifically rather than
// treating it as fatal.
func Lookup(typeCode [4]byte) (Decoder, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	dec, exists := registry[typeCode]
	if !exists {
		return nil, errs.New(errs.REC, fmt.Sprintf("unregistered record type %q", typeCode), errs.ErrUnknownRecordType)
	}

	return dec, nil
}

// Decode looks up typeCode and, if registered, decodes data into a Body.
func Decode(typeCode [4]byte, data []byte, versionMajor, versionMinor uint8) (Body, error) {
	dec, err := Lookup(typeCode)
	if err != nil {
		return nil, err
	}

	return dec(data, versionMajor, versionMinor)
}

func typeCode(s string) [4]byte {
	var c [4]byte
	copy(c[:], s)

	return c
}
