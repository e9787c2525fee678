package security

// EncryptMetadataSection2/3 encrypt a metadata section's raw bytes
// in place under the given level's key (spec.md §4.3: "Metadata
// sections 2 and 3 are independently encrypted under L1 and L2
// respectively (defaults)"). data must already be 16-byte aligned;
// callers pad MetadataSection2Raw/MetadataSection3Raw's trailing bytes
// with zeros first if the section size isn't a multiple of 16.
func EncryptMetadataSection2(data []byte, l1Key [KeySize]byte) error {
	return EncryptRegion(data, l1Key)
}

func DecryptMetadataSection2(data []byte, l1Key [KeySize]byte) error {
	return DecryptRegion(data, l1Key)
}

func EncryptMetadataSection3(data []byte, l2Key [KeySize]byte) error {
	return EncryptRegion(data, l2Key)
}

func DecryptMetadataSection3(data []byte, l2Key [KeySize]byte) error {
	return DecryptRegion(data, l2Key)
}
