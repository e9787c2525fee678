package section

// Universal header flag bits (spec.md §3.1: "flags: live, ordered,
// expanded_passwords"), packed into UniversalHeader.Flags the way
// NumericFlag packs its Options field in the teacher package.
const (
	UHFlagLive              = 0x01 // file is actively being appended to
	UHFlagOrdered           = 0x02 // records/index entries are guaranteed sorted on disk
	UHFlagExpandedPasswords = 0x04 // passwords are SHA-256 expanded (spec.md §4.3), not raw UTF-8
)

// HasLive reports whether the session/channel/segment this file belongs
// to is still being written.
func (h *UniversalHeader) HasLive() bool { return h.Flags&UHFlagLive != 0 }

// SetLive sets or clears the live flag.
func (h *UniversalHeader) SetLive(v bool) {
	if v {
		h.Flags |= UHFlagLive
	} else {
		h.Flags &^= UHFlagLive
	}
}

// HasOrdered reports whether index entries/records are sorted on disk.
func (h *UniversalHeader) HasOrdered() bool { return h.Flags&UHFlagOrdered != 0 }

// SetOrdered sets or clears the ordered flag.
func (h *UniversalHeader) SetOrdered(v bool) {
	if v {
		h.Flags |= UHFlagOrdered
	} else {
		h.Flags &^= UHFlagOrdered
	}
}

// HasExpandedPasswords reports whether passwords for this file are
// SHA-256 expanded rather than raw, null-padded UTF-8 (spec.md §4.3).
func (h *UniversalHeader) HasExpandedPasswords() bool { return h.Flags&UHFlagExpandedPasswords != 0 }

// SetExpandedPasswords sets or clears the expanded-passwords flag.
func (h *UniversalHeader) SetExpandedPasswords(v bool) {
	if v {
		h.Flags |= UHFlagExpandedPasswords
	} else {
		h.Flags &^= UHFlagExpandedPasswords
	}
}

// ByteOrderCode values for UniversalHeader.ByteOrderCode.
const (
	ByteOrderLittle uint8 = 0
	ByteOrderBig    uint8 = 1
)
