package section

import (
	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/layout"
)

// Fixed sub-section sizes within the 15360-byte metadata body (spec.md
// §3.1). Sections 2 and 3 leave generous reserved space for future
// fields without breaking the fixed total, matching how the universal
// header over-allocates for the same reason.
const (
	MetadataSection1Size = 1045 // password hints + subject
	MetadataSection2Size = 1051 // type-specific acquisition params
	MetadataSection3Size = 1050 // timing/locale
	metadataReservedSize = MetadataSize - MetadataSection1Size - MetadataSection2Size - MetadataSection3Size
)

func init() {
	layout.MustSize("Metadata", new(Metadata).wireSize(), MetadataSize)
	layout.MustSize("MetadataSection1", new(MetadataSection1).wireSize(), MetadataSection1Size)
}

// Metadata is the 15360-byte body that follows the universal header in
// every .tmet/.vmet file (spec.md §3.1). Section 1 is always plaintext;
// sections 2 and 3 may independently be AES-encrypted under access
// levels 1 and 2 respectively (spec.md §4.3) and so are kept as raw
// bytes here rather than parsed structs — the Design Notes call this
// out explicitly: read raw bytes into a buffer and build the typed view
// by explicit parsing, never by aliasing the buffer with a pointer cast.
type Metadata struct {
	Section1 MetadataSection1
	Section2 MetadataSection2Raw
	Section3 MetadataSection3Raw
}

func (m *Metadata) wireSize() int {
	return MetadataSection1Size + MetadataSection2Size + MetadataSection3Size + metadataReservedSize
}

// Parse decodes the 15360-byte metadata body. Section 2/3 bytes are
// copied verbatim (still encrypted, if they are); callers decrypt via
// security.DecryptMetadataSection2/3 before parsing them with
// ParseTimeSeriesAcquisitionParams/ParseVideoAcquisitionParams and
// ParseTimingLocale.
func (m *Metadata) Parse(data []byte) error {
	if len(data) != MetadataSize {
		return errs.ErrInvalidHeaderSize
	}

	if err := m.Section1.Parse(data[0:MetadataSection1Size]); err != nil {
		return err
	}

	off := MetadataSection1Size
	copy(m.Section2.Raw[:], data[off:off+MetadataSection2Size])
	off += MetadataSection2Size
	copy(m.Section3.Raw[:], data[off:off+MetadataSection3Size])

	return nil
}

// Bytes serializes the metadata body into a fresh MetadataSize-byte slice.
func (m *Metadata) Bytes() []byte {
	b := make([]byte, MetadataSize)
	copy(b[0:MetadataSection1Size], m.Section1.Bytes())
	off := MetadataSection1Size
	copy(b[off:off+MetadataSection2Size], m.Section2.Raw[:])
	off += MetadataSection2Size
	copy(b[off:off+MetadataSection3Size], m.Section3.Raw[:])

	return b
}

// MetadataSection1 holds password hints and subject identification
// (spec.md §3.1). It is never encrypted.
type MetadataSection1 struct {
	PasswordHintL1 [128]byte
	PasswordHintL2 [128]byte
	SubjectName    [256]byte
	SubjectID      [128]byte
	Institution    [256]byte
}

const metadataSection1ReservedSize = MetadataSection1Size - (128 + 128 + 256 + 128 + 256)

func (s *MetadataSection1) wireSize() int {
	return 128 + 128 + 256 + 128 + 256 + metadataSection1ReservedSize
}

// Parse decodes MetadataSection1 from its MetadataSection1Size-byte region.
func (s *MetadataSection1) Parse(data []byte) error {
	if len(data) != MetadataSection1Size {
		return errs.ErrInvalidHeaderSize
	}

	off := 0
	copy(s.PasswordHintL1[:], data[off:off+128])
	off += 128
	copy(s.PasswordHintL2[:], data[off:off+128])
	off += 128
	copy(s.SubjectName[:], data[off:off+256])
	off += 256
	copy(s.SubjectID[:], data[off:off+128])
	off += 128
	copy(s.Institution[:], data[off:off+256])

	return nil
}

// Bytes serializes MetadataSection1 into a fresh MetadataSection1Size-byte slice.
func (s *MetadataSection1) Bytes() []byte {
	b := make([]byte, MetadataSection1Size)
	off := 0
	copy(b[off:off+128], s.PasswordHintL1[:])
	off += 128
	copy(b[off:off+128], s.PasswordHintL2[:])
	off += 128
	copy(b[off:off+256], s.SubjectName[:])
	off += 256
	copy(b[off:off+128], s.SubjectID[:])
	off += 128
	copy(b[off:off+256], s.Institution[:])

	return b
}

// MetadataSection2Raw is section 2's on-disk bytes: type-specific
// acquisition parameters whose layout depends on whether the owning
// file is a time-series or video channel. Parse it with
// ParseTimeSeriesAcquisitionParams or ParseVideoAcquisitionParams once
// decrypted.
type MetadataSection2Raw struct {
	Raw [MetadataSection2Size]byte
}

// MetadataSection3Raw is section 3's on-disk bytes: timing/locale
// information, encrypted under access level 2 by default.
type MetadataSection3Raw struct {
	Raw [MetadataSection3Size]byte
}

// TimeSeriesAcquisitionParams is the typed view of section 2 for a
// time-series channel (spec.md §3.1, "section 2: type-specific
// acquisition parameters").
type TimeSeriesAcquisitionParams struct {
	ChannelDescription             [256]byte
	SessionDescription             [256]byte
	AcquisitionChannelNumber       int32
	SamplingFrequency              float64 // format.RateNoEntry/RateVariable sentinels apply
	LowFrequencyFilterSetting      float64
	HighFrequencyFilterSetting     float64
	NotchFilterFrequencySetting    float64
	ACLineFrequency                float64
	AmplitudeUnitsConversionFactor float64
}

// ParseTimeSeriesAcquisitionParams builds the typed view by explicit
// field-by-field parsing of a decrypted section 2 buffer (Design Notes:
// never alias the buffer with a pointer cast).
func ParseTimeSeriesAcquisitionParams(raw []byte) (TimeSeriesAcquisitionParams, error) {
	if len(raw) < MetadataSection2Size {
		return TimeSeriesAcquisitionParams{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	var p TimeSeriesAcquisitionParams

	off := 0
	copy(p.ChannelDescription[:], raw[off:off+256])
	off += 256
	copy(p.SessionDescription[:], raw[off:off+256])
	off += 256
	p.AcquisitionChannelNumber = int32(engine.Uint32(raw[off : off+4])) //nolint:gosec
	off += 4
	p.SamplingFrequency = float64FromBits(engine.Uint64(raw[off : off+8]))
	off += 8
	p.LowFrequencyFilterSetting = float64FromBits(engine.Uint64(raw[off : off+8]))
	off += 8
	p.HighFrequencyFilterSetting = float64FromBits(engine.Uint64(raw[off : off+8]))
	off += 8
	p.NotchFilterFrequencySetting = float64FromBits(engine.Uint64(raw[off : off+8]))
	off += 8
	p.ACLineFrequency = float64FromBits(engine.Uint64(raw[off : off+8]))
	off += 8
	p.AmplitudeUnitsConversionFactor = float64FromBits(engine.Uint64(raw[off : off+8]))

	return p, nil
}

// Bytes serializes the typed view back into a MetadataSection2Size-byte
// buffer, ready for (re-)encryption and storage as MetadataSection2Raw.Raw.
func (p *TimeSeriesAcquisitionParams) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, MetadataSection2Size)

	off := 0
	copy(b[off:off+256], p.ChannelDescription[:])
	off += 256
	copy(b[off:off+256], p.SessionDescription[:])
	off += 256
	engine.PutUint32(b[off:off+4], uint32(p.AcquisitionChannelNumber)) //nolint:gosec
	off += 4
	engine.PutUint64(b[off:off+8], bitsFromFloat64(p.SamplingFrequency))
	off += 8
	engine.PutUint64(b[off:off+8], bitsFromFloat64(p.LowFrequencyFilterSetting))
	off += 8
	engine.PutUint64(b[off:off+8], bitsFromFloat64(p.HighFrequencyFilterSetting))
	off += 8
	engine.PutUint64(b[off:off+8], bitsFromFloat64(p.NotchFilterFrequencySetting))
	off += 8
	engine.PutUint64(b[off:off+8], bitsFromFloat64(p.ACLineFrequency))
	off += 8
	engine.PutUint64(b[off:off+8], bitsFromFloat64(p.AmplitudeUnitsConversionFactor))

	return b
}

// VideoAcquisitionParams is the typed view of section 2 for a video channel.
type VideoAcquisitionParams struct {
	ChannelDescription [256]byte
	SessionDescription [256]byte
	FrameRate          float64
	HorizontalPixels   int32
	VerticalPixels     int32
}

// ParseVideoAcquisitionParams builds the typed view for a video channel.
func ParseVideoAcquisitionParams(raw []byte) (VideoAcquisitionParams, error) {
	if len(raw) < MetadataSection2Size {
		return VideoAcquisitionParams{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	var p VideoAcquisitionParams

	off := 0
	copy(p.ChannelDescription[:], raw[off:off+256])
	off += 256
	copy(p.SessionDescription[:], raw[off:off+256])
	off += 256
	p.FrameRate = float64FromBits(engine.Uint64(raw[off : off+8]))
	off += 8
	p.HorizontalPixels = int32(engine.Uint32(raw[off : off+4])) //nolint:gosec
	off += 4
	p.VerticalPixels = int32(engine.Uint32(raw[off : off+4])) //nolint:gosec

	return p, nil
}

// TimingLocale is the typed view of section 3 (spec.md §3.1, "section
// 3: timing/locale").
type TimingLocale struct {
	UTCOffsetSeconds        int32
	StandardTimezoneAcronym [8]byte
	StandardTimezoneString  [32]byte
	DaylightTimezoneAcronym [8]byte
	DaylightTimezoneString  [32]byte
	Locale                  [8]byte
}

// ParseTimingLocale builds the typed view of a decrypted section 3 buffer.
func ParseTimingLocale(raw []byte) (TimingLocale, error) {
	if len(raw) < MetadataSection3Size {
		return TimingLocale{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	var t TimingLocale

	off := 0
	t.UTCOffsetSeconds = int32(engine.Uint32(raw[off : off+4])) //nolint:gosec
	off += 4
	copy(t.StandardTimezoneAcronym[:], raw[off:off+8])
	off += 8
	copy(t.StandardTimezoneString[:], raw[off:off+32])
	off += 32
	copy(t.DaylightTimezoneAcronym[:], raw[off:off+8])
	off += 8
	copy(t.DaylightTimezoneString[:], raw[off:off+32])
	off += 32
	copy(t.Locale[:], raw[off:off+8])

	return t, nil
}

// Bytes serializes TimingLocale back into a MetadataSection3Size-byte buffer.
func (t *TimingLocale) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()
	b := make([]byte, MetadataSection3Size)

	off := 0
	engine.PutUint32(b[off:off+4], uint32(t.UTCOffsetSeconds)) //nolint:gosec
	off += 4
	copy(b[off:off+8], t.StandardTimezoneAcronym[:])
	off += 8
	copy(b[off:off+32], t.StandardTimezoneString[:])
	off += 32
	copy(b[off:off+8], t.DaylightTimezoneAcronym[:])
	off += 8
	copy(b[off:off+32], t.DaylightTimezoneString[:])
	off += 32
	copy(b[off:off+8], t.Locale[:])

	return b
}
