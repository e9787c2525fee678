package section

import (
	"testing"

	"github.com/medcore/med/errs"
	"github.com/medcore/med/format"
	"github.com/stretchr/testify/require"
)

func TestNewUniversalHeader(t *testing.T) {
	h := NewUniversalHeader(TypeCodeTimeSeriesData)

	require.Equal(t, MEDVersionMajor, h.MEDVersionMajor)
	require.Equal(t, ByteOrderLittle, h.ByteOrderCode)
	require.True(t, h.HasExpandedPasswords())
	require.Equal(t, uint32(1), h.EncryptionRoundsData)
	require.Equal(t, format.BeginningOfTime, h.FileStartTime)
	require.Equal(t, format.EndOfTime, h.FileEndTime)
	require.NoError(t, h.Validate())
}

func TestUniversalHeader_RoundTrip(t *testing.T) {
	h := NewUniversalHeader(TypeCodeTimeSeriesIndex)
	h.SessionUID = 111
	h.ChannelUID = 222
	h.SegmentUID = 333
	h.SegmentNumber = 4
	h.SetLive(true)
	h.SetOrdered(true)
	copy(h.PasswordValidationL1[:], []byte("0123456789abcdef"))

	data := h.Bytes()
	require.Len(t, data, UniversalHeaderSize)

	parsed := &UniversalHeader{}
	require.NoError(t, parsed.Parse(data))

	require.Equal(t, h.SessionUID, parsed.SessionUID)
	require.Equal(t, h.ChannelUID, parsed.ChannelUID)
	require.Equal(t, h.SegmentUID, parsed.SegmentUID)
	require.Equal(t, h.SegmentNumber, parsed.SegmentNumber)
	require.True(t, parsed.HasLive())
	require.True(t, parsed.HasOrdered())
	require.Equal(t, h.PasswordValidationL1, parsed.PasswordValidationL1)
	require.NoError(t, parsed.Validate())
}

func TestUniversalHeader_Validate(t *testing.T) {
	h := NewUniversalHeader(TypeCodeTimeSeriesData)
	h.ByteOrderCode = ByteOrderBig
	require.ErrorIs(t, h.Validate(), errs.ErrByteOrderMismatch)

	h = NewUniversalHeader(TypeCodeTimeSeriesData)
	copy(h.TypeCode[:], "nope")
	require.ErrorIs(t, h.Validate(), errs.ErrNotMedFile)

	h = NewUniversalHeader(TypeCodeTimeSeriesData)
	h.MEDVersionMajor = MEDVersionMajor + 1
	require.ErrorIs(t, h.Validate(), errs.ErrUnsupportedVersion)
}

func TestUniversalHeader_ParseInvalidSize(t *testing.T) {
	h := &UniversalHeader{}
	require.ErrorIs(t, h.Parse(make([]byte, 10)), errs.ErrInvalidHeaderSize)
}

func TestMergeUniversalHeaders(t *testing.T) {
	a := NewUniversalHeader(TypeCodeTimeSeriesMetadata)
	a.SessionUID = 42
	a.ChannelUID = 7
	a.FileStartTime = 1000

	b := NewUniversalHeader(TypeCodeTimeSeriesMetadata)
	b.SessionUID = 42
	b.ChannelUID = 9 // disagrees
	b.FileStartTime = 1000

	merged := MergeUniversalHeaders(a, b)
	require.Equal(t, uint64(42), merged.SessionUID)
	require.Equal(t, uint64(0), merged.ChannelUID) // disagreement: left zero, not NO_ENTRY (ui8 has no sentinel)
	require.Equal(t, int64(1000), merged.FileStartTime)
}
