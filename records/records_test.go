package records

import (
	"bytes"
	"strings"
	"testing"

	"github.com/medcore/med/errs"
	"github.com/medcore/med/format"
	"github.com/medcore/med/security"
	"github.com/stretchr/testify/require"
)

func TestRegistry_UnknownTypeCode(t *testing.T) {
	_, err := Lookup(typeCode("Zzzz"))
	require.Error(t, err)
}

func TestRegistry_CollisionOnDoubleRegister(t *testing.T) {
	err := Register(typeCode("Sgmt"), decodeSgmt)
	require.Error(t, err)
}

func TestSgmt_RoundTrip(t *testing.T) {
	s := Sgmt{
		EndTime:        1_700_000_000_000_000,
		StartSampleIdx: 0,
		EndSampleIdx:   255999,
		SegmentNumber:  3,
		SampleRate:     256,
		Description:    "baseline recording",
	}

	body, err := Decode(typeCode("Sgmt"), s.Encode(), 1, 1)
	require.NoError(t, err)

	got, ok := body.(Sgmt)
	require.True(t, ok)
	require.Equal(t, s.EndTime, got.EndTime)
	require.Equal(t, s.StartSampleIdx, got.StartSampleIdx)
	require.Equal(t, s.EndSampleIdx, got.EndSampleIdx)
	require.Equal(t, s.SegmentNumber, got.SegmentNumber)
	require.Equal(t, s.Description, got.Description)
	require.InDelta(t, s.SampleRate, got.SampleRate, 0.01)
}

func TestNote_RoundTrip(t *testing.T) {
	n := Note{EndTime: 42, Text: "patient reported dizziness"}

	body, err := Decode(typeCode("Note"), n.Encode(), 1, 1)
	require.NoError(t, err)
	require.Equal(t, n, body)
}

func TestStat_RoundTrip(t *testing.T) {
	s := Stat{Minimum: -100, Maximum: 100, Mean: 3, Median: 2, Mode: 1, Variance: 12.5, Skewness: 0.1, Kurtosis: 3.2}

	body, err := Decode(typeCode("Stat"), s.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, s, body)
}

func TestCurs_RoundTrip(t *testing.T) {
	c := Curs{IDNumber: 7, Latency: 1500, Value: 3.14, Name: "R-wave peak"}

	body, err := Decode(typeCode("Curs"), c.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, c, body)
}

func TestSeiz_RoundTrip(t *testing.T) {
	s := Seiz{
		LatestOffsetTime: 99,
		OnsetCode:        SeizOnsetFocal,
		MarkerName1:      "onset",
		MarkerName2:      "offset",
		Annotation:       "left temporal focal seizure",
		Channels: []SeizChannel{
			{Name: "LT1", OnsetTime: 10, OffsetTime: 20, SegmentNumber: 1},
			{Name: "LT2", OnsetTime: 11, OffsetTime: 21, SegmentNumber: 1},
		},
	}

	body, err := Decode(typeCode("Seiz"), s.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, s, body)
}

func TestSyLg_RoundTrip(t *testing.T) {
	s := SyLg{Text: "acquisition restarted after power loss"}

	body, err := Decode(typeCode("SyLg"), s.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, s, body)
}

func TestEpoc_RoundTripV20(t *testing.T) {
	e := Epoc{EndTime: 3600, StageCode: EpocStageREM, ScorerID: "auto-scorer-v2"}

	body, err := Decode(typeCode("Epoc"), e.Encode(), 2, 0)
	require.NoError(t, err)
	require.Equal(t, e, body)
}

func TestESti_RoundTrip(t *testing.T) {
	e := ESti{Amplitude: 2.5, Frequency: 130, PulseWidth: 90, AmpUnitCode: EStiAmpUnitMA, ModeCode: EStiModeCurrent,
		Waveform: "biphasic", Anode: "C3", Cathode: "C4"}

	body, err := Decode(typeCode("ESti"), e.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, e, body)
}

func TestCSti_RoundTrip(t *testing.T) {
	c := CSti{StimulusDuration: 500, TaskType: "n-back", StimulusType: "visual", PatientResponse: "correct"}

	body, err := Decode(typeCode("CSti"), c.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, c, body)
}

func TestHFOc_RoundTrip(t *testing.T) {
	h := HFOc{EndTime: 123, StartFrequency: 80, EndFrequency: 250}

	body, err := Decode(typeCode("HFOc"), h.Encode(), 1, 1)
	require.NoError(t, err)
	require.Equal(t, h, body)
}

func TestNlxP_RoundTrip(t *testing.T) {
	n := NlxP{RawPortValue: 0xABCD, Value: 7, Subport: 1, NumberOfSubport: 4, TriggerMode: NlxPHighBitSet}

	body, err := Decode(typeCode("NlxP"), n.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, n, body)
}

func TestEDFA_RoundTrip(t *testing.T) {
	e := EDFA{Duration: 2000, Annotation: "lights off"}

	body, err := Decode(typeCode("EDFA"), e.Encode(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, e, body)
}

func TestWriterReadAll_RoundTrip(t *testing.T) {
	var rdat, ridx bytes.Buffer

	w := NewWriter()
	require.NoError(t, w.Append(&rdat, 100, 1, 1, Sgmt{EndTime: 1000, Description: "segment one"}))
	require.NoError(t, w.Append(&rdat, 200, 1, 0, Note{EndTime: 250, Text: "note during segment"}))
	require.NoError(t, w.Finish(&ridx))

	entries, err := ReadAll(rdat.Bytes(), "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, typeCode("Sgmt"), entries[0].Header.TypeCode)
	require.Equal(t, typeCode("Note"), entries[1].Header.TypeCode)

	idx, err := ReadIndex(ridx.Bytes())
	require.NoError(t, err)
	require.Len(t, idx, 2)
	require.Equal(t, int64(100), idx[0].StartTime)
	require.Equal(t, int64(200), idx[1].StartTime)
}

func TestReadAll_DetectsCorruption(t *testing.T) {
	var rdat, ridx bytes.Buffer

	w := NewWriter()
	require.NoError(t, w.Append(&rdat, 0, 1, 0, Note{Text: "hello"}))
	require.NoError(t, w.Finish(&ridx))

	corrupted := rdat.Bytes()
	corrupted[len(corrupted)-1] ^= 0xFF

	_, err := ReadAll(corrupted, "")
	require.Error(t, err)
}

func TestWriterReadAll_CompressedBodyRoundTrip(t *testing.T) {
	var rdat, ridx bytes.Buffer

	text := strings.Repeat("system log line repeats enough to compress well\n", 64)
	minor := PackVersionMinor(1, format.CompressionZstd)

	w := NewWriter()
	require.NoError(t, w.Append(&rdat, 0, 1, minor, SyLg{Text: text}))
	require.NoError(t, w.Finish(&ridx))

	require.Less(t, rdat.Len(), len(text))

	entries, err := ReadAll(rdat.Bytes(), "")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	sylg, ok := entries[0].Body.(SyLg)
	require.True(t, ok)
	require.Equal(t, text, sylg.Text)
}

func TestReadAll_UnknownTypeCodeBecomesRawRecord(t *testing.T) {
	var rdat bytes.Buffer

	w := NewWriter()
	require.NoError(t, w.Append(&rdat, 0, 1, 0, SyLg{Text: "known"}))
	require.NoError(t, w.Append(&rdat, 0, 9, 9, fakeUnknownBody{}))

	entries, err := ReadAll(rdat.Bytes(), "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.IsType(t, SyLg{}, entries[0].Body)

	raw, ok := entries[1].Body.(RawRecord)
	require.True(t, ok)
	require.Equal(t, typeCode("Xxxx"), raw.Code)
	require.Equal(t, []byte("payload"), raw.Data)
}

func TestWriterReadAll_EncryptedBodyRoundTrip(t *testing.T) {
	var rdat, ridx bytes.Buffer

	key := security.DeriveKey("hunter2", true)

	w := NewWriter()
	require.NoError(t, w.AppendEncrypted(&rdat, 0, 1, 1, Sgmt{EndTime: 1000, Description: "encrypted segment"}, 1, key))
	require.NoError(t, w.Append(&rdat, 10, 1, 0, Note{EndTime: 20, Text: "plaintext note"}))
	require.NoError(t, w.Finish(&ridx))

	_, err := ReadAll(rdat.Bytes(), "")
	require.ErrorIs(t, err, errs.ErrNoPasswordSupplied)

	entries, err := ReadAll(rdat.Bytes(), "hunter2")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	sgmt, ok := entries[0].Body.(Sgmt)
	require.True(t, ok)
	require.Equal(t, "encrypted segment", sgmt.Description)
	require.Equal(t, uint8(1), entries[0].Header.EncryptionLevel)

	note, ok := entries[1].Body.(Note)
	require.True(t, ok)
	require.Equal(t, "plaintext note", note.Text)
	require.Equal(t, uint8(0), entries[1].Header.EncryptionLevel)
}

func TestShowRecords_FiltersByTypeCodeWithoutDecrypting(t *testing.T) {
	var rdat, ridx bytes.Buffer

	key := security.DeriveKey("hunter2", true)

	w := NewWriter()
	require.NoError(t, w.Append(&rdat, 0, 1, 1, Sgmt{EndTime: 1000, Description: "segment"}))
	require.NoError(t, w.Append(&rdat, 10, 1, 0, Note{EndTime: 20, Text: "note"}))
	require.NoError(t, w.AppendEncrypted(&rdat, 30, 1, 0, Note{EndTime: 40, Text: "secret note"}, 1, key))
	require.NoError(t, w.Finish(&ridx))

	all, err := ShowRecords(rdat.Bytes(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	sgmtOnly, err := ShowRecords(rdat.Bytes(), []int32{TypeCodeToFilterValue(typeCode("Sgmt"))})
	require.NoError(t, err)
	require.Len(t, sgmtOnly, 1)
	require.Equal(t, typeCode("Sgmt"), sgmtOnly[0].TypeCode)

	noSgmt, err := ShowRecords(rdat.Bytes(), []int32{-TypeCodeToFilterValue(typeCode("Sgmt"))})
	require.NoError(t, err)
	require.Len(t, noSgmt, 2)
	for _, h := range noSgmt {
		require.NotEqual(t, typeCode("Sgmt"), h.TypeCode)
	}

	// The encrypted record's header is readable (and its type code
	// filterable) without ever deriving a key.
	notes, err := ShowRecords(rdat.Bytes(), []int32{TypeCodeToFilterValue(typeCode("Note"))})
	require.NoError(t, err)
	require.Len(t, notes, 2)
}

type fakeUnknownBody struct{}

func (fakeUnknownBody) TypeCode() [4]byte { return typeCode("Xxxx") }
func (fakeUnknownBody) Encode() []byte    { return []byte("payload") }
