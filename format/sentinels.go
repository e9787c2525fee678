package format

import "math"

// Numeric sentinels ubiquitous in the binary layout (spec.md §6.2).
const (
	// UUTCNoEntry is si8 min, used to mark an unset microsecond-UTC field.
	UUTCNoEntry int64 = math.MinInt64
	// SampleNumberNoEntry shares UUTCNoEntry's bit pattern.
	SampleNumberNoEntry int64 = UUTCNoEntry

	// RateNoEntry marks an unset sampling frequency.
	RateNoEntry float64 = -1.0
	// RateVariable marks a channel with no fixed sampling frequency.
	RateVariable float64 = -2.0

	// SegmentNumberNoEntry is zero; segments number from 1.
	SegmentNumberNoEntry int32 = 0

	// BeginningOfTime and EndOfTime bound the representable time range.
	BeginningOfTime int64 = 0
	EndOfTime       int64 = math.MaxInt64

	// CRCNoEntry marks an unset/unvalidated CRC-32 field.
	CRCNoEntry uint32 = 0
	// CRCPolynomial is the fixed CRC-32 (IEEE) polynomial used throughout MED.
	CRCPolynomial uint32 = 0xEDB88320
)

// NoEntry sentinel offsets used by Slice (spec.md §3.1) and FPS (spec.md §6.3).
const (
	NoEntryIndex int64 = -1 // slice start_index/end_index unset
	NoEntrySeg   int32 = 0  // slice start_seg_num/end_seg_num unset
)
