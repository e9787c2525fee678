package hierarchy

import (
	"sort"

	"github.com/medcore/med/errs"
	"github.com/medcore/med/section"
)

// FindMode packs the block-lookup semantics spec.md §4.6 names into one
// bitmask: exactly one of the five positional bits plus the two
// modifier bits (Relative, NoOverflows).
type FindMode int

const (
	Closest FindMode = 1 << iota
	LastBefore
	FirstOnOrAfter
	LastOnOrBefore
	FirstAfter

	Relative    // sample numbers are segment-relative rather than session-absolute
	NoOverflows // clamp into [0, len(entries)-1] instead of returning an out-of-range index
)

func (m FindMode) has(bit FindMode) bool { return m&bit != 0 }

// FindByTime searches entries (assumed sorted ascending by StartTime, per
// spec.md's index-ordering invariant) for the entry satisfying mode
// relative to target. entries is the segment's full time-series index.
func FindByTime(entries []section.TSIndexEntry, target int64, mode FindMode) (int, error) {
	return find(len(entries), mode, func(i int) int64 { return entries[i].StartTime }, target)
}

// FindBySampleNumber searches entries for the entry satisfying mode
// relative to target, a sample number. When mode has Relative, target
// is interpreted relative to entries[0]'s StartSampleNumber.
func FindBySampleNumber(entries []section.TSIndexEntry, target int64, mode FindMode) (int, error) {
	base := int64(0)
	if mode.has(Relative) && len(entries) > 0 {
		base = entries[0].StartSampleNumber
	}

	return find(len(entries), mode, func(i int) int64 { return entries[i].StartSampleNumber - base }, target+0)
}

func find(n int, mode FindMode, key func(i int) int64, target int64) (int, error) {
	if n == 0 {
		return -1, errs.ErrSegmentNotFound
	}

	// idx is the first index whose key >= target.
	idx := sort.Search(n, func(i int) bool { return key(i) >= target })

	switch {
	case mode.has(FirstOnOrAfter):
		if idx == n {
			return clampOrErr(n-1, n, mode)
		}

		return idx, nil

	case mode.has(FirstAfter):
		for idx < n && key(idx) <= target {
			idx++
		}

		if idx == n {
			return clampOrErr(n-1, n, mode)
		}

		return idx, nil

	case mode.has(LastOnOrBefore):
		if idx < n && key(idx) == target {
			return idx, nil
		}

		if idx == 0 {
			return clampOrErr(0, n, mode)
		}

		return idx - 1, nil

	case mode.has(LastBefore):
		if idx == 0 {
			return clampOrErr(0, n, mode)
		}

		return idx - 1, nil

	default: // Closest
		if idx == 0 {
			return 0, nil
		}

		if idx == n {
			return n - 1, nil
		}

		if key(idx)-target < target-key(idx-1) {
			return idx, nil
		}

		return idx - 1, nil
	}
}

func clampOrErr(clamped, n int, mode FindMode) (int, error) {
	if mode.has(NoOverflows) {
		return clamped, nil
	}

	return -1, errs.ErrSegmentNotFound
}
