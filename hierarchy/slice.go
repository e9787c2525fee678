package hierarchy

import "github.com/medcore/med/errs"

// Slice is a resolved time or sample-number range request (spec.md §2:
// "a caller supplies a path set and a time/sample slice"). Zero
// StartTime/EndTime with UseSamples set means the range is expressed in
// sample numbers instead.
type Slice struct {
	StartTime  int64
	EndTime    int64
	UseSamples bool
	StartSamp  int64
	EndSamp    int64
}

// ConditionSlice normalizes a caller-supplied Slice against a channel's
// known bounds: an unset (zero) EndTime/EndSamp is filled in from the
// channel's last segment, and StartTime/EndTime ordering is validated.
// This is the Go equivalent of the original's condition_slice step,
// which defaulted partially-specified slice requests before resolution.
func ConditionSlice(ch *Channel, sl Slice) (Slice, error) {
	segs := ch.Segments()
	if len(segs) == 0 {
		return Slice{}, errs.ErrSegmentNotFound
	}

	if !sl.UseSamples {
		if sl.EndTime == 0 {
			sl.EndTime = segs[len(segs)-1].EndTime
		}

		if sl.StartTime == 0 {
			sl.StartTime = segs[0].StartTime
		}

		if sl.StartTime >= sl.EndTime {
			return Slice{}, errs.ErrInvalidSlice
		}

		return sl, nil
	}

	if sl.EndSamp == 0 {
		sl.EndSamp = segs[len(segs)-1].TotalSamples
	}

	if sl.StartSamp >= sl.EndSamp {
		return Slice{}, errs.ErrInvalidSlice
	}

	return sl, nil
}

// ResolveSegments returns every segment of ch intersecting sl, the set
// a reader must open to satisfy the slice (spec.md §2).
func ResolveSegments(ch *Channel, sl Slice) ([]*Segment, error) {
	if sl.UseSamples {
		// Sample-number ranges resolve against each segment's own
		// [0, TotalSamples) span, since sample numbers are
		// segment-relative unless FindMode's Relative bit says
		// otherwise at the block-lookup layer.
		var out []*Segment
		for _, seg := range ch.Segments() {
			if sl.StartSamp < seg.TotalSamples && sl.EndSamp > 0 {
				out = append(out, seg)
			}
		}

		if len(out) == 0 {
			return nil, errs.ErrSegmentNotFound
		}

		return out, nil
	}

	out := ch.SegmentsIntersecting(sl.StartTime, sl.EndTime)
	if len(out) == 0 {
		return nil, errs.ErrSegmentNotFound
	}

	return out, nil
}
