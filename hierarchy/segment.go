package hierarchy

import "github.com/medcore/med/section"

// Segment is one contiguous-on-disk recording unit within a Channel
// (spec.md §3, "Session/Channel/Segment"). Index holds its full
// time-series index, kept resident once loaded so FindByTime/
// FindBySampleNumber can binary-search without re-reading the .tidx
// file on every slice query.
type Segment struct {
	LevelHeader

	Index        []section.TSIndexEntry
	SampleRate   float64
	TotalSamples int64

	// SgmtDescription is the free-text Sgmt record description, if one
	// was found in this segment's .rdat (spec.md §5 "Sgmt"); empty
	// otherwise.
	SgmtDescription string
}

// Contiguon is a wall-clock-continuous run of blocks within a segment,
// discovered by BuildContigua.
type Contiguon struct {
	StartTime int64
	EndTime   int64
}

// BuildContigua walks s.Index and splits it at every discontinuity flag,
// opening a new contiguon at the flagged block's StartTime. A
// contiguon's EndTime is the StartTime of its last block; the duration
// of that last block is not added.
func (s *Segment) BuildContigua() []Contiguon {
	if len(s.Index) == 0 {
		return nil
	}

	var out []Contiguon

	cur := Contiguon{StartTime: s.Index[0].StartTime}
	for i := 1; i < len(s.Index); i++ {
		if s.Index[i].IsDiscontinuous() {
			cur.EndTime = s.Index[i-1].StartTime
			out = append(out, cur)
			cur = Contiguon{StartTime: s.Index[i].StartTime}
		}
	}
	cur.EndTime = s.Index[len(s.Index)-1].StartTime

	return append(out, cur)
}

// FindBlock locates the index entry covering target under mode,
// delegating to FindByTime.
func (s *Segment) FindBlock(target int64, mode FindMode) (section.TSIndexEntry, int, error) {
	idx, err := FindByTime(s.Index, target, mode)
	if err != nil {
		return section.TSIndexEntry{}, -1, err
	}

	return s.Index[idx], idx, nil
}

// Intersects reports whether [start, end) overlaps this segment's
// [StartTime, EndTime) bounds, the test the slice resolver applies
// before opening a segment's data/index files (spec.md §2).
func (s *Segment) Intersects(start, end int64) bool {
	return start < s.EndTime && end > s.StartTime
}
