package hierarchy

import (
	"testing"

	"github.com/medcore/med/section"
	"github.com/stretchr/testify/require"
)

func buildSegment(name string, start, end int64, entries []section.TSIndexEntry) *Segment {
	return &Segment{
		LevelHeader: LevelHeader{Kind: LevelSegment, Name: name, StartTime: start, EndTime: end},
		Index:       entries,
	}
}

func TestFindByTime_FirstOnOrAfter(t *testing.T) {
	entries := []section.TSIndexEntry{{StartTime: 0}, {StartTime: 100}, {StartTime: 200}}

	idx, err := FindByTime(entries, 150, FirstOnOrAfter)
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	idx, err = FindByTime(entries, 100, FirstOnOrAfter)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestFindByTime_LastOnOrBefore(t *testing.T) {
	entries := []section.TSIndexEntry{{StartTime: 0}, {StartTime: 100}, {StartTime: 200}}

	idx, err := FindByTime(entries, 150, LastOnOrBefore)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestFindByTime_Closest(t *testing.T) {
	entries := []section.TSIndexEntry{{StartTime: 0}, {StartTime: 100}, {StartTime: 200}}

	idx, err := FindByTime(entries, 60, Closest)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestFindByTime_OutOfRangeErrorsWithoutNoOverflows(t *testing.T) {
	entries := []section.TSIndexEntry{{StartTime: 0}, {StartTime: 100}}

	_, err := FindByTime(entries, 1000, FirstOnOrAfter)
	require.Error(t, err)
}

func TestFindByTime_OutOfRangeClampsWithNoOverflows(t *testing.T) {
	entries := []section.TSIndexEntry{{StartTime: 0}, {StartTime: 100}}

	idx, err := FindByTime(entries, 1000, FirstOnOrAfter|NoOverflows)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestBuildContigua_SplitsOnDiscontinuity(t *testing.T) {
	seg := buildSegment("seg0", 0, 400, []section.TSIndexEntry{
		{FileOffset: 0, StartTime: 0},
		{FileOffset: 56, StartTime: 100},
		{FileOffset: -200, StartTime: 300}, // discontinuous: wall-clock gap
		{FileOffset: 256, StartTime: 400},
	})

	contigua := seg.BuildContigua()
	require.Len(t, contigua, 2)
	require.Equal(t, Contiguon{StartTime: 0, EndTime: 100}, contigua[0])
	require.Equal(t, Contiguon{StartTime: 300, EndTime: 400}, contigua[1])
}

func TestChannel_SegmentsIntersecting(t *testing.T) {
	ch := NewChannel("LFP1")
	ch.AddSegment(buildSegment("seg0", 0, 100, nil))
	ch.AddSegment(buildSegment("seg1", 100, 200, nil))
	ch.AddSegment(buildSegment("seg2", 300, 400, nil))

	got := ch.SegmentsIntersecting(50, 150)
	require.Len(t, got, 2)
	require.Equal(t, "seg0", got[0].Name)
	require.Equal(t, "seg1", got[1].Name)
}

func TestSession_IntersectContigua(t *testing.T) {
	sess := NewSession("patient01", "/data/patient01")

	ch1 := NewChannel("LFP1")
	ch1.AddSegment(buildSegment("s0", 0, 500, []section.TSIndexEntry{{StartTime: 0}, {StartTime: 400}}))

	ch2 := NewChannel("LFP2")
	ch2.AddSegment(buildSegment("s0", 0, 500, []section.TSIndexEntry{{StartTime: 100}, {StartTime: 300}}))

	sess.AddChannel(ch1)
	sess.AddChannel(ch2)

	got := sess.IntersectContigua()
	require.Len(t, got, 1)
	require.Equal(t, int64(100), got[0].StartTime)
	require.Equal(t, int64(300), got[0].EndTime)
}

func TestConditionSlice_FillsDefaults(t *testing.T) {
	ch := NewChannel("LFP1")
	ch.AddSegment(buildSegment("s0", 10, 900, nil))

	sl, err := ConditionSlice(ch, Slice{})
	require.NoError(t, err)
	require.Equal(t, int64(10), sl.StartTime)
	require.Equal(t, int64(900), sl.EndTime)
}

func TestConditionSlice_RejectsInverted(t *testing.T) {
	ch := NewChannel("LFP1")
	ch.AddSegment(buildSegment("s0", 10, 900, nil))

	_, err := ConditionSlice(ch, Slice{StartTime: 800, EndTime: 100})
	require.Error(t, err)
}

func TestResolveSegments_NoneIntersect(t *testing.T) {
	ch := NewChannel("LFP1")
	ch.AddSegment(buildSegment("s0", 0, 100, nil))

	_, err := ResolveSegments(ch, Slice{StartTime: 500, EndTime: 600})
	require.Error(t, err)
}
