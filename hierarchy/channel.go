package hierarchy

// Channel is a named, ordered set of Segments (spec.md §3). The
// container shape — ordered children plus O(1) lookup by name — mirrors
// the teacher's blob.NumericBlobSet: a Channel is a "segment set" the
// same way a NumericBlobSet is a "blob set".
type Channel struct {
	LevelHeader

	segments    []*Segment
	segmentsIdx map[string]int
}

// NewChannel creates an empty Channel.
func NewChannel(name string) *Channel {
	return &Channel{
		LevelHeader: LevelHeader{Kind: LevelChannel, Name: name},
		segmentsIdx: make(map[string]int),
	}
}

// AddSegment appends seg, keyed by its Name, preserving insertion
// order for iteration.
func (c *Channel) AddSegment(seg *Segment) {
	c.segmentsIdx[seg.Name] = len(c.segments)
	c.segments = append(c.segments, seg)
}

// Segment returns the segment registered under name, or nil.
func (c *Channel) Segment(name string) *Segment {
	i, ok := c.segmentsIdx[name]
	if !ok {
		return nil
	}

	return c.segments[i]
}

// Segments returns every segment in insertion order.
func (c *Channel) Segments() []*Segment { return c.segments }

// SegmentsIntersecting returns every segment whose bounds overlap
// [start, end), in order — the set a slice read needs to open
// (spec.md §2: "determines which segments intersect the slice").
func (c *Channel) SegmentsIntersecting(start, end int64) []*Segment {
	var out []*Segment

	for _, seg := range c.segments {
		if seg.Intersects(start, end) {
			out = append(out, seg)
		}
	}

	return out
}

// Contigua returns the channel-level contigua list: each segment's own
// BuildContigua results, concatenated in segment order. Propagating
// these further up to a session-level intersection is IntersectContigua.
func (c *Channel) Contigua() []Contiguon {
	var out []Contiguon
	for _, seg := range c.segments {
		out = append(out, seg.BuildContigua()...)
	}

	return out
}
