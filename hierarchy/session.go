package hierarchy

// Session is the top-level container: a named, ordered set of Channels
// (spec.md §3: "A session is a directory tree holding one or more
// channels").
type Session struct {
	LevelHeader

	channels    []*Channel
	channelsIdx map[string]int
}

// NewSession creates an empty Session rooted at path.
func NewSession(name, path string) *Session {
	return &Session{
		LevelHeader: LevelHeader{Kind: LevelSession, Name: name, Path: path},
		channelsIdx: make(map[string]int),
	}
}

// AddChannel appends ch, keyed by its Name.
func (s *Session) AddChannel(ch *Channel) {
	s.channelsIdx[ch.Name] = len(s.channels)
	s.channels = append(s.channels, ch)
}

// Channel returns the channel registered under name, or nil.
func (s *Session) Channel(name string) *Channel {
	i, ok := s.channelsIdx[name]
	if !ok {
		return nil
	}

	return s.channels[i]
}

// Channels returns every channel in insertion order.
func (s *Session) Channels() []*Channel { return s.channels }

// IntersectContigua propagates each channel's contigua list up to the
// session level by intersecting their time ranges (spec.md §4.6: "the
// contigua list is then propagated up the hierarchy by intersecting
// per-channel contigua at the session level"). A session-level
// contiguon exists only where every channel has overlapping coverage.
func (s *Session) IntersectContigua() []Contiguon {
	if len(s.channels) == 0 {
		return nil
	}

	result := s.channels[0].Contigua()
	for _, ch := range s.channels[1:] {
		result = intersectRuns(result, ch.Contigua())
	}

	return result
}

func intersectRuns(a, b []Contiguon) []Contiguon {
	var out []Contiguon

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := maxInt64(a[i].StartTime, b[j].StartTime)
		end := minInt64(a[i].EndTime, b[j].EndTime)

		if start < end {
			out = append(out, Contiguon{StartTime: start, EndTime: end})
		}

		if a[i].EndTime < b[j].EndTime {
			i++
		} else {
			j++
		}
	}

	return out
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
