package hierarchy

// LevelKind tags which concrete level a LevelHeader belongs to.
type LevelKind int

const (
	LevelSession LevelKind = iota
	LevelChannel
	LevelSegment
)

// LevelHeader is the tagged-value polymorphism spec.md's Design Notes
// require in place of the original's anonymous-struct/pointer-cast
// idiom: Session, Channel, and Segment each embed one by value and
// switch on Kind rather than reinterpreting a shared leading prefix.
type LevelHeader struct {
	Kind      LevelKind
	Name      string
	Path      string
	UID       uint64
	StartTime int64
	EndTime   int64
}
