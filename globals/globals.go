package globals

import (
	"context"
	"math/rand"
	"sync"
)

// Globals is the per-caller process-wide state spec.md §5 describes:
// password data, the current session pointer, active-channel stats,
// time constants, miscellaneous flags, and a private random-number
// source. One value is created per top-level caller and threaded via
// context.Context; it is never accessed from two goroutines without
// either copying (behavior/function stacks) or going through its own
// Mutex-guarded fields.
type Globals struct {
	mu sync.Mutex

	// Passwords holds the plaintext passwords supplied for this
	// session, by access level, so repeated opens don't re-prompt.
	Passwords map[int]string

	// SessionPath is the currently open top-level session directory,
	// if any.
	SessionPath string

	// ActiveChannelCount tracks how many Channel values are open under
	// the current session, for diagnostics.
	ActiveChannelCount int

	// Flags carries miscellaneous process-wide boolean switches (e.g.
	// verbose diagnostics) a caller can set before opening a session.
	Flags map[string]bool

	rng *rand.Rand

	behaviorStack []Behavior
	refCount      int
}

type ctxKey struct{}

// New creates a Globals seeded with a fixed-looking but
// caller-controlled random source (MED never relies on Go's package
// level math/rand global state, matching spec.md's "random-number
// state" being part of the per-thread globals rather than ambient).
func New(seed int64) *Globals {
	return &Globals{
		Passwords: make(map[int]string),
		Flags:     make(map[string]bool),
		rng:       rand.New(rand.NewSource(seed)), //nolint:gosec
	}
}

// WithGlobals returns a context carrying g.
func WithGlobals(ctx context.Context, g *Globals) context.Context {
	return context.WithValue(ctx, ctxKey{}, g)
}

// FromContext returns the Globals carried by ctx, or, if none was
// attached, a new Globals seeded with 1 that is not stored in ctx.
func FromContext(ctx context.Context) *Globals {
	if g, ok := ctx.Value(ctxKey{}).(*Globals); ok {
		return g
	}

	return New(1)
}

// Retain/Release keep a reference count on g. The zero value returned by
// Release tells the caller this was the last reference. No open or free
// path in this module (fps, hierarchy, med) calls them; the count changes
// only when a caller invokes them directly.
func (g *Globals) Retain() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refCount++
}

func (g *Globals) Release() (remaining int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.refCount > 0 {
		g.refCount--
	}

	return g.refCount
}

// Float64 returns a random float64 from this Globals' private source.
// Nothing in the module's encode/decode paths calls it.
func (g *Globals) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rng.Float64()
}
