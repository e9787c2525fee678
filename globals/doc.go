// Package globals implements MED's process-wide shared state (spec.md
// §5): per-caller Globals values, the behavior directive stack, the
// file-lock registry with its inverse semaphore, and a small worker
// dispatcher.
//
// Go has no thread-local storage, so "one process-globals per top-level
// caller thread" becomes "one *Globals carried on a context.Context"
// (spec.md Design Notes, "global mutable state") via WithGlobals and
// FromContext. The fps, cps and hierarchy packages take no context and
// do not read it. A Dispatch job is a plain closure; a job that needs
// its caller's Globals captures it (or the context) itself.
package globals
