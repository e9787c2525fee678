// Package layout implements the "Alignment & Self-Check" component
// (spec.md §2, item 9): every on-disk struct asserts, at package init time,
// that its documented wire size matches the constant the rest of the
// library relies on. This mirrors the fixed-size discipline the teacher's
// section package documents in its header comments (e.g. "HeaderSize = 32")
// but turns the documentation into a runtime-checked invariant.
package layout

import "fmt"

// MustSize panics if got != want. Called from an init() function in each
// section/*.go file that defines a fixed-size on-disk struct, so a layout
// regression fails at program startup rather than silently corrupting
// files on disk.
func MustSize(name string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("med: layout self-check failed: %s is %d bytes, want %d", name, got, want))
	}
}
