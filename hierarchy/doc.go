// Package hierarchy implements the in-memory session → channel →
// segment tree (spec.md §4.6): LevelHeader tagging, ordered/keyed
// child containers, time/sample slice resolution, contigua discovery,
// and time-series block lookup.
//
// The container shape (ordered children plus key lookup) is grounded
// on the teacher's blob.NumericBlobSet/TextBlobSet: a Channel is a
// "segment set" exactly as a NumericBlobSet is a "blob set" — entries
// appended in order, looked up by a stable key, iterated in order.
// LevelHeader itself is a plain embedded-by-value struct switched on
// an explicit Kind field (spec.md's Design Notes reject the original's
// anonymous-struct-polymorphism/pointer-cast idiom outright).
package hierarchy
