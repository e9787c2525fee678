// Package fps implements the File Processing Structure (spec.md §4.2):
// the unit of file I/O that owns a universal header, an open-mode set,
// and (for read-mostly access) a residency bitmap over its data region.
//
// It unifies three open styles — full-file read into heap, slice read
// of a sub-region, and on-demand "memory-mapped" read — behind one
// type. The on-demand style is implemented as a residency bitmap over
// buffered os.File reads rather than a real OS mmap(2) call: no example
// repository in the retrieval pack wires a cross-platform mmap
// dependency, and a hand-rolled syscall/golang.org/x/sys mmap would be
// platform-specific in a way a from-scratch implementation here can't
// validate without running the toolchain. The bitmap contract — only
// read blocks not yet resident — is preserved exactly, just over
// regular reads (documented as a stdlib-only component in DESIGN.md).
package fps
