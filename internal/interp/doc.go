// Package interp implements the critical-point extraction and makima
// reconstruction VDS (Vectorized Data Stream) blocks use (spec.md
// §4.4: "Identifies critical points (peaks and troughs) of an
// LFP-filtered signal, plus zero-crossings... reconstructs samples by
// makima/spline interpolation between the critical points").
//
// No example repo in this project's retrieval pack carries a spline or
// interpolation library (see DESIGN.md), so this package is built on
// math alone — the modified Akima algorithm ("makima", Akima 1970 plus
// the 1991 modified-weight variant MATLAB popularized) has no
// off-the-shelf Go implementation in the corpus to adopt instead.
package interp
