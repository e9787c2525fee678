// Package records implements the built-in annotation record bodies
// (Sgmt, Note, Seiz, SyLg, NlxP, Curs, Epoc, EDFA, Stat, ESti, CSti, HFOc)
// that sit behind a section.RecordHeader in a .rdat file, plus the
// registry that maps a 4-byte type code to a decoder.
//
// The fixed-layout bodies are grounded on the byte offsets the original
// record-definition header documents per type/version; the registry
// itself follows the teacher's collision-detection idiom (a map guarded
// against conflicting re-registration) but keyed on type code rather
// than metric-name hash, since record types are a small closed set
// declared at init time rather than discovered at encode time.
package records
