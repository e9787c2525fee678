// Package cps implements the Compression Processing Structure (spec.md
// §4.4): the block-level encode/decode pipeline that turns a segment's
// si4 samples into a CompressedBlockHeader plus payload, and back.
//
// It is grounded on the teacher's blob.NumericEncoder/NumericDecoder
// lifecycle (blob/numeric_encoder.go, blob/numeric_decoder.go) —
// Finish() clones the header, computes payload offsets, and assembles
// one contiguous buffer from a pooled ByteBuffer — generalized from
// mebo's per-metric timestamp/value/tag columns to MED's single si4
// sample stream per block, with block_flags' algorithm bit replacing
// mebo's per-column codec selection.
package cps
