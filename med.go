// Package med provides convenient top-level wrappers tying the storage
// engine's packages (fps, cps, security, records, hierarchy) together
// into the read path spec.md §2 describes: a caller supplies a path set
// and a time/sample slice; the resolver opens the session, loads
// segment records, determines which segments intersect the slice,
// binary-searches each segment's index, reads and decrypts the
// overlapping blocks, and decodes them into sample buffers.
//
// # Package Structure
//
// This package is a thin orchestration layer. For fine-grained control
// over any one stage (compression options, explicit FPS handles, raw
// record access), use fps/cps/security/records/hierarchy directly.
package med

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/medcore/med/cps"
	"github.com/medcore/med/endian"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/fps"
	"github.com/medcore/med/globals"
	"github.com/medcore/med/hierarchy"
	"github.com/medcore/med/internal/hash"
	"github.com/medcore/med/records"
	"github.com/medcore/med/section"
	"github.com/medcore/med/security"
)

const (
	extData     = ".tdat"
	extIndex    = ".tidx"
	extRecData  = ".rdat"
	extRecIndex = ".ridx"
)

// Session ties a hierarchy.Session to the root directory it was opened
// from. Segment data/index files are reopened on demand by Read rather
// than held open for the session's lifetime (spec.md §3.4: FPSs are
// opened and closed per access, not pinned for a session's whole run).
type Session struct {
	*hierarchy.Session
	Root    string
	Globals *globals.Globals

	decodeCache *cps.DecodeCache
}

// OpenSession walks root — one subdirectory per channel, one group of
// same-basename {.tdat,.tidx,.rdat,.ridx} files per segment — and
// builds the in-memory session/channel/segment tree, loading each
// segment's resident time-series index and, if present, its Sgmt
// record (for SampleRate and Description).
func OpenSession(root string) (*Session, error) {
	channelDirs, err := os.ReadDir(root)
	if err != nil {
		return nil, errs.New(errs.FOPEN, root, err)
	}

	sess := hierarchy.NewSession(filepath.Base(root), root)

	for _, cd := range channelDirs {
		if !cd.IsDir() {
			continue
		}

		ch, err := openChannel(filepath.Join(root, cd.Name()), cd.Name())
		if err != nil {
			return nil, err
		}

		if len(ch.Segments()) == 0 {
			continue
		}

		sess.AddChannel(ch)
	}

	if len(sess.Channels()) == 0 {
		return nil, errs.New(errs.FGEN, root, errs.ErrEmptySession)
	}

	return &Session{Session: sess, Root: root, Globals: globals.New(1), decodeCache: cps.NewDecodeCache()}, nil
}

func openChannel(dir, name string) (*hierarchy.Channel, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.New(errs.FOPEN, dir, err)
	}

	bases := make(map[string]bool)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if ext := filepath.Ext(e.Name()); ext == extData {
			bases[strings.TrimSuffix(e.Name(), ext)] = true
		}
	}

	names := make([]string, 0, len(bases))
	for b := range bases {
		names = append(names, b)
	}

	sort.Strings(names)

	ch := hierarchy.NewChannel(name)

	for _, base := range names {
		seg, err := openSegment(dir, base)
		if err != nil {
			return nil, err
		}

		ch.AddSegment(seg)
	}

	return ch, nil
}

func openSegment(dir, base string) (*hierarchy.Segment, error) {
	path := filepath.Join(dir, base)

	idxBytes, err := os.ReadFile(path + extIndex)
	if err != nil {
		return nil, errs.New(errs.FOPEN, path+extIndex, err)
	}

	index, err := parseIndex(idxBytes)
	if err != nil {
		return nil, err
	}

	if len(index) == 0 {
		return nil, errs.New(errs.FGEN, path, errs.ErrShortRead)
	}

	seg := &hierarchy.Segment{
		LevelHeader: hierarchy.LevelHeader{
			Kind:      hierarchy.LevelSegment,
			Name:      base,
			Path:      path,
			UID:       hash.ID(path),
			StartTime: index[0].StartTime,
			EndTime:   index[len(index)-1].StartTime,
		},
		Index:        index,
		TotalSamples: index[len(index)-1].StartSampleNumber,
	}

	if rdat, rerr := os.ReadFile(path + extRecData); rerr == nil {
		// Records are read here with no password: a .rdat holding
		// any encrypted record makes ReadAll, and so OpenSession,
		// fail with errs.ErrNoPasswordSupplied. Encrypted records are
		// read through records.ReadAll with a password instead.
		entries, derr := records.ReadAll(rdat, "")
		if derr != nil {
			return nil, derr
		}

		for _, e := range entries {
			if sgmt, ok := e.Body.(records.Sgmt); ok {
				seg.SgmtDescription = sgmt.Description
				seg.SampleRate = sgmt.SampleRate

				break
			}
		}
	}

	return seg, nil
}

func parseIndex(data []byte) ([]section.TSIndexEntry, error) {
	engine := endian.GetLittleEndianEngine()

	out := make([]section.TSIndexEntry, 0, len(data)/section.TSIndexEntrySize)

	for off := 0; off+section.TSIndexEntrySize <= len(data); off += section.TSIndexEntrySize {
		e, err := section.ParseTSIndexEntry(data[off:], engine)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

// Samples is one channel's decoded sample buffer for a resolved slice:
// the samples of every block read, concatenated in time order.
type Samples struct {
	ChannelName string
	Values      []int32
}

// Read implements the read control flow of spec.md §2 for one channel:
// condition the slice against the channel's known bounds, resolve which
// segments intersect it, binary-search each segment's index for the
// overlapping block range, read and (if required) decrypt those blocks,
// and decode them into sample buffers.
//
// password is used only for segments whose blocks report
// BlockFlagEncrypted; pass "" for an unencrypted session.
func Read(sess *Session, channelName string, sl hierarchy.Slice, password string) (Samples, error) {
	ch := sess.Channel(channelName)
	if ch == nil {
		return Samples{}, errs.New(errs.GEN, channelName, errs.ErrChannelNotFound)
	}

	sl, err := hierarchy.ConditionSlice(ch, sl)
	if err != nil {
		return Samples{}, err
	}

	segs, err := hierarchy.ResolveSegments(ch, sl)
	if err != nil {
		return Samples{}, err
	}

	out := Samples{ChannelName: channelName}

	for _, seg := range segs {
		values, err := readSegment(sess.decodeCache, seg, sl, password)
		if err != nil {
			return Samples{}, err
		}

		out.Values = append(out.Values, values...)
	}

	return out, nil
}

// readSegment reads every block of seg overlapping sl and decodes them
// in index order, routing each decode through cache so repeated reads
// of the same block don't re-run the CPS pipeline.
func readSegment(cache *cps.DecodeCache, seg *hierarchy.Segment, sl hierarchy.Slice, password string) ([]int32, error) {
	first, last, err := blockRange(seg, sl)
	if err != nil {
		return nil, err
	}

	dataFP, err := fps.Open(seg.Path+extData, fps.ParseOpenMode("r"), "tdat")
	if err != nil {
		return nil, err
	}
	defer dataFP.Close()

	var key [security.KeySize]byte

	haveKey := false

	var values []int32

	for i := first; i <= last; i++ {
		entry := seg.Index[i]
		offset := entry.AbsoluteOffset()

		headerBytes, err := dataFP.ReadRange(offset, section.BlockHeaderSize)
		if err != nil {
			return nil, err
		}

		h := &section.CompressedBlockHeader{}
		if err := h.Parse(headerBytes); err != nil {
			return nil, err
		}

		block, err := dataFP.ReadRange(offset, int64(h.TotalBlockBytes))
		if err != nil {
			return nil, err
		}

		if h.IsEncrypted() {
			if !haveKey {
				if password == "" {
					return nil, errs.ErrNoPasswordSupplied
				}

				key = security.DeriveKey(password, true)
				haveKey = true
			}

			if err := security.DecryptBlockPayload(block, h, key); err != nil {
				return nil, err
			}
		}

		decoded, _, err := cache.DecodeBlock(seg.UID, offset, block)
		if err != nil {
			return nil, err
		}

		values = append(values, trimToSlice(decoded, entry, seg.SampleRate, sl)...)
	}

	return values, nil
}

// blockRange finds the index range [first, last] whose blocks overlap
// sl. Time-mode slices binary-search on StartTime; sample-number-mode
// slices binary-search on StartSampleNumber, segment-relative (spec.md
// §2, §4.6), matching how ResolveSegments already treats StartSamp/
// EndSamp as per-segment indices.
func blockRange(seg *hierarchy.Segment, sl hierarchy.Slice) (first, last int, err error) {
	if sl.UseSamples {
		first, err = hierarchy.FindBySampleNumber(seg.Index, sl.StartSamp, hierarchy.LastOnOrBefore|hierarchy.Relative|hierarchy.NoOverflows)
		if err != nil {
			return 0, 0, err
		}

		last, err = hierarchy.FindBySampleNumber(seg.Index, sl.EndSamp, hierarchy.LastOnOrBefore|hierarchy.Relative|hierarchy.NoOverflows)
		if err != nil {
			return 0, 0, err
		}

		return first, last, nil
	}

	first, err = hierarchy.FindByTime(seg.Index, sl.StartTime, hierarchy.LastOnOrBefore|hierarchy.NoOverflows)
	if err != nil {
		return 0, 0, err
	}

	last, err = hierarchy.FindByTime(seg.Index, sl.EndTime, hierarchy.LastOnOrBefore|hierarchy.NoOverflows)
	if err != nil {
		return 0, 0, err
	}

	return first, last, nil
}

// trimToSlice drops samples from decoded that fall outside sl. In
// sample-number mode it compares each sample's segment-relative index
// (entry.StartSampleNumber + its offset within the block) against
// [StartSamp, EndSamp], inclusive of both ends (testable property 10:
// a slice entirely within one segment returns exactly
// end_index-start_index+1 samples). In time mode it uses seg's
// SampleRate to compute each sample's μUTC time from the block's
// StartTime; without a known SampleRate the whole block is kept rather
// than guessed at.
func trimToSlice(decoded []int32, entry section.TSIndexEntry, sampleRate float64, sl hierarchy.Slice) []int32 {
	if sl.UseSamples {
		out := make([]int32, 0, len(decoded))

		for i, v := range decoded {
			idx := entry.StartSampleNumber + int64(i)
			if idx >= sl.StartSamp && idx <= sl.EndSamp {
				out = append(out, v)
			}
		}

		return out
	}

	if sampleRate <= 0 {
		return decoded
	}

	intervalUs := 1e6 / sampleRate

	out := make([]int32, 0, len(decoded))

	for i, v := range decoded {
		t := entry.StartTime + int64(float64(i)*intervalUs)
		if t >= sl.StartTime && t < sl.EndTime {
			out = append(out, v)
		}
	}

	return out
}
