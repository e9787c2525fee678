package cps

import (
	"github.com/medcore/med/crc"
	"github.com/medcore/med/errs"
	"github.com/medcore/med/internal/options"
	"github.com/medcore/med/regression"
	"github.com/medcore/med/section"
)

// BlockEncoder turns one segment's si4 samples into a complete
// compressed block (header + payload), the unit cps.DecodeBlock and
// the records/hierarchy packages read back.
//
// Not thread-safe; not reusable after EncodeBlock returns, mirroring
// the teacher's NumericEncoder lifecycle.
type BlockEncoder struct {
	cfg *EncoderConfig
}

// NewBlockEncoder creates a BlockEncoder with the given options applied
// over sensible defaults (RED2, fall-through enabled).
func NewBlockEncoder(opts ...Option) (*BlockEncoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &BlockEncoder{cfg: cfg}, nil
}

// EncodeBlock compresses samples starting at startTime (μUTC) into a
// complete block. Per spec.md §4.4, empty blocks (len(samples) == 0)
// are not written; callers should skip the call rather than invoke it.
func (e *BlockEncoder) EncodeBlock(samples []int32, startTime int64, discontinuous bool) ([]byte, error) {
	if len(samples) == 0 {
		return nil, errs.New(errs.CMP, "refusing to encode an empty block", nil)
	}

	var paramRegion, discretionaryRegion []byte

	toEncode := samples
	if e.cfg.detrend {
		line := regression.FitSamples(samples)
		toEncode = regression.Detrend(samples, line)
		paramRegion = encodeLineParameters(line)
	}

	algo, payload := e.selectEncoding(toEncode)

	h := section.NewCompressedBlockHeader()
	h.SetAlgorithm(algo.flag())
	h.SetDiscontinuous(discontinuous)
	h.StartTime = startTime
	h.AcquisitionChannelNumber = e.cfg.channelNumber
	h.NumberOfSamples = uint32(len(samples)) //nolint:gosec
	if len(paramRegion) > 0 {
		h.ParameterRegionBytes = uint16(len(paramRegion)) //nolint:gosec
		h.SetParam(section.ParamFlagIntercept, true)
		h.SetParam(section.ParamFlagGradient, true)
	}

	if e.cfg.noiseScores != nil {
		blob, err := encodeNoiseScores(e.cfg.noiseScores(samples), e.cfg.noiseCodecType)
		if err != nil {
			return nil, err
		}

		discretionaryRegion = blob
		h.DiscretionaryRegionBytes = uint16(len(blob)) //nolint:gosec
		h.SetParam(section.ParamFlagNoiseScores, true)
	}

	h.TotalHeaderBytes = section.BlockHeaderSize + h.RecordRegionBytes + h.ParameterRegionBytes +
		h.ProtectedRegionBytes + h.DiscretionaryRegionBytes + h.ModelRegionBytes
	h.TotalBlockBytes = uint32(int(h.TotalHeaderBytes) + len(payload)) //nolint:gosec

	block := make([]byte, section.BlockHeaderSize, int(h.TotalHeaderBytes)+len(payload))
	h.WriteToSlice(block)
	block = append(block, paramRegion...)
	block = append(block, discretionaryRegion...)
	block = append(block, payload...)

	// BlockCRC covers [Flags..end), i.e. everything after BlockStartUID
	// and BlockCRC itself (spec.md §3.3).
	h.BlockCRC = crc.Checksum(block[12:])
	h.WriteToSlice(block)

	return block, nil
}

// selectEncoding runs the configured algorithm, and when fall-through
// is enabled also tries RED2 and MBE, keeping whichever payload is
// smallest (spec.md §4.4: "the encoder tries the configured algorithm
// and falls back to whichever of {RED2, MBE} produces the smaller
// total block").
func (e *BlockEncoder) selectEncoding(samples []int32) (Algorithm, []byte) {
	bestAlgo := e.cfg.algorithm
	best := bestAlgo.encode(samples, e.cfg.vdsThreshold)

	if !e.cfg.fallThrough {
		return bestAlgo, best
	}

	for _, candidate := range [...]Algorithm{RED2, MBE} {
		if candidate == bestAlgo {
			continue
		}

		payload := candidate.encode(samples, e.cfg.vdsThreshold)
		if len(payload) < len(best) {
			bestAlgo, best = candidate, payload
		}
	}

	return bestAlgo, best
}
