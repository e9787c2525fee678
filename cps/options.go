package cps

import (
	"github.com/medcore/med/format"
	"github.com/medcore/med/internal/options"
)

// EncoderConfig holds a BlockEncoder's tunables, set via functional
// Option values the way the teacher's NumericEncoderConfig does.
type EncoderConfig struct {
	algorithm     Algorithm
	fallThrough   bool // CPS_DF_FALL_THROUGH_TO_BEST_ENCODING, default true
	vdsThreshold  float64
	channelNumber uint32
	detrend       bool

	noiseScores    func(samples []int32) []float64
	noiseCodecType format.CompressionType
}

// Option configures an EncoderConfig.
type Option = options.Option[*EncoderConfig]

func defaultConfig() *EncoderConfig {
	return &EncoderConfig{
		algorithm:      RED2,
		fallThrough:    true,
		noiseCodecType: format.CompressionZstd,
	}
}

// WithAlgorithm selects the block codec to attempt first.
func WithAlgorithm(a Algorithm) Option {
	return options.NoError(func(c *EncoderConfig) { c.algorithm = a })
}

// WithFallThrough toggles CPS_DF_FALL_THROUGH_TO_BEST_ENCODING: when
// true (the default), the encoder also tries {RED2, MBE} and keeps
// whichever total block is smallest (spec.md §4.4 edge cases).
func WithFallThrough(v bool) Option {
	return options.NoError(func(c *EncoderConfig) { c.fallThrough = v })
}

// WithVDSThreshold sets the [0.0, 10.0] aggressiveness VDS blocks use.
// VDS decoding interpolates between critical points, so it is
// approximate at every threshold, including 0.0.
func WithVDSThreshold(threshold float64) Option {
	return options.NoError(func(c *EncoderConfig) { c.vdsThreshold = threshold })
}

// WithChannelNumber sets the acquisition channel number a multiplexed
// source tags every block it emits with.
func WithChannelNumber(n uint32) Option {
	return options.NoError(func(c *EncoderConfig) { c.channelNumber = n })
}

// WithDetrend enables removing a fitted linear trend (spec.md §4.4's
// intercept/gradient optional parameters) from samples before the
// derivative/range-coding stage, storing the fit in the block's
// parameter region so decode can retrend.
func WithDetrend(v bool) Option {
	return options.NoError(func(c *EncoderConfig) { c.detrend = v })
}

// WithNoiseScores enables the discretionary-region noise-scores blob
// (spec.md's discretionary region carries aux diagnostic payloads,
// per original_source/): score is called with the block's raw samples
// before encoding, and its result is compressed with codecType and
// stored alongside the block.
func WithNoiseScores(score func(samples []int32) []float64, codecType format.CompressionType) Option {
	return options.NoError(func(c *EncoderConfig) {
		c.noiseScores = score
		c.noiseCodecType = codecType
	})
}
