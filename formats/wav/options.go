// SPDX-License-Identifier: EPL-2.0

package wav

import "log/slog"

// DefaultReadBlockFrames is the number of frames fetched from the byte
// source per underlying read.
const DefaultReadBlockFrames = 1024

// Option configures Parse, Open and NewReader.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	strict      bool
	blockFrames int
}

func defaultOptions() *options {
	return &options{
		logger:      slog.New(slog.DiscardHandler),
		blockFrames: DefaultReadBlockFrames,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger routes parse diagnostics (skipped chunks, clamped data
// regions, rejections) to logger. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrict rejects fmt chunks whose declared block align or byte rate
// disagree with the channel count, sample rate and bit depth.
//
// By default the declared values are ignored and recomputed.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithReadBlockFrames sets how many frames are read from the source at a
// time. Values below 1 keep the default.
func WithReadBlockFrames(frames int) Option {
	return func(o *options) {
		if frames > 0 {
			o.blockFrames = frames
		}
	}
}
