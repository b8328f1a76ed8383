// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/ik5/wavreader/audio"
	"github.com/ik5/wavreader/utils"
)

var _ audio.Source = (*Reader)(nil)

// Reader decodes the sample data of one WAV stream and keeps a frame cursor
// into it. A Reader is not safe for concurrent use.
type Reader struct {
	src    io.ReadSeeker
	closer io.Closer // nil when the source is not owned

	format    Format
	region    DataRegion
	numFrames int64

	// pos is the next frame to decode. streamPos is the byte offset the
	// source is known to be at, or -1 after an error.
	pos       int64
	streamPos int64

	decode      func([]byte) float32
	block       []byte
	blockFrames int

	logger *slog.Logger
	closed bool
}

// Open opens the file at path and parses its header. The file is closed
// again if parsing fails; otherwise it belongs to the Reader until Close.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindFile, "open", err)
	}

	r, err := newReader(f, newOptions(opts))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f

	return r, nil
}

// NewReader parses the header of rs, starting at its current offset.
// The Reader assumes it is the only user of rs; Close does not close it.
func NewReader(rs io.ReadSeeker, opts ...Option) (*Reader, error) {
	return newReader(rs, newOptions(opts))
}

func newReader(rs io.ReadSeeker, o *options) (*Reader, error) {
	format, region, err := parse(rs, o)
	if err != nil {
		return nil, err
	}

	return &Reader{
		src:         rs,
		format:      format,
		region:      region,
		numFrames:   region.NumFrames(format.BlockAlign),
		streamPos:   -1,
		decode:      sampleDecoder(format),
		block:       make([]byte, o.blockFrames*format.BlockAlign),
		blockFrames: o.blockFrames,
		logger:      o.logger,
	}, nil
}

func sampleDecoder(f Format) func([]byte) float32 {
	if f.Encoding == EncodingFloat {
		return utils.Float32LEToFloat32
	}

	switch f.BitsPerSample {
	case 8:
		return utils.PCM8ToFloat32
	case 16:
		return utils.PCM16ToFloat32
	case 24:
		return utils.PCM24ToFloat32
	default:
		return utils.PCM32ToFloat32
	}
}

func (r *Reader) Format() Format         { return r.format }
func (r *Reader) DataRegion() DataRegion { return r.region }
func (r *Reader) NumChannels() int       { return r.format.NumChannels }
func (r *Reader) BitDepth() int          { return r.format.BitsPerSample }
func (r *Reader) NumFrames() int64       { return r.numFrames }

// Position is the index of the next frame Read will decode.
func (r *Reader) Position() int64 { return r.pos }

// SampleRate and Channels satisfy audio.Source.
func (r *Reader) SampleRate() int { return r.format.SampleRate }
func (r *Reader) Channels() int   { return r.format.NumChannels }

// BufSize is the number of interleaved samples fetched per underlying read.
func (r *Reader) BufSize() int { return r.blockFrames * r.format.NumChannels }

// Duration is the length of the stream in seconds.
func (r *Reader) Duration() float64 {
	return float64(r.numFrames) / float64(r.format.SampleRate)
}

// DurationTime is Duration as a time.Duration, truncated to the nanosecond.
func (r *Reader) DurationTime() time.Duration {
	rate := int64(r.format.SampleRate)
	secs := r.numFrames / rate
	rem := r.numFrames % rate
	return time.Duration(secs)*time.Second + time.Duration(rem*int64(time.Second)/rate)
}

// ReadFrames decodes up to frameCapacity frames into a new buffer. The
// buffer's FrameLength is lower than frameCapacity when the stream ends
// first; reaching the end is not an error.
func (r *Reader) ReadFrames(frameCapacity int) (*audio.Buffer, error) {
	if r.closed {
		return nil, closedError("read")
	}
	if frameCapacity < 0 {
		return nil, newError(KindInvalidParam, "read", fmt.Errorf("%w: %d", ErrNegativeCapacity, frameCapacity))
	}

	buf := audio.NewBuffer(r.format.AudioFormat(), frameCapacity)
	if _, err := r.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Read decodes up to buf.FrameCapacity() frames into buf, one slice per
// channel, and advances the cursor. It returns the number of frames decoded,
// which is 0 once the cursor is at the end of the stream.
func (r *Reader) Read(buf *audio.Buffer) (int, error) {
	if r.closed {
		return 0, closedError("read")
	}
	if buf.NumChannels() != r.format.NumChannels {
		return 0, newError(KindInvalidParam, "read", fmt.Errorf("%w: buffer has %d, stream has %d",
			ErrChannelMismatch, buf.NumChannels(), r.format.NumChannels))
	}

	buf.FrameLength = 0
	buf.SourceBitDepth = r.format.BitsPerSample

	channels := r.format.NumChannels
	bps := r.format.BytesPerSample()
	blockAlign := r.format.BlockAlign

	n, err := r.readBlocks(int64(buf.FrameCapacity()), func(raw []byte, first int) {
		for f := 0; f*blockAlign < len(raw); f++ {
			frame := raw[f*blockAlign:]
			for ch := range channels {
				buf.Data[ch][first+f] = r.decode(frame[ch*bps:])
			}
		}
	})
	if err != nil {
		return 0, err
	}

	buf.FrameLength = n
	return n, nil
}

// ReadSamples fills dst with interleaved samples, as audio.Source requires.
// len(dst) must be a multiple of the channel count.
func (r *Reader) ReadSamples(dst []float32) (int, error) {
	if r.closed {
		return 0, closedError("read")
	}
	if len(dst)%r.format.NumChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if r.pos >= r.numFrames {
		return 0, io.EOF
	}

	channels := r.format.NumChannels
	bps := r.format.BytesPerSample()

	n, err := r.readBlocks(int64(len(dst)/channels), func(raw []byte, first int) {
		out := dst[first*channels:]
		for i := 0; i*bps < len(raw); i++ {
			out[i] = r.decode(raw[i*bps:])
		}
	})
	if err != nil {
		return 0, err
	}

	return n * channels, nil
}

// readBlocks reads min(capacity, remaining) frames starting at the cursor,
// handing each block of raw bytes to sink together with the index of its
// first frame. The cursor only moves if every block was read.
func (r *Reader) readBlocks(capacity int64, sink func(raw []byte, first int)) (int, error) {
	const op = "read"

	want := min(capacity, r.numFrames-r.pos)
	if want <= 0 {
		return 0, nil
	}

	blockAlign := int64(r.format.BlockAlign)
	offset := r.region.Offset + r.pos*blockAlign

	if r.streamPos != offset {
		if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
			r.streamPos = -1
			return 0, newError(KindFile, op, err)
		}
		r.streamPos = offset
	}

	for done := int64(0); done < want; {
		frames := min(want-done, int64(r.blockFrames))
		raw := r.block[:frames*blockAlign]

		if _, err := io.ReadFull(r.src, raw); err != nil {
			r.streamPos = -1
			return 0, newError(KindFile, op, fmt.Errorf("%w: frame %d: %w", ErrTruncated, r.pos+done, err))
		}
		r.streamPos += int64(len(raw))

		sink(raw, int(done))
		done += frames
	}

	r.pos += want
	return int(want), nil
}

// Seek moves the cursor to the frame nearest to seconds. Seeking to exactly
// the end of the stream is allowed; the next read then returns no frames.
// The source itself is repositioned by the next read.
func (r *Reader) Seek(seconds float64) error {
	const op = "seek"

	if r.closed {
		return closedError(op)
	}
	if math.IsNaN(seconds) || seconds < 0 {
		return newError(KindInvalidParam, op, fmt.Errorf("%w: %v", ErrNegativeSeek, seconds))
	}

	frame := math.Round(seconds * float64(r.format.SampleRate))
	if frame > float64(r.numFrames) {
		return newError(KindInvalidParam, op, fmt.Errorf("%w: %vs is frame %.0f of %d",
			ErrSeekPastEnd, seconds, frame, r.numFrames))
	}

	r.pos = int64(frame)
	return nil
}

// SeekFrame moves the cursor to frame, 0 <= frame <= NumFrames().
func (r *Reader) SeekFrame(frame int64) error {
	const op = "seek"

	if r.closed {
		return closedError(op)
	}
	if frame < 0 {
		return newError(KindInvalidParam, op, fmt.Errorf("%w: frame %d", ErrNegativeSeek, frame))
	}
	if frame > r.numFrames {
		return newError(KindInvalidParam, op, fmt.Errorf("%w: frame %d of %d", ErrSeekPastEnd, frame, r.numFrames))
	}

	r.pos = frame
	return nil
}

// Close releases the file opened by Open. Calling it again is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.block = nil

	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return newError(KindFile, "close", err)
	}

	r.logger.Debug("closed wav reader")
	return nil
}
