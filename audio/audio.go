// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// Source streams interleaved float32 samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples.
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Buffer holds decoded audio with one contiguous slice per channel.
//
// Every slice in Data has the same length, the buffer's frame capacity.
// Only the first FrameLength values of each slice hold decoded samples.
type Buffer struct {
	Format *goaudio.Format
	Data   [][]float32

	// FrameLength is the number of valid frames per channel.
	FrameLength int

	// SourceBitDepth is the bit depth the samples were decoded from.
	SourceBitDepth int
}

// NewBuffer allocates a buffer able to hold frameCapacity frames for every
// channel described by format.
func NewBuffer(format *goaudio.Format, frameCapacity int) *Buffer {
	if frameCapacity < 0 {
		frameCapacity = 0
	}

	channels := 0
	if format != nil {
		channels = format.NumChannels
	}

	// One backing array keeps the channels contiguous in memory.
	backing := make([]float32, channels*frameCapacity)
	data := make([][]float32, channels)
	for ch := range channels {
		data[ch] = backing[ch*frameCapacity : (ch+1)*frameCapacity : (ch+1)*frameCapacity]
	}

	return &Buffer{
		Format: format,
		Data:   data,
	}
}

func (b *Buffer) NumChannels() int { return len(b.Data) }

// FrameCapacity is the number of frames each channel slice can hold.
func (b *Buffer) FrameCapacity() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Channel returns the valid samples of channel ch.
func (b *Buffer) Channel(ch int) []float32 {
	return b.Data[ch][:b.FrameLength]
}

// Interleaved copies the valid frames into a go-audio Float32Buffer laid out
// frame-major, channel-minor.
func (b *Buffer) Interleaved() *goaudio.Float32Buffer {
	channels := len(b.Data)
	out := make([]float32, b.FrameLength*channels)

	for ch, samples := range b.Data {
		for f := range b.FrameLength {
			out[f*channels+ch] = samples[f]
		}
	}

	return &goaudio.Float32Buffer{
		Format:         b.Format,
		Data:           out,
		SourceBitDepth: b.SourceBitDepth,
	}
}
