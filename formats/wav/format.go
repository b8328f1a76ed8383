// SPDX-License-Identifier: EPL-2.0

package wav

import (
	goaudio "github.com/go-audio/audio"
)

// Format tags from the fmt chunk.
const (
	FormatTagPCM        uint16 = 0x0001
	FormatTagIEEEFloat  uint16 = 0x0003
	FormatTagExtensible uint16 = 0xFFFE
)

// Encoding is how samples are stored in the data chunk.
type Encoding uint8

const (
	EncodingPCM Encoding = iota + 1
	EncodingFloat
)

func (e Encoding) String() string {
	switch e {
	case EncodingPCM:
		return "PCM"
	case EncodingFloat:
		return "IEEE float"
	default:
		return "unknown"
	}
}

// Format is the stream description parsed from the fmt chunk.
type Format struct {
	Encoding Encoding
	// FormatTag is the tag declared in the file. For WAVE_FORMAT_EXTENSIBLE
	// it stays 0xFFFE while Encoding reflects the SubFormat.
	FormatTag     uint16
	NumChannels   int
	SampleRate    int
	BitsPerSample int
	// BlockAlign is NumChannels * BitsPerSample/8, the size of one frame.
	BlockAlign int
}

func (f Format) BytesPerSample() int { return f.BitsPerSample / 8 }

// AudioFormat returns the go-audio descriptor of the stream.
func (f Format) AudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: f.NumChannels,
		SampleRate:  f.SampleRate,
	}
}

// DataRegion locates the sample bytes inside the byte source.
// Length is always a whole number of frames.
type DataRegion struct {
	Offset int64
	Length int64
}

// NumFrames returns the number of complete frames in the region.
func (d DataRegion) NumFrames(blockAlign int) int64 {
	if blockAlign <= 0 {
		return 0
	}
	return d.Length / int64(blockAlign)
}
