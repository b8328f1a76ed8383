// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds RIFF/WAVE byte streams for tests.
//
// Chunks are emitted in the order they are added, so tests can produce
// layouts real writers emit (JUNK/LIST before fmt, data before fmt,
// odd sized chunks) as well as malformed ones.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Format tags used by the fixtures.
const (
	FormatPCM        uint16 = 1
	FormatADPCM      uint16 = 2
	FormatIEEEFloat  uint16 = 3
	FormatALaw       uint16 = 6
	FormatMPEGLayer3 uint16 = 0x55
	FormatExtensible uint16 = 0xFFFE
)

// WAV accumulates the chunks of a WAVE file.
type WAV struct {
	chunks bytes.Buffer
}

// NewWAV starts an empty WAVE body.
func NewWAV() *WAV {
	return &WAV{}
}

// Chunk appends an arbitrary chunk, adding the pad byte for odd sizes.
func (w *WAV) Chunk(id string, data []byte) *WAV {
	return w.ChunkWithSize(id, uint32(len(data)), data)
}

// ChunkWithSize appends a chunk whose declared size may differ from len(data).
// A pad byte is written when len(data) is odd.
func (w *WAV) ChunkWithSize(id string, size uint32, data []byte) *WAV {
	w.chunks.WriteString(id)
	binary.Write(&w.chunks, binary.LittleEndian, size)
	w.chunks.Write(data)
	if len(data)%2 == 1 {
		w.chunks.WriteByte(0)
	}
	return w
}

// Fmt appends a canonical 16 byte fmt chunk.
func (w *WAV) Fmt(formatTag uint16, channels uint16, sampleRate uint32, bitsPerSample uint16) *WAV {
	return w.Chunk("fmt ", FmtBody(formatTag, channels, sampleRate, bitsPerSample))
}

// Data appends a data chunk holding raw sample bytes.
func (w *WAV) Data(samples []byte) *WAV {
	return w.Chunk("data", samples)
}

// Raw appends bytes verbatim, e.g. to truncate a chunk header.
func (w *WAV) Raw(b []byte) *WAV {
	w.chunks.Write(b)
	return w
}

// Bytes returns the complete file: RIFF header followed by the chunks.
func (w *WAV) Bytes() []byte {
	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(4+w.chunks.Len()))
	out.WriteString("WAVE")
	out.Write(w.chunks.Bytes())
	return out.Bytes()
}

// FmtBody encodes the 16 byte WAVEFORMAT body with consistent byte rate
// and block align.
func FmtBody(formatTag uint16, channels uint16, sampleRate uint32, bitsPerSample uint16) []byte {
	blockAlign := channels * (bitsPerSample / 8)
	return FmtBodyRaw(formatTag, channels, sampleRate, sampleRate*uint32(blockAlign), blockAlign, bitsPerSample)
}

// FmtBodyRaw encodes a 16 byte fmt body exactly as given.
func FmtBodyRaw(formatTag, channels uint16, sampleRate, byteRate uint32, blockAlign, bitsPerSample uint16) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:2], formatTag)
	binary.LittleEndian.PutUint16(b[2:4], channels)
	binary.LittleEndian.PutUint32(b[4:8], sampleRate)
	binary.LittleEndian.PutUint32(b[8:12], byteRate)
	binary.LittleEndian.PutUint16(b[12:14], blockAlign)
	binary.LittleEndian.PutUint16(b[14:16], bitsPerSample)
	return b
}

// ExtensibleFmtBody encodes a 40 byte WAVE_FORMAT_EXTENSIBLE body whose
// SubFormat GUID carries subFormat in its first two bytes.
func ExtensibleFmtBody(subFormat, channels uint16, sampleRate uint32, bitsPerSample uint16) []byte {
	b := FmtBody(FormatExtensible, channels, sampleRate, bitsPerSample)
	ext := make([]byte, 24)
	binary.LittleEndian.PutUint16(ext[0:2], 22) // cbSize
	binary.LittleEndian.PutUint16(ext[2:4], bitsPerSample)
	binary.LittleEndian.PutUint32(ext[4:8], 0) // channel mask
	binary.LittleEndian.PutUint16(ext[8:10], subFormat)
	// KSDATAFORMAT_SUBTYPE tail: 00 00 00 00 10 00 80 00 00 AA 00 38 9B 71
	copy(ext[10:], []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})
	return append(b, ext...)
}

// PCM8 encodes unsigned 8-bit samples.
func PCM8(samples ...uint8) []byte {
	return append([]byte(nil), samples...)
}

// PCM16 encodes signed 16-bit little-endian samples.
func PCM16(samples ...int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}

// PCM24 encodes the low 24 bits of each value, little-endian.
func PCM24(samples ...int32) []byte {
	b := make([]byte, 3*len(samples))
	for i, s := range samples {
		u := uint32(s)
		b[3*i] = byte(u)
		b[3*i+1] = byte(u >> 8)
		b[3*i+2] = byte(u >> 16)
	}
	return b
}

// PCM32 encodes signed 32-bit little-endian samples.
func PCM32(samples ...int32) []byte {
	b := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[4*i:], uint32(s))
	}
	return b
}

// Float32 encodes IEEE 754 little-endian samples.
func Float32(samples ...float32) []byte {
	b := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(s))
	}
	return b
}

// Ramp16 returns frames*channels interleaved 16-bit samples where each value
// encodes its frame and channel, so reordering or offset errors show up.
func Ramp16(frames, channels int) []int16 {
	out := make([]int16, frames*channels)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = int16((f*7+ch*1000)%65536 - 32768)
		}
	}
	return out
}
