// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestPCM8ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input byte
		want  float32
	}{
		{name: "silence", input: 128, want: 0},
		{name: "min", input: 0, want: -1},
		{name: "max", input: 255, want: 127.0 / 128.0},
		{name: "half negative", input: 64, want: -0.5},
		{name: "half positive", input: 192, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PCM8ToFloat32([]byte{tt.input})
			if got != tt.want {
				t.Errorf("PCM8ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPCM16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int16
		want  float32
	}{
		{name: "zero", input: 0, want: 0},
		{name: "min is exactly -1", input: math.MinInt16, want: -1},
		{name: "max", input: math.MaxInt16, want: 32767.0 / 32768.0},
		{name: "half positive", input: 16384, want: 0.5},
		{name: "half negative", input: -16384, want: -0.5},
		{name: "one step", input: 1, want: 1.0 / 32768.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := make([]byte, 2)
			binary.LittleEndian.PutUint16(b, uint16(tt.input))

			got := PCM16ToFloat32(b)
			if got != tt.want {
				t.Errorf("PCM16ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPCM16ToFloat32_MaxWithinOneStep(t *testing.T) {
	t.Parallel()

	got := PCM16ToFloat32([]byte{0xff, 0x7f})
	if diff := math.Abs(1 - float64(got)); diff > 1.0/32768.0 {
		t.Errorf("PCM16ToFloat32(32767) = %v, more than one step below 1.0", got)
	}
	if got >= 1 {
		t.Errorf("PCM16ToFloat32(32767) = %v, want < 1.0", got)
	}
}

func TestPCM24ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  float32
	}{
		{name: "zero", input: []byte{0x00, 0x00, 0x00}, want: 0},
		{name: "min is exactly -1", input: []byte{0x00, 0x00, 0x80}, want: -1},
		{name: "max", input: []byte{0xff, 0xff, 0x7f}, want: 8388607.0 / 8388608.0},
		{name: "minus one step", input: []byte{0xff, 0xff, 0xff}, want: -1.0 / 8388608.0},
		{name: "half positive", input: []byte{0x00, 0x00, 0x40}, want: 0.5},
		{name: "half negative", input: []byte{0x00, 0x00, 0xc0}, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := PCM24ToFloat32(tt.input)
			if got != tt.want {
				t.Errorf("PCM24ToFloat32(% x) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPCM32ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int32
		want  float32
	}{
		{name: "zero", input: 0, want: 0},
		{name: "min is exactly -1", input: math.MinInt32, want: -1},
		{name: "half positive", input: 1 << 30, want: 0.5},
		{name: "half negative", input: -(1 << 30), want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := make([]byte, 4)
			binary.LittleEndian.PutUint32(b, uint32(tt.input))

			got := PCM32ToFloat32(b)
			if got != tt.want {
				t.Errorf("PCM32ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32LEToFloat32_PassesThrough(t *testing.T) {
	t.Parallel()

	// Out of range values must not be clamped or rescaled.
	inputs := []float32{0, 0.25, -0.75, 1, -1, 1.5, -3}

	for _, in := range inputs {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(in))

		if got := Float32LEToFloat32(b); got != in {
			t.Errorf("Float32LEToFloat32(%v) = %v, want unchanged", in, got)
		}
	}
}

func TestIntegerConversions_StayInRange(t *testing.T) {
	t.Parallel()

	for v := 0; v < 256; v++ {
		got := PCM8ToFloat32([]byte{byte(v)})
		if got < -1 || got > 1 {
			t.Fatalf("PCM8ToFloat32(%d) = %v, outside [-1, 1]", v, got)
		}
	}

	b := make([]byte, 2)
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
		got := PCM16ToFloat32(b)
		if got < -1 || got > 1 {
			t.Fatalf("PCM16ToFloat32(%d) = %v, outside [-1, 1]", v, got)
		}
	}
}

func BenchmarkPCM16ToFloat32(b *testing.B) {
	buf := []byte{0x34, 0x12}

	b.ReportAllocs()

	for b.Loop() {
		_ = PCM16ToFloat32(buf)
	}
}

func BenchmarkPCM24ToFloat32(b *testing.B) {
	buf := []byte{0x56, 0x34, 0x12}

	b.ReportAllocs()

	for b.Loop() {
		_ = PCM24ToFloat32(buf)
	}
}
