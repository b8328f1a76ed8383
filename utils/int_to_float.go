// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// Full-scale divisors for signed integer PCM.
const (
	MaxInt8Scale  = 128.0
	MaxInt16Scale = 32768.0
	MaxInt24Scale = 8388608.0
	MaxInt32Scale = 2147483648.0
)

// PCM8ToFloat32 converts an unsigned 8-bit PCM sample (128 is silence).
func PCM8ToFloat32(b []byte) float32 {
	return float32(int(b[0])-128) / MaxInt8Scale
}

// PCM16ToFloat32 converts a signed little-endian 16-bit sample.
func PCM16ToFloat32(b []byte) float32 {
	v := int16(binary.LittleEndian.Uint16(b))
	return float32(v) / MaxInt16Scale
}

// PCM24ToFloat32 converts a signed little-endian 3-byte sample.
// The value is placed in the top 24 bits of an int32 and shifted back
// down so the arithmetic shift performs the sign extension.
func PCM24ToFloat32(b []byte) float32 {
	v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
	return float32(v) / MaxInt24Scale
}

// PCM32ToFloat32 converts a signed little-endian 32-bit sample.
func PCM32ToFloat32(b []byte) float32 {
	v := int32(binary.LittleEndian.Uint32(b))
	return float32(float64(v) / MaxInt32Scale)
}

// Float32LEToFloat32 reinterprets a little-endian IEEE 754 value as is.
func Float32LEToFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
