// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into normalized float32 samples with
// random access by playback time.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16, 24 and 32-bit (signed, little-endian)
//   - IEEE float 32-bit
//   - WAVE_FORMAT_EXTENSIBLE wrapping either of the above
//   - Any channel count and sample rate
//
// Compressed encodings (ADPCM, A-law, MP3 and so on) are rejected with
// ErrUnsupported.
//
// # Reading
//
//	r, err := wav.Open("drum.wav")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	fmt.Println(r.NumChannels(), r.SampleRate(), r.Duration())
//
//	if err := r.Seek(0.6); err != nil {
//	    return err
//	}
//	buf, err := r.ReadFrames(4096)
//	// buf.Data[ch][:buf.FrameLength] holds channel ch
//
// Integer samples are scaled to [-1, 1] by dividing by 2^(bits-1); 8-bit
// samples are offset by 128 first. Float samples are passed through as is.
//
// Reaching the end of the stream is not an error: ReadFrames and Read return
// fewer frames than asked for, then zero. ReadSamples, which implements
// audio.Source, returns io.EOF instead.
//
// # Seeking
//
// Seek takes a time in seconds and moves to the nearest frame,
// round(seconds * SampleRate). Seeking to exactly the end is allowed.
// SeekFrame addresses frames directly.
//
// # Error Handling
//
// Failures are *DecodeError values classified by kind:
//   - ErrFile: the source could not be read, or the RIFF structure is
//     truncated or malformed
//   - ErrUnsupported: a valid container holding an encoding or bit depth
//     this package does not decode
//   - ErrInvalidParam: an argument out of range, or a fmt chunk with zero
//     channels or a zero sample rate
//
// Test with errors.Is against the kind or the specific cause:
//
//	_, err := wav.Open(path)
//	if errors.Is(err, wav.ErrUnsupported) {
//	    // compressed file
//	}
//	if errors.Is(err, wav.ErrMissingFmt) {
//	    // no fmt chunk
//	}
//
// # Concurrency
//
// A Reader is not safe for concurrent use. Open one Reader per goroutine.
package wav
