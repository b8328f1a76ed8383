// SPDX-License-Identifier: EPL-2.0

// Package audio defines the types shared by the format decoders.
//
// # Source Interface
//
// Source is the streaming contract every decoder satisfies:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved samples, frame after frame, and
// counts values rather than frames. len(dst) must be a multiple of
// Channels(), otherwise ErrInvalidDstSize is returned. The end of the stream
// is reported as 0, io.EOF.
//
//	buf := make([]float32, src.BufSize())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    process(buf[:n])
//	}
//
// # Buffers
//
// Buffer holds decoded frames with one slice per channel, which suits
// per-channel processing better than the interleaved layout:
//
//	buf := audio.NewBuffer(&goaudio.Format{NumChannels: 2, SampleRate: 44100}, 4096)
//	n, err := reader.Read(buf)
//	left, right := buf.Channel(0), buf.Channel(1)
//
// Interleaved converts a Buffer into a go-audio Float32Buffer for code that
// expects github.com/go-audio/audio types.
package audio
