// SPDX-License-Identifier: EPL-2.0

// Package wavreader reads uncompressed RIFF/WAVE audio files as normalized
// float32 samples, with random access by playback time.
//
// The decoding itself lives in formats/wav; this package adds whole-file
// conveniences on top of it.
//
// # Quick Start
//
//	r, err := wavreader.Open("drum.wav")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	if err := r.Seek(0.6); err != nil {
//	    return err
//	}
//	buf, err := r.ReadFrames(100)
//	// buf.Channel(0) and buf.Channel(1) hold 100 frames starting at 0.6s
//
// Small files can be decoded in one call:
//
//	buf, err := wavreader.ReadAll("click.wav")
//
// # Inspecting Files
//
// Probe reads only the header. ProbeAll does the same for many files at
// once, one goroutine per file up to the number of CPUs:
//
//	infos, err := wavreader.ProbeAll(ctx, paths)
//	for _, info := range infos {
//	    fmt.Println(info.Path, info.Format.NumChannels, info.Duration)
//	}
//
// # Sample Values
//
// Integer PCM samples are divided by 2^(bits-1), so 16-bit -32768 becomes
// exactly -1.0 and 32767 becomes 0.99997. 8-bit samples are unsigned and are
// centered on 128 first. 32-bit float samples are returned unchanged.
//
// # Streaming
//
// A *wav.Reader also implements audio.Source, the interleaved streaming
// interface shared by the packages under formats/.
//
// See formats/wav for the error model and the full Reader API.
package wavreader
