// SPDX-License-Identifier: EPL-2.0

package wavreader

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ik5/wavreader/audio"
	"github.com/ik5/wavreader/formats/wav"
	"golang.org/x/sync/errgroup"
)

// Open opens a WAV file for reading. See wav.Open.
func Open(path string, opts ...wav.Option) (*wav.Reader, error) {
	return wav.Open(path, opts...)
}

// ReadAll decodes every frame of the file at path into one buffer.
//
// Example:
//
//	buf, err := wavreader.ReadAll("drum.wav")
//	if err != nil {
//	    return err
//	}
//	left := buf.Channel(0)
func ReadAll(path string, opts ...wav.Option) (*audio.Buffer, error) {
	r, err := wav.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	frames := r.NumFrames()
	if int64(int(frames)) != frames {
		return nil, fmt.Errorf("%s: %d frames do not fit in memory", path, frames)
	}

	return r.ReadFrames(int(frames))
}

// Info describes a WAV file without its sample data.
type Info struct {
	Path     string
	Format   wav.Format
	Data     wav.DataRegion
	Frames   int64
	Duration time.Duration
}

// Seconds is the duration in seconds, frames / sample rate.
func (i Info) Seconds() float64 {
	return float64(i.Frames) / float64(i.Format.SampleRate)
}

// Probe parses the header of the file at path and closes it again.
func Probe(path string, opts ...wav.Option) (Info, error) {
	r, err := wav.Open(path, opts...)
	if err != nil {
		return Info{}, err
	}
	defer r.Close()

	return Info{
		Path:     path,
		Format:   r.Format(),
		Data:     r.DataRegion(),
		Frames:   r.NumFrames(),
		Duration: r.DurationTime(),
	}, nil
}

// ProbeAll probes several files concurrently, using up to runtime.NumCPU()
// goroutines. Results are in the same order as paths. Every file is opened
// and closed by the goroutine that probes it.
//
// The first failure cancels the remaining probes and is returned, prefixed
// with the offending path.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	infos, err := wavreader.ProbeAll(ctx, paths)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, info := range infos {
//	    fmt.Printf("%s: %d Hz, %v\n", info.Path, info.Format.SampleRate, info.Duration)
//	}
func ProbeAll(ctx context.Context, paths []string, opts ...wav.Option) ([]Info, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Info, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			info, err := Probe(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
