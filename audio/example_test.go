// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavreader/audio"
)

func ExampleNewBuffer() {
	buf := audio.NewBuffer(&goaudio.Format{NumChannels: 2, SampleRate: 8000}, 4)

	copy(buf.Data[0], []float32{0.5, 0.25})
	copy(buf.Data[1], []float32{-0.5, -0.25})
	buf.FrameLength = 2

	fmt.Println("capacity:", buf.FrameCapacity())
	fmt.Println("left:", buf.Channel(0))
	fmt.Println("right:", buf.Channel(1))
	// Output:
	// capacity: 4
	// left: [0.5 0.25]
	// right: [-0.5 -0.25]
}

func ExampleBuffer_Interleaved() {
	buf := audio.NewBuffer(&goaudio.Format{NumChannels: 2, SampleRate: 8000}, 3)

	copy(buf.Data[0], []float32{1, 2, 3})
	copy(buf.Data[1], []float32{-1, -2, -3})
	buf.FrameLength = 3

	out := buf.Interleaved()
	fmt.Println(out.Data, out.NumFrames())
	// Output: [1 -1 2 -2 3 -3] 3
}
