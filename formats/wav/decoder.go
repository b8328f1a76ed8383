// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/wavreader/audio"
)

var _ audio.Decoder = Decoder{}

// Decoder builds an audio.Source from a WAV stream.
type Decoder struct {
	Options []Option
}

// Decode parses the header of r and returns a Reader positioned at the first
// frame. Inputs that cannot seek are read fully into memory first.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, newError(KindFile, "decode", fmt.Errorf("reading wav data: %w", err))
		}
		rs = bytes.NewReader(data)
	}

	rd, err := NewReader(rs, d.Options...)
	if err != nil {
		return nil, err
	}
	return rd, nil
}
