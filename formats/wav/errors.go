// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is, except ErrClosed.
var (
	ErrFile         = errors.New("file error")
	ErrUnsupported  = errors.New("unsupported")
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrClosed is returned by any reading operation after Close.
	ErrClosed = errors.New("wav: reader is closed")
)

var (
	ErrNotRIFF             = errors.New("missing RIFF tag")
	ErrNotWAVE             = errors.New("missing WAVE tag")
	ErrTruncated           = errors.New("unexpected end of stream")
	ErrFmtTooShort         = errors.New("fmt chunk shorter than 16 bytes")
	ErrMissingFmt          = errors.New("no fmt chunk")
	ErrMissingData         = errors.New("no data chunk")
	ErrMultipleData        = errors.New("multiple data chunks")
	ErrInconsistentFmt     = errors.New("fmt chunk fields disagree")
	ErrUnsupportedEncoding = errors.New("unsupported audio format code")
	ErrUnsupportedBitDepth = errors.New("unsupported bits per sample")
	ErrNoChannels          = errors.New("channel count is zero")
	ErrNoSampleRate        = errors.New("sample rate is zero")
	ErrNegativeSeek        = errors.New("seek position is negative")
	ErrSeekPastEnd         = errors.New("seek position is past the end of the stream")
	ErrNegativeCapacity    = errors.New("frame capacity is negative")
	ErrChannelMismatch     = errors.New("buffer channel count does not match the stream")
)

// Kind classifies a DecodeError.
type Kind int

const (
	KindFile Kind = iota + 1
	KindUnsupported
	KindInvalidParam
)

func (k Kind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindFile:
		return ErrFile
	case KindUnsupported:
		return ErrUnsupported
	case KindInvalidParam:
		return ErrInvalidParam
	default:
		return nil
	}
}

// DecodeError reports a failed operation. errors.Is matches both the kind
// sentinel (ErrFile, ErrUnsupported, ErrInvalidParam) and the wrapped cause.
type DecodeError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wav: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind Kind, op string, err error) error {
	return &DecodeError{Kind: kind, Op: op, Err: err}
}

func closedError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrClosed)
}
