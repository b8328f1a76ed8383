// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestDecodeError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  Kind
		match error
		other []error
	}{
		{"file", KindFile, ErrFile, []error{ErrUnsupported, ErrInvalidParam}},
		{"unsupported", KindUnsupported, ErrUnsupported, []error{ErrFile, ErrInvalidParam}},
		{"invalid param", KindInvalidParam, ErrInvalidParam, []error{ErrFile, ErrUnsupported}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := newError(tt.kind, "parse", ErrMissingFmt)

			if !errors.Is(err, tt.match) {
				t.Errorf("errors.Is(err, %v) = false, want true", tt.match)
			}

			if !errors.Is(err, ErrMissingFmt) {
				t.Error("errors.Is(err, ErrMissingFmt) = false, want true")
			}

			for _, o := range tt.other {
				if errors.Is(err, o) {
					t.Errorf("errors.Is(err, %v) = true, want false", o)
				}
			}
		})
	}
}

func TestDecodeError_As(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading sample: %w", newError(KindUnsupported, "parse", ErrUnsupportedBitDepth))

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("errors.As(*DecodeError) = false, want true")
	}

	if de.Kind != KindUnsupported || de.Op != "parse" {
		t.Errorf("DecodeError = {%v %q}, want {unsupported \"parse\"}", de.Kind, de.Op)
	}

	if !errors.Is(err, ErrUnsupported) {
		t.Error("wrapped DecodeError lost its kind")
	}
}

func TestDecodeError_Message(t *testing.T) {
	t.Parallel()

	err := newError(KindFile, "parse", ErrMissingData)

	want := "wav: parse: file error: no data chunk"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindFile, "file error"},
		{KindUnsupported, "unsupported"},
		{KindInvalidParam, "invalid parameter"},
		{Kind(0), "Kind(0)"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestDecodeError_UnknownKindMatchesNothing(t *testing.T) {
	t.Parallel()

	err := newError(Kind(0), "parse", ErrTruncated)

	for _, sentinel := range []error{ErrFile, ErrUnsupported, ErrInvalidParam} {
		if errors.Is(err, sentinel) {
			t.Errorf("errors.Is(err, %v) = true, want false", sentinel)
		}
	}
}

func TestClosedError(t *testing.T) {
	t.Parallel()

	err := closedError("read")

	if !errors.Is(err, ErrClosed) {
		t.Error("errors.Is(err, ErrClosed) = false, want true")
	}

	for _, sentinel := range []error{ErrFile, ErrUnsupported, ErrInvalidParam} {
		if errors.Is(err, sentinel) {
			t.Errorf("closed error matches kind %v", sentinel)
		}
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrFile, ErrUnsupported, ErrInvalidParam, ErrClosed,
		ErrNotRIFF, ErrNotWAVE, ErrTruncated, ErrFmtTooShort,
		ErrMissingFmt, ErrMissingData, ErrMultipleData, ErrInconsistentFmt,
		ErrUnsupportedEncoding, ErrUnsupportedBitDepth, ErrNoChannels, ErrNoSampleRate,
		ErrNegativeSeek, ErrSeekPastEnd, ErrNegativeCapacity, ErrChannelMismatch,
	}

	messages := make(map[string]int)
	for i, err := range allErrors {
		if prev, found := messages[err.Error()]; found {
			t.Errorf("errors %d and %d share the message %q", prev, i, err.Error())
		}
		messages[err.Error()] = i
	}
}
