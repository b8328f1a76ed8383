// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-audio/riff"
)

// subFormatTail is the part of KSDATAFORMAT_SUBTYPE_* GUIDs that follows the
// embedded format tag.
var subFormatTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// fmtHeader is the fixed 16 byte part of every fmt chunk.
type fmtHeader struct {
	FormatTag     uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

type fmtExtensible struct {
	ValidBitsPerSample uint16
	ChannelMask        uint32
	SubFormat          [16]byte
}

// Parse reads the RIFF/WAVE structure from r, starting at its current
// position, and returns the stream format and the location of the sample
// data. Sample bytes are not read. Chunks may appear in any order and
// unknown chunks are skipped. A chunk header cut short by the end of the
// stream is an ErrTruncated file error.
//
// The returned DataRegion covers only bytes present in r. A data chunk
// declaring more bytes than the stream holds (a truncated copy, or a
// streamed file with a 0xFFFFFFFF size) is shortened to the available
// whole frames and logged at Warn level, rather than rejected. NumFrames
// and Duration therefore describe the audio actually readable, not the
// length the header declares.
func Parse(r io.ReadSeeker, opts ...Option) (Format, DataRegion, error) {
	return parse(r, newOptions(opts))
}

func parse(r io.ReadSeeker, o *options) (Format, DataRegion, error) {
	const op = "parse"

	log := o.logger
	fail := func(kind Kind, err error) (Format, DataRegion, error) {
		log.Debug("wav parse failed", slog.String("kind", kind.String()), slog.Any("error", err))
		return Format{}, DataRegion{}, newError(kind, op, err)
	}

	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return fail(KindFile, err)
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return fail(KindFile, err)
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return fail(KindFile, err)
	}

	p := riff.New(r)

	id, size, err := readChunkHeader(r, p)
	if err == io.EOF {
		return fail(KindFile, fmt.Errorf("%w: RIFF header: %w", ErrTruncated, err))
	}
	if err != nil {
		return fail(KindFile, err)
	}
	if id != riff.RiffID {
		return fail(KindFile, fmt.Errorf("%w: got %q", ErrNotRIFF, id[:]))
	}
	p.ID, p.Size = id, size

	if err := binary.Read(r, binary.BigEndian, &p.Format); err != nil {
		return fail(KindFile, fmt.Errorf("%w: RIFF form type: %w", ErrTruncated, err))
	}
	if p.Format != riff.WavFormatID {
		return fail(KindFile, fmt.Errorf("%w: got %q", ErrNotWAVE, p.Format[:]))
	}

	var (
		format   Format
		region   DataRegion
		haveFmt  bool
		haveData bool
	)

	for !haveFmt || !haveData {
		id, size, err := readChunkHeader(r, p)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail(KindFile, err)
		}

		body, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return fail(KindFile, err)
		}
		// Chunks are word aligned; the pad byte is not part of the size.
		next := body + int64(size) + int64(size&1)

		switch id {
		case riff.FmtID:
			if haveFmt {
				log.Debug("ignoring extra fmt chunk", slog.Int64("offset", body-8))
				break
			}
			var kind Kind
			format, kind, err = readFmt(r, size, o)
			if err != nil {
				return fail(kind, err)
			}
			haveFmt = true

		case riff.DataFormatID:
			if haveData {
				return fail(KindFile, fmt.Errorf("%w: second data chunk at offset %d", ErrMultipleData, body-8))
			}
			region = DataRegion{Offset: body, Length: int64(size)}
			haveData = true

		default:
			log.Debug("skipping chunk",
				slog.String("chunk", string(id[:])),
				slog.Int64("offset", body-8),
				slog.Uint64("size", uint64(size)))
		}

		if haveFmt && haveData {
			break
		}
		if _, err := r.Seek(next, io.SeekStart); err != nil {
			return fail(KindFile, err)
		}
	}

	if !haveFmt {
		return fail(KindFile, ErrMissingFmt)
	}
	if !haveData {
		return fail(KindFile, ErrMissingData)
	}

	// Writers that stream often leave the size at 0 or 0xFFFFFFFF, and
	// truncated copies declare more than they hold.
	available := max(end-region.Offset, 0)
	if region.Length > available {
		log.Warn("data chunk extends past end of stream",
			slog.Int64("declared", region.Length),
			slog.Int64("available", available))
		region.Length = available
	}

	if rem := region.Length % int64(format.BlockAlign); rem != 0 {
		log.Debug("dropping trailing partial frame", slog.Int64("bytes", rem))
		region.Length -= rem
	}

	log.Debug("parsed wav",
		slog.String("encoding", format.Encoding.String()),
		slog.Int("channels", format.NumChannels),
		slog.Int("sample_rate", format.SampleRate),
		slog.Int("bits", format.BitsPerSample),
		slog.Int64("data_offset", region.Offset),
		slog.Int64("data_length", region.Length))

	return format, region, nil
}

// readChunkHeader reads an 8 byte chunk header. It returns io.EOF only when
// the stream ends exactly before the header. riff.Parser.IDnSize reports a
// short size field as size 0 with a nil error, so the bytes consumed are
// checked here.
func readChunkHeader(r io.Seeker, p *riff.Parser) ([4]byte, uint32, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return [4]byte{}, 0, err
	}

	id, size, err := p.IDnSize()
	if err == io.EOF {
		return id, size, io.EOF
	}
	if err != nil {
		return id, size, fmt.Errorf("%w: chunk header at offset %d: %w", ErrTruncated, start, err)
	}

	end, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return id, size, err
	}
	if end-start != 8 {
		return id, size, fmt.Errorf("%w: chunk header at offset %d: %d of 8 bytes", ErrTruncated, start, end-start)
	}

	return id, size, nil
}

// readFmt decodes the fmt chunk body. Bytes past the fields it understands
// are left for the caller to skip.
func readFmt(r io.Reader, size uint32, o *options) (Format, Kind, error) {
	if size < 16 {
		return Format{}, KindFile, fmt.Errorf("%w: size %d", ErrFmtTooShort, size)
	}

	chunk := &riff.Chunk{
		ID:   riff.FmtID,
		Size: int(size),
		R:    io.LimitReader(r, int64(size)),
	}

	var hdr fmtHeader
	if err := chunk.ReadLE(&hdr); err != nil {
		return Format{}, KindFile, fmt.Errorf("%w: fmt chunk: %w", ErrTruncated, err)
	}

	tag := hdr.FormatTag
	if tag == FormatTagExtensible {
		var err error
		tag, err = extensibleFormatTag(chunk)
		if err != nil {
			return Format{}, KindFile, err
		}
	}

	var encoding Encoding
	switch tag {
	case FormatTagPCM:
		encoding = EncodingPCM
	case FormatTagIEEEFloat:
		encoding = EncodingFloat
	default:
		return Format{}, KindUnsupported, fmt.Errorf("%w: 0x%04X", ErrUnsupportedEncoding, tag)
	}

	if hdr.NumChannels == 0 {
		return Format{}, KindInvalidParam, ErrNoChannels
	}
	if hdr.SampleRate == 0 {
		return Format{}, KindInvalidParam, ErrNoSampleRate
	}

	bits := int(hdr.BitsPerSample)
	if !supportedBitDepth(encoding, bits) {
		return Format{}, KindUnsupported, fmt.Errorf("%w: %d-bit %s", ErrUnsupportedBitDepth, bits, encoding)
	}

	format := Format{
		Encoding:      encoding,
		FormatTag:     hdr.FormatTag,
		NumChannels:   int(hdr.NumChannels),
		SampleRate:    int(hdr.SampleRate),
		BitsPerSample: bits,
		BlockAlign:    int(hdr.NumChannels) * (bits / 8),
	}

	byteRate := uint64(format.SampleRate) * uint64(format.BlockAlign)
	if int(hdr.BlockAlign) != format.BlockAlign || uint64(hdr.ByteRate) != byteRate {
		if o.strict {
			return Format{}, KindFile, fmt.Errorf("%w: block align %d (want %d), byte rate %d (want %d)",
				ErrInconsistentFmt, hdr.BlockAlign, format.BlockAlign, hdr.ByteRate, byteRate)
		}
		o.logger.Warn("fmt chunk declares inconsistent sizes",
			slog.Int("block_align", int(hdr.BlockAlign)),
			slog.Int("want_block_align", format.BlockAlign),
			slog.Uint64("byte_rate", uint64(hdr.ByteRate)),
			slog.Uint64("want_byte_rate", byteRate))
	}

	return format, 0, nil
}

// extensibleFormatTag resolves the effective format tag of a
// WAVE_FORMAT_EXTENSIBLE chunk from its SubFormat GUID. A missing or
// foreign GUID yields the extensible tag itself, which callers reject.
func extensibleFormatTag(chunk *riff.Chunk) (uint16, error) {
	if chunk.Size < 16+2+22 {
		return FormatTagExtensible, nil
	}

	var cbSize uint16
	if err := chunk.ReadLE(&cbSize); err != nil {
		return 0, fmt.Errorf("%w: fmt extension size: %w", ErrTruncated, err)
	}
	if cbSize < 22 {
		return FormatTagExtensible, nil
	}

	var ext fmtExtensible
	if err := chunk.ReadLE(&ext); err != nil {
		return 0, fmt.Errorf("%w: fmt extension: %w", ErrTruncated, err)
	}

	if !bytes.Equal(ext.SubFormat[2:], subFormatTail) {
		return FormatTagExtensible, nil
	}
	return binary.LittleEndian.Uint16(ext.SubFormat[0:2]), nil
}

func supportedBitDepth(encoding Encoding, bits int) bool {
	switch encoding {
	case EncodingPCM:
		return bits == 8 || bits == 16 || bits == 24 || bits == 32
	case EncodingFloat:
		return bits == 32
	default:
		return false
	}
}
