// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

const (
	// HeaderSize is the size of the canonical RIFF/fmt/data header.
	HeaderSize = 44

	// PCMFormat is the format tag of linear PCM.
	PCMFormat = 1

	fmtChunkLen = 16

	// chunkHeaderSize is the tag plus the 32-bit length of every chunk.
	chunkHeaderSize = 8

	// riffOverhead is everything the RIFF length covers except sample data:
	// the "WAVE" tag, the fmt chunk with its header, and the data chunk header.
	riffOverhead = 4 + 8 + fmtChunkLen + 8

	maxDataLen = math.MaxUint32 - riffOverhead
)

// Header holds the fields of a canonical 44-byte header as stored on disk.
type Header struct {
	RIFFLen       uint32
	FmtLen        uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataLen       uint32
}

// Format returns the descriptor carried by h.
func (h Header) Format() Format {
	return Format{
		Channels:      int(h.Channels),
		SampleRate:    int(h.SampleRate),
		BitsPerSample: int(h.BitsPerSample),
	}
}

// rawDataLen is the unpadded size of frames worth of samples.
func rawDataLen(f Format, frames int) int64 {
	return int64(frames) * int64(f.BlockAlign())
}

// DataLen is the data chunk length for frames, rounded up to an even
// byte count.
func DataLen(f Format, frames int) int64 {
	l := rawDataLen(f, frames)
	if l%2 != 0 {
		l++
	}

	return l
}

// EncodeHeader lays out the canonical header for frames of f.
func EncodeHeader(f Format, frames int) [HeaderSize]byte {
	var b [HeaderSize]byte
	dataLen := uint32(DataLen(f, frames))

	putTag(b[0:], riff.RiffID)
	putUint32LE(b[4:], riffOverhead+dataLen)
	putTag(b[8:], riff.WavFormatID)

	putTag(b[12:], riff.FmtID)
	putUint32LE(b[16:], fmtChunkLen)
	putFmt(b[20:36], PCMFormat, f)

	putTag(b[36:], riff.DataFormatID)
	putUint32LE(b[40:], dataLen)

	return b
}

// putFmt writes the 16-byte fmt chunk payload.
func putFmt(b []byte, audioFormat uint16, f Format) {
	putUint16LE(b[0:], audioFormat)
	putUint16LE(b[2:], uint16(f.Channels))
	putUint32LE(b[4:], uint32(f.SampleRate))
	putUint32LE(b[8:], uint32(f.ByteRate()))
	putUint16LE(b[12:], uint16(f.BlockAlign()))
	putUint16LE(b[14:], uint16(f.BitsPerSample))
}

// fmtChunk is the decoded fmt chunk payload.
type fmtChunk struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func parseFmt(b []byte) fmtChunk {
	return fmtChunk{
		AudioFormat:   uint16LE(b[0:]),
		Channels:      uint16LE(b[2:]),
		SampleRate:    uint32LE(b[4:]),
		ByteRate:      uint32LE(b[8:]),
		BlockAlign:    uint16LE(b[12:]),
		BitsPerSample: uint16LE(b[14:]),
	}
}

// DecodeHeader parses b as a canonical header, with fmt immediately followed
// by data. Files carrying other chunks need a Reader.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header is %d bytes, want %d", ErrFormatParse, len(b), HeaderSize)
	}

	for _, tag := range []struct {
		off  int
		want [4]byte
	}{
		{0, riff.RiffID},
		{8, riff.WavFormatID},
		{12, riff.FmtID},
		{36, riff.DataFormatID},
	} {
		if got := readTag(b[tag.off:]); got != tag.want {
			return Header{}, fmt.Errorf("%w: tag %q at offset %d, want %q", ErrFormatParse, got[:], tag.off, tag.want[:])
		}
	}

	fc := parseFmt(b[20:36])
	h := Header{
		RIFFLen:       uint32LE(b[4:]),
		FmtLen:        uint32LE(b[16:]),
		AudioFormat:   fc.AudioFormat,
		Channels:      fc.Channels,
		SampleRate:    fc.SampleRate,
		ByteRate:      fc.ByteRate,
		BlockAlign:    fc.BlockAlign,
		BitsPerSample: fc.BitsPerSample,
		DataLen:       uint32LE(b[40:]),
	}

	if h.FmtLen != fmtChunkLen {
		return Header{}, fmt.Errorf("%w: fmt chunk length %d, want %d", ErrFormatParse, h.FmtLen, fmtChunkLen)
	}
	if h.AudioFormat != PCMFormat {
		return Header{}, fmt.Errorf("%w: format tag %d is not linear PCM", ErrFormatParse, h.AudioFormat)
	}

	return h, nil
}
