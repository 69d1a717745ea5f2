// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/mudler/xlog"
)

// Reader yields the PCM frames of a WAVE stream.
//
// Unknown chunks before the data chunk are skipped along with their pad
// bytes. The frame count is the stored data length over the block align, so
// the pad byte after an odd-length data chunk is never read. Any channel
// count, rate and bit depth a PCM header presents is accepted. A Reader is not safe for
// concurrent use.
type Reader struct {
	closer      io.Closer
	data        io.Reader
	format      Format
	audioFormat int
	frames      int
	remaining   int

	err     error
	closed  bool
	scratch []byte
}

// Open opens path and parses its header.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	r, err := newReader(file, file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return r, nil
}

// NewReader parses the header from r. If r is also an io.Closer, Close
// closes it.
func NewReader(r io.Reader) (*Reader, error) {
	closer, _ := r.(io.Closer)
	return newReader(r, closer)
}

func newReader(src io.Reader, closer io.Closer) (*Reader, error) {
	p := riff.New(src)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: reading RIFF header: %w", ErrFormatParse, err)
	}
	if p.ID != riff.RiffID {
		return nil, fmt.Errorf("%w: container tag %q, want %q", ErrFormatParse, p.ID[:], riff.RiffID[:])
	}
	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: form type %q, want %q", ErrFormatParse, p.Format[:], riff.WavFormatID[:])
	}

	r := &Reader{closer: closer}

	// The data length is taken as stored, without riff's even rounding; a
	// cut-off chunk header is a parse error.
	var haveFmt bool
	hdr := make([]byte, chunkHeaderSize)
	for {
		if _, err := io.ReadFull(src, hdr); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: no data chunk", ErrFormatParse)
			}
			return nil, fmt.Errorf("%w: reading chunk header: %w", ErrFormatParse, err)
		}
		id, size := readTag(hdr), int64(uint32LE(hdr[4:]))

		switch id {
		case riff.FmtID:
			if err := r.readFmt(src, size); err != nil {
				return nil, err
			}
			haveFmt = true

		case riff.DataFormatID:
			if !haveFmt {
				return nil, fmt.Errorf("%w: data chunk before fmt chunk", ErrFormatParse)
			}
			r.data = io.LimitReader(src, size)
			r.frames = int(size / int64(r.format.BlockAlign()))
			r.remaining = r.frames
			return r, nil

		default:
			xlog.Debug("wav: skipping chunk", "id", string(id[:]), "size", size)
			if err := skip(src, size+size%2); err != nil {
				return nil, fmt.Errorf("%w: skipping %q chunk: %w", ErrFormatParse, id[:], err)
			}
		}
	}
}

// skip discards n bytes of src.
func skip(src io.Reader, n int64) error {
	if _, err := io.CopyN(io.Discard, src, n); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return err
	}

	return nil
}

func (r *Reader) readFmt(src io.Reader, size int64) error {
	if size < fmtChunkLen {
		return fmt.Errorf("%w: fmt chunk length %d, want at least %d", ErrFormatParse, size, fmtChunkLen)
	}

	b := make([]byte, fmtChunkLen)
	if _, err := io.ReadFull(src, b); err != nil {
		return fmt.Errorf("%w: reading fmt chunk: %w", ErrFormatParse, err)
	}
	// extension bytes, if any, and the pad byte of an odd length
	if err := skip(src, size-fmtChunkLen+size%2); err != nil {
		return fmt.Errorf("%w: reading fmt chunk: %w", ErrFormatParse, err)
	}

	fc := parseFmt(b)
	if fc.AudioFormat != PCMFormat {
		return fmt.Errorf("%w: format tag %d is not linear PCM", ErrFormatParse, fc.AudioFormat)
	}
	if fc.Channels == 0 || fc.BitsPerSample == 0 {
		return fmt.Errorf("%w: %d channels of %d-bit samples", ErrFormatParse, fc.Channels, fc.BitsPerSample)
	}

	r.audioFormat = int(fc.AudioFormat)
	r.format = Format{
		Channels:      int(fc.Channels),
		SampleRate:    int(fc.SampleRate),
		BitsPerSample: int(fc.BitsPerSample),
	}

	return nil
}

// Format returns the descriptor parsed from the fmt chunk.
func (r *Reader) Format() Format     { return r.format }
func (r *Reader) AudioFormat() int   { return r.audioFormat }
func (r *Reader) Channels() int      { return r.format.Channels }
func (r *Reader) SampleRate() int    { return r.format.SampleRate }
func (r *Reader) BitsPerSample() int { return r.format.BitsPerSample }
func (r *Reader) BlockAlign() int    { return r.format.BlockAlign() }

// Frames is the total number of frames in the data chunk.
func (r *Reader) Frames() int { return r.frames }

// Remaining is the number of frames not yet read.
func (r *Reader) Remaining() int { return r.remaining }

// GetSamples reads up to maxFrames frames into buf, which must hold
// maxFrames*BlockAlign bytes.
//
// It returns the number of frames read, and (0, io.EOF) once every frame has
// been delivered. Running out of input before the declared end of the data
// chunk is an error wrapping ErrIO.
func (r *Reader) GetSamples(maxFrames int, buf []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if r.err != nil {
		return 0, r.err
	}
	if maxFrames <= 0 {
		return 0, nil
	}

	align := r.format.BlockAlign()
	if len(buf) < maxFrames*align {
		return 0, fmt.Errorf("%w: %d frames need %d bytes, buffer has %d", ErrShortBuffer, maxFrames, maxFrames*align, len(buf))
	}
	if r.remaining == 0 {
		return 0, io.EOF
	}

	want := min(maxFrames, r.remaining)
	n, err := io.ReadFull(r.data, buf[:want*align])
	frames := n / align
	r.remaining -= frames

	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		r.err = fmt.Errorf("%w: data ends %d frames early: %w", ErrIO, r.remaining, err)
		return frames, r.err
	}

	return frames, nil
}

// ReadBuffer decodes up to len(buf.Data)/Channels frames into buf.Data and
// sets buf.Format and buf.SourceBitDepth. 8-bit values are left unsigned.
func (r *Reader) ReadBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	frames := len(buf.Data) / r.format.Channels
	size := frames * r.format.BlockAlign()
	if cap(r.scratch) < size {
		r.scratch = make([]byte, size)
	}
	r.scratch = r.scratch[:size]

	buf.Format = &goaudio.Format{NumChannels: r.format.Channels, SampleRate: r.format.SampleRate}
	buf.SourceBitDepth = r.format.BitsPerSample

	n, err := r.GetSamples(frames, r.scratch)
	if n > 0 {
		samples := n * r.format.Channels
		if derr := decodeSamples(buf.Data[:samples], r.scratch, r.format.BytesPerSample()); derr != nil {
			return 0, derr
		}
	}

	return n, err
}

// Close releases the underlying reader. It always succeeds.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			xlog.Debug("wav: closing reader", "error", err)
		}
	}

	return nil
}
