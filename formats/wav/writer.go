// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/mudler/xlog"
)

// Writer produces a canonical PCM WAVE stream.
//
// The header is written with zero frames when the Writer is created and is
// patched with the final lengths by Close. A Writer is not safe for
// concurrent use.
type Writer struct {
	ws     io.WriteSeeker
	closer io.Closer
	format Format
	frames int

	// err is set by the first failed write; the stream is then
	// indeterminate and only Close is meaningful.
	err     error
	closed  bool
	scratch []byte
}

// Create validates f, creates or truncates path and writes the initial header.
//
// ErrBadFormat is returned before the filesystem is touched. When the header
// cannot be written the file is closed and left as is.
func Create(path string, f Format) (*Writer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	w, err := newWriter(file, file, f)
	if err != nil {
		file.Close()
		return nil, err
	}

	return w, nil
}

// NewWriter validates f and writes the initial header to ws.
// If ws is also an io.Closer, Close closes it.
func NewWriter(ws io.WriteSeeker, f Format) (*Writer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	closer, _ := ws.(io.Closer)

	return newWriter(ws, closer, f)
}

func newWriter(ws io.WriteSeeker, closer io.Closer, f Format) (*Writer, error) {
	w := &Writer{
		ws:     ws,
		closer: closer,
		format: f,
	}

	if err := w.writeHeader(); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Writer) writeHeader() error {
	header := EncodeHeader(w.format, w.frames)

	n, err := w.ws.Write(header[:])
	if err == nil && n < len(header) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrIO, err)
	}

	return nil
}

// Format returns the descriptor the Writer was created with.
func (w *Writer) Format() Format { return w.format }

// AudioFormat is always PCMFormat.
func (w *Writer) AudioFormat() int   { return PCMFormat }
func (w *Writer) Channels() int      { return w.format.Channels }
func (w *Writer) SampleRate() int    { return w.format.SampleRate }
func (w *Writer) BitsPerSample() int { return w.format.BitsPerSample }
func (w *Writer) BlockAlign() int    { return w.format.BlockAlign() }

// Frames is the number of complete frames written so far.
func (w *Writer) Frames() int { return w.frames }

// PutFrames appends n frames from buf, which must hold at least
// n*BlockAlign bytes of interleaved samples: unsigned 8-bit, or signed
// little-endian 16 or 24-bit.
//
// It returns the number of complete frames the sink accepted. A short
// transfer is reported as an error wrapping ErrIO; after that every call
// returns the same error and the caller should Close and discard the file.
func (w *Writer) PutFrames(n int, buf []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	if n <= 0 {
		return 0, nil
	}

	// n is bounded before any arithmetic so frames+n and n*align cannot overflow
	align := w.format.BlockAlign()
	limit := (maxDataLen - rawDataLen(w.format, w.frames)) / int64(align)
	if int64(n) > limit || DataLen(w.format, w.frames+n) > maxDataLen {
		return 0, fmt.Errorf("%w: %w: %d frames after %d", ErrIO, ErrDataTooLarge, n, w.frames)
	}

	size := n * align
	if len(buf) < size {
		return 0, fmt.Errorf("%w: %d frames need %d bytes, buffer has %d", ErrShortBuffer, n, size, len(buf))
	}

	written, err := w.ws.Write(buf[:size])
	frames := written / align
	w.frames += frames

	if err == nil && written < size {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.err = fmt.Errorf("%w: wrote %d of %d frames: %w", ErrIO, frames, n, err)
		return frames, w.err
	}

	return frames, nil
}

// WriteBuffer encodes buf and appends it.
//
// Values follow the go-audio conventions: 0..255 for 8-bit, signed for 16
// and 24-bit. A buffer whose Format disagrees on the channel count, or
// whose data ends in a partial frame, is rejected with ErrBadFormat and
// nothing is written.
func (w *Writer) WriteBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}
	if buf.Format != nil && buf.Format.NumChannels != w.format.Channels {
		return 0, fmt.Errorf("%w: buffer has %d channels, writer %s", ErrBadFormat, buf.Format.NumChannels, w.format)
	}

	if len(buf.Data)%w.format.Channels != 0 {
		return 0, fmt.Errorf("%w: %d samples is not a whole number of %d-channel frames",
			ErrBadFormat, len(buf.Data), w.format.Channels)
	}

	frames := len(buf.Data) / w.format.Channels
	size := frames * w.format.BlockAlign()
	if cap(w.scratch) < size {
		w.scratch = make([]byte, size)
	}
	w.scratch = w.scratch[:size]

	if err := encodeSamples(w.scratch, buf.Data, w.format.BitsPerSample); err != nil {
		return 0, err
	}

	return w.PutFrames(frames, w.scratch)
}

// Close pads the data to an even length, rewrites the header with the final
// frame count and releases the sink. The sink is released even when the
// patch fails; Close cannot be retried.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	err := w.finalize()

	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing: %w", ErrIO, cerr)
		}
	}

	return err
}

func (w *Writer) finalize() error {
	var padErr error
	if rawDataLen(w.format, w.frames)%2 != 0 {
		if _, err := w.ws.Write([]byte{0}); err != nil {
			padErr = fmt.Errorf("%w: writing pad byte: %w", ErrIO, err)
		}
	}

	if _, err := w.ws.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seeking to header: %w", ErrIO, err)
	}

	if err := w.writeHeader(); err != nil {
		return err
	}

	xlog.Debug("wav: header finalized", "format", w.format.String(), "frames", w.frames, "dataLen", DataLen(w.format, w.frames))

	return padErr
}
