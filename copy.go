// SPDX-License-Identifier: EPL-2.0

package pcmwave

import (
	"errors"
	"fmt"
	"io"

	"github.com/mudler/xlog"

	"github.com/ik5/pcmwave/formats/wav"
)

// DefaultBufferFrames is the chunk size used when a caller passes zero.
const DefaultBufferFrames = 4096

// Report describes a completed file copy.
type Report struct {
	Format      wav.Format
	AudioFormat int
	Frames      int
}

// descriptor is the accessor set shared by wav.Reader and wav.Writer.
type descriptor interface {
	AudioFormat() int
	Channels() int
	SampleRate() int
	BitsPerSample() int
	Frames() int
}

// compare reports the first header field on which a and b differ.
func compare(a, b descriptor) error {
	fields := []struct {
		name string
		a, b int
	}{
		{"format tag", a.AudioFormat(), b.AudioFormat()},
		{"channels", a.Channels(), b.Channels()},
		{"sample rate", a.SampleRate(), b.SampleRate()},
		{"bits per sample", a.BitsPerSample(), b.BitsPerSample()},
		{"frames", a.Frames(), b.Frames()},
	}

	for _, f := range fields {
		if f.a != f.b {
			return fmt.Errorf("%w: %s %d != %d", ErrMismatch, f.name, f.a, f.b)
		}
	}

	return nil
}

// Copy moves every remaining frame of src into dst, bufFrames at a time,
// and returns the number of frames written. Both ends must share a format.
func Copy(dst *wav.Writer, src *wav.Reader, bufFrames int) (int, error) {
	if dst.Format() != src.Format() {
		return 0, fmt.Errorf("%w: reader %s, writer %s", ErrMismatch, src.Format(), dst.Format())
	}
	if bufFrames <= 0 {
		bufFrames = DefaultBufferFrames
	}

	buf := make([]byte, bufFrames*src.BlockAlign())
	total := 0
	for {
		n, err := src.GetSamples(bufFrames, buf)
		if n > 0 {
			written, werr := dst.PutFrames(n, buf)
			total += written
			if werr != nil {
				return total, werr
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// CopyFile copies the WAVE file at src to dst and checks that the copy
// carries the same header, both before the writer is closed and after dst
// is reopened.
func CopyFile(dst, src string, bufFrames int) (Report, error) {
	r, err := wav.Open(src)
	if err != nil {
		return Report{}, err
	}
	defer r.Close()

	w, err := wav.Create(dst, r.Format())
	if err != nil {
		return Report{}, err
	}

	copied, err := Copy(w, r, bufFrames)
	if err == nil {
		err = compare(r, w)
	}
	if err != nil {
		w.Close()
		return Report{}, err
	}
	if err := w.Close(); err != nil {
		return Report{}, err
	}

	xlog.Debug("pcmwave: copied", "src", src, "dst", dst, "frames", copied)

	back, err := wav.Open(dst)
	if err != nil {
		return Report{}, err
	}
	defer back.Close()

	if err := compare(r, back); err != nil {
		return Report{}, fmt.Errorf("reopened %s: %w", dst, err)
	}

	return Report{
		Format:      back.Format(),
		AudioFormat: back.AudioFormat(),
		Frames:      back.Frames(),
	}, nil
}
