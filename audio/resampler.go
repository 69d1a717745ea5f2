// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmwave/utils"
)

// maxStalls bounds how many consecutive (0, nil) reads a source may return
// before the resampler gives up with io.ErrNoProgress.
const maxStalls = 100

// Resampler streams from src at a target sample rate using Catmull-Rom cubic
// interpolation. Works on interleaved samples and preserves channel count.
//
// The read position is tracked as an exact fraction of source frames, so an
// input of N frames always yields floor((N-1)*dst/src)+1 output frames.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// win holds frames t-1, t, t+1, t+2 around the read position.
	win  [4][]float32
	live [4]bool

	// pos is the offset past win[1] in units of 1/dstRate source frames.
	pos int64

	buf    []float32
	bufPos int
	bufLen int
	eof    bool
	stalls int

	primed   bool
	finished bool
	err      error
}

// NewResampler wraps src so that it produces samples at dstRate.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: src=%d dst=%d", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := max(src.Channels(), 1)
	size := max(src.BufSize(), channels)
	size -= size % channels

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		buf:      make([]float32, size),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.bufPos >= r.bufLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		n -= n % r.channels
		r.bufPos, r.bufLen = 0, n

		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		}

		if n > 0 || r.eof {
			r.stalls = 0
			continue
		}
		r.stalls++
		if r.stalls >= maxStalls {
			return false, io.ErrNoProgress
		}
	}

	copy(dst, r.buf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	return true, nil
}

// fill loads slot i from the source, repeating slot i-1 past the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.win[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[i], r.win[i-1])
	}
	r.live[i] = ok

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		r.finished = true
		return nil
	}

	copy(r.win[0], r.win[1])
	r.live[0], r.live[1] = true, true

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	r.live[0], r.live[1], r.live[2] = r.live[1], r.live[2], r.live[3]

	return r.fill(3)
}

// ReadSamples produces interleaved samples at the target rate. len(dst) must
// be a multiple of the channel count. It returns (0, io.EOF) once every
// output frame has been delivered.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.err != nil {
		return 0, r.err
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			r.err = err
			return 0, err
		}
	}

	written := 0
	for written+r.channels <= len(dst) && !r.finished {
		for r.pos >= r.dstRate {
			r.pos -= r.dstRate
			if err := r.advance(); err != nil {
				r.err = err
				return written, err
			}
		}

		if !r.live[1] || (r.pos > 0 && !r.live[2]) {
			r.finished = true
			break
		}

		x := float32(float64(r.pos) / float64(r.dstRate))
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written += r.channels
		r.pos += r.srcRate
	}

	if written == 0 && r.finished {
		return 0, io.EOF
	}

	return written, nil
}
