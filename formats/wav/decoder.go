// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"

	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/utils"
)

// Decoder produces an audio.Source from a WAVE stream of any bit depth the
// Reader understands.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	wr, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	return NewPCMSource(wr), nil
}

// PCMSource presents a Reader as normalized float32 samples.
type PCMSource struct {
	r    *Reader
	raw  []byte
	ints []int
}

// NewPCMSource wraps r. Closing the source closes r.
func NewPCMSource(r *Reader) *PCMSource {
	return &PCMSource{r: r}
}

func (s *PCMSource) SampleRate() int { return s.r.SampleRate() }
func (s *PCMSource) Channels() int   { return s.r.Channels() }
func (s *PCMSource) BufSize() int    { return 4096 }
func (s *PCMSource) Close() error    { return s.r.Close() }

// ReadSamples fills dst with whole frames. len(dst) must be a multiple of
// the channel count.
func (s *PCMSource) ReadSamples(dst []float32) (int, error) {
	channels := s.r.Channels()
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	align := s.r.BlockAlign()
	if cap(s.raw) < frames*align {
		s.raw = make([]byte, frames*align)
		s.ints = make([]int, frames*channels)
	}
	s.raw = s.raw[:frames*align]

	n, err := s.r.GetSamples(frames, s.raw)
	if errors.Is(err, io.EOF) {
		return 0, io.EOF
	}

	samples := n * channels
	width := s.r.Format().BytesPerSample()
	if derr := decodeSamples(s.ints[:samples], s.raw, width); derr != nil {
		return 0, derr
	}
	for i, v := range s.ints[:samples] {
		dst[i] = utils.PCMToFloat32(v, width*8)
	}

	return samples, err
}
