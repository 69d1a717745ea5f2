// SPDX-License-Identifier: EPL-2.0

package pcmwave

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/mudler/xlog"

	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/formats/wav"
	"github.com/ik5/pcmwave/utils"
)

// maxStalls is how many empty reads in a row Transcode tolerates.
const maxStalls = 100

// TargetFormat returns the WAVE format a source should be written as: its
// channel count, its rate snapped to the nearest accepted one and the given
// sample size. When the rate changes, wrap src in audio.NewResampler.
func TargetFormat(src audio.Source, bits int) (wav.Format, error) {
	f := wav.Format{
		Channels:      src.Channels(),
		SampleRate:    wav.NearestSampleRate(src.SampleRate()),
		BitsPerSample: bits,
	}
	if err := f.Validate(); err != nil {
		return wav.Format{}, err
	}

	return f, nil
}

// Transcode reads src to the end and writes it through w, converting each
// float32 sample to the writer's sample size. bufSize is counted in samples;
// zero uses src.BufSize(). It returns the number of frames written.
func Transcode(w *wav.Writer, src audio.Source, bufSize int) (int, error) {
	channels := w.Channels()
	if src.Channels() != channels || src.SampleRate() != w.SampleRate() {
		return 0, fmt.Errorf("%w: source %d Hz %d ch, writer %s",
			ErrMismatch, src.SampleRate(), src.Channels(), w.Format())
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	bufSize = max(bufSize-bufSize%channels, channels)

	bits := w.BitsPerSample()
	samples := make([]float32, bufSize)
	ints := make([]int, bufSize)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: w.SampleRate()},
		SourceBitDepth: bits,
	}

	total, stalls := 0, 0
	for {
		n, err := src.ReadSamples(samples)
		if n%channels != 0 {
			return total, fmt.Errorf("%w: source returned %d samples for %d channels", ErrMismatch, n, channels)
		}
		if n > 0 {
			stalls = 0
			for i, v := range samples[:n] {
				ints[i] = utils.Float32ToPCM(v, bits)
			}
			buf.Data = ints[:n]

			written, werr := w.WriteBuffer(buf)
			total += written
			if werr != nil {
				return total, werr
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			xlog.Debug("pcmwave: transcoded", "format", w.Format().String(), "frames", total)
			return total, nil
		case err != nil:
			return total, err
		case n == 0:
			stalls++
			if stalls >= maxStalls {
				return total, io.ErrNoProgress
			}
		}
	}
}
