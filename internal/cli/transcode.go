// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mudler/xlog"

	"github.com/ik5/pcmwave"
	"github.com/ik5/pcmwave/audio"
	"github.com/ik5/pcmwave/formats/aiff"
	"github.com/ik5/pcmwave/formats/mp3"
	"github.com/ik5/pcmwave/formats/vorbis"
	"github.com/ik5/pcmwave/formats/wav"
	cliContext "github.com/ik5/pcmwave/internal/cli/context"
)

// ErrUnsupportedInput is returned for an input extension with no decoder.
var ErrUnsupportedInput = errors.New("no decoder for input file")

// Decoders maps input extensions to the decoder that reads them.
func Decoders() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})

	return registry
}

type TranscodeCMD struct {
	Src string `arg:"" help:"Audio file to read (wav, mp3, ogg, aiff)"`
	Dst string `arg:"" help:"WAVE file to create"`

	Bits   int  `short:"b" default:"16" help:"Bits per output sample (8, 16 or 24)"`
	Buffer int  `default:"4096" help:"Samples read per chunk"`
	Mono   bool `short:"m" help:"Mix all channels down to one"`
}

func (t *TranscodeCMD) Run(ctx *cliContext.Context) error {
	ext := filepath.Ext(t.Src)
	dec, ok := Decoders().Get(ext)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedInput, ext)
	}

	in, err := os.Open(t.Src)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return err
	}

	var stream audio.Source = src
	if t.Mono {
		stream = audio.NewMonoMixer(stream)
	}
	defer stream.Close()

	format, err := pcmwave.TargetFormat(stream, t.Bits)
	if err != nil {
		return err
	}
	if format.SampleRate != stream.SampleRate() {
		xlog.Info("resampling", "from", stream.SampleRate(), "to", format.SampleRate)
		if stream, err = audio.NewResampler(stream, format.SampleRate); err != nil {
			return err
		}
	}

	w, err := wav.Create(t.Dst, format)
	if err != nil {
		return err
	}

	frames, err := pcmwave.Transcode(w, stream, t.Buffer)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	xlog.Info("transcoded", "src", t.Src, "dst", t.Dst, "format", format.String(), "frames", frames)
	fmt.Fprintf(ctx.Out(), "%s: %s, %d frames\n", t.Dst, format, frames)

	return nil
}
