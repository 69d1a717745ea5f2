// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"time"

	"github.com/ik5/pcmwave/formats/wav"
	cliContext "github.com/ik5/pcmwave/internal/cli/context"
)

type InfoCMD struct {
	Filename string `arg:"" help:"WAVE file to inspect"`
}

func (i *InfoCMD) Run(ctx *cliContext.Context) error {
	r, err := wav.Open(i.Filename)
	if err != nil {
		return err
	}
	defer r.Close()

	var duration time.Duration
	if r.SampleRate() > 0 {
		duration = time.Duration(r.Frames()) * time.Second / time.Duration(r.SampleRate())
	}

	out := ctx.Out()
	fmt.Fprintf(out, "file:            %s\n", i.Filename)
	fmt.Fprintf(out, "format tag:      %d\n", r.AudioFormat())
	fmt.Fprintf(out, "channels:        %d\n", r.Channels())
	fmt.Fprintf(out, "sample rate:     %d\n", r.SampleRate())
	fmt.Fprintf(out, "bits per sample: %d\n", r.BitsPerSample())
	fmt.Fprintf(out, "block align:     %d\n", r.BlockAlign())
	fmt.Fprintf(out, "byte rate:       %d\n", r.Format().ByteRate())
	fmt.Fprintf(out, "frames:          %d\n", r.Frames())
	fmt.Fprintf(out, "duration:        %s\n", duration)

	return nil
}
