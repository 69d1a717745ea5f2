// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"

	"github.com/mudler/xlog"

	"github.com/ik5/pcmwave"
	cliContext "github.com/ik5/pcmwave/internal/cli/context"
)

type CopyCMD struct {
	Src string `arg:"" help:"WAVE file to read"`
	Dst string `arg:"" help:"WAVE file to create"`

	BufferFrames int `short:"f" default:"4096" help:"Frames moved per chunk"`
}

func (c *CopyCMD) Run(ctx *cliContext.Context) error {
	report, err := pcmwave.CopyFile(c.Dst, c.Src, c.BufferFrames)
	if err != nil {
		return err
	}

	xlog.Info("copy verified", "src", c.Src, "dst", c.Dst, "format", report.Format.String(), "frames", report.Frames)
	fmt.Fprintf(ctx.Out(), "%s: %s, %d frames\n", c.Dst, report.Format, report.Frames)

	return nil
}
