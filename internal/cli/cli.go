// SPDX-License-Identifier: EPL-2.0

package cli

import (
	cliContext "github.com/ik5/pcmwave/internal/cli/context"
)

var CLI struct {
	cliContext.Context `embed:""`

	Info      InfoCMD      `cmd:"" help:"Print the header fields of a WAVE file"`
	Copy      CopyCMD      `cmd:"" help:"Copy a WAVE file through the codec and verify the result"`
	Transcode TranscodeCMD `cmd:"" help:"Convert WAVE, MP3, Ogg Vorbis or AIFF audio into a PCM WAVE file"`
}
