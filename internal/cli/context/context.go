// SPDX-License-Identifier: EPL-2.0

package cliContext

import (
	"io"
	"os"
)

// Context holds the global flags every command receives.
type Context struct {
	LogLevel  *string `env:"PCMWAVE_LOG_LEVEL" enum:"error,warn,info,debug,trace" help:"Set the level of logs to output [${enum}]"`
	LogFormat *string `env:"PCMWAVE_LOG_FORMAT" default:"default" enum:"default,text,json" help:"Set the format of logs to output [${enum}]"`

	out io.Writer `kong:"-"`
}

// Out is where commands print their results.
func (c *Context) Out() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// SetOut redirects command output.
func (c *Context) SetOut(w io.Writer) { c.out = w }
