// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"slices"
)

// MaxChannels is the largest channel count a Writer accepts.
const MaxChannels = 8

// acceptedSampleRates is sorted ascending; NearestSampleRate depends on it.
var acceptedSampleRates = []int{8000, 11025, 16000, 22050, 24000, 32000, 44100, 48000}

var acceptedBitDepths = []int{8, 16, 24}

// Format describes the PCM layout of a WAVE file.
//
// Byte rate and block align are derived on demand and never stored.
type Format struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// BytesPerSample is the container size of one sample, rounding odd bit
// depths (for example 12 or 20 bits) up to whole bytes.
func (f Format) BytesPerSample() int {
	return (f.BitsPerSample + 7) / 8
}

// BlockAlign is the size of one frame in bytes.
func (f Format) BlockAlign() int {
	return f.Channels * f.BytesPerSample()
}

// ByteRate is the number of bytes per second of audio.
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

func (f Format) String() string {
	return fmt.Sprintf("{channels=%d rate=%d bits=%d}", f.Channels, f.SampleRate, f.BitsPerSample)
}

// Validate reports whether a Writer can produce f.
//
// The error wraps ErrBadFormat and names the whole descriptor.
func (f Format) Validate() error {
	if f.Channels < 1 || f.Channels > MaxChannels ||
		!slices.Contains(acceptedBitDepths, f.BitsPerSample) ||
		!slices.Contains(acceptedSampleRates, f.SampleRate) {
		return fmt.Errorf("%w: %s", ErrBadFormat, f)
	}

	return nil
}

// ValidateFormat is f.Validate in function form.
func ValidateFormat(f Format) error {
	return f.Validate()
}

// AcceptedSampleRates returns the sample rates a Writer accepts, ascending.
func AcceptedSampleRates() []int {
	return slices.Clone(acceptedSampleRates)
}

// NearestSampleRate returns the accepted sample rate closest to rate.
// Ties go to the higher rate so no bandwidth is lost.
func NearestSampleRate(rate int) int {
	best := acceptedSampleRates[0]
	for _, r := range acceptedSampleRates[1:] {
		if abs(r-rate) <= abs(best-rate) {
			best = r
		}
	}

	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
