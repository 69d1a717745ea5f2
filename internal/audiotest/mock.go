// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fakes shared by the package tests.
package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/orcaman/writerseeker"
)

// ErrInjected is returned by the failing fakes.
var ErrInjected = errors.New("audiotest: injected failure")

// MockSource generates frames from a waveform function. It satisfies
// audio.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   func(frame, channel int) float32

	// FailAfter makes ReadSamples return ErrInjected once that many frames
	// have been produced. Zero disables it.
	FailAfter int
	Closed    bool
}

// NewMockSource creates a source of the given number of frames.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource generates the same sine tone on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource produces frame/frames on channel 0 and its negation on the
// other channels.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		v := float32(frame) / float32(frames)
		if channel > 0 {
			return -v
		}
		return v
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter > 0 && m.generated >= m.FailAfter {
		return 0, ErrInjected
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	limit := m.frames
	if m.FailAfter > 0 {
		limit = min(limit, m.FailAfter)
	}
	count := min(len(dst)/m.channels, limit-m.generated)

	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}

// StallSource never produces data and never reports an error.
type StallSource struct{}

func (StallSource) SampleRate() int { return 8000 }
func (StallSource) Channels() int   { return 1 }
func (StallSource) BufSize() int    { return 64 }
func (StallSource) Close() error    { return nil }

func (StallSource) ReadSamples([]float32) (int, error) {
	return 0, nil
}

// LimitedWriteSeeker is an in-memory io.WriteSeeker that accepts at most Limit
// bytes in total and then returns short writes with ErrInjected.
type LimitedWriteSeeker struct {
	writerseeker.WriterSeeker

	Limit   int
	written int
}

func (l *LimitedWriteSeeker) Write(p []byte) (int, error) {
	room := l.Limit - l.written
	if room >= len(p) {
		n, err := l.WriterSeeker.Write(p)
		l.written += n
		return n, err
	}

	n, _ := l.WriterSeeker.Write(p[:max(room, 0)])
	l.written += n

	return n, ErrInjected
}

// Bytes returns everything written so far.
func (l *LimitedWriteSeeker) Bytes() []byte {
	b, _ := io.ReadAll(l.WriterSeeker.Reader())
	return b
}

// FailingSeeker accepts writes and fails every Seek.
type FailingSeeker struct {
	writerseeker.WriterSeeker
}

func (*FailingSeeker) Seek(int64, int) (int64, error) {
	return 0, ErrInjected
}
