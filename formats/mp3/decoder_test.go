// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/pcmwave/audio"
)

// fakeDecoder serves 16-bit samples the way gomp3.Decoder does. chunk caps
// the bytes returned per Read when non-zero.
type fakeDecoder struct {
	rate  int
	data  []byte
	chunk int
	err   error
}

func newFake(rate int, samples ...int16) *fakeDecoder {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return &fakeDecoder{rate: rate, data: data}
}

func (f *fakeDecoder) SampleRate() int { return f.rate }

func (f *fakeDecoder) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		if f.err != nil {
			return 0, f.err
		}
		return 0, io.EOF
	}
	if f.chunk > 0 && len(p) > f.chunk {
		p = p[:f.chunk]
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func readAll(t *testing.T, src audio.Source, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": nil,
	} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: Decode() error = %v, want ErrDecode", name, err)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(newFake(44100))
	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("source = %d Hz, %d ch", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_Conversion(t *testing.T) {
	t.Parallel()

	src := newSource(newFake(22050, 0, 16384, -16384, -32768, 32767, 1))
	got := readAll(t, src, 64)

	want := []float32{0, 0.5, -0.5, -1, 32767.0 / 32768, 1.0 / 32768}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_FragmentedReads(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i * 13)
	}
	fake := newFake(48000, samples...)
	fake.chunk = 3

	got := readAll(t, newSource(fake), 6)
	if len(got) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768; got[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_DropsTrailingPartialFrame(t *testing.T) {
	t.Parallel()

	src := newSource(newFake(44100, 100, 200, 300))
	if got := readAll(t, src, 8); len(got) != 2 {
		t.Errorf("got %d samples, want 2", len(got))
	}
}

func TestSource_EOFIsRepeated(t *testing.T) {
	t.Parallel()

	src := newSource(newFake(44100, 1, 2))
	buf := make([]float32, 4)

	if n, err := src.ReadSamples(buf); n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}
	for range 2 {
		if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
			t.Fatalf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
		}
	}
}

func TestSource_Arguments(t *testing.T) {
	t.Parallel()

	src := newSource(newFake(44100, 1, 2))
	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(3) error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	fake := newFake(44100)
	fake.err = boom

	_, err := newSource(fake).ReadSamples(make([]float32, 4))
	if !errors.Is(err, ErrDecode) || !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want ErrDecode wrapping the cause", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(newFake(44100, samples...))
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
