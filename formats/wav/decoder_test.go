// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/pcmwave/audio"
)

func decodeAll(t testing.TB, src audio.Source, size int) []float32 {
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

func TestDecoder_Normalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
		pcm  []byte
		want []float32
	}{
		{"8-bit", 8, []byte{128, 0, 192, 64}, []float32{0, -1, 0.5, -0.5}},
		{"16-bit", 16, []byte{0, 0, 0, 0x80, 0, 0x40, 0, 0xc0}, []float32{0, -1, 0.5, -0.5}},
		{"24-bit", 24, []byte{0, 0, 0, 0, 0, 0x80, 0, 0, 0x40, 0, 0, 0xc0}, []float32{0, -1, 0.5, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := writeStream(t, Format{Channels: 2, SampleRate: 16000, BitsPerSample: tt.bits}, tt.pcm)

			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 16000 || src.Channels() != 2 {
				t.Errorf("source = %d Hz, %d ch", src.SampleRate(), src.Channels())
			}

			got := decodeAll(t, src, 2)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecoder_RejectsNonWAVE(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("ID3\x03 definitely mp3"))); !errors.Is(err, ErrFormatParse) {
		t.Errorf("Decode() error = %v, want ErrFormatParse", err)
	}
}

func TestPCMSource_ReadSamples(t *testing.T) {
	t.Parallel()

	data := writeStream(t, Format{Channels: 2, SampleRate: 8000, BitsPerSample: 16}, pattern(40))
	src := NewPCMSource(newTestReader(t, data))

	if _, err := src.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(odd) error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}

	buf := make([]float32, 16)
	if n, err := src.ReadSamples(buf); n != 16 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 16, nil", n, err)
	}
	if n, err := src.ReadSamples(buf); n != 4 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
	}

	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestPCMSource_TruncatedData(t *testing.T) {
	t.Parallel()

	data := writeStream(t, Format{Channels: 1, SampleRate: 8000, BitsPerSample: 16}, pattern(40))
	src := NewPCMSource(newTestReader(t, data[:HeaderSize+11]))

	n, err := src.ReadSamples(make([]float32, 20))
	if n != 5 || !errors.Is(err, ErrIO) {
		t.Errorf("ReadSamples() = %d, %v; want 5, ErrIO", n, err)
	}
}

func TestDecoder_RegistersWithRegistry(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	registry.Register("wav", Decoder{})

	d, ok := registry.Get(".WAV")
	if !ok {
		t.Fatal("Registry.Get() did not find the wav decoder")
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, []int16{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	src, err := d.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := decodeAll(t, src, 64); len(got) != 3 {
		t.Errorf("decoded %d samples, want 3", len(got))
	}
}

func BenchmarkPCMSource_ReadSamples(b *testing.B) {
	f := Format{Channels: 2, SampleRate: 44100, BitsPerSample: 24}
	data := writeStream(b, f, pattern(44100*f.BlockAlign()))
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(data))
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
