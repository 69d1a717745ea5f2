// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    float32
		bits int
		want int
	}{
		{"16-bit zero", 0, 16, 0},
		{"16-bit max", 1, 16, 32767},
		{"16-bit min", -1, 16, -32767},
		{"16-bit half", 0.5, 16, 16383},
		{"16-bit clamp high", 2.5, 16, 32767},
		{"16-bit clamp low", -7, 16, -32767},
		{"8-bit max", 1, 8, 127},
		{"8-bit min", -1, 8, -127},
		{"24-bit max", 1, 24, 8388607},
		{"24-bit min", -1, 24, -8388607},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt(tt.x, tt.bits); got != tt.want {
				t.Errorf("Float32ToInt(%v, %d) = %d, want %d", tt.x, tt.bits, got, tt.want)
			}
		})
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    int
		bits int
		want float32
	}{
		{0, 16, 0},
		{-32768, 16, -1},
		{16384, 16, 0.5},
		{-128, 8, -1},
		{64, 8, 0.5},
		{-8388608, 24, -1},
		{4194304, 24, 0.5},
	}

	for _, tt := range tests {
		if got := IntToFloat32(tt.v, tt.bits); got != tt.want {
			t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.v, tt.bits, got, tt.want)
		}
	}
}

func TestFloat32ToPCM_EightBitOffset(t *testing.T) {
	t.Parallel()

	if got := Float32ToPCM(0, 8); got != 128 {
		t.Errorf("Float32ToPCM(0, 8) = %d, want 128", got)
	}
	if got := Float32ToPCM(1, 8); got != 255 {
		t.Errorf("Float32ToPCM(1, 8) = %d, want 255", got)
	}
	if got := Float32ToPCM(-1, 8); got != 1 {
		t.Errorf("Float32ToPCM(-1, 8) = %d, want 1", got)
	}
	if got := Float32ToPCM(-0.5, 16); got != -16383 {
		t.Errorf("Float32ToPCM(-0.5, 16) = %d, want -16383", got)
	}
}

func TestPCMToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24} {
		for x := float32(-1); x <= 1; x += 0.125 {
			got := PCMToFloat32(Float32ToPCM(x, bits), bits)
			// one step of quantization at the given depth
			tolerance := 2.0 / float64(int64(1)<<(bits-1))
			if math.Abs(float64(got-x)) > tolerance {
				t.Errorf("bits=%d: round trip of %v = %v", bits, x, got)
			}
		}
	}
}

func TestFloat32ToInt_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt(-1, 16)
	for x := float32(-1); x <= 1; x += 0.001 {
		cur := Float32ToInt(x, 16)
		if cur < prev {
			t.Fatalf("Float32ToInt not monotonic at %v: %d < %d", x, cur, prev)
		}
		prev = cur
	}
}

func BenchmarkFloat32ToPCM(b *testing.B) {
	samples := make([]float32, 4096)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}
	out := make([]int, len(samples))

	b.ReportAllocs()

	for b.Loop() {
		for i, x := range samples {
			out[i] = Float32ToPCM(x, 24)
		}
	}
}
