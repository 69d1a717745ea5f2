// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// encodeSamples writes src into dst using the WAVE encoding for bits.
// 8-bit values are unsigned; wider values are signed little-endian.
// Out of range values are clamped.
func encodeSamples(dst []byte, src []int, bits int) error {
	switch bits {
	case 8:
		for i, v := range src {
			dst[i] = byte(clamp(v, 0, 255))
		}
	case 16:
		for i, v := range src {
			putUint16LE(dst[2*i:], uint16(int16(clamp(v, -1<<15, 1<<15-1))))
		}
	case 24:
		for i, v := range src {
			copy(dst[3*i:3*i+3], goaudio.Int32toInt24LEBytes(int32(clamp(v, -1<<23, 1<<23-1))))
		}
	default:
		return fmt.Errorf("%w: cannot encode %d-bit samples", ErrUnsupportedSampleSize, bits)
	}

	return nil
}

// decodeSamples is the inverse of encodeSamples. It also accepts 32-bit
// containers, which a Reader may find in files produced elsewhere.
func decodeSamples(dst []int, src []byte, bytesPerSample int) error {
	switch bytesPerSample {
	case 1:
		for i := range dst {
			dst[i] = int(src[i])
		}
	case 2:
		for i := range dst {
			dst[i] = int(int16(uint16LE(src[2*i:])))
		}
	case 3:
		for i := range dst {
			dst[i] = int(goaudio.Int24LETo32(src[3*i : 3*i+3]))
		}
	case 4:
		for i := range dst {
			dst[i] = int(int32(uint32LE(src[4*i:])))
		}
	default:
		return fmt.Errorf("%w: cannot decode %d-byte samples", ErrUnsupportedSampleSize, bytesPerSample)
	}

	return nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
