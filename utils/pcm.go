// SPDX-License-Identifier: EPL-2.0

package utils

// fullScale is 2^(bits-1), the magnitude of the most negative sample.
func fullScale(bits int) float32 {
	return float32(int64(1) << (bits - 1))
}

// Float32ToInt converts x in [-1,1] to a signed integer sample of the given
// bit depth. Values outside the range are clamped; the positive peak maps to
// 2^(bits-1)-1 so nothing overflows.
func Float32ToInt(x float32, bits int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * (fullScale(bits) - 1))
}

// IntToFloat32 converts a signed integer sample to [-1,1).
func IntToFloat32(v int, bits int) float32 {
	return float32(v) / fullScale(bits)
}

// Float32ToPCM converts x to the value a WAVE file stores: unsigned with a
// 128 offset for 8-bit samples, signed for wider ones.
func Float32ToPCM(x float32, bits int) int {
	v := Float32ToInt(x, bits)
	if bits == 8 {
		v += 128
	}

	return v
}

// PCMToFloat32 is the inverse of Float32ToPCM.
func PCMToFloat32(v int, bits int) float32 {
	if bits == 8 {
		v -= 128
	}

	return IntToFloat32(v, bits)
}
