// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into an
// audio.Source. Uncompressed files with 8, 16, 24 or 32-bit samples are
// supported, at any channel count and sample rate:
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are normalized to [-1, 1) by dividing by 2^(bits-1).
//
// go-audio seeks between chunks, so an input that is not an io.ReadSeeker
// is read into memory first.
//
// # Errors
//
//   - ErrNotAiffFile: the input has no FORM/AIFF header
//   - ErrUnsupportedBitDepth: the COMM chunk declares an unsupported sample size
//   - ErrUnsupportedAiffLayout: the COMM chunk has no channels or no rate
//   - ErrDecode: reading the sound data failed
//
// AIFF-C (.aifc) compressed files are not supported.
package aiff
