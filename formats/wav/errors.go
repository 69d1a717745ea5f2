// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrBadFormat is returned when a Format is rejected before any I/O happens.
	ErrBadFormat = errors.New("unsupported WAVE format")

	// ErrOpen is returned when a path cannot be opened for the requested mode.
	ErrOpen = errors.New("cannot open WAVE file")

	// ErrIO is returned for read, write and seek failures.
	ErrIO = errors.New("WAVE I/O failure")

	// ErrFormatParse is returned when the input is not a well-formed PCM WAVE header.
	ErrFormatParse = errors.New("malformed PCM WAVE header")

	// ErrShortBuffer is returned when a caller buffer cannot hold the requested frames.
	ErrShortBuffer = errors.New("buffer too small for requested frames")

	// ErrDataTooLarge is returned when the data chunk would overflow its 32-bit length field.
	ErrDataTooLarge = errors.New("data chunk exceeds 32-bit length")

	// ErrClosed is returned when a closed Writer or Reader is used.
	ErrClosed = errors.New("WAVE session already closed")

	// ErrUnsupportedSampleSize is returned when samples cannot be converted to integers.
	ErrUnsupportedSampleSize = errors.New("unsupported sample size")
)
