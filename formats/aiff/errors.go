// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not an AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a sample size other than 8, 16, 24 or 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout indicates a COMM chunk without usable channels or rate
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrDecode wraps failures while reading sound data
	ErrDecode = errors.New("AIFF decode failed")
)
