// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrDecode wraps every failure reported by the Vorbis decoder.
var ErrDecode = errors.New("vorbis decode failed")
