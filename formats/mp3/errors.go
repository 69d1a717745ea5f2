// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrDecode wraps every failure reported by the MP3 decoder.
var ErrDecode = errors.New("mp3 decode failed")
