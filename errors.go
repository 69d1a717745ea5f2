// SPDX-License-Identifier: EPL-2.0

package pcmwave

import "errors"

// ErrMismatch reports a copy whose two ends disagree on a header field or
// a source whose layout does not fit the destination writer.
var ErrMismatch = errors.New("stream descriptors disagree")
