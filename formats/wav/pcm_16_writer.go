// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// chunkBytes bounds the staging buffer WriteWAV16 converts samples into.
const chunkBytes = 8192

// WriteWAV16 writes a complete mono 16-bit PCM WAVE stream to w. Unlike a
// Writer it needs no Seek, since the sample count is known up front.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	f := Format{Channels: 1, SampleRate: sampleRate, BitsPerSample: 16}
	if err := f.Validate(); err != nil {
		return err
	}
	if DataLen(f, len(samples)) > maxDataLen {
		return fmt.Errorf("%w: %d samples", ErrDataTooLarge, len(samples))
	}

	header := EncodeHeader(f, len(samples))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrIO, err)
	}

	buf := make([]byte, min(len(samples)*2, chunkBytes))
	for len(samples) > 0 {
		n := min(len(samples), len(buf)/2)
		for i, v := range samples[:n] {
			putUint16LE(buf[2*i:], uint16(v))
		}

		if _, err := w.Write(buf[:2*n]); err != nil {
			return fmt.Errorf("%w: writing samples: %w", ErrIO, err)
		}
		samples = samples[n:]
	}

	return nil
}
