// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes canonical RIFF/WAVE files holding linear PCM.
//
// # Layout
//
// A Writer always produces the 44-byte canonical header followed by the
// sample data:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + data length
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     format tag (1, PCM)
//	22      2     channels
//	24      4     sample rate
//	28      4     byte rate
//	32      2     block align
//	34      2     bits per sample
//	36      4     "data"
//	40      4     data length
//
// Tags are four ASCII bytes; numbers are little-endian. The data length is
// rounded up to an even count and a zero pad byte follows odd-sized data.
//
// # Writing
//
// Create accepts 1 to 8 channels, 8, 16 or 24 bits per sample and the rates
// listed by AcceptedSampleRates. The header is written at once with zero
// frames and patched by Close:
//
//	w, err := wav.Create("out.wav", wav.Format{Channels: 2, SampleRate: 44100, BitsPerSample: 16})
//	if err != nil {
//	    return err
//	}
//	if _, err := w.PutFrames(frames, pcm); err != nil {
//	    w.Close()
//	    return err
//	}
//	return w.Close()
//
// PutFrames takes raw interleaved samples (unsigned 8-bit, signed 16 and
// 24-bit little-endian); WriteBuffer takes a go-audio IntBuffer.
//
// # Reading
//
// Open and NewReader walk the RIFF chunks, skipping anything that is not fmt
// or data, and accept any PCM layout the file declares:
//
//	r, err := wav.Open("in.wav")
//	...
//	for {
//	    n, err := r.GetSamples(1024, buf)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// Decoder adapts a Reader to audio.Source for the processing pipeline, and
// WriteWAV16 writes a whole mono 16-bit file to a plain io.Writer.
//
// # Errors
//
// Every failure wraps one of the sentinels in errors.go, so callers can
// test with errors.Is: ErrBadFormat, ErrOpen, ErrIO, ErrFormatParse and the
// argument errors ErrShortBuffer and ErrClosed.
package wav
