// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives that feed the WAVE writer.
//
// A Source produces interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns the number of float32 values written, not frames. A
// finished stream returns (0, io.EOF); a final batch may arrive together with
// io.EOF.
//
// Decoders for the formats under formats/ produce Sources and are looked up by
// file extension through a Registry:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//	d, ok := registry.Get(filepath.Ext(name))
//
// # Processing
//
// Resampler changes the sample rate with Catmull-Rom interpolation. Its
// position is kept as an exact fraction, so the output length depends only on
// the input length and the two rates:
//
//	r, err := audio.NewResampler(src, 44100)
//
// MonoMixer averages all channels of a Source into one.
package audio
