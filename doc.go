// SPDX-License-Identifier: EPL-2.0

// Package pcmwave reads, writes and converts canonical PCM WAVE files.
//
// The formats/wav subpackage holds the codec: a Writer that emits the
// 44-byte header and patches it on Close, a Reader that walks RIFF chunks
// with go-audio/riff, and the format validator shared by both. This package
// builds the two whole-file operations on top of it.
//
// # Copying
//
// CopyFile streams one WAVE file into another and checks that both ends
// report the same format tag, channel count, rate, sample size and frame
// count, before the writer is closed and again after the copy is reopened:
//
//	report, err := pcmwave.CopyFile("copy.wav", "orig.wav", pcmwave.DefaultBufferFrames)
//	if errors.Is(err, pcmwave.ErrMismatch) {
//	    // the copy does not describe the same stream
//	}
//
// # Transcoding
//
// Transcode writes any audio.Source (WAVE, MP3, Ogg Vorbis or AIFF, see the
// formats subpackages) to a Writer. TargetFormat picks the output format by
// snapping the source rate to an accepted one; bridge the two rates with
// audio.NewResampler:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	f, err := pcmwave.TargetFormat(src, 16)
//	res, _ := audio.NewResampler(src, f.SampleRate)
//	w, _ := wav.Create("out.wav", f)
//	frames, err := pcmwave.Transcode(w, res, 0)
//	err = w.Close()
//
// The cmd/pcmwave command exposes both operations along with a header dump.
package pcmwave
