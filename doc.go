// Package audesc reads stream metadata from audio file headers without
// decoding audio.
//
// It supports WAV, FLAC and MP3 with a unified API: every decoder reports
// duration, sampling rate, bit rate, channel count and sample count, each
// either known or explicitly unknown. Only the bytes a format needs are
// read, once, when the decoder is opened.
//
// # Quick Start
//
// Describing an audio file:
//
//	desc, err := audesc.Describe("song.flac")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(desc)
//	// sr: 44100 sample/sec, duration: 215.3 sec, br: unknown b/sec, channels: 2, samples: 9494730
//
// # Supported Formats
//
//   - WAV: canonical 44-byte RIFF/WAVE header
//   - FLAC: STREAMINFO block at the start of the stream
//   - MP3: first MPEG audio frame header (MPEG-1, 2 and 2.5, Layers I to III)
//
// # Known and Unknown
//
// Fields a format cannot supply are Unknown, never zero. A known zero is
// a real value: an MP3 free-format frame has a known bit rate of 0.
//
//	if br, ok := desc.BitRate.Get(); ok {
//		fmt.Printf("%d kbps\n", br/1000)
//	}
//
// Duration and sample count are always unknown for MP3, since a single
// frame header cannot determine them.
//
// # Decoders
//
// Open returns a Decoder for the file. Its getters read the header that
// was loaded when the file was opened:
//
//	d, err := audesc.Open("song.mp3", audesc.WithSkipID3v2())
//	if err != nil {
//		return err
//	}
//	rate, err := d.SamplingRate()
//
// # Batch Use
//
// Describe many files concurrently:
//
//	results, err := audesc.DescribeMany(ctx, paths, audesc.WithConcurrency(8))
//	if err != nil {
//		return err // context cancelled
//	}
//	for _, r := range results {
//		if r.Err != nil {
//			log.Printf("%s: %v", r.Path, r.Err)
//			continue
//		}
//		fmt.Printf("%s: %s\n", r.Path, r.Description)
//	}
//
// # Error Handling
//
// Errors are typed and matched with errors.As:
//
//   - FileNotFoundError: the path does not exist
//   - UnsupportedFormatError: no decoder recognizes the file
//   - OutOfBoundsError: the file is shorter than the header the format needs
//   - CorruptedFileError: a header field violates the format (FLAC sample
//     rate out of range, no MP3 frame sync)
//
// # Logging
//
// Decoders log at debug level through log/slog when a logger is supplied
// with WithLogger. Nothing is logged by default.
package audesc
