package audesc

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/audesc/internal/registry"
	"github.com/simonhull/audesc/internal/types"

	// Register the format decoders.
	_ "github.com/simonhull/audesc/internal/flac"
	_ "github.com/simonhull/audesc/internal/mp3"
	_ "github.com/simonhull/audesc/internal/wave"
)

// Result is the outcome of describing one file with DescribeMany.
type Result struct {
	// Path is the input path.
	Path string

	// Format is the format the file was opened as (FormatUnknown if
	// detection failed).
	Format Format

	// Description is valid only when Err is nil.
	Description Description

	// Err is the per-file error, if any.
	Err error
}

// Open opens the audio file at path and loads the header its format needs.
//
// The format is chosen by file extension; files with a missing or
// unrecognized extension are sniffed by their leading bytes. WithFormat
// overrides both.
//
// Open performs all file I/O. The returned decoder holds no file handle and
// needs no Close.
//
// Example:
//
//	d, err := audesc.Open("song.wav")
//	if err != nil {
//		return err
//	}
//	sr, err := d.SamplingRate()
func Open(path string, opts ...Option) (Decoder, error) {
	return open(path, applyOptions(opts))
}

// Describe opens the file at path and returns its Description.
//
// Example:
//
//	desc, err := audesc.Describe("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Println(desc.SamplingRate, desc.BitRate)
func Describe(path string, opts ...Option) (Description, error) {
	d, err := Open(path, opts...)
	if err != nil {
		return Description{}, err
	}
	return d.Describe()
}

func open(path string, options *openOptions) (Decoder, error) {
	format, err := resolveFormat(path, options)
	if err != nil {
		return nil, err
	}

	// Find decoder for this format
	factory := registry.Get(format)
	if factory == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no decoder available for format %s", format),
		}
	}

	d, err := factory(path, options.decoder)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", format, err)
	}
	return d, nil
}

// resolveFormat applies WithFormat, then the extension, then sniffing.
func resolveFormat(path string, options *openOptions) (Format, error) {
	log := options.decoder.Log()

	if options.format != FormatUnknown {
		log.Debug("format forced", "path", path, "format", options.format.String())
		return options.format, nil
	}

	if f := types.FormatFromPath(path); f != FormatUnknown {
		return f, nil
	}

	f, err := DetectFormat(path)
	if err != nil {
		return FormatUnknown, err
	}
	log.Debug("format detected", "path", path, "format", f.String())
	return f, nil
}

// DescribeMany describes multiple audio files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines, or
// the limit set with WithConcurrency. Results are returned in the same
// order as the input paths. A file that fails to open or describe does
// not stop the others; its error is reported in Result.Err.
//
// The returned error is non-nil only when ctx is cancelled, in which case
// no results are returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := audesc.DescribeMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
func DescribeMany(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)
	limit := options.concurrency
	if limit < 1 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = describe(path, options)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func describe(path string, options *openOptions) Result {
	r := Result{Path: path}

	d, err := open(path, options)
	if err != nil {
		r.Err = err
		return r
	}
	r.Format = d.Format()

	r.Description, r.Err = d.Describe()
	return r
}
