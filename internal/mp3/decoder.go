// Package mp3 reads stream metadata from the first MPEG audio frame header.
package mp3

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/simonhull/audesc/internal/binary"
	"github.com/simonhull/audesc/internal/registry"
	"github.com/simonhull/audesc/internal/types"
)

const frameHeaderSize = 4

// Decoder reads MP3 metadata from the first frame header in the file.
//
// The frame header is located lazily: the first getter that needs it runs
// the sync search, and the result (offset or failure) is kept for the
// lifetime of the decoder. Duration, NumSamples and SampleWidth are always
// unknown since a single frame header cannot determine them.
type Decoder struct {
	hdr   *binary.Header
	log   *slog.Logger
	start int

	locate   func() (int, error)
	searches int
}

// New loads the file at path for the frame sync search.
//
// The whole file is loaded unless opts.MaxScanBytes bounds the window.
func New(path string, opts types.Options) (*Decoder, error) {
	var (
		hdr *binary.Header
		err error
	)
	if opts.MaxScanBytes > 0 {
		hdr, err = binary.LoadAtMost(path, binary.Range{Start: 0, End: opts.MaxScanBytes})
	} else {
		hdr, err = binary.Load(path, binary.Range{Start: 0, End: binary.OpenEnd})
	}
	if err != nil {
		return nil, fmt.Errorf("load MP3 data: %w", err)
	}

	d := &Decoder{
		hdr: hdr,
		log: opts.Log().With("format", types.FormatMP3.String(), "path", path),
	}
	d.log.Debug("header loaded", "range", hdr.Range().String())

	if opts.SkipID3v2 {
		d.start = id3v2Length(hdr)
		if d.start > 0 {
			d.log.Debug("skipping ID3v2 tag", "length", d.start)
		}
	}

	d.locate = sync.OnceValues(d.search)
	return d, nil
}

// Path returns the file the data was loaded from.
func (d *Decoder) Path() string { return d.hdr.Path() }

// Format returns types.FormatMP3.
func (d *Decoder) Format() types.Format { return types.FormatMP3 }

func (d *Decoder) search() (int, error) {
	d.searches++

	p := findSync(d.hdr, d.start)
	if p < 0 {
		d.log.Debug("frame sync not found", "start", d.start, "scanned", d.hdr.Len())
		return 0, &types.CorruptedFileError{
			Path:   d.Path(),
			Offset: int64(d.start),
			Reason: "no MPEG frame sync found",
		}
	}
	if p+frameHeaderSize > d.hdr.Len() {
		return 0, &types.CorruptedFileError{
			Path:   d.Path(),
			Offset: int64(p),
			Reason: "truncated MPEG frame header",
		}
	}

	d.log.Debug("frame sync found", "offset", p)
	return p, nil
}

// FrameOffset returns the file offset of the first frame header.
func (d *Decoder) FrameOffset() (int64, error) {
	p, err := d.locate()
	if err != nil {
		return 0, err
	}
	return int64(p), nil
}

// field extracts (header >> shift) & mask from the first frame header.
func (d *Decoder) field(shift uint, mask uint64) (uint64, error) {
	p, err := d.locate()
	if err != nil {
		return 0, err
	}
	return binary.ShiftRight(d.hdr.Slice(p, p+frameHeaderSize), shift) & mask, nil
}

// Version returns the MPEG version of the first frame.
func (d *Decoder) Version() (Version, error) {
	code, err := d.field(versionShift, versionMask)
	if err != nil {
		return VersionUnknown, err
	}
	return versions[code], nil
}

// Layer returns the MPEG layer (1, 2 or 3); code 0 is reserved.
func (d *Decoder) Layer() (types.Value[int], error) {
	code, err := d.field(layerShift, layerMask)
	if err != nil {
		return types.Unknown[int](), err
	}
	if code == 0 {
		return types.Unknown[int](), nil
	}
	return types.Known(4 - int(code)), nil
}

// SamplingRate returns the sample rate in Hz of the first frame.
func (d *Decoder) SamplingRate() (types.Value[int], error) {
	code, err := d.field(versionShift, versionMask)
	if err != nil {
		return types.Unknown[int](), err
	}
	idx, err := d.field(sampleRateShift, sampleRateMask)
	if err != nil {
		return types.Unknown[int](), err
	}

	rate := sampleRates[code][idx]
	if rate == 0 {
		return types.Unknown[int](), nil
	}
	return types.Known(rate), nil
}

// BitRate returns the bit rate in bits per second of the first frame.
//
// Free-format frames (index 0) report a known 0; the reserved index 15,
// a reserved version or a reserved layer report unknown.
func (d *Decoder) BitRate() (types.Value[int], error) {
	code, err := d.field(versionShift, versionMask)
	if err != nil {
		return types.Unknown[int](), err
	}
	layer, err := d.Layer()
	if err != nil {
		return types.Unknown[int](), err
	}
	idx, err := d.field(bitrateIndexShift, bitrateIndexMask)
	if err != nil {
		return types.Unknown[int](), err
	}

	l, ok := layer.Get()
	if versions[code] == VersionUnknown || !ok || idx == bitrateBad {
		return types.Unknown[int](), nil
	}
	return types.Known(bitrates[versionClass(code)][l-1][idx] * 1000), nil
}

// ByteRate returns BitRate / 8.
func (d *Decoder) ByteRate() (types.Value[int], error) {
	br, err := d.BitRate()
	if err != nil {
		return types.Unknown[int](), err
	}
	if v, ok := br.Get(); ok {
		return types.Known(v / 8), nil
	}
	return types.Unknown[int](), nil
}

// ChannelsCount returns 1 for single-channel frames and 2 otherwise.
func (d *Decoder) ChannelsCount() (types.Value[int], error) {
	mode, err := d.field(channelModeShift, channelModeMask)
	if err != nil {
		return types.Unknown[int](), err
	}
	if mode == channelModeMono {
		return types.Known(1), nil
	}
	return types.Known(2), nil
}

// Duration is always unknown: it needs every frame, not one header.
func (d *Decoder) Duration() (types.Value[float64], error) {
	return types.Unknown[float64](), nil
}

// NumSamples is always unknown.
func (d *Decoder) NumSamples() (types.Value[int64], error) {
	return types.Unknown[int64](), nil
}

// SampleWidth is always unknown: frame headers carry no bit depth.
func (d *Decoder) SampleWidth() (types.Value[int], error) {
	return types.Unknown[int](), nil
}

// Describe aggregates the frame header fields into a Description.
func (d *Decoder) Describe() (types.Description, error) {
	return types.Describe(d)
}

func open(path string, opts types.Options) (types.Decoder, error) {
	d, err := New(path, opts)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func init() {
	registry.Register(types.FormatMP3, open)
}
