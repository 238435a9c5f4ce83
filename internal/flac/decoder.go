// Package flac reads stream metadata from the FLAC STREAMINFO block.
package flac

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/audesc/internal/binary"
	"github.com/simonhull/audesc/internal/registry"
	"github.com/simonhull/audesc/internal/types"
)

// headerRange covers "fLaC", the first metadata block header and
// STREAMINFO up to the end of the total-samples field.
var headerRange = binary.Range{Start: 0, End: 26}

// STREAMINFO bytes 18..25 pack, most significant first:
//
//	sample rate   20 bits  [18,21) >> 4
//	channels-1     3 bits  byte 20, bits 3..1
//	bits-1         5 bits  [20,22) & 0x1F0 >> 4
//	total samples 36 bits  [21,26) & 0xFFFFFFFFF
const (
	sampleRateStart, sampleRateEnd = 18, 21
	sampleRateShift                = 4

	channelsByte  = 20
	channelsMask  = 0x0E
	channelsShift = 1

	sampleWidthStart, sampleWidthEnd = 20, 22
	sampleWidthMask                  = 0x1F0
	sampleWidthShift                 = 4

	numSamplesStart, numSamplesEnd = 21, 26
	numSamplesMask                 = 0xFFFFFFFFF
)

// maxSampleRate is the largest sample rate STREAMINFO may declare.
const maxSampleRate = 655350

// Decoder reads FLAC metadata from STREAMINFO.
//
// BitRate and ByteRate are always unknown: the header does not record
// an average rate and frames are never scanned.
type Decoder struct {
	hdr *binary.Header
	log *slog.Logger
}

// New loads the STREAMINFO header of the file at path.
func New(path string, opts types.Options) (*Decoder, error) {
	hdr, err := binary.Load(path, headerRange)
	if err != nil {
		return nil, fmt.Errorf("load FLAC header: %w", err)
	}

	log := opts.Log().With("format", types.FormatFLAC.String(), "path", path)
	log.Debug("header loaded", "range", hdr.Range().String())

	return &Decoder{hdr: hdr, log: log}, nil
}

// Path returns the file the header was loaded from.
func (d *Decoder) Path() string { return d.hdr.Path() }

// Format returns types.FormatFLAC.
func (d *Decoder) Format() types.Format { return types.FormatFLAC }

// SamplingRate returns the STREAMINFO sample rate in Hz.
//
// A rate above 655350 Hz, or a rate of 0, is a CorruptedFileError.
func (d *Decoder) SamplingRate() (types.Value[int], error) {
	rate := binary.ShiftRight(d.hdr.Slice(sampleRateStart, sampleRateEnd), sampleRateShift)
	if rate > maxSampleRate || rate == 0 {
		d.log.Debug("invalid sample rate", "rate", rate)
		return types.Unknown[int](), &types.CorruptedFileError{
			Path:   d.Path(),
			Offset: sampleRateStart,
			Reason: fmt.Sprintf("sample rate %d outside 1..%d Hz", rate, maxSampleRate),
		}
	}
	return types.Known(int(rate)), nil
}

// ChannelsCount returns the channel count (stored zero-based).
func (d *Decoder) ChannelsCount() (types.Value[int], error) {
	ch := binary.MaskBytes(d.hdr.Slice(channelsByte, channelsByte+1), channelsMask) >> channelsShift
	return types.Known(int(ch) + 1), nil
}

// SampleWidth returns bits per sample (stored zero-based).
func (d *Decoder) SampleWidth() (types.Value[int], error) {
	w := binary.MaskBytes(d.hdr.Slice(sampleWidthStart, sampleWidthEnd), sampleWidthMask) >> sampleWidthShift
	return types.Known(int(w) + 1), nil
}

// NumSamples returns the total sample count per channel, unknown when
// the encoder stored 0.
func (d *Decoder) NumSamples() (types.Value[int64], error) {
	n := binary.MaskBytes(d.hdr.Slice(numSamplesStart, numSamplesEnd), numSamplesMask)
	if n == 0 {
		return types.Unknown[int64](), nil
	}
	return types.Known(int64(n)), nil
}

// Duration returns NumSamples / SamplingRate, unknown without a sample count.
func (d *Decoder) Duration() (types.Value[float64], error) {
	n, err := d.NumSamples()
	if err != nil {
		return types.Unknown[float64](), err
	}
	samples, ok := n.Get()
	if !ok {
		return types.Unknown[float64](), nil
	}

	sr, err := d.SamplingRate()
	if err != nil {
		return types.Unknown[float64](), err
	}
	rate, _ := sr.Get()
	return types.Known(float64(samples) / float64(rate)), nil
}

// BitRate is always unknown for FLAC.
func (d *Decoder) BitRate() (types.Value[int], error) {
	return types.Unknown[int](), nil
}

// ByteRate is always unknown for FLAC.
func (d *Decoder) ByteRate() (types.Value[int], error) {
	return types.Unknown[int](), nil
}

// Describe aggregates the STREAMINFO fields into a Description.
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
	registry.Register(types.FormatFLAC, open)
}
