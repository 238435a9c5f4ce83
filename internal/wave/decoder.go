// Package wave reads stream metadata from the canonical 44-byte RIFF/WAVE header.
package wave

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/go-audio/riff"

	"github.com/simonhull/audesc/internal/binary"
	"github.com/simonhull/audesc/internal/registry"
	"github.com/simonhull/audesc/internal/types"
)

// headerRange covers RIFF header, fmt chunk and data chunk header.
var headerRange = binary.Range{Start: 0, End: 44}

// Little-endian field offsets within the canonical header.
const (
	offFileSize     = 4
	offFormat       = 8
	offFmtID        = 12
	offChannels     = 22
	offSamplingRate = 24
	offByteRate     = 28
	offSampleWidth  = 34
	offDataID       = 36
	offDataSize     = 40
)

// riffPrefix is "RIFF" plus the size field, which the stored size excludes.
const riffPrefix = 8

// Decoder reads WAV metadata at fixed offsets.
//
// The sample width field is interpreted as bits per sample. NumSamples is
// the data chunk byte count divided by channels * ceil(bits/8), and
// Duration is NumSamples / SamplingRate.
type Decoder struct {
	hdr *binary.Header
	log *slog.Logger
}

// New loads the WAV header of the file at path.
//
// With opts.Strict set, a header that fails Validate is rejected.
func New(path string, opts types.Options) (*Decoder, error) {
	hdr, err := binary.Load(path, headerRange)
	if err != nil {
		return nil, fmt.Errorf("load WAV header: %w", err)
	}

	log := opts.Log().With("format", types.FormatWAV.String(), "path", path)
	log.Debug("header loaded", "range", hdr.Range().String())

	d := &Decoder{hdr: hdr, log: log}
	if opts.Strict {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Path returns the file the header was loaded from.
func (d *Decoder) Path() string { return d.hdr.Path() }

// Format returns types.FormatWAV.
func (d *Decoder) Format() types.Format { return types.FormatWAV }

func (d *Decoder) u16(off int64, what string) (int, error) {
	v, err := binary.ReadLE[uint16](d.hdr.Reader(), off, what)
	return int(v), err
}

func (d *Decoder) u32(off int64, what string) (int64, error) {
	v, err := binary.ReadLE[uint32](d.hdr.Reader(), off, what)
	return int64(v), err
}

// FileSize returns the total file size recorded in the RIFF header.
func (d *Decoder) FileSize() (types.Value[int64], error) {
	size, err := d.u32(offFileSize, "RIFF size")
	if err != nil {
		return types.Unknown[int64](), err
	}
	return types.Known(size + riffPrefix), nil
}

// ChannelsCount returns the fmt chunk channel count.
func (d *Decoder) ChannelsCount() (types.Value[int], error) {
	ch, err := d.u16(offChannels, "channel count")
	if err != nil {
		return types.Unknown[int](), err
	}
	return types.Known(ch), nil
}

// SamplingRate returns the fmt chunk sample rate in Hz.
func (d *Decoder) SamplingRate() (types.Value[int], error) {
	sr, err := d.u32(offSamplingRate, "sampling rate")
	if err != nil {
		return types.Unknown[int](), err
	}
	return types.Known(int(sr)), nil
}

// ByteRate returns the fmt chunk average bytes per second.
func (d *Decoder) ByteRate() (types.Value[int], error) {
	br, err := d.u32(offByteRate, "byte rate")
	if err != nil {
		return types.Unknown[int](), err
	}
	return types.Known(int(br)), nil
}

// BitRate returns ByteRate * 8.
func (d *Decoder) BitRate() (types.Value[int], error) {
	br, err := d.ByteRate()
	if err != nil {
		return types.Unknown[int](), err
	}
	if v, ok := br.Get(); ok {
		return types.Known(v * 8), nil
	}
	return types.Unknown[int](), nil
}

// SampleWidth returns bits per sample.
func (d *Decoder) SampleWidth() (types.Value[int], error) {
	w, err := d.u16(offSampleWidth, "sample width")
	if err != nil {
		return types.Unknown[int](), err
	}
	return types.Known(w), nil
}

// NumSamples returns the number of sample frames in the data chunk.
//
// Unknown when the channel count or sample width is zero.
func (d *Decoder) NumSamples() (types.Value[int64], error) {
	size, err := d.u32(offDataSize, "data chunk size")
	if err != nil {
		return types.Unknown[int64](), err
	}
	ch, err := d.u16(offChannels, "channel count")
	if err != nil {
		return types.Unknown[int64](), err
	}
	bits, err := d.u16(offSampleWidth, "sample width")
	if err != nil {
		return types.Unknown[int64](), err
	}

	frameBytes := int64(ch) * int64((bits+7)/8)
	if frameBytes == 0 {
		return types.Unknown[int64](), nil
	}
	return types.Known(size / frameBytes), nil
}

// Duration returns NumSamples / SamplingRate in seconds.
func (d *Decoder) Duration() (types.Value[float64], error) {
	n, err := d.NumSamples()
	if err != nil {
		return types.Unknown[float64](), err
	}
	sr, err := d.SamplingRate()
	if err != nil {
		return types.Unknown[float64](), err
	}

	samples, ok := n.Get()
	rate := sr.Or(0)
	if !ok || rate == 0 {
		return types.Unknown[float64](), nil
	}
	return types.Known(float64(samples) / float64(rate)), nil
}

// Describe aggregates the header fields into a Description.
func (d *Decoder) Describe() (types.Description, error) {
	return types.Describe(d)
}

// Validate checks the chunk ids of the canonical layout.
//
// The getters never call Validate: they read fixed offsets regardless.
// Files with extra chunks before "data" (LIST, fact, bext) fail here.
func (d *Decoder) Validate() error {
	ids := []struct {
		off  int
		want [4]byte
		what string
	}{
		{0, riff.RiffID, "RIFF id"},
		{offFormat, riff.WavFormatID, "WAVE id"},
		{offFmtID, riff.FmtID, "fmt chunk id"},
		{offDataID, riff.DataFormatID, "data chunk id"},
	}

	for _, id := range ids {
		if got := d.hdr.Slice(id.off, id.off+4); !bytes.Equal(got, id.want[:]) {
			d.log.Debug("chunk id mismatch", "offset", id.off, "got", string(got))
			return &types.CorruptedFileError{
				Path:   d.Path(),
				Offset: int64(id.off),
				Reason: fmt.Sprintf("expected %s %q, got %q", id.what, id.want[:], got),
			}
		}
	}
	return nil
}

func open(path string, opts types.Options) (types.Decoder, error) {
	d, err := New(path, opts)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func init() {
	registry.Register(types.FormatWAV, open)
}
