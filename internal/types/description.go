package types

import "fmt"

// Description aggregates the stream metadata every decoder reports.
//
// Fields the format cannot supply are Unknown, never zero.
type Description struct {
	Duration      Value[float64] `json:"duration"`
	BitRate       Value[int]     `json:"bit_rate"`
	SamplingRate  Value[int]     `json:"sampling_rate"`
	ChannelsCount Value[int]     `json:"channels_count"`
	NumSamples    Value[int64]   `json:"num_samples"`
}

// NumberOfSamples returns SamplingRate * Duration truncated to an integer.
//
// It is a display helper. It is not guaranteed to equal NumSamples, which
// is what the container actually stores (or derives from its own fields).
func (d Description) NumberOfSamples() Value[int64] {
	sr, ok := d.SamplingRate.Get()
	if !ok {
		return Unknown[int64]()
	}
	dur, ok := d.Duration.Get()
	if !ok {
		return Unknown[int64]()
	}
	return Known(int64(float64(sr) * dur))
}

// String returns a one-line summary.
// Example output: "sr: 44100 sample/sec, duration: 1 sec, br: 1411200 b/sec, channels: 2, samples: 44100".
func (d Description) String() string {
	return fmt.Sprintf("sr: %s sample/sec, duration: %s sec, br: %s b/sec, channels: %s, samples: %s",
		d.SamplingRate, d.Duration, d.BitRate, d.ChannelsCount, d.NumSamples)
}

// GoString makes %#v output readable in test failures.
func (d Description) GoString() string {
	return fmt.Sprintf("Description{Duration: %s, BitRate: %s, SamplingRate: %s, ChannelsCount: %s, NumSamples: %s}",
		d.Duration, d.BitRate, d.SamplingRate, d.ChannelsCount, d.NumSamples)
}

// Describe reads the five aggregated fields from d.
//
// The first getter error is returned, wrapped with the field that failed.
func Describe(d Decoder) (Description, error) {
	var desc Description
	var err error

	if desc.SamplingRate, err = d.SamplingRate(); err != nil {
		return Description{}, fmt.Errorf("sampling rate: %w", err)
	}
	if desc.Duration, err = d.Duration(); err != nil {
		return Description{}, fmt.Errorf("duration: %w", err)
	}
	if desc.BitRate, err = d.BitRate(); err != nil {
		return Description{}, fmt.Errorf("bit rate: %w", err)
	}
	if desc.ChannelsCount, err = d.ChannelsCount(); err != nil {
		return Description{}, fmt.Errorf("channels: %w", err)
	}
	if desc.NumSamples, err = d.NumSamples(); err != nil {
		return Description{}, fmt.Errorf("samples: %w", err)
	}

	return desc, nil
}
