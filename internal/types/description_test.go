package types

import (
	"encoding/json"
	"errors"
	"testing"
)

// stubDecoder returns fixed values; err, when set, is returned by failOn.
type stubDecoder struct {
	desc   Description
	failOn string
	err    error
	calls  int
}

func (s *stubDecoder) fail(field string) error {
	s.calls++
	if s.failOn == field {
		return s.err
	}
	return nil
}

func (s *stubDecoder) Path() string   { return "stub" }
func (s *stubDecoder) Format() Format { return FormatUnknown }

func (s *stubDecoder) Duration() (Value[float64], error) {
	return s.desc.Duration, s.fail("duration")
}

func (s *stubDecoder) SamplingRate() (Value[int], error) {
	return s.desc.SamplingRate, s.fail("sampling rate")
}

func (s *stubDecoder) BitRate() (Value[int], error) {
	return s.desc.BitRate, s.fail("bit rate")
}

func (s *stubDecoder) ByteRate() (Value[int], error) { return Unknown[int](), nil }

func (s *stubDecoder) ChannelsCount() (Value[int], error) {
	return s.desc.ChannelsCount, s.fail("channels")
}

func (s *stubDecoder) NumSamples() (Value[int64], error) {
	return s.desc.NumSamples, s.fail("samples")
}

func (s *stubDecoder) SampleWidth() (Value[int], error) { return Unknown[int](), nil }
func (s *stubDecoder) Describe() (Description, error)   { return Describe(s) }

func cdQuality() Description {
	return Description{
		Duration:      Known(1.0),
		BitRate:       Known(1411200),
		SamplingRate:  Known(44100),
		ChannelsCount: Known(2),
		NumSamples:    Known(int64(44100)),
	}
}

func TestDescribe(t *testing.T) {
	stub := &stubDecoder{desc: cdQuality()}

	got, err := stub.Describe()
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if got != cdQuality() {
		t.Errorf("Describe() = %#v, want %#v", got, cdQuality())
	}
	if stub.calls != 5 {
		t.Errorf("Describe made %d getter calls, want 5", stub.calls)
	}
}

func TestDescribe_PropagatesFirstError(t *testing.T) {
	corrupted := &CorruptedFileError{Path: "stub", Reason: "bad"}

	for _, field := range []string{"sampling rate", "duration", "bit rate", "channels", "samples"} {
		t.Run(field, func(t *testing.T) {
			stub := &stubDecoder{desc: cdQuality(), failOn: field, err: corrupted}

			got, err := Describe(stub)
			if !errors.Is(err, corrupted) {
				t.Fatalf("Describe() error = %v, want wrapped CorruptedFileError", err)
			}
			if got != (Description{}) {
				t.Errorf("Describe() returned partial description %#v", got)
			}
		})
	}
}

func TestDescription_NumberOfSamples(t *testing.T) {
	tests := []struct {
		name string
		desc Description
		want Value[int64]
	}{
		{"CD second", cdQuality(), Known(int64(44100))},
		{"truncates", Description{SamplingRate: Known(8000), Duration: Known(0.33333)}, Known(int64(2666))},
		{"unknown rate", Description{Duration: Known(1.0)}, Unknown[int64]()},
		{"unknown duration", Description{SamplingRate: Known(44100)}, Unknown[int64]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.NumberOfSamples(); got != tt.want {
				t.Errorf("NumberOfSamples() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDescription_String(t *testing.T) {
	want := "sr: 44100 sample/sec, duration: 1 sec, br: 1411200 b/sec, channels: 2, samples: 44100"
	if got := cdQuality().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	mp3 := Description{SamplingRate: Known(44100), BitRate: Known(128000), ChannelsCount: Known(2)}
	want = "sr: 44100 sample/sec, duration: unknown sec, br: 128000 b/sec, channels: 2, samples: unknown"
	if got := mp3.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDescription_JSON(t *testing.T) {
	d := Description{SamplingRate: Known(96000), ChannelsCount: Known(6)}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"duration":null,"bit_rate":null,"sampling_rate":96000,"channels_count":6,"num_samples":null}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back Description
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %#v, want %#v", back, d)
	}
}
