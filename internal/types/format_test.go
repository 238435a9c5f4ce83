package types

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		magic []byte
		want  Format
	}{
		{"FLAC", []byte("fLaC\x00\x00\x00\x22"), FormatFLAC},
		{"WAV", []byte("RIFF\x24\x08\x00\x00WAVE"), FormatWAV},
		{"MP3 with ID3v2", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), FormatMP3},
		{"MP3 frame sync", []byte{0xFF, 0xFB, 0x90, 0x44}, FormatMP3},
		{"MPEG-2.5 frame sync", []byte{0xFF, 0xE3, 0x18, 0xC4}, FormatMP3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.magic, "test")
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		magic []byte
	}{
		{"too small", []byte("abc")},
		{"RIFF without WAVE", []byte("RIFF\x00\x00\x00\x00AVI ")},
		{"truncated RIFF", []byte("RIFF\x00\x00")},
		{"AIFF", []byte("FORM\x00\x00\x00\x00AIFF")},
		{"Ogg", []byte("OggS\x00\x02\x00\x00")},
		{"0xFF without sync bits", []byte{0xFF, 0xC0, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.magic, "test.bin")
			var unsupported *UnsupportedFormatError
			if !errors.As(err, &unsupported) {
				t.Fatalf("DetectFormat() error = %v, want UnsupportedFormatError", err)
			}
			if got != FormatUnknown {
				t.Errorf("DetectFormat() = %v, want FormatUnknown", got)
			}
			if unsupported.Path != "test.bin" {
				t.Errorf("Path = %q, want test.bin", unsupported.Path)
			}
		})
	}
}

func TestFormat_Extensions(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{FormatWAV, []string{".wav", ".wave"}},
		{FormatFLAC, []string{".flac"}},
		{FormatMP3, []string{".mp3"}},
		{FormatUnknown, nil},
	}

	for _, tc := range tests {
		got := tc.format.Extensions()
		if len(got) != len(tc.want) {
			t.Errorf("%v.Extensions() = %v, want %v", tc.format, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%v.Extensions()[%d] = %q, want %q", tc.format, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"wav", FormatWAV},
		{"WAVE", FormatWAV},
		{".flac", FormatFLAC},
		{" mp3 ", FormatMP3},
		{"MP3", FormatMP3},
		{"ogg", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tc := range tests {
		if got := ParseFormat(tc.name); got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"/music/track.wav", FormatWAV},
		{"song.FLAC", FormatFLAC},
		{"dir.mp3/file", FormatUnknown},
		{"a.b.mp3", FormatMP3},
		{"noext", FormatUnknown},
		{"clip.m4a", FormatUnknown},
	}

	for _, tc := range tests {
		if got := FormatFromPath(tc.path); got != tc.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	for f, want := range map[Format]string{
		FormatWAV:     "WAV",
		FormatFLAC:    "FLAC",
		FormatMP3:     "MP3",
		FormatUnknown: "Unknown",
		Format(42):    "Unknown",
	} {
		if got := f.String(); got != want {
			t.Errorf("Format(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}
