package mp3

// Frame header fields, as (shift, mask) over the 32-bit big-endian header.
const (
	versionShift, versionMask           = 19, 0x3
	layerShift, layerMask               = 17, 0x3
	bitrateIndexShift, bitrateIndexMask = 12, 0xF
	sampleRateShift, sampleRateMask     = 10, 0x3
	channelModeShift, channelModeMask   = 6, 0x3
)

// MPEG version codes.
const (
	versionCode25       = 0
	versionCodeReserved = 1
	versionCode2        = 2
	versionCode1        = 3
)

const (
	channelModeMono = 3
	bitrateBad      = 15
)

// Version is an MPEG audio version.
type Version int

const (
	VersionUnknown Version = iota
	Version1
	Version2
	Version25
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "MPEG-1"
	case Version2:
		return "MPEG-2"
	case Version25:
		return "MPEG-2.5"
	default:
		return "unknown"
	}
}

// versions maps the 2-bit version code.
var versions = [4]Version{
	versionCode25:       Version25,
	versionCodeReserved: VersionUnknown,
	versionCode2:        Version2,
	versionCode1:        Version1,
}

// sampleRates is indexed by [version code][sample rate index] in Hz.
// Zero marks the reserved row and column.
var sampleRates = [4][4]int{
	versionCode25:       {11025, 12000, 8000, 0},
	versionCodeReserved: {0, 0, 0, 0},
	versionCode2:        {22050, 24000, 16000, 0},
	versionCode1:        {44100, 48000, 32000, 0},
}

// bitrates is indexed by [version class][layer-1][bitrate index] in kbps.
// Class 0 is MPEG-1, class 1 is shared by MPEG-2 and MPEG-2.5.
// Index 0 is free format; index 15 is reserved and handled by the caller.
var bitrates = [2][3][15]int{
	{
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	},
	{
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	},
}

// versionClass selects the bit rate table: MPEG-1 (code 3) is 0, the
// even codes (MPEG-2, MPEG-2.5) are 1.
func versionClass(code uint64) int {
	return int(code&1) ^ 1
}
