package library

import "strings"

// Format identifies the audio container of a candidate file.
type Format int

const (
	FormatOther Format = iota
	FormatFLAC
	FormatM4A
	FormatMP3
	FormatOGG
	FormatWAV
)

// ParseFormat maps a lowercase extension (without dot) to a Format. Accepted
// extensions outside the primary five (opus, wma) map to FormatOther.
func ParseFormat(ext string) Format {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "flac":
		return FormatFLAC
	case "m4a", "aac":
		return FormatM4A
	case "mp3":
		return FormatMP3
	case "ogg":
		return FormatOGG
	case "wav":
		return FormatWAV
	default:
		return FormatOther
	}
}

// Priority returns the rank of the format in the preference order
// FLAC > M4A > MP3 > OGG > WAV > other. Lower is better.
func (f Format) Priority() int {
	switch f {
	case FormatFLAC:
		return 0
	case FormatM4A:
		return 1
	case FormatMP3:
		return 2
	case FormatOGG:
		return 3
	case FormatWAV:
		return 4
	default:
		return 5
	}
}

func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatM4A:
		return "M4A"
	case FormatMP3:
		return "MP3"
	case FormatOGG:
		return "OGG"
	case FormatWAV:
		return "WAV"
	default:
		return "OTHER"
	}
}
