package library

import (
	"path/filepath"
	"regexp"
	"strings"
)

// trackNumberPattern strips a leading track number like "06 - " or "12. ".
var trackNumberPattern = regexp.MustCompile(`^\d+\s*[-.]\s*`)

// bareNumberPattern matches filenames that are nothing but a track number.
var bareNumberPattern = regexp.MustCompile(`^\d+$`)

// ParseTrackName extracts the artist and title segments from an audio
// filename. Conventions handled, in order:
//
//	NN - Artist - Title.ext
//	NN - Title.ext
//	Artist - Title.ext
//	Title.ext
//
// When no artist segment is present the containing artist directory name is
// used. The extraction is best-effort: a filename reduced to nothing yields
// an empty title rather than a guess.
func ParseTrackName(filename, artistDir string) (artist, title string) {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name = trackNumberPattern.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if bareNumberPattern.MatchString(name) {
		name = ""
	}

	if before, after, found := strings.Cut(name, " - "); found {
		artist = strings.TrimSpace(before)
		title = strings.TrimSpace(after)
		if artist != "" && title != "" {
			return artist, title
		}
	}
	return artistDir, name
}
