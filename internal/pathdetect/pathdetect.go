// Package pathdetect probes well-known Jellyfin install locations for a
// music library and a playlist directory, so the CLI can offer sensible
// defaults when the config leaves them blank.
package pathdetect

import "os"

var defaultMusicRoots = []string{
	"/mnt/datapool/music",
	"/media/music",
	"/var/lib/jellyfin/music",
	"/home/jellyfin/music",
	"/music",
	"/data/music",
	"/srv/music",
}

var defaultPlaylistDirs = []string{
	"/var/lib/jellyfin/data/playlists",
	"/config/data/playlists", // Docker
	"/jellyfin/data/playlists",
	"/home/jellyfin/data/playlists",
}

// Detector checks candidate directories in order and reports the first hit.
// The zero value probes the standard Jellyfin locations.
type Detector struct {
	MusicRoots   []string
	PlaylistDirs []string
}

// MusicRoot returns the first candidate that exists and contains at least one
// subdirectory (artist folders), or "" when nothing qualifies. Unreadable
// candidates are skipped.
func (d *Detector) MusicRoot() string {
	roots := d.MusicRoots
	if roots == nil {
		roots = defaultMusicRoots
	}
	for _, root := range roots {
		if hasSubdirectory(root) {
			return root
		}
	}
	return ""
}

// PlaylistDir returns the first candidate that exists as a directory, or "".
func (d *Detector) PlaylistDir() string {
	dirs := d.PlaylistDirs
	if dirs == nil {
		dirs = defaultPlaylistDirs
	}
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

func hasSubdirectory(root string) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return true
		}
	}
	return false
}
