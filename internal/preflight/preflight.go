// Package preflight validates the environment before a playlist run starts.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"segue/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks a conversion run depends on.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckMusicRoot(cfg.Paths.MusicDir),
		CheckPlaylistDir(cfg.Paths.PlaylistDir),
	}
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckMusicRoot verifies that the music library exists, is readable, and
// holds at least one artist directory.
func CheckMusicRoot(path string) Result {
	const name = "Music library"
	if path == "" {
		return Result{Name: name, Detail: "music_dir is not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	artists := 0
	for _, entry := range entries {
		if entry.IsDir() {
			artists++
		}
	}
	if artists == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no artist directories)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d artist directories)", path, artists)}
}

// CheckPlaylistDir verifies that the playlist directory exists and is
// writable.
func CheckPlaylistDir(path string) Result {
	const name = "Playlist directory"
	if path == "" {
		return Result{Name: name, Detail: "playlist_dir is not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}
