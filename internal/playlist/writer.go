package playlist

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"segue/internal/textutil"
)

// ErrLocked reports that another process is writing the same playlist.
var ErrLocked = errors.New("playlist directory is locked by another process")

type playlistItem struct {
	Path string `xml:"Path"`
}

type playlistXML struct {
	XMLName xml.Name       `xml:"Item"`
	Items   []playlistItem `xml:"PlaylistItems>PlaylistItem"`
	Shares  struct{}       `xml:"Shares"`
	Type    string         `xml:"PlaylistMediaType"`
}

// Write creates `<playlistDir>/<name>/playlist.xml` in the format Jellyfin
// expects and returns the written file path. The playlist subdirectory is
// held under a file lock for the duration of the write.
func Write(playlistDir, name string, paths []string) (string, error) {
	dirName := textutil.SanitizeFileName(name)
	if dirName == "" {
		return "", fmt.Errorf("playlist name %q sanitizes to nothing", name)
	}
	target := filepath.Join(playlistDir, dirName)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create playlist directory: %w", err)
	}

	lock := flock.New(filepath.Join(target, ".playlist.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return "", fmt.Errorf("acquire playlist lock: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("%s: %w", target, ErrLocked)
	}
	defer func() { _ = lock.Unlock() }()

	doc := playlistXML{Type: "Audio"}
	for _, path := range paths {
		doc.Items = append(doc.Items, playlistItem{Path: path})
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal playlist: %w", err)
	}

	file := filepath.Join(target, "playlist.xml")
	content := append([]byte(xml.Header), body...)
	content = append(content, '\n')
	if err := os.WriteFile(file, content, 0o644); err != nil {
		return "", fmt.Errorf("write playlist: %w", err)
	}
	return file, nil
}
