package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// setupEnv points HOME at a temp dir and writes a config with temp library
// and playlist paths, returning both.
func setupEnv(t *testing.T) (musicDir, playlistDir string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	musicDir = filepath.Join(home, "music")
	playlistDir = filepath.Join(home, "playlists")
	logDir := filepath.Join(home, "logs")
	for _, dir := range []string{musicDir, playlistDir, logDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	configPath := filepath.Join(home, ".config", "segue", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatal(err)
	}
	content := fmt.Sprintf(`[paths]
music_dir = %q
playlist_dir = %q
log_dir = %q

[output]
fix_ownership = false
`, musicDir, playlistDir, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return musicDir, playlistDir
}

func addTrack(t *testing.T, musicDir, rel string) {
	t.Helper()
	path := filepath.Join(musicDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertCommandEndToEnd(t *testing.T) {
	musicDir, playlistDir := setupEnv(t)
	addTrack(t, musicDir, "Queen/A Night at the Opera/11 - Bohemian Rhapsody.flac")
	addTrack(t, musicDir, "Toto/IV/01 - Toto - Africa.mp3")

	source := filepath.Join(t.TempDir(), "roadtrip.txt")
	if err := os.WriteFile(source, []byte("Queen - Bohemian Rhapsody\nToto - Africa\nNobody - Nothing At All\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, []string{"convert", source}, "")
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Matched 2 of 3 tracks") {
		t.Errorf("missing summary:\n%s", out)
	}
	written := filepath.Join(playlistDir, "roadtrip", "playlist.xml")
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("playlist not written: %v", err)
	}
	if !strings.Contains(string(data), "11 - Bohemian Rhapsody.flac") {
		t.Errorf("playlist missing matched path:\n%s", data)
	}
	if !strings.Contains(out, "Nobody - Nothing At All") {
		t.Errorf("unresolved track not listed:\n%s", out)
	}
}

func TestConvertCommandDryRun(t *testing.T) {
	musicDir, playlistDir := setupEnv(t)
	addTrack(t, musicDir, "Queen/A Night at the Opera/11 - Bohemian Rhapsody.flac")

	source := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(source, []byte("Queen - Bohemian Rhapsody\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, []string{"convert", "--dry-run", source}, "")
	if err != nil {
		t.Fatalf("convert --dry-run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "no playlist written") {
		t.Errorf("missing dry-run notice:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(playlistDir, "list")); !os.IsNotExist(err) {
		t.Error("dry run must not create the playlist directory")
	}
}

func TestConvertCommandEmptyPlaylistFails(t *testing.T) {
	musicDir, _ := setupEnv(t)
	addTrack(t, musicDir, "Queen/A Night at the Opera/11 - Bohemian Rhapsody.flac")

	source := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(source, []byte("\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, []string{"convert", source}, ""); err == nil {
		t.Error("empty playlist must fail")
	}
}

func TestMatchCommand(t *testing.T) {
	musicDir, _ := setupEnv(t)
	addTrack(t, musicDir, "Queen/A Night at the Opera/11 - Bohemian Rhapsody.flac")

	out, err := runCLI(t, []string{"match", "Queen", "Bohemian Rhapsody"}, "")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Matched at stage strict") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "11 - Bohemian Rhapsody.flac") {
		t.Errorf("missing path:\n%s", out)
	}
}

func TestMatchCommandNoMatch(t *testing.T) {
	musicDir, _ := setupEnv(t)
	addTrack(t, musicDir, "Queen/A Night at the Opera/11 - Bohemian Rhapsody.flac")

	out, err := runCLI(t, []string{"match", "Nobody", "Nothing At All"}, "")
	if err != nil {
		t.Fatalf("match: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No match for Nobody - Nothing At All") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	setupEnv(t)

	out, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Errorf("unexpected output:\n%s", out)
	}

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Error("second init without --overwrite must fail")
	}
}

func TestConfigShow(t *testing.T) {
	musicDir, _ := setupEnv(t)

	out, err := runCLI(t, []string{"config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, musicDir) {
		t.Errorf("missing music_dir:\n%s", out)
	}
	if !strings.Contains(out, "matching.accept_margin") {
		t.Errorf("missing matching settings:\n%s", out)
	}
}

func TestDetectCommand(t *testing.T) {
	out, err := runCLI(t, []string{"detect"}, "")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "Music library:") || !strings.Contains(out, "Playlist directory:") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
