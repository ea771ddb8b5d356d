package library

import (
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"segue/internal/logging"
	"segue/internal/textutil"
)

// Candidate is one audio file considered as a possible match for a query.
// Candidates are produced per scan and discarded after ranking; nothing is
// cached between queries.
type Candidate struct {
	Path       string
	FileArtist string
	FileTitle  string
	Format     Format
	IsLive     bool
}

// ScannerConfig configures a Scanner.
type ScannerConfig struct {
	// Root is the music library root containing artist directories.
	Root string
	// Extensions lists accepted audio extensions without dots. Empty uses
	// the built-in set.
	Extensions []string
	// LiveIndicators are lowercase substrings that flag a live recording.
	// Empty uses the built-in vocabulary.
	LiveIndicators []string
	Logger         *slog.Logger
}

var defaultExtensions = []string{"flac", "m4a", "mp3", "ogg", "wav", "opus", "wma"}

var defaultLiveIndicators = []string{"live", "concert", "tour", "festival", "unplugged", "acoustic"}

// Scanner enumerates candidate files beneath a music root. The filesystem is
// treated as read-only; unreadable subdirectories are skipped with a warning
// and never abort a scan.
type Scanner struct {
	root       string
	extensions map[string]struct{}
	liveWords  []string
	logger     *slog.Logger

	warnings []string
	warned   map[string]struct{}
}

// NewScanner creates a Scanner for the given root.
func NewScanner(cfg ScannerConfig) *Scanner {
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}
	extSet := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	live := cfg.LiveIndicators
	if len(live) == 0 {
		live = defaultLiveIndicators
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{
		root:       cfg.Root,
		extensions: extSet,
		liveWords:  live,
		logger:     logger,
		warned:     make(map[string]struct{}),
	}
}

// Root returns the configured music root.
func (s *Scanner) Root() string { return s.root }

// Warnings returns the unique non-fatal scan problems observed so far, for
// inclusion in the final report.
func (s *Scanner) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

// Candidates returns a restartable iterator over the audio files beneath
// artist directories whose normalized name scores at least minArtistSim
// against queryArtist. The second value of each pair is that artist-directory
// similarity. Directories below the threshold are pruned without descending.
func (s *Scanner) Candidates(queryArtist string, minArtistSim float64) iter.Seq2[Candidate, float64] {
	normArtist := textutil.Normalize(queryArtist)
	return func(yield func(Candidate, float64) bool) {
		entries, err := os.ReadDir(s.root)
		if err != nil {
			s.warn(s.root, err)
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			sim := textutil.Ratio(normArtist, textutil.Normalize(entry.Name()))
			if sim < minArtistSim {
				continue
			}
			if !s.walkArtist(filepath.Join(s.root, entry.Name()), entry.Name(), sim, yield) {
				return
			}
		}
	}
}

// walkArtist descends an artist subtree, yielding audio files at any album
// nesting depth. Returns false once the consumer stops.
func (s *Scanner) walkArtist(dir, artistDir string, artistSim float64, yield func(Candidate, float64) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Skip this subtree, keep scanning siblings.
		s.warn(dir, err)
		return true
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if !s.walkArtist(path, artistDir, artistSim, yield) {
				return false
			}
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if _, ok := s.extensions[ext]; !ok {
			continue
		}
		candidate := Candidate{
			Path:   path,
			Format: ParseFormat(ext),
			IsLive: s.isLive(entry.Name()),
		}
		candidate.FileArtist, candidate.FileTitle = ParseTrackName(entry.Name(), artistDir)
		if !yield(candidate, artistSim) {
			return false
		}
	}
	return true
}

// isLive reports whether the raw filename contains a live-indicator
// substring. This is a heuristic, not authoritative metadata; a studio track
// literally titled "Live Forever" will flag. Ranking treats the flag as
// advisory, never as a filter.
func (s *Scanner) isLive(filename string) bool {
	lowered := strings.ToLower(filename)
	for _, word := range s.liveWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func (s *Scanner) warn(dir string, err error) {
	if _, seen := s.warned[dir]; seen {
		return
	}
	s.warned[dir] = struct{}{}
	s.warnings = append(s.warnings, dir+": "+err.Error())
	s.logger.Warn("skipping unreadable directory",
		logging.String("path", dir),
		logging.Error(err),
	)
}
