package match

import (
	"iter"
	"log/slog"
	"sort"

	"segue/internal/library"
	"segue/internal/logging"
	"segue/internal/textutil"
)

// Scoring weights. Title and directory-artist similarity carry equal, highest
// weight because they are the most reliable signals; the artist parsed from
// the filename is frequently noisy or absent, so it only contributes a minor
// corrective term.
const (
	weightArtist     = 0.6
	weightFileArtist = 0.2
	weightTitle      = 0.6
	weightTotal      = weightArtist + weightFileArtist + weightTitle
)

// DefaultFlacBonus is the score bonus for lossless candidates. It expresses
// a format preference without letting format override a genuinely poor
// textual match.
const DefaultFlacBonus = 0.05

// Ranker scores and orders scan candidates for a query.
type Ranker struct {
	scanner   *library.Scanner
	flacBonus float64
	logger    *slog.Logger
}

// RankerConfig configures a Ranker.
type RankerConfig struct {
	Scanner *library.Scanner
	// FlacBonus overrides DefaultFlacBonus when non-zero.
	FlacBonus float64
	Logger    *slog.Logger
}

// NewRanker creates a Ranker over the given scanner.
func NewRanker(cfg RankerConfig) *Ranker {
	bonus := cfg.FlacBonus
	if bonus == 0 {
		bonus = DefaultFlacBonus
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Ranker{scanner: cfg.Scanner, flacBonus: bonus, logger: logger}
}

// Rank scans the library with the thresholds' artist minimum and returns the
// candidates that clear all three dimensions, ordered best first. Each call
// re-scans: looser artist thresholds can surface directories pruned by a
// stricter pass.
func (r *Ranker) Rank(query Query, th Thresholds) []ScoredCandidate {
	return r.RankCandidates(query, r.scanner.Candidates(query.Artist, th.MinArtist), th)
}

// RankCandidates scores an explicit candidate sequence. The float values of
// the sequence are per-candidate artist-directory similarities, as produced
// by library.Scanner.Candidates.
func (r *Ranker) RankCandidates(query Query, candidates iter.Seq2[library.Candidate, float64], th Thresholds) []ScoredCandidate {
	normArtist := textutil.Normalize(query.Artist)
	normTitle := textutil.Normalize(query.Title)

	var ranked []ScoredCandidate
	for candidate, artistSim := range candidates {
		fileArtistSim := textutil.Ratio(normArtist, textutil.Normalize(candidate.FileArtist))
		titleSim := textutil.Ratio(normTitle, textutil.Normalize(candidate.FileTitle))

		combined := (artistSim*weightArtist + fileArtistSim*weightFileArtist + titleSim*weightTitle) / weightTotal
		if combined < th.MinCombined || artistSim < th.MinArtist || titleSim < th.MinTitle {
			continue
		}

		score := combined
		if candidate.Format == library.FormatFLAC {
			score += r.flacBonus
		}
		ranked = append(ranked, ScoredCandidate{
			Candidate:     candidate,
			ArtistSim:     artistSim,
			TitleSim:      titleSim,
			FileArtistSim: fileArtistSim,
			Score:         score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return lessCandidate(ranked[i], ranked[j])
	})

	if len(ranked) > 0 {
		r.logger.Debug("ranked candidates",
			logging.String(logging.FieldQuery, query.String()),
			logging.Int("count", len(ranked)),
			logging.Float64("top_score", ranked[0].Score),
		)
	}
	return ranked
}

// lessCandidate orders by descending score; exact ties prefer studio over
// live, then better format, then path for full determinism.
func lessCandidate(a, b ScoredCandidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Candidate.IsLive != b.Candidate.IsLive {
		return !a.Candidate.IsLive
	}
	if pa, pb := a.Candidate.Format.Priority(), b.Candidate.Format.Priority(); pa != pb {
		return pa < pb
	}
	return a.Candidate.Path < b.Candidate.Path
}
