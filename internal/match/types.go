package match

import "segue/internal/library"

// Query is one playlist entry to resolve. Immutable once parsed from the
// input playlist.
type Query struct {
	Artist string
	Title  string
	// Album is optional context from richer playlist formats.
	Album string
}

// String renders the query the way playlists write it.
func (q Query) String() string {
	return q.Artist + " - " + q.Title
}

// Thresholds is one stage's minimum-similarity triple.
type Thresholds struct {
	MinCombined float64
	MinArtist   float64
	MinTitle    float64
}

// Stage identifies one step of the Strict -> Medium -> Loose relaxation
// sequence.
type Stage int

const (
	StageStrict Stage = iota
	StageMedium
	StageLoose
)

// Stages lists the relaxation sequence in order.
var Stages = [...]Stage{StageStrict, StageMedium, StageLoose}

// Thresholds returns the stage's threshold triple. Values are monotonically
// non-increasing from Strict to Loose across all three dimensions.
func (s Stage) Thresholds() Thresholds {
	switch s {
	case StageStrict:
		return Thresholds{MinCombined: 0.75, MinArtist: 0.7, MinTitle: 0.7}
	case StageMedium:
		return Thresholds{MinCombined: 0.65, MinArtist: 0.6, MinTitle: 0.6}
	default:
		return Thresholds{MinCombined: 0.5, MinArtist: 0.4, MinTitle: 0.5}
	}
}

func (s Stage) String() string {
	switch s {
	case StageStrict:
		return "strict"
	case StageMedium:
		return "medium"
	default:
		return "loose"
	}
}

// ScoredCandidate pairs a candidate with its similarity breakdown. Computed
// once per candidate per stage and never mutated.
type ScoredCandidate struct {
	Candidate     library.Candidate
	ArtistSim     float64
	TitleSim      float64
	FileArtistSim float64
	// Score is the combined similarity plus any format bonus. The bonus can
	// push it slightly above 1.0.
	Score float64
}
