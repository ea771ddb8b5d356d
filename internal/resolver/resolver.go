package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"segue/internal/logging"
	"segue/internal/match"
)

// Outcome classifies how a query resolution concluded.
type Outcome int

const (
	// OutcomeMatched means a candidate was accepted, automatically or by hand.
	OutcomeMatched Outcome = iota
	// OutcomeUnresolved means every stage came up empty.
	OutcomeUnresolved
	// OutcomeSkipped means the operator declined all presented candidates.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unresolved"
	}
}

// Result is the terminal value for one query. Exactly one is produced per
// query; Candidate and Stage are meaningful only when Outcome is
// OutcomeMatched.
type Result struct {
	Query     match.Query
	Outcome   Outcome
	Candidate match.ScoredCandidate
	Stage     match.Stage
	// Interactive reports whether a human selected the match.
	Interactive bool
}

// PromptRequest carries everything a UI needs to present candidates:
// 1-indexed rank order, score, format, live flag, and source filename are all
// derivable from the candidates slice. Rendering is the collaborator's
// concern.
type PromptRequest struct {
	Query      match.Query
	Candidates []match.ScoredCandidate
}

// Selection is the structured response to a PromptRequest: a 1-indexed
// candidate choice, or a skip.
type Selection struct {
	Index int
	Skip  bool
}

// Prompter presents candidates to a human and blocks for a selection.
// Implementations must re-prompt on unparsable input rather than fail; the
// resolver additionally bounds-checks the returned index and re-issues the
// request if it is out of range.
type Prompter interface {
	Select(ctx context.Context, req PromptRequest) (Selection, error)
}

// Options configures a Resolver.
type Options struct {
	// AutoAccept resolves without prompting when a stage's top candidate is
	// unambiguous.
	AutoAccept bool
	// AcceptMargin is the score lead over the runner-up required for an
	// unprompted accept when a stage yields several candidates.
	AcceptMargin float64
	// Prompter handles interactive disambiguation. Nil disables the
	// interactive state entirely.
	Prompter Prompter
	// MaxChoices caps how many candidates a prompt presents. Zero means 10.
	MaxChoices int
}

// Resolver runs the relaxation state machine. It holds no per-query state;
// a single Resolver serves an entire playlist run.
type Resolver struct {
	ranker *match.Ranker
	opts   Options
	logger *slog.Logger
}

// New creates a Resolver over the given ranker.
func New(ranker *match.Ranker, opts Options, logger *slog.Logger) *Resolver {
	if opts.MaxChoices <= 0 {
		opts.MaxChoices = 10
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{ranker: ranker, opts: opts, logger: logger}
}

// Resolve runs one query through Strict, Medium, and Loose, then the
// interactive fallback when configured. The returned error is non-nil only
// for context cancellation or a prompter failure; "nothing matched" is the
// normal OutcomeUnresolved result, not an error.
func (r *Resolver) Resolve(ctx context.Context, query match.Query) (Result, error) {
	logger := logging.WithContext(ctx, r.logger).With(logging.String(logging.FieldQuery, query.String()))

	var ranked []match.ScoredCandidate
	var stage match.Stage
	found := false
	for _, next := range match.Stages {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		ranked = r.ranker.Rank(query, next.Thresholds())
		if len(ranked) > 0 {
			stage = next
			found = true
			break
		}
		logger.Debug("stage produced no candidates", logging.String(logging.FieldStage, next.String()))
	}

	if found && r.acceptTop(ranked) {
		top := ranked[0]
		logger.Info("matched",
			logging.String(logging.FieldStage, stage.String()),
			logging.Float64("score", top.Score),
			logging.String("path", top.Candidate.Path),
		)
		return Result{Query: query, Outcome: OutcomeMatched, Candidate: top, Stage: stage}, nil
	}

	if r.opts.Prompter == nil {
		if found {
			// Batch mode: an ambiguous lead still beats dropping the track.
			top := ranked[0]
			logger.Info("matched without clear lead",
				logging.String(logging.FieldStage, stage.String()),
				logging.Float64("score", top.Score),
				logging.String("path", top.Candidate.Path),
			)
			return Result{Query: query, Outcome: OutcomeMatched, Candidate: top, Stage: stage}, nil
		}
		logger.Info("unresolved")
		return Result{Query: query, Outcome: OutcomeUnresolved}, nil
	}

	if !found {
		// Interactive always presents the loosest available view.
		stage = match.StageLoose
		ranked = r.ranker.Rank(query, stage.Thresholds())
	}
	if len(ranked) == 0 {
		logger.Info("unresolved", logging.Bool("interactive", true))
		return Result{Query: query, Outcome: OutcomeUnresolved}, nil
	}
	return r.selectInteractively(ctx, logger, query, ranked, stage)
}

func (r *Resolver) acceptTop(ranked []match.ScoredCandidate) bool {
	if !r.opts.AutoAccept || len(ranked) == 0 {
		return false
	}
	if len(ranked) == 1 {
		return true
	}
	return ranked[0].Score-ranked[1].Score >= r.opts.AcceptMargin
}

func (r *Resolver) selectInteractively(ctx context.Context, logger *slog.Logger, query match.Query, ranked []match.ScoredCandidate, stage match.Stage) (Result, error) {
	choices := ranked
	if len(choices) > r.opts.MaxChoices {
		choices = choices[:r.opts.MaxChoices]
	}
	req := PromptRequest{Query: query, Candidates: choices}

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		selection, err := r.opts.Prompter.Select(ctx, req)
		if err != nil {
			return Result{}, fmt.Errorf("interactive selection: %w", err)
		}
		if selection.Skip {
			logger.Info("skipped by operator")
			return Result{Query: query, Outcome: OutcomeSkipped}, nil
		}
		if selection.Index < 1 || selection.Index > len(choices) {
			logger.Warn("selection out of range, re-prompting", logging.Int("index", selection.Index))
			continue
		}
		chosen := choices[selection.Index-1]
		logger.Info("matched interactively",
			logging.String(logging.FieldStage, stage.String()),
			logging.Float64("score", chosen.Score),
			logging.String("path", chosen.Candidate.Path),
		)
		return Result{Query: query, Outcome: OutcomeMatched, Candidate: chosen, Stage: stage, Interactive: true}, nil
	}
}
