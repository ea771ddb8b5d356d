package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"segue/internal/library"
	"segue/internal/logging"
	"segue/internal/match"
	"segue/internal/resolver"
)

// Report aggregates the outcome of one playlist run. Partial reports remain
// valid if a run is interrupted: every appended result is final.
type Report struct {
	SessionID  string
	Results    []resolver.Result
	Matched    int
	Unresolved int
	Skipped    int
	// Warnings are non-fatal scan problems (unreadable subtrees).
	Warnings []string
}

// MatchedPaths returns the resolved file paths in playlist order.
func (r *Report) MatchedPaths() []string {
	paths := make([]string, 0, r.Matched)
	for _, result := range r.Results {
		if result.Outcome == resolver.OutcomeMatched {
			paths = append(paths, result.Candidate.Candidate.Path)
		}
	}
	return paths
}

// Unmatched returns the queries that ended Unresolved or Skipped, in playlist
// order, for manual reconciliation.
func (r *Report) Unmatched() []match.Query {
	var queries []match.Query
	for _, result := range r.Results {
		if result.Outcome != resolver.OutcomeMatched {
			queries = append(queries, result.Query)
		}
	}
	return queries
}

func (r *Report) tally(result resolver.Result) {
	r.Results = append(r.Results, result)
	switch result.Outcome {
	case resolver.OutcomeMatched:
		r.Matched++
	case resolver.OutcomeSkipped:
		r.Skipped++
	default:
		r.Unresolved++
	}
}

// Runner resolves an ordered query list, one query fully concluded before the
// next begins. When the resolver carries a prompter the run suspends inline
// at each ambiguous entry until the operator answers.
type Runner struct {
	resolver *resolver.Resolver
	scanner  *library.Scanner
	logger   *slog.Logger
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	Resolver *resolver.Resolver
	Scanner  *library.Scanner
	Logger   *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{resolver: cfg.Resolver, scanner: cfg.Scanner, logger: logger}
}

// Run processes the queries in order and returns the aggregate report. The
// returned error is non-nil only for cancellation or a prompter failure; the
// report accumulated so far is returned alongside it.
func (r *Runner) Run(ctx context.Context, queries []match.Query) (*Report, error) {
	report := &Report{SessionID: uuid.NewString()}
	ctx = logging.ContextWithSession(ctx, report.SessionID)
	logger := logging.WithContext(ctx, r.logger)

	logger.Info("starting playlist run", logging.Int("tracks", len(queries)))

	for i, query := range queries {
		logger.Info("resolving",
			logging.Int("position", i+1),
			logging.Int("total", len(queries)),
			logging.String(logging.FieldQuery, query.String()),
		)
		result, err := r.resolver.Resolve(ctx, query)
		if err != nil {
			report.Warnings = r.scanner.Warnings()
			return report, err
		}
		report.tally(result)
	}

	report.Warnings = r.scanner.Warnings()
	logger.Info("run complete",
		logging.Int("matched", report.Matched),
		logging.Int("unresolved", report.Unresolved),
		logging.Int("skipped", report.Skipped),
	)
	return report, nil
}
