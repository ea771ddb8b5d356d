package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"segue/internal/library"
	"segue/internal/match"
)

func buildLibrary(t *testing.T, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func newResolver(t *testing.T, root string, opts Options) *Resolver {
	t.Helper()
	scanner := library.NewScanner(library.ScannerConfig{Root: root})
	ranker := match.NewRanker(match.RankerConfig{Scanner: scanner})
	return New(ranker, opts, nil)
}

// scriptedPrompter returns canned selections in order and records every
// request it receives.
type scriptedPrompter struct {
	selections []Selection
	requests   []PromptRequest
}

func (p *scriptedPrompter) Select(_ context.Context, req PromptRequest) (Selection, error) {
	p.requests = append(p.requests, req)
	if len(p.selections) == 0 {
		return Selection{Skip: true}, nil
	}
	next := p.selections[0]
	p.selections = p.selections[1:]
	return next, nil
}

func TestResolveStrictFlacMatch(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/A Night at the Opera/06 - Queen - Bohemian Rhapsody.flac",
		"Queen/A Night at the Opera/07 - Queen - Love of My Life.flac",
	})
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Queen", Title: "Bohemian Rhapsody"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeMatched {
		t.Fatalf("Outcome = %v, want matched", result.Outcome)
	}
	if result.Stage != match.StageStrict {
		t.Errorf("Stage = %v, want strict", result.Stage)
	}
	if result.Candidate.Candidate.Format != library.FormatFLAC {
		t.Errorf("Format = %v, want FLAC", result.Candidate.Candidate.Format)
	}
	if result.Candidate.Score < 0.75 {
		t.Errorf("Score = %v, want >= 0.75", result.Candidate.Score)
	}
	if result.Interactive {
		t.Error("Interactive = true for automatic match")
	}
}

func TestResolveLiveAnnotationFindsStudioFile(t *testing.T) {
	root := buildLibrary(t, []string{
		"Led Zeppelin/IV/04 - Stairway to Heaven.mp3",
	})
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Led Zeppelin", Title: "Stairway to Heaven (Live)"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeMatched {
		t.Fatalf("Outcome = %v, want matched", result.Outcome)
	}
	if result.Stage > match.StageMedium {
		t.Errorf("Stage = %v, want strict or medium", result.Stage)
	}
	if result.Candidate.Candidate.IsLive {
		t.Error("chosen file flagged live; the studio recording should not be")
	}
}

func TestResolveRelaxesToMedium(t *testing.T) {
	root := buildLibrary(t, []string{
		"Def Leppard/Hysteria/05 - Pour Some Sugar on Me.flac",
	})
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05})

	// The abbreviated title scores between the medium and strict title
	// minimums, so Strict must come up empty and Medium must accept.
	result, err := r.Resolve(context.Background(), match.Query{Artist: "Def Leppard", Title: "Pour Sugar"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeMatched {
		t.Fatalf("Outcome = %v, want matched", result.Outcome)
	}
	if result.Stage != match.StageMedium {
		t.Errorf("Stage = %v, want medium", result.Stage)
	}
}

func TestResolveUnresolvedWithoutPrompter(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/Greatest Hits/01 - Bohemian Rhapsody.flac",
	})
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Zzyzx Quartet", Title: "Nonexistent Song"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeUnresolved {
		t.Errorf("Outcome = %v, want unresolved", result.Outcome)
	}
}

func TestResolveInteractiveNotInvokedWithoutCandidates(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/Greatest Hits/01 - Bohemian Rhapsody.flac",
	})
	prompter := &scriptedPrompter{}
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05, Prompter: prompter})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Zzyzx Quartet", Title: "Nonexistent Song"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeUnresolved {
		t.Errorf("Outcome = %v, want unresolved", result.Outcome)
	}
	if len(prompter.requests) != 0 {
		t.Errorf("prompter received %d requests with zero candidates, want 0", len(prompter.requests))
	}
}

func TestResolveAmbiguousGoesInteractive(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/News of the World/01 - We Will Rock You.flac",
		"Queen/Live Killers/01 - We Will Rock You (Live).flac",
	})
	prompter := &scriptedPrompter{selections: []Selection{{Index: 2}}}
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05, Prompter: prompter})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Queen", Title: "We Will Rock You"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prompter.requests) != 1 {
		t.Fatalf("prompter received %d requests, want 1", len(prompter.requests))
	}
	if !result.Interactive || result.Outcome != OutcomeMatched {
		t.Fatalf("result = %+v, want interactive match", result)
	}
	// Candidate 1 is the studio file (non-live tie-break), so index 2 is the
	// live recording.
	if !result.Candidate.Candidate.IsLive {
		t.Error("selection index 2 should be the live recording")
	}
}

func TestResolveAmbiguousWithoutPrompterTakesTop(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/News of the World/01 - We Will Rock You.flac",
		"Queen/Live Killers/01 - We Will Rock You (Live).flac",
	})
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Queen", Title: "We Will Rock You"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeMatched {
		t.Fatalf("Outcome = %v, want matched", result.Outcome)
	}
	if result.Candidate.Candidate.IsLive {
		t.Error("batch mode should take the studio file ranked first")
	}
}

func TestResolveInvalidSelectionReprompts(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/News of the World/01 - We Will Rock You.flac",
		"Queen/Live Killers/01 - We Will Rock You (Live).flac",
	})
	prompter := &scriptedPrompter{selections: []Selection{{Index: 99}, {Index: 0}, {Index: 1}}}
	r := newResolver(t, root, Options{AutoAccept: true, AcceptMargin: 0.05, Prompter: prompter})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Queen", Title: "We Will Rock You"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prompter.requests) != 3 {
		t.Errorf("prompter received %d requests, want 3 (two re-prompts)", len(prompter.requests))
	}
	if result.Outcome != OutcomeMatched || result.Candidate.Candidate.IsLive {
		t.Errorf("result = %+v, want studio match", result)
	}
}

func TestResolveSkip(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/News of the World/01 - We Will Rock You.flac",
		"Queen/Live Killers/01 - We Will Rock You (Live).flac",
	})
	prompter := &scriptedPrompter{selections: []Selection{{Skip: true}}}
	r := newResolver(t, root, Options{AutoAccept: false, Prompter: prompter})

	result, err := r.Resolve(context.Background(), match.Query{Artist: "Queen", Title: "We Will Rock You"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Outcome != OutcomeSkipped {
		t.Errorf("Outcome = %v, want skipped", result.Outcome)
	}
}

func TestResolveMaxChoicesCapsPrompt(t *testing.T) {
	files := []string{
		"Queen/A/01 - We Will Rock You.flac",
		"Queen/B/01 - We Will Rock You.mp3",
		"Queen/C/01 - We Will Rock You.ogg",
		"Queen/D/01 - We Will Rock You.wav",
	}
	root := buildLibrary(t, files)
	prompter := &scriptedPrompter{selections: []Selection{{Index: 1}}}
	r := newResolver(t, root, Options{AutoAccept: false, Prompter: prompter, MaxChoices: 2})

	if _, err := r.Resolve(context.Background(), match.Query{Artist: "Queen", Title: "We Will Rock You"}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(prompter.requests) != 1 || len(prompter.requests[0].Candidates) != 2 {
		t.Errorf("prompt presented %d candidates, want 2", len(prompter.requests[0].Candidates))
	}
}

func TestMediumSupersetOfStrict(t *testing.T) {
	root := buildLibrary(t, []string{
		"Def Leppard/Hysteria/05 - Pour Some Sugar on Me.flac",
		"Def Leppard/Hysteria/06 - Love Bites.flac",
		"Queen/Greatest Hits/01 - Bohemian Rhapsody.flac",
	})
	scanner := library.NewScanner(library.ScannerConfig{Root: root})
	ranker := match.NewRanker(match.RankerConfig{Scanner: scanner})
	query := match.Query{Artist: "Def Leppard", Title: "Pour Some Sugar on Me"}

	prev := map[string]struct{}{}
	for _, stage := range match.Stages {
		ranked := ranker.Rank(query, stage.Thresholds())
		current := map[string]struct{}{}
		for _, candidate := range ranked {
			current[candidate.Candidate.Path] = struct{}{}
		}
		for path := range prev {
			if _, ok := current[path]; !ok {
				t.Errorf("stage %v lost candidate %s accepted at a stricter stage", stage, path)
			}
		}
		prev = current
	}
}

func TestResolveContextCancelled(t *testing.T) {
	root := buildLibrary(t, []string{
		"Queen/Greatest Hits/01 - Bohemian Rhapsody.flac",
	})
	r := newResolver(t, root, Options{AutoAccept: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Resolve(ctx, match.Query{Artist: "Queen", Title: "Bohemian Rhapsody"}); err == nil {
		t.Error("Resolve with cancelled context should fail")
	}
}
