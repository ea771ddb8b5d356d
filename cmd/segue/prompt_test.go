package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"segue/internal/library"
	"segue/internal/match"
	"segue/internal/resolver"
)

func promptRequest() resolver.PromptRequest {
	return resolver.PromptRequest{
		Query: match.Query{Artist: "Queen", Title: "Bohemian Rhapsody"},
		Candidates: []match.ScoredCandidate{
			{
				Candidate: library.Candidate{
					Path:   "/music/Queen/A Night at the Opera/11 - Bohemian Rhapsody.flac",
					Format: library.FormatFLAC,
				},
				Score: 1.05,
			},
			{
				Candidate: library.Candidate{
					Path:   "/music/Queen/Live at Wembley/07 - Bohemian Rhapsody (Live).mp3",
					Format: library.FormatMP3,
					IsLive: true,
				},
				Score: 0.93,
			},
		},
	}
}

func TestTerminalPrompterSelectsIndex(t *testing.T) {
	var out bytes.Buffer
	prompter := newTerminalPrompter(strings.NewReader("2\n"), &out)

	selection, err := prompter.Select(context.Background(), promptRequest())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if selection.Skip || selection.Index != 2 {
		t.Errorf("selection = %+v, want index 2", selection)
	}
	if !strings.Contains(out.String(), "11 - Bohemian Rhapsody.flac") {
		t.Error("candidate table missing filename")
	}
}

func TestTerminalPrompterRetriesThenSkips(t *testing.T) {
	var out bytes.Buffer
	prompter := newTerminalPrompter(strings.NewReader("abc\n0\n9\ns\n"), &out)

	selection, err := prompter.Select(context.Background(), promptRequest())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !selection.Skip {
		t.Errorf("selection = %+v, want skip", selection)
	}
	if strings.Count(out.String(), "Invalid selection") != 3 {
		t.Errorf("expected three rejections:\n%s", out.String())
	}
}

func TestTerminalPrompterClosedInput(t *testing.T) {
	var out bytes.Buffer
	prompter := newTerminalPrompter(strings.NewReader(""), &out)

	if _, err := prompter.Select(context.Background(), promptRequest()); err == nil {
		t.Error("expected an error when stdin is closed")
	}
}

func TestTerminalPrompterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	prompter := newTerminalPrompter(strings.NewReader("1\n"), &out)

	if _, err := prompter.Select(ctx, promptRequest()); err == nil {
		t.Error("expected context error")
	}
}
