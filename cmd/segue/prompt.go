package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"segue/internal/resolver"
)

// terminalPrompter renders match candidates as a table and reads a selection
// from the terminal. Unparsable input re-prompts; "s" skips the track.
type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) Select(ctx context.Context, req resolver.PromptRequest) (resolver.Selection, error) {
	fmt.Fprintf(p.out, "\nNo clear match for %s\n", req.Query)
	fmt.Fprintln(p.out, candidateTable(req))

	for {
		if err := ctx.Err(); err != nil {
			return resolver.Selection{}, err
		}
		fmt.Fprintf(p.out, "Select 1-%d, or s to skip: ", len(req.Candidates))
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return resolver.Selection{}, fmt.Errorf("input closed while selecting a match for %s", req.Query)
			}
			return resolver.Selection{}, fmt.Errorf("read selection: %w", err)
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "s", "skip":
			return resolver.Selection{Skip: true}, nil
		case "":
			continue
		}
		index, convErr := strconv.Atoi(answer)
		if convErr != nil || index < 1 || index > len(req.Candidates) {
			fmt.Fprintf(p.out, "Invalid selection %q\n", answer)
			continue
		}
		return resolver.Selection{Index: index}, nil
	}
}

func candidateTable(req resolver.PromptRequest) string {
	rows := make([][]string, 0, len(req.Candidates))
	for i, candidate := range req.Candidates {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.3f", candidate.Score),
			candidate.Candidate.Format.String(),
			yesNo(candidate.Candidate.IsLive),
			filepath.Base(candidate.Candidate.Path),
		})
	}
	return renderTable([]string{"#", "Score", "Format", "Live", "File"}, rows, 1, 2)
}
