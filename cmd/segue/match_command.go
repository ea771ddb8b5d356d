package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"segue/internal/library"
	"segue/internal/match"
	"segue/internal/pathdetect"
	"segue/internal/resolver"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var musicFlag string
	var showCandidates bool

	cmd := &cobra.Command{
		Use:   "match <artist> <title>",
		Short: "Resolve a single track against the music library",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			musicDir := firstNonEmpty(musicFlag, cfg.Paths.MusicDir)
			if musicDir == "" {
				musicDir = (&pathdetect.Detector{}).MusicRoot()
			}
			scanner := library.NewScanner(library.ScannerConfig{
				Root:           musicDir,
				Extensions:     cfg.Matching.Extensions,
				LiveIndicators: cfg.Matching.LiveIndicators,
				Logger:         logger,
			})
			ranker := match.NewRanker(match.RankerConfig{
				Scanner:   scanner,
				FlacBonus: cfg.Matching.FlacBonus,
				Logger:    logger,
			})

			query := match.Query{Artist: args[0], Title: args[1]}
			res := resolver.New(ranker, resolver.Options{
				AutoAccept:   cfg.Matching.AutoAccept,
				AcceptMargin: cfg.Matching.AcceptMargin,
			}, logger)
			result, err := res.Resolve(cmd.Context(), query)
			if err != nil {
				return err
			}

			switch result.Outcome {
			case resolver.OutcomeMatched:
				fmt.Fprintf(out, "Matched at stage %s (score %.3f)\n", result.Stage, result.Candidate.Score)
				fmt.Fprintln(out, result.Candidate.Candidate.Path)
			default:
				fmt.Fprintf(out, "No match for %s\n", query)
			}

			if showCandidates {
				printStageCandidates(out, ranker, query)
			}
			for _, warning := range scanner.Warnings() {
				fmt.Fprintf(out, "Warning: %s\n", warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&musicFlag, "music", "", "Music library root (overrides config)")
	cmd.Flags().BoolVar(&showCandidates, "candidates", false, "List every candidate that clears the loosest stage")
	return cmd
}

func printStageCandidates(out io.Writer, ranker *match.Ranker, query match.Query) {
	ranked := ranker.Rank(query, match.StageLoose.Thresholds())
	if len(ranked) == 0 {
		return
	}
	rows := make([][]string, 0, len(ranked))
	for i, candidate := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.3f", candidate.Score),
			fmt.Sprintf("%.2f/%.2f", candidate.ArtistSim, candidate.TitleSim),
			candidate.Candidate.Format.String(),
			yesNo(candidate.Candidate.IsLive),
			filepath.Base(candidate.Candidate.Path),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"#", "Score", "Artist/Title", "Format", "Live", "File"}, rows, 1, 2))
}
