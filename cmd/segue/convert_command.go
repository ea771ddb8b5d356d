package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"segue/internal/library"
	"segue/internal/logging"
	"segue/internal/match"
	"segue/internal/pathdetect"
	"segue/internal/pipeline"
	"segue/internal/playlist"
	"segue/internal/preflight"
	"segue/internal/resolver"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var musicFlag string
	var playlistsFlag string
	var nameFlag string
	var noInteractive bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "convert <playlist-file>",
		Short: "Match a playlist against the music library and write Jellyfin XML",
		Args:  cobra.ExactArgs(1),
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
			playlistDir := firstNonEmpty(playlistsFlag, cfg.Paths.PlaylistDir)
			detector := pathdetect.Detector{}
			if musicDir == "" {
				if musicDir = detector.MusicRoot(); musicDir != "" {
					fmt.Fprintf(out, "Auto-detected music library: %s\n", musicDir)
				}
			}
			if playlistDir == "" && !dryRun {
				if playlistDir = detector.PlaylistDir(); playlistDir != "" {
					fmt.Fprintf(out, "Auto-detected playlist directory: %s\n", playlistDir)
				}
			}

			checks := []preflight.Result{preflight.CheckMusicRoot(musicDir)}
			if !dryRun {
				checks = append(checks, preflight.CheckPlaylistDir(playlistDir))
			}
			printChecks(out, checks)
			if !checks[0].Passed {
				return pipeline.Wrap(pipeline.ErrPath, "preflight", "check music library",
					fmt.Errorf("%s", checks[0].Detail))
			}
			if !preflight.AllPassed(checks) {
				return pipeline.Wrap(pipeline.ErrOutput, "preflight", "check playlist directory",
					fmt.Errorf("%s", checks[len(checks)-1].Detail))
			}

			source := args[0]
			queries, err := playlist.ReadFile(source)
			if err != nil {
				return pipeline.Wrap(pipeline.ErrInput, "playlist", "read "+source, err)
			}
			fmt.Fprintf(out, "Read %d tracks from %s\n", len(queries), source)

			name := strings.TrimSpace(nameFlag)
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
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
			opts := resolver.Options{
				AutoAccept:   cfg.Matching.AutoAccept,
				AcceptMargin: cfg.Matching.AcceptMargin,
				MaxChoices:   cfg.Matching.MaxInteractive,
			}
			if cfg.Matching.Interactive && !noInteractive && stdinIsTerminal() {
				opts.Prompter = newTerminalPrompter(cmd.InOrStdin(), out)
			}
			runner := pipeline.NewRunner(pipeline.RunnerConfig{
				Resolver: resolver.New(ranker, opts, logger),
				Scanner:  scanner,
				Logger:   logger,
			})

			report, runErr := runner.Run(cmd.Context(), queries)
			if report != nil {
				printReport(out, report)
			}
			if runErr != nil {
				return runErr
			}

			if dryRun {
				fmt.Fprintln(out, "Dry run; no playlist written")
				return nil
			}
			if report.Matched == 0 {
				return pipeline.Wrap(pipeline.ErrOutput, "playlist", "write "+name,
					fmt.Errorf("no tracks matched"))
			}

			file, err := playlist.Write(playlistDir, name, report.MatchedPaths())
			if err != nil {
				return pipeline.Wrap(pipeline.ErrOutput, "playlist", "write "+name, err)
			}
			fmt.Fprintf(out, "Wrote playlist: %s\n", file)

			if cfg.Output.FixOwnership {
				target := filepath.Dir(file)
				if err := playlist.FixOwnership(target, cfg.Output.Owner, cfg.Output.Group); err != nil {
					logger.Warn("could not fix playlist ownership", logging.Error(err))
					fmt.Fprintf(out, "Could not set ownership: %v\n", err)
					fmt.Fprintln(out, playlist.OwnershipHint(target, cfg.Output.Owner, cfg.Output.Group))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&musicFlag, "music", "", "Music library root (overrides config)")
	cmd.Flags().StringVar(&playlistsFlag, "playlists", "", "Playlist directory (overrides config)")
	cmd.Flags().StringVar(&nameFlag, "name", "", "Playlist name (defaults to the input file name)")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Never prompt; ambiguous entries take the top candidate")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and report without writing the playlist")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printChecks(out io.Writer, checks []preflight.Result) {
	rows := make([][]string, 0, len(checks))
	for _, check := range checks {
		status := "FAIL"
		if check.Passed {
			status = "OK"
		}
		rows = append(rows, []string{check.Name, status, check.Detail})
	}
	fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
}

func printReport(out io.Writer, report *pipeline.Report) {
	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		row := []string{result.Query.String(), result.Outcome.String(), "", ""}
		if result.Outcome == resolver.OutcomeMatched {
			row[2] = fmt.Sprintf("%.3f", result.Candidate.Score)
			row[3] = filepath.Base(result.Candidate.Candidate.Path)
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable([]string{"Track", "Outcome", "Score", "File"}, rows, 3))

	fmt.Fprintf(out, "Matched %d of %d tracks (%d unresolved, %d skipped)\n",
		report.Matched, len(report.Results), report.Unresolved, report.Skipped)
	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
	if unmatched := report.Unmatched(); len(unmatched) > 0 {
		fmt.Fprintln(out, "Unresolved tracks:")
		for i, query := range unmatched {
			fmt.Fprintf(out, "  %d. %s\n", i+1, query)
		}
	}
}
