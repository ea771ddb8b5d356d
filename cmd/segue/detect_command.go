package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"segue/internal/pathdetect"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "detect",
		Short:       "Probe well-known Jellyfin paths for a music library and playlist directory",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			detector := pathdetect.Detector{}

			if root := detector.MusicRoot(); root != "" {
				fmt.Fprintf(out, "Music library:      %s\n", root)
			} else {
				fmt.Fprintln(out, "Music library:      not found")
			}
			if dir := detector.PlaylistDir(); dir != "" {
				fmt.Fprintf(out, "Playlist directory: %s\n", dir)
			} else {
				fmt.Fprintln(out, "Playlist directory: not found")
			}
			return nil
		},
	}
}
