package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/sonar/internal/app"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var pollSeconds int
	var prefsPath string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the library in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), app.Options{
				Config:    cfg,
				PrefsPath: prefsPath,
				PollEvery: pollSeconds,
			})
		},
	}
	cmd.Flags().IntVar(&pollSeconds, "poll", 0, "Status refresh interval in seconds (default ui.poll_seconds)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Preferences file (default ~/.config/sonar/prefs.toml)")
	return cmd
}
