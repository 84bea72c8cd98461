package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/sonar/pkg/subsonic"
)

func newCoverCommand(ctx *commandContext) *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "cover <id>",
		Short: "Download cover art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			target := strings.TrimSpace(output)
			if target == "" {
				target = id + ".jpg"
			}
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				data, err := client.GetCoverArt(c, id, size)
				if err != nil {
					return fmt.Errorf("get cover art: %w", err)
				}
				if target == "-" {
					_, err := cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(target, data, 0o644); err != nil {
					return fmt.Errorf("write cover art: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", len(data), target)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file, or - for stdout (default <id>.jpg)")
	cmd.Flags().IntVar(&size, "size", 0, "Scale the image to this many pixels")
	return cmd
}

func newStreamURLCommand(ctx *commandContext) *cobra.Command {
	var (
		maxBitRate int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "stream-url <id>",
		Short: "Print an authenticated stream URL for a media player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(_ context.Context, client *subsonic.Client) error {
				u := client.StreamURL(args[0], subsonic.StreamOptions{MaxBitRate: maxBitRate, Format: strings.TrimSpace(format)})
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]string{"url": u.String()})
				}
				fmt.Fprintln(cmd.OutOrStdout(), u.String())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&maxBitRate, "max-bitrate", 0, "Transcode above this bitrate in kbps")
	cmd.Flags().StringVar(&format, "format", "", "Target format, e.g. mp3 or raw")
	return cmd
}
