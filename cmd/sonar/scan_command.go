package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/sonar/pkg/subsonic"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var start bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Show or start a library scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				var (
					status subsonic.ScanStatus
					err    error
				)
				if start {
					status, err = client.StartScan(c)
				} else {
					status, err = client.GetScanStatus(c)
				}
				if err != nil {
					if start {
						return fmt.Errorf("start scan: %w", err)
					}
					return fmt.Errorf("get scan status: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, status)
				}

				out := cmd.OutOrStdout()
				switch {
				case status.Scanning && start:
					fmt.Fprintf(out, "Scan started (%d items so far)\n", status.Count)
				case status.Scanning:
					fmt.Fprintf(out, "Scanning: %d items so far\n", status.Count)
				default:
					fmt.Fprintf(out, "Idle: %d items in library\n", status.Count)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&start, "start", false, "Start a scan before reporting status")
	return cmd
}
