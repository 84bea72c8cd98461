package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/sonar/pkg/subsonic"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				info, err := client.Ping(c)
				if ctx.jsonOutput() {
					if err != nil {
						return err
					}
					return writeJSON(cmd, info)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				fmt.Fprintln(out, renderStatusLine("Server", statusInfo, client.BaseURL(), colorize))
				fmt.Fprintln(out, renderStatusLine("User", statusInfo, client.Username(), colorize))
				if err != nil {
					fmt.Fprintln(out, renderStatusLine("Status", statusError, "unreachable", colorize))
					return fmt.Errorf("ping: %w", err)
				}
				fmt.Fprintln(out, renderStatusLine("Status", statusOK, "ok", colorize))
				server := displayName(info.ServerType)
				if info.ServerVersion != "" {
					server += " " + info.ServerVersion
				}
				fmt.Fprintln(out, renderStatusLine("Software", statusInfo, server, colorize))
				fmt.Fprintln(out, renderStatusLine("API version", statusInfo, dash(info.APIVersion), colorize))
				kind := statusInfo
				if !info.OpenSubsonic {
					kind = statusWarn
				}
				fmt.Fprintln(out, renderStatusLine("OpenSubsonic", kind, yesNo(info.OpenSubsonic), colorize))
				return nil
			})
		},
	}
}

func newLicenseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Show the server license",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				license, err := client.GetLicense(c)
				if err != nil {
					return fmt.Errorf("get license: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, license)
				}
				rows := [][]string{
					{"Valid", yesNo(license.Valid)},
					{"Email", dash(license.Email)},
					{"License expires", dash(license.LicenseExpires)},
					{"Trial expires", dash(license.TrialExpires)},
				}
				printTable(cmd, []string{"Field", "Value"}, rows, nil, "")
				return nil
			})
		},
	}
}

func newExtensionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List OpenSubsonic extensions supported by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, client *subsonic.Client) error {
				exts, err := client.GetOpenSubsonicExtensions(c)
				if err != nil {
					return fmt.Errorf("get extensions: %w", err)
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, exts)
				}
				rows := make([][]string, 0, len(exts))
				for _, ext := range exts {
					versions := make([]string, len(ext.Versions))
					for i, v := range ext.Versions {
						versions[i] = strconv.Itoa(v)
					}
					rows = append(rows, []string{ext.Name, strings.Join(versions, ", ")})
				}
				printTable(cmd, []string{"Extension", "Versions"}, rows, nil, "No extensions reported.")
				return nil
			})
		},
	}
}
