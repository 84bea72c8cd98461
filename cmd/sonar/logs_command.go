package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/sonar/internal/config"
	"github.com/five82/sonar/internal/logtail"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var (
		lines    int
		level    string
		filePath string
	)

	cmd := &cobra.Command{
		Use:         "logs",
		Short:       "Show the end of the sonar log file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(filePath)
			if path == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				path = cfg.Logging.File
			} else {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve log path: %w", err)
				}
				path = expanded
			}
			if path == "" {
				return fmt.Errorf("logging.file is not set; pass --file or configure a log file")
			}

			minLevel, err := logtail.ParseLevel(level)
			if err != nil {
				return err
			}
			tail, err := logtail.Read(path, lines)
			if err != nil {
				return err
			}
			tail = logtail.Filter(tail, minLevel)

			out := cmd.OutOrStdout()
			if len(tail) == 0 {
				fmt.Fprintf(out, "No log entries in %s\n", path)
				return nil
			}
			colorize := shouldColorize(out)
			for _, line := range tail {
				fmt.Fprintln(out, colorizeLogLine(line, colorize))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to read from the end (0 reads all)")
	cmd.Flags().StringVar(&level, "level", "debug", "Minimum level to show: debug, info, warn, error")
	cmd.Flags().StringVar(&filePath, "file", "", "Log file to read (default logging.file)")
	return cmd
}

func colorizeLogLine(line string, colorize bool) string {
	if !colorize {
		return line
	}
	level, ok := logtail.Level(line)
	if !ok {
		return line
	}
	switch {
	case level >= slog.LevelError:
		return ansiRed + line + ansiReset
	case level >= slog.LevelWarn:
		return ansiYellow + line + ansiReset
	case level < slog.LevelInfo:
		return ansiBlue + line + ansiReset
	default:
		return line
	}
}
