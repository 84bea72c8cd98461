// Package main hosts the sonar command line.
//
// # Commands
//
//	ping                  server type, version and protocol
//	license               license state
//	extensions            OpenSubsonic extensions the server declares
//	folders               music folders
//	artists [--folder]    the artist index
//	albums                an album list (--type, --size, --offset, year and genre filters)
//	album <id>            one album and its tracks
//	search <query>        search3 grouped into artists, albums and songs
//	now-playing           what every user is playing
//	scan [--start]        scan status, optionally starting a scan first
//	cover <id>            save cover art to a file or stdout
//	stream-url <id>       print a signed stream link
//	config init|validate  write the sample file or check the current one
//	logs                  tail the log file (--lines, --level, --file)
//	browse                the terminal browser
//
// The persistent flags are --config/-c, naming config.toml, and --json,
// which prints the decoded result instead of a table.
//
// # Execution Flow
//
// Each subcommand loads the configuration once through commandContext and
// builds a Subsonic client from it with config.NewClient. Loading and the
// logger are guarded by sync.Once, so a command that needs both pays once.
// Commands annotated skipConfigLoad ("config" and "logs") skip the
// validated load and work before a server is configured.
//
// Tables go through go-pretty with its rounded style. Server-reported
// failures print their documented condition and the server's message, and
// the command exits non-zero.
//
// # Testing
//
// main_test.go runs the root command against an httptest server and a
// temporary config file and checks what each command prints, including
// --json, missing arguments, JSON error bodies from media endpoints and the
// missing-config hint. output_test.go covers the table and formatting
// helpers.
package main
