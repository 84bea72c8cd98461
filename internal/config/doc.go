// Package config loads, normalizes, and validates sonar configuration.
//
// # Overview
//
// Configuration lives in one TOML file, ~/.config/sonar/config.toml unless
// --config names another. It is parsed with go-toml/v2 into Config, which
// has three sections:
//
//   - [server]: url, username, password, password_env, auth, client_name,
//     api_version, insecure_skip_verify, timeout_seconds
//   - [logging]: level, format, file
//   - [ui]: poll_seconds
//
// # Loading
//
// Load runs four steps and returns the config, the resolved path and
// whether the file existed:
//
//	1. Start from Default()
//	2. Decode the file over it when it exists
//	3. normalize(): trim, lower-case, expand paths, apply the password env
//	4. Validate(): report the first problem a user has to fix
//
// A missing file is not an error by itself; Load carries on with defaults
// and Validate then says which fields still need a value, along with the
// path to edit and the "sonar config init" hint.
//
//	cfg, path, exists, err := config.Load(flagPath)
//	if err != nil {
//		return err
//	}
//
// # Defaults
//
//	server.auth             "token"
//	server.password_env     "SONAR_PASSWORD"
//	server.timeout_seconds  15
//	logging.level           "info"
//	logging.format          "console"
//	ui.poll_seconds         5
//
// client_name and api_version are left blank here; the subsonic package
// supplies "sonar" and "1.16.1" when they are.
//
// # Normalization
//
//   - server.url loses trailing slashes and gains http:// when it has no
//     scheme; a sub-path such as /navidrome is kept
//   - the variable named by server.password_env, when set and non-empty,
//     replaces server.password so the secret need not live on disk
//   - logging.format accepts "pretty" and "text" as aliases for "console";
//     unknown formats fall back to console
//   - logging.file and other paths expand a leading ~ and become absolute
//
// # Validation
//
// Validate requires an http or https URL with a host, a username, a
// password from either source, an auth mode subsonic.ParseAuthKind
// accepts, a non-negative timeout, a known log level and a poll interval
// of at least one second. Errors name the TOML key, for example
// "server.username is required".
//
// # Building Clients
//
// Always build the Subsonic client through Config.NewClient so the auth
// mode, client name, protocol version, timeout and TLS override stay
// consistent between the CLI and the browser. NewClient tags the client's
// logger with component=subsonic. SubsonicOptions and Credentials expose
// the two halves for callers that need to add their own options.
//
// # Sample File
//
// CreateSample writes the annotated sample_config.toml embedded in the
// binary. It refuses to overwrite an existing file and creates it with
// 0600 permissions because it may end up holding a password.
//
// # Testing
//
// config_test.go loads files from temporary directories and covers the
// missing-file hint, trimming, the password environment override, each
// validation error, malformed TOML, client construction and CreateSample.
package config
