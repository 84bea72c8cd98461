// Package prefs persists browse UI preferences that the user changes at
// runtime, such as the color theme. They live apart from config.toml so that
// toggling a theme never rewrites the hand-edited server configuration.
//
// # File Format
//
// Preferences are a small TOML file, ~/.config/sonar/prefs.toml unless
// "sonar browse --prefs" names another:
//
//	theme = "Kanagawa"
//	album_list_type = "recent"
//
// # Defaults and Fallbacks
//
// A missing file yields Default(): theme Nightfox and ordering "newest".
// Blank values take their default. An album_list_type that
// subsonic.ParseAlbumListType rejects becomes "newest"; a theme name is kept
// as written and the UI falls back when it does not know it. Malformed TOML
// returns the defaults together with the parse error so the caller can log
// it and carry on.
//
// Save creates missing directories and rewrites the whole file.
//
// # Testing
//
// prefs_test.go covers the missing file, the default location under a
// temporary HOME, a save and load through nested directories, blank and
// unknown values, and malformed TOML.
package prefs
