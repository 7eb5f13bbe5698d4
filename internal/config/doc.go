// Package config loads, normalizes, and validates lyricsync configuration.
//
// Configuration lives in a TOML file resolved from an explicit path, the
// default user location (~/.config/lyricsync/config.toml), or a
// project-local lyricsync.toml. A missing file is not an error: defaults
// apply and validation runs against them. Path fields are expanded
// (~ resolution) and made absolute during load.
package config
