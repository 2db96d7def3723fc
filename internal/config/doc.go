// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/smm/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/smm/config.cue on macOS, %APPDATA%\smm\config.cue on
// Windows). It holds UI and output preferences, the Steam app id used to start hand-added
// installations, and the installations registered with the tool.
//
// Files are validated against an embedded CUE schema (config_schema.cue). Constraints the
// schema cannot express, such as path uniqueness, are checked after decoding.
package config
