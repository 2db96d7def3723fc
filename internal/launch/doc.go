// SPDX-License-Identifier: MPL-2.0

// Package launch builds the command lines that start the game for an
// installation and detects whether the game is already running.
package launch
