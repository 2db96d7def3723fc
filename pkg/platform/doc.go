// SPDX-License-Identifier: MPL-2.0

// Package platform describes the host the game is launched from: its
// operating system and whether the process runs inside an application
// sandbox (Flatpak, Snap) that must hand commands off to the host.
package platform
