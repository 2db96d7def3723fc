// SPDX-License-Identifier: MPL-2.0

// Package installation defines the vocabulary shared by installation finders
// and their consumers: the installation type, location and branch enums, the
// installation record itself, and the Unreal version file read from a game
// directory.
//
// Finders populate Installation values; classifiers and launchers only read
// them.
package installation
