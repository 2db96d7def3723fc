// SPDX-License-Identifier: MPL-2.0

// Package testutil provides fixtures for tests that lay out game
// installation directories on disk.
package testutil
