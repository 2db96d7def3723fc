// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors for the smm CLI.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for fixing it. Issue pages are Markdown documents rendered
// with glamour that explain common failures (an unknown install type, a
// game directory without an executable, a broken config file) in depth.
package issue
