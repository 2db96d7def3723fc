// SPDX-License-Identifier: MPL-2.0

// enumswitch reports switch statements over closed enum types that do not
// name every member, and enum types whose constants drift from the CUE
// schema of their package.
//
// Usage:
//
//	enumswitch ./...
//	enumswitch -json ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"smm-cli/tools/enumswitch/enumswitch"
)

func main() {
	singlechecker.Main(enumswitch.Analyzer)
}
