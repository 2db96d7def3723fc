// SPDX-License-Identifier: MPL-2.0

package main

import cmd "smm-cli/cmd/smm"

func main() {
	cmd.Execute()
}
