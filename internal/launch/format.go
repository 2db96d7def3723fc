// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// FormatCommand renders argv as a single line a POSIX shell would split
// back into the same arguments.
func FormatCommand(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			// Only arguments holding NUL bytes cannot be quoted.
			q = "'" + strings.ReplaceAll(arg, "\x00", "") + "'"
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
