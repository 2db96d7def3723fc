// SPDX-License-Identifier: MPL-2.0

package enumcue

type (
	// Level matches the schema.
	//
	//enumswitch:cue=#Options.level
	Level string

	// Format lacks "yaml" and adds "xml".
	//
	//enumswitch:cue=#Format
	Format string // want `type Format: CUE member "yaml" \(at #Format\) has no Go constant` `type Format: Go constant "xml" is not in CUE disjunction at #Format`

	// Mode points at a path the schema does not define.
	//
	//enumswitch:cue=#Options.mode
	Mode string // want `type Mode: CUE path #Options\.mode: field "mode" not found`
)

const (
	LevelLow  Level = "low"
	LevelHigh Level = "high"

	FormatJSON Format = "json"
	FormatXML  Format = "xml"

	ModeFast Mode = "fast"
)
