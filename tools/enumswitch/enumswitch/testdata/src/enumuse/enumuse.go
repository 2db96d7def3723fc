// SPDX-License-Identifier: MPL-2.0

package enumuse

import "enumdef"

func Hex(c enumdef.Color) string {
	switch c {
	case enumdef.Red:
		return "#f00"
	case enumdef.Green:
		return "#0f0"
	case enumdef.Blue:
		return "#00f"
	}
	return ""
}

func Cool(c enumdef.Color) bool {
	switch c { // want `switch on enumdef\.Color is missing cases: Red`
	case enumdef.Green, enumdef.Blue:
		return true
	default:
		return false
	}
}

func Literal(c enumdef.Color) bool {
	switch c { // want `switch on enumdef\.Color is missing cases: Green`
	case "red", "blue":
		return true
	}
	return false
}

func Round(s enumdef.Shape) bool {
	switch s {
	case enumdef.Circle:
		return true
	}
	return false
}

func Tagless(c enumdef.Color) bool {
	switch {
	case c == enumdef.Red:
		return true
	}
	return false
}
