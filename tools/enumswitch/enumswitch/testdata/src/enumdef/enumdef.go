// SPDX-License-Identifier: MPL-2.0

package enumdef

type (
	// Color is closed.
	//
	//enumswitch:closed
	Color string // want Color:`closed\(Blue, Green, Red\)`

	// Shape is open; switches over it are not checked.
	Shape string
)

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"

	Circle Shape = "circle"
	Square Shape = "square"
)

func (c Color) IsValid() bool {
	switch c {
	case Red, Green, Blue:
		return true
	default:
		return false
	}
}

func (c Color) Warm() bool {
	switch c { // want `switch on enumdef\.Color is missing cases: Blue, Green`
	case Red:
		return true
	}
	return false
}

func (s Shape) Corners() int {
	switch s {
	case Square:
		return 4
	default:
		return 0
	}
}
