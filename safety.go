package mappers

import "strconv"

// SafetyMode controls how a Step treats a null probed value.
type SafetyMode int

const (
	// None passes every probed value, null or not, to predicates and handlers.
	None SafetyMode = iota
	// NullSafe short-circuits a null probed value to the zero value of the step's result.
	NullSafe
)

func (m SafetyMode) String() string {
	switch m {
	case None:
		return "None"
	case NullSafe:
		return "NullSafe"
	default:
		return "SafetyMode(" + strconv.Itoa(int(m)) + ")"
	}
}
