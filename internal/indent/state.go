// internal/indent/state.go
package indent

// Flags holds the scanner modes that survive a line break.
// Modes are independent of each other; any combination is legal.
type Flags uint8

const (
	// InBlockComment is set while a /* ... */ comment is open.
	InBlockComment Flags = 1 << iota

	// InMacro is set while a preprocessor line continues with a trailing backslash.
	InMacro

	// InContinuation is set while a statement that ended in `=` waits for its `;`.
	InContinuation
)

// Has reports whether every mode in m is set.
func (f Flags) Has(m Flags) bool {
	return f&m == m
}

func (f Flags) with(m Flags, on bool) Flags {
	if on {
		return f | m
	}
	return f &^ m
}

// State is threaded from one line to the next.
// It is a plain value: Scan receives a copy and returns the successor.
//
// Counters are never repaired. Unbalanced input may drive them negative
// or above the real nesting and they stay that way.
type State struct {
	Brace   int
	Bracket int
	Paren   int
	Angle   int

	Flags Flags
}

// Brackets is the sum of the four bracket counters.
func (s State) Brackets() int {
	return s.Brace + s.Bracket + s.Paren + s.Angle
}

// Depth is the bracket sum plus one virtual level per active
// macro or continuation mode.
func (s State) Depth() int {
	d := s.Brackets()
	if s.Flags.Has(InMacro) {
		d++
	}
	if s.Flags.Has(InContinuation) {
		d++
	}
	return d
}
