// internal/indent/scanner.go
package indent

import "strings"

// lexical context of the character being scanned
type lexMode int

const (
	modeCode lexMode = iota
	modeString
	modeChar
	modeBlockComment
)

// Scan consumes one line (without its terminator) and the state left by
// the previous line. It returns the successor state and the line's trace.
//
// Scan never fails. Unbalanced or malformed input only produces odd depths.
func Scan(line string, st State) (State, Trace) {
	trimmed := strings.TrimSpace(line)
	startsInComment := st.Flags.Has(InBlockComment)

	// ---- modes active for this whole line ----

	macro := st.Flags.Has(InMacro) ||
		(!startsInComment && strings.HasPrefix(trimmed, "#"))
	cont := st.Flags.Has(InContinuation)

	virtual := 0
	if macro {
		virtual++
	}
	if cont {
		virtual++
	}

	tr := Trace{Start: st.Brackets() + virtual}
	tr.Min = tr.Start

	// ---- comment-only line ----

	if !startsInComment && strings.HasPrefix(trimmed, "//") {
		st.Flags = st.Flags.with(InMacro, false)
		tr.Class = CommentOnly
		tr.End = st.Depth()
		return st, tr
	}

	// ---- character scan ----

	mode := modeCode
	if startsInComment {
		mode = modeBlockComment
	}

	code := make([]byte, 0, len(line))
	var prev1, prev2 byte

scan:
	for i := 0; i < len(line); i++ {
		c := line[i]

		switch mode {
		case modeString, modeChar:
			code = append(code, c)
			quote := byte('"')
			if mode == modeChar {
				quote = '\''
			}
			if c == quote && !(prev1 == '\\' && prev2 != '\\') {
				mode = modeCode
			}

		case modeBlockComment:
			if prev1 == '*' && c == '/' {
				mode = modeCode
				// "*/" must not be read again as the start of "/*"
				c = 0
			}

		case modeCode:
			switch c {
			case '{':
				st.Brace++
			case '}':
				st.Brace--
			case '[':
				st.Bracket++
			case ']':
				st.Bracket--
			case '(':
				st.Paren++
			case ')':
				st.Paren--
			case '<':
				st.Angle++
			case '>':
				// `->` is not a bracket; `-->` still closes one.
				if prev1 != '-' || prev2 == '-' {
					st.Angle--
				}
			case '"':
				mode = modeString
			case '\'':
				mode = modeChar
			case '*':
				if prev1 == '/' {
					mode = modeBlockComment
					code = code[:len(code)-1]
					// "/*/" does not close the comment it just opened
					c = 0
				}
			case '/':
				if prev1 == '/' {
					code = code[:len(code)-1]
					break scan
				}
			}
			if c != 0 && mode != modeBlockComment {
				code = append(code, c)
			}
		}

		if d := st.Brackets() + virtual; d < tr.Min {
			tr.Min = d
		}

		prev2, prev1 = prev1, c
	}

	tr.Code = strings.TrimSpace(string(code))
	tr.EndsInComment = mode == modeBlockComment
	st.Flags = st.Flags.with(InBlockComment, tr.EndsInComment)

	// ---- modes carried into the next line ----

	// A line with no code outside the comment cannot end a macro.
	// Code between a closing and a reopening comment still counts.
	if !(startsInComment && tr.EndsInComment && tr.Code == "") {
		st.Flags = st.Flags.with(InMacro, macro && strings.HasSuffix(tr.Code, `\`))
	}

	switch {
	case strings.HasSuffix(tr.Code, ";"):
		st.Flags = st.Flags.with(InContinuation, false)
	case endsWithAssignment(tr.Code):
		st.Flags = st.Flags.with(InContinuation, true)
	}

	tr.End = st.Depth()

	switch {
	case startsInComment:
		tr.Class = InsideBlockComment
	default:
		tr.Class = classify(tr.Code)
	}

	return st, tr
}

// endsWithAssignment reports a trailing `=` that is not part of
// `!=`, `<=`, `>=` or `==`.
func endsWithAssignment(code string) bool {
	n := len(code)
	if n == 0 || code[n-1] != '=' {
		return false
	}
	if n == 1 {
		return true
	}
	switch code[n-2] {
	case '!', '<', '>', '=':
		return false
	}
	return true
}
