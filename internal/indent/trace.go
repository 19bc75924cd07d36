// internal/indent/trace.go
package indent

import "regexp"

// Class tags a scanned line for the level calculator.
type Class int

const (
	// Normal is any code line not covered by a more specific class.
	Normal Class = iota

	// CommentOnly starts with `//` outside a block comment.
	CommentOnly

	// InsideBlockComment starts inside an open block comment and is
	// never re-indented.
	InsideBlockComment

	// Label is a bare `name:` line, `default:` and `public:` included.
	Label

	// CaseClause starts with `case`.
	CaseClause

	// CascadingClause closes a block and opens the next one,
	// as in `} else {`.
	CascadingClause

	// StrayClosing holds only closing brackets and an optional `;`.
	StrayClosing
)

var classNames = [...]string{
	Normal:             "normal",
	CommentOnly:        "comment",
	InsideBlockComment: "block-comment",
	Label:              "label",
	CaseClause:         "case",
	CascadingClause:    "cascading",
	StrayClosing:       "stray-closing",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Trace is what the scanner learned about one line.
// It is recomputed for every line and never retained.
type Trace struct {
	Class Class

	// Depths, including the virtual macro/continuation levels.
	Start int // before the first character
	End   int // after the line, with the modes that carry into the next line
	Min   int // lowest depth reached while scanning left to right

	// Code is the line with comments removed and surrounding space trimmed.
	// String and character literals are kept.
	Code string

	// EndsInComment is set when a block comment is still open after the line.
	EndsInComment bool
}

// ---- line classification ----

var (
	// `} else {`, `} else if (x) {`, `} catch (...) {`
	reCascading = regexp.MustCompile(`^\}\s*(else|catch)\b.*\{`)

	// `}`, `};`, `});`, `) ;`
	reStrayClosing = regexp.MustCompile(`^[)\]}>][)\]}>\s]*;?$`)

	// `case X:`, `case 'a': return 1;`
	reCase = regexp.MustCompile(`^case\b`)

	// `done:`, `default:`, `public:`; a bare identifier and nothing else.
	// Ternaries and `::` never match because the colon must end the line
	// and follow the identifier directly.
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s*:$`)
)

// classify picks the class of a line that was scanned as code.
// Precedence matches the calculator: cascading, stray closing, case/label.
func classify(code string) Class {
	switch {
	case reCascading.MatchString(code):
		return CascadingClause
	case reStrayClosing.MatchString(code):
		return StrayClosing
	case reCase.MatchString(code):
		return CaseClause
	case reLabel.MatchString(code):
		return Label
	}
	return Normal
}
