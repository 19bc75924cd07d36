// internal/indent/scanner_test.go
package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scanAll threads state through every line and returns the final state
// plus the trace of each line.
func scanAll(ls ...string) (State, []Trace) {
	var st State
	traces := make([]Trace, 0, len(ls))
	for _, l := range ls {
		var tr Trace
		st, tr = Scan(l, st)
		traces = append(traces, tr)
	}
	return st, traces
}

func TestScan_Counters(t *testing.T) {
	st, tr := Scan("f(a[0], {1, 2}) {", State{})

	assert.Equal(t, State{Brace: 1}, st)
	assert.Equal(t, 0, tr.Start)
	assert.Equal(t, 1, tr.End)
	assert.Equal(t, 0, tr.Min)
	assert.Equal(t, Normal, tr.Class)
}

func TestScan_MinDepth(t *testing.T) {
	_, tr := Scan("} else {", State{Brace: 1})

	assert.Equal(t, 1, tr.Start)
	assert.Equal(t, 0, tr.Min)
	assert.Equal(t, 1, tr.End)
	assert.Equal(t, CascadingClause, tr.Class)
}

func TestScan_ArrowLeavesAngleAlone(t *testing.T) {
	st, _ := Scan("a->b();", State{})
	assert.Equal(t, 0, st.Angle)
}

func TestScan_DoubleDashArrowCloses(t *testing.T) {
	st, _ := Scan("while (x-->0) {}", State{Angle: 1})
	assert.Equal(t, 0, st.Angle)
}

func TestScan_TemplateAngles(t *testing.T) {
	st, _ := Scan("std::vector<int> v;", State{})
	assert.Equal(t, 0, st.Angle)

	// comparison is counted as a bracket; a known limitation
	st, _ = Scan("if (a < b) {", State{})
	assert.Equal(t, 1, st.Angle)
}

func TestScan_StringLiteralOpacity(t *testing.T) {
	st, tr := Scan(`s = "{ not a brace }";`, State{})

	assert.Equal(t, State{}, st)
	assert.Equal(t, `s = "{ not a brace }";`, tr.Code)
}

func TestScan_EscapedQuotes(t *testing.T) {
	// \" stays inside the string
	st, _ := Scan(`s = "a \" { b";`, State{})
	assert.Equal(t, 0, st.Brace)

	// \\" closes it, so the brace after it counts
	st, _ = Scan(`s = "a \\" {`, State{})
	assert.Equal(t, 1, st.Brace)
}

func TestScan_CharLiterals(t *testing.T) {
	st, _ := Scan(`c = '\''; d = '}'; e = '\\'; {`, State{})
	assert.Equal(t, 1, st.Brace)
}

func TestScan_LiteralStateDoesNotCrossLines(t *testing.T) {
	st, _ := scanAll(`s = "unterminated {`, `{`)
	assert.Equal(t, 1, st.Brace)
}

func TestScan_BlockCommentSpansLines(t *testing.T) {
	st, traces := scanAll(
		"x(); /* {",
		"   ( [",
		"*/ }",
	)

	assert.Equal(t, Normal, traces[0].Class)
	assert.True(t, traces[0].EndsInComment)
	assert.Equal(t, "x();", traces[0].Code)

	assert.Equal(t, InsideBlockComment, traces[1].Class)
	assert.True(t, traces[1].EndsInComment)

	assert.Equal(t, InsideBlockComment, traces[2].Class)
	assert.False(t, traces[2].EndsInComment)
	assert.Equal(t, "}", traces[2].Code)

	assert.Equal(t, -1, st.Brace)
	assert.False(t, st.Flags.Has(InBlockComment))
}

func TestScan_SlashStarSlashDoesNotClose(t *testing.T) {
	st, tr := Scan("/*/ {", State{})

	assert.True(t, tr.EndsInComment)
	assert.True(t, st.Flags.Has(InBlockComment))
	assert.Equal(t, 0, st.Brace)
}

func TestScan_CommentLineIsNotScanned(t *testing.T) {
	st, tr := Scan("   // if (x) {", State{})

	assert.Equal(t, CommentOnly, tr.Class)
	assert.Equal(t, State{}, st)
}

func TestScan_CommentLineInsideBlockCommentFindsTerminator(t *testing.T) {
	st, tr := Scan("// still comment */ {", State{Flags: InBlockComment})

	assert.Equal(t, InsideBlockComment, tr.Class)
	assert.False(t, st.Flags.Has(InBlockComment))
	assert.Equal(t, 1, st.Brace)
}

func TestScan_TrailingLineCommentIsStripped(t *testing.T) {
	st, tr := Scan("x = // {", State{})

	assert.Equal(t, "x =", tr.Code)
	assert.Equal(t, 0, st.Brace)
	assert.True(t, st.Flags.Has(InContinuation))
}

func TestScan_MacroMode(t *testing.T) {
	st, traces := scanAll(
		"#define M(a) \\",
		"  call(a); \\",
		"  done(a)",
		"next();",
	)

	// the directive line itself carries the virtual level
	assert.Equal(t, 1, traces[0].Start)
	assert.Equal(t, 1, traces[0].End)
	assert.Equal(t, 1, traces[1].Start)
	assert.Equal(t, 1, traces[1].End)
	assert.Equal(t, 1, traces[2].Start)
	assert.Equal(t, 0, traces[2].End)
	assert.Equal(t, 0, traces[3].Start)
	assert.False(t, st.Flags.Has(InMacro))
}

func TestScan_MacroBackslashBeforeComment(t *testing.T) {
	st, _ := Scan(`#define X 1 \ // trailing`, State{})
	assert.True(t, st.Flags.Has(InMacro))
}

func TestScan_HashInsideBlockCommentIsNotMacro(t *testing.T) {
	st, tr := Scan("#define nothing \\", State{Flags: InBlockComment})

	assert.Equal(t, InsideBlockComment, tr.Class)
	assert.False(t, st.Flags.Has(InMacro))
}

func TestScan_CodeBetweenBlockCommentsUpdatesModes(t *testing.T) {
	st, traces := scanAll(
		"x = 0; /* a",
		"*/ int y = /* b",
		"c */",
	)

	assert.Equal(t, "int y =", traces[1].Code)
	assert.True(t, traces[1].EndsInComment)
	assert.True(t, st.Flags.Has(InContinuation))

	st, _ = Scan("*/ y = 1; /* d", State{Flags: InBlockComment | InContinuation})
	assert.False(t, st.Flags.Has(InContinuation))
	assert.True(t, st.Flags.Has(InBlockComment))
}

func TestScan_ClosingCommentEndsMacro(t *testing.T) {
	st, _ := Scan("a */", State{Flags: InBlockComment | InMacro})
	assert.False(t, st.Flags.Has(InMacro))

	st, _ = Scan("a", State{Flags: InBlockComment | InMacro})
	assert.True(t, st.Flags.Has(InMacro))
}

func TestScan_Continuation(t *testing.T) {
	cases := []struct {
		code string
		on   bool
	}{
		{"x =", true},
		{"x +=", true},
		{"x <<=", false}, // `<=` at the end: not an assignment by this rule
		{"a !=", false},
		{"a <=", false},
		{"a >=", false},
		{"a ==", false},
		{"=", true},
		{"x = 1", false},
	}

	for _, c := range cases {
		st, _ := Scan(c.code, State{})
		assert.Equal(t, c.on, st.Flags.Has(InContinuation), c.code)
	}
}

func TestScan_ContinuationEndsAtSemicolon(t *testing.T) {
	st, traces := scanAll(
		"int x =",
		"1 +",
		"2;",
	)

	assert.Equal(t, 1, traces[0].End)
	assert.Equal(t, 1, traces[1].Start)
	assert.Equal(t, 1, traces[1].End)
	assert.Equal(t, 1, traces[2].Start)
	assert.Equal(t, 0, traces[2].End)
	assert.False(t, st.Flags.Has(InContinuation))
}

func TestScan_Classification(t *testing.T) {
	cases := []struct {
		line  string
		class Class
	}{
		{"} else {", CascadingClause},
		{"} else if (x) {", CascadingClause},
		{"}catch(...){", CascadingClause},
		{"} else", Normal},
		{"}", StrayClosing},
		{"};", StrayClosing},
		{"}); // done", StrayClosing},
		{"} }", StrayClosing},
		{"} while (x);", Normal},
		{"case 1:", CaseClause},
		{"case FOO: return 2;", CaseClause},
		{"default:", Label},
		{"public:", Label},
		{"fail :", Label},
		{"std::cout << x;", Normal},
		{"x ? a : b;", Normal},
		{"cases:", Label},
		{"casey = 1;", Normal},
		{"foo();", Normal},
	}

	for _, c := range cases {
		_, tr := Scan(c.line, State{Brace: 2})
		assert.Equal(t, c.class, tr.Class, c.line)
	}
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "cascading", CascadingClause.String())
	assert.Equal(t, "unknown", Class(99).String())
}
