// internal/indent/calculator.go
package indent

// Level computes the indent level for a scanned line.
//
// previous is the level persisted by the line before. applied is the level
// to print this line at; persisted is handed to the next line.
// Neither is clamped: negative levels from unbalanced input are kept and
// only the rewriter stops them at zero.
//
// Block-comment continuation lines are not levelled; Format skips them.
func Level(tr Trace, previous int) (applied, persisted int) {
	applied = previous
	persisted = tr.End

	switch tr.Class {
	case CascadingClause:
		// align `} else {` with its `if`, the depth right after the `}`
		applied = tr.Min

	case StrayClosing:
		if tr.End < previous {
			applied = tr.End
			persisted = tr.End
		}

	case Label, CaseClause:
		applied = max(previous-1, 0)
	}

	return applied, persisted
}
