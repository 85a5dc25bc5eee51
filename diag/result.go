package diag

import (
	"fmt"
	"iter"
	"strings"
)

// Result is an immutable snapshot of the diagnostics an ontology operation
// accumulated while it ran: recovered warnings (a dangling view, an inverted
// edge, a cluster target that wasn't a relator) alongside whatever fatal or
// error issues stopped it short. Results are obtained via [Collector.Result]
// or the [OK] function for empty success results.
//
// There is no public constructor accepting arbitrary issues; this ensures
// all issues in a Result are valid.
type Result struct {
	issues       []Issue
	limit        int
	limitReached bool
	droppedCount int

	fatalCount   int
	errorCount   int
	warningCount int
	infoCount    int
	hintCount    int
}

// newResult creates a Result with precomputed counts.
//
// The issues slice is owned by the Result and must not be modified after
// this call. Callers must pass a fresh slice (not shared with other code).
func newResult(issues []Issue, limit int, limitReached bool, droppedCount int) Result {
	var fatalCount, errorCount, warningCount, infoCount, hintCount int

	for _, issue := range issues {
		switch issue.Severity() {
		case Fatal:
			fatalCount++
		case Error:
			errorCount++
		case Warning:
			warningCount++
		case Info:
			infoCount++
		case Hint:
			hintCount++
		}
	}

	return Result{
		issues:       issues,
		limit:        limit,
		limitReached: limitReached,
		droppedCount: droppedCount,
		fatalCount:   fatalCount,
		errorCount:   errorCount,
		warningCount: warningCount,
		infoCount:    infoCount,
		hintCount:    hintCount,
	}
}

// OK returns a Result representing success (no issues). This is the
// canonical way to construct a success Result in return statements.
func OK() Result {
	return newResult(nil, 0, false, 0)
}

// OK reports whether no Fatal or Error issues are present. A Warning-only
// Result (a repaired inverted edge, a dropped dangling view) is still OK:
// the graph operation that produced it ran to completion.
func (r Result) OK() bool {
	return r.fatalCount == 0 && r.errorCount == 0
}

// HasFatal reports whether any Fatal issue is present.
func (r Result) HasFatal() bool {
	return r.fatalCount > 0
}

// HasErrors reports whether any Fatal or Error issue is present.
func (r Result) HasErrors() bool {
	return r.fatalCount > 0 || r.errorCount > 0
}

// HasWarnings reports whether any Warning issue is present. ontoctl logs the
// result at warn level whenever this is true, even on an otherwise OK load.
func (r Result) HasWarnings() bool {
	return r.warningCount > 0
}

// Len returns the number of issues.
func (r Result) Len() int {
	return len(r.issues)
}

// LimitReached reports whether the collection limit was reached.
func (r Result) LimitReached() bool {
	return r.limitReached
}

// DroppedCount returns how many issues were dropped after hitting the limit.
func (r Result) DroppedCount() int {
	return r.droppedCount
}

// Limit returns the configured issue limit (0 means unlimited). Use
// [Result.LimitReached] to check if the limit was actually reached.
func (r Result) Limit() int {
	return r.limit
}

// ErrorsSlice returns only Fatal and Error issues (deep copy).
func (r Result) ErrorsSlice() []Issue {
	if r.fatalCount+r.errorCount == 0 {
		return nil
	}
	result := make([]Issue, 0, r.fatalCount+r.errorCount)
	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			result = append(result, issue.Clone())
		}
	}
	return result
}

// WarningsSlice returns only Warning issues (deep copy), such as the
// recovered warning recorded when a Cluster target is not a relator.
func (r Result) WarningsSlice() []Issue {
	if r.warningCount == 0 {
		return nil
	}
	result := make([]Issue, 0, r.warningCount)
	for _, issue := range r.issues {
		if issue.Severity() == Warning {
			result = append(result, issue.Clone())
		}
	}
	return result
}

// IssuesSlice returns a deep copy of all issues, in the deterministic
// sorted order produced by [Collector.Result].
func (r Result) IssuesSlice() []Issue {
	if len(r.issues) == 0 {
		return nil
	}
	result := make([]Issue, len(r.issues))
	for i, issue := range r.issues {
		result[i] = issue.Clone()
	}
	return result
}

// Issues returns an iterator over all issues without copying, in
// deterministic sorted order. [Collector.Merge] uses this to fold one
// operation's Result into another's accumulating collector.
func (r Result) Issues() iter.Seq[Issue] {
	return func(yield func(Issue) bool) {
		for _, issue := range r.issues {
			if !yield(issue) {
				return
			}
		}
	}
}

// String returns a minimal multi-line representation suitable for quick
// debugging and for the log line ontoctl emits after a graph operation that
// left diagnostics behind. String returns "OK" when OK() is true, regardless
// of warnings or hints.
func (r Result) String() string {
	if r.OK() {
		return "OK"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s)", r.fatalCount+r.errorCount)
	if r.warningCount > 0 {
		fmt.Fprintf(&sb, ", %d warning(s)", r.warningCount)
	}
	if r.limitReached {
		fmt.Fprintf(&sb, " [limit reached, %d dropped]", r.droppedCount)
	}
	sb.WriteString("\n")

	for _, issue := range r.issues {
		if issue.Severity().IsFailure() {
			fmt.Fprintf(&sb, "  %s: %s\n", issue.Code(), issue.Message())
		}
	}

	return sb.String()
}
