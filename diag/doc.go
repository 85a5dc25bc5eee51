// Package diag provides structured diagnostics for ontoforge's graph
// transformation pipeline.
//
// This package sits at the foundation tier: the single diagnostic
// infrastructure used across canonical/display deserialization and every
// core graph operation (fold, abstract_parthood, abstract_aspect,
// abstract_hierarchy, focus, cluster, expand, delete).
//
// # Design Principles
//
//   - Structured data, string-last presentation: the graph element an issue
//     concerns is stored as data ([ElementRef]), never embedded in message
//     strings.
//   - Immutable results: [Result] stores issues in unexported fields and
//     exposes accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that tools
//     can match on, even when message text changes. The Code type uses an
//     unexported struct to enforce a closed set of valid codes.
//   - Deterministic ordering: [Collector.Result] sorts issues by element
//     reference and code to ensure stable output across runs.
//   - Builder pattern: [IssueBuilder] is the only valid construction path
//     for [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// Every ontoforge public entry point follows a consistent pattern:
//
//   - err != nil: catastrophic failure (BadInput, NotFound, External)
//   - err == nil and !result.OK(): never happens for a successful transform;
//     Recursion and InvariantViolation issues are collected as warnings, not
//     errors, because they are recovered locally rather than aborting the
//     operation
//   - err == nil and result.OK(): success, result may still carry warnings
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe:
//
//   - [Fatal]: unrecoverable condition or collection limit reached sentinel
//   - [Error]: operation failed but collection can continue
//   - [Warning], [Info], [Hint]: non-blocking diagnostics (repaired
//     invariant violations, recursion guards that tripped and were handled)
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Warning, diag.E_INVERTED_EDGE, "relation view direction repaired").
//	    WithRef(diag.ElementRef{Kind: "relation", ID: relID}).
//	    WithHint("check the originating diagram for a swapped edge").
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues during an operation:
//
//	collector := diag.NewCollector(diag.NoLimit)
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // handle failures
//	}
//
// [Collector] is thread-safe and provides O(1) severity queries via
// [Collector.OK], [Collector.HasErrors], and [Collector.HasFatal].
//
// # Package Dependencies
//
// diag imports only the standard library. It must not import ontology,
// adapter, catalog, or ops.
package diag
