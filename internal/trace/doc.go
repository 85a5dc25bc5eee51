// Package trace provides operation-boundary logging for ontoforge's graph
// transformations.
//
// This package is an internal utility for developer observability. It is
// distinct from [diag.Result] (user-facing content issues accumulated by a
// graph operation) and error returns (system failures: a missing file, a
// malformed argument).
//
// # Internal Package
//
// This package is internal to the ontoforge module and is not importable by
// external consumers per Go's internal/ package semantics. Every CORE API
// operation in ontology/ wraps its body in a [Begin]/[Op.End] pair, and
// adapter/canonical and adapter/display do the same around load/save/render.
//
// # Design Principles
//
//   - Near-zero cost when disabled: [Begin] returns nil when the logger is
//     nil or the level is below Debug, so the common ontoctl run (warn-level
//     logging) pays only a nil check at every traced call.
//   - Stdlib only: uses [log/slog], preserving dependency hygiene.
//   - Logger injection: loggers are threaded through Graph/Model construction;
//     a Graph built with a nil logger falls back to [slog.Default].
//
// # Separation of Concerns
//
//   - [diag.Result]: user-facing content issues (a dangling view repaired, a
//     cluster target that wasn't a relator) — structured diagnostics with
//     error codes.
//   - error returns: system failures (file I/O, a missing entity id).
//   - trace logging: developer observability (which operation ran, how long
//     it took, whether it errored). This package.
//
// # Op Runner
//
// The [Op] type provides operation boundary logging with automatic duration
// measurement and cancellation handling. [Begin] returns nil when logging is
// disabled; all [Op] methods are safe to call on nil.
//
//	func (g *Graph) Fold(ctx context.Context, id string, partOfOnly bool) {
//	    op := trace.Begin(ctx, g.logger, "ontoforge.ontology.fold")
//	    defer op.End(nil)
//	    ...
//	}
//
// The Op runner automatically logs "op", "request_id" (if present via
// [WithRequestID]), "elapsed_ms", "duration", "ctx_err", and "error".
//
// # Operation Names
//
// Operation names follow the format ontoforge.<package>.<operation>:
// ontoforge.ontology.fold, ontoforge.ontology.expand,
// ontoforge.canonical.load, ontoforge.display.render. These are
// implementation details and may change without notice.
package trace
