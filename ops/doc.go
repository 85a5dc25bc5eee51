// Package ops is the CORE API (spec.md §6 "Operations (CORE API)"): a
// thin dispatcher over the already-built ontology.Graph algorithms that
// normalizes their error-handling conventions into one contract per
// spec.md §7 — BadInput and NotFound are fatal and returned as an *ops.Fault,
// Recursion and InvariantViolation are recovered locally and surfaced only
// through the graph's accumulated diag.Result.
//
// Every operation takes a freshly materialized graph plus its parameters
// and mutates it in place; none of them serialize or deserialize, which is
// left to adapter/canonical and adapter/display on either side of a call.
package ops
