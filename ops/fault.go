package ops

import (
	"fmt"

	"github.com/ontoverse/ontoforge/diag"
)

// Fault is a fatal CORE API failure: BadInput or NotFound per spec.md §7.
// Unlike Recursion and InvariantViolation, which are recovered locally and
// only ever show up in a graph's diag.Result, a Fault halts the current
// operation outright and no graph mutation past the failing point should
// be trusted.
type Fault struct {
	Code    diag.Code
	Message string
}

func (f *Fault) Error() string { return f.Message }

// badInput builds a Fault in diag's CategoryBadInput.
func badInput(code diag.Code, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}

// notFound builds a Fault in diag's CategoryNotFound.
func notFound(code diag.Code, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}
