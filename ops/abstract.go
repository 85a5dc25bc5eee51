package ops

import (
	"context"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/ontology"
)

// Abstraction type tags accepted by Abstract's absTypes parameter (spec.md
// §6 CORE API "abstract": "abs_type⊆{parthood,hierarchy,aspects}").
const (
	AbsParthood  = "parthood"
	AbsHierarchy = "hierarchy"
	AbsAspects   = "aspects"
)

// Abstract applies one or more graph-wide abstraction passes, in the order
// given, to the graph (spec.md §4.8-§4.10, §6 CORE API "abstract"). Every
// absType is validated against the closed set before any pass runs — one
// bad entry fails the whole call with no partial mutation (spec.md §7:
// "No partial graph is ever returned after a fatal failure"), mirroring
// main.py's "/abstract" endpoint validating data.abs_type in full before
// dispatching any of them.
//
// longNames and multRelations override the graph's abstraction toggles
// for every pass in this call; keepRelators additionally gates the
// aspects pass. Each is left at the graph's existing configuration when
// nil.
func Abstract(ctx context.Context, g *ontology.Graph, absTypes []string, longNames, multRelations, keepRelators *bool) error {
	for _, t := range absTypes {
		switch t {
		case AbsParthood, AbsHierarchy, AbsAspects:
		default:
			return badInput(diag.E_UNKNOWN_ABS_TYPE, "abstract: unknown abs_type %q", t)
		}
	}

	var opts []config.Option
	if longNames != nil {
		opts = append(opts, config.WithLongNames(*longNames))
	}
	if multRelations != nil {
		opts = append(opts, config.WithMultRelations(*multRelations))
	}
	if keepRelators != nil {
		opts = append(opts, config.WithKeepRelators(*keepRelators))
	}
	if len(opts) > 0 {
		restore := g.WithConfig(g.Config().With(opts...))
		defer restore()
	}

	for _, t := range absTypes {
		switch t {
		case AbsParthood:
			g.AbstractParthoods(ctx)
		case AbsHierarchy:
			g.AbstractHierarchies(ctx)
		case AbsAspects:
			g.AbstractAspects(ctx)
		}
	}
	return nil
}
