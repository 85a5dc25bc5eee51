package ontology

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/internal/genid"
	"github.com/ontoverse/ontoforge/internal/trace"
)

// Graph is the arena: every entity, relation, generalization,
// generalization set, diagram, and view lives in a flat table keyed by its
// stable string id. References between elements are ids, not pointers.
//
// Graph is a single-threaded, synchronous object per spec §5: one request
// handler owns one Graph for the duration of a call, and it is never
// shared across concurrent requests. The mu field is never locked by any
// Graph method; it neither supports nor detects concurrent use.
type Graph struct {
	cfg    *config.Config
	logger *slog.Logger
	mu     sync.Mutex

	entities  map[string]*Entity
	relations map[string]*AbcRelation
	sets      map[string]*GeneralizationSet
	diagrams  map[string]*Diagram
	views     map[string]*View

	// pendingDeletes holds entity ids queued by _abstract_generalization for
	// deferred removal, drained by clearAbstractedEntities at the end of
	// each fold (spec §4.9, §4.7 step 3).
	pendingDeletes map[string]bool

	collector *diag.Collector
}

// New creates an empty Graph bound to the given process-wide configuration.
// Panics if cfg is nil (programmer error): there is no meaningful default
// configuration for display colors, symbols, or abstraction toggles.
func New(cfg *config.Config, logger *slog.Logger) *Graph {
	if cfg == nil {
		panic("ontology.New: nil config")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Graph{
		cfg:       cfg,
		logger:    logger,
		entities:  make(map[string]*Entity),
		relations: make(map[string]*AbcRelation),
		sets:      make(map[string]*GeneralizationSet),
		diagrams:       make(map[string]*Diagram),
		views:          make(map[string]*View),
		pendingDeletes: make(map[string]bool),
		collector:      diag.NewCollector(0),
	}
}

// queueDelete marks id for removal once the current fold finishes
// abstracting hierarchy (spec §4.9's "queue specific for deletion").
func (g *Graph) queueDelete(id string) { g.pendingDeletes[id] = true }

// clearAbstractedEntities deletes every entity queued by queueDelete and
// resets the queue.
func (g *Graph) clearAbstractedEntities(ctx context.Context) {
	for id := range g.pendingDeletes {
		g.DeleteEntity(ctx, id)
	}
	g.pendingDeletes = make(map[string]bool)
}

// Config returns the graph's process-wide configuration.
func (g *Graph) Config() *config.Config { return g.cfg }

// Logger returns the graph's bound logger, for callers outside this
// package that need to open their own trace spans at the same operation
// boundary (e.g. ops, adapter/display).
func (g *Graph) Logger() *slog.Logger { return g.logger }

// WithConfig swaps g's configuration for cfg and returns a restore func
// putting the original back. Used by call sites that need a one-off
// override of abstraction toggles (long_names, mult_relations,
// keep_relators) for a single operation without mutating the
// process-wide configuration every other call still reads (spec §6 CORE
// API: these are per-call optional parameters on fold/abstract, not
// startup configuration).
func (g *Graph) WithConfig(cfg *config.Config) (restore func()) {
	prev := g.cfg
	g.cfg = cfg
	return func() { g.cfg = prev }
}

// Diagnostics returns the accumulated recovered diagnostics (Recursion and
// InvariantViolation issues logged during the graph's lifetime).
func (g *Graph) Diagnostics() diag.Result { return g.collector.Result() }

func (g *Graph) report(issue diag.Issue) { g.collector.Collect(issue) }

// ReportDanglingView records a recovered warning for a view whose
// modelElement id names nothing known to the graph (spec §4.1: such views
// are discarded rather than attached).
func (g *Graph) ReportDanglingView(viewID, elementID string) {
	g.report(diag.NewIssue(diag.Warning, diag.E_DANGLING_VIEW, "view references unknown element").
		WithRef(diag.ElementRef{Kind: "view", ID: viewID}).
		WithDetail("elementID", elementID).
		Build())
}

// ReportInvertedView records a recovered warning for a relation view whose
// source/target were loaded backwards and have been corrected in place
// (spec §4.1's inverted-view repair pass).
func (g *Graph) ReportInvertedView(relationID, stereotypeName string) {
	g.report(diag.NewIssue(diag.Warning, diag.E_INVERTED_EDGE, "relation view direction repaired").
		WithRef(diag.ElementRef{Kind: "relation", ID: relationID}).
		WithDetail("stereotype", stereotypeName).
		Build())
}

// Entity looks up an entity by id.
func (g *Graph) Entity(id string) (*Entity, bool) {
	e, ok := g.entities[id]
	return e, ok
}

// Relation looks up a relation or generalization edge by id.
func (g *Graph) Relation(id string) (*AbcRelation, bool) {
	r, ok := g.relations[id]
	return r, ok
}

// GeneralizationSet looks up a generalization set by id.
func (g *Graph) GeneralizationSet(id string) (*GeneralizationSet, bool) {
	s, ok := g.sets[id]
	return s, ok
}

// Diagram looks up a diagram by id.
func (g *Graph) Diagram(id string) (*Diagram, bool) {
	d, ok := g.diagrams[id]
	return d, ok
}

// View looks up a view by id.
func (g *Graph) View(id string) (*View, bool) {
	v, ok := g.views[id]
	return v, ok
}

// Entities returns a snapshot of every entity id currently in the arena.
func (g *Graph) Entities() []string {
	ids := make([]string, 0, len(g.entities))
	for id := range g.entities {
		ids = append(ids, id)
	}
	return ids
}

// Relations returns a snapshot of every relation/generalization id.
func (g *Graph) Relations() []string {
	ids := make([]string, 0, len(g.relations))
	for id := range g.relations {
		ids = append(ids, id)
	}
	return ids
}

// GeneralizationSets returns a snapshot of every generalization set id.
func (g *Graph) GeneralizationSets() []string {
	ids := make([]string, 0, len(g.sets))
	for id := range g.sets {
		ids = append(ids, id)
	}
	return ids
}

// Diagrams returns a snapshot of every diagram id.
func (g *Graph) Diagrams() []string {
	ids := make([]string, 0, len(g.diagrams))
	for id := range g.diagrams {
		ids = append(ids, id)
	}
	return ids
}

// PutEntity inserts e into the arena, keyed by its id, replacing any
// prototype previously registered under the same id in place (so existing
// incidence-index references to the prototype stay valid).
func (g *Graph) PutEntity(e *Entity) {
	if existing, ok := g.entities[e.ID]; ok && existing.Prototype {
		existing.UpdateFromPrototype(e)
		return
	}
	g.entities[e.ID] = e
}

// PrototypeEntity returns the entity for id, creating an empty prototype if
// it does not yet exist (spec §3 Lifecycle). Used when a relation
// references an entity id not yet encountered during deserialization.
func (g *Graph) PrototypeEntity(id string) *Entity {
	if e, ok := g.entities[id]; ok {
		return e
	}
	e := newEntity(id)
	e.Prototype = true
	g.entities[id] = e
	return e
}

// NewRelationID generates a fresh relation/generalization id using the
// configured id length.
func (g *Graph) NewRelationID() string { return genid.Element(g.cfg.IDLength()) }

// NewEntityID generates a fresh entity id using the configured id length.
func (g *Graph) NewEntityID() string { return genid.Element(g.cfg.IDLength()) }

// PutRelation inserts r into the arena and indexes it on both endpoints'
// incidence tables, establishing invariant 1 (spec §3): r.id appears in
// r.From's outgoing[kind] and r.To's incoming[kind].
func (g *Graph) PutRelation(r *AbcRelation) {
	g.relations[r.ID] = r
	if from, ok := g.entities[r.From]; ok {
		from.addIncident(outgoing, r.FinalType, r.ID)
	}
	if to, ok := g.entities[r.To]; ok {
		to.addIncident(incoming, r.FinalType, r.ID)
	}
}

// PutGeneralizationSet registers s and stamps SetID on each of its member
// generalizations.
func (g *Graph) PutGeneralizationSet(s *GeneralizationSet) {
	g.sets[s.ID] = s
	for _, gid := range s.GeneralizationIDs {
		if r, ok := g.relations[gid]; ok {
			r.SetID = s.ID
		}
	}
}

// PutDiagram registers an (initially empty) diagram.
func (g *Graph) PutDiagram(d *Diagram) { g.diagrams[d.ID] = d }

// PutView registers v, attaches it to its diagram, and appends it to its
// element's Views list.
func (g *Graph) PutView(v *View) {
	g.views[v.ID] = v
	if d, ok := g.diagrams[v.DiagramID]; ok {
		d.addView(v.ID)
	}
	if e, ok := g.entities[v.ElementID]; ok {
		e.Views = append(e.Views, v.ID)
		return
	}
	if r, ok := g.relations[v.ElementID]; ok {
		r.Views = append(r.Views, v.ID)
		return
	}
	if s, ok := g.sets[v.ElementID]; ok {
		s.Views = append(s.Views, v.ID)
	}
}

// deleteView removes a view from the arena, its diagram, and its element's
// Views list.
func (g *Graph) deleteView(viewID string) {
	v, ok := g.views[viewID]
	if !ok {
		return
	}
	delete(g.views, viewID)
	if d, ok := g.diagrams[v.DiagramID]; ok {
		d.removeView(viewID)
	}
	if e, ok := g.entities[v.ElementID]; ok {
		e.Views = removeString(e.Views, viewID)
		return
	}
	if r, ok := g.relations[v.ElementID]; ok {
		r.Views = removeString(r.Views, viewID)
		return
	}
	if s, ok := g.sets[v.ElementID]; ok {
		s.Views = removeString(s.Views, viewID)
	}
}

// DeleteEntity removes every relation incident to id (both directions, all
// kinds) and then the entity and its views (spec §4.5).
func (g *Graph) DeleteEntity(ctx context.Context, id string) {
	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.delete_entity")
	defer op.End(nil)

	e, ok := g.entities[id]
	if !ok {
		return
	}
	for _, kind := range AllFinalTypes() {
		for _, rid := range e.Incoming(kind) {
			g.DeleteRelation(ctx, rid)
		}
		for _, rid := range e.Outgoing(kind) {
			g.DeleteRelation(ctx, rid)
		}
	}
	for _, vid := range append([]string(nil), e.Views...) {
		g.deleteView(vid)
	}
	delete(g.entities, id)
}

// DeleteRelation removes r from both endpoints' incidence indices, deletes
// its views, and, if r is a generalization belonging to a set, removes it
// from that set — deleting the set if it degenerates to fewer than 2
// members (spec §3 invariant 3, §4.5).
func (g *Graph) DeleteRelation(ctx context.Context, id string) {
	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.delete_relation")
	defer op.End(nil)

	r, ok := g.relations[id]
	if !ok {
		return
	}
	if from, ok := g.entities[r.From]; ok {
		from.removeIncident(outgoing, r.FinalType, id)
	}
	if to, ok := g.entities[r.To]; ok {
		to.removeIncident(incoming, r.FinalType, id)
	}
	for _, vid := range append([]string(nil), r.Views...) {
		g.deleteView(vid)
	}
	if r.SetID != "" {
		if s, ok := g.sets[r.SetID]; ok {
			if s.removeGeneralization(id) {
				g.deleteGeneralizationSet(s.ID)
			} else {
				s.IsComplete = false
			}
		}
	}
	delete(g.relations, id)
}

func (g *Graph) deleteGeneralizationSet(id string) {
	s, ok := g.sets[id]
	if !ok {
		return
	}
	for _, gid := range s.GeneralizationIDs {
		if r, ok := g.relations[gid]; ok {
			r.SetID = ""
		}
	}
	for _, vid := range append([]string(nil), s.Views...) {
		g.deleteView(vid)
	}
	delete(g.sets, id)
}

func removeString(ss []string, target string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
