package ontology

import (
	"context"
	"fmt"

	"github.com/ontoverse/ontoforge/internal/trace"
)

// Focus keeps exactly the BFS ball of radius hop around node (following
// both incoming and outgoing edges of any kind) and deletes every other
// entity. Fails if node does not name an entity (spec §4.3).
func (g *Graph) Focus(ctx context.Context, nodeID string, hop int) error {
	if _, ok := g.entities[nodeID]; !ok {
		return fmt.Errorf("ontology: focus: entity %q not found", nodeID)
	}

	op := trace.Begin(ctx, g.logger, "ontoforge.ontology.focus")
	defer op.End(nil)

	keep := map[string]bool{nodeID: true}
	frontier := []string{nodeID}
	for layer := 0; layer < hop; layer++ {
		var next []string
		for _, id := range frontier {
			e, ok := g.entities[id]
			if !ok {
				continue
			}
			for _, kind := range AllFinalTypes() {
				for _, rid := range e.Incoming(kind) {
					if r, ok := g.relations[rid]; ok {
						next = append(next, r.From)
					}
				}
				for _, rid := range e.Outgoing(kind) {
					if r, ok := g.relations[rid]; ok {
						next = append(next, r.To)
					}
				}
			}
		}
		frontier = frontier[:0]
		for _, id := range next {
			if !keep[id] {
				keep[id] = true
				frontier = append(frontier, id)
			}
		}
	}

	for _, id := range g.Entities() {
		if !keep[id] {
			g.DeleteEntity(ctx, id)
		}
	}
	return nil
}
