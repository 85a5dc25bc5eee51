package ontology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/stereotype"
)

func TestAbstractAspectMediationLinksSourcesPairwise(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "marriage", "Marriage", stereotype.Relator)
	p1 := addEntity(g, "p1", "PersonA", stereotype.Kind)
	p2 := addEntity(g, "p2", "PersonB", stereotype.Kind)

	g.PutDiagram(newDiagram("d1"))
	g.PutView(&View{ID: "v1", DiagramID: "d1", ElementID: "p1", Kind: EntityView})
	g.PutView(&View{ID: "v2", DiagramID: "d1", ElementID: "p2", Kind: EntityView})

	addRelation(g, "m1", "marriage", "p1", RelationKind, stereotype.Mediation)
	addRelation(g, "m2", "marriage", "p2", RelationKind, stereotype.Mediation)

	g.AbstractAspect(context.Background(), "marriage")

	_, ok := g.Entity("marriage")
	assert.False(t, ok)

	var linked bool
	for _, rid := range p1.Outgoing(RelationKind) {
		if r, ok := g.Relation(rid); ok && r.To == p2.ID && r.Name == "Marriage" {
			linked = true
		}
	}
	require.True(t, linked, "abstracting a mediation relator should link its sources pairwise")
}

func TestAbstractAspectKeepRelatorsSkipsHighDegreeRelator(t *testing.T) {
	g := New(config.New(config.WithKeepRelators(true), config.WithMinRelatorsDegree(2)), nil)
	addEntity(g, "marriage", "Marriage", stereotype.Relator)
	addEntity(g, "p1", "PersonA", stereotype.Kind)
	addEntity(g, "p2", "PersonB", stereotype.Kind)
	addRelation(g, "m1", "marriage", "p1", RelationKind, stereotype.Mediation)
	addRelation(g, "m2", "marriage", "p2", RelationKind, stereotype.Mediation)

	g.AbstractAspect(context.Background(), "marriage")

	_, kept := g.Entity("marriage")
	assert.True(t, kept, "a relator at or above MinRelatorsDegree stays when keepRelators is set")
}
