package ontology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/stereotype"
)

func TestFoldCollapsesNestedParthood(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "car", "Car", stereotype.Kind)
	addEntity(g, "engine", "Engine", stereotype.Relator)
	addEntity(g, "cylinder", "Cylinder", stereotype.Relator)
	addRelation(g, "r1", "engine", "car", PartOf, stereotype.ComponentOf)
	addRelation(g, "r2", "cylinder", "engine", PartOf, stereotype.ComponentOf)

	g.Fold(context.Background(), "car", false)

	_, ok := g.Entity("engine")
	assert.False(t, ok)
	_, ok = g.Entity("cylinder")
	assert.False(t, ok)

	car, ok := g.Entity("car")
	require.True(t, ok)
	assert.Contains(t, car.Attributes, "Engine")
}

func TestFoldRecursionGuardStopsNameCycle(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "Loop", stereotype.Relator)
	addEntity(g, "b", "Loop", stereotype.Relator)
	addRelation(g, "r1", "a", "b", PartOf, stereotype.ComponentOf)
	addRelation(g, "r2", "b", "a", PartOf, stereotype.ComponentOf)

	assert.NotPanics(t, func() {
		g.Fold(context.Background(), "a", false)
	})
}
