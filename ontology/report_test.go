package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/stereotype"
)

func TestStatsCountsRelationsByFinalType(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addEntity(g, "c", "C", stereotype.Subkind)
	addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)
	addRelation(g, "r2", "b", "a", PartOf, stereotype.ComponentOf)
	addRelation(g, "r3", "c", "a", Generalization, stereotype.Relation{})

	stats := g.Stats()
	assert.Equal(t, 3, stats.Entities)
	assert.Equal(t, 3, stats.Relations)
	assert.Equal(t, 1, stats.PartOfs)
	assert.Equal(t, 1, stats.Generalizations)
}

func TestStringIncludesEntitiesAndEdges(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)

	out := g.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "material")
}

func TestStringIncludesGeneralizationSets(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "animal", "Animal", stereotype.Kind)
	addEntity(g, "dog", "Dog", stereotype.Subkind)
	addEntity(g, "cat", "Cat", stereotype.Subkind)
	addRelation(g, "g1", "dog", "animal", Generalization, stereotype.Relation{})
	addRelation(g, "g2", "cat", "animal", Generalization, stereotype.Relation{})
	g.sets["gs1"] = &GeneralizationSet{
		ID: "gs1", Name: "GS", GeneralizationIDs: []string{"g1", "g2"},
		IsComplete: true, IsDisjoint: true,
	}

	out := g.String()
	assert.Contains(t, out, "Generalization sets:")
	assert.Contains(t, out, "GeneralizationSet {complete, disjoint}: g1, g2")
}

func TestIndexReturnsOneKeyPerEntity(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "Animal Kingdom", stereotype.Kind)
	addEntity(g, "b", "Dog", stereotype.Subkind)

	keys := g.Index(".")
	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.NotEmpty(t, k)
	}
}

func TestNodeIndexMatchesIndexEntry(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "Animal Kingdom", stereotype.Kind)

	key, ok := g.NodeIndex("a", ".")
	require.True(t, ok)
	assert.Equal(t, "animalkingdom.kind", string(key))

	_, ok = g.NodeIndex("missing", ".")
	assert.False(t, ok)
}
