package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/stereotype"
)

func TestMoveRelationDeepCopiesWhenNoParallelMatch(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addEntity(g, "c", "C", stereotype.Kind)
	r := addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)
	r.FromProp.Cardinality = "1"
	r.ToProp.Cardinality = "1"

	moved := g.moveRelation(true, r, "c", nil, nil)

	require.NotEqual(t, r.ID, moved.ID)
	assert.Equal(t, "c", moved.From)
	assert.Equal(t, "b", moved.To)
	assert.Equal(t, "0..1", moved.ToProp.Cardinality, "unmoved endpoint's lower bound relaxes to 0")

	c, _ := g.Entity("c")
	assert.Contains(t, c.Outgoing(RelationKind), moved.ID)
}

func TestMoveRelationMergesIntoExistingParallel(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addEntity(g, "c", "C", stereotype.Kind)

	existing := addRelation(g, "parallel", "c", "b", RelationKind, stereotype.Material)
	existing.Name = "owns"
	existing.ToProp.Cardinality = "1"

	r := addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)
	r.Name = "owns"
	r.ToProp.Cardinality = "0..5"

	moved := g.moveRelation(true, r, "c", nil, nil)

	assert.Equal(t, "parallel", moved.ID, "should merge into the pre-existing c->b relation")
	assert.Equal(t, "0..5", moved.ToProp.Cardinality, "cardinality broadens to span both")

	_, ok := g.Relation("r1")
	assert.True(t, ok, "moveRelation does not delete the original; caller is responsible")
}

func TestMergeIntoParallelAssignsBareNameWhenMatchUnnamed(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addEntity(g, "c", "C", stereotype.Kind)

	existing := addRelation(g, "parallel", "c", "b", RelationKind, stereotype.Material)

	r := addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)
	r.Name = "owns"

	moved := g.moveRelation(true, r, "c", nil, nil)

	assert.Equal(t, existing.ID, moved.ID)
	assert.Equal(t, "owns", moved.Name)
}

func TestMergeIntoParallelSkipsDuplicateNameFragment(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addEntity(g, "c", "C", stereotype.Kind)

	existing := addRelation(g, "parallel", "c", "b", RelationKind, stereotype.Material)
	existing.Name = "manages (owns)"

	r := addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)
	r.Name = "owns"

	moved := g.moveRelation(true, r, "c", nil, nil)

	assert.Equal(t, "manages (owns)", moved.Name, "repeated merge must not append a duplicate name fragment")
}

func TestMergeIntoParallelClearsCardinalityWhenEitherSideUnset(t *testing.T) {
	g := newTestGraph()
	addEntity(g, "a", "A", stereotype.Kind)
	addEntity(g, "b", "B", stereotype.Kind)
	addEntity(g, "c", "C", stereotype.Kind)

	existing := addRelation(g, "parallel", "c", "b", RelationKind, stereotype.Material)
	existing.Name = "owns"
	existing.ToProp.Cardinality = "1"

	r := addRelation(g, "r1", "a", "b", RelationKind, stereotype.Material)
	r.Name = "owns"
	r.ToProp.Cardinality = ""

	moved := g.moveRelation(true, r, "c", nil, nil)

	assert.Empty(t, moved.ToProp.Cardinality, "cardinality clears rather than retaining its prior value")
}
