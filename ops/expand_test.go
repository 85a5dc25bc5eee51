package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/catalog"
)

func TestExpandMissingNodeIsNotFoundFault(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	h := catalog.Hierarchy{Nodes: map[catalog.Key][]catalog.Key{}}
	err := Expand(context.Background(), g, "missing", h, 0)

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_ENTITY_NOT_FOUND", fault.Code.String())
}

func TestExpandSynthesizesNewEntitiesFromHierarchy(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	parentKey := catalog.NewKey("Animal", mustStereotype(t, "kind"), "#")
	childKey := catalog.NewKey("Dog", mustStereotype(t, "subkind"), "#")

	h := catalog.Hierarchy{
		Nodes: map[catalog.Key][]catalog.Key{
			parentKey: {childKey},
		},
	}

	before := len(g.Entities())
	err := Expand(context.Background(), g, "c1", h, 0)
	require.NoError(t, err)

	assert.Greater(t, len(g.Entities()), before, "expand should synthesize the new Dog entity")
}

func TestExpandRespectsLimit(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	parentKey := catalog.NewKey("Animal", mustStereotype(t, "kind"), "#")
	child1 := catalog.NewKey("Dog", mustStereotype(t, "subkind"), "#")
	child2 := catalog.NewKey("Cat", mustStereotype(t, "subkind"), "#")

	h := catalog.Hierarchy{
		Nodes: map[catalog.Key][]catalog.Key{
			parentKey: {child1, child2},
		},
	}

	before := len(g.Entities())
	err := Expand(context.Background(), g, "c1", h, 1)
	require.NoError(t, err)

	assert.Equal(t, before+1, len(g.Entities()), "limit=1 should synthesize exactly one new entity")
}
