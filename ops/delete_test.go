package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUnknownElementTypeIsBadInputFault(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	err := Delete(context.Background(), g, "c1", "diagram")

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_UNKNOWN_ELEMENT_TYPE", fault.Code.String())

	_, ok := g.Entity("c1")
	assert.True(t, ok, "invalid request must not mutate the graph")
}

func TestDeleteMissingNodeIsNotFoundFault(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	err := Delete(context.Background(), g, "missing", "node")

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_ENTITY_NOT_FOUND", fault.Code.String())
}

func TestDeleteMissingLinkIsNotFoundFault(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	err := Delete(context.Background(), g, "missing", "link")

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_RELATION_NOT_FOUND", fault.Code.String())
}

func TestDeleteNodeCascadesToIncidentRelations(t *testing.T) {
	g := loadGraph(t, []any{
		classDict("c1", "Animal", "kind"),
		classDict("c2", "Dog", "subkind"),
		relationDict("r1", "", "", classRef("c2"), classRef("c1")),
	})

	err := Delete(context.Background(), g, "c1", "node")
	require.NoError(t, err)

	_, ok := g.Entity("c1")
	assert.False(t, ok)
	_, ok = g.Relation("r1")
	assert.False(t, ok, "relation incident to deleted node must also be gone")
}

func TestDeleteLinkRemovesOnlyThatRelation(t *testing.T) {
	g := loadGraph(t, []any{
		classDict("c1", "Animal", "kind"),
		classDict("c2", "Dog", "subkind"),
		relationDict("r1", "", "", classRef("c2"), classRef("c1")),
	})

	err := Delete(context.Background(), g, "r1", "link")
	require.NoError(t, err)

	_, ok := g.Relation("r1")
	assert.False(t, ok)
	_, ok = g.Entity("c1")
	assert.True(t, ok)
	_, ok = g.Entity("c2")
	assert.True(t, ok)
}
