package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusNotFoundIsFault(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})

	err := Focus(context.Background(), g, "missing", 1)

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_ENTITY_NOT_FOUND", fault.Code.String())
}

func TestFocusKeepsBallAndDiscardsRest(t *testing.T) {
	g := loadGraph(t, []any{
		classDict("c1", "Animal", "kind"),
		classDict("c2", "Dog", "subkind"),
		classDict("c3", "Unrelated", "kind"),
		relationDict("r1", "", "", classRef("c2"), classRef("c1")),
	})

	err := Focus(context.Background(), g, "c1", 1)
	require.NoError(t, err)

	_, ok := g.Entity("c1")
	assert.True(t, ok)
	_, ok = g.Entity("c3")
	assert.False(t, ok, "entity outside the hop radius should be discarded")
}
