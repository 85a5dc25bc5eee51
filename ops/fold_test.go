package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestFoldMissingNodeIsNotFoundFault(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Engine", "component")})

	err := Fold(context.Background(), g, "missing", nil, nil)

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_ENTITY_NOT_FOUND", fault.Code.String())
}

func TestFoldCollapsesPartIntoWhole(t *testing.T) {
	g := loadGraph(t, []any{
		classDict("whole", "Car", "kind"),
		classDict("part", "Engine", "kind"),
		partOfDict("po1", "part", "whole", "SHARED"),
	})

	err := Fold(context.Background(), g, "whole", nil, nil)
	require.NoError(t, err)

	_, ok := g.Entity("whole")
	assert.True(t, ok)
}

func TestFoldRestoresConfigAfterPerCallOverride(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Engine", "kind")})
	original := g.Config()

	err := Fold(context.Background(), g, "c1", boolPtr(true), boolPtr(true))
	require.NoError(t, err)

	assert.Same(t, original, g.Config(), "Fold must restore the graph's original configuration after the call")
}
