package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbstractUnknownAbsTypeIsBadInputFault(t *testing.T) {
	g := loadGraph(t, []any{
		classDict("whole", "Car", "kind"),
		classDict("part", "Engine", "kind"),
		partOfDict("po1", "part", "whole", "SHARED"),
	})

	err := Abstract(context.Background(), g, []string{"parthoods", AbsHierarchy}, nil, nil, nil)

	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "E_UNKNOWN_ABS_TYPE", fault.Code.String())

	_, ok := g.Entity("part")
	assert.True(t, ok, "no pass should run when any abs_type is invalid")
}

func TestAbstractDispatchesEachTypeInOrder(t *testing.T) {
	g := loadGraph(t, []any{
		classDict("whole", "Car", "kind"),
		classDict("part", "Engine", "kind"),
		partOfDict("po1", "part", "whole", "SHARED"),
	})

	err := Abstract(context.Background(), g, []string{AbsParthood}, nil, nil, nil)
	require.NoError(t, err)
}

func TestAbstractRestoresConfigAfterCall(t *testing.T) {
	g := loadGraph(t, []any{classDict("c1", "Animal", "kind")})
	original := g.Config()

	err := Abstract(context.Background(), g, []string{AbsAspects}, boolPtr(true), boolPtr(true), boolPtr(true))
	require.NoError(t, err)

	assert.Same(t, original, g.Config())
}
