package ontology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/catalog"
	"github.com/ontoverse/ontoforge/stereotype"
)

func TestExpandReusesExistingEntityAndCreatesMissingOnes(t *testing.T) {
	g := newTestGraph()
	person := addEntity(g, "person", "Person", stereotype.Kind)
	g.PutDiagram(newDiagram("d1"))
	g.PutView(&View{ID: "vp", DiagramID: "d1", ElementID: "person", Kind: EntityView, X: 100, Y: 100})

	personKey := catalog.NewKey("Person", stereotype.Kind, g.cfg.IndexDelimiter())
	studentKey := catalog.NewKey("Student", stereotype.Role, g.cfg.IndexDelimiter())

	h := catalog.Hierarchy{
		Nodes: map[catalog.Key][]catalog.Key{
			personKey: {studentKey},
		},
	}

	err := g.Expand(context.Background(), "person", h, 0)
	require.NoError(t, err)

	var student *Entity
	for _, id := range g.Entities() {
		e, _ := g.Entity(id)
		if e.Name == "Student" && e.Stereotype == stereotype.Role {
			student = e
		}
	}
	require.NotNil(t, student, "expand should synthesize the missing Student entity")
	require.NotEqual(t, person.ID, student.ID)

	found := false
	for _, rid := range student.Outgoing(Generalization) {
		if r, ok := g.Relation(rid); ok && r.To == person.ID {
			found = true
		}
	}
	assert.True(t, found, "expand should synthesize a Generalization from Student to Person")
}

func TestExpandNotFoundFails(t *testing.T) {
	g := newTestGraph()
	err := g.Expand(context.Background(), "missing", catalog.Hierarchy{}, 0)
	assert.Error(t, err)
}
