package display

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/adapter/canonical"
	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/ontology"
)

func classRef(id string) map[string]any {
	return map[string]any{"id": id, "type": "Class"}
}

func endpointDict(name, cardinality, aggregation string, propType map[string]any) map[string]any {
	return map[string]any{
		"id": "ep-" + name, "name": name, "description": nil, "type": "Property",
		"propertyAssignments": nil, "stereotype": nil, "isDerived": false,
		"isReadOnly": false, "isOrdered": false, "cardinality": cardinality,
		"propertyType": propType, "subsettedProperties": nil, "redefinedProperties": nil,
		"aggregationKind": aggregation,
	}
}

func classDict(id, name, stereo string, restrictedTo ...string) map[string]any {
	rt := make([]any, 0, len(restrictedTo))
	for _, s := range restrictedTo {
		rt = append(rt, s)
	}
	return map[string]any{
		"id": id, "name": name, "type": "Class", "description": "",
		"stereotype": stereo, "isAbstract": false, "isDerived": false,
		"properties": []any{}, "isExtensional": false, "isPowertype": false,
		"order": "", "literals": []any{}, "restrictedTo": rt,
	}
}

func classView(id, elementID string, x, y, w, h int) map[string]any {
	return map[string]any{
		"id": id, "type": "ClassView",
		"modelElement": classRef(elementID),
		"shape":        map[string]any{"x": x, "y": y, "width": w, "height": h},
	}
}

func loadGraph(t *testing.T, project map[string]any) (*ontology.Graph, *canonical.Model) {
	t.Helper()
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, model, _, err := canonical.Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)
	return g, model
}

func baseProject(contents []any, diagrams []any) map[string]any {
	return map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": "Package", "description": "",
			"propertyAssignments": nil,
			"contents":            contents,
		},
		"diagrams": diagrams,
	}
}

func TestRenderProjectsNodesAndLinks(t *testing.T) {
	project := baseProject([]any{
		classDict("person", "Person", "kind"),
		classDict("org", "Organization", "kind"),
		map[string]any{
			"id": "r1", "name": "worksFor", "type": "Relation", "description": "",
			"stereotype": "material",
			"properties": []any{
				endpointDict("", "1..1", "NONE", classRef("person")),
				endpointDict("", "0..*", "NONE", classRef("org")),
			},
		},
	}, []any{
		map[string]any{
			"id": "d1", "name": "Main", "type": "Diagram", "owner": nil,
			"contents": []any{
				classView("v-person", "person", 10, 20, 120, 60),
				classView("v-org", "org", 200, 400, 120, 60),
			},
		},
	})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 0, 0)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Graph.Nodes, 2)
	require.Len(t, doc.Graph.Links, 1)
	assert.Equal(t, "worksFor", doc.Graph.Links[0].Name)
	assert.Equal(t, "person", doc.Graph.Links[0].Source)
	assert.Equal(t, "org", doc.Graph.Links[0].Target)
	assert.NotEmpty(t, doc.Origin)
}

func TestRenderAssignsKindColorAndSymbol(t *testing.T) {
	project := baseProject([]any{
		classDict("person", "Person", "kind"),
	}, []any{})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 0, 0)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Graph.Nodes, 1)
	cfg := config.New()
	assert.Equal(t, cfg.Colors().Object, doc.Graph.Nodes[0].Color)
	assert.Equal(t, cfg.Symbols().Basic, doc.Graph.Nodes[0].SymbolType)
}

func TestRenderShadesRoleAsObjectVariant(t *testing.T) {
	project := baseProject([]any{
		classDict("student", "Student", "role"),
	}, []any{})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 0, 0)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	cfg := config.New()
	require.Len(t, doc.Graph.Nodes, 1)
	assert.NotEqual(t, cfg.Colors().Object, doc.Graph.Nodes[0].Color)
	assert.Equal(t, colorVariant(cfg.Colors().Object, cfg.ColorVariation()), doc.Graph.Nodes[0].Color)
}

func TestRenderRestrictedToPicksBaseColorForShadedVariant(t *testing.T) {
	project := baseProject([]any{
		classDict("patient", "Patient", "role", "functional-complex"),
	}, []any{})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 0, 0)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	cfg := config.New()
	require.Len(t, doc.Graph.Nodes, 1)
	assert.Equal(t, colorVariant(cfg.Colors().Object, cfg.ColorVariation()), doc.Graph.Nodes[0].Color)
}

func TestRenderRescalesNodesToCanvas(t *testing.T) {
	project := baseProject([]any{
		classDict("a", "A", "kind"),
		classDict("b", "B", "kind"),
	}, []any{
		map[string]any{
			"id": "d1", "name": "Main", "type": "Diagram", "owner": nil,
			"contents": []any{
				classView("v-a", "a", 0, 0, 120, 60),
				classView("v-b", "b", 1000, 2000, 120, 60),
			},
		},
	})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 500, 500)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, n := range doc.Graph.Nodes {
		assert.LessOrEqual(t, n.X, 500)
		assert.LessOrEqual(t, n.Y, 500)
	}
}

func TestRenderCoalescesParallelLinks(t *testing.T) {
	project := baseProject([]any{
		classDict("a", "A", "kind"),
		classDict("b", "B", "kind"),
		map[string]any{
			"id": "r1", "name": "likes", "type": "Relation", "description": "",
			"stereotype": "material",
			"properties": []any{
				endpointDict("", "1..1", "NONE", classRef("a")),
				endpointDict("", "0..*", "NONE", classRef("b")),
			},
		},
		map[string]any{
			"id": "r2", "name": "knows", "type": "Relation", "description": "",
			"stereotype": "material",
			"properties": []any{
				endpointDict("", "1..1", "NONE", classRef("b")),
				endpointDict("", "0..*", "NONE", classRef("a")),
			},
		},
	}, []any{})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 0, 0)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Graph.Links, 2)
	merged := doc.Graph.Links[0]
	assert.Contains(t, merged.Name, "likes")
	assert.Contains(t, merged.Name, "knows")
	assert.Equal(t, "", doc.Graph.Links[1].Name)
}

func TestRenderBuildsGeneralizationSetConstraint(t *testing.T) {
	project := baseProject([]any{
		classDict("animal", "Animal", "kind"),
		classDict("dog", "Dog", "subkind"),
		classDict("cat", "Cat", "subkind"),
		map[string]any{
			"id": "g1", "name": nil, "type": "Generalization", "description": nil,
			"propertyAssignments": nil,
			"general":             classRef("animal"),
			"specific":            classRef("dog"),
		},
		map[string]any{
			"id": "g2", "name": nil, "type": "Generalization", "description": nil,
			"propertyAssignments": nil,
			"general":             classRef("animal"),
			"specific":            classRef("cat"),
		},
		map[string]any{
			"id": "gs1", "name": "GS", "type": "GeneralizationSet", "description": "",
			"propertyAssignments": nil,
			"isDisjoint":          true,
			"isComplete":          false,
			"categorizer":         nil,
			"generalizations":     []any{classRef2("g1", "Generalization"), classRef2("g2", "Generalization")},
		},
	}, []any{})
	g, model := loadGraph(t, project)

	data, err := Render(context.Background(), g, model, 0, 0)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Constraints, 1)
	assert.Equal(t, "GeneralizationSet (not complete, disjoint): {Dog->Animal, Cat->Animal}", doc.Constraints[0])
}

func classRef2(id, typ string) map[string]any {
	return map[string]any{"id": id, "type": typ}
}
