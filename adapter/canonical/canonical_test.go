package canonical

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/diag"
	"github.com/ontoverse/ontoforge/ontology"
	"github.com/ontoverse/ontoforge/stereotype"
)

func classRef(id string) map[string]any {
	return map[string]any{"id": id, "type": typeClass}
}

func endpointDict(name, cardinality, aggregation string, propType map[string]any) map[string]any {
	return map[string]any{
		"id": "ep-" + name, "name": name, "description": nil, "type": typeProperty,
		"propertyAssignments": nil, "stereotype": nil, "isDerived": false,
		"isReadOnly": false, "isOrdered": false, "cardinality": cardinality,
		"propertyType": propType, "subsettedProperties": nil, "redefinedProperties": nil,
		"aggregationKind": aggregation,
	}
}

func classDict(id, name, stereo string) map[string]any {
	return map[string]any{
		"id": id, "name": name, "type": typeClass, "description": "",
		"stereotype": stereo, "isAbstract": false, "isDerived": false,
		"properties": []any{}, "isExtensional": false, "isPowertype": false,
		"order": "", "literals": []any{}, "restrictedTo": []any{},
	}
}

func TestLoadBasicModel(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				classDict("person", "Person", "kind"),
				classDict("org", "Organization", "kind"),
				map[string]any{
					"id": "r1", "name": "worksFor", "type": typeRelation, "description": "",
					"stereotype": "material",
					"properties": []any{
						endpointDict("", "1..1", "NONE", classRef("person")),
						endpointDict("", "0..*", "NONE", classRef("org")),
					},
				},
			},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, model, result, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.NotNil(t, model)
	assert.Equal(t, 0, result.Len())

	person, ok := g.Entity("person")
	require.True(t, ok)
	assert.Equal(t, stereotype.Kind, person.Stereotype)

	r, ok := g.Relation("r1")
	require.True(t, ok)
	assert.Equal(t, "person", r.From)
	assert.Equal(t, "org", r.To)
	assert.Equal(t, ontology.RelationKind, r.FinalType)
}

func TestLoadNestedPackagePreservesTree(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				map[string]any{
					"id": "pkg1", "name": "Core", "type": typePackage, "description": "",
					"propertyAssignments": nil,
					"contents": []any{
						classDict("a", "A", "kind"),
					},
				},
			},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, model, _, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)
	require.Len(t, model.Packages, 1)
	assert.Equal(t, "pkg1", model.Packages[0].ID)

	_, ok := g.Entity("a")
	assert.True(t, ok, "entity nested under a package must still be indexed on the graph")
}

func TestLoadPartOfAggregationOnSourceIsInverted(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				classDict("engine", "Engine", "kind"),
				classDict("car", "Car", "kind"),
				map[string]any{
					"id": "r1", "name": "", "type": typeRelation, "description": "",
					"stereotype": nil,
					"properties": []any{
						endpointDict("", "1..1", "COMPOSITE", classRef("engine")),
						endpointDict("", "1..1", "NONE", classRef("car")),
					},
				},
			},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, _, _, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	r, ok := g.Relation("r1")
	require.True(t, ok)
	assert.Equal(t, ontology.PartOf, r.FinalType)
	assert.Equal(t, "car", r.From, "part must be the source (whole the target) after inverting an aggregation-on-source PartOf")
	assert.Equal(t, "engine", r.To)
}

func TestLoadDanglingViewIsDiscardedAndReported(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				classDict("a", "A", "kind"),
			},
		},
		"diagrams": []any{
			map[string]any{
				"id": "d1", "name": "Diagram 1", "type": "Diagram", "owner": nil,
				"contents": []any{
					map[string]any{
						"id": "v1", "type": viewTypeClass,
						"modelElement": classRef("nonexistent"),
						"shape":        map[string]any{"x": 0, "y": 0, "width": 10, "height": 10},
					},
				},
			},
		},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, _, result, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	_, ok := g.View("v1")
	assert.False(t, ok, "a view referencing an unknown element must not be attached")

	var found bool
	for issue := range result.Issues() {
		if issue.Code() == diag.E_DANGLING_VIEW {
			found = true
		}
	}
	assert.True(t, found, "dangling view must be reported")
}

func TestLoadInvertedRelationViewIsRepaired(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				classDict("a", "A", "kind"),
				classDict("b", "B", "kind"),
				map[string]any{
					"id": "r1", "name": "", "type": typeRelation, "description": "",
					"stereotype": nil,
					"properties": []any{
						endpointDict("", "1..1", "NONE", classRef("a")),
						endpointDict("", "1..1", "NONE", classRef("b")),
					},
				},
			},
		},
		"diagrams": []any{
			map[string]any{
				"id": "d1", "name": "Diagram 1", "type": "Diagram", "owner": nil,
				"contents": []any{
					map[string]any{
						"id": "va", "type": viewTypeClass, "modelElement": classRef("a"),
						"shape": map[string]any{"x": 0, "y": 0, "width": 10, "height": 10},
					},
					map[string]any{
						"id": "vb", "type": viewTypeClass, "modelElement": classRef("b"),
						"shape": map[string]any{"x": 100, "y": 0, "width": 10, "height": 10},
					},
					map[string]any{
						"id": "vr", "type": viewTypeRelation,
						"modelElement": map[string]any{"id": "r1", "type": typeRelation},
						"shape": map[string]any{"points": []any{
							map[string]any{"x": 100, "y": 0},
							map[string]any{"x": 0, "y": 0},
						}},
						// swapped: source is actually b's view, target is a's view
						"source": map[string]any{"id": "vb", "type": viewTypeClass},
						"target": map[string]any{"id": "va", "type": viewTypeClass},
					},
				},
			},
		},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, _, result, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	v, ok := g.View("vr")
	require.True(t, ok)
	assert.Equal(t, "va", v.SourceViewID, "inverted relation view must be corrected to match the relation's from-entity")
	assert.Equal(t, "vb", v.TargetViewID)

	var found bool
	for issue := range result.Issues() {
		if issue.Code() == diag.E_INVERTED_EDGE {
			found = true
		}
	}
	assert.True(t, found, "inverted view repair must be reported")
}

func TestLoadGeneralizationSetResolvesCategorizerName(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				classDict("person", "Person", "kind"),
				classDict("man", "Man", "subkind"),
				classDict("woman", "Woman", "subkind"),
				func() map[string]any {
					d := classDict("gender", "Gender", "")
					d["order"] = "2"
					return d
				}(),
				map[string]any{
					"id": "g1", "name": "", "type": typeGeneralization, "description": "",
					"propertyAssignments": nil,
					"general":             classRef("person"),
					"specific":            classRef("man"),
				},
				map[string]any{
					"id": "g2", "name": "", "type": typeGeneralization, "description": "",
					"propertyAssignments": nil,
					"general":             classRef("person"),
					"specific":            classRef("woman"),
				},
				map[string]any{
					"id": "gs1", "name": "", "type": typeGeneralizationSet, "description": "",
					"propertyAssignments": nil, "isDisjoint": true, "isComplete": true,
					"categorizer": map[string]any{"id": "gender", "type": typeClass},
					"generalizations": []any{
						map[string]any{"id": "g1", "type": typeGeneralization},
						map[string]any{"id": "g2", "type": typeGeneralization},
					},
				},
			},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, _, _, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	set, ok := g.GeneralizationSet("gs1")
	require.True(t, ok)
	assert.Equal(t, "Gender", set.Categorizer)
	assert.ElementsMatch(t, []string{"g1", "g2"}, set.GeneralizationIDs)

	g1, ok := g.Relation("g1")
	require.True(t, ok)
	assert.Equal(t, "gs1", g1.SetID)
}

func TestLoadGeneralizationSetWithMissingGeneralizationsYieldsEmpty(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				map[string]any{
					"id": "gs1", "name": "", "type": typeGeneralizationSet, "description": "",
					"propertyAssignments": nil, "isDisjoint": false, "isComplete": false,
					"categorizer":     nil,
					"generalizations": nil,
				},
			},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, _, _, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	set, ok := g.GeneralizationSet("gs1")
	require.True(t, ok)
	assert.Empty(t, set.GeneralizationIDs)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	_, _, _, err := Load(context.Background(), []byte("not json"), config.New(), nil)
	assert.Error(t, err)
}

func TestLoadRejectsMissingModel(t *testing.T) {
	data, err := json.Marshal(map[string]any{"diagrams": []any{}})
	require.NoError(t, err)
	_, _, _, err = Load(context.Background(), data, config.New(), nil)
	assert.Error(t, err)
}

func TestSaveRoundTripsEntitiesAndRelations(t *testing.T) {
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents": []any{
				classDict("person", "Person", "kind"),
				classDict("org", "Organization", "kind"),
				map[string]any{
					"id": "r1", "name": "worksFor", "type": typeRelation, "description": "",
					"stereotype": "material",
					"properties": []any{
						endpointDict("employee", "1..1", "NONE", classRef("person")),
						endpointDict("employer", "0..*", "NONE", classRef("org")),
					},
				},
			},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, model, _, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	out, err := Save(context.Background(), g, model)
	require.NoError(t, err)

	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(out, &roundTripped))

	g2, _, _, err := Load(context.Background(), out, config.New(), nil)
	require.NoError(t, err)

	person, ok := g2.Entity("person")
	require.True(t, ok)
	assert.Equal(t, "Person", person.Name)
	assert.Equal(t, stereotype.Kind, person.Stereotype)

	r, ok := g2.Relation("r1")
	require.True(t, ok)
	assert.Equal(t, "person", r.From)
	assert.Equal(t, "org", r.To)
	assert.Equal(t, "worksFor", r.Name)
}

func TestSavePreservesResidualFields(t *testing.T) {
	classWithExtra := classDict("a", "A", "kind")
	classWithExtra["customTag"] = "preserved"

	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": typePackage, "description": "",
			"propertyAssignments": nil,
			"contents":            []any{classWithExtra},
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, model, _, err := Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)

	out, err := Save(context.Background(), g, model)
	require.NoError(t, err)

	var roundTripped struct {
		Model struct {
			Contents []map[string]any `json:"contents"`
		} `json:"model"`
	}
	require.NoError(t, json.Unmarshal(out, &roundTripped))
	require.Len(t, roundTripped.Model.Contents, 1)
	assert.Equal(t, "preserved", roundTripped.Model.Contents[0]["customTag"])
}
