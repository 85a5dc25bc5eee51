package ops

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontoverse/ontoforge/adapter/canonical"
	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/ontology"
	"github.com/ontoverse/ontoforge/stereotype"
)

func mustStereotype(t *testing.T, name string) stereotype.Class {
	t.Helper()
	class, ok := stereotype.ParseClass(name)
	require.True(t, ok, "unknown stereotype %q", name)
	return class
}

func classRef(id string) map[string]any {
	return map[string]any{"id": id, "type": "Class"}
}

func endpointDict(cardinality, aggregation string, propType map[string]any) map[string]any {
	return map[string]any{
		"id": "ep", "name": "", "description": nil, "type": "Property",
		"propertyAssignments": nil, "stereotype": nil, "isDerived": false,
		"isReadOnly": false, "isOrdered": false, "cardinality": cardinality,
		"propertyType": propType, "subsettedProperties": nil, "redefinedProperties": nil,
		"aggregationKind": aggregation,
	}
}

func classDict(id, name, stereo string) map[string]any {
	return map[string]any{
		"id": id, "name": name, "type": "Class", "description": "",
		"stereotype": stereo, "isAbstract": false, "isDerived": false,
		"properties": []any{}, "isExtensional": false, "isPowertype": false,
		"order": "", "literals": []any{}, "restrictedTo": []any{},
	}
}

func relationDict(id, name, stereo string, from, to map[string]any) map[string]any {
	return map[string]any{
		"id": id, "name": name, "type": "Relation", "description": "",
		"stereotype": stereo,
		"properties": []any{
			endpointDict("1..1", "NONE", from),
			endpointDict("0..*", "NONE", to),
		},
	}
}

func partOfDict(id, from, to, aggregation string) map[string]any {
	return map[string]any{
		"id": id, "name": "", "type": "Relation", "description": "",
		"stereotype": "componentOf",
		"properties": []any{
			endpointDict("1..1", "NONE", from),
			endpointDict("1..1", aggregation, to),
		},
	}
}

func loadGraph(t *testing.T, contents []any) *ontology.Graph {
	t.Helper()
	project := map[string]any{
		"model": map[string]any{
			"id": "m1", "name": "Model", "type": "Package", "description": "",
			"propertyAssignments": nil,
			"contents":            contents,
		},
		"diagrams": []any{},
	}
	data, err := json.Marshal(project)
	require.NoError(t, err)

	g, _, _, err := canonical.Load(context.Background(), data, config.New(), nil)
	require.NoError(t, err)
	return g
}
