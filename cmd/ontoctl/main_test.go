package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, dir string, contents []any) string {
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

	path := filepath.Join(dir, "project.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func classDict(id, name, stereo string) map[string]any {
	return map[string]any{
		"id": id, "name": name, "type": "Class", "description": "",
		"stereotype": stereo, "isAbstract": false, "isDerived": false,
		"properties": []any{}, "isExtensional": false, "isPowertype": false,
		"order": "", "literals": []any{}, "restrictedTo": []any{},
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	var out bytes.Buffer
	root.SetOut(&out)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := root.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String(), err
}

func TestStatsCommandPrintsCounts(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, []any{classDict("c1", "Animal", "kind")})

	out, err := runCmd(t, "stats", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "entities: 1")
}

func TestDeleteCommandRejectsUnknownElementType(t *testing.T) {
	dir := t.TempDir()
	path := writeProjectFile(t, dir, []any{classDict("c1", "Animal", "kind")})

	_, err := runCmd(t, "delete", "c1", "--type", "diagram", "--input", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be")
}

func TestFocusCommandRequiresInput(t *testing.T) {
	_, err := runCmd(t, "focus", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input is required")
}
