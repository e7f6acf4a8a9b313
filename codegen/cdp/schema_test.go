package cdp

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocumentJSON(t *testing.T) {
	path := writeSchema(t, "protocol.json", `{
		"version": {"major": "1", "minor": "3"},
		"domains": [{"domain": "Page"}]
	}`)

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, FlexString("1"), doc.Version.Major)
	assert.Equal(t, FlexString("3"), doc.Version.Minor)
	require.Len(t, doc.Domains, 1)
	assert.Equal(t, "Page", doc.Domains[0].Domain)
}

func TestLoadDocumentYAML(t *testing.T) {
	path := writeSchema(t, "protocol.yaml", `
version:
  major: 1
  minor: 3
domains:
  - domain: Network
    types:
      - id: LoaderId
        type: string
`)

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, FlexString("1"), doc.Version.Major)
	assert.Equal(t, FlexString("3"), doc.Version.Minor)
	require.Len(t, doc.Domains, 1)
	require.Len(t, doc.Domains[0].Types, 1)
	assert.Equal(t, "LoaderId", doc.Domains[0].Types[0].ID)
}

func TestLoadDocumentUnsupportedFormat(t *testing.T) {
	path := writeSchema(t, "protocol.proto", "syntax = \"proto3\";")

	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema format")
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema")
}

func TestFlexString(t *testing.T) {
	var v VersionNode
	require.NoError(t, json.Unmarshal([]byte(`{"major": "1", "minor": 3}`), &v))
	assert.Equal(t, FlexString("1"), v.Major)
	assert.Equal(t, FlexString("3"), v.Minor)
}

func TestCheckVersion(t *testing.T) {
	ok := &SchemaDocument{Version: VersionNode{Major: "1", Minor: "3"}}
	assert.NoError(t, CheckVersion(ok, "protocol.json"))

	bad := &SchemaDocument{Version: VersionNode{Major: "2", Minor: "0"}}
	err := CheckVersion(bad, "protocol.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares version 2.0, want 1.3")
}
