package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	name    string
	formats []string
}

func (g *fakeGenerator) Name() string                  { return g.name }
func (g *fakeGenerator) Description() string           { return "fake generator " + g.name }
func (g *fakeGenerator) SupportedFormats() []string    { return g.formats }
func (g *fakeGenerator) Generate(GenerateConfig) error { return nil }
func (g *fakeGenerator) ValidateSchema(string) error   { return nil }

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeGenerator{name: "cdp", formats: []string{".json"}}))

	g, err := r.Get("cdp")
	require.NoError(t, err)
	assert.Equal(t, "cdp", g.Name())

	_, err = r.Get("missing")
	assert.Error(t, err)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeGenerator{name: "cdp"}))
	assert.Error(t, r.Register(&fakeGenerator{name: "cdp"}))
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&fakeGenerator{name: ""}))
}

func TestRegistryListSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeGenerator{name: "zeta"}))
	require.NoError(t, r.Register(&fakeGenerator{name: "alpha"}))

	assert.Equal(t, []string{"alpha", "zeta"}, r.List())
}

func TestRegistryGetByFormat(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeGenerator{name: "json-only", formats: []string{".json"}}))
	require.NoError(t, r.Register(&fakeGenerator{name: "yaml-only", formats: []string{".yaml", ".yml"}}))

	matches := r.GetByFormat("protocol.json")
	require.Len(t, matches, 1)
	assert.Equal(t, "json-only", matches[0].Name())

	matches = r.GetByFormat("PROTOCOL.YML")
	require.Len(t, matches, 1)
	assert.Equal(t, "yaml-only", matches[0].Name())

	assert.Empty(t, r.GetByFormat("protocol.proto"))
}

func TestRegistryGeneratorInfo(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeGenerator{name: "cdp", formats: []string{".json", ".yaml"}}))

	info, err := r.GetGeneratorInfo("cdp")
	require.NoError(t, err)
	assert.Equal(t, "cdp", info.Name)
	assert.Equal(t, []string{".json", ".yaml"}, info.SupportedFormats)

	infos := r.ListGeneratorInfo()
	require.Len(t, infos, 1)
	assert.Equal(t, "fake generator cdp", infos[0].Description)
}
