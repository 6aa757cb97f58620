package sbml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigXML(t *testing.T) {
	path := writeConfigFile(t, "sbml.xml", `<?xml version="1.0"?>
<sbmlconfig>
  <severityoverride>warning</severityoverride>
  <categories>
    <category>identifier-consistency</category>
    <category>modeling-practice</category>
  </categories>
  <indent>    </indent>
  <packages>
    <package name="layout" uri="`+testPackageURI+`" prefix="lay">
      <attribute element="compartment" name="shape"/>
    </package>
  </packages>
</sbmlconfig>`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	o, err := cfg.Override()
	require.NoError(t, err)
	assert.Equal(t, OverrideWarning, o)
	assert.Equal(t, []Category{CategoryIdentifierConsistency, CategoryModelingPractice}, cfg.CategoryList())
	assert.Equal(t, "    ", cfg.IndentString())

	reg, err := cfg.ExtensionRegistry()
	require.NoError(t, err)
	ext := reg.Lookup(testPackageURI)
	require.NotNil(t, ext)
	assert.Equal(t, "lay", ext.DefaultPrefix)
	assert.Equal(t, []string{"shape"}, ext.Attributes[TypeCompartment])

	opts, err := cfg.ReadOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
	assert.Len(t, cfg.WriteOptions(), 1)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfigFile(t, "sbml.yaml", `
severityOverride: dont-log
categories: [general-consistency]
packages:
  - name: layout
    uri: `+testPackageURI+`
    attributes:
      - element: species
        name: glyph
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	o, err := cfg.Override()
	require.NoError(t, err)
	assert.Equal(t, OverrideDontLog, o)
	assert.Equal(t, []Category{CategoryGeneralConsistency}, cfg.CategoryList())
	assert.Equal(t, defaultIndent, cfg.IndentString())

	reg, err := cfg.ExtensionRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"glyph"}, reg.LookupByName("layout").Attributes[TypeSpecies])
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"override", "bad.yaml", "severityOverride: loud\n"},
		{"category", "bad.yaml", "categories: [everything]\n"},
		{"element", "bad.yaml", "packages:\n  - name: p\n    uri: urn:p\n    attributes:\n      - element: nowhere\n        name: x\n"},
		{"duplicate", "bad.yaml", "packages:\n  - name: p\n    uri: urn:p\n  - name: p\n    uri: urn:q\n"},
		{"no root", "bad.xml", "<other/>"},
		{"malformed", "bad.xml", "<sbmlconfig>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	indent := "\t"
	cfg := &Config{
		SeverityOverride: "error",
		Categories:       []string{"reference-consistency"},
		Indent:           &indent,
		Packages: []*PackageEntry{{
			Name:       "layout",
			URI:        testPackageURI,
			Attributes: []*PackageAttribute{{Element: "compartment", Name: "shape"}},
		}},
	}

	path := filepath.Join(t.TempDir(), "saved.xml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.SeverityOverride, loaded.SeverityOverride)
	assert.Equal(t, cfg.Categories, loaded.Categories)
	assert.Equal(t, "\t", loaded.IndentString())
	require.Len(t, loaded.Packages, 1)
	assert.Equal(t, cfg.Packages[0].Attributes, loaded.Packages[0].Attributes)

	assert.NoError(t, SaveConfig(nil, path))
}
