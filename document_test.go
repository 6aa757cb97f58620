package sbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSetModel(t *testing.T) {
	d, err := NewDocument(2, 4)
	require.NoError(t, err)

	other, err := NewDocument(3, 1)
	require.NoError(t, err)
	assert.Equal(t, LevelMismatch, d.SetModel(other.CreateModel("x")))

	sibling, err := NewDocument(2, 3)
	require.NoError(t, err)
	assert.Equal(t, VersionMismatch, d.SetModel(sibling.CreateModel("x")))
	assert.Nil(t, d.Model())

	src, err := NewDocument(2, 4)
	require.NoError(t, err)
	m := src.CreateModel("m")
	m.CreateCompartment().SetId("cell")

	require.Equal(t, OperationSuccess, d.SetModel(m))
	require.NotNil(t, d.Model())
	assert.NotSame(t, m, d.Model())
	assert.Same(t, d, d.Model().Document())
	assert.Same(t, d, d.Model().Compartment("cell").Document())
	assert.Same(t, src, m.Document())

	require.Equal(t, OperationSuccess, d.SetModel(nil))
	assert.Nil(t, d.Model())
}

func TestDocumentCreateModel(t *testing.T) {
	d, err := NewDocument(3, 2)
	require.NoError(t, err)

	first := d.CreateModel("first")
	second := d.CreateModel("")
	assert.Same(t, second, d.Model())
	assert.False(t, second.IsSetId())
	assert.Nil(t, first.Parent())
	assert.Nil(t, first.Document())
}

func TestDocumentClone(t *testing.T) {
	reg := newTestRegistry(t)
	d, err := NewDocumentWithExtensions(3, 2, reg)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, d.EnablePackage(testPackageURI, "", true))
	d.ErrorLog().SetSeverityOverride(OverrideWarning)
	d.ErrorLog().add(CodeMissingModel, SeverityError, CategorySBML, 1, 1, "test")
	d.CreateModel("m").CreateSpecies().SetId("A")

	c := d.Clone().(*Document)
	assert.Equal(t, 0, c.ErrorLog().Len())
	assert.Equal(t, OverrideWarning, c.ErrorLog().SeverityOverride())
	assert.True(t, c.IsPackageEnabled(testPackageURI))
	assert.Same(t, reg, c.Extensions())

	require.NotNil(t, c.Model())
	assert.NotSame(t, d.Model(), c.Model())
	assert.Same(t, c, c.Model().SpeciesById("A").Document())

	require.Equal(t, OperationSuccess, c.SetPackageRequired(testPackageURI, true))
	assert.False(t, d.IsPackageRequired(testPackageURI))
}

func TestDocumentRelease(t *testing.T) {
	d, err := NewDocumentWithExtensions(3, 2, newTestRegistry(t))
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, d.EnablePackage(testPackageURI, "", true))
	m := d.CreateModel("m")
	d.ErrorLog().add(CodeMissingModel, SeverityError, CategorySBML, 1, 1, "test")

	d.Release()
	assert.Nil(t, d.Model())
	assert.Nil(t, m.Document())
	assert.Equal(t, 0, d.ErrorLog().Len())
	assert.Empty(t, d.EnabledPackages())
	assert.Nil(t, d.Extensions())
}
