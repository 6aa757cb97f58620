package sbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackageURI = "http://www.sbml.org/sbml/level3/version1/layout/version1"

func newTestRegistry(t *testing.T) *ExtensionRegistry {
	reg := NewExtensionRegistry()
	require.NoError(t, reg.Register(&Extension{
		Name: "layout",
		URI:  testPackageURI,
		Attributes: map[TypeCode][]string{
			TypeCompartment: {"shape"},
		},
	}))
	return reg
}

func TestExtensionRegister(t *testing.T) {
	reg := newTestRegistry(t)

	ext := reg.Lookup(testPackageURI)
	require.NotNil(t, ext)
	assert.Equal(t, "layout", ext.DefaultPrefix)
	assert.Same(t, ext, reg.LookupByName("layout"))
	assert.Equal(t, []string{"layout"}, reg.Names())

	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(&Extension{Name: "x"}))
	assert.Error(t, reg.Register(&Extension{Name: "core", URI: L3V2.CoreURI()}))
	assert.Error(t, reg.Register(&Extension{Name: "other", URI: testPackageURI}))
	assert.Error(t, reg.Register(&Extension{Name: "layout", URI: "urn:other"}))

	var nilReg *ExtensionRegistry
	assert.Nil(t, nilReg.Lookup(testPackageURI))
	assert.Nil(t, nilReg.Names())
}

func TestEnablePackage(t *testing.T) {
	reg := newTestRegistry(t)

	d, err := NewDocumentWithExtensions(3, 2, reg)
	require.NoError(t, err)

	assert.Equal(t, PkgUnknown, d.EnablePackage("urn:nothing", "", true))
	require.Equal(t, OperationSuccess, d.EnablePackage(testPackageURI, "", true))
	assert.True(t, d.IsPackageEnabled(testPackageURI))
	assert.Equal(t, []string{testPackageURI}, d.EnabledPackages())

	require.Equal(t, OperationSuccess, d.SetPackageRequired(testPackageURI, true))
	assert.True(t, d.IsPackageRequired(testPackageURI))
	assert.Equal(t, PkgUnknown, d.SetPackageRequired("urn:nothing", true))

	c := d.CreateModel("m").CreateCompartment()
	require.NotNil(t, c)
	assert.Equal(t, OperationSuccess, c.SetExtensionAttribute(testPackageURI, "shape", "round"))
	assert.Equal(t, UnexpectedAttribute, c.SetExtensionAttribute(testPackageURI, "colour", "red"))
	v, ok := c.ExtensionAttribute(testPackageURI, "shape")
	require.True(t, ok)
	assert.Equal(t, "round", v)

	require.Equal(t, OperationSuccess, d.EnablePackage(testPackageURI, "", false))
	assert.False(t, d.IsPackageEnabled(testPackageURI))
	_, ok = c.ExtensionAttribute(testPackageURI, "shape")
	assert.False(t, ok)

	l2, err := NewDocumentWithExtensions(2, 4, reg)
	require.NoError(t, err)
	assert.Equal(t, LevelMismatch, l2.EnablePackage(testPackageURI, "", true))
}

func TestReadPackageAttributes(t *testing.T) {
	text := `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level3/version2/core" xmlns:layout="` + testPackageURI + `"
      xmlns:other="urn:other" level="3" version="2" layout:required="false">
  <model id="m">
    <listOfCompartments>
      <compartment id="a" constant="true" layout:shape="round" other:tag="x"/>
      <compartment id="b" constant="true" layout:colour="red"/>
    </listOfCompartments>
  </model>
</sbml>`

	d := ReadSBMLFromString(text, WithExtensions(newTestRegistry(t)))
	require.NotNil(t, d.Model())

	assert.True(t, d.IsPackageEnabled(testPackageURI))
	assert.False(t, d.IsPackageRequired(testPackageURI))

	a := d.Model().Compartment("a")
	require.NotNil(t, a)
	v, ok := a.ExtensionAttribute(testPackageURI, "shape")
	require.True(t, ok)
	assert.Equal(t, "round", v)
	v, ok = a.ExtensionAttribute("urn:other", "tag")
	require.True(t, ok)
	assert.Equal(t, "x", v)

	b := d.Model().Compartment("b")
	require.NotNil(t, b)
	_, ok = b.ExtensionAttribute(testPackageURI, "colour")
	assert.False(t, ok)

	log := d.ErrorLog()
	require.Equal(t, 2, log.Count(CodeUnknownPackageAttribute))
	assert.Equal(t, 1, log.NumWithSeverity(SeverityWarning))
	assert.Equal(t, 1, log.NumErrors())

	out, err := WriteSBMLToString(d)
	require.NoError(t, err)
	assert.Contains(t, out, `layout:shape="round"`)
	assert.Contains(t, out, `other:tag="x"`)
	assert.Contains(t, out, `layout:required="false"`)
	assert.NotContains(t, out, "colour")
}

func TestReadUnregisteredPackage(t *testing.T) {
	text := `<sbml xmlns="http://www.sbml.org/sbml/level3/version2/core" xmlns:layout="` + testPackageURI + `"
      level="3" version="2"><model id="m"/></sbml>`

	d := ReadSBMLFromString(text)
	require.NotNil(t, d.Model())
	assert.False(t, d.IsPackageEnabled(testPackageURI))
	assert.Equal(t, 0, d.NumErrors())
}
