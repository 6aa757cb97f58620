package sbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidSId(t *testing.T) {
	for id, valid := range map[string]bool{
		"abc_1": true,
		"_x":    true,
		"A9":    true,
		"1abc":  false,
		"":      false,
		"a-b":   false,
		"a b":   false,
		"é":     false,
	} {
		assert.Equal(t, valid, IsValidSId(id), id)
	}
}

func TestIsValidMetaId(t *testing.T) {
	for id, valid := range map[string]bool{
		"meta_1": true,
		"m.1-2":  true,
		"été":    true,
		"1meta":  false,
		"-m":     false,
		"a:b":    false,
		"":       false,
	} {
		assert.Equal(t, valid, IsValidMetaId(id), id)
	}
}

func TestSBOTerm(t *testing.T) {
	assert.Equal(t, "SBO:0000236", FormatSBOTerm(236))
	assert.Equal(t, "", FormatSBOTerm(-1))

	term, ok := ParseSBOTerm("SBO:0000236")
	require.True(t, ok)
	assert.Equal(t, 236, term)

	for _, s := range []string{"SBO:236", "sbo:0000236", "SBO:00002x6", ""} {
		_, ok := ParseSBOTerm(s)
		assert.False(t, ok, s)
	}
}

func TestSetIdKeepsValueOnInvalid(t *testing.T) {
	c, err := NewCompartment(3, 2)
	require.NoError(t, err)

	assert.Equal(t, OperationSuccess, c.SetId("abc_1"))
	assert.Equal(t, InvalidAttributeValue, c.SetId("1abc"))
	assert.Equal(t, "abc_1", c.Id())

	assert.Equal(t, OperationSuccess, c.SetId(""))
	assert.False(t, c.IsSetId())
}

func TestLevel1IdentifierIsName(t *testing.T) {
	c, err := NewCompartment(1, 2)
	require.NoError(t, err)

	require.Equal(t, OperationSuccess, c.SetName("cell"))
	assert.Equal(t, "cell", c.Id())
	assert.Equal(t, InvalidAttributeValue, c.SetName("not an id"))

	assert.Equal(t, UnexpectedAttribute, c.SetMetaId("m1"))
	assert.Equal(t, UnexpectedAttribute, c.SetSBOTerm(236))
}

func TestSBOTermLegality(t *testing.T) {
	p, err := NewParameter(2, 1)
	require.NoError(t, err)
	assert.Equal(t, UnexpectedAttribute, p.SetSBOTerm(2))

	p, err = NewParameter(2, 4)
	require.NoError(t, err)
	assert.Equal(t, OperationSuccess, p.SetSBOTermID("SBO:0000002"))
	assert.Equal(t, 2, p.SBOTerm())
	assert.Equal(t, InvalidAttributeValue, p.SetSBOTerm(-5))
	assert.Equal(t, 2, p.SBOTerm())
}

func TestNotesAndAnnotation(t *testing.T) {
	s, err := NewSpecies(3, 1)
	require.NoError(t, err)

	body, err := ParseXMLNode(`<p xmlns="http://www.w3.org/1999/xhtml">hello</p>`)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, s.SetNotes(body))
	require.True(t, s.IsSetNotes())
	assert.Equal(t, "notes", s.Notes().Name)
	assert.Equal(t, "hello", s.Notes().TextContent())

	annotation, err := ParseXMLNode(`<annotation><x:data xmlns:x="urn:x"/></annotation>`)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, s.SetAnnotation(annotation))
	assert.Equal(t, "annotation", s.Annotation().Name)

	assert.Equal(t, InvalidObject, s.SetNotes(NewXMLText("text")))
	assert.Equal(t, OperationSuccess, s.UnsetNotes())
	assert.False(t, s.IsSetNotes())
}

func TestConstructorErrors(t *testing.T) {
	_, err := NewCompartment(4, 1)
	require.Error(t, err)
	assert.True(t, IsConstructorError(err))

	_, err = NewEvent(1, 2)
	require.Error(t, err)
	assert.True(t, IsConstructorError(err))

	_, err = NewModifierSpeciesReference(1, 2)
	assert.True(t, IsConstructorError(err))

	_, err = NewDocument(2, 9)
	assert.True(t, IsConstructorError(err))
}
