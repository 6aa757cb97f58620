package sbml

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLogOverride(t *testing.T) {
	tests := []struct {
		override SeverityOverride
		in       Severity
		len      int
		out      Severity
	}{
		{OverrideNone, SeverityError, 1, SeverityError},
		{OverrideNone, SeverityWarning, 1, SeverityWarning},
		{OverrideDontLog, SeverityFatal, 0, 0},
		{OverrideWarning, SeverityFatal, 1, SeverityWarning},
		{OverrideWarning, SeverityInfo, 1, SeverityInfo},
		{OverrideError, SeverityWarning, 1, SeverityError},
	}

	for _, tt := range tests {
		log := NewErrorLog()
		log.SetSeverityOverride(tt.override)
		log.Add(Diagnostic{Code: CodeInvalidIDSyntax, Severity: tt.in, Category: CategorySBML})

		require.Equal(t, tt.len, log.Len(), tt.override.String())
		if tt.len > 0 {
			d, ok := log.At(0)
			require.True(t, ok)
			assert.Equal(t, tt.out, d.Severity, tt.override.String())
		}
	}
}

func TestErrorLogQueries(t *testing.T) {
	log := NewErrorLog()
	log.add(CodeUnknownCoreAttribute, SeverityError, CategorySBML, 3, 7, "attribute '%s'", "x")
	log.add(CodeCompartmentSizeNotSet, SeverityWarning, CategoryModelingPractice, 4, 1, "size")
	log.add(CodeUnknownCoreAttribute, SeverityFatal, CategorySBML, 5, 2, "again")

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, 2, log.NumErrors())
	assert.Equal(t, 1, log.NumWithSeverity(SeverityWarning))
	assert.Equal(t, 2, log.Count(CodeUnknownCoreAttribute))
	assert.True(t, log.Contains(CodeCompartmentSizeNotSet))
	assert.False(t, log.Contains(CodeMissingModel))

	_, ok := log.At(3)
	assert.False(t, ok)

	d, _ := log.At(0)
	assert.Equal(t, "attribute 'x'", d.Message)
	assert.Contains(t, log.String(), "99994")
	assert.Contains(t, log.String(), "line 3")

	log.Clear()
	assert.Equal(t, 0, log.Len())
}

func TestErrorLogJSON(t *testing.T) {
	log := NewErrorLog()

	var buf bytes.Buffer
	require.NoError(t, log.WriteJSON(&buf))
	assert.JSONEq(t, `[]`, buf.String())

	log.add(CodeMissingModel, SeverityError, CategorySBML, 1, 2, "no model")
	buf.Reset()
	require.NoError(t, log.WriteJSON(&buf))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, float64(CodeMissingModel), decoded[0]["code"])
	assert.Equal(t, "error", decoded[0]["severity"])
	assert.Equal(t, "sbml", decoded[0]["category"])
	assert.Equal(t, "no model", decoded[0]["message"])
}

func TestParseOverrideAndCategory(t *testing.T) {
	o, ok := ParseSeverityOverride("dont-log")
	require.True(t, ok)
	assert.Equal(t, OverrideDontLog, o)

	_, ok = ParseSeverityOverride("loud")
	assert.False(t, ok)

	c, ok := ParseCategory("modeling-practice")
	require.True(t, ok)
	assert.Equal(t, CategoryModelingPractice, c)
}
