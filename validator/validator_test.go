package validator

import (
	"testing"

	"github.com/GodYY/sbml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCode = 90001

func newSizedDocument(t *testing.T, sizes map[string]float64, unsized ...string) *sbml.Document {
	d, err := sbml.NewDocument(3, 2)
	require.NoError(t, err)
	m := d.CreateModel("m")

	for id, size := range sizes {
		c := m.CreateCompartment()
		require.Equal(t, sbml.OperationSuccess, c.SetId(id))
		require.Equal(t, sbml.OperationSuccess, c.SetSize(size))
	}
	for _, id := range unsized {
		require.Equal(t, sbml.OperationSuccess, m.CreateCompartment().SetId(id))
	}
	return d
}

func positiveSize() *Constraint {
	return Define(testCode, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		Pre: []func(*Context, *sbml.Compartment) bool{
			func(_ *Context, c *sbml.Compartment) bool { return c.IsSetSize() },
		},
		Inv: func(_ *Context, c *sbml.Compartment) bool { return c.Size() > 0 },
	})
}

func TestPreconditionGatesInvariant(t *testing.T) {
	d := newSizedDocument(t, map[string]float64{"good": 1, "bad": -1}, "unsized")

	v := New(sbml.CategoryGeneralConsistency, NewConstraintSet("test").MustAdd(positiveSize()))
	require.Equal(t, 1, v.Validate(d))

	f := v.Failures()
	require.Len(t, f, 1)
	assert.Equal(t, testCode, f[0].Code)
	assert.Equal(t, sbml.SeverityError, f[0].Severity)
	assert.Equal(t, sbml.CategoryGeneralConsistency, f[0].Category)
	assert.Contains(t, f[0].Message, "'bad'")
	assert.Equal(t, 1, d.ErrorLog().Count(testCode))

	d = newSizedDocument(t, nil, "a", "b")
	assert.Equal(t, 0, v.Validate(d))
	assert.Empty(t, v.Failures())
}

func TestInvariantAlternatives(t *testing.T) {
	c := Define(testCode, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		InvOr: []func(*Context, *sbml.Compartment) bool{
			func(_ *Context, c *sbml.Compartment) bool { return c.IsSetSize() },
			func(_ *Context, c *sbml.Compartment) bool { return c.IsSetUnits() },
		},
	}).WithSeverity(sbml.SeverityWarning)

	d := newSizedDocument(t, map[string]float64{"sized": 1}, "bare", "withUnits")
	m := d.Model()
	require.Equal(t, sbml.OperationSuccess, m.Compartment("withUnits").SetUnits("litre"))

	v := New(sbml.CategoryModelingPractice, NewConstraintSet("test").MustAdd(c))
	require.Equal(t, 1, v.Validate(d))
	f := v.Failures()[0]
	assert.Equal(t, sbml.SeverityWarning, f.Severity)
	assert.Contains(t, f.Message, "'bare'")
}

func TestConstraintOnAnyType(t *testing.T) {
	var seen []sbml.TypeCode
	c := Define(testCode, sbml.TypeUnknown, Spec[sbml.Node]{
		Inv: func(_ *Context, n sbml.Node) bool {
			seen = append(seen, n.TypeCode())
			return true
		},
	})

	d := newSizedDocument(t, nil, "a")
	v := New(sbml.CategoryGeneralConsistency, NewConstraintSet("test").MustAdd(c))
	assert.Equal(t, 0, v.Validate(d))
	assert.Contains(t, seen, sbml.TypeDocument)
	assert.Contains(t, seen, sbml.TypeModel)
	assert.Contains(t, seen, sbml.TypeCompartment)
	assert.Contains(t, seen, sbml.TypeListOf)
}

func TestConstraintSet(t *testing.T) {
	s := NewConstraintSet("test")
	assert.Equal(t, "test", s.Name())

	require.NoError(t, s.Add(positiveSize()))
	assert.Error(t, s.Add(positiveSize()))
	assert.Error(t, s.Add(nil))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Add(Define(testCode-1, sbml.TypeSpecies, Spec[*sbml.Species]{
		Inv: func(*Context, *sbml.Species) bool { return true },
	})))
	assert.Equal(t, []int{testCode - 1, testCode}, s.IDs())
}

func TestValidatorStates(t *testing.T) {
	v := New(sbml.CategoryGeneralConsistency, NewConstraintSet("test").MustAdd(positiveSize()))
	assert.Equal(t, StateRegistered, v.State())
	assert.Equal(t, sbml.CategoryGeneralConsistency, v.Category())

	v.Init()
	assert.Equal(t, StateInitialized, v.State())
	v.Init()
	assert.Equal(t, StateInitialized, v.State())

	assert.Equal(t, 0, v.Validate(nil))
	assert.Equal(t, StateInitialized, v.State())

	d := newSizedDocument(t, map[string]float64{"bad": -1})
	assert.Equal(t, 1, v.Validate(d))
	assert.Equal(t, StateDone, v.State())
	assert.Equal(t, "done", v.State().String())

	assert.Equal(t, 1, v.Validate(d))
	assert.Equal(t, 2, d.ErrorLog().Count(testCode))

	auto := New(sbml.CategoryGeneralConsistency, NewConstraintSet("test").MustAdd(positiveSize()))
	assert.Equal(t, 1, auto.Validate(d))
}

func TestPanickingConstraint(t *testing.T) {
	c := Define(testCode, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		Inv: func(_ *Context, c *sbml.Compartment) bool {
			var m map[string]int
			m[c.Id()]++
			return true
		},
	})
	ok := Define(testCode+1, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		Inv: func(*Context, *sbml.Compartment) bool { return false },
	})

	d := newSizedDocument(t, nil, "a")
	v := New(sbml.CategoryGeneralConsistency, NewConstraintSet("test").MustAdd(c, ok))
	require.Equal(t, 2, v.Validate(d))

	f := v.Failures()
	assert.Equal(t, testCode, f[0].Code)
	assert.Equal(t, sbml.SeverityError, f[0].Severity)
	assert.Equal(t, sbml.CategoryInternalConsistency, f[0].Category)
	assert.Equal(t, testCode+1, f[1].Code)
	assert.Equal(t, sbml.CategoryGeneralConsistency, f[1].Category)
}

func TestContextIndexes(t *testing.T) {
	var first, owner sbml.Node
	set := NewConstraintSet("test").
		AddIndexer(indexIdentifiers).
		MustAdd(Define(testCode, sbml.TypeCompartment, Spec[*sbml.Compartment]{
			Inv: func(ctx *Context, c *sbml.Compartment) bool {
				if first == nil {
					first = c
				}
				owner = ctx.SIdOwner(c.Id())
				assert.NotNil(t, ctx.Document())
				assert.Same(t, ctx.Document().Model(), ctx.Model())
				return true
			},
		}))

	d := newSizedDocument(t, nil, "dup", "dup")
	New(sbml.CategoryGeneralConsistency, set).Validate(d)
	assert.Same(t, first, owner)
}

const consistencyDocument = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level2/version4" level="2" version="4">
  <model id="m">
    <listOfCompartments>
      <compartment id="cell" size="1"/>
      <compartment id="cell"/>
      <compartment id="flat" spatialDimensions="0" size="1"/>
    </listOfCompartments>
    <listOfSpecies>
      <species id="A" compartment="nowhere" initialAmount="1"/>
      <species id="B" compartment="cell" constant="true" initialAmount="1"/>
    </listOfSpecies>
    <listOfRules>
      <assignmentRule variable="B">
        <math xmlns="http://www.w3.org/1998/Math/MathML"><cn>1</cn></math>
      </assignmentRule>
    </listOfRules>
    <listOfReactions>
      <reaction id="r"/>
      <reaction id="r2">
        <listOfReactants>
          <speciesReference species="ghost"/>
        </listOfReactants>
        <listOfModifiers>
          <modifierSpeciesReference species="ghost"/>
        </listOfModifiers>
      </reaction>
    </listOfReactions>
  </model>
</sbml>`

func TestCheckConsistency(t *testing.T) {
	d := sbml.ReadSBMLFromString(consistencyDocument)
	require.NotNil(t, d.Model())
	require.Equal(t, 0, d.NumErrors(), d.ErrorLog().String())

	n := CheckConsistency(d, DefaultOptions())
	assert.Equal(t, 8, n, d.ErrorLog().String())

	log := d.ErrorLog()
	for code, count := range map[int]int{
		sbml.CodeDuplicateComponentID:      1,
		sbml.CodeZeroDimensionalSize:       1,
		sbml.CodeInvalidSpeciesCompartment: 1,
		sbml.CodeConstantSpeciesInRule:     1,
		sbml.CodeNoReactantsOrProducts:     1,
		sbml.CodeInvalidSpeciesReference:   2,
		sbml.CodeCompartmentSizeNotSet:     1,
		sbml.CodeSpeciesInitialValueNotSet: 0,
		sbml.CodeInvalidRuleVariable:       0,
	} {
		assert.Equal(t, count, log.Count(code), "code %d", code)
	}
	assert.Equal(t, 1, log.NumWithSeverity(sbml.SeverityWarning))
}

func TestDuplicateIdReportedOnSecondHolder(t *testing.T) {
	d := sbml.ReadSBMLFromString(consistencyDocument)
	second := d.Model().Compartments().Get(1)
	require.NotNil(t, second)

	v := NewIdentifierConsistency()
	require.Equal(t, 1, v.Validate(d))

	f := v.Failures()[0]
	assert.Equal(t, sbml.CodeDuplicateComponentID, f.Code)
	assert.Equal(t, second.Line(), f.Line)
	assert.NotEqual(t, d.Model().Compartments().Get(0).Line(), f.Line)
	assert.Contains(t, f.Message, "'cell'")
}

func TestCheckConsistencyCategories(t *testing.T) {
	d := sbml.ReadSBMLFromString(consistencyDocument)

	n := CheckConsistency(d, Options{Categories: []sbml.Category{sbml.CategoryModelingPractice}})
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, d.ErrorLog().Count(sbml.CodeDuplicateComponentID))

	assert.Equal(t, 0, CheckConsistency(d, Options{}))
}

func TestCheckInternalConsistency(t *testing.T) {
	d, err := sbml.NewDocument(3, 2)
	require.NoError(t, err)
	c := d.CreateModel("m").CreateCompartment()
	require.Equal(t, sbml.OperationSuccess, c.SetId("cell"))

	require.Equal(t, 1, CheckInternalConsistency(d))
	diag, ok := d.ErrorLog().At(0)
	require.True(t, ok)
	assert.Equal(t, sbml.CodeMissingRequiredAttribute, diag.Code)
	assert.Contains(t, diag.Message, "constant")

	require.Equal(t, sbml.OperationSuccess, c.SetConstant(true))
	d.ErrorLog().Clear()
	assert.Equal(t, 0, CheckInternalConsistency(d))
}

func TestOptionsFromConfig(t *testing.T) {
	assert.Equal(t, DefaultOptions(), OptionsFromConfig(nil))
	assert.Equal(t, DefaultOptions(), OptionsFromConfig(&sbml.Config{}))

	opts := OptionsFromConfig(&sbml.Config{Categories: []string{"internal-consistency"}})
	assert.True(t, opts.Enabled(sbml.CategoryInternalConsistency))
	assert.False(t, opts.Enabled(sbml.CategoryModelingPractice))
	assert.False(t, DefaultOptions().Enabled(sbml.CategoryInternalConsistency))
}
