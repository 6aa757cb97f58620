package validator

import (
	"fmt"

	"github.com/GodYY/sbml"
)

// assignedByRule reports whether an assignment rule determines id.
func assignedByRule(ctx *Context, id string) bool {
	m := ctx.Model()
	if m == nil {
		return false
	}
	r := m.RuleFor(id)
	return r != nil && r.IsAssignment()
}

var practiceConstraints = NewConstraintSet("modeling-practice").MustAdd(
	Define(sbml.CodeCompartmentSizeNotSet, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		Pre: []func(*Context, *sbml.Compartment) bool{
			func(_ *Context, c *sbml.Compartment) bool { return c.SpatialDimensions() != 0 },
		},
		InvOr: []func(*Context, *sbml.Compartment) bool{
			func(_ *Context, c *sbml.Compartment) bool { return c.IsSetSize() },
			func(ctx *Context, c *sbml.Compartment) bool { return assignedByRule(ctx, c.Id()) },
		},
		Message: func(_ *Context, c *sbml.Compartment) string {
			return fmt.Sprintf("size of compartment '%s' is not set", c.Id())
		},
	}).WithSeverity(sbml.SeverityWarning),

	Define(sbml.CodeSpeciesInitialValueNotSet, sbml.TypeSpecies, Spec[*sbml.Species]{
		InvOr: []func(*Context, *sbml.Species) bool{
			func(_ *Context, sp *sbml.Species) bool { return sp.IsSetInitialAmount() },
			func(_ *Context, sp *sbml.Species) bool { return sp.IsSetInitialConcentration() },
			func(ctx *Context, sp *sbml.Species) bool { return assignedByRule(ctx, sp.Id()) },
		},
		Message: func(_ *Context, sp *sbml.Species) string {
			return fmt.Sprintf("initial value of species '%s' is not set", sp.Id())
		},
	}).WithSeverity(sbml.SeverityWarning),

	Define(sbml.CodeParameterUnitsNotSet, sbml.TypeParameter, Spec[*sbml.Parameter]{
		Inv: func(_ *Context, p *sbml.Parameter) bool { return p.IsSetUnits() },
		Message: func(_ *Context, p *sbml.Parameter) string {
			return fmt.Sprintf("units of parameter '%s' are not set", p.Id())
		},
	}).WithSeverity(sbml.SeverityWarning),
)

// NewModelingPractice reports legal models that are likely incomplete.
// Its diagnostics are warnings.
func NewModelingPractice() *Validator {
	return New(sbml.CategoryModelingPractice, practiceConstraints)
}
