package validator

import (
	"fmt"

	"github.com/GodYY/sbml"
)

var generalConstraints = NewConstraintSet("general-consistency").MustAdd(
	Define(sbml.CodeZeroDimensionalSize, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		Pre: []func(*Context, *sbml.Compartment) bool{
			func(_ *Context, c *sbml.Compartment) bool {
				return c.IsSetSpatialDimensions() && c.SpatialDimensions() == 0
			},
		},
		Inv: func(_ *Context, c *sbml.Compartment) bool { return !c.IsSetSize() },
		Message: func(_ *Context, c *sbml.Compartment) string {
			return fmt.Sprintf("zero-dimensional compartment '%s' must not have a size", c.Id())
		},
	}),

	Define(sbml.CodeConstantSpeciesInRule, sbml.TypeUnknown, Spec[*sbml.Rule]{
		Pre: []func(*Context, *sbml.Rule) bool{
			func(ctx *Context, _ *sbml.Rule) bool { return hasModel(ctx) },
			func(_ *Context, r *sbml.Rule) bool { return !r.IsAlgebraic() && r.IsSetVariable() },
			func(ctx *Context, r *sbml.Rule) bool { return ctx.Model().SpeciesById(r.Variable()) != nil },
		},
		Inv: func(ctx *Context, r *sbml.Rule) bool {
			return !ctx.Model().SpeciesById(r.Variable()).Constant()
		},
		Message: func(_ *Context, r *sbml.Rule) string {
			return fmt.Sprintf("constant species '%s' is the variable of a <%s>", r.Variable(), r.ElementName())
		},
	}),

	Define(sbml.CodeNoReactantsOrProducts, sbml.TypeReaction, Spec[*sbml.Reaction]{
		Pre: []func(*Context, *sbml.Reaction) bool{
			func(_ *Context, r *sbml.Reaction) bool { return r.LevelVersion().Before(sbml.L3V2) },
		},
		InvOr: []func(*Context, *sbml.Reaction) bool{
			func(_ *Context, r *sbml.Reaction) bool { return r.NumReactants() > 0 },
			func(_ *Context, r *sbml.Reaction) bool { return r.NumProducts() > 0 },
		},
		Message: func(_ *Context, r *sbml.Reaction) string {
			return fmt.Sprintf("reaction '%s' has neither reactants nor products", r.Id())
		},
	}),

	Define(sbml.CodeMissingTriggerInEvent, sbml.TypeEvent, Spec[*sbml.Event]{
		Pre: []func(*Context, *sbml.Event) bool{
			func(_ *Context, e *sbml.Event) bool { return e.LevelVersion().Before(sbml.L3V2) },
		},
		Inv: func(_ *Context, e *sbml.Event) bool { return e.IsSetTrigger() },
		Message: func(_ *Context, e *sbml.Event) string {
			return fmt.Sprintf("event '%s' has no trigger", e.Id())
		},
	}),
)

// NewGeneralConsistency checks the structural rules of the model that are
// not about identifiers or references.
func NewGeneralConsistency() *Validator {
	return New(sbml.CategoryGeneralConsistency, generalConstraints)
}
