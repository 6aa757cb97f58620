package validator

import (
	"fmt"

	"github.com/GodYY/sbml"
)

type speciesReferrer interface {
	sbml.Node
	Species() string
	IsSetSpecies() bool
}

// speciesReferenceById looks up a species reference across all reactions.
func speciesReferenceById(m *sbml.Model, id string) *sbml.SpeciesReference {
	for _, r := range sbml.ItemsOf[*sbml.Reaction](m.Reactions()) {
		for _, l := range []*sbml.ListOf{r.Reactants(), r.Products()} {
			if sr, ok := l.GetById(id).(*sbml.SpeciesReference); ok {
				return sr
			}
		}
	}
	return nil
}

// isAssignable reports whether id names something a rule or an event
// assignment may change.
func isAssignable(ctx *Context, id string) bool {
	m := ctx.Model()
	if m.Compartment(id) != nil || m.SpeciesById(id) != nil || m.Parameter(id) != nil {
		return true
	}
	return m.Level() >= 3 && speciesReferenceById(m, id) != nil
}

func hasModel(ctx *Context) bool { return ctx.Model() != nil }

var referenceConstraints = NewConstraintSet("reference-consistency").MustAdd(
	Define(sbml.CodeInvalidOutsideRef, sbml.TypeCompartment, Spec[*sbml.Compartment]{
		Pre: []func(*Context, *sbml.Compartment) bool{
			func(ctx *Context, _ *sbml.Compartment) bool { return hasModel(ctx) },
			func(_ *Context, c *sbml.Compartment) bool { return c.IsSetOutside() },
		},
		Inv: func(ctx *Context, c *sbml.Compartment) bool {
			return ctx.Model().Compartment(c.Outside()) != nil
		},
		Message: func(_ *Context, c *sbml.Compartment) string {
			return fmt.Sprintf("outside '%s' of compartment '%s' is not a compartment", c.Outside(), c.Id())
		},
	}),

	Define(sbml.CodeInvalidSpeciesCompartment, sbml.TypeSpecies, Spec[*sbml.Species]{
		Pre: []func(*Context, *sbml.Species) bool{
			func(ctx *Context, _ *sbml.Species) bool { return hasModel(ctx) },
			func(_ *Context, sp *sbml.Species) bool { return sp.IsSetCompartment() },
		},
		Inv: func(ctx *Context, sp *sbml.Species) bool {
			return ctx.Model().Compartment(sp.Compartment()) != nil
		},
		Message: func(_ *Context, sp *sbml.Species) string {
			return fmt.Sprintf("compartment '%s' of species '%s' is not defined", sp.Compartment(), sp.Id())
		},
	}),

	Define(sbml.CodeInvalidRuleVariable, sbml.TypeUnknown, Spec[*sbml.Rule]{
		Pre: []func(*Context, *sbml.Rule) bool{
			func(ctx *Context, _ *sbml.Rule) bool { return hasModel(ctx) },
			func(_ *Context, r *sbml.Rule) bool { return !r.IsAlgebraic() && r.IsSetVariable() },
		},
		Inv: func(ctx *Context, r *sbml.Rule) bool { return isAssignable(ctx, r.Variable()) },
		Message: func(_ *Context, r *sbml.Rule) string {
			return fmt.Sprintf("variable '%s' of <%s> is not a compartment, species or parameter", r.Variable(), r.ElementName())
		},
	}),

	Define(sbml.CodeInvalidSpeciesReference, sbml.TypeUnknown, Spec[speciesReferrer]{
		Pre: []func(*Context, speciesReferrer) bool{
			func(ctx *Context, _ speciesReferrer) bool { return hasModel(ctx) },
			func(_ *Context, sr speciesReferrer) bool { return sr.IsSetSpecies() },
		},
		Inv: func(ctx *Context, sr speciesReferrer) bool {
			return ctx.Model().SpeciesById(sr.Species()) != nil
		},
		Message: func(_ *Context, sr speciesReferrer) string {
			return fmt.Sprintf("<%s> refers to undefined species '%s'", sr.ElementName(), sr.Species())
		},
	}),

	Define(sbml.CodeInvalidEventAssignVar, sbml.TypeEventAssignment, Spec[*sbml.EventAssignment]{
		Pre: []func(*Context, *sbml.EventAssignment) bool{
			func(ctx *Context, _ *sbml.EventAssignment) bool { return hasModel(ctx) },
			func(_ *Context, ea *sbml.EventAssignment) bool { return ea.IsSetVariable() },
		},
		Inv: func(ctx *Context, ea *sbml.EventAssignment) bool { return isAssignable(ctx, ea.Variable()) },
		Message: func(_ *Context, ea *sbml.EventAssignment) string {
			return fmt.Sprintf("variable '%s' of <eventAssignment> is not a compartment, species or parameter", ea.Variable())
		},
	}),
)

// NewReferenceConsistency reports attributes naming components that do not
// exist in the model.
func NewReferenceConsistency() *Validator {
	return New(sbml.CategoryReferenceConsistency, referenceConstraints)
}
