package validator

import (
	"fmt"

	"github.com/GodYY/sbml"
)

// Identifiers share one scope per document: every SId below the document,
// and every metaid including the document's own.
func indexIdentifiers(ctx *Context, n sbml.Node) {
	if n.IsSetId() && n.TypeCode() != sbml.TypeDocument {
		ctx.DeclareSId(n.Id(), n)
	}
	if n.IsSetMetaId() {
		ctx.DeclareMetaId(n.MetaId(), n)
	}
}

func conflictMessage(kind, id string, n, first sbml.Node) string {
	return fmt.Sprintf("%s '%s' of <%s> is already used by the <%s> at line %d",
		kind, id, n.ElementName(), first.ElementName(), first.Line())
}

var identifierConstraints = NewConstraintSet("identifier-consistency").
	AddIndexer(indexIdentifiers).
	MustAdd(
		Define(sbml.CodeDuplicateComponentID, sbml.TypeUnknown, Spec[sbml.Node]{
			Pre: []func(*Context, sbml.Node) bool{
				func(_ *Context, n sbml.Node) bool { return n.IsSetId() },
				func(_ *Context, n sbml.Node) bool { return n.TypeCode() != sbml.TypeDocument },
			},
			Inv: func(ctx *Context, n sbml.Node) bool { return ctx.SIdOwner(n.Id()) == n },
			Message: func(ctx *Context, n sbml.Node) string {
				return conflictMessage("identifier", n.Id(), n, ctx.SIdOwner(n.Id()))
			},
		}),

		Define(sbml.CodeDuplicateMetaID, sbml.TypeUnknown, Spec[sbml.Node]{
			Pre: []func(*Context, sbml.Node) bool{
				func(_ *Context, n sbml.Node) bool { return n.IsSetMetaId() },
			},
			Inv: func(ctx *Context, n sbml.Node) bool { return ctx.MetaIdOwner(n.MetaId()) == n },
			Message: func(ctx *Context, n sbml.Node) string {
				return conflictMessage("metaid", n.MetaId(), n, ctx.MetaIdOwner(n.MetaId()))
			},
		}),
	)

// NewIdentifierConsistency reports duplicate identifiers and metaids. Only
// the second and later holders of a value are reported.
func NewIdentifierConsistency() *Validator {
	return New(sbml.CategoryIdentifierConsistency, identifierConstraints)
}
