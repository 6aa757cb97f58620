package validator

import (
	"fmt"
	"strings"

	"github.com/GodYY/sbml"
)

var internalConstraints = NewConstraintSet("internal-consistency").MustAdd(
	Define(sbml.CodeMissingRequiredAttribute, sbml.TypeUnknown, Spec[sbml.Node]{
		Inv: func(_ *Context, n sbml.Node) bool { return n.HasRequiredAttributes() },
		Message: func(_ *Context, n sbml.Node) string {
			return fmt.Sprintf("<%s> is missing required attributes: %s",
				n.ElementName(), strings.Join(sbml.MissingAttributes(n), ", "))
		},
	}),

	Define(sbml.CodeMissingRequiredElement, sbml.TypeUnknown, Spec[sbml.Node]{
		Inv: func(_ *Context, n sbml.Node) bool { return n.HasRequiredElements() },
		Message: func(_ *Context, n sbml.Node) string {
			return fmt.Sprintf("<%s> is missing a required element", n.ElementName())
		},
	}),
)

// NewInternalConsistency checks that every node carries what its
// level/version requires. It catches trees built through the API that the
// reader would have rejected.
func NewInternalConsistency() *Validator {
	return New(sbml.CategoryInternalConsistency, internalConstraints)
}
