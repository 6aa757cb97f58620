package validator

import (
	"github.com/GodYY/sbml"
	"golang.org/x/exp/slices"
)

// Options selects the validators CheckConsistency runs.
type Options struct {
	Categories []sbml.Category
}

// DefaultOptions enables every category but internal consistency.
func DefaultOptions() Options {
	return Options{Categories: []sbml.Category{
		sbml.CategoryIdentifierConsistency,
		sbml.CategoryReferenceConsistency,
		sbml.CategoryGeneralConsistency,
		sbml.CategoryModelingPractice,
	}}
}

// OptionsFromConfig returns the options of cfg, the defaults when cfg names
// no category.
func OptionsFromConfig(cfg *sbml.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	cats := cfg.CategoryList()
	if len(cats) == 0 {
		return DefaultOptions()
	}
	return Options{Categories: cats}
}

func (o Options) Enabled(cat sbml.Category) bool { return slices.Contains(o.Categories, cat) }

var validatorCreators = []struct {
	category sbml.Category
	create   func() *Validator
}{
	{sbml.CategoryIdentifierConsistency, NewIdentifierConsistency},
	{sbml.CategoryReferenceConsistency, NewReferenceConsistency},
	{sbml.CategoryGeneralConsistency, NewGeneralConsistency},
	{sbml.CategoryModelingPractice, NewModelingPractice},
	{sbml.CategoryInternalConsistency, NewInternalConsistency},
}

// CheckConsistency runs the enabled validators on doc in a fixed order and
// returns the number of violations, warnings included.
func CheckConsistency(doc *sbml.Document, opts Options) int {
	n := 0
	for _, vc := range validatorCreators {
		if opts.Enabled(vc.category) {
			n += vc.create().Validate(doc)
		}
	}
	return n
}

func CheckInternalConsistency(doc *sbml.Document) int {
	return NewInternalConsistency().Validate(doc)
}
