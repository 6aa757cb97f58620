package validator

import (
	"fmt"

	"github.com/GodYY/sbml"
)

// State of a Validator.
type State int8

const (
	StateRegistered = State(iota)
	StateInitialized
	StateRunning
	StateReset
	StateDone
)

var stateStrings = [...]string{
	StateRegistered:  "registered",
	StateInitialized: "initialized",
	StateRunning:     "running",
	StateReset:       "reset",
	StateDone:        "done",
}

func (s State) String() string { return stateStrings[s] }

// Validator applies constraint sets to documents. Diagnostics carry the
// validator's category.
type Validator struct {
	category sbml.Category
	sets     []*ConstraintSet
	state    State

	// per kind buckets, filled by Init
	byType   map[sbml.TypeCode][]*Constraint
	anyType  []*Constraint
	indexers []Indexer

	ctx      *Context
	failures []sbml.Diagnostic
}

// New creates a validator over sets. Constraints are bucketed by Init.
func New(category sbml.Category, sets ...*ConstraintSet) *Validator {
	return &Validator{
		category: category,
		sets:     sets,
		state:    StateRegistered,
	}
}

func (v *Validator) Category() sbml.Category { return v.category }
func (v *Validator) State() State            { return v.state }

// Init loads the constraints into their buckets. Further calls do nothing.
func (v *Validator) Init() {
	if v.state != StateRegistered {
		return
	}

	v.byType = map[sbml.TypeCode][]*Constraint{}
	for _, set := range v.sets {
		for _, c := range set.constraints {
			if c.Target == sbml.TypeUnknown {
				v.anyType = append(v.anyType, c)
			} else {
				v.byType[c.Target] = append(v.byType[c.Target], c)
			}
		}
		v.indexers = append(v.indexers, set.indexers...)
	}

	v.state = StateInitialized
}

// Validate runs the index pass then the check pass over doc. Each
// violation is appended to the error log of doc. It returns the number of
// violations found.
func (v *Validator) Validate(doc *sbml.Document) int {
	if doc == nil {
		return 0
	}

	v.Init()

	v.state = StateReset
	v.ctx = newContext(doc)
	v.failures = nil

	v.state = StateRunning
	if len(v.indexers) > 0 {
		sbml.Walk(doc, func(n sbml.Node) bool {
			for _, ix := range v.indexers {
				ix(v.ctx, n)
			}
			return true
		})
	}
	doc.Accept(&dispatcher{v: v})

	v.state = StateDone
	v.ctx = nil

	sbml.Logger().Debug().
		Str("category", v.category.String()).
		Int("failures", len(v.failures)).
		Msg("validate")

	return len(v.failures)
}

// Failures returns the diagnostics of the last pass.
func (v *Validator) Failures() []sbml.Diagnostic {
	return append([]sbml.Diagnostic(nil), v.failures...)
}

func (v *Validator) apply(n sbml.Node) {
	for _, c := range v.byType[n.TypeCode()] {
		v.run(c, n)
	}
	for _, c := range v.anyType {
		v.run(c, n)
	}
}

func (v *Validator) run(c *Constraint, n sbml.Node) {
	defer func() {
		if r := recover(); r != nil {
			v.report(sbml.Diagnostic{
				Code:     c.ID,
				Severity: sbml.SeverityError,
				Category: sbml.CategoryInternalConsistency,
				Line:     n.Line(),
				Column:   n.Column(),
				Message:  fmt.Sprintf("constraint %d could not be evaluated on <%s>: %v", c.ID, n.ElementName(), r),
			})
		}
	}()

	violated, msg := c.check(v.ctx, n)
	if !violated {
		return
	}

	v.report(sbml.Diagnostic{
		Code:     c.ID,
		Severity: c.Severity,
		Category: v.category,
		Line:     n.Line(),
		Column:   n.Column(),
		Message:  msg,
	})
}

func (v *Validator) report(d sbml.Diagnostic) {
	v.failures = append(v.failures, d)
	v.ctx.doc.ErrorLog().Add(d)
}

// dispatcher hands every visited node to the validator.
type dispatcher struct {
	sbml.BaseVisitor
	v *Validator
}

func (d *dispatcher) visit(n sbml.Node) bool {
	d.v.apply(n)
	return true
}

func (d *dispatcher) VisitDocument(n *sbml.Document)            { d.visit(n) }
func (d *dispatcher) VisitListOf(n *sbml.ListOf)                { d.visit(n) }
func (d *dispatcher) VisitModel(n *sbml.Model) bool             { return d.visit(n) }
func (d *dispatcher) VisitCompartment(n *sbml.Compartment) bool { return d.visit(n) }
func (d *dispatcher) VisitSpecies(n *sbml.Species) bool         { return d.visit(n) }
func (d *dispatcher) VisitParameter(n *sbml.Parameter) bool     { return d.visit(n) }
func (d *dispatcher) VisitRule(n *sbml.Rule) bool               { return d.visit(n) }
func (d *dispatcher) VisitReaction(n *sbml.Reaction) bool       { return d.visit(n) }
func (d *dispatcher) VisitEvent(n *sbml.Event) bool             { return d.visit(n) }
func (d *dispatcher) VisitEventAssignment(n *sbml.EventAssignment) bool {
	return d.visit(n)
}
func (d *dispatcher) VisitSpeciesReference(n *sbml.SpeciesReference) bool {
	return d.visit(n)
}
func (d *dispatcher) VisitModifierSpeciesReference(n *sbml.ModifierSpeciesReference) bool {
	return d.visit(n)
}
