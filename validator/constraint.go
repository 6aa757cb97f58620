package validator

import (
	"fmt"

	"github.com/GodYY/gutils/assert"
	"github.com/GodYY/sbml"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Spec declares the logic of one constraint on nodes of type T.
//
// Every precondition must hold for the constraint to apply. When it applies
// it is violated if Inv is false, or, with InvOr, if every alternative is
// false. Inv and InvOr may be combined; both must pass.
type Spec[T sbml.Node] struct {
	Pre     []func(*Context, T) bool
	Inv     func(*Context, T) bool
	InvOr   []func(*Context, T) bool
	Message func(*Context, T) string
}

// Constraint is a numbered invariant bound to a kind of node.
type Constraint struct {
	ID int

	// Target restricts the constraint to one kind, TypeUnknown matches
	// every node of the declared Go type.
	Target sbml.TypeCode

	Severity sbml.Severity

	check func(*Context, sbml.Node) (bool, string)
}

// Define builds a constraint of severity error.
func Define[T sbml.Node](id int, target sbml.TypeCode, spec Spec[T]) *Constraint {
	assert.Assert(spec.Inv != nil || len(spec.InvOr) > 0, "constraint without invariant")

	check := func(ctx *Context, n sbml.Node) (bool, string) {
		t, ok := n.(T)
		if !ok {
			return false, ""
		}

		for _, pre := range spec.Pre {
			if !pre(ctx, t) {
				return false, ""
			}
		}

		violated := spec.Inv != nil && !spec.Inv(ctx, t)
		if !violated && len(spec.InvOr) > 0 {
			violated = true
			for _, alt := range spec.InvOr {
				if alt(ctx, t) {
					violated = false
					break
				}
			}
		}

		if !violated {
			return false, ""
		}

		if spec.Message != nil {
			return true, spec.Message(ctx, t)
		}
		return true, defaultMessage(id, n)
	}

	return &Constraint{
		ID:       id,
		Target:   target,
		Severity: sbml.SeverityError,
		check:    check,
	}
}

// WithSeverity changes the declared severity of c and returns c.
func (c *Constraint) WithSeverity(sev sbml.Severity) *Constraint {
	c.Severity = sev
	return c
}

func defaultMessage(id int, n sbml.Node) string {
	if n.IsSetId() {
		return fmt.Sprintf("<%s> '%s' fails constraint %d", n.ElementName(), n.Id(), id)
	}
	return fmt.Sprintf("<%s> fails constraint %d", n.ElementName(), id)
}

// Indexer looks at every node before any constraint runs.
type Indexer func(*Context, sbml.Node)

// ConstraintSet is a named group of constraints with unique ids and the
// indexers their invariants depend on.
type ConstraintSet struct {
	name        string
	constraints []*Constraint
	indexers    []Indexer
}

func NewConstraintSet(name string) *ConstraintSet {
	return &ConstraintSet{name: name}
}

func (s *ConstraintSet) Name() string { return s.name }

// Add registers c. Ids are unique within a set.
func (s *ConstraintSet) Add(c *Constraint) error {
	if c == nil {
		return errors.New("nil constraint")
	}
	for _, o := range s.constraints {
		if o.ID == c.ID {
			return errors.Errorf("constraint %d registered in %s", c.ID, s.name)
		}
	}
	s.constraints = append(s.constraints, c)
	return nil
}

// MustAdd registers cs and panics on duplicate ids.
func (s *ConstraintSet) MustAdd(cs ...*Constraint) *ConstraintSet {
	for _, c := range cs {
		err := s.Add(c)
		assert.AssertF(err == nil, "%v", err)
	}
	return s
}

func (s *ConstraintSet) AddIndexer(ix Indexer) *ConstraintSet {
	assert.Assert(ix != nil, "indexer nil")
	s.indexers = append(s.indexers, ix)
	return s
}

func (s *ConstraintSet) Len() int { return len(s.constraints) }

// IDs returns the registered constraint ids, sorted.
func (s *ConstraintSet) IDs() []int {
	ids := make([]int, 0, len(s.constraints))
	for _, c := range s.constraints {
		ids = append(ids, c.ID)
	}
	slices.Sort(ids)
	return ids
}
