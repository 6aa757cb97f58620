package sbml

// Visitor is a traversal over the model tree. A VisitX method returning
// false prunes the subtree of that node only; structural kinds are always
// descended into.
type Visitor interface {
	VisitDocument(*Document)
	VisitListOf(*ListOf)
	VisitModel(*Model) bool
	VisitCompartment(*Compartment) bool
	VisitSpecies(*Species) bool
	VisitParameter(*Parameter) bool
	VisitRule(*Rule) bool
	VisitReaction(*Reaction) bool
	VisitSpeciesReference(*SpeciesReference) bool
	VisitModifierSpeciesReference(*ModifierSpeciesReference) bool
	VisitEvent(*Event) bool
	VisitEventAssignment(*EventAssignment) bool

	LeaveDocument(*Document)
	LeaveModel(*Model)
	LeaveListOf(*ListOf)
	LeaveReaction(*Reaction)
	LeaveEvent(*Event)
}

// BaseVisitor visits everything and does nothing. Embed it and override
// the kinds of interest.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*Document)                                      {}
func (BaseVisitor) VisitListOf(*ListOf)                                          {}
func (BaseVisitor) VisitModel(*Model) bool                                       { return true }
func (BaseVisitor) VisitCompartment(*Compartment) bool                           { return true }
func (BaseVisitor) VisitSpecies(*Species) bool                                   { return true }
func (BaseVisitor) VisitParameter(*Parameter) bool                               { return true }
func (BaseVisitor) VisitRule(*Rule) bool                                         { return true }
func (BaseVisitor) VisitReaction(*Reaction) bool                                 { return true }
func (BaseVisitor) VisitSpeciesReference(*SpeciesReference) bool                 { return true }
func (BaseVisitor) VisitModifierSpeciesReference(*ModifierSpeciesReference) bool { return true }
func (BaseVisitor) VisitEvent(*Event) bool                                       { return true }
func (BaseVisitor) VisitEventAssignment(*EventAssignment) bool                   { return true }
func (BaseVisitor) LeaveDocument(*Document)                                      {}
func (BaseVisitor) LeaveModel(*Model)                                            {}
func (BaseVisitor) LeaveListOf(*ListOf)                                          {}
func (BaseVisitor) LeaveReaction(*Reaction)                                      {}
func (BaseVisitor) LeaveEvent(*Event)                                            {}

// Walk calls fn on root and its descendants in pre-order. fn returning
// false skips the children of that node.
func Walk(root Node, fn func(Node) bool) {
	WalkDepth(root, func(n Node, _ int) bool { return fn(n) })
}

// WalkDepth is Walk with the depth of each node below root, root being 0.
func WalkDepth(root Node, fn func(n Node, depth int) bool) {
	if root == nil {
		return
	}

	stack := &nodeStack{}
	stack.push(root, 0)
	for !stack.empty() {
		f := stack.pop()
		if fn(f.node, f.depth) {
			stack.pushChildren(f)
		}
	}
}

type elementCollector struct {
	BaseVisitor
	filter func(Node) bool
	result []Node
}

func (c *elementCollector) collect(n Node) bool {
	if c.filter == nil || c.filter(n) {
		c.result = append(c.result, n)
	}
	return true
}

func (c *elementCollector) VisitListOf(l *ListOf)                { c.collect(l) }
func (c *elementCollector) VisitModel(m *Model) bool             { return c.collect(m) }
func (c *elementCollector) VisitCompartment(n *Compartment) bool { return c.collect(n) }
func (c *elementCollector) VisitSpecies(n *Species) bool         { return c.collect(n) }
func (c *elementCollector) VisitParameter(n *Parameter) bool     { return c.collect(n) }
func (c *elementCollector) VisitRule(n *Rule) bool               { return c.collect(n) }
func (c *elementCollector) VisitReaction(n *Reaction) bool       { return c.collect(n) }
func (c *elementCollector) VisitEvent(n *Event) bool             { return c.collect(n) }
func (c *elementCollector) VisitEventAssignment(n *EventAssignment) bool {
	return c.collect(n)
}
func (c *elementCollector) VisitSpeciesReference(n *SpeciesReference) bool {
	return c.collect(n)
}
func (c *elementCollector) VisitModifierSpeciesReference(n *ModifierSpeciesReference) bool {
	return c.collect(n)
}

// AllElements returns every node below the document, in document order,
// for which filter is true. A nil filter selects everything.
func (d *Document) AllElements(filter func(Node) bool) []Node {
	c := &elementCollector{filter: filter}
	d.Accept(c)
	return c.result
}

// sidRenamer rewrites SId references. Math is opaque and left alone.
type sidRenamer struct {
	BaseVisitor
	from, to string
	count    int
}

func (r *sidRenamer) rename(ref *string) {
	if *ref == r.from {
		*ref = r.to
		r.count++
	}
}

func (r *sidRenamer) VisitModel(m *Model) bool {
	for _, a := range m.unitAttrs() {
		r.rename(a.ref)
	}
	return true
}

func (r *sidRenamer) VisitCompartment(c *Compartment) bool {
	r.rename(&c.outside)
	r.rename(&c.units)
	return true
}

func (r *sidRenamer) VisitSpecies(s *Species) bool {
	r.rename(&s.compartment)
	r.rename(&s.substanceUnits)
	r.rename(&s.conversionFactor)
	return true
}

func (r *sidRenamer) VisitParameter(p *Parameter) bool {
	r.rename(&p.units)
	return true
}

func (r *sidRenamer) VisitRule(rule *Rule) bool {
	r.rename(&rule.variable)
	r.rename(&rule.units)
	return true
}

func (r *sidRenamer) VisitReaction(rx *Reaction) bool {
	r.rename(&rx.compartment)
	return true
}

func (r *sidRenamer) VisitSpeciesReference(sr *SpeciesReference) bool {
	r.rename(&sr.species)
	return true
}

func (r *sidRenamer) VisitModifierSpeciesReference(sr *ModifierSpeciesReference) bool {
	r.rename(&sr.species)
	return true
}

func (r *sidRenamer) VisitEventAssignment(ea *EventAssignment) bool {
	r.rename(&ea.variable)
	return true
}

// RenameSIdRefs replaces every attribute reference to the identifier from
// by to and returns the number of references changed. Identifiers
// themselves are not renamed.
func (d *Document) RenameSIdRefs(from, to string) int {
	if from == "" || from == to || !IsValidSId(to) {
		return 0
	}

	r := &sidRenamer{from: from, to: to}
	d.Accept(r)
	return r.count
}
