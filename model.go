package sbml

// Model holds the components of one model in schema order.
type Model struct {
	sbase

	substanceUnits   string
	timeUnits        string
	volumeUnits      string
	areaUnits        string
	lengthUnits      string
	extentUnits      string
	conversionFactor string

	compartments *ListOf
	species      *ListOf
	parameters   *ListOf
	rules        *ListOf
	reactions    *ListOf
	events       *ListOf
}

var modelSchema = &ElementSchema{
	Name: "model",
	Attributes: append(sbaseAttributes(false),
		AttributeSpec{Name: "substanceUnits", Since: L3V1},
		AttributeSpec{Name: "timeUnits", Since: L3V1},
		AttributeSpec{Name: "volumeUnits", Since: L3V1},
		AttributeSpec{Name: "areaUnits", Since: L3V1},
		AttributeSpec{Name: "lengthUnits", Since: L3V1},
		AttributeSpec{Name: "extentUnits", Since: L3V1},
		AttributeSpec{Name: "conversionFactor", Since: L3V1},
	),
	Children: []ChildSpec{
		{Name: "listOfCompartments"},
		{Name: "listOfSpecies"},
		{Name: "listOfParameters"},
		{Name: "listOfRules"},
		{Name: "listOfReactions"},
		{Name: "listOfEvents", Since: L2V1},
	},
}

func init() {
	registerType(TypeModel, modelSchema, func(ns *Namespaces) Node { return newModel(ns) })
}

func NewModel(level, version uint) (*Model, error) {
	ns, err := namespacesFor(TypeModel, level, version)
	if err != nil {
		return nil, err
	}
	return newModel(ns), nil
}

func NewModelWithNamespaces(ns *Namespaces) (*Model, error) {
	if err := checkConstruct(TypeModel, ns); err != nil {
		return nil, err
	}
	return newModel(ns.Clone()), nil
}

func newModel(ns *Namespaces) *Model {
	m := &Model{}
	m.sbase = newSBase(m, ns)
	m.compartments = newListOf(ns.Clone(), "listOfCompartments", TypeCompartment)
	m.species = newListOf(ns.Clone(), "listOfSpecies", TypeSpecies)
	m.parameters = newListOf(ns.Clone(), "listOfParameters", TypeParameter)
	m.rules = newListOf(ns.Clone(), "listOfRules", TypeAssignmentRule)
	m.reactions = newListOf(ns.Clone(), "listOfReactions", TypeReaction)
	m.events = newListOf(ns.Clone(), "listOfEvents", TypeEvent)
	m.adoptLists()
	return m
}

func (m *Model) lists() []*ListOf {
	return []*ListOf{m.compartments, m.species, m.parameters, m.rules, m.reactions, m.events}
}

func (m *Model) adoptLists() {
	for _, l := range m.lists() {
		m.adopt(l)
	}
}

func (m *Model) TypeCode() TypeCode { return TypeModel }

func (m *Model) unitsAttr(attr string, dst *string) func(string) Status {
	return func(v string) Status { return m.setSIdRef(attr, dst, v) }
}

func (m *Model) SubstanceUnits() string   { return m.substanceUnits }
func (m *Model) TimeUnits() string        { return m.timeUnits }
func (m *Model) VolumeUnits() string      { return m.volumeUnits }
func (m *Model) AreaUnits() string        { return m.areaUnits }
func (m *Model) LengthUnits() string      { return m.lengthUnits }
func (m *Model) ExtentUnits() string      { return m.extentUnits }
func (m *Model) ConversionFactor() string { return m.conversionFactor }

func (m *Model) SetSubstanceUnits(v string) Status {
	return m.unitsAttr("substanceUnits", &m.substanceUnits)(v)
}

func (m *Model) SetTimeUnits(v string) Status { return m.unitsAttr("timeUnits", &m.timeUnits)(v) }

func (m *Model) SetVolumeUnits(v string) Status {
	return m.unitsAttr("volumeUnits", &m.volumeUnits)(v)
}

func (m *Model) SetAreaUnits(v string) Status { return m.unitsAttr("areaUnits", &m.areaUnits)(v) }

func (m *Model) SetLengthUnits(v string) Status {
	return m.unitsAttr("lengthUnits", &m.lengthUnits)(v)
}

func (m *Model) SetExtentUnits(v string) Status {
	return m.unitsAttr("extentUnits", &m.extentUnits)(v)
}

func (m *Model) SetConversionFactor(v string) Status {
	return m.setSIdRef("conversionFactor", &m.conversionFactor, v)
}

func (m *Model) Compartments() *ListOf { return m.compartments }
func (m *Model) Species() *ListOf      { return m.species }
func (m *Model) Parameters() *ListOf   { return m.parameters }
func (m *Model) Rules() *ListOf        { return m.rules }
func (m *Model) Reactions() *ListOf    { return m.reactions }
func (m *Model) Events() *ListOf       { return m.events }

func (m *Model) NumCompartments() int { return m.compartments.Size() }
func (m *Model) NumSpecies() int      { return m.species.Size() }
func (m *Model) NumParameters() int   { return m.parameters.Size() }
func (m *Model) NumRules() int        { return m.rules.Size() }
func (m *Model) NumReactions() int    { return m.reactions.Size() }
func (m *Model) NumEvents() int       { return m.events.Size() }

func (m *Model) Compartment(id string) *Compartment {
	c, _ := m.compartments.GetById(id).(*Compartment)
	return c
}

func (m *Model) SpeciesById(id string) *Species {
	s, _ := m.species.GetById(id).(*Species)
	return s
}

func (m *Model) Parameter(id string) *Parameter {
	p, _ := m.parameters.GetById(id).(*Parameter)
	return p
}

func (m *Model) Reaction(id string) *Reaction {
	r, _ := m.reactions.GetById(id).(*Reaction)
	return r
}

func (m *Model) Event(id string) *Event {
	e, _ := m.events.GetById(id).(*Event)
	return e
}

// RuleFor returns the rule determining variable.
func (m *Model) RuleFor(variable string) *Rule {
	for _, r := range ItemsOf[*Rule](m.rules) {
		if r.variable != "" && r.variable == variable {
			return r
		}
	}
	return nil
}

func (m *Model) create(l *ListOf, tc TypeCode) Node {
	item, err := NewNode(tc, m.ns)
	if err != nil {
		return nil
	}
	if !l.AppendAndOwn(item).OK() {
		return nil
	}
	return item
}

func (m *Model) CreateCompartment() *Compartment {
	c, _ := m.create(m.compartments, TypeCompartment).(*Compartment)
	return c
}

func (m *Model) CreateSpecies() *Species {
	s, _ := m.create(m.species, TypeSpecies).(*Species)
	return s
}

func (m *Model) CreateParameter() *Parameter {
	p, _ := m.create(m.parameters, TypeParameter).(*Parameter)
	return p
}

// CreateAssignmentRule appends an empty assignment rule. Level 1 spells
// it after the kind of its variable.
func (m *Model) CreateAssignmentRule() *Rule {
	r, _ := m.create(m.rules, TypeAssignmentRule).(*Rule)
	return r
}

func (m *Model) CreateRateRule() *Rule {
	r, _ := m.create(m.rules, TypeRateRule).(*Rule)
	return r
}

func (m *Model) CreateAlgebraicRule() *Rule {
	r, _ := m.create(m.rules, TypeAlgebraicRule).(*Rule)
	return r
}

func (m *Model) CreateReaction() *Reaction {
	r, _ := m.create(m.reactions, TypeReaction).(*Reaction)
	return r
}

func (m *Model) CreateEvent() *Event {
	e, _ := m.create(m.events, TypeEvent).(*Event)
	return e
}

func (m *Model) add(l *ListOf, n Node) Status {
	if n == nil {
		return InvalidObject
	}
	return l.Append(n)
}

// AddCompartment stores a copy of c. The other Add methods behave alike.
func (m *Model) AddCompartment(c *Compartment) Status { return m.add(m.compartments, nodeOrNil(c)) }
func (m *Model) AddSpecies(s *Species) Status         { return m.add(m.species, nodeOrNil(s)) }
func (m *Model) AddParameter(p *Parameter) Status     { return m.add(m.parameters, nodeOrNil(p)) }
func (m *Model) AddRule(r *Rule) Status               { return m.add(m.rules, nodeOrNil(r)) }
func (m *Model) AddReaction(r *Reaction) Status       { return m.add(m.reactions, nodeOrNil(r)) }
func (m *Model) AddEvent(e *Event) Status             { return m.add(m.events, nodeOrNil(e)) }

// nodeOrNil keeps a nil pointer from turning into a non-nil Node.
func nodeOrNil[T Node](n T) Node {
	var zero T
	if any(n) == any(zero) {
		return nil
	}
	return n
}

func (m *Model) Accept(v Visitor) bool {
	if v.VisitModel(m) {
		for _, l := range m.lists() {
			if m.schema().ChildOrder(l.ElementName(), m.LevelVersion()) >= 0 {
				l.Accept(v)
			}
		}
	}
	v.LeaveModel(m)
	return true
}

func (m *Model) Clone() Node { return m.clone() }

func (m *Model) clone() *Model {
	c := new(Model)
	*c = *m
	c.sbase = m.cloneFor(c)
	c.compartments = m.compartments.clone()
	c.species = m.species.clone()
	c.parameters = m.parameters.clone()
	c.rules = m.rules.clone()
	c.reactions = m.reactions.clone()
	c.events = m.events.clone()
	c.adoptLists()
	return c
}

func (m *Model) children() []Node {
	lists := m.lists()
	nodes := make([]Node, len(lists))
	for i, l := range lists {
		nodes[i] = l
	}
	return nodes
}

func (m *Model) unitAttrs() []struct {
	name string
	ref  *string
} {
	return []struct {
		name string
		ref  *string
	}{
		{"substanceUnits", &m.substanceUnits},
		{"timeUnits", &m.timeUnits},
		{"volumeUnits", &m.volumeUnits},
		{"areaUnits", &m.areaUnits},
		{"lengthUnits", &m.lengthUnits},
		{"extentUnits", &m.extentUnits},
		{"conversionFactor", &m.conversionFactor},
	}
}

func (m *Model) isSetAttribute(name string) bool {
	for _, a := range m.unitAttrs() {
		if a.name == name {
			return *a.ref != ""
		}
	}
	return m.sbase.isSetAttribute(name)
}

func (m *Model) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	m.sbase.readAttributes(s, t, ea)
	for _, a := range m.unitAttrs() {
		m.readAttrSIdRef(s, t, ea, a.name, a.ref)
	}
}

func (m *Model) writeAttributes(o *XMLOutputStream) {
	m.sbase.writeAttributes(o)
	for _, a := range m.unitAttrs() {
		if *a.ref != "" {
			m.writeLegal(o, a.name, *a.ref)
		}
	}
}

func (m *Model) listNamed(name string) *ListOf {
	for _, l := range m.lists() {
		if l.ElementName() == name {
			return l
		}
	}
	return nil
}

// createObject hands back the list an element names and reports lists
// out of schema order.
func (m *Model) createObject(s *XMLInputStream, t XMLToken) Node {
	l := m.listNamed(t.Name)
	if l == nil {
		return nil
	}

	lv := m.LevelVersion()
	order := m.schema().ChildOrder(t.Name, lv)
	for _, other := range m.lists() {
		if other.Line() != 0 && m.schema().ChildOrder(other.ElementName(), lv) > order && order >= 0 {
			m.logf(s, CodeIncorrectOrderInModel, SeverityError, t.Line, t.Column,
				"<%s> appears after <%s>, out of the order required in <model>", t.Name, other.ElementName())
			break
		}
	}

	return readListSlot(&m.sbase, s, t, l)
}

func (m *Model) writeElements(o *XMLOutputStream) {
	lv := m.LevelVersion()
	for _, l := range m.lists() {
		if l.isSetForWrite() && m.schema().ChildOrder(l.ElementName(), lv) >= 0 {
			l.Write(o)
		}
	}
}
