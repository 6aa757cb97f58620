package sbml

// Event is a discontinuous change of model variables fired by a trigger.
// Trigger, delay and priority are carried as opaque XML.
type Event struct {
	sbase

	useValuesFromTriggerTime      bool
	isSetUseValuesFromTriggerTime bool

	trigger     *XMLNode
	delay       *XMLNode
	priority    *XMLNode
	assignments *ListOf
}

var eventSchema = &ElementSchema{
	Name:  "event",
	Since: L2V1,
	Attributes: append(sbaseOptionalId(L2V1),
		AttributeSpec{Name: "useValuesFromTriggerTime", Since: L2V4, Required: requiredFrom(L3V1)},
	),
	Children: []ChildSpec{
		{Name: "trigger"},
		{Name: "priority", Since: L3V1},
		{Name: "delay"},
		{Name: "listOfEventAssignments"},
	},
}

func init() {
	registerType(TypeEvent, eventSchema, func(ns *Namespaces) Node { return newEvent(ns) })
}

func NewEvent(level, version uint) (*Event, error) {
	ns, err := namespacesFor(TypeEvent, level, version)
	if err != nil {
		return nil, err
	}
	return newEvent(ns), nil
}

func NewEventWithNamespaces(ns *Namespaces) (*Event, error) {
	if err := checkConstruct(TypeEvent, ns); err != nil {
		return nil, err
	}
	return newEvent(ns.Clone()), nil
}

func newEvent(ns *Namespaces) *Event {
	e := &Event{}
	e.sbase = newSBase(e, ns)
	e.assignments = newListOf(ns.Clone(), "listOfEventAssignments", TypeEventAssignment)
	e.adopt(e.assignments)
	return e
}

func (e *Event) TypeCode() TypeCode { return TypeEvent }

// UseValuesFromTriggerTime defaults to true where the attribute is
// optional.
func (e *Event) UseValuesFromTriggerTime() bool {
	if !e.isSetUseValuesFromTriggerTime {
		return true
	}
	return e.useValuesFromTriggerTime
}

func (e *Event) IsSetUseValuesFromTriggerTime() bool { return e.isSetUseValuesFromTriggerTime }

func (e *Event) SetUseValuesFromTriggerTime(v bool) Status {
	return e.setBool("useValuesFromTriggerTime", &e.useValuesFromTriggerTime, &e.isSetUseValuesFromTriggerTime, v)
}

func (e *Event) Trigger() *XMLNode            { return e.trigger }
func (e *Event) IsSetTrigger() bool           { return e.trigger != nil }
func (e *Event) SetTrigger(n *XMLNode) Status { return setOpaque(n, "trigger", &e.trigger) }
func (e *Event) UnsetTrigger() Status         { e.trigger = nil; return OperationSuccess }

func (e *Event) Delay() *XMLNode            { return e.delay }
func (e *Event) IsSetDelay() bool           { return e.delay != nil }
func (e *Event) SetDelay(n *XMLNode) Status { return setOpaque(n, "delay", &e.delay) }
func (e *Event) UnsetDelay() Status         { e.delay = nil; return OperationSuccess }

func (e *Event) Priority() *XMLNode  { return e.priority }
func (e *Event) IsSetPriority() bool { return e.priority != nil }

func (e *Event) SetPriority(n *XMLNode) Status {
	if e.schema().ChildOrder("priority", e.LevelVersion()) < 0 {
		return UnexpectedAttribute
	}
	return setOpaque(n, "priority", &e.priority)
}

func (e *Event) EventAssignments() *ListOf { return e.assignments }
func (e *Event) NumEventAssignments() int  { return e.assignments.Size() }

func (e *Event) EventAssignment(n int) *EventAssignment {
	ea, _ := GetAs[*EventAssignment](e.assignments, n)
	return ea
}

// EventAssignmentFor returns the assignment to variable.
func (e *Event) EventAssignmentFor(variable string) *EventAssignment {
	for _, ea := range ItemsOf[*EventAssignment](e.assignments) {
		if ea.variable == variable {
			return ea
		}
	}
	return nil
}

// AddEventAssignment stores a copy of ea.
func (e *Event) AddEventAssignment(ea *EventAssignment) Status {
	if ea == nil {
		return InvalidObject
	}
	return e.assignments.Append(ea)
}

// CreateEventAssignment appends a new assignment and returns it.
func (e *Event) CreateEventAssignment() *EventAssignment {
	ea := newEventAssignment(e.ns.Clone())
	if !e.assignments.AppendAndOwn(ea).OK() {
		return nil
	}
	return ea
}

func (e *Event) Accept(v Visitor) bool {
	if v.VisitEvent(e) {
		e.assignments.Accept(v)
	}
	v.LeaveEvent(e)
	return true
}

func (e *Event) Clone() Node {
	c := new(Event)
	*c = *e
	c.sbase = e.cloneFor(c)
	c.trigger = e.trigger.Clone()
	c.delay = e.delay.Clone()
	c.priority = e.priority.Clone()
	c.assignments = e.assignments.clone()
	c.adopt(c.assignments)
	return c
}

// HasRequiredElements reports whether the trigger and the assignments are
// present where the level demands them.
func (e *Event) HasRequiredElements() bool {
	lv := e.LevelVersion()
	if e.trigger == nil && lv.Before(L3V2) {
		return false
	}
	return e.assignments.Size() > 0 || lv.AtLeast(L3V1)
}

func (e *Event) children() []Node { return []Node{e.assignments} }

func (e *Event) isSetAttribute(name string) bool {
	if name == "useValuesFromTriggerTime" {
		return e.isSetUseValuesFromTriggerTime
	}
	return e.sbase.isSetAttribute(name)
}

func (e *Event) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	e.sbase.readAttributes(s, t, ea)
	e.isSetUseValuesFromTriggerTime = e.readAttrBool(s, t, ea, "useValuesFromTriggerTime", &e.useValuesFromTriggerTime)
}

func (e *Event) writeAttributes(o *XMLOutputStream) {
	e.sbase.writeAttributes(o)
	if e.isSetUseValuesFromTriggerTime {
		e.writeLegalBool(o, "useValuesFromTriggerTime", e.useValuesFromTriggerTime)
	}
}

func (e *Event) createObject(s *XMLInputStream, t XMLToken) Node {
	if t.Name != "listOfEventAssignments" {
		return nil
	}
	return readListSlot(&e.sbase, s, t, e.assignments)
}

func (e *Event) readOtherXML(s *XMLInputStream, t XMLToken) bool {
	switch t.Name {
	case "trigger":
		return readOpaque(s, t, "trigger", e.ns, &e.trigger)
	case "delay":
		return readOpaque(s, t, "delay", e.ns, &e.delay)
	case "priority":
		if e.schema().ChildOrder("priority", e.LevelVersion()) < 0 {
			return false
		}
		return readOpaque(s, t, "priority", e.ns, &e.priority)
	}
	return false
}

func (e *Event) writeElements(o *XMLOutputStream) {
	o.WriteXMLNode(e.trigger)
	if e.schema().ChildOrder("priority", e.LevelVersion()) >= 0 {
		o.WriteXMLNode(e.priority)
	}
	o.WriteXMLNode(e.delay)
	if e.assignments.isSetForWrite() {
		e.assignments.Write(o)
	}
}

// EventAssignment sets one variable when its event fires.
type EventAssignment struct {
	sbase
	mathSlot

	variable string
}

var eventAssignmentSchema = &ElementSchema{
	Name:  "eventAssignment",
	Since: L2V1,
	Attributes: append(sbaseOptionalId(L3V2),
		AttributeSpec{Name: "variable", Required: always},
	),
	Children: []ChildSpec{{Name: "math"}},
}

func init() {
	registerType(TypeEventAssignment, eventAssignmentSchema, func(ns *Namespaces) Node { return newEventAssignment(ns) })
}

func NewEventAssignment(level, version uint) (*EventAssignment, error) {
	ns, err := namespacesFor(TypeEventAssignment, level, version)
	if err != nil {
		return nil, err
	}
	return newEventAssignment(ns), nil
}

func newEventAssignment(ns *Namespaces) *EventAssignment {
	ea := &EventAssignment{}
	ea.sbase = newSBase(ea, ns)
	return ea
}

func (ea *EventAssignment) TypeCode() TypeCode { return TypeEventAssignment }

func (ea *EventAssignment) Variable() string    { return ea.variable }
func (ea *EventAssignment) IsSetVariable() bool { return ea.variable != "" }

func (ea *EventAssignment) SetVariable(v string) Status {
	return ea.setSIdRef("variable", &ea.variable, v)
}

func (ea *EventAssignment) Accept(v Visitor) bool { return v.VisitEventAssignment(ea) }

func (ea *EventAssignment) Clone() Node {
	c := new(EventAssignment)
	*c = *ea
	c.sbase = ea.cloneFor(c)
	c.mathSlot = ea.cloneMath()
	return c
}

func (ea *EventAssignment) HasRequiredElements() bool {
	return ea.IsSetMath() || ea.LevelVersion().AtLeast(L3V2)
}

func (ea *EventAssignment) isSetAttribute(name string) bool {
	if name == "variable" {
		return ea.variable != ""
	}
	return ea.sbase.isSetAttribute(name)
}

func (ea *EventAssignment) readAttributes(s *XMLInputStream, t XMLToken, expected *ExpectedAttributes) {
	ea.sbase.readAttributes(s, t, expected)
	ea.readAttrSIdRef(s, t, expected, "variable", &ea.variable)
}

func (ea *EventAssignment) writeAttributes(o *XMLOutputStream) {
	ea.sbase.writeAttributes(o)
	if ea.variable != "" {
		ea.writeLegal(o, "variable", ea.variable)
	}
}

func (ea *EventAssignment) readOtherXML(s *XMLInputStream, t XMLToken) bool { return ea.readMath(s, t) }

func (ea *EventAssignment) writeElements(o *XMLOutputStream) { ea.writeMath(o) }
