package sbml

// Rule is one of AssignmentRule, RateRule or AlgebraicRule, told apart by
// TypeCode. The math is carried as opaque XML; Level 1 carries a formula
// string instead.
type Rule struct {
	sbase
	mathSlot

	typ      TypeCode
	variable string

	formula   string
	units     string
	l1Element string
}

func ruleSchema(name string, withVariable bool) *ElementSchema {
	schema := &ElementSchema{
		Name:  name,
		Since: L1V1,
		Attributes: append(sbaseOptionalId(L3V2),
			AttributeSpec{Name: "formula", Until: L1V2, Required: always}),
		Children: []ChildSpec{{Name: "math", Since: L2V1}},
	}
	if withVariable {
		schema.Attributes = append(schema.Attributes,
			AttributeSpec{Name: "variable", Since: L2V1, Required: always},
			AttributeSpec{Name: "type", Until: L1V2},
			AttributeSpec{Name: "units", Until: L1V2})
	}
	return schema
}

// Level 1 names assignment and rate rules after the kind of component they
// determine. The value is the attribute holding the variable.
var l1RuleElements = map[string]string{
	"compartmentVolumeRule":    "compartment",
	"speciesConcentrationRule": "species",
	"parameterRule":            "name",
}

// l1RuleType maps a Level 1 rule element to its kind; type="rate" selects
// a rate rule.
func l1RuleType(t XMLToken) (TypeCode, bool) {
	if t.Name == "algebraicRule" {
		return TypeAlgebraicRule, true
	}
	if _, ok := l1RuleElements[t.Name]; !ok {
		return TypeUnknown, false
	}
	if v, _ := t.Attr("type"); v == "rate" {
		return TypeRateRule, true
	}
	return TypeAssignmentRule, true
}

func l1VariableAttr(element string, lv LevelVersion) string {
	a := l1RuleElements[element]
	if a == "species" && lv == L1V1 {
		return "specie"
	}
	return a
}

func init() {
	registerType(TypeAssignmentRule, ruleSchema("assignmentRule", true), func(ns *Namespaces) Node {
		return newRule(TypeAssignmentRule, ns)
	})
	registerType(TypeRateRule, ruleSchema("rateRule", true), func(ns *Namespaces) Node {
		return newRule(TypeRateRule, ns)
	})
	registerType(TypeAlgebraicRule, ruleSchema("algebraicRule", false), func(ns *Namespaces) Node {
		return newRule(TypeAlgebraicRule, ns)
	})
}

func newRuleAt(tc TypeCode, level, version uint) (*Rule, error) {
	ns, err := namespacesFor(tc, level, version)
	if err != nil {
		return nil, err
	}
	return newRule(tc, ns), nil
}

func NewAssignmentRule(level, version uint) (*Rule, error) {
	return newRuleAt(TypeAssignmentRule, level, version)
}

func NewRateRule(level, version uint) (*Rule, error) {
	return newRuleAt(TypeRateRule, level, version)
}

func NewAlgebraicRule(level, version uint) (*Rule, error) {
	return newRuleAt(TypeAlgebraicRule, level, version)
}

// NewRuleWithNamespaces creates a rule of kind tc.
func NewRuleWithNamespaces(tc TypeCode, ns *Namespaces) (*Rule, error) {
	if !tc.IsRule() {
		return nil, newConstructorError(tc.String(), LevelVersion{}, "not a rule")
	}
	if err := checkConstruct(tc, ns); err != nil {
		return nil, err
	}
	return newRule(tc, ns.Clone()), nil
}

func newRule(tc TypeCode, ns *Namespaces) *Rule {
	r := &Rule{typ: tc}
	r.sbase = newSBase(r, ns)
	return r
}

func (r *Rule) TypeCode() TypeCode { return r.typ }

func (r *Rule) IsAssignment() bool { return r.typ == TypeAssignmentRule }
func (r *Rule) IsRate() bool       { return r.typ == TypeRateRule }
func (r *Rule) IsAlgebraic() bool  { return r.typ == TypeAlgebraicRule }

// Variable is the identifier the rule determines; algebraic rules have
// none.
func (r *Rule) Variable() string    { return r.variable }
func (r *Rule) IsSetVariable() bool { return r.variable != "" }

func (r *Rule) SetVariable(v string) Status {
	if r.l1() && !r.IsAlgebraic() {
		if v != "" && !IsValidSId(v) {
			return InvalidAttributeValue
		}
		r.variable, r.l1Element = v, ""
		return OperationSuccess
	}
	return r.setSIdRef("variable", &r.variable, v)
}

func (r *Rule) UnsetVariable() Status {
	r.variable, r.l1Element = "", ""
	return OperationSuccess
}

// Formula is the Level 1 infix expression, kept as text.
func (r *Rule) Formula() string    { return r.formula }
func (r *Rule) IsSetFormula() bool { return r.formula != "" }

func (r *Rule) SetFormula(f string) Status {
	if !r.legal("formula") {
		return UnexpectedAttribute
	}
	r.formula = f
	return OperationSuccess
}

// Units is only carried by Level 1 parameter rules.
func (r *Rule) Units() string { return r.units }

func (r *Rule) SetUnits(u string) Status {
	if !r.legal("units") || r.ElementName() != "parameterRule" {
		return UnexpectedAttribute
	}
	return r.setSIdRef("units", &r.units, u)
}

// ElementName spells Level 1 assignment and rate rules after what the
// variable names in the enclosing model, parameterRule when unknown.
func (r *Rule) ElementName() string {
	if !r.l1() || r.IsAlgebraic() {
		return r.sbase.ElementName()
	}
	if r.l1Element != "" {
		return r.l1Element
	}
	if m := r.Model(); m != nil {
		switch {
		case m.Compartment(r.variable) != nil:
			return "compartmentVolumeRule"
		case m.SpeciesById(r.variable) != nil:
			return "speciesConcentrationRule"
		}
	}
	return "parameterRule"
}

func (r *Rule) Accept(v Visitor) bool { return v.VisitRule(r) }

func (r *Rule) Clone() Node {
	c := new(Rule)
	*c = *r
	c.sbase = r.cloneFor(c)
	c.mathSlot = r.cloneMath()
	return c
}

// HasRequiredElements reports whether math is present where the level
// demands it. Level 1 uses the formula attribute.
func (r *Rule) HasRequiredElements() bool {
	return r.l1() || r.IsSetMath() || r.LevelVersion().AtLeast(L3V2)
}

func (r *Rule) isSetAttribute(name string) bool {
	switch name {
	case "variable":
		return r.variable != ""
	case "formula":
		return r.formula != ""
	}
	return r.sbase.isSetAttribute(name)
}

func (r *Rule) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	if r.l1() {
		t = r.readL1Attributes(s, t)
	}
	r.sbase.readAttributes(s, t, ea)
	r.readAttrSIdRef(s, t, ea, "variable", &r.variable)
}

// readL1Attributes takes the Level 1 rule attributes off t and returns the
// rest for the shared reader.
func (r *Rule) readL1Attributes(s *XMLInputStream, t XMLToken) XMLToken {
	varAttr := ""
	if !r.IsAlgebraic() {
		r.l1Element = t.Name
		varAttr = l1VariableAttr(t.Name, r.LevelVersion())
	}

	var rest []XMLAttr
	for _, a := range t.Attrs {
		if a.URI != "" {
			rest = append(rest, a)
			continue
		}

		switch {
		case a.Name == "formula":
			r.formula = a.Value
		case a.Name == "type" && varAttr != "":
			if a.Value != "scalar" && a.Value != "rate" {
				r.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
					"attribute 'type' of <%s> must be 'scalar' or 'rate', got '%s'", t.QName(), a.Value)
			}
		case a.Name == "units" && t.Name == "parameterRule":
			r.units = a.Value
		case varAttr != "" && (a.Name == varAttr || varAttr == "specie" && a.Name == "species"):
			if IsValidSId(a.Value) {
				r.variable = a.Value
			} else {
				r.logf(s, CodeInvalidAttributeValue, SeverityError, t.Line, t.Column,
					"attribute '%s' of <%s> has the value '%s' which is not a valid SId reference", a.Name, t.QName(), a.Value)
			}
		default:
			rest = append(rest, a)
		}
	}

	t.Attrs = rest
	return t
}

func (r *Rule) writeAttributes(o *XMLOutputStream) {
	r.sbase.writeAttributes(o)
	if r.l1() {
		r.writeL1Attributes(o)
		return
	}
	if r.variable != "" {
		r.writeLegal(o, "variable", r.variable)
	}
}

func (r *Rule) writeL1Attributes(o *XMLOutputStream) {
	name := r.ElementName()
	if a := l1VariableAttr(name, r.LevelVersion()); a != "" && r.variable != "" {
		o.WriteAttr(a, r.variable)
	}
	if r.formula != "" {
		o.WriteAttr("formula", r.formula)
	}
	if r.units != "" && name == "parameterRule" {
		o.WriteAttr("units", r.units)
	}
	if r.IsRate() {
		o.WriteAttr("type", "rate")
	}
}

func (r *Rule) readOtherXML(s *XMLInputStream, t XMLToken) bool { return !r.l1() && r.readMath(s, t) }

func (r *Rule) writeElements(o *XMLOutputStream) {
	if !r.l1() {
		r.writeMath(o)
	}
}
