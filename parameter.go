package sbml

import "math"

// Parameter is a named quantity of the model.
type Parameter struct {
	sbase

	value         float64
	isSetValue    bool
	units         string
	constant      bool
	isSetConstant bool
}

var parameterSchema = &ElementSchema{
	Name: "parameter",
	Attributes: append(sbaseAttributes(true),
		AttributeSpec{Name: "value", Required: requiredBefore(L2V1)},
		AttributeSpec{Name: "units"},
		AttributeSpec{Name: "constant", Since: L2V1, Required: requiredFrom(L3V1)},
	),
}

func init() {
	registerType(TypeParameter, parameterSchema, func(ns *Namespaces) Node { return newParameter(ns) })
}

func NewParameter(level, version uint) (*Parameter, error) {
	ns, err := namespacesFor(TypeParameter, level, version)
	if err != nil {
		return nil, err
	}
	return newParameter(ns), nil
}

func NewParameterWithNamespaces(ns *Namespaces) (*Parameter, error) {
	if err := checkConstruct(TypeParameter, ns); err != nil {
		return nil, err
	}
	return newParameter(ns.Clone()), nil
}

func newParameter(ns *Namespaces) *Parameter {
	p := &Parameter{value: math.NaN()}
	p.sbase = newSBase(p, ns)
	return p
}

func (p *Parameter) TypeCode() TypeCode { return TypeParameter }

func (p *Parameter) Value() float64   { return p.value }
func (p *Parameter) IsSetValue() bool { return p.isSetValue }
func (p *Parameter) SetValue(v float64) Status {
	return p.setFloat("value", &p.value, &p.isSetValue, v)
}

func (p *Parameter) UnsetValue() Status {
	p.value, p.isSetValue = math.NaN(), false
	return OperationSuccess
}

func (p *Parameter) Units() string            { return p.units }
func (p *Parameter) IsSetUnits() bool         { return p.units != "" }
func (p *Parameter) SetUnits(v string) Status { return p.setSIdRef("units", &p.units, v) }
func (p *Parameter) UnsetUnits() Status       { p.units = ""; return OperationSuccess }

// Constant defaults to true before Level 3.
func (p *Parameter) Constant() bool {
	if !p.isSetConstant {
		return p.Level() < 3
	}
	return p.constant
}

func (p *Parameter) IsSetConstant() bool { return p.isSetConstant }

func (p *Parameter) SetConstant(v bool) Status {
	return p.setBool("constant", &p.constant, &p.isSetConstant, v)
}

func (p *Parameter) Accept(v Visitor) bool { return v.VisitParameter(p) }

func (p *Parameter) Clone() Node {
	c := new(Parameter)
	*c = *p
	c.sbase = p.cloneFor(c)
	return c
}

func (p *Parameter) isSetAttribute(name string) bool {
	switch name {
	case "value":
		return p.isSetValue
	case "units":
		return p.units != ""
	case "constant":
		return p.isSetConstant
	}
	return p.sbase.isSetAttribute(name)
}

func (p *Parameter) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	p.sbase.readAttributes(s, t, ea)

	p.isSetValue = p.readAttrFloat(s, t, ea, "value", &p.value)
	p.readAttrSIdRef(s, t, ea, "units", &p.units)
	p.isSetConstant = p.readAttrBool(s, t, ea, "constant", &p.constant)
}

func (p *Parameter) writeAttributes(o *XMLOutputStream) {
	p.sbase.writeAttributes(o)

	if p.isSetValue {
		p.writeLegalFloat(o, "value", p.value)
	}
	if p.units != "" {
		p.writeLegal(o, "units", p.units)
	}
	if p.isSetConstant {
		p.writeLegalBool(o, "constant", p.constant)
	}
}
