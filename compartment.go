package sbml

import "math"

// Compartment is a bounded container in which species are located.
type Compartment struct {
	sbase

	spatialDimensions      float64
	isSetSpatialDimensions bool
	size                   float64
	isSetSize              bool
	units                  string
	outside                string
	constant               bool
	isSetConstant          bool
}

var compartmentSchema = &ElementSchema{
	Name: "compartment",
	Attributes: append(sbaseAttributes(true),
		AttributeSpec{Name: "spatialDimensions", Since: L2V1},
		AttributeSpec{Name: "size", Since: L2V1},
		AttributeSpec{Name: "volume", Until: L1V2},
		AttributeSpec{Name: "units"},
		AttributeSpec{Name: "outside", Until: L2V5},
		AttributeSpec{Name: "constant", Since: L2V1, Required: requiredFrom(L3V1)},
	),
}

func init() {
	registerType(TypeCompartment, compartmentSchema, func(ns *Namespaces) Node { return newCompartment(ns) })
}

func NewCompartment(level, version uint) (*Compartment, error) {
	ns, err := namespacesFor(TypeCompartment, level, version)
	if err != nil {
		return nil, err
	}
	return newCompartment(ns), nil
}

func NewCompartmentWithNamespaces(ns *Namespaces) (*Compartment, error) {
	if err := checkConstruct(TypeCompartment, ns); err != nil {
		return nil, err
	}
	return newCompartment(ns.Clone()), nil
}

func newCompartment(ns *Namespaces) *Compartment {
	c := &Compartment{size: math.NaN(), spatialDimensions: math.NaN()}
	c.sbase = newSBase(c, ns)
	return c
}

func (c *Compartment) TypeCode() TypeCode { return TypeCompartment }

// SpatialDimensions returns the dimensionality. Level 1 and 2 default to 3.
func (c *Compartment) SpatialDimensions() float64 {
	if !c.isSetSpatialDimensions && c.Level() < 3 {
		return 3
	}
	return c.spatialDimensions
}

func (c *Compartment) IsSetSpatialDimensions() bool { return c.isSetSpatialDimensions }

// SetSpatialDimensions accepts 0 to 3 in Level 2 and any value in Level 3.
func (c *Compartment) SetSpatialDimensions(v float64) Status {
	if c.Level() == 2 && (v != math.Trunc(v) || v < 0 || v > 3) {
		if c.legal("spatialDimensions") {
			return InvalidAttributeValue
		}
	}
	return c.setFloat("spatialDimensions", &c.spatialDimensions, &c.isSetSpatialDimensions, v)
}

func (c *Compartment) UnsetSpatialDimensions() Status {
	c.spatialDimensions, c.isSetSpatialDimensions = math.NaN(), false
	return OperationSuccess
}

// Size is called volume in Level 1.
func (c *Compartment) Size() float64 { return c.size }

func (c *Compartment) IsSetSize() bool { return c.isSetSize }

func (c *Compartment) SetSize(v float64) Status {
	c.size, c.isSetSize = v, true
	return OperationSuccess
}

func (c *Compartment) UnsetSize() Status {
	c.size, c.isSetSize = math.NaN(), false
	return OperationSuccess
}

func (c *Compartment) Volume() float64            { return c.Size() }
func (c *Compartment) SetVolume(v float64) Status { return c.SetSize(v) }

func (c *Compartment) Units() string              { return c.units }
func (c *Compartment) IsSetUnits() bool           { return c.units != "" }
func (c *Compartment) SetUnits(v string) Status   { return c.setSIdRef("units", &c.units, v) }
func (c *Compartment) UnsetUnits() Status         { c.units = ""; return OperationSuccess }
func (c *Compartment) Outside() string            { return c.outside }
func (c *Compartment) IsSetOutside() bool         { return c.outside != "" }
func (c *Compartment) SetOutside(v string) Status { return c.setSIdRef("outside", &c.outside, v) }
func (c *Compartment) UnsetOutside() Status       { c.outside = ""; return OperationSuccess }

// Constant defaults to true before Level 3.
func (c *Compartment) Constant() bool {
	if !c.isSetConstant {
		return c.Level() < 3
	}
	return c.constant
}

func (c *Compartment) IsSetConstant() bool { return c.isSetConstant }

func (c *Compartment) SetConstant(v bool) Status {
	return c.setBool("constant", &c.constant, &c.isSetConstant, v)
}

func (c *Compartment) UnsetConstant() Status {
	c.constant, c.isSetConstant = false, false
	return OperationSuccess
}

func (c *Compartment) Accept(v Visitor) bool { return v.VisitCompartment(c) }

func (c *Compartment) Clone() Node {
	cc := new(Compartment)
	*cc = *c
	cc.sbase = c.cloneFor(cc)
	return cc
}

func (c *Compartment) isSetAttribute(name string) bool {
	switch name {
	case "spatialDimensions":
		return c.isSetSpatialDimensions
	case "size", "volume":
		return c.isSetSize
	case "units":
		return c.units != ""
	case "outside":
		return c.outside != ""
	case "constant":
		return c.isSetConstant
	}
	return c.sbase.isSetAttribute(name)
}

func (c *Compartment) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	c.sbase.readAttributes(s, t, ea)

	sizeAttr := "size"
	if c.l1() {
		sizeAttr = "volume"
	}
	c.isSetSize = c.readAttrFloat(s, t, ea, sizeAttr, &c.size)
	c.isSetSpatialDimensions = c.readAttrFloat(s, t, ea, "spatialDimensions", &c.spatialDimensions)
	c.readAttrSIdRef(s, t, ea, "units", &c.units)
	c.readAttrSIdRef(s, t, ea, "outside", &c.outside)
	c.isSetConstant = c.readAttrBool(s, t, ea, "constant", &c.constant)
}

func (c *Compartment) writeAttributes(o *XMLOutputStream) {
	c.sbase.writeAttributes(o)

	if c.isSetSpatialDimensions {
		if c.Level() == 2 {
			if c.legal("spatialDimensions") {
				o.WriteAttrInt("spatialDimensions", int(c.spatialDimensions))
			}
		} else {
			c.writeLegalFloat(o, "spatialDimensions", c.spatialDimensions)
		}
	}
	if c.isSetSize {
		if c.l1() {
			c.writeLegalFloat(o, "volume", c.size)
		} else {
			c.writeLegalFloat(o, "size", c.size)
		}
	}
	if c.units != "" {
		c.writeLegal(o, "units", c.units)
	}
	if c.outside != "" {
		c.writeLegal(o, "outside", c.outside)
	}
	if c.isSetConstant {
		c.writeLegalBool(o, "constant", c.constant)
	}
}
