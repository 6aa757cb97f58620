package sbml

import "math"

// Species is a pool of entities located in one compartment.
type Species struct {
	sbase

	compartment                string
	initialAmount              float64
	isSetInitialAmount         bool
	initialConcentration       float64
	isSetInitialConcentration  bool
	substanceUnits             string
	hasOnlySubstanceUnits      bool
	isSetHasOnlySubstanceUnits bool
	boundaryCondition          bool
	isSetBoundaryCondition     bool
	constant                   bool
	isSetConstant              bool
	charge                     int
	isSetCharge                bool
	conversionFactor           string
}

var speciesSchema = &ElementSchema{
	Name:     "species",
	L1V1Name: "specie",
	Attributes: append(sbaseAttributes(true),
		AttributeSpec{Name: "compartment", Required: always},
		AttributeSpec{Name: "initialAmount", Required: requiredBefore(L2V1)},
		AttributeSpec{Name: "initialConcentration", Since: L2V1},
		AttributeSpec{Name: "units", Until: L1V2},
		AttributeSpec{Name: "substanceUnits", Since: L2V1},
		AttributeSpec{Name: "hasOnlySubstanceUnits", Since: L2V1, Required: requiredFrom(L3V1)},
		AttributeSpec{Name: "boundaryCondition", Required: requiredFrom(L3V1)},
		AttributeSpec{Name: "constant", Since: L2V1, Required: requiredFrom(L3V1)},
		AttributeSpec{Name: "charge", Until: L2V5},
		AttributeSpec{Name: "conversionFactor", Since: L3V1},
	),
}

func init() {
	registerType(TypeSpecies, speciesSchema, func(ns *Namespaces) Node { return newSpecies(ns) })
}

func NewSpecies(level, version uint) (*Species, error) {
	ns, err := namespacesFor(TypeSpecies, level, version)
	if err != nil {
		return nil, err
	}
	return newSpecies(ns), nil
}

func NewSpeciesWithNamespaces(ns *Namespaces) (*Species, error) {
	if err := checkConstruct(TypeSpecies, ns); err != nil {
		return nil, err
	}
	return newSpecies(ns.Clone()), nil
}

func newSpecies(ns *Namespaces) *Species {
	s := &Species{initialAmount: math.NaN(), initialConcentration: math.NaN()}
	s.sbase = newSBase(s, ns)
	return s
}

func (sp *Species) TypeCode() TypeCode { return TypeSpecies }

func (sp *Species) Compartment() string      { return sp.compartment }
func (sp *Species) IsSetCompartment() bool   { return sp.compartment != "" }
func (sp *Species) UnsetCompartment() Status { sp.compartment = ""; return OperationSuccess }

func (sp *Species) SetCompartment(v string) Status {
	return sp.setSIdRef("compartment", &sp.compartment, v)
}

func (sp *Species) InitialAmount() float64   { return sp.initialAmount }
func (sp *Species) IsSetInitialAmount() bool { return sp.isSetInitialAmount }

// SetInitialAmount sets the initial amount and clears the initial
// concentration; the two are exclusive.
func (sp *Species) SetInitialAmount(v float64) Status {
	st := sp.setFloat("initialAmount", &sp.initialAmount, &sp.isSetInitialAmount, v)
	if st.OK() {
		sp.initialConcentration, sp.isSetInitialConcentration = math.NaN(), false
	}
	return st
}

func (sp *Species) UnsetInitialAmount() Status {
	sp.initialAmount, sp.isSetInitialAmount = math.NaN(), false
	return OperationSuccess
}

func (sp *Species) InitialConcentration() float64   { return sp.initialConcentration }
func (sp *Species) IsSetInitialConcentration() bool { return sp.isSetInitialConcentration }

// SetInitialConcentration sets the initial concentration and clears the
// initial amount.
func (sp *Species) SetInitialConcentration(v float64) Status {
	st := sp.setFloat("initialConcentration", &sp.initialConcentration, &sp.isSetInitialConcentration, v)
	if st.OK() {
		sp.initialAmount, sp.isSetInitialAmount = math.NaN(), false
	}
	return st
}

func (sp *Species) UnsetInitialConcentration() Status {
	sp.initialConcentration, sp.isSetInitialConcentration = math.NaN(), false
	return OperationSuccess
}

// SubstanceUnits is called units in Level 1.
func (sp *Species) SubstanceUnits() string    { return sp.substanceUnits }
func (sp *Species) IsSetSubstanceUnits() bool { return sp.substanceUnits != "" }

func (sp *Species) SetSubstanceUnits(v string) Status {
	attr := "substanceUnits"
	if sp.l1() {
		attr = "units"
	}
	return sp.setSIdRef(attr, &sp.substanceUnits, v)
}

func (sp *Species) UnsetSubstanceUnits() Status {
	sp.substanceUnits = ""
	return OperationSuccess
}

func (sp *Species) HasOnlySubstanceUnits() bool      { return sp.hasOnlySubstanceUnits }
func (sp *Species) IsSetHasOnlySubstanceUnits() bool { return sp.isSetHasOnlySubstanceUnits }

func (sp *Species) SetHasOnlySubstanceUnits(v bool) Status {
	return sp.setBool("hasOnlySubstanceUnits", &sp.hasOnlySubstanceUnits, &sp.isSetHasOnlySubstanceUnits, v)
}

func (sp *Species) BoundaryCondition() bool      { return sp.boundaryCondition }
func (sp *Species) IsSetBoundaryCondition() bool { return sp.isSetBoundaryCondition }

func (sp *Species) SetBoundaryCondition(v bool) Status {
	return sp.setBool("boundaryCondition", &sp.boundaryCondition, &sp.isSetBoundaryCondition, v)
}

func (sp *Species) Constant() bool      { return sp.constant }
func (sp *Species) IsSetConstant() bool { return sp.isSetConstant }

func (sp *Species) SetConstant(v bool) Status {
	return sp.setBool("constant", &sp.constant, &sp.isSetConstant, v)
}

func (sp *Species) Charge() int       { return sp.charge }
func (sp *Species) IsSetCharge() bool { return sp.isSetCharge }

func (sp *Species) SetCharge(v int) Status {
	if !sp.legal("charge") {
		return UnexpectedAttribute
	}
	sp.charge, sp.isSetCharge = v, true
	return OperationSuccess
}

func (sp *Species) UnsetCharge() Status {
	sp.charge, sp.isSetCharge = 0, false
	return OperationSuccess
}

func (sp *Species) ConversionFactor() string    { return sp.conversionFactor }
func (sp *Species) IsSetConversionFactor() bool { return sp.conversionFactor != "" }

func (sp *Species) SetConversionFactor(v string) Status {
	return sp.setSIdRef("conversionFactor", &sp.conversionFactor, v)
}

func (sp *Species) Accept(v Visitor) bool { return v.VisitSpecies(sp) }

func (sp *Species) Clone() Node {
	c := new(Species)
	*c = *sp
	c.sbase = sp.cloneFor(c)
	return c
}

func (sp *Species) isSetAttribute(name string) bool {
	switch name {
	case "compartment":
		return sp.compartment != ""
	case "initialAmount":
		return sp.isSetInitialAmount
	case "initialConcentration":
		return sp.isSetInitialConcentration
	case "units", "substanceUnits":
		return sp.substanceUnits != ""
	case "hasOnlySubstanceUnits":
		return sp.isSetHasOnlySubstanceUnits
	case "boundaryCondition":
		return sp.isSetBoundaryCondition
	case "constant":
		return sp.isSetConstant
	case "charge":
		return sp.isSetCharge
	case "conversionFactor":
		return sp.conversionFactor != ""
	}
	return sp.sbase.isSetAttribute(name)
}

func (sp *Species) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	sp.sbase.readAttributes(s, t, ea)

	sp.readAttrSIdRef(s, t, ea, "compartment", &sp.compartment)
	sp.isSetInitialAmount = sp.readAttrFloat(s, t, ea, "initialAmount", &sp.initialAmount)
	sp.isSetInitialConcentration = sp.readAttrFloat(s, t, ea, "initialConcentration", &sp.initialConcentration)
	if sp.l1() {
		sp.readAttrSIdRef(s, t, ea, "units", &sp.substanceUnits)
	} else {
		sp.readAttrSIdRef(s, t, ea, "substanceUnits", &sp.substanceUnits)
	}
	sp.isSetHasOnlySubstanceUnits = sp.readAttrBool(s, t, ea, "hasOnlySubstanceUnits", &sp.hasOnlySubstanceUnits)
	sp.isSetBoundaryCondition = sp.readAttrBool(s, t, ea, "boundaryCondition", &sp.boundaryCondition)
	sp.isSetConstant = sp.readAttrBool(s, t, ea, "constant", &sp.constant)
	sp.isSetCharge = sp.readAttrInt(s, t, ea, "charge", &sp.charge)
	sp.readAttrSIdRef(s, t, ea, "conversionFactor", &sp.conversionFactor)
}

func (sp *Species) writeAttributes(o *XMLOutputStream) {
	sp.sbase.writeAttributes(o)

	if sp.compartment != "" {
		sp.writeLegal(o, "compartment", sp.compartment)
	}
	if sp.isSetInitialAmount {
		sp.writeLegalFloat(o, "initialAmount", sp.initialAmount)
	}
	if sp.isSetInitialConcentration {
		sp.writeLegalFloat(o, "initialConcentration", sp.initialConcentration)
	}
	if sp.substanceUnits != "" {
		if sp.l1() {
			sp.writeLegal(o, "units", sp.substanceUnits)
		} else {
			sp.writeLegal(o, "substanceUnits", sp.substanceUnits)
		}
	}
	if sp.isSetHasOnlySubstanceUnits {
		sp.writeLegalBool(o, "hasOnlySubstanceUnits", sp.hasOnlySubstanceUnits)
	}
	if sp.isSetBoundaryCondition {
		sp.writeLegalBool(o, "boundaryCondition", sp.boundaryCondition)
	}
	if sp.isSetConstant {
		sp.writeLegalBool(o, "constant", sp.constant)
	}
	if sp.isSetCharge && sp.legal("charge") {
		o.WriteAttrInt("charge", sp.charge)
	}
	if sp.conversionFactor != "" {
		sp.writeLegal(o, "conversionFactor", sp.conversionFactor)
	}
}
