package sbml

import "math"

// Reaction is a transformation of reactants into products, optionally
// influenced by modifiers.
type Reaction struct {
	sbase

	reversible      bool
	isSetReversible bool
	fast            bool
	isSetFast       bool
	compartment     string

	reactants  *ListOf
	products   *ListOf
	modifiers  *ListOf
	kineticLaw *XMLNode
}

var reactionSchema = &ElementSchema{
	Name: "reaction",
	Attributes: append(sbaseAttributes(true),
		AttributeSpec{Name: "reversible", Required: requiredFrom(L3V1)},
		AttributeSpec{Name: "fast", Until: L3V1, Required: requiredIn(L3V1)},
		AttributeSpec{Name: "compartment", Since: L3V1},
	),
	Children: []ChildSpec{
		{Name: "listOfReactants"},
		{Name: "listOfProducts"},
		{Name: "listOfModifiers", Since: L2V1},
		{Name: "kineticLaw"},
	},
}

func init() {
	registerType(TypeReaction, reactionSchema, func(ns *Namespaces) Node { return newReaction(ns) })
}

func NewReaction(level, version uint) (*Reaction, error) {
	ns, err := namespacesFor(TypeReaction, level, version)
	if err != nil {
		return nil, err
	}
	return newReaction(ns), nil
}

func NewReactionWithNamespaces(ns *Namespaces) (*Reaction, error) {
	if err := checkConstruct(TypeReaction, ns); err != nil {
		return nil, err
	}
	return newReaction(ns.Clone()), nil
}

func newReaction(ns *Namespaces) *Reaction {
	r := &Reaction{}
	r.sbase = newSBase(r, ns)
	r.reactants = newListOf(ns.Clone(), "listOfReactants", TypeSpeciesReference)
	r.products = newListOf(ns.Clone(), "listOfProducts", TypeSpeciesReference)
	r.modifiers = newListOf(ns.Clone(), "listOfModifiers", TypeModifierSpeciesReference)
	r.adoptLists()
	return r
}

func (r *Reaction) adoptLists() {
	r.adopt(r.reactants)
	r.adopt(r.products)
	r.adopt(r.modifiers)
}

func (r *Reaction) TypeCode() TypeCode { return TypeReaction }

// Reversible defaults to true before Level 3.
func (r *Reaction) Reversible() bool {
	if !r.isSetReversible {
		return r.Level() < 3
	}
	return r.reversible
}

func (r *Reaction) IsSetReversible() bool { return r.isSetReversible }

func (r *Reaction) SetReversible(v bool) Status {
	return r.setBool("reversible", &r.reversible, &r.isSetReversible, v)
}

func (r *Reaction) Fast() bool      { return r.fast }
func (r *Reaction) IsSetFast() bool { return r.isSetFast }

func (r *Reaction) SetFast(v bool) Status { return r.setBool("fast", &r.fast, &r.isSetFast, v) }

func (r *Reaction) UnsetFast() Status {
	r.fast, r.isSetFast = false, false
	return OperationSuccess
}

func (r *Reaction) Compartment() string    { return r.compartment }
func (r *Reaction) IsSetCompartment() bool { return r.compartment != "" }

func (r *Reaction) SetCompartment(v string) Status {
	return r.setSIdRef("compartment", &r.compartment, v)
}

func (r *Reaction) Reactants() *ListOf { return r.reactants }
func (r *Reaction) Products() *ListOf  { return r.products }
func (r *Reaction) Modifiers() *ListOf { return r.modifiers }

func (r *Reaction) NumReactants() int { return r.reactants.Size() }
func (r *Reaction) NumProducts() int  { return r.products.Size() }
func (r *Reaction) NumModifiers() int { return r.modifiers.Size() }

func (r *Reaction) Reactant(n int) *SpeciesReference {
	sr, _ := GetAs[*SpeciesReference](r.reactants, n)
	return sr
}

func (r *Reaction) Product(n int) *SpeciesReference {
	sr, _ := GetAs[*SpeciesReference](r.products, n)
	return sr
}

func (r *Reaction) Modifier(n int) *ModifierSpeciesReference {
	sr, _ := GetAs[*ModifierSpeciesReference](r.modifiers, n)
	return sr
}

// AddReactant stores a copy of sr.
func (r *Reaction) AddReactant(sr *SpeciesReference) Status {
	if sr == nil {
		return InvalidObject
	}
	return r.reactants.Append(sr)
}

// AddProduct stores a copy of sr.
func (r *Reaction) AddProduct(sr *SpeciesReference) Status {
	if sr == nil {
		return InvalidObject
	}
	return r.products.Append(sr)
}

// AddModifier stores a copy of sr.
func (r *Reaction) AddModifier(sr *ModifierSpeciesReference) Status {
	if sr == nil {
		return InvalidObject
	}
	if !r.modifiersLegal() {
		return InvalidObject
	}
	return r.modifiers.Append(sr)
}

func (r *Reaction) createReference(l *ListOf, tc TypeCode) Node {
	item, err := NewNode(tc, r.ns)
	if err != nil {
		return nil
	}
	if !l.AppendAndOwn(item).OK() {
		return nil
	}
	return item
}

// CreateReactant appends a new reactant and returns it.
func (r *Reaction) CreateReactant() *SpeciesReference {
	sr, _ := r.createReference(r.reactants, TypeSpeciesReference).(*SpeciesReference)
	return sr
}

// CreateProduct appends a new product and returns it.
func (r *Reaction) CreateProduct() *SpeciesReference {
	sr, _ := r.createReference(r.products, TypeSpeciesReference).(*SpeciesReference)
	return sr
}

// CreateModifier appends a new modifier and returns it, nil in Level 1.
func (r *Reaction) CreateModifier() *ModifierSpeciesReference {
	sr, _ := r.createReference(r.modifiers, TypeModifierSpeciesReference).(*ModifierSpeciesReference)
	return sr
}

// KineticLaw returns the <kineticLaw> element, carried as opaque XML.
func (r *Reaction) KineticLaw() *XMLNode    { return r.kineticLaw }
func (r *Reaction) IsSetKineticLaw() bool   { return r.kineticLaw != nil }
func (r *Reaction) UnsetKineticLaw() Status { r.kineticLaw = nil; return OperationSuccess }

func (r *Reaction) SetKineticLaw(n *XMLNode) Status {
	return setOpaque(n, "kineticLaw", &r.kineticLaw)
}

func (r *Reaction) Accept(v Visitor) bool {
	if v.VisitReaction(r) {
		r.reactants.Accept(v)
		r.products.Accept(v)
		if r.modifiersLegal() {
			r.modifiers.Accept(v)
		}
	}
	v.LeaveReaction(r)
	return true
}

func (r *Reaction) modifiersLegal() bool {
	return r.schema().ChildOrder("listOfModifiers", r.LevelVersion()) >= 0
}

func (r *Reaction) Clone() Node {
	c := new(Reaction)
	*c = *r
	c.sbase = r.cloneFor(c)
	c.reactants = r.reactants.clone()
	c.products = r.products.clone()
	c.modifiers = r.modifiers.clone()
	c.kineticLaw = r.kineticLaw.Clone()
	c.adoptLists()
	return c
}

func (r *Reaction) children() []Node {
	return []Node{r.reactants, r.products, r.modifiers}
}

func (r *Reaction) isSetAttribute(name string) bool {
	switch name {
	case "reversible":
		return r.isSetReversible
	case "fast":
		return r.isSetFast
	case "compartment":
		return r.compartment != ""
	}
	return r.sbase.isSetAttribute(name)
}

func (r *Reaction) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	r.sbase.readAttributes(s, t, ea)

	r.isSetReversible = r.readAttrBool(s, t, ea, "reversible", &r.reversible)
	r.isSetFast = r.readAttrBool(s, t, ea, "fast", &r.fast)
	r.readAttrSIdRef(s, t, ea, "compartment", &r.compartment)
}

func (r *Reaction) writeAttributes(o *XMLOutputStream) {
	r.sbase.writeAttributes(o)

	if r.isSetReversible {
		r.writeLegalBool(o, "reversible", r.reversible)
	}
	if r.isSetFast {
		r.writeLegalBool(o, "fast", r.fast)
	}
	if r.compartment != "" {
		r.writeLegal(o, "compartment", r.compartment)
	}
}

func (r *Reaction) createObject(s *XMLInputStream, t XMLToken) Node {
	var l *ListOf
	switch t.Name {
	case "listOfReactants":
		l = r.reactants
	case "listOfProducts":
		l = r.products
	case "listOfModifiers":
		l = r.modifiers
	default:
		return nil
	}
	return readListSlot(&r.sbase, s, t, l)
}

// readListSlot hands back the list an element names, after checking it is
// legal at the level and appears only once.
func readListSlot(b *sbase, s *XMLInputStream, t XMLToken, l *ListOf) Node {
	if b.schema().ChildOrder(t.Name, b.LevelVersion()) < 0 {
		b.logNotValid(s, t)
		s.SkipElement()
		return nil
	}
	if l.Line() != 0 {
		b.logf(s, CodeOneListOfEachKind, SeverityError, t.Line, t.Column,
			"<%s> may contain only one <%s>", b.self.ElementName(), t.Name)
		s.SkipElement()
		return nil
	}
	return l
}

func (r *Reaction) readOtherXML(s *XMLInputStream, t XMLToken) bool {
	return readOpaque(s, t, "kineticLaw", r.ns, &r.kineticLaw)
}

func (r *Reaction) writeElements(o *XMLOutputStream) {
	for _, l := range []*ListOf{r.reactants, r.products, r.modifiers} {
		if l.isSetForWrite() && r.schema().ChildOrder(l.ElementName(), r.LevelVersion()) >= 0 {
			l.Write(o)
		}
	}
	o.WriteXMLNode(r.kineticLaw)
}

type speciesRef struct {
	species string
}

func (r *speciesRef) Species() string    { return r.species }
func (r *speciesRef) IsSetSpecies() bool { return r.species != "" }

// SetSpecies sets the referenced species; "" unsets.
func (r *speciesRef) SetSpecies(v string) Status {
	if v != "" && !IsValidSId(v) {
		return InvalidAttributeValue
	}
	r.species = v
	return OperationSuccess
}

func (r *speciesRef) UnsetSpecies() Status {
	r.species = ""
	return OperationSuccess
}

// SpeciesReference is a reactant or product of a reaction.
type SpeciesReference struct {
	sbase
	speciesRef

	stoichiometry      float64
	isSetStoichiometry bool
	denominator        int
	isSetDenominator   bool
	constant           bool
	isSetConstant      bool
}

var speciesReferenceSchema = &ElementSchema{
	Name:     "speciesReference",
	L1V1Name: "specieReference",
	Attributes: append(sbaseOptionalId(L2V2),
		AttributeSpec{Name: "species", Required: always},
		AttributeSpec{Name: "stoichiometry"},
		AttributeSpec{Name: "denominator", Until: L1V2},
		AttributeSpec{Name: "constant", Since: L3V1, Required: requiredFrom(L3V1)},
	),
}

func init() {
	registerType(TypeSpeciesReference, speciesReferenceSchema, func(ns *Namespaces) Node { return newSpeciesReference(ns) })
}

func NewSpeciesReference(level, version uint) (*SpeciesReference, error) {
	ns, err := namespacesFor(TypeSpeciesReference, level, version)
	if err != nil {
		return nil, err
	}
	return newSpeciesReference(ns), nil
}

func NewSpeciesReferenceWithNamespaces(ns *Namespaces) (*SpeciesReference, error) {
	if err := checkConstruct(TypeSpeciesReference, ns); err != nil {
		return nil, err
	}
	return newSpeciesReference(ns.Clone()), nil
}

func newSpeciesReference(ns *Namespaces) *SpeciesReference {
	sr := &SpeciesReference{stoichiometry: math.NaN()}
	sr.sbase = newSBase(sr, ns)
	return sr
}

func (sr *SpeciesReference) TypeCode() TypeCode { return TypeSpeciesReference }

// Stoichiometry defaults to 1 before Level 3.
func (sr *SpeciesReference) Stoichiometry() float64 {
	if !sr.isSetStoichiometry && sr.Level() < 3 {
		return 1
	}
	return sr.stoichiometry
}

func (sr *SpeciesReference) IsSetStoichiometry() bool { return sr.isSetStoichiometry }

func (sr *SpeciesReference) SetStoichiometry(v float64) Status {
	return sr.setFloat("stoichiometry", &sr.stoichiometry, &sr.isSetStoichiometry, v)
}

func (sr *SpeciesReference) UnsetStoichiometry() Status {
	sr.stoichiometry, sr.isSetStoichiometry = math.NaN(), false
	return OperationSuccess
}

// Denominator exists in Level 1 only and defaults to 1.
func (sr *SpeciesReference) Denominator() int {
	if !sr.isSetDenominator {
		return 1
	}
	return sr.denominator
}

func (sr *SpeciesReference) SetDenominator(v int) Status {
	if !sr.legal("denominator") {
		return UnexpectedAttribute
	}
	if v <= 0 {
		return InvalidAttributeValue
	}
	sr.denominator, sr.isSetDenominator = v, true
	return OperationSuccess
}

func (sr *SpeciesReference) Constant() bool      { return sr.constant }
func (sr *SpeciesReference) IsSetConstant() bool { return sr.isSetConstant }

func (sr *SpeciesReference) SetConstant(v bool) Status {
	return sr.setBool("constant", &sr.constant, &sr.isSetConstant, v)
}

func (sr *SpeciesReference) Accept(v Visitor) bool { return v.VisitSpeciesReference(sr) }

func (sr *SpeciesReference) Clone() Node {
	c := new(SpeciesReference)
	*c = *sr
	c.sbase = sr.cloneFor(c)
	return c
}

func (sr *SpeciesReference) isSetAttribute(name string) bool {
	switch name {
	case "species":
		return sr.species != ""
	case "stoichiometry":
		return sr.isSetStoichiometry
	case "denominator":
		return sr.isSetDenominator
	case "constant":
		return sr.isSetConstant
	}
	return sr.sbase.isSetAttribute(name)
}

func (sr *SpeciesReference) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	sr.sbase.readAttributes(s, t, ea)

	sr.readAttrSIdRef(s, t, ea, "species", &sr.species)
	sr.isSetStoichiometry = sr.readAttrFloat(s, t, ea, "stoichiometry", &sr.stoichiometry)
	sr.isSetDenominator = sr.readAttrInt(s, t, ea, "denominator", &sr.denominator)
	sr.isSetConstant = sr.readAttrBool(s, t, ea, "constant", &sr.constant)
}

func (sr *SpeciesReference) writeAttributes(o *XMLOutputStream) {
	sr.sbase.writeAttributes(o)

	if sr.species != "" {
		sr.writeLegal(o, "species", sr.species)
	}
	if sr.isSetStoichiometry {
		if sr.l1() {
			// Level 1 stoichiometry is an integer
			if sr.legal("stoichiometry") {
				o.WriteAttrInt("stoichiometry", int(sr.stoichiometry))
			}
		} else {
			sr.writeLegalFloat(o, "stoichiometry", sr.stoichiometry)
		}
	}
	if sr.isSetDenominator && sr.legal("denominator") {
		o.WriteAttrInt("denominator", sr.denominator)
	}
	if sr.isSetConstant {
		sr.writeLegalBool(o, "constant", sr.constant)
	}
}

// ModifierSpeciesReference names a species that influences a reaction
// without being consumed or produced.
type ModifierSpeciesReference struct {
	sbase
	speciesRef
}

var modifierSpeciesReferenceSchema = &ElementSchema{
	Name:  "modifierSpeciesReference",
	Since: L2V1,
	Attributes: append(sbaseOptionalId(L2V2),
		AttributeSpec{Name: "species", Required: always},
	),
}

func init() {
	registerType(TypeModifierSpeciesReference, modifierSpeciesReferenceSchema, func(ns *Namespaces) Node {
		return newModifierSpeciesReference(ns)
	})
}

func NewModifierSpeciesReference(level, version uint) (*ModifierSpeciesReference, error) {
	ns, err := namespacesFor(TypeModifierSpeciesReference, level, version)
	if err != nil {
		return nil, err
	}
	return newModifierSpeciesReference(ns), nil
}

func newModifierSpeciesReference(ns *Namespaces) *ModifierSpeciesReference {
	sr := &ModifierSpeciesReference{}
	sr.sbase = newSBase(sr, ns)
	return sr
}

func (sr *ModifierSpeciesReference) TypeCode() TypeCode { return TypeModifierSpeciesReference }

func (sr *ModifierSpeciesReference) Accept(v Visitor) bool {
	return v.VisitModifierSpeciesReference(sr)
}

func (sr *ModifierSpeciesReference) Clone() Node {
	c := new(ModifierSpeciesReference)
	*c = *sr
	c.sbase = sr.cloneFor(c)
	return c
}

func (sr *ModifierSpeciesReference) isSetAttribute(name string) bool {
	if name == "species" {
		return sr.species != ""
	}
	return sr.sbase.isSetAttribute(name)
}

func (sr *ModifierSpeciesReference) readAttributes(s *XMLInputStream, t XMLToken, ea *ExpectedAttributes) {
	sr.sbase.readAttributes(s, t, ea)
	sr.readAttrSIdRef(s, t, ea, "species", &sr.species)
}

func (sr *ModifierSpeciesReference) writeAttributes(o *XMLOutputStream) {
	sr.sbase.writeAttributes(o)
	if sr.species != "" {
		sr.writeLegal(o, "species", sr.species)
	}
}
