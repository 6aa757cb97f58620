package sbml

import (
	"github.com/GodYY/gutils/assert"
)

// Node is the capability set shared by every element of the model tree.
// The set of implementations is closed: the unexported hooks are only
// satisfied by the kinds of this package.
type Node interface {
	TypeCode() TypeCode
	ElementName() string
	Level() uint
	Version() uint
	LevelVersion() LevelVersion
	Namespaces() *Namespaces

	Id() string
	SetId(string) Status
	IsSetId() bool
	UnsetId() Status

	Name() string
	SetName(string) Status
	IsSetName() bool
	UnsetName() Status

	MetaId() string
	SetMetaId(string) Status
	IsSetMetaId() bool
	UnsetMetaId() Status

	SBOTerm() int
	SBOTermID() string
	SetSBOTerm(int) Status
	SetSBOTermID(string) Status
	IsSetSBOTerm() bool
	UnsetSBOTerm() Status

	Notes() *XMLNode
	SetNotes(*XMLNode) Status
	IsSetNotes() bool
	UnsetNotes() Status

	Annotation() *XMLNode
	SetAnnotation(*XMLNode) Status
	IsSetAnnotation() bool
	UnsetAnnotation() Status

	ExtensionAttribute(uri, name string) (string, bool)
	SetExtensionAttribute(uri, name, value string) Status
	UnsetExtensionAttribute(uri, name string) Status

	Line() int
	Column() int
	Parent() Node
	Document() *Document
	Model() *Model

	// Accept lets v visit the node and, unless v prunes it, its subtree.
	Accept(v Visitor) bool

	// Clone returns a deep copy detached from any parent.
	Clone() Node

	// Read consumes one complete element from s.
	Read(s *XMLInputStream)

	// Write emits the node as one element.
	Write(o *XMLOutputStream)

	HasRequiredAttributes() bool
	HasRequiredElements() bool

	base() *sbase
	addExpectedAttributes(*ExpectedAttributes)
	readAttributes(*XMLInputStream, XMLToken, *ExpectedAttributes)
	writeAttributes(*XMLOutputStream)
	createObject(*XMLInputStream, XMLToken) Node
	readOtherXML(*XMLInputStream, XMLToken) bool
	writeElements(*XMLOutputStream)
	isSetAttribute(name string) bool
	children() []Node
}

// sbase carries identity, metadata and the read/write skeleton. Kinds embed
// it and hand it themselves as self so the skeleton reaches their hooks.
type sbase struct {
	self Node
	ns   *Namespaces

	id      string
	name    string
	metaId  string
	sboTerm int

	notes      *XMLNode
	annotation *XMLNode

	// package attributes, including those of unknown packages
	extAttrs []XMLAttr

	line, column int

	parent Node
	doc    *Document
}

func newSBase(self Node, ns *Namespaces) sbase {
	assert.Assert(self != nil, "self nil")
	assert.Assert(ns != nil, "namespaces nil")

	return sbase{
		self:    self,
		ns:      ns,
		sboTerm: -1,
	}
}

func (b *sbase) base() *sbase { return b }

func (b *sbase) schema() *ElementSchema { return b.self.TypeCode().Schema() }

func (b *sbase) ElementName() string { return b.schema().ElementName(b.ns.LevelVersion()) }

func (b *sbase) Level() uint                { return b.ns.Level() }
func (b *sbase) Version() uint              { return b.ns.Version() }
func (b *sbase) LevelVersion() LevelVersion { return b.ns.LevelVersion() }
func (b *sbase) Namespaces() *Namespaces    { return b.ns }

func (b *sbase) Line() int   { return b.line }
func (b *sbase) Column() int { return b.column }

func (b *sbase) Parent() Node        { return b.parent }
func (b *sbase) Document() *Document { return b.doc }

// Model returns the closest enclosing model.
func (b *sbase) Model() *Model {
	for n := b.self; n != nil; n = n.Parent() {
		if m, ok := n.(*Model); ok {
			return m
		}
	}
	if b.doc != nil {
		return b.doc.Model()
	}
	return nil
}

func (b *sbase) legal(attr string) bool {
	return b.schema().AttributeLegal(attr, b.ns.LevelVersion())
}

// Level 1 spells the identifier "name".
func (b *sbase) l1() bool { return b.ns.Level() == 1 }

func (b *sbase) idLegal() bool {
	if b.schema().Attribute("id") == nil {
		return false
	}
	if b.l1() {
		return b.legal("name")
	}
	return b.legal("id")
}

func (b *sbase) Id() string    { return b.id }
func (b *sbase) IsSetId() bool { return b.id != "" }

// SetId validates id against the SId grammar. An invalid id is refused
// and the previous value kept; "" unsets.
func (b *sbase) SetId(id string) Status {
	if !b.idLegal() {
		return UnexpectedAttribute
	}
	if id == "" {
		b.id = ""
		return OperationSuccess
	}
	if !IsValidSId(id) {
		return InvalidAttributeValue
	}
	b.id = id
	return OperationSuccess
}

func (b *sbase) UnsetId() Status {
	b.id = ""
	return OperationSuccess
}

func (b *sbase) Name() string {
	if b.l1() {
		return b.id
	}
	return b.name
}

func (b *sbase) IsSetName() bool { return b.Name() != "" }

func (b *sbase) SetName(name string) Status {
	if b.l1() {
		return b.SetId(name)
	}
	if !b.legal("name") {
		return UnexpectedAttribute
	}
	b.name = name
	return OperationSuccess
}

func (b *sbase) UnsetName() Status {
	if b.l1() {
		return b.UnsetId()
	}
	b.name = ""
	return OperationSuccess
}

func (b *sbase) MetaId() string    { return b.metaId }
func (b *sbase) IsSetMetaId() bool { return b.metaId != "" }

func (b *sbase) SetMetaId(metaId string) Status {
	if !b.legal("metaid") {
		return UnexpectedAttribute
	}
	if metaId == "" {
		b.metaId = ""
		return OperationSuccess
	}
	if !IsValidMetaId(metaId) {
		return InvalidAttributeValue
	}
	b.metaId = metaId
	return OperationSuccess
}

func (b *sbase) UnsetMetaId() Status {
	b.metaId = ""
	return OperationSuccess
}

func (b *sbase) SBOTerm() int       { return b.sboTerm }
func (b *sbase) SBOTermID() string  { return FormatSBOTerm(b.sboTerm) }
func (b *sbase) IsSetSBOTerm() bool { return b.sboTerm >= 0 }

func (b *sbase) SetSBOTerm(term int) Status {
	if !b.legal("sboTerm") {
		return UnexpectedAttribute
	}
	if !IsValidSBOTerm(term) {
		return InvalidAttributeValue
	}
	b.sboTerm = term
	return OperationSuccess
}

func (b *sbase) SetSBOTermID(id string) Status {
	term, ok := ParseSBOTerm(id)
	if !ok {
		if !b.legal("sboTerm") {
			return UnexpectedAttribute
		}
		return InvalidAttributeValue
	}
	return b.SetSBOTerm(term)
}

func (b *sbase) UnsetSBOTerm() Status {
	b.sboTerm = -1
	return OperationSuccess
}

func (b *sbase) Notes() *XMLNode  { return b.notes }
func (b *sbase) IsSetNotes() bool { return b.notes != nil }

// SetNotes stores a copy of notes, wrapping it in a notes element when
// needed. nil unsets.
func (b *sbase) SetNotes(notes *XMLNode) Status {
	if notes == nil {
		b.notes = nil
		return OperationSuccess
	}
	wrapped, ok := wrapXMLNode(notes, "notes")
	if !ok {
		return InvalidObject
	}
	b.notes = wrapped
	return OperationSuccess
}

func (b *sbase) UnsetNotes() Status {
	b.notes = nil
	return OperationSuccess
}

func (b *sbase) Annotation() *XMLNode  { return b.annotation }
func (b *sbase) IsSetAnnotation() bool { return b.annotation != nil }

// SetAnnotation stores a copy of annotation, wrapping it in an annotation
// element when needed. nil unsets.
func (b *sbase) SetAnnotation(annotation *XMLNode) Status {
	if annotation == nil {
		b.annotation = nil
		return OperationSuccess
	}
	wrapped, ok := wrapXMLNode(annotation, "annotation")
	if !ok {
		return InvalidObject
	}
	b.annotation = wrapped
	return OperationSuccess
}

func (b *sbase) UnsetAnnotation() Status {
	b.annotation = nil
	return OperationSuccess
}

func wrapXMLNode(n *XMLNode, wrapper string) (*XMLNode, bool) {
	if n.IsText() {
		return nil, false
	}
	if n.Name == wrapper {
		return n.Clone(), true
	}
	return NewXMLElement(wrapper, "", "").AddChild(n.Clone()), true
}

// ExtensionAttribute returns the package attribute name of namespace uri.
func (b *sbase) ExtensionAttribute(uri, name string) (string, bool) {
	for _, a := range b.extAttrs {
		if a.URI == uri && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetExtensionAttribute sets a package attribute. The package must be
// enabled on the owning document and must declare the attribute for this
// kind.
func (b *sbase) SetExtensionAttribute(uri, name, value string) Status {
	if b.doc == nil {
		return PkgUnknown
	}
	binding := b.doc.packageFor(uri)
	if binding == nil {
		return PkgUnknown
	}
	if !binding.ext.allows(b.self.TypeCode(), name) {
		return UnexpectedAttribute
	}

	for i := range b.extAttrs {
		if b.extAttrs[i].URI == uri && b.extAttrs[i].Name == name {
			b.extAttrs[i].Value = value
			return OperationSuccess
		}
	}
	b.extAttrs = append(b.extAttrs, XMLAttr{Name: name, URI: uri, Prefix: binding.prefix, Value: value})
	return OperationSuccess
}

func (b *sbase) UnsetExtensionAttribute(uri, name string) Status {
	for i := range b.extAttrs {
		if b.extAttrs[i].URI == uri && b.extAttrs[i].Name == name {
			b.extAttrs = append(b.extAttrs[:i], b.extAttrs[i+1:]...)
			return OperationSuccess
		}
	}
	return OperationSuccess
}

func (b *sbase) HasRequiredAttributes() bool { return len(missingAttributes(b.self)) == 0 }

func (b *sbase) HasRequiredElements() bool { return true }

func (b *sbase) isSetAttribute(name string) bool {
	switch name {
	case "id":
		return b.id != ""
	case "name":
		return b.IsSetName()
	case "metaid":
		return b.metaId != ""
	case "sboTerm":
		return b.IsSetSBOTerm()
	}
	return false
}

// MissingAttributes lists the attributes required at the level/version of
// n that are not set.
func MissingAttributes(n Node) []string {
	if n == nil {
		return nil
	}
	return missingAttributes(n)
}

func missingAttributes(n Node) []string {
	var missing []string
	for _, name := range n.TypeCode().Schema().RequiredAttributes(n.LevelVersion()) {
		if !n.isSetAttribute(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func (b *sbase) children() []Node { return nil }

func (b *sbase) createObject(*XMLInputStream, XMLToken) Node { return nil }

func (b *sbase) readOtherXML(*XMLInputStream, XMLToken) bool { return false }

func (b *sbase) writeElements(*XMLOutputStream) {}

// connect records parent and propagates its document to the subtree.
func (b *sbase) connect(parent Node) {
	b.parent = parent
	if parent != nil {
		b.setDocument(parent.Document())
	} else {
		b.setDocument(nil)
	}
}

func (b *sbase) setDocument(doc *Document) {
	b.doc = doc
	for _, c := range b.self.children() {
		c.base().setDocument(doc)
	}
}

// detach drops the back references of the node and its subtree.
func (b *sbase) detach() {
	b.parent = nil
	b.setDocument(nil)
}

// cloneFor copies the base of b into the base of self.
func (b *sbase) cloneFor(self Node) sbase {
	c := *b
	c.self = self
	c.ns = b.ns.Clone()
	c.notes = b.notes.Clone()
	c.annotation = b.annotation.Clone()
	c.extAttrs = append([]XMLAttr(nil), b.extAttrs...)
	c.parent = nil
	c.doc = nil
	return c
}

// adopt connects child to self after a clone or a creation.
func (b *sbase) adopt(child Node) {
	if child != nil {
		child.base().connect(b.self)
	}
}

// setSIdRef stores a reference attribute; "" unsets.
func (b *sbase) setSIdRef(attr string, dst *string, v string) Status {
	if !b.legal(attr) {
		return UnexpectedAttribute
	}
	if v == "" {
		*dst = ""
		return OperationSuccess
	}
	if !IsValidSId(v) {
		return InvalidAttributeValue
	}
	*dst = v
	return OperationSuccess
}

func (b *sbase) setString(attr string, dst *string, v string) Status {
	if !b.legal(attr) {
		return UnexpectedAttribute
	}
	*dst = v
	return OperationSuccess
}

func (b *sbase) setBool(attr string, dst, isSet *bool, v bool) Status {
	if !b.legal(attr) {
		return UnexpectedAttribute
	}
	*dst, *isSet = v, true
	return OperationSuccess
}

func (b *sbase) setFloat(attr string, dst *float64, isSet *bool, v float64) Status {
	if !b.legal(attr) {
		return UnexpectedAttribute
	}
	*dst, *isSet = v, true
	return OperationSuccess
}

// sbaseOptionalId returns the shared attributes of kinds whose identifier
// appears late and is never required.
func sbaseOptionalId(since LevelVersion) []AttributeSpec {
	return []AttributeSpec{
		{Name: "metaid", Since: L2V1},
		{Name: "sboTerm", Since: L2V2},
		{Name: "id", Since: since},
		{Name: "name", Since: since},
	}
}
