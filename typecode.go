package sbml

import (
	"github.com/GodYY/gutils/assert"
	"github.com/pkg/errors"
)

// TypeCode discriminates the concrete kind of a Node.
type TypeCode int8

const (
	TypeUnknown = TypeCode(iota)
	TypeDocument
	TypeListOf
	TypeModel
	TypeCompartment
	TypeSpecies
	TypeParameter
	TypeAssignmentRule
	TypeRateRule
	TypeAlgebraicRule
	TypeReaction
	TypeSpeciesReference
	TypeModifierSpeciesReference
	TypeEvent
	TypeEventAssignment
	typeCodeEnd
)

// Type metadata.
type typeMETA struct {
	// element name.
	name string

	// type value.
	typ TypeCode

	schema *ElementSchema

	// function of creating node, nil for kinds built elsewhere.
	creator func(*Namespaces) Node
}

var typeName2META = map[string]*typeMETA{}
var typeCode2META = map[TypeCode]*typeMETA{}

func (t TypeCode) String() string {
	if meta := typeCode2META[t]; meta != nil {
		return meta.name
	}
	return "unknown"
}

// Schema returns the element schema of t, nil for TypeUnknown.
func (t TypeCode) Schema() *ElementSchema {
	if meta := typeCode2META[t]; meta != nil {
		return meta.schema
	}
	return nil
}

// IsRule reports whether t belongs to the rule family.
func (t TypeCode) IsRule() bool {
	return t == TypeAssignmentRule || t == TypeRateRule || t == TypeAlgebraicRule
}

// Register one kind.
func registerType(typ TypeCode, schema *ElementSchema, creator func(*Namespaces) Node) {
	assert.Assert(schema != nil, "schema nil")
	assert.AssertF(typ > TypeUnknown && typ < typeCodeEnd, "type code %d out of range", typ)
	assert.AssertF(typeCode2META[typ] == nil, "type code %d registered", typ)
	assert.AssertF(typeName2META[schema.Name] == nil, "type \"%s\" registered", schema.Name)

	meta := &typeMETA{
		name:    schema.Name,
		typ:     typ,
		schema:  schema,
		creator: creator,
	}

	typeName2META[meta.name] = meta
	typeCode2META[typ] = meta
}

// TypeForElement returns the kind spelled name at lv.
func TypeForElement(name string, lv LevelVersion) TypeCode {
	if meta := typeName2META[name]; meta != nil {
		return meta.typ
	}
	for _, meta := range typeCode2META {
		if meta.schema.MatchesElement(name, lv) {
			return meta.typ
		}
	}
	return TypeUnknown
}

// NewNode creates an empty node of kind tc in the context of ns.
func NewNode(tc TypeCode, ns *Namespaces) (Node, error) {
	meta := typeCode2META[tc]
	if meta == nil || meta.creator == nil {
		return nil, errors.WithMessagef(errTypeNotFound, "type code %d", tc)
	}

	if ns == nil {
		return nil, errors.WithMessage(errNilNode, "namespaces")
	}

	if !meta.schema.Legal(ns.LevelVersion()) {
		return nil, newConstructorError(meta.name, ns.LevelVersion(), "not a valid component for this level/version")
	}

	return meta.creator(ns.Clone()), nil
}

func checkConstruct(tc TypeCode, ns *Namespaces) error {
	if ns == nil {
		return newConstructorError(tc.String(), LevelVersion{}, "nil namespaces")
	}
	if !ns.LevelVersion().Valid() {
		return newConstructorError(tc.String(), ns.LevelVersion(), "invalid level/version combination")
	}
	if s := tc.Schema(); s != nil && !s.Legal(ns.LevelVersion()) {
		return newConstructorError(tc.String(), ns.LevelVersion(), "not a valid component for this level/version")
	}
	return nil
}

func namespacesFor(tc TypeCode, level, version uint) (*Namespaces, error) {
	ns, err := NewNamespaces(level, version)
	if err != nil {
		return nil, newConstructorError(tc.String(), LevelVersion{level, version}, "invalid level/version combination")
	}
	return ns, checkConstruct(tc, ns)
}
