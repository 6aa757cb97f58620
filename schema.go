package sbml

import (
	"golang.org/x/exp/slices"
)

// AttributeSpec describes one attribute of an element kind. A zero Since
// means "from the first level", a zero Until means "still present".
type AttributeSpec struct {
	Name     string
	Since    LevelVersion
	Until    LevelVersion
	Required func(LevelVersion) bool
}

// Legal reports whether the attribute exists at lv.
func (a *AttributeSpec) Legal(lv LevelVersion) bool { return inRange(lv, a.Since, a.Until) }

// RequiredAt reports whether the attribute is mandatory at lv.
func (a *AttributeSpec) RequiredAt(lv LevelVersion) bool {
	return a.Legal(lv) && a.Required != nil && a.Required(lv)
}

// ChildSpec describes one child element in schema order.
type ChildSpec struct {
	Name  string
	Since LevelVersion
	Until LevelVersion
}

// ElementSchema is the per level/version knowledge of one element kind.
type ElementSchema struct {
	Name string

	// L1V1Name is the spelling used by Level 1 Version 1, if different.
	L1V1Name string

	Since      LevelVersion
	Until      LevelVersion
	Attributes []AttributeSpec
	Children   []ChildSpec
}

func inRange(lv, since, until LevelVersion) bool {
	if since != (LevelVersion{}) && lv.Before(since) {
		return false
	}
	if until != (LevelVersion{}) && until.Before(lv) {
		return false
	}
	return true
}

// Legal reports whether the kind exists at lv.
func (s *ElementSchema) Legal(lv LevelVersion) bool { return inRange(lv, s.Since, s.Until) }

// ElementName returns the XML element name used at lv.
func (s *ElementSchema) ElementName(lv LevelVersion) string {
	if s.L1V1Name != "" && lv == L1V1 {
		return s.L1V1Name
	}
	return s.Name
}

// MatchesElement reports whether name spells the kind at lv. Level 1
// readers accept both spellings.
func (s *ElementSchema) MatchesElement(name string, lv LevelVersion) bool {
	if name == s.Name {
		return true
	}
	return s.L1V1Name != "" && lv.Level == 1 && name == s.L1V1Name
}

// Attribute returns the declaration of name, nil when unknown.
func (s *ElementSchema) Attribute(name string) *AttributeSpec {
	for i := range s.Attributes {
		if s.Attributes[i].Name == name {
			return &s.Attributes[i]
		}
	}
	return nil
}

// AttributeLegal reports whether name exists on the kind at lv.
func (s *ElementSchema) AttributeLegal(name string, lv LevelVersion) bool {
	a := s.Attribute(name)
	return a != nil && a.Legal(lv)
}

// ExpectedAttributes returns the attribute names legal at lv.
func (s *ElementSchema) ExpectedAttributes(lv LevelVersion) *ExpectedAttributes {
	ea := NewExpectedAttributes()
	for i := range s.Attributes {
		if s.Attributes[i].Legal(lv) {
			ea.Add(s.Attributes[i].Name)
		}
	}
	return ea
}

// RequiredAttributes returns the attribute names mandatory at lv.
func (s *ElementSchema) RequiredAttributes(lv LevelVersion) []string {
	var names []string
	for i := range s.Attributes {
		if s.Attributes[i].RequiredAt(lv) {
			names = append(names, s.Attributes[i].Name)
		}
	}
	return names
}

// ChildOrder returns the schema position of child name at lv, -1 when the
// child is not legal there.
func (s *ElementSchema) ChildOrder(name string, lv LevelVersion) int {
	for i, c := range s.Children {
		if c.Name == name {
			if inRange(lv, c.Since, c.Until) {
				return i
			}
			return -1
		}
	}
	return -1
}

// HasChild reports whether name is a child of the kind at any level.
func (s *ElementSchema) HasChild(name string) bool {
	return slices.IndexFunc(s.Children, func(c ChildSpec) bool { return c.Name == name }) >= 0
}

// ExpectedAttributes is the set of attribute names a reader accepts.
type ExpectedAttributes struct {
	names []string
}

func NewExpectedAttributes() *ExpectedAttributes { return &ExpectedAttributes{} }

func (ea *ExpectedAttributes) Add(name string) {
	if !ea.Has(name) {
		ea.names = append(ea.names, name)
	}
}

func (ea *ExpectedAttributes) Has(name string) bool { return slices.Contains(ea.names, name) }

func (ea *ExpectedAttributes) Names() []string { return append([]string(nil), ea.names...) }

func always(LevelVersion) bool { return true }

func requiredFrom(from LevelVersion) func(LevelVersion) bool {
	return func(lv LevelVersion) bool { return lv.AtLeast(from) }
}

func requiredBefore(before LevelVersion) func(LevelVersion) bool {
	return func(lv LevelVersion) bool { return lv.Before(before) }
}

func requiredIn(lvs ...LevelVersion) func(LevelVersion) bool {
	return func(lv LevelVersion) bool { return slices.Contains(lvs, lv) }
}

// sbaseAttributes are shared by every kind carrying an identifier. In
// Level 1 the identifier is spelled "name".
func sbaseAttributes(idRequired bool) []AttributeSpec {
	var idReq, nameReq func(LevelVersion) bool
	if idRequired {
		idReq = always
		nameReq = requiredBefore(L2V1)
	}

	return []AttributeSpec{
		{Name: "metaid", Since: L2V1},
		{Name: "sboTerm", Since: L2V2},
		{Name: "id", Since: L2V1, Required: idReq},
		{Name: "name", Required: nameReq},
	}
}
