package sbml

// ListOf is an ordered, owning list of sibling nodes of one kind. The rule
// family shares one list.
type ListOf struct {
	sbase

	// element name, "" for a free standing list
	name string

	itemType TypeCode
	items    []Node
}

var listOfSchema = &ElementSchema{
	Name:       "listOf",
	Attributes: sbaseOptionalId(L3V2),
}

// default element names of the lists holding each kind
var listOfNames = map[TypeCode]string{
	TypeCompartment:              "listOfCompartments",
	TypeSpecies:                  "listOfSpecies",
	TypeParameter:                "listOfParameters",
	TypeAssignmentRule:           "listOfRules",
	TypeRateRule:                 "listOfRules",
	TypeAlgebraicRule:            "listOfRules",
	TypeReaction:                 "listOfReactions",
	TypeSpeciesReference:         "listOfReactants",
	TypeModifierSpeciesReference: "listOfModifiers",
	TypeEvent:                    "listOfEvents",
	TypeEventAssignment:          "listOfEventAssignments",
}

func init() {
	registerType(TypeListOf, listOfSchema, func(ns *Namespaces) Node { return newListOf(ns, "", TypeUnknown) })
}

// NewListOf creates an empty list without an item type; the first item
// appended establishes it.
func NewListOf(level, version uint) (*ListOf, error) {
	ns, err := namespacesFor(TypeListOf, level, version)
	if err != nil {
		return nil, err
	}
	return newListOf(ns, "", TypeUnknown), nil
}

// NewListOfType creates an empty list of items of kind itemType.
func NewListOfType(itemType TypeCode, level, version uint) (*ListOf, error) {
	ns, err := namespacesFor(TypeListOf, level, version)
	if err != nil {
		return nil, err
	}
	if itemType != TypeUnknown {
		if !listable(itemType) {
			return nil, newConstructorError(TypeListOf.String(), ns.LevelVersion(), "can not hold "+itemType.String())
		}
		if err := checkConstruct(itemType, ns); err != nil {
			return nil, err
		}
	}
	return newListOf(ns, "", itemType), nil
}

func newListOf(ns *Namespaces, name string, itemType TypeCode) *ListOf {
	l := &ListOf{name: name, itemType: itemType}
	l.sbase = newSBase(l, ns)
	return l
}

func (l *ListOf) TypeCode() TypeCode { return TypeListOf }

// ElementName returns the wrapper element name, derived from the item kind
// unless the list was created for a specific element.
func (l *ListOf) ElementName() string {
	if l.name != "" {
		return l.name
	}
	if name, ok := listOfNames[l.itemType]; ok {
		return name
	}
	return listOfSchema.Name
}

// ItemTypeCode returns the kind of the items, TypeUnknown while no item
// type is established.
func (l *ListOf) ItemTypeCode() TypeCode { return l.itemType }

// listable reports whether tc may be a list item. Containers never are.
func listable(tc TypeCode) bool {
	switch tc {
	case TypeUnknown, TypeDocument, TypeModel, TypeListOf:
		return false
	}
	return true
}

// IsValidTypeForList reports whether item may be stored in l.
func (l *ListOf) IsValidTypeForList(item Node) bool {
	if item == nil {
		return false
	}

	tc := item.TypeCode()
	switch {
	case l.itemType == TypeUnknown:
		return listable(tc)
	case l.itemType.IsRule():
		return tc.IsRule()
	default:
		return tc == l.itemType
	}
}

func (l *ListOf) checkItem(item Node) Status {
	if item == nil || !l.IsValidTypeForList(item) {
		return InvalidObject
	}
	if item.Level() != l.Level() {
		return LevelMismatch
	}
	if item.Version() != l.Version() {
		return VersionMismatch
	}
	return OperationSuccess
}

func (l *ListOf) own(n int, item Node) {
	if l.itemType == TypeUnknown {
		l.itemType = item.TypeCode()
	}

	l.items = append(l.items, nil)
	copy(l.items[n+1:], l.items[n:])
	l.items[n] = item
	l.adopt(item)
}

// Append stores a copy of item; the caller keeps item.
func (l *ListOf) Append(item Node) Status {
	return l.Insert(len(l.items), item)
}

// AppendAndOwn stores item itself. item must not be held by another
// parent.
func (l *ListOf) AppendAndOwn(item Node) Status {
	return l.InsertAndOwn(len(l.items), item)
}

// Insert stores a copy of item at position n, 0 <= n <= Size().
func (l *ListOf) Insert(n int, item Node) Status {
	if st := l.checkItem(item); !st.OK() {
		return st
	}
	if n < 0 || n > len(l.items) {
		return IndexExceedsSize
	}

	l.own(n, item.Clone())
	return OperationSuccess
}

// InsertAndOwn stores item itself at position n, 0 <= n <= Size().
func (l *ListOf) InsertAndOwn(n int, item Node) Status {
	if st := l.checkItem(item); !st.OK() {
		return st
	}
	if n < 0 || n > len(l.items) {
		return IndexExceedsSize
	}
	if item.Parent() != nil {
		return OperationFailed
	}
	for p := Node(l); p != nil; p = p.Parent() {
		if p == item {
			return OperationFailed
		}
	}

	l.own(n, item)
	return OperationSuccess
}

// Get returns the item at n, nil when out of range.
func (l *ListOf) Get(n int) Node {
	if n < 0 || n >= len(l.items) {
		return nil
	}
	return l.items[n]
}

// GetById returns the first item whose id is id.
func (l *ListOf) GetById(id string) Node {
	if id == "" {
		return nil
	}
	for _, item := range l.items {
		if item.Id() == id {
			return item
		}
	}
	return nil
}

func (l *ListOf) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.items {
		if item.Id() == id {
			return i
		}
	}
	return -1
}

// Remove detaches and returns the item at n, nil when out of range. The
// caller owns the result.
func (l *ListOf) Remove(n int) Node {
	if n < 0 || n >= len(l.items) {
		return nil
	}

	item := l.items[n]
	copy(l.items[n:], l.items[n+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]

	item.base().detach()
	return item
}

// RemoveById detaches and returns the first item whose id is id.
func (l *ListOf) RemoveById(id string) Node {
	if i := l.indexOf(id); i >= 0 {
		return l.Remove(i)
	}
	return nil
}

// Clear empties the list. Every item is detached; with doDelete false the
// detached items are handed back to the caller.
func (l *ListOf) Clear(doDelete bool) []Node {
	items := l.items
	l.items = nil

	for _, item := range items {
		item.base().detach()
	}

	if doDelete {
		return nil
	}
	return items
}

func (l *ListOf) Size() int { return len(l.items) }

// Items returns the items in order. The slice is a copy, the items are
// not.
func (l *ListOf) Items() []Node { return append([]Node(nil), l.items...) }

// ItemsOf returns the items of l that are of type T.
func ItemsOf[T Node](l *ListOf) []T {
	if l == nil {
		return nil
	}

	result := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if t, ok := item.(T); ok {
			result = append(result, t)
		}
	}
	return result
}

// GetAs returns the item at n as a T.
func GetAs[T Node](l *ListOf, n int) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	t, ok := l.Get(n).(T)
	return t, ok
}

func (l *ListOf) Accept(v Visitor) bool {
	v.VisitListOf(l)
	for _, item := range l.items {
		item.Accept(v)
	}
	v.LeaveListOf(l)
	return true
}

func (l *ListOf) Clone() Node { return l.clone() }

func (l *ListOf) clone() *ListOf {
	c := &ListOf{name: l.name, itemType: l.itemType}
	c.sbase = l.cloneFor(c)
	c.items = make([]Node, 0, len(l.items))
	for _, item := range l.items {
		ci := item.Clone()
		c.items = append(c.items, ci)
		c.adopt(ci)
	}
	return c
}

// HasRequiredElements reports false for an empty list below L3V2.
func (l *ListOf) HasRequiredElements() bool {
	return len(l.items) > 0 || l.LevelVersion().AtLeast(L3V2)
}

func (l *ListOf) children() []Node { return l.items }

func (l *ListOf) matchesItem(t XMLToken) (TypeCode, bool) {
	lv, name := l.LevelVersion(), t.Name
	switch {
	case l.itemType == TypeUnknown:
		tc := TypeForElement(name, lv)
		return tc, tc != TypeUnknown && tc != TypeListOf && tc != TypeDocument
	case l.itemType.IsRule() && lv.Level == 1:
		return l1RuleType(t)
	case l.itemType.IsRule():
		for _, tc := range []TypeCode{TypeAssignmentRule, TypeRateRule, TypeAlgebraicRule} {
			if tc.Schema().MatchesElement(name, lv) {
				return tc, true
			}
		}
		return TypeUnknown, false
	default:
		return l.itemType, l.itemType.Schema().MatchesElement(name, lv)
	}
}

func (l *ListOf) createObject(s *XMLInputStream, t XMLToken) Node {
	tc, ok := l.matchesItem(t)
	if !ok {
		return nil
	}
	if !tc.Schema().Legal(l.LevelVersion()) {
		l.logNotValid(s, t)
		s.SkipElement()
		return nil
	}

	item, err := NewNode(tc, l.ns)
	if err != nil {
		return nil
	}
	l.own(len(l.items), item)
	return item
}

func (l *ListOf) writeElements(o *XMLOutputStream) {
	for _, item := range l.items {
		item.Write(o)
	}
}

// worth writing: holds items or carries metadata
func (l *ListOf) isSetForWrite() bool {
	return len(l.items) > 0 || l.IsSetMetaId() || l.IsSetNotes() || l.IsSetAnnotation() || l.IsSetSBOTerm()
}
