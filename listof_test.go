package sbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompartment(t *testing.T, id string, level, version uint) *Compartment {
	c, err := NewCompartment(level, version)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, c.SetId(id))
	return c
}

func TestListOfAppendRejectRemove(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 3, 2)
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, OperationSuccess, l.AppendAndOwn(newTestCompartment(t, id, 3, 2)))
	}

	sp, err := NewSpecies(3, 2)
	require.NoError(t, err)
	assert.Equal(t, InvalidObject, l.AppendAndOwn(sp))
	assert.Equal(t, 3, l.Size())

	removed := l.Remove(1)
	require.NotNil(t, removed)
	assert.Equal(t, "b", removed.Id())
	assert.Nil(t, removed.Parent())
	assert.Equal(t, 2, l.Size())
	assert.Equal(t, "a", l.Get(0).Id())
	assert.Equal(t, "c", l.Get(1).Id())
}

func TestListOfAppendClones(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 2, 4)
	require.NoError(t, err)

	c := newTestCompartment(t, "cell", 2, 4)
	require.Equal(t, OperationSuccess, l.Append(c))

	stored := l.Get(0)
	assert.NotSame(t, c, stored)
	assert.Nil(t, c.Parent())
	assert.Same(t, l, stored.Parent())

	c.SetId("other")
	assert.Equal(t, "cell", stored.Id())
}

func TestListOfAppendAndOwn(t *testing.T) {
	l, err := NewListOfType(TypeParameter, 3, 1)
	require.NoError(t, err)

	p, err := NewParameter(3, 1)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, l.AppendAndOwn(p))
	assert.Same(t, p, l.Get(0))
	assert.Same(t, l, p.Parent())

	other, err := NewListOfType(TypeParameter, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, OperationFailed, other.AppendAndOwn(p))

	assert.Equal(t, InvalidObject, l.AppendAndOwn(nil))
}

func TestListOfLevelVersionMismatch(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, LevelMismatch, l.Append(newTestCompartment(t, "x", 3, 1)))
	assert.Equal(t, VersionMismatch, l.Append(newTestCompartment(t, "x", 2, 3)))
	assert.Equal(t, 0, l.Size())
}

func TestListOfInsertBounds(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, IndexExceedsSize, l.Insert(1, newTestCompartment(t, "a", 3, 2)))
	assert.Equal(t, IndexExceedsSize, l.Insert(-1, newTestCompartment(t, "a", 3, 2)))
	assert.Equal(t, 0, l.Size())

	require.Equal(t, OperationSuccess, l.Insert(0, newTestCompartment(t, "b", 3, 2)))
	require.Equal(t, OperationSuccess, l.Insert(0, newTestCompartment(t, "a", 3, 2)))
	require.Equal(t, OperationSuccess, l.Insert(2, newTestCompartment(t, "c", 3, 2)))

	var ids []string
	for _, item := range l.Items() {
		ids = append(ids, item.Id())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	assert.Nil(t, l.Get(3))
	assert.Nil(t, l.Get(-1))
	assert.Nil(t, l.Remove(3))
}

func TestListOfGetByIdFirstMatch(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 3, 2)
	require.NoError(t, err)

	first := newTestCompartment(t, "dup", 3, 2)
	first.SetName("first")
	second := newTestCompartment(t, "dup", 3, 2)
	second.SetName("second")
	require.Equal(t, OperationSuccess, l.Append(first))
	require.Equal(t, OperationSuccess, l.Append(second))

	assert.Equal(t, "first", l.GetById("dup").Name())
	assert.Nil(t, l.GetById("missing"))

	removed := l.RemoveById("dup")
	require.NotNil(t, removed)
	assert.Equal(t, "first", removed.Name())
	assert.Equal(t, "second", l.GetById("dup").Name())
}

func TestListOfUnknownItemType(t *testing.T) {
	l, err := NewListOf(3, 2)
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, l.ItemTypeCode())

	p, err := NewParameter(3, 2)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, l.Append(p))
	assert.Equal(t, TypeParameter, l.ItemTypeCode())
	assert.Equal(t, "listOfParameters", l.ElementName())

	assert.Equal(t, InvalidObject, l.Append(newTestCompartment(t, "c", 3, 2)))
}

func TestListOfRuleFamily(t *testing.T) {
	l, err := NewListOfType(TypeAssignmentRule, 3, 2)
	require.NoError(t, err)

	ar, err := NewAssignmentRule(3, 2)
	require.NoError(t, err)
	rr, err := NewRateRule(3, 2)
	require.NoError(t, err)

	assert.Equal(t, OperationSuccess, l.Append(ar))
	assert.Equal(t, OperationSuccess, l.Append(rr))
	assert.Len(t, ItemsOf[*Rule](l), 2)

	r, ok := GetAs[*Rule](l, 1)
	require.True(t, ok)
	assert.True(t, r.IsRate())

	_, ok = GetAs[*Rule](l, 2)
	assert.False(t, ok)
}

func TestListOfClear(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 3, 2)
	require.NoError(t, err)
	for _, id := range []string{"a", "b"} {
		require.Equal(t, OperationSuccess, l.Append(newTestCompartment(t, id, 3, 2)))
	}

	items := l.Clear(false)
	require.Len(t, items, 2)
	assert.Equal(t, 0, l.Size())
	for _, item := range items {
		assert.Nil(t, item.Parent())
	}

	require.Equal(t, OperationSuccess, l.Append(newTestCompartment(t, "c", 3, 2)))
	assert.Nil(t, l.Clear(true))
}

func TestListOfClone(t *testing.T) {
	l, err := NewListOfType(TypeCompartment, 3, 2)
	require.NoError(t, err)
	require.Equal(t, OperationSuccess, l.Append(newTestCompartment(t, "a", 3, 2)))

	c := l.Clone().(*ListOf)
	require.Equal(t, 1, c.Size())
	assert.NotSame(t, l.Get(0), c.Get(0))
	assert.Same(t, c, c.Get(0).Parent())
	assert.Equal(t, TypeCompartment, c.ItemTypeCode())
}

func TestListOfRejectsContainers(t *testing.T) {
	l, err := NewListOf(3, 1)
	require.NoError(t, err)

	assert.Equal(t, InvalidObject, l.AppendAndOwn(l))
	assert.Nil(t, l.Parent())

	other, err := NewListOf(3, 1)
	require.NoError(t, err)
	assert.Equal(t, InvalidObject, l.Append(other))

	m, err := NewModel(3, 1)
	require.NoError(t, err)
	assert.Equal(t, InvalidObject, l.AppendAndOwn(m))

	assert.Equal(t, 0, l.Size())
	assert.Equal(t, TypeUnknown, l.ItemTypeCode())
	assert.NotPanics(t, func() { l.Clone() })

	for _, tc := range []TypeCode{TypeListOf, TypeModel, TypeDocument} {
		_, err := NewListOfType(tc, 3, 1)
		assert.True(t, IsConstructorError(err), tc.String())
	}
}

func TestListOfRejectsAncestor(t *testing.T) {
	r, err := NewReaction(3, 1)
	require.NoError(t, err)
	l, err := NewListOfType(TypeReaction, 3, 1)
	require.NoError(t, err)
	r.adopt(l)

	assert.Equal(t, OperationFailed, l.AppendAndOwn(r))
	assert.Equal(t, 0, l.Size())
	assert.Nil(t, r.Parent())
}
