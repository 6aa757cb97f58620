package sbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitorDocument(t *testing.T) *Document {
	d, err := NewDocument(3, 2)
	require.NoError(t, err)

	m := d.CreateModel("m")
	c := m.CreateCompartment()
	require.Equal(t, OperationSuccess, c.SetId("cell"))

	for _, id := range []string{"A", "B"} {
		sp := m.CreateSpecies()
		require.Equal(t, OperationSuccess, sp.SetId(id))
		require.Equal(t, OperationSuccess, sp.SetCompartment("cell"))
	}

	r := m.CreateReaction()
	require.Equal(t, OperationSuccess, r.SetId("r1"))
	require.Equal(t, OperationSuccess, r.SetCompartment("cell"))
	require.Equal(t, OperationSuccess, r.CreateReactant().SetSpecies("A"))
	require.Equal(t, OperationSuccess, r.CreateProduct().SetSpecies("B"))
	require.Equal(t, OperationSuccess, r.CreateModifier().SetSpecies("A"))

	e := m.CreateEvent()
	require.Equal(t, OperationSuccess, e.SetId("e1"))
	require.Equal(t, OperationSuccess, e.CreateEventAssignment().SetVariable("A"))

	return d
}

type recordingVisitor struct {
	BaseVisitor
	pruneReactions bool
	trace          []string
}

func (v *recordingVisitor) VisitModel(m *Model) bool {
	v.trace = append(v.trace, "model")
	return true
}

func (v *recordingVisitor) VisitSpecies(s *Species) bool {
	v.trace = append(v.trace, "species:"+s.Id())
	return true
}

func (v *recordingVisitor) VisitReaction(r *Reaction) bool {
	v.trace = append(v.trace, "reaction:"+r.Id())
	return !v.pruneReactions
}

func (v *recordingVisitor) VisitSpeciesReference(sr *SpeciesReference) bool {
	v.trace = append(v.trace, "ref:"+sr.Species())
	return true
}

func (v *recordingVisitor) LeaveReaction(r *Reaction) {
	v.trace = append(v.trace, "leave:"+r.Id())
}

func (v *recordingVisitor) LeaveModel(*Model) {
	v.trace = append(v.trace, "leave:model")
}

func TestVisitorOrder(t *testing.T) {
	d := newVisitorDocument(t)

	v := &recordingVisitor{}
	d.Accept(v)
	assert.Equal(t, []string{
		"model", "species:A", "species:B", "reaction:r1", "ref:A", "ref:B", "leave:r1", "leave:model",
	}, v.trace)
}

func TestVisitorPruneStillLeaves(t *testing.T) {
	d := newVisitorDocument(t)

	v := &recordingVisitor{pruneReactions: true}
	d.Accept(v)
	assert.Equal(t, []string{
		"model", "species:A", "species:B", "reaction:r1", "leave:r1", "leave:model",
	}, v.trace)
}

func TestWalk(t *testing.T) {
	d := newVisitorDocument(t)

	var ids []string
	Walk(d, func(n Node) bool {
		if n.Id() != "" {
			ids = append(ids, n.Id())
		}
		return n.TypeCode() != TypeReaction
	})
	assert.Equal(t, []string{"m", "cell", "A", "B", "r1", "e1"}, ids)

	var count int
	Walk(d, func(Node) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)

	Walk(nil, func(Node) bool {
		t.Fatal("nil root visited")
		return true
	})
}

func TestWalkDepth(t *testing.T) {
	d := newVisitorDocument(t)

	depths := map[string]int{}
	WalkDepth(d, func(n Node, depth int) bool {
		if n.Id() != "" {
			depths[n.Id()] = depth
		}
		return true
	})

	// document, model, list, item
	assert.Equal(t, map[string]int{"m": 1, "cell": 3, "A": 3, "B": 3, "r1": 3, "e1": 3}, depths)
}

func TestAllElements(t *testing.T) {
	d := newVisitorDocument(t)

	species := d.AllElements(func(n Node) bool { return n.TypeCode() == TypeSpecies })
	require.Len(t, species, 2)
	assert.Equal(t, "A", species[0].Id())
	assert.Equal(t, "B", species[1].Id())

	all := d.AllElements(nil)
	assert.Greater(t, len(all), len(species))
	for _, n := range all {
		assert.NotEqual(t, TypeDocument, n.TypeCode())
	}
}

func TestRenameSIdRefs(t *testing.T) {
	d := newVisitorDocument(t)

	assert.Equal(t, 0, d.RenameSIdRefs("A", "not valid"))
	assert.Equal(t, 0, d.RenameSIdRefs("A", "A"))

	assert.Equal(t, 3, d.RenameSIdRefs("A", "X"))
	m := d.Model()
	assert.NotNil(t, m.SpeciesById("A"))
	assert.Equal(t, "X", m.Event("e1").EventAssignment(0).Variable())

	assert.Equal(t, 3, d.RenameSIdRefs("cell", "room"))
	assert.Equal(t, "room", m.Reaction("r1").Compartment())
	assert.Equal(t, "cell", m.Compartment("cell").Id())
}

func TestRenameSIdRefsModelUnits(t *testing.T) {
	d := newVisitorDocument(t)
	m := d.Model()
	require.Equal(t, OperationSuccess, m.SetAreaUnits("u"))
	require.Equal(t, OperationSuccess, m.SetLengthUnits("u"))
	require.Equal(t, OperationSuccess, m.SetTimeUnits("u"))
	require.Equal(t, OperationSuccess, m.SetConversionFactor("u"))

	assert.Equal(t, 4, d.RenameSIdRefs("u", "v"))
	assert.Equal(t, "v", m.AreaUnits())
	assert.Equal(t, "v", m.LengthUnits())
	assert.Equal(t, "v", m.TimeUnits())
	assert.Equal(t, "v", m.ConversionFactor())
}
