package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/linked"
	"github.com/joshuapare/pcbkit/pcb/script"
	"github.com/joshuapare/pcbkit/pcb/sibling"
)

// fakeTable is a hand-built table used to feed broken hierarchies to the
// generic checks.
type fakeTable struct {
	parents  []pcb.Index
	children [][]pcb.Index
	length   int
}

var _ pcb.Table = (*fakeTable)(nil)

func newFake(parents []pcb.Index, children [][]pcb.Index) *fakeTable {
	f := &fakeTable{parents: parents, children: children}
	for _, p := range parents {
		if p != pcb.Empty {
			f.length++
		}
	}
	return f
}

func (f *fakeTable) Create(pcb.Index) (pcb.Index, error) {
	return pcb.Empty, errors.New("read-only")
}

func (f *fakeTable) Destroy(pcb.Index) error {
	return errors.New("read-only")
}

func (f *fakeTable) Capacity() int { return len(f.parents) }

func (f *fakeTable) Len() int { return f.length }

func (f *fakeTable) Reset() {}

func (f *fakeTable) IsFree(i pcb.Index) bool {
	return pcb.InRange(i, len(f.parents)) && f.parents[i] == pcb.Empty
}

func (f *fakeTable) Parent(i pcb.Index) (pcb.Index, error) {
	if !pcb.InRange(i, len(f.parents)) {
		return pcb.Empty, pcb.ErrInvalidIndex
	}
	if f.parents[i] == pcb.Empty {
		return pcb.Empty, pcb.ErrNotOccupied
	}
	return f.parents[i], nil
}

func (f *fakeTable) Children(i pcb.Index) ([]pcb.Index, error) {
	if _, err := f.Parent(i); err != nil {
		return nil, err
	}
	if int(i) < len(f.children) {
		return f.children[i], nil
	}
	return nil, nil
}

const (
	e    = pcb.Empty
	root = pcb.RootParent
)

func requireValidation(t *testing.T, err error, typ string, slot int) {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, typ, ve.Type)
	require.Equal(t, slot, ve.Slot)
}

func Test_Forest(t *testing.T) {
	tests := []struct {
		name    string
		parents []pcb.Index
		length  int
		slot    int
		ok      bool
	}{
		{"valid", []pcb.Index{root, 0, 1, e, e, e}, 3, 0, true},
		{"root free", []pcb.Index{e, e, e, e, e, e}, 0, 0, false},
		{"root self-parented", []pcb.Index{0, 0, e, e, e, e}, 2, 0, false},
		{"parent free", []pcb.Index{root, 0, 4, e, e, e}, 3, 2, false},
		{"cycle", []pcb.Index{root, 2, 1, e, e, e}, 3, 1, false},
		{"length mismatch", []pcb.Index{root, 0, e, e, e, e}, 5, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(tt.parents, nil)
			f.length = tt.length
			err := Forest(f)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			requireValidation(t, err, "Forest", tt.slot)
		})
	}
}

func Test_ChildrenAgree(t *testing.T) {
	parents := []pcb.Index{root, 0, 0, 1, e, e}

	t.Run("valid in any order", func(t *testing.T) {
		f := newFake(parents, [][]pcb.Index{{2, 1}, {3}})
		require.NoError(t, ChildrenAgree(f))
	})

	t.Run("missing child", func(t *testing.T) {
		f := newFake(parents, [][]pcb.Index{{1}, {3}})
		requireValidation(t, ChildrenAgree(f), "ChildrenAgree", 0)
	})

	t.Run("extra child", func(t *testing.T) {
		f := newFake(parents, [][]pcb.Index{{1, 2}, {3, 2}})
		requireValidation(t, ChildrenAgree(f), "ChildrenAgree", 1)
	})
}

func Test_AllInvariants_Variants(t *testing.T) {
	s, err := sibling.New(8, nil)
	require.NoError(t, err)
	l, err := linked.New(8, nil)
	require.NoError(t, err)

	for _, tbl := range []pcb.Table{s, l} {
		require.NoError(t, AllInvariants(tbl))
		err := script.Run(tbl, script.Default(), func(int, script.Op, pcb.Index) error {
			return AllInvariants(tbl)
		})
		require.NoError(t, err)
	}
	require.NoError(t, Equivalent(s, l))
}

func Test_Equivalent(t *testing.T) {
	a := newFake([]pcb.Index{root, 0, 0, e, e, e}, [][]pcb.Index{{1, 2}})
	b := newFake([]pcb.Index{root, 0, 0, e, e, e}, [][]pcb.Index{{2, 1}})
	c := newFake([]pcb.Index{root, 0, e, e, e, e, e}, [][]pcb.Index{{1}})
	d := newFake([]pcb.Index{root, 0, 1, e, e, e}, [][]pcb.Index{{1}, {2}})

	require.NoError(t, Equivalent(a, a))
	requireValidation(t, Equivalent(a, b), "Equivalent", 0)
	requireValidation(t, Equivalent(a, c), "Equivalent", -1)
	requireValidation(t, Equivalent(a, d), "Equivalent", 0)
}

func Test_ValidationError_Error(t *testing.T) {
	err := &ValidationError{Type: "Forest", Message: "broken", Slot: 3}
	require.Equal(t, "Forest at slot 3: broken", err.Error())

	err.Slot = -1
	require.Equal(t, "Forest: broken", err.Error())
}
