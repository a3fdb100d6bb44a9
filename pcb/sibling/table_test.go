package sibling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pcbkit/pcb"
)

const e = pcb.Empty

func newScenario(t testing.TB) *Table {
	t.Helper()
	tbl, err := New(6, nil)
	require.NoError(t, err)
	for _, parent := range []pcb.Index{0, 0, 2, 3, 0} {
		_, err := tbl.Create(parent)
		require.NoError(t, err)
	}
	return tbl
}

func Test_Table_ScenarioLinks(t *testing.T) {
	tbl := newScenario(t)

	want := []Links{
		{Parent: pcb.RootParent, FirstChild: 1, OlderSibling: e, YoungerSibling: e},
		{Parent: 0, FirstChild: e, OlderSibling: e, YoungerSibling: 2},
		{Parent: 0, FirstChild: 3, OlderSibling: 1, YoungerSibling: 5},
		{Parent: 2, FirstChild: 4, OlderSibling: e, YoungerSibling: e},
		{Parent: 3, FirstChild: e, OlderSibling: e, YoungerSibling: e},
		{Parent: 0, FirstChild: e, OlderSibling: 2, YoungerSibling: e},
	}
	require.Equal(t, want, tbl.slots)

	require.NoError(t, tbl.Destroy(2))
	want[1].YoungerSibling = 5
	want[5].OlderSibling = 1
	want[2], want[3], want[4] = freeLinks, freeLinks, freeLinks
	require.Equal(t, want, tbl.slots)
}

// Test_Table_DetachPositions destroys the first, a middle and the last
// sibling under the root.
func Test_Table_DetachPositions(t *testing.T) {
	tests := []struct {
		name    string
		destroy pcb.Index
		want    []pcb.Index
		first   pcb.Index
	}{
		{"first", 1, []pcb.Index{2, 3, 4, 5}, 2},
		{"middle", 3, []pcb.Index{1, 2, 4, 5}, 1},
		{"last", 5, []pcb.Index{1, 2, 3, 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(6, nil)
			require.NoError(t, err)
			for range 5 {
				_, err := tbl.Create(0)
				require.NoError(t, err)
			}

			require.NoError(t, tbl.Destroy(tt.destroy))
			children, err := tbl.Children(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, children)
			assert.Equal(t, tt.first, tbl.slots[0].FirstChild)

			first := tbl.slots[children[0]]
			assert.Equal(t, e, first.OlderSibling)
			last := tbl.slots[children[len(children)-1]]
			assert.Equal(t, e, last.YoungerSibling)
			assert.True(t, tbl.slots[tt.destroy].IsFree())
		})
	}
}

func Test_Table_StructuralRoundTrip(t *testing.T) {
	fresh, err := New(8, nil)
	require.NoError(t, err)
	tbl, err := New(8, nil)
	require.NoError(t, err)

	for _, parent := range []pcb.Index{0, 1, 1, 2, 0, 5, 6} {
		_, err := tbl.Create(parent)
		require.NoError(t, err)
	}
	require.NoError(t, tbl.Destroy(1))
	require.NoError(t, tbl.Destroy(5))

	require.Equal(t, fresh.slots, tbl.slots)
	require.Equal(t, 1, tbl.Len())
}

func Test_Table_Links(t *testing.T) {
	tbl := newScenario(t)

	l, err := tbl.Links(4)
	require.NoError(t, err)
	require.Equal(t, pcb.Index(3), l.Parent)

	_, err = tbl.Links(6)
	require.ErrorIs(t, err, pcb.ErrInvalidIndex)

	require.NoError(t, tbl.Destroy(3))
	l, err = tbl.Links(3)
	require.NoError(t, err)
	require.True(t, l.IsFree())
}

func Benchmark_Create(b *testing.B) {
	tbl, err := New(1024, nil)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tbl.Len() == tbl.Capacity() {
			b.StopTimer()
			tbl.Reset()
			b.StartTimer()
		}
		if _, err := tbl.Create(0); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ScenarioRound(b *testing.B) {
	tbl := newScenario(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tbl.Destroy(2)
		_ = tbl.Destroy(1)
		_ = tbl.Destroy(5)
		for _, parent := range []pcb.Index{0, 0, 2, 3, 0} {
			if _, err := tbl.Create(parent); err != nil {
				b.Fatal(err)
			}
		}
	}
}
