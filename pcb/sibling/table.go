package sibling

import (
	"fmt"

	"github.com/joshuapare/pcbkit/pcb"
)

// Links holds the four relationship fields of a slot.
type Links struct {
	Parent         pcb.Index
	FirstChild     pcb.Index
	OlderSibling   pcb.Index
	YoungerSibling pcb.Index
}

// freeLinks is the shape of every free slot.
var freeLinks = Links{
	Parent:         pcb.Empty,
	FirstChild:     pcb.Empty,
	OlderSibling:   pcb.Empty,
	YoungerSibling: pcb.Empty,
}

// IsFree reports whether l describes a free slot.
func (l Links) IsFree() bool { return l == freeLinks }

// Table is a fixed-capacity PCB table linked through sibling indices.
type Table struct {
	slots  []Links
	used   int
	onFree func(pcb.Index)
	stack  []pcb.Index
}

var _ pcb.Table = (*Table)(nil)

// New creates a table with capacity slots, all free except the root.
// opts may be nil.
func New(capacity int, opts *pcb.Options) (*Table, error) {
	if err := pcb.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	t := &Table{
		slots: make([]Links, capacity),
		stack: make([]pcb.Index, 0, capacity),
	}
	if opts != nil {
		t.onFree = opts.OnFree
	}
	t.Reset()
	return t, nil
}

// Reset frees every slot except the root.
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i] = freeLinks
	}
	t.slots[pcb.RootIndex].Parent = pcb.RootParent
	t.used = 1
}

// Capacity returns the number of slots.
func (t *Table) Capacity() int { return len(t.slots) }

// Len returns the number of occupied slots, root included.
func (t *Table) Len() int { return t.used }

// IsFree reports whether i is a free slot.
func (t *Table) IsFree(i pcb.Index) bool {
	return pcb.InRange(i, len(t.slots)) && t.slots[i].Parent == pcb.Empty
}

// Links returns the raw relationship fields of slot i, free or not.
func (t *Table) Links(i pcb.Index) (Links, error) {
	if !pcb.InRange(i, len(t.slots)) {
		return freeLinks, fmt.Errorf("%w: %d (capacity %d)", pcb.ErrInvalidIndex, i, len(t.slots))
	}
	return t.slots[i], nil
}

// Parent returns the parent recorded for an occupied slot.
func (t *Table) Parent(i pcb.Index) (pcb.Index, error) {
	if err := t.checkOccupied(i); err != nil {
		return pcb.Empty, err
	}
	return t.slots[i].Parent, nil
}

// Children walks the sibling chain of an occupied slot, oldest first.
func (t *Table) Children(i pcb.Index) ([]pcb.Index, error) {
	if err := t.checkOccupied(i); err != nil {
		return nil, err
	}
	var out []pcb.Index
	for c := t.slots[i].FirstChild; c != pcb.Empty; c = t.slots[c].YoungerSibling {
		out = append(out, c)
	}
	return out, nil
}

// Create occupies the lowest free slot as the youngest child of parent.
func (t *Table) Create(parent pcb.Index) (pcb.Index, error) {
	if !pcb.InRange(parent, len(t.slots)) || t.slots[parent].Parent == pcb.Empty {
		return pcb.Empty, fmt.Errorf("%w: %d", pcb.ErrInvalidParent, parent)
	}

	q := t.firstFree()
	if q == pcb.Empty {
		return pcb.Empty, fmt.Errorf("%w: all %d slots occupied", pcb.ErrTableFull, len(t.slots))
	}

	s := &t.slots[q]
	s.Parent = parent
	s.FirstChild = pcb.Empty
	s.YoungerSibling = pcb.Empty

	p := &t.slots[parent]
	if p.FirstChild == pcb.Empty {
		p.FirstChild = q
		s.OlderSibling = pcb.Empty
	} else {
		youngest := p.FirstChild
		for t.slots[youngest].YoungerSibling != pcb.Empty {
			youngest = t.slots[youngest].YoungerSibling
		}
		t.slots[youngest].YoungerSibling = q
		s.OlderSibling = youngest
	}

	t.used++
	return q, nil
}

// Destroy frees i and every descendant of i, deepest first.
func (t *Table) Destroy(i pcb.Index) error {
	if !pcb.InRange(i, len(t.slots)) {
		return fmt.Errorf("%w: %d (capacity %d)", pcb.ErrInvalidIndex, i, len(t.slots))
	}
	if t.slots[i].Parent == pcb.Empty {
		return fmt.Errorf("%w: %d", pcb.ErrAlreadyFree, i)
	}
	if i == pcb.RootIndex {
		return pcb.ErrRootSlot
	}

	t.stack = append(t.stack[:0], i)
	for len(t.stack) > 0 {
		top := t.stack[len(t.stack)-1]
		if c := t.slots[top].FirstChild; c != pcb.Empty {
			t.stack = append(t.stack, c)
			continue
		}
		t.stack = t.stack[:len(t.stack)-1]
		t.detach(top)
		t.used--
		if t.onFree != nil {
			t.onFree(top)
		}
	}
	return nil
}

// detach splices a childless slot out of its sibling chain and clears it.
func (t *Table) detach(i pcb.Index) {
	s := t.slots[i]
	if s.OlderSibling != pcb.Empty {
		t.slots[s.OlderSibling].YoungerSibling = s.YoungerSibling
	} else {
		t.slots[s.Parent].FirstChild = s.YoungerSibling
	}
	if s.YoungerSibling != pcb.Empty {
		t.slots[s.YoungerSibling].OlderSibling = s.OlderSibling
	}
	t.slots[i] = freeLinks
}

// firstFree scans from slot 0 for the lowest free slot.
func (t *Table) firstFree() pcb.Index {
	for i := range t.slots {
		if t.slots[i].Parent == pcb.Empty {
			return pcb.Index(i)
		}
	}
	return pcb.Empty
}

func (t *Table) checkOccupied(i pcb.Index) error {
	if !pcb.InRange(i, len(t.slots)) {
		return fmt.Errorf("%w: %d (capacity %d)", pcb.ErrInvalidIndex, i, len(t.slots))
	}
	if t.slots[i].Parent == pcb.Empty {
		return fmt.Errorf("%w: %d", pcb.ErrNotOccupied, i)
	}
	return nil
}
