package linked

import (
	"fmt"

	"github.com/joshuapare/pcbkit/pcb"
)

// slot is one PCB record: its creator and the list of slots it created.
type slot struct {
	parent   pcb.Index
	children *node
}

// Table is a fixed-capacity PCB table with per-slot child lists.
type Table struct {
	slots  []slot
	pool   nodePool
	used   int
	onFree func(pcb.Index)

	// stack is reused across Destroy calls; it never exceeds capacity frames.
	stack []pcb.Index
}

var _ pcb.Table = (*Table)(nil)

// New creates a table with capacity slots, all free except the root.
// opts may be nil.
func New(capacity int, opts *pcb.Options) (*Table, error) {
	if err := pcb.CheckCapacity(capacity); err != nil {
		return nil, err
	}
	t := &Table{
		slots: make([]slot, capacity),
		stack: make([]pcb.Index, 0, capacity),
	}
	if opts != nil {
		t.onFree = opts.OnFree
	}
	t.Reset()
	return t, nil
}

// Reset frees every slot except the root and releases all list nodes.
func (t *Table) Reset() {
	for i := range t.slots {
		s := &t.slots[i]
		for n := s.children; n != nil; {
			next := n.next
			t.pool.release(n)
			n = next
		}
		s.parent = pcb.Empty
		s.children = nil
	}
	t.slots[pcb.RootIndex].parent = pcb.RootParent
	t.used = 1
}

// Capacity returns the number of slots.
func (t *Table) Capacity() int { return len(t.slots) }

// Len returns the number of occupied slots, root included.
func (t *Table) Len() int { return t.used }

// LiveNodes returns the number of list nodes currently owned by slots.
func (t *Table) LiveNodes() int { return t.pool.live }

// IsFree reports whether i is a free slot.
func (t *Table) IsFree(i pcb.Index) bool {
	return pcb.InRange(i, len(t.slots)) && t.slots[i].parent == pcb.Empty
}

// Parent returns the parent recorded for an occupied slot.
func (t *Table) Parent(i pcb.Index) (pcb.Index, error) {
	if err := t.checkOccupied(i); err != nil {
		return pcb.Empty, err
	}
	return t.slots[i].parent, nil
}

// Children returns the child list of an occupied slot in insertion order.
func (t *Table) Children(i pcb.Index) ([]pcb.Index, error) {
	if err := t.checkOccupied(i); err != nil {
		return nil, err
	}
	return indices(t.slots[i].children), nil
}

// Nodes returns the raw contents of slot i's child list without any
// occupancy check. Out-of-range indices yield nil.
func (t *Table) Nodes(i pcb.Index) []pcb.Index {
	if !pcb.InRange(i, len(t.slots)) {
		return nil
	}
	return indices(t.slots[i].children)
}

// Create occupies the lowest free slot as the youngest child of parent.
func (t *Table) Create(parent pcb.Index) (pcb.Index, error) {
	if !pcb.InRange(parent, len(t.slots)) || t.slots[parent].parent == pcb.Empty {
		return pcb.Empty, fmt.Errorf("%w: %d", pcb.ErrInvalidParent, parent)
	}

	q := t.firstFree()
	if q == pcb.Empty {
		return pcb.Empty, fmt.Errorf("%w: all %d slots occupied", pcb.ErrTableFull, len(t.slots))
	}

	t.slots[q] = slot{parent: parent}
	p := &t.slots[parent]
	p.children = appendNode(p.children, t.pool.acquire(q))
	t.used++
	return q, nil
}

// Destroy frees i and every descendant of i, deepest first.
func (t *Table) Destroy(i pcb.Index) error {
	if !pcb.InRange(i, len(t.slots)) {
		return fmt.Errorf("%w: %d (capacity %d)", pcb.ErrInvalidIndex, i, len(t.slots))
	}
	if t.slots[i].parent == pcb.Empty {
		return fmt.Errorf("%w: %d", pcb.ErrAlreadyFree, i)
	}
	if i == pcb.RootIndex {
		return pcb.ErrRootSlot
	}

	t.stack = append(t.stack[:0], i)
	for len(t.stack) > 0 {
		top := t.stack[len(t.stack)-1]
		s := &t.slots[top]

		// Consume the head node; the child no longer appears in this list.
		if head := s.children; head != nil {
			s.children = head.next
			child := head.index
			t.pool.release(head)
			t.stack = append(t.stack, child)
			continue
		}

		t.stack = t.stack[:len(t.stack)-1]
		if top == i {
			t.unlink(i)
		}
		s.parent = pcb.Empty
		t.used--
		if t.onFree != nil {
			t.onFree(top)
		}
	}
	return nil
}

// unlink removes i's node from its parent's child list and releases it.
func (t *Table) unlink(i pcb.Index) {
	p := &t.slots[t.slots[i].parent]
	head, n := removeNode(p.children, i)
	p.children = head
	if n != nil {
		t.pool.release(n)
	}
}

// firstFree scans from slot 0 for the lowest free slot.
func (t *Table) firstFree() pcb.Index {
	for i := range t.slots {
		if t.slots[i].parent == pcb.Empty {
			return pcb.Index(i)
		}
	}
	return pcb.Empty
}

func (t *Table) checkOccupied(i pcb.Index) error {
	if !pcb.InRange(i, len(t.slots)) {
		return fmt.Errorf("%w: %d (capacity %d)", pcb.ErrInvalidIndex, i, len(t.slots))
	}
	if t.slots[i].parent == pcb.Empty {
		return fmt.Errorf("%w: %d", pcb.ErrNotOccupied, i)
	}
	return nil
}
