package verify

import (
	"fmt"
	"slices"

	"github.com/joshuapare/pcbkit/pcb"
	"github.com/joshuapare/pcbkit/pcb/linked"
	"github.com/joshuapare/pcbkit/pcb/sibling"
)

// ValidationError describes a broken table invariant.
type ValidationError struct {
	Type    string
	Message string
	Slot    int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Slot >= 0 {
		return fmt.Sprintf("%s at slot %d: %s", e.Type, e.Slot, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates the generic invariants plus the variant-specific
// ones when t is a known implementation.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(t pcb.Table) error {
	if err := Forest(t); err != nil {
		return err
	}
	if err := ChildrenAgree(t); err != nil {
		return err
	}
	switch v := t.(type) {
	case *sibling.Table:
		return SiblingChains(v)
	case *linked.Table:
		return LinkedLists(v)
	}
	return nil
}

// Forest validates that the parent relation is a tree rooted at slot 0.
func Forest(t pcb.Table) error {
	n := t.Capacity()
	if t.IsFree(pcb.RootIndex) {
		return &ValidationError{Type: "Forest", Message: "root slot is free", Slot: int(pcb.RootIndex)}
	}
	if p, _ := t.Parent(pcb.RootIndex); p != pcb.RootParent {
		return &ValidationError{
			Type:    "Forest",
			Message: fmt.Sprintf("root parent is %v, expected %v", p, pcb.RootParent),
			Slot:    int(pcb.RootIndex),
		}
	}

	occupied := 0
	for i := range n {
		idx := pcb.Index(i)
		if t.IsFree(idx) {
			continue
		}
		occupied++
		if idx == pcb.RootIndex {
			continue
		}

		// Follow the parent chain; more than n hops means a cycle.
		cur := idx
		for hops := 0; cur != pcb.RootIndex; hops++ {
			if hops >= n {
				return &ValidationError{Type: "Forest", Message: "parent chain does not reach the root", Slot: i}
			}
			p, err := t.Parent(cur)
			if err != nil {
				return &ValidationError{
					Type:    "Forest",
					Message: fmt.Sprintf("ancestor %d unreadable: %v", cur, err),
					Slot:    i,
				}
			}
			if !pcb.InRange(p, n) || t.IsFree(p) {
				return &ValidationError{
					Type:    "Forest",
					Message: fmt.Sprintf("slot %d has parent %v which is not occupied", cur, p),
					Slot:    i,
					Details: map[string]any{"ancestor": int(cur), "parent": int(p)},
				}
			}
			cur = p
		}
	}

	if occupied != t.Len() {
		return &ValidationError{
			Type:    "Forest",
			Message: fmt.Sprintf("occupied count %d, Len reports %d", occupied, t.Len()),
			Slot:    -1,
		}
	}
	return nil
}

// ChildrenAgree validates that every slot's children are exactly the slots
// naming it as parent.
func ChildrenAgree(t pcb.Table) error {
	n := t.Capacity()
	expected := make([][]pcb.Index, n)
	for i := range n {
		idx := pcb.Index(i)
		if t.IsFree(idx) || idx == pcb.RootIndex {
			continue
		}
		p, _ := t.Parent(idx)
		if pcb.InRange(p, n) {
			expected[p] = append(expected[p], idx)
		}
	}

	for i := range n {
		idx := pcb.Index(i)
		if t.IsFree(idx) {
			if len(expected[i]) > 0 {
				return &ValidationError{
					Type:    "ChildrenAgree",
					Message: "free slot is named as parent",
					Slot:    i,
					Details: map[string]any{"children": expected[i]},
				}
			}
			continue
		}
		got, err := t.Children(idx)
		if err != nil {
			return &ValidationError{Type: "ChildrenAgree", Message: err.Error(), Slot: i}
		}
		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if !slices.Equal(sorted, expected[i]) {
			return &ValidationError{
				Type:    "ChildrenAgree",
				Message: fmt.Sprintf("children %v, parent links say %v", got, expected[i]),
				Slot:    i,
				Details: map[string]any{"children": got, "expected": expected[i]},
			}
		}
	}
	return nil
}

// SiblingChains validates the sibling links of a sibling table.
func SiblingChains(t *sibling.Table) error {
	n := t.Capacity()
	for i := range n {
		idx := pcb.Index(i)
		l, _ := t.Links(idx)

		if l.Parent == pcb.Empty {
			if !l.IsFree() {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("free slot has links %+v", l),
					Slot:    i,
				}
			}
			continue
		}

		for _, ref := range []pcb.Index{l.FirstChild, l.OlderSibling, l.YoungerSibling} {
			if ref != pcb.Empty && (!pcb.InRange(ref, n) || t.IsFree(ref)) {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("link to %v is not an occupied slot", ref),
					Slot:    i,
				}
			}
		}

		if l.OlderSibling != pcb.Empty {
			older, _ := t.Links(l.OlderSibling)
			if older.YoungerSibling != idx {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("older sibling %d points forward to %v", l.OlderSibling, older.YoungerSibling),
					Slot:    i,
				}
			}
			if older.Parent != l.Parent {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("older sibling %d has parent %v, expected %v", l.OlderSibling, older.Parent, l.Parent),
					Slot:    i,
				}
			}
		}
		if l.YoungerSibling != pcb.Empty {
			younger, _ := t.Links(l.YoungerSibling)
			if younger.OlderSibling != idx {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("younger sibling %d points back to %v", l.YoungerSibling, younger.OlderSibling),
					Slot:    i,
				}
			}
		}

		if l.FirstChild != pcb.Empty {
			first, _ := t.Links(l.FirstChild)
			if first.OlderSibling != pcb.Empty {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("first child %d has older sibling %v", l.FirstChild, first.OlderSibling),
					Slot:    i,
				}
			}
		}
	}

	// Exactly one head per parent: the slot's firstChild.
	heads := make(map[pcb.Index]int)
	for i := range n {
		l, _ := t.Links(pcb.Index(i))
		if l.Parent == pcb.Empty || pcb.Index(i) == pcb.RootIndex {
			continue
		}
		if l.OlderSibling == pcb.Empty {
			heads[l.Parent]++
			parent, _ := t.Links(l.Parent)
			if parent.FirstChild != pcb.Index(i) {
				return &ValidationError{
					Type:    "SiblingChains",
					Message: fmt.Sprintf("chain head but parent %d has first child %v", l.Parent, parent.FirstChild),
					Slot:    i,
				}
			}
		}
	}
	for p, count := range heads {
		if count != 1 {
			return &ValidationError{
				Type:    "SiblingChains",
				Message: fmt.Sprintf("%d children without an older sibling", count),
				Slot:    int(p),
			}
		}
	}
	return nil
}

// LinkedLists validates node ownership of a linked table.
func LinkedLists(t *linked.Table) error {
	for i := range t.Capacity() {
		idx := pcb.Index(i)
		if t.IsFree(idx) && len(t.Nodes(idx)) > 0 {
			return &ValidationError{
				Type:    "LinkedLists",
				Message: fmt.Sprintf("free slot owns %d list nodes", len(t.Nodes(idx))),
				Slot:    i,
			}
		}
	}
	if want := t.Len() - 1; t.LiveNodes() != want {
		return &ValidationError{
			Type:    "LinkedLists",
			Message: fmt.Sprintf("%d live list nodes, expected %d", t.LiveNodes(), want),
			Slot:    -1,
			Details: map[string]any{"live": t.LiveNodes(), "expected": want},
		}
	}
	return nil
}

// Equivalent validates that a and b hold the same hierarchy: same capacity,
// occupied set, parent relation and child order.
func Equivalent(a, b pcb.Table) error {
	sa, sb := pcb.Snapshot(a), pcb.Snapshot(b)
	if sa.Capacity != sb.Capacity {
		return &ValidationError{
			Type:    "Equivalent",
			Message: fmt.Sprintf("capacity %d vs %d", sa.Capacity, sb.Capacity),
			Slot:    -1,
		}
	}
	for i := range sa.Capacity {
		if sa.Parents[i] != sb.Parents[i] {
			return &ValidationError{
				Type:    "Equivalent",
				Message: fmt.Sprintf("parent %v vs %v", sa.Parents[i], sb.Parents[i]),
				Slot:    i,
			}
		}
		if !slices.Equal(sa.Children[i], sb.Children[i]) {
			return &ValidationError{
				Type:    "Equivalent",
				Message: fmt.Sprintf("children %v vs %v", sa.Children[i], sb.Children[i]),
				Slot:    i,
			}
		}
	}
	return nil
}
