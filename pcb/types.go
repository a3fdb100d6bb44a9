package pcb

import "fmt"

// Index addresses a slot by its position in the table.
type Index int32

const (
	// Empty marks "no such slot" in parent, child and sibling links.
	Empty Index = -1

	// RootParent is the parent value recorded for the root slot.
	RootParent Index = -2

	// RootIndex is the slot occupied by the root from construction.
	RootIndex Index = 0

	// MinCapacity is the smallest table either variant accepts.
	MinCapacity = 6
)

// String renders the sentinels by name.
func (i Index) String() string {
	switch i {
	case Empty:
		return "empty"
	case RootParent:
		return "root"
	default:
		return fmt.Sprintf("%d", int32(i))
	}
}

// Table is the contract shared by both slot table variants.
type Table interface {
	// Create occupies the lowest free slot as a child of parent and returns it.
	Create(parent Index) (Index, error)

	// Destroy frees i and its entire subtree, descendants first.
	Destroy(i Index) error

	// Capacity returns the fixed number of slots.
	Capacity() int

	// Len returns the number of occupied slots, root included.
	Len() int

	// IsFree reports whether i is a free slot. Out-of-range indices are not free.
	IsFree(i Index) bool

	// Parent returns the parent of an occupied slot, RootParent for the root.
	Parent(i Index) (Index, error)

	// Children returns the children of an occupied slot in insertion order.
	Children(i Index) ([]Index, error)

	// Reset frees every slot except the root.
	Reset()
}

// Options configures optional table behavior.
type Options struct {
	// OnFree is called once for every slot freed by Destroy, in post-order.
	// Default: nil (no callback)
	OnFree func(Index)
}

// CheckCapacity validates a requested table size.
func CheckCapacity(n int) error {
	if n < MinCapacity {
		return fmt.Errorf("%w: %d (need >= %d)", ErrCapacity, n, MinCapacity)
	}
	return nil
}

// InRange reports whether i addresses a slot of a table with n slots.
func InRange(i Index, n int) bool {
	return i >= 0 && int(i) < n
}
