// Package linked implements a PCB slot table whose slots own a singly linked
// list of child indices.
//
// # Layout
//
// Each slot holds two fields:
//
//	parent   pcb.Index // creator's index, pcb.Empty when free
//	children *node     // head of the child list, nil when childless
//
// List nodes come from a per-table pool. A node is acquired when a child is
// created and released exactly once when that child is destroyed, so
// LiveNodes always equals the number of occupied non-root slots.
//
// # Create
//
// Create scans from slot 0 for the first free slot, records the parent and
// appends a node for the new slot at the tail of the parent's list:
//
//	t, _ := linked.New(6, nil)
//	a, _ := t.Create(pcb.RootIndex) // 1
//	b, _ := t.Create(pcb.RootIndex) // 2
//	c, _ := t.Create(b)             // 3
//
// # Destroy
//
// Destroy frees a slot and all of its descendants. Traversal uses an explicit
// stack instead of recursion: a slot's child list is consumed from the head,
// releasing each node as its child is pushed, and a slot is freed once its
// list is empty. The destroyed slot itself is unlinked from its parent's list,
// whether its node is the head, an interior node or the tail.
//
//	err := t.Destroy(b) // frees 3, then 2
//
// # Thread Safety
//
// Table instances are not thread-safe.
package linked
