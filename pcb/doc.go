// Package pcb defines the shared vocabulary for process-control-block slot tables.
//
// # Overview
//
// A slot table is a fixed-capacity array of PCB records. Each record only
// tracks hierarchy bookkeeping: which slot created it (its parent) and which
// slots it created (its children). Slots are addressed by their position,
// 0 through capacity-1, and positions never move for the table's lifetime.
//
// Two implementations of the Table interface live in sub-packages:
//
//   - linked: each slot owns a singly linked list of child indices
//   - sibling: each slot stores parent, first child, older and younger
//     sibling indices, with no auxiliary allocation
//
// # Slot Lifecycle
//
// Slot 0 is the root. It is occupied when the table is built and records
// RootParent as its parent. Every other slot starts free.
//
//	Free --Create--> Occupied --Destroy--> Free
//
// Create always takes the lowest-index free slot. Destroy frees the whole
// subtree in post-order: every descendant is freed before the slot itself.
//
// # Sentinels
//
//	Empty      = -1 // no such slot; a slot whose parent is Empty is free
//	RootParent = -2 // parent recorded for the root slot
//
// # Error Handling
//
// Failed operations leave the table untouched. Errors wrap one of the
// sentinels in errors.go and are matched with errors.Is:
//
//	if _, err := t.Create(parent); errors.Is(err, pcb.ErrTableFull) {
//	    // no free slot
//	}
//
// # Thread Safety
//
// Tables are not safe for concurrent use. Callers own a table exclusively
// for the duration of every call.
//
// # Related Packages
//
//   - github.com/joshuapare/pcbkit/pcb/linked: linked-child-list table
//   - github.com/joshuapare/pcbkit/pcb/sibling: sibling-linked table
//   - github.com/joshuapare/pcbkit/pcb/walker: iterative traversal
//   - github.com/joshuapare/pcbkit/pcb/verify: invariant validators
package pcb
