// Package sibling implements a PCB slot table without auxiliary lists.
//
// Each slot stores four indices into the same table:
//
//	parent         // creator, pcb.Empty when free
//	firstChild     // oldest child, pcb.Empty when childless
//	olderSibling   // previous child of the same parent
//	youngerSibling // next child of the same parent
//
// The children of a slot form a doubly linked chain starting at firstChild
// and following youngerSibling. Only the first child has olderSibling set to
// pcb.Empty. A free slot has all four fields set to pcb.Empty.
//
// Create appends at the end of the parent's chain. Destroy descends with an
// explicit stack to the first childless slot of the subtree, detaches it from
// its chain, and repeats until the requested slot itself is detached. The
// parent's firstChild is re-read after every detach, so a child never has to
// remember its younger sibling across the teardown of its own subtree.
//
// No memory is allocated or released by either operation.
package sibling
