package linked

import "github.com/joshuapare/pcbkit/pcb"

// node is one element of a slot's child list.
type node struct {
	index pcb.Index
	next  *node
}

// nodePool recycles list nodes through a free list and counts the nodes that
// are currently linked into some slot's list.
type nodePool struct {
	free *node
	live int
}

// acquire returns a detached node holding i.
func (p *nodePool) acquire(i pcb.Index) *node {
	n := p.free
	if n != nil {
		p.free = n.next
	} else {
		n = new(node)
	}
	n.index = i
	n.next = nil
	p.live++
	return n
}

// release returns n to the free list. Callers must read n.next first.
func (p *nodePool) release(n *node) {
	n.index = pcb.Empty
	n.next = p.free
	p.free = n
	p.live--
}

// appendNode links n after the last node of the list starting at head and
// returns the (possibly new) head.
func appendNode(head, n *node) *node {
	if head == nil {
		return n
	}
	tail := head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = n
	return head
}

// removeNode unlinks the node holding i from the list starting at head. It
// returns the new head and the removed node, or a nil node if i is absent.
func removeNode(head *node, i pcb.Index) (*node, *node) {
	var prev *node
	for n := head; n != nil; prev, n = n, n.next {
		if n.index != i {
			continue
		}
		if prev == nil {
			head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		return head, n
	}
	return head, nil
}

// indices copies the list contents in order. An empty list yields nil.
func indices(head *node) []pcb.Index {
	var out []pcb.Index
	for n := head; n != nil; n = n.next {
		out = append(out, n.index)
	}
	return out
}
