// Package walker provides iterative traversal over PCB slot tables.
//
// Traversal never recurses: a pre-allocated explicit stack holds the pending
// slots, so hierarchies as deep as the table capacity (capacity-1 levels)
// are walked in constant goroutine stack space.
package walker

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pcbkit/pcb"
)

// ErrStop can be returned by a VisitFunc to end a walk early without error.
var ErrStop = errors.New("walker: stop")

// VisitFunc is called once per slot with its depth below the walk's start.
type VisitFunc func(i pcb.Index, depth int) error

// frame is one pending slot in the DFS stack.
type frame struct {
	index pcb.Index
	depth int
}

// Walk visits start and its descendants in pre-order. Children are visited
// in insertion order.
func Walk(t pcb.Table, start pcb.Index, fn VisitFunc) error {
	if !pcb.InRange(start, t.Capacity()) {
		return fmt.Errorf("walk from %d: %w", start, pcb.ErrInvalidIndex)
	}
	if t.IsFree(start) {
		return fmt.Errorf("walk from %d: %w", start, pcb.ErrNotOccupied)
	}

	stack := make([]frame, 0, t.Len())
	stack = append(stack, frame{index: start})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(f.index, f.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		children, err := t.Children(f.index)
		if err != nil {
			return fmt.Errorf("children of %d: %w", f.index, err)
		}
		// Push youngest first so the oldest child is popped next.
		for j := len(children) - 1; j >= 0; j-- {
			stack = append(stack, frame{index: children[j], depth: f.depth + 1})
		}
	}
	return nil
}

// Subtree returns i and all of its descendants in pre-order.
func Subtree(t pcb.Table, i pcb.Index) ([]pcb.Index, error) {
	var out []pcb.Index
	err := Walk(t, i, func(j pcb.Index, _ int) error {
		out = append(out, j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Depth returns the number of parent links between i and the root.
func Depth(t pcb.Table, i pcb.Index) (int, error) {
	depth := 0
	for i != pcb.RootIndex {
		p, err := t.Parent(i)
		if err != nil {
			return 0, err
		}
		if depth >= t.Capacity() {
			return 0, fmt.Errorf("slot %d: parent chain longer than capacity", i)
		}
		i = p
		depth++
	}
	return depth, nil
}
