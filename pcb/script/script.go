// Package script describes fixed sequences of create/destroy operations and
// applies them to PCB slot tables.
//
// Scripts are written in YAML, one operation per list entry:
//
//	name: default
//	ops:
//	  - create: 0
//	  - create: 0
//	  - destroy: 2
//
// The Default script leaves a fresh table exactly as it found it, so it can
// be repeated for any number of rounds.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/pcbkit/pcb"
)

// Kind identifies an operation.
type Kind uint8

const (
	KindCreate  Kind = 1 // Create a child of Index
	KindDestroy Kind = 2 // Destroy Index and its subtree
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindDestroy:
		return "destroy"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Op is one scripted operation. For KindCreate, Index is the parent.
type Op struct {
	Kind  Kind
	Index pcb.Index
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d)", o.Kind, o.Index)
}

// Create returns a create operation under parent.
func Create(parent pcb.Index) Op { return Op{Kind: KindCreate, Index: parent} }

// Destroy returns a destroy operation on i.
func Destroy(i pcb.Index) Op { return Op{Kind: KindDestroy, Index: i} }

// Script is a named operation sequence.
type Script struct {
	Name string
	Ops  []Op
}

var (
	// ErrEmptyScript indicates a script without operations.
	ErrEmptyScript = errors.New("script: no operations")

	// ErrBadOp indicates an operation with an unknown kind or negative index.
	ErrBadOp = errors.New("script: invalid operation")
)

// Default returns the fixed round: five creates building a three-level
// hierarchy under the root, then three destroys tearing it down again.
//
//	create(0) -> 1    destroy(2) frees 4, 3, 2
//	create(0) -> 2    destroy(1) frees 1
//	create(2) -> 3    destroy(5) frees 5
//	create(3) -> 4
//	create(0) -> 5
func Default() Script {
	return Script{
		Name: "default",
		Ops: []Op{
			Create(0),
			Create(0),
			Create(2),
			Create(3),
			Create(0),
			Destroy(2),
			Destroy(1),
			Destroy(5),
		},
	}
}

// Validate checks every operation for a known kind and non-negative index.
func (s Script) Validate() error {
	if len(s.Ops) == 0 {
		return ErrEmptyScript
	}
	for i, op := range s.Ops {
		if op.Kind != KindCreate && op.Kind != KindDestroy {
			return fmt.Errorf("op %d: %w: %s", i, ErrBadOp, op)
		}
		if op.Index < 0 {
			return fmt.Errorf("op %d: %w: negative index in %s", i, ErrBadOp, op)
		}
	}
	return nil
}

// Creates returns the prefix of s made of create operations.
func (s Script) Creates() Script {
	n := 0
	for n < len(s.Ops) && s.Ops[n].Kind == KindCreate {
		n++
	}
	return Script{Name: s.Name, Ops: s.Ops[:n]}
}

func (s Script) String() string {
	parts := make([]string, len(s.Ops))
	for i, op := range s.Ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, ", ")
}

// StepFunc observes each applied operation. created is the slot returned by
// a create and pcb.Empty for a destroy. A non-nil error stops the run.
type StepFunc func(i int, op Op, created pcb.Index) error

// Apply performs a single operation on t. It returns the created slot for
// a create and pcb.Empty otherwise.
func Apply(t pcb.Table, op Op) (pcb.Index, error) {
	switch op.Kind {
	case KindCreate:
		return t.Create(op.Index)
	case KindDestroy:
		return pcb.Empty, t.Destroy(op.Index)
	default:
		return pcb.Empty, fmt.Errorf("%w: %s", ErrBadOp, op)
	}
}

// Run applies s to t in order. step may be nil.
func Run(t pcb.Table, s Script, step StepFunc) error {
	for i, op := range s.Ops {
		created, err := Apply(t, op)
		if err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op, err)
		}
		if step != nil {
			if err := step(i, op, created); err != nil {
				return err
			}
		}
	}
	return nil
}
