// Package verify provides structural validators for PCB slot tables.
//
// # Overview
//
// The validators read a table through its public accessors and report the
// first broken invariant. They are used by tests after every operation and by
// the pcbctl check command.
//
// Validation categories:
//   - Forest: the root is occupied, every other occupied slot has an
//     occupied parent, and parent chains reach the root
//   - ChildrenAgree: each slot's children are exactly the slots naming it
//     as parent
//   - SiblingChains: forward and backward sibling links mirror each other
//   - LinkedLists: free slots own no list nodes and no node is leaked
//   - Equivalent: two tables hold the same hierarchy
//
// # Quick Start
//
//	if err := verify.AllInvariants(t); err != nil {
//	    fmt.Printf("table corrupt: %v\n", err)
//	}
//
// # ValidationError
//
// All validators return *ValidationError on failure:
//
//	type ValidationError struct {
//	    Type    string         // Validator name (e.g., "SiblingChains")
//	    Message string         // Human-readable description
//	    Slot    int            // Offending slot (-1 if N/A)
//	    Details map[string]any // Additional context
//	}
package verify
