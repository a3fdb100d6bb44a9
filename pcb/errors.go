package pcb

import "errors"

var (
	// ErrTableFull indicates that no free slot exists within the table capacity.
	ErrTableFull = errors.New("pcb: table full")

	// ErrInvalidIndex indicates an index outside [0, capacity).
	ErrInvalidIndex = errors.New("pcb: invalid slot index")

	// ErrAlreadyFree indicates a destroy on a slot that is already free.
	ErrAlreadyFree = errors.New("pcb: slot already free")

	// ErrInvalidParent indicates a create whose parent is out of range or free.
	ErrInvalidParent = errors.New("pcb: invalid parent")

	// ErrNotOccupied indicates a query on a slot that is free.
	ErrNotOccupied = errors.New("pcb: slot not occupied")

	// ErrRootSlot indicates an attempt to destroy the root slot.
	ErrRootSlot = errors.New("pcb: root slot cannot be destroyed")

	// ErrCapacity indicates a table capacity below MinCapacity.
	ErrCapacity = errors.New("pcb: capacity below minimum")
)
