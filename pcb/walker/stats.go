package walker

import "github.com/joshuapare/pcbkit/pcb"

// Stats summarizes the hierarchy reachable from the root.
type Stats struct {
	Capacity int
	Occupied int
	Free     int
	MaxDepth int

	// SlotsByLevel counts slots per depth; the root is level 0.
	SlotsByLevel map[int]int

	// Leaves counts occupied slots without children.
	Leaves int

	Widest struct {
		Index    pcb.Index
		Children int
	}
}

// Collect walks the table from the root and gathers Stats.
//
// Example:
//
//	st, err := walker.Collect(t)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("depth %d, %d occupied\n", st.MaxDepth, st.Occupied)
func Collect(t pcb.Table) (*Stats, error) {
	st := &Stats{
		Capacity:     t.Capacity(),
		SlotsByLevel: make(map[int]int),
	}
	st.Widest.Index = pcb.RootIndex

	err := Walk(t, pcb.RootIndex, func(i pcb.Index, depth int) error {
		st.Occupied++
		st.SlotsByLevel[depth]++
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}

		children, err := t.Children(i)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			st.Leaves++
		}
		if len(children) > st.Widest.Children {
			st.Widest.Index = i
			st.Widest.Children = len(children)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	st.Free = st.Capacity - t.Len()
	return st, nil
}
