package pcb

// State is a representation-independent view of a table: the parent of every
// slot and the ordered children of every occupied slot. Two tables holding
// the same hierarchy produce equal States regardless of variant.
type State struct {
	Capacity int
	Parents  []Index
	Children [][]Index
}

// Snapshot captures the hierarchy held by t.
func Snapshot(t Table) State {
	n := t.Capacity()
	s := State{
		Capacity: n,
		Parents:  make([]Index, n),
		Children: make([][]Index, n),
	}
	for i := range n {
		idx := Index(i)
		if t.IsFree(idx) {
			s.Parents[i] = Empty
			continue
		}
		// Occupied and in range, errors are impossible here.
		s.Parents[i], _ = t.Parent(idx)
		s.Children[i], _ = t.Children(idx)
	}
	return s
}

// Occupied returns the occupied slots of t in ascending order.
func Occupied(t Table) []Index {
	out := make([]Index, 0, t.Len())
	for i := range t.Capacity() {
		if !t.IsFree(Index(i)) {
			out = append(out, Index(i))
		}
	}
	return out
}
