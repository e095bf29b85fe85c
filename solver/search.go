package solver

// maxPresses returns the per-column press bound: a button can never be
// pressed more often than the smallest demand among the counters it touches,
// since that many presses already saturate its tightest counter.
func maxPresses(matrix [][]uint8, target []uint64) []uint64 {
	if len(matrix) == 0 {
		return nil
	}
	bounds := make([]uint64, len(matrix[0]))
	for col := range bounds {
		first := true
		for row := range matrix {
			if matrix[row][col] == 0 {
				continue
			}
			if first || target[row] < bounds[col] {
				bounds[col] = target[row]
				first = false
			}
		}
	}
	return bounds
}

// columnRows precomputes the rows each column touches, to speed up the
// per-counter feasibility pruning.
func columnRows(matrix [][]uint8) [][]int {
	if len(matrix) == 0 {
		return nil
	}
	colRows := make([][]int, len(matrix[0]))
	for row := range matrix {
		for col, v := range matrix[row] {
			if v != 0 {
				colRows[col] = append(colRows[col], row)
			}
		}
	}
	return colRows
}

// searchState is the mutable scratch of one bounded search. partial is
// mutated on entering a branch and restored exactly on backtrack; it is never
// shared across solves.
type searchState struct {
	rs      *reducedSystem
	ech     *echelon
	bounds  []uint64
	colRows [][]int
	partial []uint64 // Per-row contribution of the free columns fixed so far.
	counts  []uint64 // Press count per free column on the current path.

	best        uint64
	bestPresses []uint64
	found       bool

	budget uint64
	stats  *Stats
}

// searchMin finds the minimum press total over the residual system.
// presses is nil when no feasible assignment exists; err reports an exhausted
// budget or an overflow.
func (s *Solver) searchMin(rs *reducedSystem, ech *echelon) (total uint64, presses []uint64, err error) {
	st := &searchState{
		rs:      rs,
		ech:     ech,
		bounds:  maxPresses(rs.matrix, rs.target),
		colRows: columnRows(rs.matrix),
		partial: make([]uint64, len(rs.target)),
		counts:  make([]uint64, len(ech.free)),
		budget:  s.Budget,
		stats:   &s.Stats,
	}
	if err := st.dfs(0, 0); err != nil {
		return 0, nil, err
	}
	if !st.found {
		return 0, nil, nil
	}
	return st.best, st.bestPresses, nil
}

// dfs explores free column idx, having committed partialSum presses at
// shallower depths.
func (st *searchState) dfs(idx int, partialSum uint64) error {
	st.stats.NbNodes++
	if st.budget > 0 && uint64(st.stats.NbNodes) > st.budget {
		return ErrExhausted
	}
	if st.found && partialSum >= st.best {
		return nil // Branch and bound: this subtree cannot improve.
	}
	if idx == len(st.ech.free) {
		st.stats.NbLeaves++
		total, presses, feasible, err := assemble(st.counts, st.ech, st.rs, st.bounds)
		if err != nil {
			return err
		}
		if feasible && (!st.found || total < st.best) {
			st.found = true
			st.best = total
			st.bestPresses = presses
		}
		return nil
	}
	col := st.ech.free[idx]
	for count := uint64(0); count <= st.bounds[col]; count++ {
		// Zero-count branches are never pruned on the bound: they cannot
		// worsen the total.
		if st.found && count > 0 && partialSum+count >= st.best {
			continue
		}
		feasible := true
		for _, row := range st.colRows[col] {
			// Wrapped sums exceed any target, so overflow reads as
			// infeasible; the unchecked add keeps the undo below exact.
			st.partial[row] += count
			if st.partial[row] > st.rs.target[row] || st.partial[row] < count {
				feasible = false
			}
		}
		if feasible {
			st.counts[idx] = count
			sum, ok := addU64(partialSum, count)
			if !ok {
				return ErrOverflow
			}
			if err := st.dfs(idx+1, sum); err != nil {
				return err
			}
		}
		for _, row := range st.colRows[col] {
			st.partial[row] -= count
		}
	}
	return nil
}
