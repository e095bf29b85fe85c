package solver

import (
	"errors"

	"github.com/emmess1/aoc25/machine"
)

// errUnsat is internal: Joltage translates it to the Unsat status.
var errUnsat = errors.New("solver: machine is unsatisfiable")

// A reducedSystem is what remains of a machine after the cheap deductions.
// Rows are counters with positive remaining demand; columns are buttons that
// still touch at least one such row. Entries are 0/1.
type reducedSystem struct {
	forced      uint64    // Total presses pinned down by deduction.
	forcedPress []uint64  // Per-button forced presses, in machine button order.
	matrix      [][]uint8 // len(rows) × len(cols).
	target      []uint64  // Remaining demand per surviving row, all positive.
	rows        []int     // Surviving row -> counter index.
	cols        []int     // Surviving column -> machine button index.
}

// fullPresses merges the forced per-button presses with the counts found for
// the surviving columns into a complete press vector.
func (rs *reducedSystem) fullPresses(colPresses []uint64) []uint64 {
	full := make([]uint64, len(rs.forcedPress))
	copy(full, rs.forcedPress)
	for i, col := range rs.cols {
		full[col] += colPresses[i]
	}
	return full
}

// reduce applies cheap deductions to a machine before the expensive solve:
//
//  1. Counters whose target is already zero are discarded, along with every
//     button touching one (a press would overshoot the satisfied counter).
//  2. A counter covered by exactly one active button forces that button to
//     absorb the counter's whole remaining demand. The demand is subtracted
//     from every counter the button touches and the button is deactivated.
//  3. Buttons now touching a counter whose demand dropped to zero are
//     deactivated too.
//
// Steps 2 and 3 repeat until a fixpoint. The surviving counters and buttons
// form the residual system. Returns errUnsat when a counter with positive
// demand has no active button left, or a forced assignment would drive a
// demand negative; ErrOverflow when the forced total does not fit in 64 bits.
func reduce(m *machine.Machine) (*reducedSystem, error) {
	nbRows := len(m.Joltage)
	rs := &reducedSystem{forcedPress: make([]uint64, len(m.Buttons))}
	if nbRows == 0 {
		return rs, nil
	}

	// Buttons touching an already satisfied counter can never be pressed.
	var zero machine.Mask
	for row, v := range m.Joltage {
		if v == 0 {
			zero = zero.With(row)
		}
	}
	type column struct {
		button int   // Index into m.Buttons.
		rows   []int // Counters this button touches, all with positive demand.
	}
	var cols []column
	for i, mask := range m.Buttons {
		if mask.Overlaps(zero) {
			continue
		}
		touched := mask.Bits(m.Lights)
		if len(touched) == 0 {
			continue
		}
		cols = append(cols, column{button: i, rows: touched})
	}

	remaining := make([]uint64, nbRows)
	copy(remaining, m.Joltage)
	if len(cols) == 0 {
		for _, v := range remaining {
			if v != 0 {
				return nil, errUnsat
			}
		}
		return rs, nil
	}

	rowCols := make([][]int, nbRows)
	for c := range cols {
		for _, row := range cols[c].rows {
			rowCols[row] = append(rowCols[row], c)
		}
	}

	active := make([]bool, len(cols))
	for i := range active {
		active[i] = true
	}
	for {
		// Forced assignments, to fixpoint.
		for {
			progress := false
			for row := 0; row < nbRows; row++ {
				need := remaining[row]
				if need == 0 {
					continue
				}
				covering := -1
				nbCovering := 0
				for _, c := range rowCols[row] {
					if active[c] {
						covering = c
						nbCovering++
					}
				}
				if nbCovering == 0 {
					return nil, errUnsat
				}
				if nbCovering > 1 {
					continue
				}
				// A single button covers this counter: it must absorb the
				// whole remaining demand.
				for _, r := range cols[covering].rows {
					if remaining[r] < need {
						return nil, errUnsat
					}
					remaining[r] -= need
				}
				var ok bool
				if rs.forced, ok = addU64(rs.forced, need); !ok {
					return nil, ErrOverflow
				}
				rs.forcedPress[cols[covering].button] = need
				active[covering] = false
				progress = true
				break
			}
			if !progress {
				break
			}
		}
		// Pressing a button that touches a satisfied counter would overshoot.
		removed := false
		for c := range cols {
			if !active[c] {
				continue
			}
			for _, row := range cols[c].rows {
				if remaining[row] == 0 {
					active[c] = false
					removed = true
					break
				}
			}
		}
		if !removed {
			break
		}
	}

	// Every counter with remaining demand must still be coverable.
	for row := 0; row < nbRows; row++ {
		if remaining[row] == 0 {
			continue
		}
		covered := false
		for _, c := range rowCols[row] {
			if active[c] {
				covered = true
				break
			}
		}
		if !covered {
			return nil, errUnsat
		}
	}

	for row := 0; row < nbRows; row++ {
		if remaining[row] > 0 {
			rs.rows = append(rs.rows, row)
		}
	}
	if len(rs.rows) == 0 {
		return rs, nil
	}
	for c := range cols {
		if !active[c] {
			continue
		}
		for _, row := range cols[c].rows {
			if remaining[row] > 0 {
				rs.cols = append(rs.cols, cols[c].button)
				break
			}
		}
	}
	if len(rs.cols) == 0 {
		return nil, errUnsat
	}

	rowIdx := make(map[int]int, len(rs.rows))
	for i, row := range rs.rows {
		rs.target = append(rs.target, remaining[row])
		rowIdx[row] = i
	}
	rs.matrix = make([][]uint8, len(rs.rows))
	for i := range rs.matrix {
		rs.matrix[i] = make([]uint8, len(rs.cols))
	}
	for j, button := range rs.cols {
		for _, row := range m.Buttons[button].Bits(m.Lights) {
			if i, surviving := rowIdx[row]; surviving {
				rs.matrix[i][j] = 1
			}
		}
	}
	return rs, nil
}
