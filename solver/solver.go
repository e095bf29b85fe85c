package solver

import (
	"errors"
	"math/bits"

	"github.com/emmess1/aoc25/machine"
)

var (
	// ErrExhausted is returned when the search budget ran out before the
	// machine could be settled. It is distinct from Unsat: the machine may
	// still have a solution.
	ErrExhausted = errors.New("solver: search budget exhausted")
	// ErrOverflow is returned when a press count or an intermediate sum does
	// not fit in 64 bits.
	ErrOverflow = errors.New("solver: press count overflow")
)

// Stats are statistics about the resolution of one machine.
// They are provided for information purpose only.
type Stats struct {
	NbStates int    // States dequeued by the toggle BFS.
	NbNodes  int    // Nodes visited by the free-column search.
	NbLeaves int    // Complete assignments handed to the verifier.
	NbForced uint64 // Presses pinned down by the reduction pass.
	NbFree   int    // Free columns left to the search after echelon form.
}

// A Solver computes minimum press counts for a single machine.
// It is not safe for concurrent use: solve each machine with its own Solver.
type Solver struct {
	// Budget caps the number of nodes the bounded search (and states the
	// toggle BFS) may visit. 0 means no limit.
	Budget uint64
	// Stats about the last solve call.
	Stats Stats

	m *machine.Machine
}

// New returns a solver for the given machine.
func New(m *machine.Machine) *Solver {
	return &Solver{m: m}
}

// Joltage finds the minimum total number of presses whose increments hit the
// joltage target exactly. A machine without joltage targets is trivially
// solved by zero presses.
// The returned error is nil unless the budget was exhausted (ErrExhausted) or
// a sum overflowed (ErrOverflow); in both cases the status is Indet.
func (s *Solver) Joltage() (Result, error) {
	rs, err := reduce(s.m)
	if err == errUnsat {
		return Result{Status: Unsat}, nil
	}
	if err != nil {
		return Result{Status: Indet}, err
	}
	s.Stats.NbForced = rs.forced
	if len(rs.matrix) == 0 {
		return Result{Status: Sat, Total: rs.forced, Presses: rs.forcedPress}, nil
	}
	ech, ok := newEchelon(rs.matrix, rs.target)
	if !ok {
		return Result{Status: Unsat}, nil
	}
	s.Stats.NbFree = len(ech.free)
	extra, presses, err := s.searchMin(rs, ech)
	if err != nil {
		return Result{Status: Indet}, err
	}
	if presses == nil {
		return Result{Status: Unsat}, nil
	}
	total, ok := addU64(rs.forced, extra)
	if !ok {
		return Result{Status: Indet}, ErrOverflow
	}
	return Result{Status: Sat, Total: total, Presses: rs.fullPresses(presses)}, nil
}

// addU64 adds two press totals, detecting overflow.
func addU64(a, b uint64) (sum uint64, ok bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
