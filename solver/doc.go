/*
Package solver computes minimum button-press counts for machines.

Two variants are supported. In the toggle variant, each press flips the
indicator lights a button touches; the minimum number of presses reaching the
target pattern is found by breadth-first search over the XOR state graph. In
the increment variant, each press adds one to every counter a button touches
and the counters must hit their joltage targets exactly; the solver finds the
non-negative integer press vector of minimum total.

The increment variant works in four stages. A reduction pass applies cheap
deductions: counters already at zero are dropped, and any counter covered by a
single button forces that button's press count outright. The residual system
is brought to reduced row-echelon form with exact rational arithmetic,
splitting buttons into pivot columns (determined) and free columns. A bounded
depth-first search enumerates the free columns, pruning on per-counter
feasibility and on the best total found so far. Each complete assignment is
handed to a verifier that reconstructs pivot values, rejects non-integer or
negative ones, and replays the full vector against the residual system.

Solving a machine:

	s := solver.New(&m)
	res, err := s.Joltage()
	if err != nil {
		// search budget exhausted, or press counts overflowed
	}
	switch res.Status {
	case solver.Sat:
		fmt.Println(res.Total)
	case solver.Unsat:
		fmt.Println("no valid configuration")
	}

A Solver is single-use state for one machine and must not be shared between
goroutines; distinct machines can be solved concurrently with distinct
Solvers.
*/
package solver
