package solver

// Status is the outcome of solving one machine.
type Status byte

const (
	// Indet means the solver stopped before settling the machine, typically
	// because the search budget ran out.
	Indet = Status(iota)
	// Sat means a minimum press count was found.
	Sat
	// Unsat means no combination of presses reaches the target.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Result is the outcome of one solve call.
// Total and Presses are only meaningful when Status is Sat.
// For the increment variant, Presses holds the press count of every button of
// the machine, in button order; the toggle variant reports Total only.
type Result struct {
	Status  Status
	Total   uint64
	Presses []uint64
}
