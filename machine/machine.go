package machine

// A Machine is one puzzle instance: an ordered list of buttons, the indicator
// pattern for the toggle variant and the joltage targets for the increment
// variant.
//
// Buttons with identical effect sets are collapsed at parse time; machines
// built directly may still carry duplicates, and the solver treats every
// button as a distinguishable column.
type Machine struct {
	Lights  int      // Number of indicator lights / counters.
	Target  Mask     // Desired on/off pattern, toggle variant only.
	Buttons []Mask   // Counters each button touches once per press.
	Joltage []uint64 // Exact per-counter totals, increment variant. Empty when absent.
}

// NbButtons returns the number of distinct buttons on the machine.
func (m *Machine) NbButtons() int {
	return len(m.Buttons)
}
