package solver

import "github.com/emmess1/aoc25/machine"

// Toggle finds the minimum number of presses turning every light from off to
// the machine's indicator target, where each press flips the lights the
// button touches.
//
// The state graph is unweighted (every press costs one), so a breadth-first
// search from the all-off state finds the minimum: the first time the target
// is generated, its distance is optimal.
func (s *Solver) Toggle() (Result, error) {
	m := s.m
	if m.Target.IsZero() {
		return Result{Status: Sat, Total: 0}, nil
	}
	if len(m.Buttons) == 0 {
		return Result{Status: Unsat}, nil
	}
	type node struct {
		state machine.Mask
		dist  uint64
	}
	visited := map[machine.Mask]bool{{}: true}
	queue := []node{{}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		s.Stats.NbStates++
		if s.Budget > 0 && uint64(s.Stats.NbStates) > s.Budget {
			return Result{Status: Indet}, ErrExhausted
		}
		for _, button := range m.Buttons {
			next := cur.state.Xor(button)
			if next == m.Target {
				return Result{Status: Sat, Total: cur.dist + 1}, nil
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, node{state: next, dist: cur.dist + 1})
			}
		}
	}
	return Result{Status: Unsat}, nil
}
