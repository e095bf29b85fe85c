package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/emmess1/aoc25/machine"
	"github.com/emmess1/aoc25/solver"
)

// Variant selects which puzzle variants a run solves.
type Variant int

const (
	// Toggle is the indicator variant: buttons flip lights.
	Toggle Variant = 1 << iota
	// Joltage is the increment variant: buttons add to counters.
	Joltage
	// Both solves the two variants for every machine.
	Both = Toggle | Joltage
)

// ParseVariant converts a command-line variant name.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "toggle":
		return Toggle, nil
	case "joltage":
		return Joltage, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("invalid variant %q: must be toggle, joltage or both", name)
	}
}

// A MachineResult is the outcome for one machine of the batch.
type MachineResult struct {
	Index      int
	Toggle     solver.Result
	ToggleErr  error
	Joltage    solver.Result
	JoltageErr error
}

// A Summary aggregates a whole run. Totals only include machines whose solve
// reached Sat; unsatisfiable or aborted machines are counted separately and
// reported per machine.
type Summary struct {
	Variant      Variant
	Results      []MachineResult
	ToggleTotal  uint64
	JoltageTotal uint64
	NbUnsolved   int
}

// A Runner solves batches of machines according to its configuration.
type Runner struct {
	cfg Config
	log *slog.Logger
}

// New returns a runner. A nil logger falls back to slog.Default.
func New(cfg Config, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, log: log}
}

// Run solves every machine of the batch and aggregates per-variant totals.
// Machines are independent, so they are dispatched to cfg.Workers goroutines;
// each solve owns its solver and its scratch state, so no locking is needed.
// Results keep input order regardless of completion order.
//
// Per-machine failures (unsatisfiable, budget exhausted, overflow) are
// recorded in the summary, not returned as errors: the rest of the batch
// still runs. Run only fails when the context is cancelled or a total
// overflows.
func (r *Runner) Run(ctx context.Context, machines []machine.Machine, variant Variant) (*Summary, error) {
	results := make([]MachineResult, len(machines))
	g, ctx := errgroup.WithContext(ctx)
	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for i := range machines {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = r.solveOne(i, &machines[i], variant)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{Variant: variant, Results: results}
	for i := range results {
		res := &results[i]
		solved := true
		if variant&Toggle != 0 {
			if res.ToggleErr == nil && res.Toggle.Status == solver.Sat {
				total, ok := addTotal(sum.ToggleTotal, res.Toggle.Total)
				if !ok {
					return nil, fmt.Errorf("machine %d: %w", i, solver.ErrOverflow)
				}
				sum.ToggleTotal = total
			} else {
				solved = false
			}
		}
		if variant&Joltage != 0 {
			if res.JoltageErr == nil && res.Joltage.Status == solver.Sat {
				total, ok := addTotal(sum.JoltageTotal, res.Joltage.Total)
				if !ok {
					return nil, fmt.Errorf("machine %d: %w", i, solver.ErrOverflow)
				}
				sum.JoltageTotal = total
			} else {
				solved = false
			}
		}
		if !solved {
			sum.NbUnsolved++
		}
	}
	return sum, nil
}

func (r *Runner) solveOne(idx int, m *machine.Machine, variant Variant) MachineResult {
	res := MachineResult{Index: idx}
	if variant&Toggle != 0 {
		s := solver.New(m)
		s.Budget = r.cfg.Budget
		res.Toggle, res.ToggleErr = s.Toggle()
		if r.cfg.Verbose {
			r.log.Debug("toggle solved", "machine", idx,
				"status", res.Toggle.Status.String(), "states", s.Stats.NbStates)
		}
	}
	if variant&Joltage != 0 {
		s := solver.New(m)
		s.Budget = r.cfg.Budget
		res.Joltage, res.JoltageErr = s.Joltage()
		if r.cfg.Verbose {
			r.log.Debug("joltage solved", "machine", idx,
				"status", res.Joltage.Status.String(), "forced", s.Stats.NbForced,
				"free", s.Stats.NbFree, "nodes", s.Stats.NbNodes, "leaves", s.Stats.NbLeaves)
		}
	}
	return res
}

// WriteText renders the human-readable report: one line per machine followed
// by the per-variant grand totals.
func (s *Summary) WriteText(w io.Writer) error {
	for i := range s.Results {
		res := &s.Results[i]
		if _, err := fmt.Fprintf(w, "machine %d:", res.Index); err != nil {
			return err
		}
		if s.Variant&Toggle != 0 {
			if _, err := fmt.Fprintf(w, " toggle=%s", outcome(res.Toggle, res.ToggleErr)); err != nil {
				return err
			}
		}
		if s.Variant&Joltage != 0 {
			if _, err := fmt.Fprintf(w, " joltage=%s", outcome(res.Joltage, res.JoltageErr)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	nbSolved := len(s.Results) - s.NbUnsolved
	if s.Variant&Toggle != 0 {
		if _, err := fmt.Fprintf(w, "toggle total: %d (%d solved, %d unsolved)\n",
			s.ToggleTotal, nbSolved, s.NbUnsolved); err != nil {
			return err
		}
	}
	if s.Variant&Joltage != 0 {
		if _, err := fmt.Fprintf(w, "joltage total: %d (%d solved, %d unsolved)\n",
			s.JoltageTotal, nbSolved, s.NbUnsolved); err != nil {
			return err
		}
	}
	return nil
}

func outcome(res solver.Result, err error) string {
	switch {
	case errors.Is(err, solver.ErrExhausted):
		return "EXHAUSTED"
	case errors.Is(err, solver.ErrOverflow):
		return "OVERFLOW"
	case err != nil:
		return "ERROR"
	case res.Status == solver.Sat:
		return fmt.Sprintf("%d", res.Total)
	default:
		return res.Status.String()
	}
}

func addTotal(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}
