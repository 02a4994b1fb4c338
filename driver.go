package bfsearch

// Driver runs the best-first search state machine of spec.md §4.F. It is
// pull-based: Next advances the frontier until a fresh, distinct solution
// is found (or the frontier empties), then returns control to its caller —
// the only suspension point the engine has (spec.md §5).
type Driver struct {
	Target    []byte
	Params    ScoreParams
	MaxSteps  uint64
	frontier  *Frontier
	seen      map[string]struct{}
	nextNum   int
	Diagnose  func(outcome Outcome, target []byte) // optional, see diagnostics.go
	Metrics   *FrontierMetrics                      // optional, see frontier_metrics.go
}

// Seed adds program strings (e.g. from a prior run's persisted solutions,
// SPEC_FULL.md §6.1) to the distinct-solution dedup set without counting
// them as emitted during this run.
func (d *Driver) Seed(programs []string) {
	for _, p := range programs {
		d.seen[p] = struct{}{}
	}
}

// NewDriver seeds a fresh search for target under the given score weights
// and per-node step cap.
func NewDriver(target []byte, params ScoreParams, maxSteps uint64) *Driver {
	d := &Driver{
		Target:   target,
		Params:   params,
		MaxSteps: maxSteps,
		frontier: NewFrontier(),
		seen:     make(map[string]struct{}),
	}
	d.frontier.Push(d.Params, NewInterpreterState())
	return d
}

// Solution is one emitted, fully-concrete, target-matching program.
type Solution struct {
	Num     int
	Root    *Node
	Program string
	Steps   uint64
}

// Next drives the frontier forward until it produces a solution not
// structurally equal to any previously emitted one, or the frontier runs
// dry. A zero Solution with ok == false means "no solution found" (spec.md
// §4.F step 1).
func (d *Driver) Next() (sol Solution, ok bool) {
	for {
		state := d.frontier.Pop()
		if state == nil {
			return Solution{}, false
		}

		outcome := Advance(state, d.Target, d.MaxSteps)

		switch outcome.Kind {
		case OutcomeNeedsExpansion:
			for _, child := range Expand(state, outcome.HoleID) {
				d.frontier.Push(d.Params, child)
			}
			if d.Metrics != nil {
				d.Metrics.Expanded()
			}

		case OutcomeEmitted:
			succ := outcome.State
			if succ.Correct == len(d.Target) && !succ.Root.HasHole() {
				if s, emitted := d.emit(succ); emitted {
					return s, true
				}
				continue
			}
			d.frontier.Push(d.Params, succ)

		case OutcomeStepped:
			d.frontier.Push(d.Params, outcome.State)

		case OutcomeHalted:
			if state.Correct == len(d.Target) {
				if s, emitted := d.emit(state); emitted {
					return s, true
				}
			}
			// else: prune (premature halt, PrunePrematureHalt conceptually)

		case OutcomeDiverged, OutcomePruned:
			if d.Diagnose != nil {
				d.Diagnose(outcome, d.Target)
			}

		default:
			panic("bfsearch: Advance returned an unknown Outcome")
		}
	}
}

// emit records state's program as a solution if its text has not already
// been emitted (spec.md §4.F "Distinct-solution requirement"), returning
// ok == false for an already-seen program so Next keeps searching.
func (d *Driver) emit(state *InterpreterState) (Solution, bool) {
	program := state.Root.ToBrainfuck()
	if _, dup := d.seen[program]; dup {
		return Solution{}, false
	}
	d.seen[program] = struct{}{}
	d.nextNum++
	return Solution{
		Num:     d.nextNum,
		Root:    state.Root,
		Program: program,
		Steps:   state.Steps,
	}, true
}

// FrontierLen reports the current frontier size, for diagnostics/metrics.
func (d *Driver) FrontierLen() int {
	return d.frontier.Len()
}

// BestScore reports the score of the highest-scored pending node, if any.
func (d *Driver) BestScore() (float64, bool) {
	return d.frontier.Peek()
}
