package bfsearch

// RunConcrete runs root — which must contain no holes — as a plain,
// non-search interpreter (spec.md §4.G: "Result demo"). It produces at
// least wantBytes of output, or stops early on halt or the step cap,
// whichever comes first. Target comparison plays no part here: the demo's
// whole point is to show the program's output continuing past the bytes
// that were matched during search (spec.md's "extra" bytes), so RunConcrete
// passes Advance an empty target and relies only on wantBytes/step cap to
// decide when enough has been produced.
//
// Grounded on brainfuck/machine.go's Machine.Run loop and its
// (bool, error)-free "halt flag plus exception" shape, generalized to
// wraparound cells and an unbounded signed tape instead of that package's
// bounds-checked Memory.
func RunConcrete(root *Node, wantBytes int, stepCap uint64) (output []byte, steps uint64, halted bool) {
	state := NewConcreteState(root)

	for {
		if len(state.Output) >= wantBytes {
			return state.Output, state.Steps, false
		}

		outcome := Advance(state, nil, stepCap)
		switch outcome.Kind {
		case OutcomeEmitted, OutcomeStepped:
			state = outcome.State

		case OutcomeHalted:
			return state.Output, state.Steps, true

		case OutcomeDiverged:
			return state.Output, state.Steps, false

		case OutcomePruned:
			// Pruning only happens on mismatch (impossible with a nil
			// target) or on an unsupported opcode (',').
			return outcome.State.Output, outcome.State.Steps, false

		case OutcomeNeedsExpansion:
			panic("bfsearch: RunConcrete reached a Hole in a supposedly concrete program")

		default:
			panic("bfsearch: Advance returned an unknown Outcome")
		}
	}
}
