package bfsearch

import "testing"

func stateWithMinLenAndSteps(minLen uint32, steps uint64, correct int) *InterpreterState {
	s := NewInterpreterState()
	s.Root = &Node{ID: s.Root.ID, Kind: KindHole, MinLen: minLen}
	s.PC = s.Root
	s.Steps = steps
	s.Correct = correct
	return s
}

func TestFrontierPopsHighestScoreFirst(t *testing.T) {
	f := NewFrontier()
	params := ScoreParams{Beta: 1.0, Gamma: 1.0}

	low := stateWithMinLenAndSteps(10, 0, 0)
	high := stateWithMinLenAndSteps(1, 0, 5)

	f.Push(params, low)
	f.Push(params, high)

	got := f.Pop()
	if got != high {
		t.Errorf("Frontier did not pop the higher-scored node first")
	}
}

func TestFrontierEmptyPopReturnsNil(t *testing.T) {
	f := NewFrontier()
	if got := f.Pop(); got != nil {
		t.Errorf("Pop on an empty Frontier returned %v, want nil", got)
	}
}

func TestFrontierTieBreakByMinLen(t *testing.T) {
	f := NewFrontier()
	params := ScoreParams{Beta: 1.0, Gamma: 1.0}

	// Equal score, different min_len: a has correct 3 and min_len 5, b has
	// correct 0 and min_len 2, both have 0 steps, so each scores -2 with
	// beta = gamma = 1. a is pushed first, so only the min_len tie-break
	// can make b pop first.
	a := stateWithMinLenAndSteps(5, 0, 3)
	b := stateWithMinLenAndSteps(2, 0, 0)

	f.Push(params, a)
	f.Push(params, b)

	if got := f.Pop(); got != b {
		t.Errorf("Frontier did not prefer the lower min_len node")
	}
}

func TestFrontierTieBreakByInsertionOrder(t *testing.T) {
	f := NewFrontier()
	params := ScoreParams{Beta: 1.0, Gamma: 1.0}

	a := stateWithMinLenAndSteps(3, 0, 0)
	b := stateWithMinLenAndSteps(3, 0, 0)

	f.Push(params, a)
	f.Push(params, b)

	if got := f.Pop(); got != a {
		t.Errorf("Frontier did not prefer the earlier-inserted node on a full tie")
	}
}

func TestFrontierLenTracksPushAndPop(t *testing.T) {
	f := NewFrontier()
	params := ScoreParams{Beta: 1.0, Gamma: 1.0}

	if f.Len() != 0 {
		t.Fatalf("fresh Frontier Len() = %d, want 0", f.Len())
	}
	f.Push(params, stateWithMinLenAndSteps(1, 0, 0))
	f.Push(params, stateWithMinLenAndSteps(1, 0, 0))
	if f.Len() != 2 {
		t.Errorf("Len() after two pushes = %d, want 2", f.Len())
	}
	f.Pop()
	if f.Len() != 1 {
		t.Errorf("Len() after one pop = %d, want 1", f.Len())
	}
}
