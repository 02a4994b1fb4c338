package bfsearch

import "testing"

func firstSolution(t *testing.T, target []byte) Solution {
	t.Helper()
	d := NewDriver(target, ScoreParams{Beta: 1.0, Gamma: 1.0}, 1_000_000)
	sol, ok := d.Next()
	if !ok {
		t.Fatalf("driver found no solution for target %v", target)
	}
	return sol
}

func TestEmptyTargetSolvesImmediatelyWithEmptyProgram(t *testing.T) {
	sol := firstSolution(t, nil)
	if sol.Program != "" {
		t.Errorf("empty target's first solution = %q, want \"\"", sol.Program)
	}
}

func TestSingleZeroByteSolvesWithDot(t *testing.T) {
	sol := firstSolution(t, []byte{0})
	if sol.Program != "." {
		t.Errorf("target [0]'s first solution = %q, want \".\"", sol.Program)
	}
}

func TestFourByteCountingTargetMatchesInFull(t *testing.T) {
	target := []byte{0, 1, 2, 3}
	sol := firstSolution(t, target)

	out, _, _ := RunConcrete(sol.Root, len(target), 1_000_000)
	if len(out) < len(target) {
		t.Fatalf("demo output shorter than target: %v", out)
	}
	for i, want := range target {
		if out[i] != want {
			t.Errorf("demo output[%d] = %d, want %d (program %q)", i, out[i], want, sol.Program)
		}
	}
}

func TestWraparoundTarget255Then0(t *testing.T) {
	target := []byte{255, 0}
	sol := firstSolution(t, target)

	out, _, _ := RunConcrete(sol.Root, len(target), 1_000_000)
	if len(out) < len(target) || out[0] != 255 || out[1] != 0 {
		t.Errorf("program %q produced demo output %v, want it to begin with [255 0]", sol.Program, out)
	}
}

func TestCountingToTenIsSolvable(t *testing.T) {
	target := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sol := firstSolution(t, target)

	out, _, _ := RunConcrete(sol.Root, len(target), 5_000_000)
	if len(out) < len(target) {
		t.Fatalf("demo output shorter than target: %v", out)
	}
	for i, want := range target {
		if out[i] != want {
			t.Errorf("demo output[%d] = %d, want %d", i, out[i], want)
		}
	}
}

func TestDistinctSolutionsAreNeverTextuallyEqual(t *testing.T) {
	d := NewDriver([]byte{0, 1}, ScoreParams{Beta: 1.0, Gamma: 1.0}, 1_000_000)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		sol, ok := d.Next()
		if !ok {
			break
		}
		if seen[sol.Program] {
			t.Fatalf("solution %q emitted twice", sol.Program)
		}
		seen[sol.Program] = true
	}
}

func TestNoSolutionOnExhaustedFrontierReportsFalse(t *testing.T) {
	// A frontier can only exhaust once every reachable node is pruned or
	// diverged; with a step cap of 0 every node diverges on its very first
	// advance, including the root hole's expansion path.
	d := NewDriver([]byte{1}, ScoreParams{Beta: 1.0, Gamma: 1.0}, 0)
	if _, ok := d.Next(); ok {
		t.Errorf("driver with a step cap of 0 unexpectedly found a solution")
	}
}
