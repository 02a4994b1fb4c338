package bfsearch

import (
	"log"

	"github.com/xrash/smetrics"
)

// LogPrune emits, when DEBUG is set, a diagnostic line for a pruned or
// diverged outcome — grounded on the teacher's unit.go, which imports
// smetrics but leaves the WagnerFischer call commented out. Here it is
// wired live: on a mismatch prune, it reports the edit distance between
// the dead branch's output so far and the matching-length target prefix,
// to help a human operator judge how close a dead branch came. This is
// diagnostic-only: it never influences score, pruning, or ordering.
func LogPrune(outcome Outcome, target []byte) {
	if !DEBUG {
		return
	}

	switch outcome.Kind {
	case OutcomePruned:
		if outcome.Reason != PruneMismatch || outcome.State == nil {
			log.Printf("pruned (%v)", outcome.Reason)
			return
		}
		got := outcome.State.Output
		want := target
		if len(want) > len(got) {
			want = want[:len(got)]
		}
		dist := smetrics.WagnerFischer(string(got), string(want), 1, 1, 2)
		log.Printf("pruned (mismatch): edit distance %d between %q and %q", dist, got, want)

	case OutcomeDiverged:
		log.Printf("diverged: step cap reached")
	}
}
