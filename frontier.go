package bfsearch

import (
	"container/heap"
	"math"
)

// ScoreParams holds the two strictly-positive score weights passed in by
// the driver's configuration (spec.md §4.E / §6 `-b`/`-g` flags).
type ScoreParams struct {
	Beta  float64
	Gamma float64
}

// Score computes spec.md §4.E's node score:
// correct - β*min_len(root) - γ*log2(steps+1).
func Score(p ScoreParams, correct int, minLen uint32, steps uint64) float64 {
	return float64(correct) - p.Beta*float64(minLen) - p.Gamma*math.Log2(float64(steps)+1)
}

// frontierEntry is one node waiting in the search frontier: a state plus
// the score it was pushed with and the bookkeeping needed for
// spec.md §4.E's deterministic tie-break (lower min_len, then lower step
// count, then insertion order).
type frontierEntry struct {
	state *InterpreterState
	score float64
	seq   uint64
	index int // heap internals
}

// Frontier is a max-priority queue over scored search nodes.
type Frontier struct {
	heap frontierHeap
	next uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.heap)
	return f
}

// Push scores state under p and inserts it.
func (f *Frontier) Push(p ScoreParams, state *InterpreterState) {
	entry := &frontierEntry{
		state: state,
		score: Score(p, state.Correct, state.Root.MinLen, state.Steps),
		seq:   f.next,
	}
	f.next++
	heap.Push(&f.heap, entry)
}

// Pop removes and returns the highest-scored state, or nil if the frontier
// is empty (spec.md §4.F step 1: "If the frontier is empty, report
// 'no solution found' and stop").
func (f *Frontier) Pop() *InterpreterState {
	if f.heap.Len() == 0 {
		return nil
	}
	entry := heap.Pop(&f.heap).(*frontierEntry)
	return entry.state
}

// Len reports the number of nodes currently waiting in the frontier.
func (f *Frontier) Len() int {
	return f.heap.Len()
}

// Peek returns the highest-scored state's score without removing it, and
// false if the frontier is empty. Used by frontier_metrics.go.
func (f *Frontier) Peek() (float64, bool) {
	if f.heap.Len() == 0 {
		return 0, false
	}
	return f.heap[0].score, true
}

type frontierHeap []*frontierEntry

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.score != b.score {
		return a.score > b.score // max-heap
	}
	if a.state.Root.MinLen != b.state.Root.MinLen {
		return a.state.Root.MinLen < b.state.Root.MinLen
	}
	if a.state.Steps != b.state.Steps {
		return a.state.Steps < b.state.Steps
	}
	return a.seq < b.seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x any) {
	entry := x.(*frontierEntry)
	entry.index = len(*h)
	*h = append(*h, entry)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return entry
}
