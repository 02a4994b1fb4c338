package bfsearch

import "testing"

func TestExpandProducesSevenCandidates(t *testing.T) {
	s := NewInterpreterState()
	children := Expand(s, s.PC.ID)

	// Empty + 5 ExpandableInstrs + Loop == 7
	if len(children) != 7 {
		t.Fatalf("Expand produced %d children, want 7", len(children))
	}
}

func TestExpandFirstCandidateIsEmpty(t *testing.T) {
	s := NewInterpreterState()
	children := Expand(s, s.PC.ID)

	if children[0].PC.Kind != KindEmpty {
		t.Errorf("first Expand candidate has Kind %v, want KindEmpty", children[0].PC.Kind)
	}
}

func TestExpandMiddleCandidatesAreExpandableInstrsInOrder(t *testing.T) {
	s := NewInterpreterState()
	children := Expand(s, s.PC.ID)

	for i, op := range ExpandableInstrs {
		c := children[1+i]
		if c.PC.Kind != KindSeq || c.PC.Op != op {
			t.Errorf("candidate %d = kind %v op %v, want Seq(%v)", i, c.PC.Kind, c.PC.Op, op)
		}
	}
}

func TestExpandLastCandidateIsLoop(t *testing.T) {
	s := NewInterpreterState()
	children := Expand(s, s.PC.ID)

	last := children[len(children)-1]
	if last.PC.Kind != KindLoop {
		t.Errorf("last Expand candidate has Kind %v, want KindLoop", last.PC.Kind)
	}
}

func TestExpandNeverOffersRead(t *testing.T) {
	s := NewInterpreterState()
	children := Expand(s, s.PC.ID)

	for _, c := range children {
		if c.PC.Kind == KindSeq && c.PC.Op == InstrRead {
			t.Errorf("Expand offered ',' as a candidate, which must be pruned-on-sight, never expandable")
		}
	}
}

func TestExpandSharesUnaffectedSiblings(t *testing.T) {
	outer := NewSeq(InstrInc, Empty)
	hole := NewHole()
	loop := NewLoop(hole, outer)
	s := NewInterpreterState()
	s.Root = loop
	s.PC = hole

	children := Expand(s, hole.ID)
	for _, c := range children {
		if c.Root.Body == nil {
			t.Fatalf("expanded root lost its Loop body")
		}
		if c.Root.Tail != outer {
			t.Errorf("Expand rebuilt the untouched tail subtree instead of sharing it")
		}
	}
}
