package bfsearch

import cp "github.com/jinzhu/copier"

// InterpreterState is a search node's complete (but mostly shared)
// execution state: spec.md §3's root program, cursor, data pointer, tape,
// output so far, step counter, and loop-return stack. States are owned by
// exactly one frontier entry at a time; branching clones the mutable
// fields (output, loop stack) while sharing the immutable AST and tape.
type InterpreterState struct {
	Root      *Node
	PC        *Node
	DP        int64
	Tape      *Tape
	Output    []byte
	Steps     uint64
	Correct   int
	LoopStack []uint64
}

// NewInterpreterState returns the state of a brand-new search: root is a
// single Hole, execution cursor at that Hole, zeroed tape and pointer.
func NewInterpreterState() *InterpreterState {
	root := NewHole()
	return &InterpreterState{
		Root: root,
		PC:   root,
		Tape: NewTape(),
	}
}

// NewConcreteState seeds an InterpreterState for running a fully concrete
// program with no search machinery involved — used by the result demo
// (spec.md §4.G) via RunConcrete in demo.go.
func NewConcreteState(root *Node) *InterpreterState {
	return &InterpreterState{Root: root, PC: root, Tape: NewTape()}
}

// Clone returns an independent copy of s: the bulk field copy goes through
// github.com/jinzhu/copier (the same cloning library the teacher's
// Unit.Clone()/Instruction.Clone() use), then Output and LoopStack are
// duplicated explicitly — copier's shallow copy would otherwise alias the
// backing arrays, and siblings in the search frontier must never observe
// each other's appends (spec.md §3 "Lifecycle": "branching creates new
// states that... carry independent cursors, output buffers, and step
// counts").
func (s *InterpreterState) Clone() *InterpreterState {
	clone := &InterpreterState{}
	cp.Copy(clone, s)
	clone.Output = append([]byte(nil), s.Output...)
	clone.LoopStack = append([]uint64(nil), s.LoopStack...)
	return clone
}

// OutcomeKind discriminates the six Advance results of spec.md §4.C.
type OutcomeKind byte

const (
	OutcomeNeedsExpansion OutcomeKind = iota
	OutcomeEmitted
	OutcomeStepped
	OutcomeHalted
	OutcomeDiverged
	OutcomePruned
)

// PruneReason further classifies an OutcomePruned result, purely for
// logging/diagnostics — spec.md §7 is explicit that these never surface to
// the user as errors.
type PruneReason byte

const (
	PruneNone PruneReason = iota
	PruneMismatch
	PrunePrematureHalt
	PruneUnsupportedInstruction
	PruneStructural
)

// Outcome is the result of a single Advance call.
type Outcome struct {
	Kind   OutcomeKind
	HoleID uint64            // valid when Kind == OutcomeNeedsExpansion
	Byte   byte              // valid when Kind == OutcomeEmitted
	State  *InterpreterState // the successor state; for OutcomePruned, the (discarded) state that triggered the prune, kept only for diagnostics
	Reason PruneReason       // valid when Kind == OutcomePruned
}

// Advance executes exactly one "step unit" of s against target, per
// spec.md §4.C. It never mutates s. Stepped and Emitted outcomes, and
// mismatch or structural prunes, carry a freshly cloned state; Halted,
// Diverged and a ',' prune carry s itself.
func Advance(s *InterpreterState, target []byte, maxSteps uint64) Outcome {
	if s.Steps >= maxSteps {
		return Outcome{Kind: OutcomeDiverged, State: s}
	}

	switch s.PC.Kind {
	case KindHole:
		return Outcome{Kind: OutcomeNeedsExpansion, HoleID: s.PC.ID}

	case KindEmpty:
		if len(s.LoopStack) == 0 {
			return Outcome{Kind: OutcomeHalted, State: s}
		}
		return advanceLoopEnd(s)

	case KindSeq:
		return advanceSeq(s, target)

	case KindLoop:
		return advanceLoopStart(s)

	default:
		panic("bfsearch: Node with unknown Kind reached Advance")
	}
}

// advanceLoopEnd executes the implicit ']' at the end of a Loop's body:
// re-enter the body on a nonzero current cell, otherwise pop the loop
// return stack and continue with the Loop's tail. The current version of
// the Loop node is looked up by identity (spec.md's "Loop jump via
// identity, not index" design note) because the body may have had holes
// expanded since it was entered, so a pointer captured at push time could
// be stale.
func advanceLoopEnd(s *InterpreterState) Outcome {
	child := s.Clone()
	child.Steps++

	loopID := child.LoopStack[len(child.LoopStack)-1]
	loopNode := FindByID(child.Root, loopID)
	if loopNode == nil {
		return Outcome{Kind: OutcomePruned, Reason: PruneStructural, State: child}
	}

	if child.Tape.Get(child.DP) != 0 {
		child.PC = loopNode.Body
	} else {
		child.LoopStack = child.LoopStack[:len(child.LoopStack)-1]
		child.PC = loopNode.Tail
	}
	return Outcome{Kind: OutcomeStepped, State: child}
}

// advanceLoopStart executes a '[': skip to the loop's tail on a zero cell,
// otherwise push the Loop's identity and descend into its body.
func advanceLoopStart(s *InterpreterState) Outcome {
	child := s.Clone()
	child.Steps++

	if child.Tape.Get(child.DP) != 0 {
		child.LoopStack = append(child.LoopStack, s.PC.ID)
		child.PC = s.PC.Body
	} else {
		child.PC = s.PC.Tail
	}
	return Outcome{Kind: OutcomeStepped, State: child}
}

// advanceSeq executes a single concrete opcode and moves the cursor to its
// tail, with standard Brainfuck semantics and modulo-256 wraparound.
func advanceSeq(s *InterpreterState, target []byte) Outcome {
	op := s.PC.Op
	tail := s.PC.Tail

	if op == InstrRead {
		return Outcome{Kind: OutcomePruned, Reason: PruneUnsupportedInstruction, State: s}
	}

	child := s.Clone()
	child.Steps++

	switch op {
	case InstrPointerLeft:
		child.DP--
		child.PC = tail
		return Outcome{Kind: OutcomeStepped, State: child}

	case InstrPointerRight:
		child.DP++
		child.PC = tail
		return Outcome{Kind: OutcomeStepped, State: child}

	case InstrInc:
		child.Tape = child.Tape.Inc(child.DP)
		child.PC = tail
		return Outcome{Kind: OutcomeStepped, State: child}

	case InstrDec:
		child.Tape = child.Tape.Dec(child.DP)
		child.PC = tail
		return Outcome{Kind: OutcomeStepped, State: child}

	case InstrOutput:
		v := child.Tape.Get(child.DP)
		child.Output = append(child.Output, v)
		idx := len(child.Output) - 1
		if idx < len(target) {
			if v != target[idx] {
				return Outcome{Kind: OutcomePruned, Reason: PruneMismatch, State: child}
			}
			child.Correct = idx + 1
		}
		child.PC = tail
		return Outcome{Kind: OutcomeEmitted, Byte: v, State: child}

	default:
		mustValid(op)
		panic("unreachable")
	}
}
