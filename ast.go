package bfsearch

import "sync/atomic"

// NodeKind discriminates the four partial-program variants described in
// spec.md §3. A Node is immutable once constructed; replacing a Hole never
// mutates an existing Node, it builds new ones along the root-to-hole path
// and shares every sibling untouched by the replacement.
type NodeKind byte

const (
	KindEmpty NodeKind = iota
	KindHole
	KindSeq
	KindLoop
)

// nodeIDCounter is the source of node identities. Identity 0 is reserved
// for the single canonical Empty instance; NewHole, NewSeq and NewLoop each
// take the next value. ReplaceHole draws no new identities (see Node).
var nodeIDCounter uint64

func nextNodeID() uint64 {
	return atomic.AddUint64(&nodeIDCounter, 1)
}

// Node is one node of a partial-program AST. Nodes are never mutated, but
// ReplaceHole re-uses identities: the node that fills a Hole takes the
// Hole's ID, and each ancestor it rebuilds keeps its own ID. Two Nodes with
// the same ID from different versions of a program can therefore differ
// below the point where a hole was expanded.
type Node struct {
	ID     uint64
	Kind   NodeKind
	Op     Instr // valid only when Kind == KindSeq
	Body   *Node // valid only when Kind == KindLoop
	Tail   *Node // valid when Kind == KindSeq or KindLoop
	MinLen uint32
}

// Empty is the single canonical terminated-sequence node. Spec.md §4.A
// recommends, but does not require, sharing one Empty instance. A Hole that
// is filled with Empty does not become this instance: ReplaceHole stamps a
// new Empty node with the Hole's identity.
var Empty = &Node{ID: 0, Kind: KindEmpty, MinLen: 0}

// NewHole allocates a fresh, uniquely-identified unexpanded node.
func NewHole() *Node {
	return &Node{ID: nextNodeID(), Kind: KindHole, MinLen: 0}
}

// NewSeq builds a concrete op followed by tail. op must not be InstrLoop or
// InstrLoopEnd — those are represented structurally via NewLoop.
func NewSeq(op Instr, tail *Node) *Node {
	mustValid(op)
	return seqWithID(nextNodeID(), op, tail)
}

func seqWithID(id uint64, op Instr, tail *Node) *Node {
	return &Node{ID: id, Kind: KindSeq, Op: op, Tail: tail, MinLen: 1 + tail.MinLen}
}

// NewLoop builds a concrete [body] followed by tail.
func NewLoop(body, tail *Node) *Node {
	return loopWithID(nextNodeID(), body, tail)
}

func loopWithID(id uint64, body, tail *Node) *Node {
	return &Node{ID: id, Kind: KindLoop, Body: body, Tail: tail, MinLen: 2 + body.MinLen + tail.MinLen}
}

// FindByID returns the node with the given identity reachable from root, or
// nil if none is. Expand uses it to put the cursor on a filled hole, and
// interpreter.go uses it at loop-exit time because a Loop's body or tail
// may have been rebuilt
// (holes expanded) since the loop was entered, so a cached *Node captured
// at push time could be stale; the identity never is.
func FindByID(root *Node, id uint64) *Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	switch root.Kind {
	case KindSeq:
		return FindByID(root.Tail, id)
	case KindLoop:
		if n := FindByID(root.Body, id); n != nil {
			return n
		}
		return FindByID(root.Tail, id)
	default:
		return nil
	}
}

// ReplaceHole returns a new tree with the Hole identified by targetID
// replaced by replacement, sharing every subtree not on the path from root
// to that hole. The replaced node itself keeps targetID's identity (the
// Hole and its replacement are the same position in the program, so the
// interpreter's cursor — which tracks position by identity — keeps
// working across the replacement without adjustment).
func ReplaceHole(root *Node, targetID uint64, replacement *Node) (*Node, bool) {
	if root.Kind == KindHole {
		if root.ID == targetID {
			return withID(replacement, targetID), true
		}
		return root, false
	}
	switch root.Kind {
	case KindSeq:
		newTail, changed := ReplaceHole(root.Tail, targetID, replacement)
		if !changed {
			return root, false
		}
		return seqWithID(root.ID, root.Op, newTail), true
	case KindLoop:
		newBody, changedBody := ReplaceHole(root.Body, targetID, replacement)
		newTail, changedTail := ReplaceHole(root.Tail, targetID, replacement)
		if !changedBody && !changedTail {
			return root, false
		}
		return loopWithID(root.ID, newBody, newTail), true
	default: // KindEmpty
		return root, false
	}
}

// withID returns a node equivalent to n but carrying id as its identity.
// ReplaceHole calls it with the hole's id, which differs from n.ID (the
// replacement candidate is freshly minted with its own id, then re-stamped
// to the hole's id it is replacing); kept as a separate step so the identity-preservation
// invariant is visible at the call site in ReplaceHole.
func withID(n *Node, id uint64) *Node {
	switch n.Kind {
	case KindEmpty:
		return &Node{ID: id, Kind: KindEmpty}
	case KindHole:
		return &Node{ID: id, Kind: KindHole}
	case KindSeq:
		return seqWithID(id, n.Op, n.Tail)
	case KindLoop:
		return loopWithID(id, n.Body, n.Tail)
	default:
		return n
	}
}

// HasHole reports whether any Hole remains anywhere in the tree rooted at
// n — i.e. whether the program is still partial. The driver uses this to
// decide whether a target-matching node is a real solution (spec.md §4.F:
// "If correct == target_length and the successor contains no reachable
// holes, emit as solution").
func (n *Node) HasHole() bool {
	switch n.Kind {
	case KindHole:
		return true
	case KindSeq:
		return n.Tail.HasHole()
	case KindLoop:
		return n.Body.HasHole() || n.Tail.HasHole()
	default:
		return false
	}
}

// InstructionCount returns the number of concrete opcodes in the program —
// '[' and ']' each count as one, Empty does not count. Used for the
// "Program length (inst)" line in the solution output (spec.md §6).
func (n *Node) InstructionCount() int {
	switch n.Kind {
	case KindSeq:
		return 1 + n.Tail.InstructionCount()
	case KindLoop:
		return 2 + n.Body.InstructionCount() + n.Tail.InstructionCount()
	default:
		return 0
	}
}

// ToBrainfuck renders a fully concrete program (no holes) as Brainfuck
// source text. A Hole is rendered as nothing — callers that need a real
// program must check HasHole first.
func (n *Node) ToBrainfuck() string {
	var buf []byte
	n.appendBrainfuck(&buf)
	return string(buf)
}

func (n *Node) appendBrainfuck(buf *[]byte) {
	switch n.Kind {
	case KindSeq:
		*buf = append(*buf, byte(n.Op))
		n.Tail.appendBrainfuck(buf)
	case KindLoop:
		*buf = append(*buf, byte(InstrLoop))
		n.Body.appendBrainfuck(buf)
		*buf = append(*buf, byte(InstrLoopEnd))
		n.Tail.appendBrainfuck(buf)
	}
}
