package bfsearch

import "fmt"

// Instr is one of the six supported Brainfuck opcodes, plus the
// unsupported-but-representable read opcode. Only Instr values that are not
// InstrLoop are ever stored directly on a Seq node; InstrLoop is
// represented structurally by the Loop node variant instead, and
// InstrLoopEnd is never stored at all — it is implicit at the end of a
// Loop's body.
type Instr byte

const (
	InstrPointerLeft  = Instr('<')
	InstrPointerRight = Instr('>')
	InstrInc          = Instr('+')
	InstrDec          = Instr('-')
	InstrOutput       = Instr('.')
	InstrLoop         = Instr('[')
	InstrLoopEnd      = Instr(']')
	InstrRead         = Instr(',')
)

// ExpandableInstrs is the fixed, order-significant set of concrete
// non-loop opcodes the Expander offers for a Hole. InstrRead is
// deliberately absent: any branch selecting it is pruned immediately, so
// offering it as a candidate would only waste frontier slots.
var ExpandableInstrs = [5]Instr{
	InstrPointerRight,
	InstrPointerLeft,
	InstrInc,
	InstrDec,
	InstrOutput,
}

func (i Instr) String() string {
	return string([]byte{byte(i)})
}

func (i Instr) valid() bool {
	switch i {
	case InstrPointerLeft, InstrPointerRight, InstrInc, InstrDec, InstrOutput, InstrLoop, InstrLoopEnd, InstrRead:
		return true
	}
	return false
}

func mustValid(i Instr) {
	if !i.valid() {
		panic(fmt.Sprintf("Unknown Instr [%s] encountered!", i))
	}
}
