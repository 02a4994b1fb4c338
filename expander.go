package bfsearch

// Expand returns the fixed, ordered set of concrete replacements for the
// Hole identified by holeID within state, per spec.md §4.D: Empty, then
// Seq(op, Hole) for each op in ExpandableInstrs, then Loop(Hole, Hole).
// Each candidate is a full successor InterpreterState with its cursor
// repositioned at the newly-created node, found with FindByID under the
// Hole's identity — the replacement node keeps that identity (ast.go's
// ReplaceHole/withID).
func Expand(state *InterpreterState, holeID uint64) []*InterpreterState {
	candidates := make([]*Node, 0, 2+len(ExpandableInstrs))
	candidates = append(candidates, Empty)
	for _, op := range ExpandableInstrs {
		candidates = append(candidates, NewSeq(op, NewHole()))
	}
	candidates = append(candidates, NewLoop(NewHole(), NewHole()))

	children := make([]*InterpreterState, 0, len(candidates))
	for _, replacement := range candidates {
		newRoot, changed := ReplaceHole(state.Root, holeID, replacement)
		if !changed {
			continue
		}
		child := state.Clone()
		child.Root = newRoot
		child.PC = FindByID(newRoot, holeID)
		children = append(children, child)
	}
	return children
}
