package pattern

// Maybe returns a pattern matching p or, failing that, the empty string.
//
//	Choice +|p|+2
//	...p
//	Commit +1
func (p Pattern) Maybe() Pattern {
	out := make(Pattern, 0, len(p)+2)
	out = append(out, Instr{Op: OpChoice, Off: len(p) + 2})
	out = append(out, p...)
	out = append(out, Instr{Op: OpCommit, Off: 1})
	return out
}

// Star returns a pattern matching zero or more occurrences of p.
//
// When p reduces to a byte set, the loop collapses to a single Span
// instruction, which consumes greedily and never backtracks. Otherwise:
//
//	Choice +|p|+2
//	...p
//	PartCommit -|p|
//
// PartCommit refreshes the frame pushed by Choice on each iteration instead
// of popping and re-pushing it.
func (p Pattern) Star() Pattern {
	if cs, ok := p.toSet(); ok {
		return Pattern{Instr{Op: OpSpan, Set: cs}}
	}
	out := make(Pattern, 0, len(p)+2)
	out = append(out, Instr{Op: OpChoice, Off: len(p) + 2})
	out = append(out, p...)
	out = append(out, Instr{Op: OpPartCommit, Off: -len(p)})
	return out
}

// Plus returns a pattern matching one or more occurrences of p. It is
// lowered as p followed by p.Star(), so the body is emitted twice.
func (p Pattern) Plus() (Pattern, error) {
	return p.Seq(p.Star())
}

// Not returns a pattern that succeeds iff p fails, consuming no input
// either way.
//
//	Choice +|p|+3
//	...p
//	Commit +1
//	Fail
//
// If p matches, the Commit drops the backtrack frame and execution runs
// into Fail; if p fails, the frame resumes past the whole construct.
func (p Pattern) Not() Pattern {
	out := make(Pattern, 0, len(p)+3)
	out = append(out, Instr{Op: OpChoice, Off: len(p) + 3})
	out = append(out, p...)
	out = append(out, Instr{Op: OpCommit, Off: 1})
	out = append(out, Instr{Op: OpFail})
	return out
}

// And returns a pattern that succeeds iff p matches, consuming no input.
func (p Pattern) And() Pattern {
	return p.Not().Not()
}

// Grab returns p wrapped in a verbatim-substring capture.
func (p Pattern) Grab() Pattern {
	return Capture(p, CapStr, "")
}

// Search returns a pattern that scans forward for the first match of p,
// consuming everything up to and including it.
//
//	Choice +|p|+2
//	...p
//	Commit +3
//	Any
//	Jump -|p|-3
//
// On failure of p the frame resumes at Any, which advances one byte before
// the Jump loops back to retry.
func (p Pattern) Search() Pattern {
	out := make(Pattern, 0, len(p)+4)
	out = append(out, Instr{Op: OpChoice, Off: len(p) + 2})
	out = append(out, p...)
	out = append(out, Instr{Op: OpCommit, Off: 3})
	out = append(out, Instr{Op: OpAny})
	out = append(out, Instr{Op: OpJump, Off: -(len(p) + 3)})
	return out
}
