package pattern

import (
	"bytes"
	"errors"
	"fmt"
)

// assert panics if cond is false.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}

// concat returns a fresh Pattern holding the given fragments in order.
func concat(ps ...Pattern) Pattern {
	n := 0
	for _, p := range ps {
		n += len(p)
	}
	out := make(Pattern, 0, n)
	for _, p := range ps {
		out = append(out, p...)
	}
	return out
}

// wellFormed verifies that every code offset in p lands inside p (the index
// one past the last instruction counts as inside), and that Choice frames
// balance against Commit/PartCommit exits without underflow.
func wellFormed(p Pattern) error {
	depth := 0
	for i, in := range p {
		if in.Op.Meta().Offset {
			if in.Op == OpCall {
				// Unlinked; offset is a placeholder.
				continue
			}
			target := i + in.Off
			if target < 0 || target > len(p) {
				return fmt.Errorf("instruction %d %s: target %d outside [0, %d]", i, in.String(), target, len(p))
			}
		}
		switch in.Op {
		case OpChoice:
			depth++
		case OpCommit, OpPartCommit:
			depth--
			if depth < 0 {
				return fmt.Errorf("instruction %d %s: commit without matching choice", i, in.String())
			}
		}
	}
	return nil
}
