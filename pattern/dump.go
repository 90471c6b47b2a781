package pattern

import (
	"bytes"
	"fmt"
	"strings"
)

// Dump renders the pattern as one line per instruction: a zero-padded
// index, the opcode mnemonic, and the operands. Code offsets are printed as
// absolute target indices rather than raw relative offsets, to ease
// reading. When symtab maps an instruction index to a rule name, a header
// line precedes that instruction; pass nil when no rule names are known.
func (p Pattern) Dump(symtab map[int]string) string {
	var buf bytes.Buffer
	for i := range p {
		in := &p[i]
		if name, found := symtab[i]; found {
			buf.WriteString(name)
			buf.WriteByte(':')
			buf.WriteByte('\n')
		}
		name := in.Op.String()
		fmt.Fprintf(&buf, "%03d: %s", i, name)
		if operands := operandString(in, i); operands != "" {
			buf.WriteString(strings.Repeat(" ", 11-len(name)))
			buf.WriteString(operands)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

func operandString(in *Instr, i int) string {
	switch in.Op {
	case OpStr, OpIStr, OpErr:
		return fmt.Sprintf("%q", in.Lit)

	case OpSet, OpSpan:
		return in.Set.String()

	case OpChoice, OpCommit, OpPartCommit:
		return fmt.Sprintf("%d", i+in.Off)

	case OpCall, OpJump:
		s := fmt.Sprintf("%d", i+in.Off)
		if in.Label != "" {
			s += " " + in.Label
		}
		return s

	case OpBackref:
		return fmt.Sprintf("%q", in.Name)

	case OpCapOpen:
		s := in.Kind.String()
		if in.Name != "" {
			s += fmt.Sprintf(" %q", in.Name)
		}
		if in.Action != nil {
			s += ": " + in.Action.String()
		}
		return s

	case OpCapClose:
		return in.Kind.String()
	}
	return ""
}
