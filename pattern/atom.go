package pattern

import (
	"github.com/chronos-tachyon/go-pegc/charset"
)

// MaxPattLen bounds the number of instructions in a single Pattern. The
// bound is enforced after every composing operation; exceeding it yields a
// CompileError wrapping ErrPatternTooLarge.
var MaxPattLen = 4096

// Pattern is a compiled instruction sequence. Patterns are plain values:
// combinators copy their operands into fresh slices and never share or
// mutate backing arrays.
type Pattern []Instr

// Str returns a pattern matching the literal bytes of s.
func Str(s string) Pattern {
	return Pattern{Instr{Op: OpStr, Lit: s}}
}

// IStr returns a pattern matching the literal bytes of s without regard to
// ASCII case.
func IStr(s string) Pattern {
	return Pattern{Instr{Op: OpIStr, Lit: s}}
}

// Any returns a pattern matching exactly n bytes of input. For n <= 0 it
// returns a pattern that matches the empty string.
func Any(n int) Pattern {
	if n <= 0 {
		return Pattern{Instr{Op: OpNop}}
	}
	out := make(Pattern, n)
	for i := range out {
		out[i] = Instr{Op: OpAny}
	}
	return out
}

// Set returns a pattern matching any single byte in cs.
func Set(cs charset.Set) Pattern {
	return Pattern{Instr{Op: OpSet, Set: cs}}
}

// CallTo returns a pattern calling the rule named label. The code offset is
// a placeholder until a later link pass resolves the label.
func CallTo(label string) Pattern {
	return Pattern{Instr{Op: OpCall, Label: label}}
}

// Backref returns a pattern matching the text most recently captured under
// name.
func Backref(name string) Pattern {
	return Pattern{Instr{Op: OpBackref, Name: name}}
}

// Ret returns a pattern that returns from the current rule call.
func Ret() Pattern {
	return Pattern{Instr{Op: OpReturn}}
}

// ErrMsg returns a pattern that fails unconditionally, reporting msg.
func ErrMsg(msg string) Pattern {
	return Pattern{Instr{Op: OpErr, Lit: msg}}
}

// Capture wraps p in a pair of capture markers of the given kind. The name
// is recorded on the open marker; pass "" for unnamed captures. The markers
// carry no jumps, so the offsets inside p need no adjustment.
func Capture(p Pattern, kind CapKind, name string) Pattern {
	out := make(Pattern, 0, len(p)+2)
	out = append(out, Instr{Op: OpCapOpen, Kind: kind, Name: name})
	out = append(out, p...)
	out = append(out, Instr{Op: OpCapClose, Kind: kind})
	return out
}
