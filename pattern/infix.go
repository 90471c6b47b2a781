package pattern

import (
	"github.com/chronos-tachyon/go-pegc/charset"
)

// toSet reports whether p can be losslessly expressed as a single byte set,
// and if so, which one. Only single-instruction patterns qualify: a Set, a
// one-byte Str or IStr, or Any.
func (p Pattern) toSet() (charset.Set, bool) {
	if len(p) != 1 {
		return charset.Set{}, false
	}
	in := p[0]
	switch in.Op {
	case OpSet:
		return in.Set, true

	case OpStr:
		if len(in.Lit) == 1 {
			return charset.Singleton(in.Lit[0]), true
		}

	case OpIStr:
		if len(in.Lit) == 1 {
			b := in.Lit[0]
			cs := charset.Singleton(b)
			switch {
			case b >= 'a' && b <= 'z':
				cs.Add(b - 'a' + 'A')
			case b >= 'A' && b <= 'Z':
				cs.Add(b - 'A' + 'a')
			}
			return cs, true
		}

	case OpAny:
		return charset.All(), true
	}
	return charset.Set{}, false
}

func checkLen(p Pattern) (Pattern, error) {
	if len(p) > MaxPattLen {
		return nil, tooLarge(len(p))
	}
	return p, nil
}

// Seq returns a pattern matching p followed by q. Offsets in both operands
// are intra-fragment, so the sequence is plain concatenation.
func (p Pattern) Seq(q Pattern) (Pattern, error) {
	return checkLen(concat(p, q))
}

// Or returns a pattern matching p or, failing that, q.
//
// Two rewrites fire before the general lowering:
//
// First, if both operands reduce to byte sets, the whole choice folds into
// one Set over the union.
//
// Second, if p already begins with a choice chain — a leading Choice whose
// paired Commit exits at the end of p — the new alternative is appended to
// the chain: each such Commit is extended to jump past q, and the fresh
// Choice/Commit pair brackets only the final alternative of p. Without this
// rewrite, left-associative chains of | would nest a Choice frame per
// alternative.
//
// The general lowering is:
//
//	Choice +|p|+2
//	...p
//	Commit +|q|+1
//	...q
func (p Pattern) Or(q Pattern) (Pattern, error) {
	if cs1, ok := p.toSet(); ok {
		if cs2, ok := q.toSet(); ok {
			return Pattern{Instr{Op: OpSet, Set: cs1.Union(cs2)}}, nil
		}
	}

	head := make(Pattern, len(p))
	copy(head, p)

	ip := 0
	for ip < len(head) && head[ip].Op == OpChoice {
		ic := ip + head[ip].Off - 1
		if ic <= ip || ic >= len(head) {
			break
		}
		if head[ic].Op != OpCommit || ic+head[ic].Off != len(head) {
			break
		}
		head[ic].Off += len(q) + 2
		ip = ic + 1
	}

	out := make(Pattern, 0, len(p)+len(q)+2)
	out = append(out, head[:ip]...)
	out = append(out, Instr{Op: OpChoice, Off: len(p) - ip + 2})
	out = append(out, head[ip:]...)
	out = append(out, Instr{Op: OpCommit, Off: len(q) + 1})
	out = append(out, q...)
	return checkLen(out)
}

// Diff returns a pattern matching p only where q does not match. When both
// operands reduce to byte sets this is the set difference; otherwise it is
// lowered as q.Not() followed by p.
func (p Pattern) Diff(q Pattern) (Pattern, error) {
	if cs1, ok := p.toSet(); ok {
		if cs2, ok := q.toSet(); ok {
			return Pattern{Instr{Op: OpSet, Set: cs1.Diff(cs2)}}, nil
		}
	}
	return checkLen(concat(q.Not(), p))
}
