package pattern

// Rep returns a pattern matching exactly n occurrences of p, lowered as n
// copies of p. For n <= 0 it returns a pattern matching the empty string.
func (p Pattern) Rep(n int) (Pattern, error) {
	if n <= 0 {
		return Pattern{Instr{Op: OpNop}}, nil
	}
	out := make(Pattern, 0, n*len(p))
	for i := 0; i < n; i++ {
		out = append(out, p...)
	}
	return checkLen(out)
}

// RepRange returns a pattern matching between a and b occurrences of p,
// lowered as a copies of p followed by b-a copies of p.Maybe().
// Requires 0 <= a <= b.
func (p Pattern) RepRange(a, b int) (Pattern, error) {
	assert(a >= 0 && a <= b, "repetition range {%d..%d} out of order", a, b)
	out, err := p.Rep(a)
	if err != nil {
		return nil, err
	}
	opt := p.Maybe()
	for i := a; i < b; i++ {
		out = append(out, opt...)
	}
	return checkLen(out)
}
