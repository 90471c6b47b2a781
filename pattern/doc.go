// Package pattern compiles Parsing Expression Grammar fragments into linear
// instruction sequences for a backtracking PEG machine.
//
// A Pattern is an ordered slice of Instr values. Every combinator returns a
// self-contained fragment: each Choice, Commit, PartCommit, Jump, or Call
// instruction carries a signed offset relative to its own index, and that
// offset always targets an index inside the fragment that emitted it (the
// end of the fragment counts as a valid target). Because offsets never
// escape the emitting fragment, composition is plain concatenation and no
// offset rewriting is ever required afterward.
//
// The control opcodes follow the usual backtracking discipline:
//
// • CHOICE pushes a backtrack frame whose resume point is the target
// instruction.
//
// • COMMIT pops the top frame and jumps to the target.
//
// • PARTCOMMIT updates the top frame's saved subject position in place and
// jumps, so a loop body can reuse one frame across iterations.
//
// • FAIL forces a backtrack to the most recent frame.
//
// CALL and JUMP carry a label in addition to their offset; a call's offset
// is left at zero until a later link pass resolves rule names to code
// positions.
//
// Three rewrites fire inside the combinators rather than in a separate
// optimizer pass: a zero-or-more loop over a single byte-set match collapses
// to one SPAN instruction; an ordered choice of two byte-set matches folds
// into one SET over the union; and appending an alternative to an existing
// choice chain extends the chain's COMMIT exits instead of nesting a fresh
// CHOICE around the whole thing, keeping long alternative lists flat.
package pattern
