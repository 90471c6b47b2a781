package pattern

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/chronos-tachyon/go-pegc/ast"
	"github.com/chronos-tachyon/go-pegc/charset"
)

// Opcode identifies the operation performed by an Instr.
type Opcode byte

const (
	OpNop Opcode = iota
	OpStr
	OpIStr
	OpSet
	OpSpan
	OpAny
	OpChoice
	OpCommit
	OpPartCommit
	OpCall
	OpJump
	OpReturn
	OpFail
	OpCapOpen
	OpCapClose
	OpBackref
	OpErr
)

// OpMeta is the metadata for a single opcode.
type OpMeta struct {
	// Code is the opcode which this metadata describes.
	Code Opcode

	// Name is the opcode's mnemonic.
	Name string

	// Offset is true iff instructions with this opcode carry a code
	// offset relative to their own index.
	Offset bool
}

var opMeta = []OpMeta{
	OpMeta{Code: OpNop, Name: "Nop"},
	OpMeta{Code: OpStr, Name: "Str"},
	OpMeta{Code: OpIStr, Name: "IStr"},
	OpMeta{Code: OpSet, Name: "Set"},
	OpMeta{Code: OpSpan, Name: "Span"},
	OpMeta{Code: OpAny, Name: "Any"},
	OpMeta{Code: OpChoice, Name: "Choice", Offset: true},
	OpMeta{Code: OpCommit, Name: "Commit", Offset: true},
	OpMeta{Code: OpPartCommit, Name: "PartCommit", Offset: true},
	OpMeta{Code: OpCall, Name: "Call", Offset: true},
	OpMeta{Code: OpJump, Name: "Jump", Offset: true},
	OpMeta{Code: OpReturn, Name: "Return"},
	OpMeta{Code: OpFail, Name: "Fail"},
	OpMeta{Code: OpCapOpen, Name: "CapOpen"},
	OpMeta{Code: OpCapClose, Name: "CapClose"},
	OpMeta{Code: OpBackref, Name: "Backref"},
	OpMeta{Code: OpErr, Name: "Err"},
}

type byCode []OpMeta

var _ sort.Interface = (byCode)(nil)

func (x byCode) Len() int           { return len(x) }
func (x byCode) Less(i, j int) bool { return x[i].Code < x[j].Code }
func (x byCode) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

func init() {
	assert(sort.IsSorted(byCode(opMeta)), "IsSorted(byCode(opMeta))")
}

// Meta returns the metadata for this opcode.
func (c Opcode) Meta() *OpMeta {
	i := int(c)
	assert(i < len(opMeta), "opcode %d out of range", i)
	return &opMeta[i]
}

func (c Opcode) String() string {
	return c.Meta().Name
}

// Instr is a single instruction within a Pattern.
//
// The opcode determines which of the remaining fields are meaningful:
//
//	Str, IStr, Err             Lit
//	Set, Span                  Set
//	Choice, Commit, PartCommit Off
//	Call, Jump                 Off, Label
//	Backref                    Name
//	CapOpen                    Kind, Name, Action, ID
//	CapClose                   Kind, ID
//	Nop, Any, Return, Fail     (none)
type Instr struct {
	// Op is this instruction's opcode.
	Op Opcode

	// Lit holds literal bytes to match, or an error message for OpErr.
	Lit string

	// Set is the byte set matched by OpSet and OpSpan.
	Set charset.Set

	// Off is a signed code offset, relative to this instruction's index
	// within its fragment. For OpCall it is zero until linked.
	Off int

	// Label names the target rule of OpCall and OpJump.
	Label string

	// Kind discriminates capture markers.
	Kind CapKind

	// Name is a capture or back-reference name.
	Name string

	// Action is an opaque code payload attached to an action capture.
	// The compiler passes it through without interpreting it.
	Action ast.Node

	// ID pairs an OpCapOpen with its OpCapClose.
	ID int
}

// String provides a programmer-friendly debugging string for the Instr,
// rendering the offset (if any) in relative form.
func (in *Instr) String() string {
	var buf bytes.Buffer
	buf.WriteString(in.Op.String())
	buf.WriteByte('<')
	first := true
	f := func(s string) {
		if !first {
			buf.WriteByte(',')
		}
		buf.WriteString(s)
		first = false
	}
	switch in.Op {
	case OpStr, OpIStr, OpErr:
		f(fmt.Sprintf("%q", in.Lit))
	case OpSet, OpSpan:
		f(in.Set.String())
	case OpChoice, OpCommit, OpPartCommit:
		f(fmt.Sprintf("%+d", in.Off))
	case OpCall, OpJump:
		f(fmt.Sprintf("%+d", in.Off))
		if in.Label != "" {
			f(in.Label)
		}
	case OpBackref:
		f(fmt.Sprintf("%q", in.Name))
	case OpCapOpen, OpCapClose:
		f(in.Kind.String())
	}
	buf.WriteByte('>')
	return buf.String()
}
