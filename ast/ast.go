// Package ast defines the expression tree consumed by the pattern compiler.
//
// The nodes mirror the surface notation of the grammar language: literals,
// character classes, prefix and infix operator applications, grouping
// blocks, bounded repetition, and capture-shaped calls. Every node renders
// back to its surface form via String, which the compiler quotes in error
// messages.
package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Node is a single expression node.
type Node interface {
	String() string
}

// String is a string or character literal. Insensitive marks the i"..."
// form, matched without regard to ASCII case.
type String struct {
	Text        string
	Insensitive bool
}

var _ Node = (*String)(nil)

func (n *String) String() string {
	if n.Insensitive {
		return "i" + strconv.Quote(n.Text)
	}
	return strconv.Quote(n.Text)
}

// Int is a non-negative integer literal, meaning "match exactly this many
// bytes".
type Int struct {
	Value int
}

var _ Node = (*Int)(nil)

func (n *Int) String() string {
	return strconv.Itoa(n.Value)
}

// Ident is a reference to a grammar rule by name.
type Ident struct {
	Name string
}

var _ Node = (*Ident)(nil)

func (n *Ident) String() string {
	return n.Name
}

// ClassItem is one element of a character class: a single byte when
// Lo == Hi, otherwise the inclusive range Lo..Hi.
type ClassItem struct {
	Lo byte
	Hi byte
}

// Class is a character-class literal.
type Class struct {
	Items []ClassItem
}

var _ Node = (*Class)(nil)

func (n *Class) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, item := range n.Items {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeClassByte(&buf, item.Lo)
		if item.Hi != item.Lo {
			buf.WriteString("..")
			writeClassByte(&buf, item.Hi)
		}
	}
	buf.WriteByte('}')
	return buf.String()
}

func writeClassByte(buf *bytes.Buffer, b byte) {
	if b >= 0x20 && b < 0x7f && b != '\'' && b != '\\' {
		buf.WriteByte('\'')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	} else {
		fmt.Fprintf(buf, "%q", string(rune(b)))
	}
}

// Prefix is the application of a prefix operator: ?, *, +, !, &, >, or @.
type Prefix struct {
	Op string
	X  Node
}

var _ Node = (*Prefix)(nil)

func (n *Prefix) String() string {
	return n.Op + n.X.String()
}

// Infix is the application of an infix operator: * (sequence), | (ordered
// choice), - (difference), or % (action capture).
type Infix struct {
	Op string
	X  Node
	Y  Node
}

var _ Node = (*Infix)(nil)

func (n *Infix) String() string {
	return "(" + n.X.String() + " " + n.Op + " " + n.Y.String() + ")"
}

// Block is a parenthesized group. With one child it is plain grouping; with
// two children the first is a pattern and the second is an action to run
// when the pattern matches.
type Block struct {
	List []Node
}

var _ Node = (*Block)(nil)

func (n *Block) String() string {
	parts := make([]string, len(n.List))
	for i, kid := range n.List {
		parts[i] = kid.String()
	}
	return "(" + strings.Join(parts, ": ") + ")"
}

// Rep is bounded repetition: p{n} when Min == Max, otherwise p{Min..Max}.
type Rep struct {
	X   Node
	Min int
	Max int
}

var _ Node = (*Rep)(nil)

func (n *Rep) String() string {
	if n.Min == n.Max {
		return fmt.Sprintf("%s{%d}", n.X, n.Min)
	}
	return fmt.Sprintf("%s{%d..%d}", n.X, n.Min, n.Max)
}

// Call is a call-shaped form such as Js(p) or Jf("field", p).
type Call struct {
	Name string
	Args []Node
}

var _ Node = (*Call)(nil)

func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, arg := range n.Args {
		parts[i] = arg.String()
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}
