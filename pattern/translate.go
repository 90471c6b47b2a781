package pattern

import (
	"github.com/golang/glog"

	"github.com/chronos-tachyon/go-pegc/ast"
	"github.com/chronos-tachyon/go-pegc/charset"
)

// SymbolTable maps rule names to their already-compiled patterns. The
// translator inlines table entries by value; names not in the table compile
// to Call instructions for a later link pass to resolve.
type SymbolTable map[string]Pattern

// Translate compiles the expression rooted at n into a Pattern. The symbol
// table is read-only and may be nil. Translation shares no state between
// invocations, so independent calls may run concurrently on disjoint
// inputs.
func Translate(n ast.Node, rules SymbolTable) (Pattern, error) {
	t := &translator{rules: rules}
	return t.node(n)
}

type translator struct {
	rules SymbolTable
	capID int
}

func unknown(n ast.Node) error {
	return &CompileError{Err: ErrUnknownConstruct, Detail: n.String()}
}

func (t *translator) node(n ast.Node) (Pattern, error) {
	if glog.V(2) {
		glog.Infof("translate %T %s", n, n)
	}
	switch n := n.(type) {
	case *ast.String:
		if n.Insensitive {
			return IStr(n.Text), nil
		}
		return Str(n.Text), nil

	case *ast.Int:
		if n.Value < 0 {
			return nil, unknown(n)
		}
		return Any(n.Value), nil

	case *ast.Ident:
		if p, found := t.rules[n.Name]; found {
			out := make(Pattern, len(p))
			copy(out, p)
			return out, nil
		}
		return CallTo(n.Name), nil

	case *ast.Class:
		return t.class(n)

	case *ast.Prefix:
		return t.prefix(n)

	case *ast.Infix:
		return t.infix(n)

	case *ast.Block:
		return t.block(n)

	case *ast.Rep:
		return t.rep(n)

	case *ast.Call:
		return t.call(n)
	}
	return nil, unknown(n)
}

func (t *translator) class(n *ast.Class) (Pattern, error) {
	var cs charset.Set
	for _, item := range n.Items {
		if item.Lo > item.Hi {
			return nil, &CompileError{Err: ErrMalformedCharClass, Detail: n.String()}
		}
		cs.AddRange(item.Lo, item.Hi)
	}
	if cs.IsEmpty() {
		return Any(1), nil
	}
	return Set(cs), nil
}

func (t *translator) prefix(n *ast.Prefix) (Pattern, error) {
	p, err := t.node(n.X)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "?":
		return p.Maybe(), nil
	case "*":
		return p.Star(), nil
	case "+":
		return p.Plus()
	case "!":
		return p.Not(), nil
	case "&":
		return p.And(), nil
	case ">":
		return t.capture(p, CapStr, "", nil), nil
	case "@":
		return p.Search(), nil
	}
	return nil, unknown(n)
}

func (t *translator) infix(n *ast.Infix) (Pattern, error) {
	if n.Op == "%" {
		// The RHS is not translated: it rides along as the capture's
		// action payload.
		p, err := t.node(n.X)
		if err != nil {
			return nil, err
		}
		return t.capture(p, CapAction, "", n.Y), nil
	}
	p, err := t.node(n.X)
	if err != nil {
		return nil, err
	}
	q, err := t.node(n.Y)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "*":
		return p.Seq(q)
	case "|":
		return p.Or(q)
	case "-":
		return p.Diff(q)
	}
	return nil, unknown(n)
}

func (t *translator) block(n *ast.Block) (Pattern, error) {
	switch len(n.List) {
	case 1:
		return t.node(n.List[0])

	case 2:
		p, err := t.node(n.List[0])
		if err != nil {
			return nil, err
		}
		return t.capture(p, CapAction, "", n.List[1]), nil
	}
	return nil, unknown(n)
}

func (t *translator) rep(n *ast.Rep) (Pattern, error) {
	if n.Min < 0 || n.Min > n.Max {
		return nil, unknown(n)
	}
	p, err := t.node(n.X)
	if err != nil {
		return nil, err
	}
	if n.Min == n.Max {
		return p.Rep(n.Min)
	}
	return p.RepRange(n.Min, n.Max)
}

var capKindByCall = map[string]CapKind{
	"Js": CapJSONString,
	"Ji": CapJSONInt,
	"Jf": CapJSONFloat,
	"Ja": CapJSONArray,
	"Jo": CapJSONObject,
	"Jt": CapJSONFieldDynamic,
}

func (t *translator) call(n *ast.Call) (Pattern, error) {
	malformed := func() error {
		return &CompileError{Err: ErrMalformedCapture, Detail: n.String()}
	}

	kind, found := capKindByCall[n.Name]
	if !found {
		return nil, malformed()
	}

	switch len(n.Args) {
	case 1:
		p, err := t.node(n.Args[0])
		if err != nil {
			return nil, err
		}
		return t.capture(p, kind, "", nil), nil

	case 2:
		// Jf("field", p) pins the inner value to a fixed object field.
		if n.Name != "Jf" {
			return nil, malformed()
		}
		field, ok := n.Args[0].(*ast.String)
		if !ok || field.Insensitive {
			return nil, malformed()
		}
		p, err := t.node(n.Args[1])
		if err != nil {
			return nil, err
		}
		return t.capture(p, CapJSONFieldFixed, field.Text, nil), nil
	}
	return nil, malformed()
}

// capture wraps p in markers of the given kind and stamps the pair with the
// next capture id.
func (t *translator) capture(p Pattern, kind CapKind, name string, action ast.Node) Pattern {
	out := Capture(p, kind, name)
	id := t.capID
	t.capID++
	out[0].ID = id
	out[len(out)-1].ID = id
	if action != nil {
		out[0].Action = action
	}
	return out
}
