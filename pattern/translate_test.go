package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/chronos-tachyon/go-pegc/ast"
	"github.com/chronos-tachyon/go-pegc/charset"
)

func str(s string) ast.Node { return &ast.String{Text: s} }

func ident(s string) ast.Node { return &ast.Ident{Name: s} }

func translateDump(t *testing.T, n ast.Node, rules SymbolTable) string {
	t.Helper()
	p, err := Translate(n, rules)
	require.NoError(t, err)
	require.NoError(t, wellFormed(p))
	return p.Dump(nil)
}

func TestTranslate_Literals(t *testing.T) {
	require.Equal(t, golden(`
	000: Str        "abc"
	`), translateDump(t, str("abc"), nil))

	require.Equal(t, golden(`
	000: IStr       "select"
	`), translateDump(t, &ast.String{Text: "select", Insensitive: true}, nil))

	require.Equal(t, golden(`
	000: Any
	001: Any
	002: Any
	`), translateDump(t, &ast.Int{Value: 3}, nil))

	require.Equal(t, golden(`
	000: Nop
	`), translateDump(t, &ast.Int{Value: 0}, nil))

	_, err := Translate(&ast.Int{Value: -1}, nil)
	require.ErrorIs(t, err, ErrUnknownConstruct)
}

func TestTranslate_Ident(t *testing.T) {
	digits := Set(charset.Range('0', '9'))
	rules := SymbolTable{"digit": digits}

	p, err := Translate(ident("digit"), rules)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(digits, p, setCmp))

	// The inlined copy must not alias the table entry.
	p[0].Op = OpFail
	require.Equal(t, OpSet, rules["digit"][0].Op)

	require.Equal(t, golden(`
	000: Call       0 word
	`), translateDump(t, ident("word"), rules))
}

func TestTranslate_Class(t *testing.T) {
	require.Equal(t, golden(`
	000: Set        {'0'..'9','_','a'..'f'}
	`), translateDump(t, &ast.Class{Items: []ast.ClassItem{
		{Lo: 'a', Hi: 'f'},
		{Lo: '0', Hi: '9'},
		{Lo: '_', Hi: '_'},
	}}, nil))

	// An empty class degenerates to matching any single byte.
	require.Equal(t, golden(`
	000: Any
	`), translateDump(t, &ast.Class{}, nil))

	_, err := Translate(&ast.Class{Items: []ast.ClassItem{{Lo: 'z', Hi: 'a'}}}, nil)
	require.ErrorIs(t, err, ErrMalformedCharClass)
}

func TestTranslate_Prefix(t *testing.T) {
	type testrow struct {
		Op       string
		Expected string
	}

	data := []testrow{
		testrow{"?", `
		000: Choice     3
		001: Str        "ab"
		002: Commit     3
		`},
		testrow{"*", `
		000: Choice     3
		001: Str        "ab"
		002: PartCommit 1
		`},
		testrow{"+", `
		000: Str        "ab"
		001: Choice     4
		002: Str        "ab"
		003: PartCommit 2
		`},
		testrow{"!", `
		000: Choice     4
		001: Str        "ab"
		002: Commit     3
		003: Fail
		`},
		testrow{"&", `
		000: Choice     7
		001: Choice     5
		002: Str        "ab"
		003: Commit     4
		004: Fail
		005: Commit     6
		006: Fail
		`},
		testrow{">", `
		000: CapOpen    Str
		001: Str        "ab"
		002: CapClose   Str
		`},
		testrow{"@", `
		000: Choice     3
		001: Str        "ab"
		002: Commit     5
		003: Any
		004: Jump       0
		`},
	}

	for _, row := range data {
		t.Run(row.Op, func(t *testing.T) {
			n := &ast.Prefix{Op: row.Op, X: str("ab")}
			require.Equal(t, golden(row.Expected), translateDump(t, n, nil))
		})
	}

	_, err := Translate(&ast.Prefix{Op: "~", X: str("ab")}, nil)
	require.ErrorIs(t, err, ErrUnknownConstruct)
}

func TestTranslate_Infix(t *testing.T) {
	require.Equal(t, golden(`
	000: Str        "ab"
	001: Str        "cd"
	`), translateDump(t, &ast.Infix{Op: "*", X: str("ab"), Y: str("cd")}, nil))

	require.Equal(t, golden(`
	000: Set        {'a'..'b'}
	`), translateDump(t, &ast.Infix{Op: "|", X: str("a"), Y: str("b")}, nil))

	require.Equal(t, golden(`
	000: Set        {'a'..'k','m'..'z'}
	`), translateDump(t, &ast.Infix{
		Op: "-",
		X:  &ast.Class{Items: []ast.ClassItem{{Lo: 'a', Hi: 'z'}}},
		Y:  str("l"),
	}, nil))

	_, err := Translate(&ast.Infix{Op: "^", X: str("a"), Y: str("b")}, nil)
	require.ErrorIs(t, err, ErrUnknownConstruct)
}

func TestTranslate_ActionCapture(t *testing.T) {
	action := ident("pushNumber")

	// Infix % form.
	n := &ast.Infix{Op: "%", X: str("1"), Y: action}
	require.Equal(t, golden(`
	000: CapOpen    Action: pushNumber
	001: Str        "1"
	002: CapClose   Action
	`), translateDump(t, n, nil))

	p, err := Translate(n, nil)
	require.NoError(t, err)
	require.Same(t, action, p[0].Action)

	// Two-child block form.
	b := &ast.Block{List: []ast.Node{str("1"), action}}
	require.Equal(t, golden(`
	000: CapOpen    Action: pushNumber
	001: Str        "1"
	002: CapClose   Action
	`), translateDump(t, b, nil))
}

func TestTranslate_Block(t *testing.T) {
	require.Equal(t, golden(`
	000: Str        "ab"
	`), translateDump(t, &ast.Block{List: []ast.Node{str("ab")}}, nil))

	_, err := Translate(&ast.Block{List: []ast.Node{str("a"), str("b"), str("c")}}, nil)
	require.ErrorIs(t, err, ErrUnknownConstruct)

	_, err = Translate(&ast.Block{}, nil)
	require.ErrorIs(t, err, ErrUnknownConstruct)
}

func TestTranslate_Rep(t *testing.T) {
	require.Equal(t, golden(`
	000: Str        "ab"
	001: Str        "ab"
	`), translateDump(t, &ast.Rep{X: str("ab"), Min: 2, Max: 2}, nil))

	require.Equal(t, golden(`
	000: Nop
	001: Choice     4
	002: Str        "ab"
	003: Commit     4
	004: Choice     7
	005: Str        "ab"
	006: Commit     7
	`), translateDump(t, &ast.Rep{X: str("ab"), Min: 0, Max: 2}, nil))

	_, err := Translate(&ast.Rep{X: str("ab"), Min: 3, Max: 1}, nil)
	require.ErrorIs(t, err, ErrUnknownConstruct)
}

func TestTranslate_JSONCaptures(t *testing.T) {
	type testrow struct {
		Name     string
		Expected CapKind
	}

	data := []testrow{
		testrow{"Js", CapJSONString},
		testrow{"Ji", CapJSONInt},
		testrow{"Jf", CapJSONFloat},
		testrow{"Ja", CapJSONArray},
		testrow{"Jo", CapJSONObject},
		testrow{"Jt", CapJSONFieldDynamic},
	}

	for _, row := range data {
		t.Run(row.Name, func(t *testing.T) {
			n := &ast.Call{Name: row.Name, Args: []ast.Node{str("x")}}
			p, err := Translate(n, nil)
			require.NoError(t, err)
			require.Len(t, p, 3)
			require.Equal(t, OpCapOpen, p[0].Op)
			require.Equal(t, row.Expected, p[0].Kind)
			require.Equal(t, OpCapClose, p[2].Op)
			require.Equal(t, row.Expected, p[2].Kind)
		})
	}
}

func TestTranslate_FixedField(t *testing.T) {
	n := &ast.Call{Name: "Jf", Args: []ast.Node{str("count"), &ast.Int{Value: 1}}}
	require.Equal(t, golden(`
	000: CapOpen    JFieldFixed "count"
	001: Any
	002: CapClose   JFieldFixed
	`), translateDump(t, n, nil))
}

func TestTranslate_MalformedCapture(t *testing.T) {
	bad := []ast.Node{
		&ast.Call{Name: "Jx", Args: []ast.Node{str("x")}},
		&ast.Call{Name: "Js"},
		&ast.Call{Name: "Js", Args: []ast.Node{str("a"), str("b")}},
		&ast.Call{Name: "Jf", Args: []ast.Node{&ast.Int{Value: 1}, str("x")}},
		&ast.Call{Name: "Jf", Args: []ast.Node{&ast.String{Text: "k", Insensitive: true}, str("x")}},
		&ast.Call{Name: "Ja", Args: []ast.Node{str("a"), str("b"), str("c")}},
	}
	for i, n := range bad {
		_, err := Translate(n, nil)
		require.ErrorIs(t, err, ErrMalformedCapture, "case %d: %s", i, n)
	}
}

func TestTranslate_CaptureIDs(t *testing.T) {
	// Jo( Jf("a", >1) * Jf("b", >1) )
	inner := func(field string) ast.Node {
		return &ast.Call{Name: "Jf", Args: []ast.Node{
			str(field),
			&ast.Prefix{Op: ">", X: &ast.Int{Value: 1}},
		}}
	}
	n := &ast.Call{Name: "Jo", Args: []ast.Node{
		&ast.Infix{Op: "*", X: inner("a"), Y: inner("b")},
	}}

	p, err := Translate(n, nil)
	require.NoError(t, err)

	open := make(map[int]int)
	closeCount := make(map[int]int)
	for _, in := range p {
		switch in.Op {
		case OpCapOpen:
			open[in.ID]++
		case OpCapClose:
			closeCount[in.ID]++
		}
	}
	require.Len(t, open, 5)
	require.Equal(t, open, closeCount)
	for id, n := range open {
		require.Equal(t, 1, n, "id %d reused", id)
	}
}

func TestTranslate_GrammarScenario(t *testing.T) {
	// number <- >+{'0'..'9'} % pushNumber
	// expr   <- number *( '+' number )
	digits := &ast.Class{Items: []ast.ClassItem{{Lo: '0', Hi: '9'}}}
	number := &ast.Infix{
		Op: "%",
		X:  &ast.Prefix{Op: ">", X: &ast.Prefix{Op: "+", X: digits}},
		Y:  ident("pushNumber"),
	}

	rules := SymbolTable{}
	p, err := Translate(number, rules)
	require.NoError(t, err)
	rules["number"] = p

	expr := &ast.Infix{
		Op: "*",
		X:  ident("number"),
		Y: &ast.Prefix{Op: "*", X: &ast.Block{List: []ast.Node{
			&ast.Infix{Op: "*", X: str("+"), Y: ident("number")},
		}}},
	}

	require.Equal(t, golden(`
	000: CapOpen    Action: pushNumber
	001: CapOpen    Str
	002: Set        {'0'..'9'}
	003: Span       {'0'..'9'}
	004: CapClose   Str
	005: CapClose   Action
	006: Choice     15
	007: Str        "+"
	008: CapOpen    Action: pushNumber
	009: CapOpen    Str
	010: Set        {'0'..'9'}
	011: Span       {'0'..'9'}
	012: CapClose   Str
	013: CapClose   Action
	014: PartCommit 7
	`), translateDump(t, expr, rules))
}
