package ast

import (
	"testing"
)

func TestString(t *testing.T) {
	type testrow struct {
		Node     Node
		Expected string
	}

	data := []testrow{
		testrow{&String{Text: "abc"}, `"abc"`},
		testrow{&String{Text: "a\nb"}, `"a\nb"`},
		testrow{&String{Text: "end", Insensitive: true}, `i"end"`},
		testrow{&Int{Value: 3}, `3`},
		testrow{&Ident{Name: "word"}, `word`},
		testrow{
			&Class{Items: []ClassItem{{'a', 'z'}, {'_', '_'}}},
			`{'a'..'z','_'}`,
		},
		testrow{
			&Class{Items: []ClassItem{{'\n', '\n'}}},
			`{"\n"}`,
		},
		testrow{
			&Prefix{Op: "*", X: &String{Text: "ab"}},
			`*"ab"`,
		},
		testrow{
			&Infix{Op: "|", X: &String{Text: "a"}, Y: &String{Text: "b"}},
			`("a" | "b")`,
		},
		testrow{
			&Block{List: []Node{&Ident{Name: "x"}}},
			`(x)`,
		},
		testrow{
			&Rep{X: &Ident{Name: "p"}, Min: 2, Max: 2},
			`p{2}`,
		},
		testrow{
			&Rep{X: &Ident{Name: "p"}, Min: 1, Max: 4},
			`p{1..4}`,
		},
		testrow{
			&Call{Name: "Jf", Args: []Node{&String{Text: "k"}, &Ident{Name: "v"}}},
			`Jf("k", v)`,
		},
	}

	for i, row := range data {
		actual := row.Node.String()
		if row.Expected != actual {
			t.Errorf("%s/%03d: expected %s, got %s", t.Name(), i, row.Expected, actual)
		}
	}
}
