package render

import (
	"testing"

	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
)

// build constructs a tree with a fresh runtime over a memdom document.
func build(t testing.TB, fn func(rt *jsx.Runtime) (any, error)) memdom.Node {
	t.Helper()
	rt := jsx.New(memdom.NewDocument())
	n, err := fn(rt)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	node, ok := n.(memdom.Node)
	if !ok {
		t.Fatalf("build returned %T", n)
	}
	return node
}

func el(rt *jsx.Runtime, tag string, props ...jsx.Prop) func(children ...any) any {
	return func(children ...any) any {
		n, err := rt.Element(tag, jsx.NewProps(props...), children...)
		if err != nil {
			panic(err)
		}
		return n
	}
}
