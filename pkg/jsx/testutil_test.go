package jsx

import (
	"testing"

	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
)

type recordingObserver struct {
	nodes    []dom.NodeType
	bindings []BindingKind
}

func (r *recordingObserver) NodeCreated(kind dom.NodeType)  { r.nodes = append(r.nodes, kind) }
func (r *recordingObserver) PropertyBound(kind BindingKind) { r.bindings = append(r.bindings, kind) }

func newRuntime(t *testing.T, opts ...Option) *Runtime {
	t.Helper()
	return New(memdom.NewDocument(), opts...)
}

func build(t *testing.T, rt *Runtime, tag string, props ...Prop) *memdom.Element {
	t.Helper()
	node, err := rt.CreateElement(TagName(tag), NewProps(props...))
	if err != nil {
		t.Fatalf("CreateElement(%q) error: %v", tag, err)
	}
	el, ok := node.(*memdom.Element)
	if !ok {
		t.Fatalf("CreateElement(%q) returned %T, want *memdom.Element", tag, node)
	}
	return el
}

func attr(t *testing.T, el *memdom.Element, name string) string {
	t.Helper()
	v, ok := el.Attribute(name)
	if !ok {
		t.Fatalf("attribute %q missing on <%s>", name, el.TagName())
	}
	return v
}
