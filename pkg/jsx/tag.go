package jsx

import "github.com/vango-dev/jsxdom/pkg/dom"

// Tag selects what CreateElement produces: a TagName, Fragment or a
// Component.
type Tag interface {
	isTag()
}

// TagName is a platform element name such as "div". It is passed to the
// document unvalidated.
type TagName string

func (TagName) isTag() {}

// Component is a function component. It receives the props unchanged and
// is responsible for producing its own node, usually by calling back
// into the same Runtime.
type Component func(props Props) (dom.Node, error)

func (Component) isTag() {}

type fragmentTag struct {
	name string
}

func (*fragmentTag) isTag() {}

func (f *fragmentTag) String() string { return f.name }

// Fragment requests a document fragment instead of an element. It is
// compared by identity.
var Fragment Tag = &fragmentTag{name: "DocumentFragment"}
