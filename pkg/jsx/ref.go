package jsx

import "github.com/vango-dev/jsxdom/pkg/dom"

// Ref is a caller-owned cell that receives a constructed element.
type Ref struct {
	Current dom.Element
}

// NewRef returns an empty Ref.
func NewRef() *Ref { return &Ref{} }

// RefFunc receives a constructed element.
type RefFunc func(el dom.Element)

// assignRef writes el into ref. Unsupported ref values are ignored.
func assignRef(ref any, el dom.Element) {
	switch r := ref.(type) {
	case *Ref:
		if r != nil {
			r.Current = el
		}
	case RefFunc:
		if r != nil {
			r(el)
		}
	case func(dom.Element):
		if r != nil {
			r(el)
		}
	}
}
