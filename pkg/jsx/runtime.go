package jsx

import (
	"errors"
	"log/slog"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

var errNilTag = errors.New("jsx: nil tag")

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for debug output.
// If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// WithObserver sets the construction observer.
func WithObserver(o Observer) Option {
	return func(rt *Runtime) {
		rt.observer = o
	}
}

// Runtime constructs nodes into one document.
type Runtime struct {
	doc      dom.Document
	logger   *slog.Logger
	observer Observer
	values   definedValues
}

// New creates a Runtime that builds into doc.
func New(doc dom.Document, opts ...Option) *Runtime {
	rt := &Runtime{
		doc:    doc,
		values: make(definedValues),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.logger == nil {
		rt.logger = slog.Default()
	}
	if rt.observer == nil {
		rt.observer = nopObserver{}
	}
	return rt
}

// Document returns the document the runtime builds into.
func (rt *Runtime) Document() dom.Document { return rt.doc }

// CreateElement constructs the node described by tag and props.
//
// A Component tag is called with props and its result returned as is.
// Otherwise a fragment or element is allocated and the children prop is
// appended. Elements then get their style, class, remaining properties
// and ref, in that order. Errors from the document or a component are
// returned unchanged.
func (rt *Runtime) CreateElement(tag Tag, props Props) (dom.Node, error) {
	var name string
	switch t := tag.(type) {
	case nil:
		return nil, errNilTag
	case Component:
		if t == nil {
			return nil, errNilTag
		}
		return t(props)
	case TagName:
		name = string(t)
	}

	if tag == Fragment {
		frag, err := rt.doc.CreateDocumentFragment()
		if err != nil {
			return nil, err
		}
		rt.observer.NodeCreated(dom.FragmentNode)
		if err := rt.appendChildren(frag, props.Value(KeyChildren)); err != nil {
			return nil, err
		}
		return frag, nil
	}

	el, err := rt.doc.CreateElement(name)
	if err != nil {
		return nil, err
	}
	rt.observer.NodeCreated(dom.ElementNode)

	if err := rt.appendChildren(el, props.Value(KeyChildren)); err != nil {
		return nil, err
	}
	if style := StyleOf(props.Value(KeyStyle)); style != nil {
		if err := style.applyStyle(el); err != nil {
			return nil, err
		}
	}
	if class := ClassNames(props.Value(KeyClass)); class != "" {
		if err := el.SetAttribute("class", class); err != nil {
			return nil, err
		}
	}
	if err := rt.bindProps(el, props); err != nil {
		return nil, err
	}
	if ref, ok := props.Get(KeyRef); ok {
		assignRef(ref, el)
	}
	return el, nil
}

// H is CreateElement with trailing children. When children are given
// they replace the children prop.
func (rt *Runtime) H(tag Tag, props Props, children ...any) (dom.Node, error) {
	if len(children) > 0 {
		props = props.With(KeyChildren, children)
	}
	return rt.CreateElement(tag, props)
}

// Element constructs an element by tag name.
func (rt *Runtime) Element(tag string, props Props, children ...any) (dom.Node, error) {
	return rt.H(TagName(tag), props, children...)
}

// FragmentOf constructs a fragment holding children.
func (rt *Runtime) FragmentOf(children ...any) (dom.Node, error) {
	return rt.CreateElement(Fragment, NewProps(Children(children...)))
}

// Value returns a structured value bound to node under key.
func (rt *Runtime) Value(node dom.Node, key string) (any, bool) {
	return rt.values.lookup(node, key)
}

// definedValues holds structured property values by node identity.
// Entries are fixed once defined.
type definedValues map[dom.Node]map[string]any

func (d definedValues) define(node dom.Node, key string, value any) bool {
	m := d[node]
	if m == nil {
		m = make(map[string]any)
		d[node] = m
	}
	if _, exists := m[key]; exists {
		return false
	}
	m[key] = value
	return true
}

func (d definedValues) lookup(node dom.Node, key string) (any, bool) {
	v, ok := d[node][key]
	return v, ok
}
