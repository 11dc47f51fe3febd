package memdom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

// Listener is a registered event listener.
type Listener struct {
	Event   string
	Capture bool
	Handler dom.Handler
}

// Element is an element node.
type Element struct {
	doc       *Document
	n         *html.Node
	style     *Style
	slots     map[string]dom.Handler
	listeners []Listener
}

var (
	_ Node        = (*Element)(nil)
	_ dom.Element = (*Element)(nil)
)

// NodeType implements dom.Node.
func (e *Element) NodeType() dom.NodeType { return dom.ElementNode }

// AppendChild appends child to the element.
func (e *Element) AppendChild(child dom.Node) error {
	return e.doc.appendTo(e.n, child)
}

// HTML returns the backing html node.
func (e *Element) HTML() *html.Node { return e.n }

// TagName returns the lower-case tag name.
func (e *Element) TagName() string { return e.n.Data }

// SetAttribute sets an attribute. Names are lower-cased. Setting "style"
// replaces the whole inline style.
func (e *Element) SetAttribute(name, value string) error {
	if !isValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCharacter, name)
	}
	name = strings.ToLower(name)
	if name == "style" {
		e.style.parse(value)
	}
	e.setAttr(name, value)
	return nil
}

func (e *Element) setAttr(name, value string) {
	for i := range e.n.Attr {
		if e.n.Attr[i].Namespace == "" && e.n.Attr[i].Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) removeAttr(name string) {
	for i := range e.n.Attr {
		if e.n.Attr[i].Namespace == "" && e.n.Attr[i].Key == name {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes returns the attributes in insertion order.
func (e *Element) Attributes() []html.Attribute {
	out := make([]html.Attribute, len(e.n.Attr))
	copy(out, e.n.Attr)
	return out
}

// Style implements dom.Element.
func (e *Element) Style() dom.Style { return e.style }

// InlineStyle returns the element's inline style declaration.
func (e *Element) InlineStyle() *Style { return e.style }

// HasEmptyHandlerSlot reports whether name is an element handler
// property that has not been assigned yet.
func (e *Element) HasEmptyHandlerSlot(name string) bool {
	return dom.IsElementEventHandler(name) && e.slots[name] == nil
}

// SetHandlerProperty assigns a handler property. Unknown names become
// plain expando properties that never fire.
func (e *Element) SetHandlerProperty(name string, h dom.Handler) error {
	e.slots[name] = h
	return nil
}

// HandlerProperty returns the handler assigned to a handler property.
func (e *Element) HandlerProperty(name string) dom.Handler {
	return e.slots[name]
}

// AddEventListener registers a listener.
func (e *Element) AddEventListener(event string, h dom.Handler, capture bool) error {
	if h == nil {
		return nil
	}
	e.listeners = append(e.listeners, Listener{Event: event, Capture: capture, Handler: h})
	return nil
}

// Listeners returns the registered listeners in registration order.
func (e *Element) Listeners() []Listener {
	out := make([]Listener, len(e.listeners))
	copy(out, e.listeners)
	return out
}

// BoundEvents returns the sorted, de-duplicated names of the events this
// element reacts to, through handler properties or listeners.
func (e *Element) BoundEvents() []string {
	seen := make(map[string]bool)
	for name, h := range e.slots {
		if h != nil && dom.IsElementEventHandler(name) {
			seen[strings.TrimPrefix(name, "on")] = true
		}
	}
	for _, l := range e.listeners {
		seen[l.Event] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ChildNodes returns a snapshot of the element's children.
func (e *Element) ChildNodes() NodeList { return e.doc.children(e.n) }

// TextContent returns the concatenated text of all descendants.
func (e *Element) TextContent() string { return textContent(e.n) }

// Parent returns the parent element, if any.
func (e *Element) Parent() (*Element, bool) {
	if e.n.Parent == nil {
		return nil, false
	}
	p, ok := e.doc.nodes[e.n.Parent].(*Element)
	return p, ok
}
