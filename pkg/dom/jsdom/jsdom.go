//go:build js && wasm

package jsdom

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

// Document wraps a browser document.
type Document struct {
	doc    js.Value
	window js.Value

	mu    sync.Mutex
	funcs []js.Func
}

var _ dom.Document = (*Document)(nil)

// NewDocument wraps the global window.document.
func NewDocument() *Document {
	return Wrap(js.Global().Get("document"))
}

// Wrap wraps an arbitrary document value, e.g. one created with
// document.implementation.createHTMLDocument.
func Wrap(doc js.Value) *Document {
	window := doc.Get("defaultView")
	if window.IsNull() || window.IsUndefined() {
		window = js.Global()
	}
	return &Document{doc: doc, window: window}
}

// Release frees every handler wrapper created for this document.
func (d *Document) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.funcs {
		f.Release()
	}
	d.funcs = nil
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) (el dom.Element, err error) {
	defer catch(&err)
	return &Element{Node: Node{d: d, v: d.doc.Call("createElement", tag)}}, nil
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(data string) (n dom.Node, err error) {
	defer catch(&err)
	return &Node{d: d, v: d.doc.Call("createTextNode", data)}, nil
}

// CreateDocumentFragment implements dom.Document.
func (d *Document) CreateDocumentFragment() (n dom.Node, err error) {
	defer catch(&err)
	return &Node{d: d, v: d.doc.Call("createDocumentFragment")}, nil
}

// IsGlobalEventHandler reports whether name is a property of window.
func (d *Document) IsGlobalEventHandler(name string) bool {
	return js.Global().Get("Reflect").Call("has", d.window, name).Bool()
}

func (d *Document) wrap(h dom.Handler) js.Func {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		h(&Event{d: d, v: ev})
		return nil
	})
	d.mu.Lock()
	d.funcs = append(d.funcs, f)
	d.mu.Unlock()
	return f
}

// Node wraps any browser node.
type Node struct {
	d *Document
	v js.Value
}

// Value returns the wrapped js value.
func (n *Node) Value() js.Value { return n.v }

// NodeType implements dom.Node.
func (n *Node) NodeType() dom.NodeType {
	switch n.v.Get("nodeType").Int() {
	case 1:
		return dom.ElementNode
	case 11:
		return dom.FragmentNode
	default:
		return dom.TextNode
	}
}

// AppendChild implements dom.Node.
func (n *Node) AppendChild(child dom.Node) (err error) {
	v, ok := valueOf(child)
	if !ok {
		return fmt.Errorf("jsdom: cannot append %T", child)
	}
	defer catch(&err)
	n.v.Call("appendChild", v)
	return nil
}

// Element wraps a browser element.
type Element struct {
	Node
}

var _ dom.Element = (*Element)(nil)

// TagName implements dom.Element.
func (e *Element) TagName() string { return e.v.Get("tagName").String() }

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) (err error) {
	defer catch(&err)
	e.v.Call("setAttribute", name, value)
	return nil
}

// Style implements dom.Element.
func (e *Element) Style() dom.Style { return &Style{v: e.v.Get("style")} }

// HasEmptyHandlerSlot implements dom.Element.
func (e *Element) HasEmptyHandlerSlot(name string) bool {
	if !js.Global().Get("Reflect").Call("has", e.v, name).Bool() {
		return false
	}
	return e.v.Get(name).IsNull()
}

// SetHandlerProperty implements dom.Element.
func (e *Element) SetHandlerProperty(name string, h dom.Handler) (err error) {
	defer catch(&err)
	e.v.Set(name, e.d.wrap(h))
	return nil
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, h dom.Handler, capture bool) (err error) {
	defer catch(&err)
	e.v.Call("addEventListener", event, e.d.wrap(h), capture)
	return nil
}

// Style wraps a CSSStyleDeclaration.
type Style struct {
	v js.Value
}

// Set implements dom.Style. Numbers reach the browser as numbers.
func (s *Style) Set(name string, value any) (err error) {
	defer catch(&err)
	switch value.(type) {
	case nil:
		value = ""
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
	default:
		value = fmt.Sprint(value)
	}
	s.v.Set(name, js.ValueOf(value))
	return nil
}

// SetProperty implements dom.Style.
func (s *Style) SetProperty(name, value string) (err error) {
	defer catch(&err)
	s.v.Call("setProperty", name, value)
	return nil
}

// Event wraps a browser event.
type Event struct {
	d *Document
	v js.Value
}

// Value returns the wrapped js event.
func (ev *Event) Value() js.Value { return ev.v }

// Type implements dom.Event.
func (ev *Event) Type() string {
	if ev.v.IsUndefined() {
		return ""
	}
	return ev.v.Get("type").String()
}

// Target implements dom.Event.
func (ev *Event) Target() dom.Node {
	if ev.v.IsUndefined() {
		return nil
	}
	t := ev.v.Get("target")
	if t.IsNull() || t.IsUndefined() {
		return nil
	}
	n := Node{d: ev.d, v: t}
	if n.NodeType() == dom.ElementNode {
		return &Element{Node: n}
	}
	return &n
}

// PreventDefault calls event.preventDefault.
func (ev *Event) PreventDefault() { ev.v.Call("preventDefault") }

// StopPropagation calls event.stopPropagation.
func (ev *Event) StopPropagation() { ev.v.Call("stopPropagation") }

func valueOf(n dom.Node) (js.Value, bool) {
	switch n := n.(type) {
	case *Node:
		return n.v, true
	case *Element:
		return n.v, true
	}
	return js.Value{}, false
}

// catch converts a thrown JavaScript exception into an error.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = fmt.Errorf("jsdom: %w", jsErr)
		return
	}
	panic(r)
}
