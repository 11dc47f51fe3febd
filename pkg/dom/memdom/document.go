package memdom

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

var (
	// ErrInvalidCharacter is returned for tag and attribute names that are
	// not valid XML names.
	ErrInvalidCharacter = errors.New("memdom: invalid character in name")

	// ErrHierarchy is returned when an append would produce an invalid tree.
	ErrHierarchy = errors.New("memdom: hierarchy request error")

	// ErrForeignNode is returned when a node from another dom implementation
	// is appended.
	ErrForeignNode = errors.New("memdom: node does not belong to memdom")
)

// Node is implemented by every memdom node.
type Node interface {
	dom.Node

	// HTML returns the backing html node.
	HTML() *html.Node
}

// Document is an in-memory document.
type Document struct {
	nodes map[*html.Node]Node
}

var _ dom.Document = (*Document)(nil)

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{nodes: make(map[*html.Node]Node)}
}

// CreateElement creates an element. Tag names are lower-cased.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	if !isValidName(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, tag)
	}
	name := strings.ToLower(tag)
	el := &Element{
		doc: d,
		n: &html.Node{
			Type:     html.ElementNode,
			Data:     name,
			DataAtom: atom.Lookup([]byte(name)),
		},
		slots: make(map[string]dom.Handler),
	}
	el.style = &Style{el: el}
	d.nodes[el.n] = el
	return el, nil
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(data string) (dom.Node, error) {
	t := &Text{n: &html.Node{Type: html.TextNode, Data: data}}
	d.nodes[t.n] = t
	return t, nil
}

// CreateDocumentFragment creates an empty fragment.
func (d *Document) CreateDocumentFragment() (dom.Node, error) {
	f := &Fragment{doc: d, n: &html.Node{Type: html.DocumentNode}}
	d.nodes[f.n] = f
	return f, nil
}

// IsGlobalEventHandler reports whether name is a window handler property.
func (d *Document) IsGlobalEventHandler(name string) bool {
	return dom.IsWindowEventHandler(name)
}

// Lookup returns the memdom node backing n, if n was created by d.
func (d *Document) Lookup(n *html.Node) (Node, bool) {
	node, ok := d.nodes[n]
	return node, ok
}

// appendTo implements AppendChild for container nodes.
func (d *Document) appendTo(parent *html.Node, child dom.Node) error {
	c, ok := child.(Node)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, child)
	}
	cn := c.HTML()
	if _, ok := d.nodes[cn]; !ok {
		return fmt.Errorf("%w: node belongs to another document", ErrHierarchy)
	}
	for p := parent; p != nil; p = p.Parent {
		if p == cn {
			return fmt.Errorf("%w: cannot append a node to itself or its descendant", ErrHierarchy)
		}
	}

	if child.NodeType() == dom.FragmentNode {
		for cn.FirstChild != nil {
			gc := cn.FirstChild
			cn.RemoveChild(gc)
			parent.AppendChild(gc)
		}
		return nil
	}

	if cn.Parent != nil {
		cn.Parent.RemoveChild(cn)
	}
	parent.AppendChild(cn)
	return nil
}

// children wraps the children of n.
func (d *Document) children(n *html.Node) []Node {
	var out []Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if node, ok := d.nodes[c]; ok {
			out = append(out, node)
		}
	}
	return out
}

// isValidName approximates the XML Name production used by the DOM for
// createElement and setAttribute.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

// NodeList is a static snapshot of nodes.
type NodeList []Node

var _ dom.NodeList = NodeList(nil)

// Len returns the number of nodes.
func (l NodeList) Len() int { return len(l) }

// Item returns the i-th node, or nil when i is out of range.
func (l NodeList) Item(i int) dom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// Text is a text node.
type Text struct {
	n *html.Node
}

var _ Node = (*Text)(nil)

// NodeType implements dom.Node.
func (t *Text) NodeType() dom.NodeType { return dom.TextNode }

// AppendChild always fails: text nodes have no children.
func (t *Text) AppendChild(dom.Node) error {
	return fmt.Errorf("%w: text nodes cannot have children", ErrHierarchy)
}

// HTML returns the backing html node.
func (t *Text) HTML() *html.Node { return t.n }

// Data returns the text content.
func (t *Text) Data() string { return t.n.Data }

// Fragment is a document fragment.
type Fragment struct {
	doc *Document
	n   *html.Node
}

var _ Node = (*Fragment)(nil)

// NodeType implements dom.Node.
func (f *Fragment) NodeType() dom.NodeType { return dom.FragmentNode }

// AppendChild appends child to the fragment.
func (f *Fragment) AppendChild(child dom.Node) error {
	return f.doc.appendTo(f.n, child)
}

// HTML returns the backing html node.
func (f *Fragment) HTML() *html.Node { return f.n }

// ChildNodes returns a snapshot of the fragment's children.
func (f *Fragment) ChildNodes() NodeList { return f.doc.children(f.n) }

// TextContent returns the concatenated text of all descendants.
func (f *Fragment) TextContent() string { return textContent(f.n) }

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
