package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output.
	Pretty bool

	// Indent is one indentation level in pretty mode. Defaults to two
	// spaces.
	Indent string

	// EventMarkers adds data-on-<event> attributes to elements with
	// bound handlers.
	EventMarkers bool
}

// Renderer serializes memdom nodes. It holds no per-render state and is
// safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node memdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node memdom.Node) error {
	sw := &stickyWriter{w: w}
	if err := r.renderNode(sw, node, 0, true); err != nil {
		return err
	}
	return sw.err
}

// stickyWriter remembers the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *stickyWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// renderNode writes node. line reports whether the node sits on its own
// line in pretty mode; children of inline content are written inline.
func (r *Renderer) renderNode(w *stickyWriter, node memdom.Node, depth int, line bool) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *memdom.Element:
		r.renderElement(w, n, depth, line)
	case *memdom.Text:
		if r.config.Pretty && line {
			r.writeIndent(w, depth)
			w.WriteString(escapeHTML(n.Data()) + "\n")
			break
		}
		w.WriteString(escapeHTML(n.Data()))
	case *memdom.Fragment:
		for _, c := range n.ChildNodes() {
			if err := r.renderNode(w, c, depth, line); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("render: unsupported node %T", node)
	}
	return w.err
}

func (r *Renderer) renderElement(w *stickyWriter, el *memdom.Element, depth int, line bool) {
	tag := el.TagName()
	pretty := r.config.Pretty && line

	if pretty {
		r.writeIndent(w, depth)
	}
	w.WriteString("<" + tag)
	r.renderAttributes(w, el)
	w.WriteString(">")

	if isVoidElement(tag) {
		if pretty {
			w.WriteString("\n")
		}
		return
	}

	if rawTextElements[tag] {
		w.WriteString(el.TextContent())
	} else {
		children := el.ChildNodes()
		block := pretty && !isInlineElement(tag) && hasElementChild(children)
		if block {
			w.WriteString("\n")
		}
		for _, c := range children {
			if block {
				_ = r.renderNode(w, c, depth+1, true)
			} else {
				_ = r.renderNode(w, c, 0, false)
			}
		}
		if block {
			r.writeIndent(w, depth)
		}
	}

	w.WriteString("</" + tag + ">")
	if pretty {
		w.WriteString("\n")
	}
}

func hasElementChild(children memdom.NodeList) bool {
	for _, c := range children {
		if _, ok := c.(*memdom.Element); ok {
			return true
		}
	}
	return false
}

// renderAttributes writes attributes in insertion order.
func (r *Renderer) renderAttributes(w *stickyWriter, el *memdom.Element) {
	for _, a := range el.Attributes() {
		if isBooleanAttr(a.Key) && (a.Val == "" || strings.EqualFold(a.Val, a.Key)) {
			w.WriteString(" " + a.Key)
			continue
		}
		w.printf(` %s="%s"`, a.Key, escapeAttr(a.Val))
	}

	if !r.config.EventMarkers {
		return
	}
	for _, event := range el.BoundEvents() {
		w.printf(` data-on-%s="true"`, escapeAttr(strings.ToLower(event)))
	}
}

func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	w.WriteString(strings.Repeat(r.config.Indent, depth))
}
