package markup

import (
	stderrors "errors"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/jsxdom/internal/errors"
	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
)

// MaxComponentDepth bounds nested component expansion.
const MaxComponentDepth = 64

const (
	keyTag      = "tag"
	keyProps    = "props"
	keyChildren = "children"
	keyHandler  = "$handler"

	fragmentTag = "#fragment"
)

// Builder turns documents into nodes through a jsx.Runtime.
type Builder struct {
	rt       *jsx.Runtime
	registry *Registry
	logger   *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for expansion traces.
// If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

// NewBuilder creates a Builder. A nil registry is treated as empty.
func NewBuilder(rt *jsx.Runtime, registry *Registry, opts ...BuilderOption) *Builder {
	if registry == nil {
		registry = NewRegistry()
	}
	b := &Builder{rt: rt, registry: registry, logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Build constructs the document's root. A root that is not a single
// node (a scalar or a sequence) is wrapped in a fragment.
func (b *Builder) Build(doc *Document) (dom.Node, error) {
	s := &buildState{b: b, doc: doc}
	v, err := s.node(doc.root)
	if err != nil {
		return nil, err
	}
	if n, ok := v.(dom.Node); ok {
		return n, nil
	}
	n, err := b.rt.FragmentOf(v)
	if err != nil {
		return nil, s.constructionError(doc.root, err)
	}
	return n, nil
}

// buildState carries per-Build state.
type buildState struct {
	b     *Builder
	doc   *Document
	depth int
}

// elementNode is a node mapping split into its parts. Absent parts are nil.
type elementNode struct {
	src      *yaml.Node
	tag      *yaml.Node
	props    *yaml.Node
	children *yaml.Node
}

func (s *buildState) node(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return s.scalar(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := s.node(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		el, err := s.split(n)
		if err != nil {
			return nil, err
		}
		return s.construct(el, nil)
	case yaml.AliasNode:
		return s.node(n.Alias)
	}
	return nil, s.fail("M004", n)
}

func (s *buildState) split(n *yaml.Node) (elementNode, error) {
	el := elementNode{src: n}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case keyTag:
			if val.Kind != yaml.ScalarNode {
				return el, s.fail("M004", val).WithDetail("tag must be a string.")
			}
			el.tag = val
		case keyProps:
			if val.Kind != yaml.MappingNode && val.ShortTag() != "!!null" {
				return el, s.fail("M004", val).WithDetail("props must be a mapping.")
			}
			el.props = val
		case keyChildren:
			el.children = val
		default:
			return el, s.fail("M004", key).
				WithDetail("Unknown node key %q.", key.Value).
				WithSuggestion(Suggest(key.Value, []string{keyTag, keyProps, keyChildren}))
		}
	}
	return el, nil
}

// construct builds el. overlay holds invocation props of a document
// component; its keys win over the template's and its children replace
// the template's children.
func (s *buildState) construct(el elementNode, overlay *jsx.Props) (dom.Node, error) {
	tag, err := s.tag(el.tag)
	if err != nil {
		return nil, err
	}
	props, err := s.props(el.props)
	if err != nil {
		return nil, err
	}
	replaced := false
	if overlay != nil {
		_, replaced = overlay.Get(jsx.KeyChildren)
	}
	if el.children != nil && !replaced {
		children, err := s.node(el.children)
		if err != nil {
			return nil, err
		}
		props.Set(jsx.KeyChildren, children)
	}
	if overlay != nil {
		overlay.Each(func(k string, v any) { props.Set(k, v) })
	}

	n, err := s.b.rt.CreateElement(tag, props)
	if err != nil {
		var merr *errors.Error
		if stderrors.As(err, &merr) {
			return nil, err
		}
		return nil, s.constructionError(el.src, err)
	}
	return n, nil
}

func (s *buildState) tag(n *yaml.Node) (jsx.Tag, error) {
	var name string
	if n != nil {
		name = n.Value
	}
	if name == "" || name == fragmentTag {
		return jsx.Fragment, nil
	}
	if tmpl, ok := s.doc.components[name]; ok {
		return s.documentComponent(name, tmpl), nil
	}
	if c, ok := s.b.registry.component(name); ok {
		return c, nil
	}
	if isComponentName(name) {
		candidates := append(s.doc.Components(), s.b.registry.ComponentNames()...)
		return nil, s.fail("M002", n).
			WithDetail("%q is not a component of this document or the registry.", name).
			WithSuggestion(Suggest(name, candidates))
	}
	return jsx.TagName(name), nil
}

// documentComponent returns a component that expands tmpl with the
// invocation props overlaid.
func (s *buildState) documentComponent(name string, tmpl *yaml.Node) jsx.Component {
	return func(props jsx.Props) (dom.Node, error) {
		if s.depth >= MaxComponentDepth {
			return nil, s.fail("M005", tmpl).WithDetail("Expanding %q exceeded depth %d.", name, MaxComponentDepth)
		}
		s.depth++
		defer func() { s.depth-- }()

		if tmpl.Kind != yaml.MappingNode {
			return nil, s.fail("M004", tmpl).WithDetail("Component %q must be a node mapping.", name)
		}
		el, err := s.split(tmpl)
		if err != nil {
			return nil, err
		}
		s.b.logger.Debug("markup: expanding component", "name", name, "depth", s.depth)
		return s.construct(el, &props)
	}
}

// isComponentName reports whether name follows the component naming
// convention of a leading upper-case letter.
func isComponentName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func (s *buildState) props(n *yaml.Node) (jsx.Props, error) {
	var props jsx.Props
	if n == nil || n.Kind != yaml.MappingNode {
		return props, nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		var (
			v   any
			err error
		)
		switch key {
		case jsx.KeyClass:
			v, err = s.class(val)
		case jsx.KeyStyle:
			v, err = s.style(val)
		default:
			v, err = s.value(val)
		}
		if err != nil {
			return props, err
		}
		props.Set(key, v)
	}
	return props, nil
}

// class keeps mapping order by converting mappings to jsx.ClassMap.
func (s *buildState) class(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := s.class(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		m := make(jsx.ClassMap, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			on, err := s.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, jsx.ClassToggle{Name: n.Content[i].Value, On: on})
		}
		return m, nil
	case yaml.AliasNode:
		return s.class(n.Alias)
	}
	return s.value(n)
}

// style keeps mapping order by converting mappings to jsx.StyleMap.
func (s *buildState) style(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := s.style(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		m := make(jsx.StyleMap, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := s.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, jsx.StyleDecl{Property: n.Content[i].Value, Value: v})
		}
		return m, nil
	case yaml.AliasNode:
		return s.style(n.Alias)
	}
	return s.value(n)
}

// value converts a prop value. Mappings become map[string]any unless
// they are handler references.
func (s *buildState) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return s.scalar(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := s.value(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		if ref, ok := handlerRef(n); ok {
			return s.handler(ref)
		}
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := s.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.AliasNode:
		return s.value(n.Alias)
	}
	return nil, s.fail("M004", n)
}

// handlerRef matches {$handler: name}.
func handlerRef(n *yaml.Node) (*yaml.Node, bool) {
	if len(n.Content) != 2 || n.Content[0].Value != keyHandler || n.Content[1].Kind != yaml.ScalarNode {
		return nil, false
	}
	return n.Content[1], true
}

func (s *buildState) handler(ref *yaml.Node) (dom.Handler, error) {
	if h, ok := s.b.registry.handler(ref.Value); ok {
		return h, nil
	}
	return nil, s.fail("M003", ref).
		WithDetail("No handler named %q is registered.", ref.Value).
		WithSuggestion(Suggest(ref.Value, s.b.registry.HandlerNames()))
}

func (s *buildState) scalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, s.fail("M004", n).Wrap(err)
	}
	return v, nil
}

func (s *buildState) fail(code string, at *yaml.Node) *errors.Error {
	return errors.New(code).WithLocation(s.doc.Path, at.Line, at.Column)
}

func (s *buildState) constructionError(at *yaml.Node, err error) error {
	return s.fail("M007", at).Wrap(err)
}
