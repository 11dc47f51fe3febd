package markup

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/jsxdom/internal/errors"
	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
	"github.com/vango-dev/jsxdom/pkg/render"
)

func buildHTML(t *testing.T, src string, reg *Registry) (string, error) {
	t.Helper()
	doc, err := Parse("test", "", []byte(src))
	if err != nil {
		return "", err
	}
	node, err := NewBuilder(jsx.New(memdom.NewDocument()), reg).Build(doc)
	if err != nil {
		return "", err
	}
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node.(memdom.Node))
}

func TestBuild(t *testing.T) {
	reg := NewRegistry()
	reg.Handle("log", func(dom.Event) {})

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "example document",
			src: `
components:
  Card:
    tag: section
    props: {class: card}
root:
  tag: div
  props:
    class: [app, {dark: true, light: false}]
    style: {opacity: 0.5, width: 10}
    onClick: {$handler: log}
  children:
    - hello
    - {tag: Card, children: [inner]}
    - 42
`,
			want: `<div style="opacity: 0.5; width: 10px;" class="app dark">hello<section class="card">inner</section>42</div>`,
		},
		{
			name: "scalar root",
			src:  "root: just text",
			want: "just text",
		},
		{
			name: "sequence root",
			src:  "root: [a, 1, true, null, {tag: br}]",
			want: "a1true<br>",
		},
		{
			name: "fragment tag",
			src:  "root: {tag: '#fragment', children: [x, {tag: i, children: [y]}]}",
			want: "x<i>y</i>",
		},
		{
			name: "missing tag is a fragment",
			src:  "root: {children: [a, b]}",
			want: "ab",
		},
		{
			name: "nested arrays flatten",
			src:  "root: {tag: p, children: [[a, [b, [c]]], d]}",
			want: "<p>abcd</p>",
		},
		{
			name: "prop order preserved",
			src:  "root: {tag: a, props: {title: t, href: /x, data-n: 3, hidden: ''}}",
			want: `<a title="t" href="/x" data-n="3" hidden></a>`,
		},
		{
			name: "style text and list",
			src:  "root: {tag: p, props: {style: ['color: red', {marginTop: 4}]}}",
			want: `<p style="color: red; margin-top: 4px;"></p>`,
		},
		{
			name: "json document",
			src:  `{"root": {"tag": "ul", "children": [{"tag": "li", "children": ["one"]}]}}`,
			want: "<ul><li>one</li></ul>",
		},
		{
			name: "component template children",
			src: `
components:
  Badge: {tag: span, props: {class: badge}, children: [new]}
root: {tag: Badge}
`,
			want: `<span class="badge">new</span>`,
		},
		{
			name: "invocation props override template",
			src: `
components:
  Badge: {tag: span, props: {class: badge, title: a}}
root: {tag: Badge, props: {title: b}}
`,
			want: `<span class="badge" title="b"></span>`,
		},
		{
			name: "components using components",
			src: `
components:
  Inner: {tag: b, children: [deep]}
  Outer: {tag: div, children: [{tag: Inner}]}
root: {tag: Outer}
`,
			want: "<div><b>deep</b></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildHTML(t, tt.src, reg)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestBuildHandlerBinding(t *testing.T) {
	calls := 0
	reg := NewRegistry()
	reg.Handle("count", func(dom.Event) { calls++ })

	doc, err := Parse("t", "", []byte("root: {tag: button, props: {onClick: {$handler: count}, onMyEvent: {$handler: count}}}"))
	if err != nil {
		t.Fatal(err)
	}
	node, err := NewBuilder(jsx.New(memdom.NewDocument()), reg).Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	btn := node.(*memdom.Element)
	btn.Dispatch(memdom.NewEvent("click"))
	btn.Dispatch(memdom.NewEvent("myEvent"))
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestBuildGoComponent(t *testing.T) {
	rt := jsx.New(memdom.NewDocument())
	reg := NewRegistry()
	reg.Component("Greeting", func(p jsx.Props) (dom.Node, error) {
		return rt.Element("h1", jsx.Props{}, "Hello, ", p.Value("name"))
	})

	doc, err := Parse("t", "", []byte("root: {tag: Greeting, props: {name: Ada}}"))
	if err != nil {
		t.Fatal(err)
	}
	node, err := NewBuilder(rt, reg).Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.(*memdom.Element).TextContent(); got != "Hello, Ada" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestBuildErrors(t *testing.T) {
	reg := NewRegistry()
	reg.Handle("logClick", func(dom.Event) {})

	tests := []struct {
		name     string
		src      string
		wantCode string
		wantHint string
	}{
		{
			name:     "unknown handler",
			src:      "root: {tag: a, props: {onClick: {$handler: logClik}}}",
			wantCode: "M003",
			wantHint: `did you mean "logClick"?`,
		},
		{
			name:     "unknown component",
			src:      "components: {Card: {tag: div}}\nroot: {tag: Crad}",
			wantCode: "M002",
			wantHint: `did you mean "Card"?`,
		},
		{
			name:     "unknown node key",
			src:      "root: {tag: a, prop: {}}",
			wantCode: "M004",
			wantHint: `did you mean "props"?`,
		},
		{
			name:     "recursive component",
			src:      "components: {Loop: {tag: Loop}}\nroot: {tag: Loop}",
			wantCode: "M005",
		},
		{
			name:     "host rejects tag",
			src:      "root: {tag: 'bad tag'}",
			wantCode: "M007",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildHTML(t, tt.src, reg)
			var merr *errors.Error
			if !stderrors.As(err, &merr) {
				t.Fatalf("err = %v, want *errors.Error", err)
			}
			if merr.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s (%v)", merr.Code, tt.wantCode, err)
			}
			if merr.Suggestion != tt.wantHint {
				t.Errorf("Suggestion = %q, want %q", merr.Suggestion, tt.wantHint)
			}
		})
	}
}

func TestHostErrorReachable(t *testing.T) {
	_, err := buildHTML(t, "root: {tag: p, props: {'a b': x}}", nil)
	if !stderrors.Is(err, memdom.ErrInvalidCharacter) {
		t.Errorf("err = %v, want wrapped ErrInvalidCharacter", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, src, code string
	}{
		{"invalid yaml", "root: [unclosed", "M001"},
		{"empty", "", "M006"},
		{"not a mapping", "- a\n- b", "M001"},
		{"no root", "components: {}", "M006"},
		{"unknown key", "rooot: {tag: a}", "M004"},
		{"components not mapping", "components: [a]\nroot: x", "M004"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("t", "", []byte(tt.src))
			if got := errors.Code(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	src := "root:\n  tag: div\n  props:\n    onClick: {$handler: nope}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "page" {
		t.Errorf("Name = %q, want page", doc.Name)
	}

	_, err = NewBuilder(jsx.New(memdom.NewDocument()), nil).Build(doc)
	var merr *errors.Error
	if !stderrors.As(err, &merr) || merr.Location == nil {
		t.Fatalf("err = %v, want located error", err)
	}
	if merr.Location.Line != 4 {
		t.Errorf("Line = %d, want 4", merr.Location.Line)
	}
	if len(merr.Context) == 0 || !strings.Contains(strings.Join(merr.Context, "\n"), "nope") {
		t.Errorf("Context = %q", merr.Context)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"index.yaml": "root: home",
		"about.json": `{"root": "about"}`,
		"notes.txt":  "ignored",
		"draft.yml":  "root: draft",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Errorf("loaded %d documents, want 3", len(docs))
	}
	for _, name := range []string{"index", "about", "draft"} {
		if _, ok := docs[name]; !ok {
			t.Errorf("missing document %q", name)
		}
	}
}

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"logClik", []string{"logClick", "submit"}, "logClick"},
		{"Crad", []string{"Card", "Badge"}, "Card"},
		{"zzz", []string{"Card"}, ""},
		{"x", nil, ""},
	}
	for _, tt := range tests {
		if got := closest(tt.name, tt.candidates); got != tt.want {
			t.Errorf("closest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
