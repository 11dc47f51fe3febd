package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
)

func TestRenderCompact(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rt *jsx.Runtime) (any, error)
		want string
	}{
		{
			name: "element with text",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("p", jsx.Props{}, "hello")
			},
			want: "<p>hello</p>",
		},
		{
			name: "attributes in insertion order",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("a", jsx.NewProps(
					jsx.P("href", "/x?a=1&b=2"),
					jsx.P("title", `say "hi"`),
				))
			},
			want: `<a href="/x?a=1&amp;b=2" title="say &quot;hi&quot;"></a>`,
		},
		{
			name: "style and class",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("div", jsx.NewProps(
					jsx.Style(jsx.StyleMap{{Property: "width", Value: 10}, {Property: "opacity", Value: 0.5}}),
					jsx.Class([]any{"a", map[string]any{"b": true, "c": false}}),
				))
			},
			want: `<div style="width: 10px; opacity: 0.5;" class="a b"></div>`,
		},
		{
			name: "void element",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("input", jsx.NewProps(jsx.P("type", "text")))
			},
			want: `<input type="text">`,
		},
		{
			name: "boolean attribute",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("button", jsx.NewProps(jsx.P("disabled", "")), "x")
			},
			want: `<button disabled>x</button>`,
		},
		{
			name: "escaped text",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("p", jsx.Props{}, "<b>&</b>")
			},
			want: "<p>&lt;b&gt;&amp;&lt;/b&gt;</p>",
		},
		{
			name: "raw script text",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.Element("script", jsx.Props{}, "if (a < b) {}")
			},
			want: "<script>if (a < b) {}</script>",
		},
		{
			name: "fragment",
			fn: func(rt *jsx.Runtime) (any, error) {
				return rt.FragmentOf("a", 1, el(rt, "br")())
			},
			want: "a1<br>",
		},
	}

	r := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderToString(build(t, tt.fn))
			if err != nil {
				t.Fatalf("RenderToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRenderPretty(t *testing.T) {
	node := build(t, func(rt *jsx.Runtime) (any, error) {
		return rt.Element("ul", jsx.Props{},
			el(rt, "li")("one"),
			el(rt, "li")("two ", el(rt, "b")("bold")),
			"tail",
		)
	})

	got, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := "<ul>\n" +
		"  <li>one</li>\n" +
		"  <li>\n" +
		"    two \n" +
		"    <b>bold</b>\n" +
		"  </li>\n" +
		"  tail\n" +
		"</ul>\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPrettyCustomIndent(t *testing.T) {
	node := build(t, func(rt *jsx.Runtime) (any, error) {
		return rt.Element("div", jsx.Props{}, el(rt, "span")("x"), el(rt, "p")("y"))
	})
	got, err := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := "<div>\n\t<span>x</span>\n\t<p>y</p>\n</div>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEventMarkers(t *testing.T) {
	noop := func(dom.Event) {}
	node := build(t, func(rt *jsx.Runtime) (any, error) {
		return rt.Element("button", jsx.NewProps(
			jsx.OnClick(noop),
			jsx.On("myEvent", noop),
			jsx.Capture("focus", noop),
		), "go")
	})

	plain, _ := NewRenderer(RendererConfig{}).RenderToString(node)
	if strings.Contains(plain, "data-on-") {
		t.Errorf("markers rendered without EventMarkers: %s", plain)
	}

	got, err := NewRenderer(RendererConfig{EventMarkers: true}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `<button data-on-click="true" data-on-focus="true" data-on-myevent="true">go</button>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

type failWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestRenderWriteError(t *testing.T) {
	node := build(t, func(rt *jsx.Runtime) (any, error) {
		return rt.Element("div", jsx.Props{}, "a", "b", "c")
	})
	err := NewRenderer(RendererConfig{}).RenderToWriter(&failWriter{n: 2}, node)
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want errWrite", err)
	}
}

func TestRenderNil(t *testing.T) {
	got, err := NewRenderer(RendererConfig{}).RenderToString(nil)
	if err != nil || got != "" {
		t.Errorf("RenderToString(nil) = %q, %v", got, err)
	}
}
