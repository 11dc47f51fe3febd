package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/jsxdom/pkg/jsx"
)

func TestRenderPage(t *testing.T) {
	body := build(t, func(rt *jsx.Runtime) (any, error) {
		return rt.Element("main", jsx.Props{}, "hi")
	})

	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Body:        body,
		Title:       "A & B",
		Meta:        []MetaTag{{Name: "description", Content: `x "y"`}},
		StyleSheets: []string{"/app.css"},
		Styles:      []string{"body{margin:0}"},
		Scripts:     []ScriptTag{{Src: "/app.js", Module: true}},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n",
		`<meta charset="utf-8">`,
		"<title>A &amp; B</title>",
		`<meta name="description" content="x &quot;y&quot;">`,
		`<link rel="stylesheet" href="/app.css">`,
		"<style>body{margin:0}</style>",
		"<body>\n<main>hi</main>\n",
		`<script src="/app.js" type="module"></script>`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "WebSocket") {
		t.Error("reload script injected without ReloadURL")
	}
}

func TestRenderPageReload(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Lang:      "de",
		ReloadURL: "/_jsxdom/reload",
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `<html lang="de">`) {
		t.Errorf("lang not applied:\n%s", out)
	}
	if !strings.Contains(out, `"/_jsxdom/reload"`) || !strings.Contains(out, "location.reload()") {
		t.Errorf("reload script missing:\n%s", out)
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	body := build(t, func(rt *jsx.Runtime) (any, error) {
		return rt.Element("p", jsx.Props{}, "streamed")
	})

	rec := httptest.NewRecorder()
	sr := NewStreamingRenderer(rec, RendererConfig{Pretty: true})
	if err := sr.RenderPage(PageData{Body: body}); err != nil {
		t.Fatal(err)
	}
	if !rec.Flushed {
		t.Error("response was not flushed")
	}
	if !strings.Contains(rec.Body.String(), "<p>streamed</p>\n") {
		t.Errorf("body missing:\n%s", rec.Body.String())
	}
}

func TestStreamingRendererPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewStreamingRenderer(&buf, RendererConfig{}).RenderPage(PageData{Title: "x"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "</html>\n") {
		t.Errorf("incomplete page: %q", buf.String())
	}
}
