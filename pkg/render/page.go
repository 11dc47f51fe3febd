package render

import (
	"io"

	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
)

// PageData describes a complete HTML document.
type PageData struct {
	// Body is rendered inside <body>.
	Body memdom.Node

	Title string

	// Lang defaults to "en".
	Lang string

	Meta        []MetaTag
	StyleSheets []string

	// Styles are inline CSS blocks.
	Styles []string

	Scripts []ScriptTag

	// ReloadURL, when set, injects a script that reloads the page on
	// every message received from this websocket path.
	ReloadURL string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// ScriptTag represents a script element placed at the end of the body.
type ScriptTag struct {
	Src    string
	Module bool
	Defer  bool
	Inline string
}

// reloadScript reconnects after the server goes away so a restarted
// preview server is picked up too.
const reloadScript = `(function(){` +
	`var u=(location.protocol==="https:"?"wss://":"ws://")+location.host+%q;` +
	`function c(){var s=new WebSocket(u);` +
	`s.onmessage=function(){location.reload()};` +
	`s.onclose=function(){setTimeout(c,1000)}}c()})();`

// RenderPage writes a complete HTML document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	sw := &stickyWriter{w: w}
	r.renderHead(sw, page)
	if err := r.renderBody(sw, page); err != nil {
		return err
	}
	r.renderTail(sw, page)
	return sw.err
}

func (r *Renderer) renderHead(w *stickyWriter, page PageData) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	w.WriteString("<!DOCTYPE html>\n")
	w.printf("<html lang=\"%s\">\n", escapeAttr(lang))
	w.WriteString("<head>\n")
	w.WriteString("  <meta charset=\"utf-8\">\n")
	w.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if page.Title != "" {
		w.printf("  <title>%s</title>\n", escapeHTML(page.Title))
	}
	for _, m := range page.Meta {
		w.WriteString("  <meta")
		if m.Name != "" {
			w.printf(` name="%s"`, escapeAttr(m.Name))
		}
		if m.Property != "" {
			w.printf(` property="%s"`, escapeAttr(m.Property))
		}
		w.printf(" content=\"%s\">\n", escapeAttr(m.Content))
	}
	for _, href := range page.StyleSheets {
		w.printf("  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href))
	}
	for _, css := range page.Styles {
		w.printf("  <style>%s</style>\n", css)
	}
	w.WriteString("</head>\n")
}

func (r *Renderer) renderBody(w *stickyWriter, page PageData) error {
	w.WriteString("<body>\n")
	if page.Body == nil {
		return w.err
	}
	return r.renderNode(w, page.Body, 0, true)
}

func (r *Renderer) renderTail(w *stickyWriter, page PageData) {
	if !r.config.Pretty && page.Body != nil {
		w.WriteString("\n")
	}
	for _, s := range page.Scripts {
		w.WriteString("  <script")
		if s.Src != "" {
			w.printf(` src="%s"`, escapeAttr(s.Src))
		}
		if s.Module {
			w.WriteString(` type="module"`)
		}
		if s.Defer {
			w.WriteString(" defer")
		}
		w.printf(">%s</script>\n", s.Inline)
	}
	if page.ReloadURL != "" {
		w.WriteString("  <script>")
		w.printf(reloadScript, page.ReloadURL)
		w.WriteString("</script>\n")
	}
	w.WriteString("</body>\n</html>\n")
}
