package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/jsxdom/internal/dev"
	"github.com/vango-dev/jsxdom/internal/errors"
	"github.com/vango-dev/jsxdom/internal/telemetry"
	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
	"github.com/vango-dev/jsxdom/pkg/markup"
	"github.com/vango-dev/jsxdom/pkg/render"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	rt := jsx.New(memdom.NewDocument(), jsx.WithLogger(s.logger))

	names := s.Names()
	items := make([]any, 0, len(names))
	for _, name := range names {
		link := must(rt.Element("a", jsx.NewProps(jsx.P("href", "/render/"+url.PathEscape(name))), name))
		items = append(items, must(rt.Element("li", jsx.Props{}, link)))
	}
	var list any
	if len(items) == 0 {
		list = must(rt.Element("p", jsx.Props{}, "No markup documents in "+s.config.Dir))
	} else {
		list = must(rt.Element("ul", jsx.NewProps(jsx.Class("pages")), items))
	}

	body := must(rt.Element("main", jsx.Props{}, must(rt.Element("h1", jsx.Props{}, "Pages")), list))
	s.writePage(w, render.PageData{Title: "jsxdom", Body: body.(memdom.Node)})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ctx, span := s.tracer.StartRender(r.Context(), name, RequestID(r.Context()))
	start := time.Now()

	node, err := s.build(name)
	s.metrics.ObserveRender(name, time.Since(start), err)
	telemetry.End(span, err)
	if err != nil {
		s.logger.WarnContext(ctx, "render failed", "page", name, "error", err)
		s.writeError(w, r, err)
		return
	}

	s.writePage(w, render.PageData{Title: name, Body: node})
}

func (s *Server) build(name string) (memdom.Node, error) {
	doc, ok := s.page(name)
	if !ok {
		return nil, errors.New("S001").
			WithDetail("No document named %q in %s.", name, s.config.Dir).
			WithSuggestion(markup.Suggest(name, s.Names()))
	}
	node, err := Build(doc, s.config.Registry, s.logger, s.metrics)
	if err != nil {
		return nil, errors.New("S002").WithDetail("Building %q failed.", name).Wrap(err)
	}
	return node, nil
}

func (s *Server) writePage(w http.ResponseWriter, page render.PageData) {
	if s.reload != nil {
		page.ReloadURL = dev.ReloadPath
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewStreamingRenderer(w, s.config.Render).RenderPage(page); err != nil {
		s.logger.Debug("write page", "error", err)
	}
}

// writeError answers with JSON when the client asks for it and with an
// HTML error page otherwise.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := errors.FromError(err, "S002")
	status := http.StatusInternalServerError
	if e.Code == "S001" {
		status = http.StatusNotFound
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(e)
		return
	}

	page := render.PageData{Title: e.Code, Body: errorBody(e)}
	if s.reload != nil {
		page.ReloadURL = dev.ReloadPath
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	render.NewRenderer(s.config.Render).RenderPage(w, page)
}

// errorBody lays out e and, when it wraps one, the underlying markup error
// with its source context.
func errorBody(e *errors.Error) memdom.Node {
	rt := jsx.New(memdom.NewDocument())
	children := []any{
		must(rt.Element("h1", jsx.Props{}, e.Code+": "+e.Message)),
		detail(rt, e),
	}

	var cause *errors.Error
	if e.Wrapped != nil && stderrors.As(e.Wrapped, &cause) {
		children = append(children,
			must(rt.Element("h2", jsx.Props{}, cause.Code+": "+cause.Message)),
			detail(rt, cause),
		)
		if cause.Location != nil {
			children = append(children, must(rt.Element("p", jsx.NewProps(jsx.Class("location")), cause.Location.String())))
		}
		if len(cause.Context) > 0 {
			children = append(children, must(rt.Element("pre", jsx.Props{}, strings.Join(cause.Context, "\n"))))
		}
		if cause.Suggestion != "" {
			children = append(children, must(rt.Element("p", jsx.NewProps(jsx.Class("hint")), "Hint: "+cause.Suggestion)))
		}
	} else if e.Wrapped != nil {
		children = append(children, must(rt.Element("pre", jsx.Props{}, e.Wrapped.Error())))
	}
	if e.Suggestion != "" {
		children = append(children, must(rt.Element("p", jsx.NewProps(jsx.Class("hint")), "Hint: "+e.Suggestion)))
	}

	return must(rt.Element("main", jsx.NewProps(jsx.Class("error")), children...)).(memdom.Node)
}

func detail(rt *jsx.Runtime, e *errors.Error) any {
	if e.Detail == "" {
		return nil
	}
	return must(rt.Element("p", jsx.Props{}, e.Detail))
}

// must unwraps constructions that can only fail on an invalid tag name.
func must(n any, err error) any {
	if err != nil {
		panic(fmt.Sprintf("server: %v", err))
	}
	return n
}
