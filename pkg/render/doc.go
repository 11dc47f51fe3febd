// Package render serializes memdom trees to HTML.
//
// Text and attribute values are escaped. Void elements have no closing
// tag, boolean attributes with an empty value render bare, and the
// contents of script and style elements are written raw.
//
// # Basic Usage
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(node)
//
// # Event Markers
//
// With EventMarkers set, every element that has bound handlers gets a
// data-on-<event> attribute per event so a preview can show which parts
// of the tree are interactive:
//
//	<button data-on-click="true">Save</button>
//
// # Full Page Rendering
//
//	err := r.RenderPage(w, render.PageData{
//	    Body:      root,
//	    Title:     "Preview",
//	    ReloadURL: "/_jsxdom/reload",
//	})
//
// StreamingRenderer flushes after the head and after the body for
// faster first paint over HTTP.
package render
