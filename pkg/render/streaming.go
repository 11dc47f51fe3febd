package render

import (
	"io"
	"net/http"
)

// StreamingRenderer renders pages to an http.ResponseWriter, flushing
// after the head and after the body.
type StreamingRenderer struct {
	*Renderer
	w       io.Writer
	flusher http.Flusher
}

// NewStreamingRenderer creates a streaming renderer. Flushing is skipped
// when w does not implement http.Flusher.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		w:        w,
		flusher:  flusher,
	}
}

// RenderPage writes page with incremental flushing.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	sw := &stickyWriter{w: s.w}
	s.renderHead(sw, page)
	s.flush(sw)
	if err := s.renderBody(sw, page); err != nil {
		return err
	}
	s.flush(sw)
	s.renderTail(sw, page)
	s.flush(sw)
	return sw.err
}

func (s *StreamingRenderer) flush(sw *stickyWriter) {
	if s.flusher != nil && sw.err == nil {
		s.flusher.Flush()
	}
}
