package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/jsxdom/internal/dev"
	"github.com/vango-dev/jsxdom/internal/telemetry"
	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/markup"
)

const indexDoc = `
components:
  Card: {tag: section, props: {class: card}}
root:
  tag: div
  props: {id: app, onClick: {$handler: track}}
  children:
    - {tag: Card, children: [hello]}
`

func writeDoc(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestServer(t *testing.T, reload bool, docs map[string]string) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	for name, src := range docs {
		writeDoc(t, dir, name, src)
	}
	reg := markup.NewRegistry()
	reg.Handle("track", func(dom.Event) {})

	s, err := New(Config{
		Dir:        dir,
		Reload:     reload,
		Debounce:   20 * time.Millisecond,
		Registry:   reg,
		Prometheus: prometheus.NewRegistry(),
		Tracer:     telemetry.NewTracerFrom(noop.NewTracerProvider(), ""),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	s, _ := newTestServer(t, false, map[string]string{
		"index.yaml": indexDoc,
		"about.json": `{"root": "about"}`,
		"notes.txt":  "ignored",
	})

	rec := get(t, s, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := `<ul class="pages"><li><a href="/render/about">about</a></li><li><a href="/render/index">index</a></li></ul>`
	if body := rec.Body.String(); !strings.Contains(body, want) {
		t.Errorf("index missing %s:\n%s", want, body)
	}
}

func TestIndexEmpty(t *testing.T) {
	s, dir := newTestServer(t, false, nil)
	rec := get(t, s, "/", nil)
	if !strings.Contains(rec.Body.String(), "No markup documents in "+dir) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRender(t *testing.T) {
	s, _ := newTestServer(t, false, map[string]string{"index.yaml": indexDoc})

	rec := get(t, s, "/render/index", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>index</title>",
		`<div id="app"><section class="card">hello</section></div>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s:\n%s", want, body)
		}
	}
	if strings.Contains(body, "WebSocket") {
		t.Error("reload script present with reload disabled")
	}
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("request id %q is not a uuid", rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDPreserved(t *testing.T) {
	s, _ := newTestServer(t, false, map[string]string{"index.yaml": indexDoc})
	rec := get(t, s, "/render/index", http.Header{RequestIDHeader: {"abc-123"}})
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q", got)
	}
}

func TestRenderNotFound(t *testing.T) {
	s, _ := newTestServer(t, false, map[string]string{"index.yaml": indexDoc})

	rec := get(t, s, "/render/indx", http.Header{"Accept": {"application/json"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Code       string `json:"code"`
		Suggestion string `json:"suggestion"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "S001" || body.Suggestion != `did you mean "index"?` {
		t.Errorf("body = %+v", body)
	}
}

func TestRenderBuildError(t *testing.T) {
	s, _ := newTestServer(t, false, map[string]string{
		"broken.yaml": "components: {Card: {tag: div}}\nroot: {tag: Crad}\n",
	})

	rec := get(t, s, "/render/broken", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>S002</title>",
		"<h1>S002: Render failed</h1>",
		"M002",
		`<p class="hint">Hint: did you mean &quot;Card&quot;?</p>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("error page missing %s:\n%s", want, body)
		}
	}
}

func TestMetrics(t *testing.T) {
	s, _ := newTestServer(t, false, map[string]string{"index.yaml": indexDoc})
	get(t, s, "/render/index", nil)
	get(t, s, "/render/missing", nil)

	body := get(t, s, "/metrics", nil).Body.String()
	for _, want := range []string{
		`jsxdom_render_duration_seconds_count{page="index",status="ok"} 1`,
		`jsxdom_render_duration_seconds_count{page="missing",status="error"} 1`,
		`jsxdom_bindings_total{kind="handler_property"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}

func TestRefresh(t *testing.T) {
	s, dir := newTestServer(t, false, map[string]string{"index.yaml": indexDoc})

	writeDoc(t, dir, "about.yaml", "root: {tag: p, children: [about]}")
	s.Refresh([]dev.Change{{Path: filepath.Join(dir, "about.yaml")}})
	if names := s.Names(); len(names) != 2 {
		t.Fatalf("Names = %v", names)
	}

	writeDoc(t, dir, "about.yaml", "root: [unclosed")
	s.Refresh([]dev.Change{{Path: filepath.Join(dir, "about.yaml")}})
	rec := get(t, s, "/render/about", nil)
	if !strings.Contains(rec.Body.String(), "<p>about</p>") {
		t.Errorf("broken reload replaced pages:\n%s", rec.Body.String())
	}
}

func TestReloadBroadcastOnRefresh(t *testing.T) {
	s, dir := newTestServer(t, true, map[string]string{"index.yaml": indexDoc})
	srv := httptest.NewServer(s)
	defer srv.Close()
	defer s.reload.Close()

	page := get(t, s, "/render/index", nil).Body.String()
	if !strings.Contains(page, `"/_jsxdom/reload"`) {
		t.Errorf("reload script missing:\n%s", page)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+dev.ReloadPath, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.Refresh([]dev.Change{{Path: filepath.Join(dir, "index.yaml")}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg dev.ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != dev.ReloadTypeFull || msg.File != "index.yaml" {
		t.Errorf("message = %+v", msg)
	}
}

func TestServeShutdown(t *testing.T) {
	s, _ := newTestServer(t, true, map[string]string{"index.yaml": indexDoc})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/render/index")
	if err != nil {
		t.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Serve = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(Config{Dir: filepath.Join(t.TempDir(), "missing"), Prometheus: prometheus.NewRegistry()})
	if err == nil {
		t.Fatal("expected error")
	}
}
