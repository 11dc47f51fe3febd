package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/jsxdom/internal/dev"
	"github.com/vango-dev/jsxdom/internal/telemetry"
	"github.com/vango-dev/jsxdom/pkg/markup"
	"github.com/vango-dev/jsxdom/pkg/render"
)

// Config configures a Server.
type Config struct {
	// Dir is the markup directory.
	Dir string

	Render render.RendererConfig

	// Reload enables the live reload websocket and the page script.
	Reload bool

	// Debounce is the watcher quiet period.
	Debounce time.Duration

	// Registry supplies Go handlers and components. Nil is empty.
	Registry *markup.Registry

	// Prometheus receives the render metrics and backs /metrics. Nil
	// creates a private registry that also carries the Go collector.
	Prometheus *prometheus.Registry

	// Tracer defaults to the global otel provider.
	Tracer *telemetry.Tracer

	Logger *slog.Logger
}

// Server serves rendered markup documents.
type Server struct {
	config  Config
	logger  *slog.Logger
	metrics *telemetry.Metrics
	tracer  *telemetry.Tracer
	prom    *prometheus.Registry
	reload  *dev.ReloadServer
	router  chi.Router

	mu    sync.RWMutex
	pages map[string]*markup.Document
}

// New loads the markup directory and builds the router.
func New(config Config) (*Server, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Registry == nil {
		config.Registry = markup.NewRegistry()
	}
	if config.Tracer == nil {
		config.Tracer = telemetry.NewTracer("")
	}
	prom := config.Prometheus
	if prom == nil {
		prom = prometheus.NewRegistry()
		prom.MustRegister(collectors.NewGoCollector())
	}

	pages, err := markup.LoadDir(config.Dir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:  config,
		logger:  config.Logger,
		metrics: telemetry.NewMetrics(telemetry.WithRegistry(prom)),
		tracer:  config.Tracer,
		prom:    prom,
		pages:   pages,
	}
	if config.Reload {
		s.reload = dev.NewReloadServer(config.Logger)
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/render/{name}", s.handleRender)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.prom, promhttp.HandlerOpts{}))
	if s.reload != nil {
		r.Method(http.MethodGet, dev.ReloadPath, s.reload)
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Names returns the loaded page names, sorted.
func (s *Server) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return markup.SortedNames(s.pages)
}

func (s *Server) page(name string) (*markup.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.pages[name]
	return doc, ok
}

// Refresh reloads the markup directory after changes. On failure the
// previous pages stay in place and reload clients see the error.
func (s *Server) Refresh(changes []dev.Change) {
	file := ""
	if len(changes) > 0 {
		file = filepath.Base(changes[0].Path)
	}

	pages, err := markup.LoadDir(s.config.Dir)
	if err != nil {
		s.logger.Warn("markup reload failed", "file", file, "error", err)
		if s.reload != nil {
			s.reload.NotifyError(file, err)
		}
		return
	}

	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()

	s.logger.Info("markup reloaded", "file", file, "pages", len(pages))
	if s.reload != nil {
		s.reload.NotifyReload(file)
	}
}

// Watch refreshes the pages whenever markup files change, until ctx is done.
func (s *Server) Watch(ctx context.Context) error {
	w, err := dev.NewWatcher(dev.WatcherConfig{
		Dir:      s.config.Dir,
		Filter:   markup.IsMarkupFile,
		Debounce: s.config.Debounce,
		Logger:   s.logger,
	})
	if err != nil {
		return err
	}
	w.OnChange(s.Refresh)
	return w.Run(ctx)
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
// When reload is enabled the markup directory is watched as well.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	var wg sync.WaitGroup
	if s.reload != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Watch(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("preview server listening", "addr", ln.Addr().String(), "dir", s.config.Dir)

	select {
	case err := <-errc:
		cancel()
		wg.Wait()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if s.reload != nil {
		s.reload.Close()
	}
	err := srv.Shutdown(shutdownCtx)
	wg.Wait()
	<-errc
	return err
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", RequestID(r.Context()),
		)
	})
}
