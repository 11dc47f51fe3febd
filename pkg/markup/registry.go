package markup

import (
	"sort"
	"sync"

	"github.com/vango-dev/jsxdom/pkg/dom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
)

// Registry holds the Go handlers and components a document can refer
// to. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	handlers   map[string]dom.Handler
	components map[string]jsx.Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:   make(map[string]dom.Handler),
		components: make(map[string]jsx.Component),
	}
}

// Handle registers a handler under name.
func (r *Registry) Handle(name string, h dom.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Component registers a Go component under name. Document components
// with the same name take precedence.
func (r *Registry) Component(name string, c jsx.Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = c
}

func (r *Registry) handler(name string) (dom.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) component(name string) (jsx.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	return c, ok
}

// HandlerNames returns the registered handler names, sorted.
func (r *Registry) HandlerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.handlers)
}

// ComponentNames returns the registered component names, sorted.
func (r *Registry) ComponentNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.components)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
