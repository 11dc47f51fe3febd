package server

import (
	"log/slog"

	"github.com/vango-dev/jsxdom/pkg/dom/memdom"
	"github.com/vango-dev/jsxdom/pkg/jsx"
	"github.com/vango-dev/jsxdom/pkg/markup"
)

// Build constructs doc into a fresh in-memory document. observer may be nil.
func Build(doc *markup.Document, registry *markup.Registry, logger *slog.Logger, observer jsx.Observer) (memdom.Node, error) {
	opts := []jsx.Option{jsx.WithLogger(logger)}
	if observer != nil {
		opts = append(opts, jsx.WithObserver(observer))
	}
	rt := jsx.New(memdom.NewDocument(), opts...)
	n, err := markup.NewBuilder(rt, registry, markup.WithLogger(logger)).Build(doc)
	if err != nil {
		return nil, err
	}
	return n.(memdom.Node), nil
}
