package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsxdom/internal/config"
	"github.com/vango-dev/jsxdom/internal/server"
	"github.com/vango-dev/jsxdom/pkg/markup"
	"github.com/vango-dev/jsxdom/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		out  string
		page bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a markup document to HTML",
		Long: `Render a markup document to HTML.

By default only the document's nodes are written. --page wraps them in
a complete HTML document titled after the file.

Examples:
  jsxdom render pages/index.yaml
  jsxdom render --pretty --page -o index.html pages/index.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]string{
				"render.pretty":       "pretty",
				"render.indent":       "indent",
				"render.eventMarkers": "event-markers",
			})
			if err != nil {
				return err
			}

			_, html, err := renderFile(args[0], cfg.Render, page)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(html)
				return err
			}
			if err := os.WriteFile(out, html, 0o644); err != nil {
				return err
			}
			success(cmd, "Wrote %s (%d bytes)", out, len(html))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "output", "o", "", "write to a file instead of stdout")
	f.BoolVar(&page, "page", false, "wrap the output in a complete HTML document")
	f.Bool("pretty", false, "indent the output")
	f.String("indent", "", "indentation unit for --pretty")
	f.Bool("event-markers", false, "add data-on-<event> attributes for bound handlers")
	return cmd
}

// renderFile builds the document at path and serializes it. It returns
// the document name along with the HTML.
func renderFile(path string, rc config.RenderConfig, page bool) (string, []byte, error) {
	doc, err := markup.ParseFile(path)
	if err != nil {
		return "", nil, err
	}
	node, err := server.Build(doc, nil, slog.Default(), nil)
	if err != nil {
		return "", nil, err
	}

	r := render.NewRenderer(render.RendererConfig{
		Pretty:       rc.Pretty,
		Indent:       rc.Indent,
		EventMarkers: rc.EventMarkers,
	})
	var buf bytes.Buffer
	if page {
		err = r.RenderPage(&buf, render.PageData{Title: doc.Name, Body: node})
	} else {
		err = r.RenderToWriter(&buf, node)
		if err == nil && !rc.Pretty {
			io.WriteString(&buf, "\n")
		}
	}
	if err != nil {
		return "", nil, err
	}
	return doc.Name, buf.Bytes(), nil
}
