package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsxdom/internal/server"
	"github.com/vango-dev/jsxdom/pkg/render"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Start the preview server",
		Long: `Serve the markup documents of a directory as HTML pages.

Every document is available at /render/<name>. With reload enabled the
directory is watched and open pages refresh when a document changes.

Examples:
  jsxdom serve
  jsxdom serve --port=8080 site/pages
  jsxdom serve --reload=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings := map[string]string{
				"dev.host":      "host",
				"dev.port":      "port",
				"dev.reload":    "reload",
				"render.pretty": "pretty",
			}
			if len(args) == 1 {
				cmd.Flags().Set("dir", args[0])
			}
			bindings["markup.dir"] = "dir"

			cfg, err := loadConfig(cmd, bindings)
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{
				Dir: cfg.Markup.Dir,
				Render: render.RendererConfig{
					Pretty:       cfg.Render.Pretty,
					Indent:       cfg.Render.Indent,
					EventMarkers: cfg.Render.EventMarkers,
				},
				Reload:   cfg.Dev.Reload,
				Debounce: cfg.Dev.Debounce,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd, "Serving %d pages from %s on http://%s", len(srv.Names()), cfg.Markup.Dir, cfg.Addr())
			return srv.ListenAndServe(ctx, cfg.Addr())
		},
	}

	f := cmd.Flags()
	f.StringP("host", "H", "", "host to bind to")
	f.IntP("port", "p", 0, "port to listen on")
	f.Bool("reload", true, "watch the directory and reload open pages")
	f.Bool("pretty", false, "indent the served HTML")
	f.String("dir", "", "markup directory")
	f.MarkHidden("dir")
	return cmd
}
