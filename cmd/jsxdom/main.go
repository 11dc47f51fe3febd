// Command jsxdom renders markup documents to HTML, serves a live preview
// and publishes rendered pages to S3.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsxdom/internal/config"
	"github.com/vango-dev/jsxdom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jsxdom",
		Short: "Build DOM trees from markup documents",
		Long: `jsxdom builds element trees from YAML or JSON markup documents
through the jsx runtime and serializes them to HTML.

  • render a document to stdout or a file
  • preview a directory of documents with live reload
  • publish rendered pages to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "configuration file (default ./"+config.FileName+")")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: text or json")

	root.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)
	return root
}

// loadConfig reads the configuration and applies the command's flags.
// bindings maps configuration keys to flag names on cmd.
func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	flags := cmd.Flags()
	opts := []config.Option{
		config.WithFlag("log.level", "log-level", flags),
		config.WithFlag("log.format", "log-format", flags),
	}
	if path, _ := flags.GetString("config"); path != "" {
		opts = append(opts, config.WithFile(path))
	}
	for key, name := range bindings {
		opts = append(opts, config.WithFlag(key, name, flags))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(cfg.Log))
	if cfg.Path() != "" {
		slog.Debug("configuration loaded", "path", cfg.Path())
	}
	return cfg, nil
}

func newLogger(c config.LogConfig) *slog.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
