// Package dev provides live reload for the preview server.
//
// A Watcher follows the markup directory with fsnotify and reports
// debounced batches of changes. A ReloadServer holds the browser
// WebSocket connections opened by the reload script that the preview
// pages embed.
//
// # Reload Protocol
//
// The browser connects to /_jsxdom/reload. Messages are JSON-encoded:
//
//	{"type": "reload", "file": "..."}  // reload the page
//	{"type": "error", "error": "..."}  // a markup document failed to parse
//	{"type": "clear"}                  // the failure is gone
package dev
