// Package server implements the jsxdom preview server.
//
// Routes:
//
//	GET /                 index of the markup documents in the directory
//	GET /render/{name}    the named document built and rendered as a page
//	GET /metrics          prometheus metrics
//	GET /_jsxdom/reload   live reload websocket (when enabled)
//
// Every render gets a fresh in-memory document and runtime, so requests
// never share construction state. Failures are reported as structured
// errors: S001 for an unknown page and S002, wrapping the markup error,
// for a page that fails to build.
package server
