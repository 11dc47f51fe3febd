// Package dom defines the host document tree that jsxdom builds into.
//
// The construction engine in package jsx never creates platform nodes
// itself. It talks to a Document, which allocates elements, text nodes
// and fragments, and to the Element methods below, which store
// attributes, inline styles, handler properties and listeners. Whatever
// a host rejects (an illegal tag name, a malformed style value) comes
// back as an error and is handed to the caller unchanged.
//
// Two hosts ship with the module:
//
//   - memdom: an in-memory document backed by golang.org/x/net/html
//     nodes, used for server-side rendering and tests.
//   - jsdom: the browser document, reached through syscall/js when
//     compiled for GOOS=js GOARCH=wasm.
package dom
