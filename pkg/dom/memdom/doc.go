// Package memdom is an in-memory dom.Document.
//
// Nodes are stored as golang.org/x/net/html nodes, so a constructed tree
// can be handed to anything that understands *html.Node, including
// html.Render and package render. On top of the raw tree memdom keeps
// the state a browser keeps outside attributes: inline style
// declarations, handler properties and event listeners. Dispatch runs a
// simplified capture/target/bubble propagation over that state.
//
// A Document and its nodes are not safe for concurrent use.
package memdom
