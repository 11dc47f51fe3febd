//go:build js && wasm

// Package jsdom implements the dom contract on top of a browser document
// through syscall/js.
//
// Handlers passed to the package are wrapped with js.FuncOf. The wrappers
// live as long as the Document; call Release once the tree is discarded.
package jsdom
