// Package jsx turns tag/props/children calls into live host nodes.
//
// It is the runtime behind markup of the form tag(props, children): a
// single recursive entry point, Runtime.CreateElement, resolves the tag,
// allocates the node through a dom.Document, appends the flattened
// children and then, for elements only, applies inline styles, the
// composed class attribute, every remaining property and finally the
// ref. Nothing is retained between calls: there is no diffing, no
// reconciliation and no re-render.
//
// # Tags
//
// A Tag is one of TagName ("div"), the Fragment marker, or a Component,
// which is called with the props and whose result is returned as is.
//
//	rt := jsx.New(memdom.NewDocument())
//	node, err := rt.H(jsx.TagName("button"), jsx.NewProps(
//	    jsx.Class([]any{"btn", map[string]bool{"primary": true}}),
//	    jsx.Style(map[string]any{"opacity": 0.5, "width": 10}),
//	    jsx.OnClick(func(ev dom.Event) { ... }),
//	), "Save")
//
// # Properties
//
// Every key other than children, ref, style and class is bound by value
// shape: true or "" becomes an empty attribute, structured values are
// kept in a side channel (see Runtime.Value), functions under an "on"
// key become handler properties or event listeners, other truthy values
// become string attributes and falsy values are dropped.
//
// A Runtime is bound to one document and is not safe for concurrent use.
package jsx
