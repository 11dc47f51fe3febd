// Package markup builds element trees from declarative YAML or JSON
// documents.
//
// A document has an optional components section and a root node:
//
//	components:
//	  Card:
//	    tag: section
//	    props: {class: card}
//	root:
//	  tag: div
//	  props:
//	    class: [app, {dark: true, light: false}]
//	    style: {opacity: 0.5, width: 10}
//	    onClick: {$handler: log}
//	  children:
//	    - hello
//	    - {tag: Card, children: [inner]}
//	    - 42
//
// A node is a scalar (text, number, boolean or null), a sequence of
// nodes, or a mapping with tag, props and children keys. An empty tag or
// "#fragment" builds a fragment. Tags naming a component in the document
// or in the Registry expand that component; other tags are element
// names. Mapping order is preserved for props, class maps and style maps.
//
// A {$handler: name} value anywhere in props resolves to a handler
// registered with Registry.Handle.
package markup
