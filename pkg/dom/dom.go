package dom

// NodeType is the node kind discriminator.
type NodeType uint8

const (
	ElementNode  NodeType = iota // <div>, <button>, etc.
	TextNode                     // Character data
	FragmentNode                 // Grouping container without a wrapper
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case FragmentNode:
		return "fragment"
	default:
		return "unknown"
	}
}

// Node is a unit of the host document tree.
type Node interface {
	NodeType() NodeType

	// AppendChild moves child to the end of this node's children.
	// Appending a fragment moves the fragment's children instead.
	AppendChild(child Node) error
}

// Element is an element node.
type Element interface {
	Node

	TagName() string
	SetAttribute(name, value string) error
	Style() Style

	// HasEmptyHandlerSlot reports whether the element exposes an event
	// handler property called name (e.g. "onclick") that is currently unset.
	HasEmptyHandlerSlot(name string) bool

	// SetHandlerProperty assigns h to the handler property called name.
	SetHandlerProperty(name string, h Handler) error

	// AddEventListener registers h for events of the given type.
	AddEventListener(event string, h Handler, capture bool) error
}

// Style is an element's inline style declaration.
type Style interface {
	// Set assigns a style field by its camelCase name. The value is kept
	// as given; nil or "" removes the declaration.
	Set(name string, value any) error

	// SetProperty sets a property by its CSS name, as needed for custom
	// properties such as "--accent".
	SetProperty(name, value string) error
}

// NodeList is an ordered, indexable node collection.
type NodeList interface {
	Len() int
	Item(i int) Node
}

// Document allocates nodes.
type Document interface {
	CreateElement(tag string) (Element, error)
	CreateTextNode(data string) (Node, error)
	CreateDocumentFragment() (Node, error)

	// IsGlobalEventHandler reports whether name (e.g. "onmouseover") is a
	// member of the platform's global event namespace.
	IsGlobalEventHandler(name string) bool
}

// Event is a dispatched event.
type Event interface {
	Type() string
	Target() Node
}

// Handler handles a dispatched event.
type Handler func(Event)
