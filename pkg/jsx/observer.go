package jsx

import "github.com/vango-dev/jsxdom/pkg/dom"

// BindingKind is how the property binder applied one property.
type BindingKind uint8

const (
	BindEmptyAttribute  BindingKind = iota // true or "" -> name=""
	BindDefinedValue                       // structured value kept in the side channel
	BindHandlerProperty                    // handler assigned to an on* property
	BindCaptureListener                    // capturing listener
	BindStandardListener                   // listener for a standard event
	BindCustomListener                     // listener for a custom event
	BindAttribute                          // stringified attribute
	BindOmitted                            // falsy value, nothing applied
)

// String returns the string representation of the BindingKind.
func (k BindingKind) String() string {
	switch k {
	case BindEmptyAttribute:
		return "empty_attribute"
	case BindDefinedValue:
		return "defined_value"
	case BindHandlerProperty:
		return "handler_property"
	case BindCaptureListener:
		return "capture_listener"
	case BindStandardListener:
		return "standard_listener"
	case BindCustomListener:
		return "custom_listener"
	case BindAttribute:
		return "attribute"
	case BindOmitted:
		return "omitted"
	default:
		return "unknown"
	}
}

// Observer is notified of construction work. Implementations must be
// cheap; they run inline with construction.
type Observer interface {
	NodeCreated(kind dom.NodeType)
	PropertyBound(kind BindingKind)
}

type nopObserver struct{}

func (nopObserver) NodeCreated(dom.NodeType)  {}
func (nopObserver) PropertyBound(BindingKind) {}
