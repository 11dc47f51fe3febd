package jsx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

const captureSuffix = "capture"

// doubleClickNames maps the spelled-out double click handler names to
// the platform's single-word spelling.
var doubleClickNames = map[string]string{
	"ondoubleclick":        "ondblclick",
	"ondoubleclickcapture": "ondblclickcapture",
}

// bindProps applies every non-reserved property of props to el.
func (rt *Runtime) bindProps(el dom.Element, props Props) error {
	for _, key := range props.keys {
		if isReserved(key) {
			continue
		}
		value := props.values[key]
		kind := classify(value)

		var (
			bound BindingKind
			err   error
		)
		switch {
		case isTrue(value) || isEmptyString(value):
			bound, err = BindEmptyAttribute, el.SetAttribute(key, "")
		case kind == kindObject:
			rt.values.define(el, key, value)
			bound = BindDefinedValue
		case kind == kindFunc && strings.HasPrefix(key, "on"):
			bound, err = rt.bindListener(el, key, value)
		case kind == kindFunc:
			rt.logger.Debug("jsx: function value ignored", "key", key)
			bound = BindOmitted
		case truthy(value):
			bound, err = BindAttribute, el.SetAttribute(key, stringify(value))
		default:
			bound = BindOmitted
		}
		if err != nil {
			return err
		}
		rt.observer.PropertyBound(bound)
	}
	return nil
}

// bindListener resolves an on* key to a handler property or an event
// listener and installs value there.
func (rt *Runtime) bindListener(el dom.Element, key string, value any) (BindingKind, error) {
	h, ok := asHandler(value)
	if !ok {
		rt.logger.Debug("jsx: handler signature not supported", "key", key)
		return BindOmitted, nil
	}

	attribute := strings.ToLower(key)
	useCapture := strings.HasSuffix(attribute, captureSuffix)
	if name, ok := doubleClickNames[attribute]; ok {
		attribute = name
	}

	if !useCapture && el.HasEmptyHandlerSlot(attribute) {
		return BindHandlerProperty, el.SetHandlerProperty(attribute, h)
	}

	var (
		event string
		kind  BindingKind
	)
	switch {
	case useCapture:
		event = attribute[2 : len(attribute)-len(captureSuffix)]
		kind = BindCaptureListener
	case rt.doc.IsGlobalEventHandler(attribute):
		event = attribute[2:]
		kind = BindStandardListener
	default:
		event = customEventName(key)
		kind = BindCustomListener
	}
	if event == "" {
		rt.logger.Debug("jsx: empty event name", "key", key)
		return BindOmitted, nil
	}

	rt.logger.Debug("jsx: listener bound", "key", key, "event", event, "capture", useCapture)
	return kind, el.AddEventListener(event, h, useCapture)
}

// customEventName drops the "on" prefix and lower-cases only the first
// character: "onMyEvent" -> "myEvent".
func customEventName(key string) string {
	rest := key[2:]
	r, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return ""
	}
	return string(unicode.ToLower(r)) + rest[size:]
}
