package jsx

import (
	"reflect"

	"github.com/vango-dev/jsxdom/pkg/dom"
)

// appendChildren appends a children specification to node in
// declaration order. Strings are handled before collections so they are
// never split into characters.
func (rt *Runtime) appendChildren(node dom.Node, children any) error {
	switch c := children.(type) {
	case nil:
		return nil
	case dom.Node:
		if classify(c) == kindNull {
			return nil
		}
		return node.AppendChild(c)
	case []byte:
		return rt.appendText(node, string(c))
	case dom.NodeList:
		if classify(c) == kindNull {
			return nil
		}
		for i := 0; i < c.Len(); i++ {
			if err := rt.appendChildren(node, c.Item(i)); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, child := range c {
			if err := rt.appendChildren(node, child); err != nil {
				return err
			}
		}
		return nil
	}

	switch classify(children) {
	case kindString:
		return rt.appendText(node, stringify(children))
	case kindNumber:
		// 0 and NaN are falsy and produce nothing.
		if !truthy(children) {
			return nil
		}
		return rt.appendText(node, stringify(children))
	case kindBool:
		if isTrue(children) {
			return rt.appendText(node, "true")
		}
		return nil
	case kindObject:
		rv := reflect.ValueOf(children)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			rt.logger.Debug("jsx: ignoring child", "type", rv.Type().String())
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := rt.appendChildren(node, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// appendText appends a text node. Empty strings produce nothing.
func (rt *Runtime) appendText(node dom.Node, text string) error {
	if text == "" {
		return nil
	}
	t, err := rt.doc.CreateTextNode(text)
	if err != nil {
		return err
	}
	rt.observer.NodeCreated(dom.TextNode)
	return node.AppendChild(t)
}
